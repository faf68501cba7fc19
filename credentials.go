package webapi

import "sync"

// Credentials are the values the API reads when building requests.
type Credentials struct {
	ClientID     string `json:"clientId,omitempty"`
	ClientSecret string `json:"clientSecret,omitempty"`
	RedirectURI  string `json:"redirectUri,omitempty"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

type credentialStore struct {
	mu sync.RWMutex
	c  Credentials
}

func (s *credentialStore) get() Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c
}

func (s *credentialStore) set(c Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c = c
}

func (s *credentialStore) update(fn func(*Credentials)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.c)
}

// Credentials returns a snapshot of the current credentials.
func (a *API) Credentials() Credentials {
	return a.creds.get()
}

// SetCredentials overwrites the non-empty fields of creds.
func (a *API) SetCredentials(creds Credentials) {
	a.creds.update(func(c *Credentials) {
		if creds.ClientID != "" {
			c.ClientID = creds.ClientID
		}
		if creds.ClientSecret != "" {
			c.ClientSecret = creds.ClientSecret
		}
		if creds.RedirectURI != "" {
			c.RedirectURI = creds.RedirectURI
		}
		if creds.AccessToken != "" {
			c.AccessToken = creds.AccessToken
		}
		if creds.RefreshToken != "" {
			c.RefreshToken = creds.RefreshToken
		}
	})
}

// SetClientID replaces the client id used by the token grants.
func (a *API) SetClientID(id string) {
	a.creds.update(func(c *Credentials) { c.ClientID = id })
}

// SetClientSecret replaces the client secret used by the token grants.
func (a *API) SetClientSecret(secret string) {
	a.creds.update(func(c *Credentials) { c.ClientSecret = secret })
}

// SetRedirectURI replaces the redirect uri sent with authorization
// requests.
func (a *API) SetRedirectURI(uri string) {
	a.creds.update(func(c *Credentials) { c.RedirectURI = uri })
}

// SetAccessToken replaces the bearer token sent to the Web API.
func (a *API) SetAccessToken(token string) {
	a.creds.update(func(c *Credentials) { c.AccessToken = token })
}

// SetRefreshToken replaces the token used by [API.RefreshAccessToken].
func (a *API) SetRefreshToken(token string) {
	a.creds.update(func(c *Credentials) { c.RefreshToken = token })
}

// ResetAccessToken clears the access token. Later Web API requests carry
// no Authorization header.
func (a *API) ResetAccessToken() {
	a.SetAccessToken("")
}

// ResetRefreshToken clears the refresh token.
func (a *API) ResetRefreshToken() {
	a.SetRefreshToken("")
}

// ResetCredentials clears every credential.
func (a *API) ResetCredentials() {
	a.creds.set(Credentials{})
}
