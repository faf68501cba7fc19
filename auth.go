package webapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/adamwoolhether/webapi/client"
	"github.com/adamwoolhether/webapi/errs"
	"github.com/adamwoolhether/webapi/request"
)

const contentTypeForm = "application/x-www-form-urlencoded"

// tokenPath is the accounts endpoint issuing access tokens.
const tokenPath = "/api/token"

// CreateAuthorizeURL returns the accounts URL a user visits to grant the
// given scopes. The client id and redirect uri come from the current
// credentials.
func (a *API) CreateAuthorizeURL(scopes []string, state string, showDialog bool) (string, error) {
	creds := a.creds.get()

	var missing []string
	if creds.ClientID == "" {
		missing = append(missing, "client id")
	}
	if creds.RedirectURI == "" {
		missing = append(missing, "redirect uri")
	}
	if len(missing) > 0 {
		return "", errs.NewConfiguration("missing "+strings.Join(missing, ", "), nil)
	}

	req, err := a.authentication().
		WithPath("/authorize").
		WithQueryParameters(map[string]any{
			"client_id":     creds.ClientID,
			"response_type": "code",
			"redirect_uri":  creds.RedirectURI,
		}).
		Build()
	if err != nil {
		return "", err
	}

	uri, err := req.URI()
	if err != nil {
		return "", err
	}

	query := url.Values{}
	for k, v := range req.QueryParameters() {
		query.Set(k, fmt.Sprint(v))
	}
	if len(scopes) > 0 {
		query.Set("scope", strings.Join(scopes, " "))
	}
	if state != "" {
		query.Set("state", state)
	}
	if showDialog {
		query.Set("show_dialog", "true")
	}

	return uri + "?" + query.Encode(), nil
}

// ClientCredentialsGrant requests an app-only access token.
func (a *API) ClientCredentialsGrant(ctx context.Context) (*client.Response, error) {
	creds := a.creds.get()

	b := a.tokenRequest(creds).
		WithBodyParameter("grant_type", "client_credentials")

	return a.send(ctx, http.MethodPost, b)
}

// AuthorizationCodeGrant exchanges the code returned to the redirect uri
// for an access and refresh token.
func (a *API) AuthorizationCodeGrant(ctx context.Context, code string) (*client.Response, error) {
	creds := a.creds.get()

	b := a.authentication().
		WithPath(tokenPath).
		WithHeader("Content-Type", contentTypeForm).
		WithBodyParameters(map[string]any{
			"grant_type":    "authorization_code",
			"redirect_uri":  creds.RedirectURI,
			"code":          code,
			"client_id":     creds.ClientID,
			"client_secret": creds.ClientSecret,
		})

	return a.send(ctx, http.MethodPost, b)
}

// RefreshAccessToken uses the stored refresh token to obtain a new access
// token. The stored credentials are not updated.
func (a *API) RefreshAccessToken(ctx context.Context) (*client.Response, error) {
	creds := a.creds.get()

	b := a.tokenRequest(creds).
		WithBodyParameters(map[string]any{
			"grant_type":    "refresh_token",
			"refresh_token": creds.RefreshToken,
		})

	return a.send(ctx, http.MethodPost, b)
}

// tokenRequest returns a form POST to the token endpoint authenticated
// with the client id and secret.
func (a *API) tokenRequest(creds Credentials) *request.Builder {
	basic := base64.StdEncoding.EncodeToString([]byte(creds.ClientID + ":" + creds.ClientSecret))

	return a.authentication().
		WithPath(tokenPath).
		WithHeaders(map[string]string{
			"Authorization": "Basic " + basic,
			"Content-Type":  contentTypeForm,
		})
}
