package webapi_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/webapi"
)

func TestCredentials(t *testing.T) {
	a, err := webapi.New(webapi.WithCredentials(webapi.Credentials{
		ClientID:     "id",
		ClientSecret: "secret",
	}))
	if err != nil {
		t.Fatalf("failed to create api: %v", err)
	}

	a.SetCredentials(webapi.Credentials{AccessToken: "at", RefreshToken: "rt"})
	exp := webapi.Credentials{ClientID: "id", ClientSecret: "secret", AccessToken: "at", RefreshToken: "rt"}
	if diff := cmp.Diff(exp, a.Credentials()); diff != "" {
		t.Errorf("after set (-want +got):\n%s", diff)
	}

	a.SetRedirectURI("https://example.com/callback")
	a.ResetAccessToken()
	a.ResetRefreshToken()
	exp = webapi.Credentials{ClientID: "id", ClientSecret: "secret", RedirectURI: "https://example.com/callback"}
	if diff := cmp.Diff(exp, a.Credentials()); diff != "" {
		t.Errorf("after reset tokens (-want +got):\n%s", diff)
	}

	a.SetClientID("other")
	a.SetClientSecret("other-secret")
	if got := a.Credentials(); got.ClientID != "other" || got.ClientSecret != "other-secret" {
		t.Errorf("unexpected client credentials %+v", got)
	}

	a.ResetCredentials()
	if diff := cmp.Diff(webapi.Credentials{}, a.Credentials()); diff != "" {
		t.Errorf("after reset (-want +got):\n%s", diff)
	}
}

func TestCredentials_Concurrent(t *testing.T) {
	a, err := webapi.New()
	if err != nil {
		t.Fatalf("failed to create api: %v", err)
	}

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				a.SetAccessToken("even")
				return
			}
			a.ResetAccessToken()
		}()
		go func() {
			defer wg.Done()
			_ = a.Credentials()
		}()
	}
	wg.Wait()

	if got := a.Credentials().AccessToken; got != "even" && got != "" {
		t.Errorf("unexpected access token %q", got)
	}
}
