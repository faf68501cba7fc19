package webapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/adamwoolhether/webapi/client"
	"github.com/adamwoolhether/webapi/request"
)

const contentTypeJSON = "application/json"

// send builds b and dispatches it with method.
func (a *API) send(ctx context.Context, method string, b *request.Builder) (*client.Response, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}

	return a.client.Send(ctx, method, req)
}

// GetMe fetches the profile of the user owning the access token.
func (a *API) GetMe(ctx context.Context) (*client.Response, error) {
	b := a.webAPI().WithPath("/v1/me")
	return a.send(ctx, http.MethodGet, b)
}

// GetAlbum fetches one album. params may carry "market".
func (a *API) GetAlbum(ctx context.Context, albumID string, params ...map[string]any) (*client.Response, error) {
	b := a.webAPI().
		WithPath("/v1/albums/" + url.PathEscape(albumID)).
		WithQueryParameters(params...)

	return a.send(ctx, http.MethodGet, b)
}

// GetTrack fetches one track. params may carry "market".
func (a *API) GetTrack(ctx context.Context, trackID string, params ...map[string]any) (*client.Response, error) {
	b := a.webAPI().
		WithPath("/v1/tracks/" + url.PathEscape(trackID)).
		WithQueryParameters(params...)

	return a.send(ctx, http.MethodGet, b)
}

// Search looks up query across the given item types, such as "album",
// "artist" or "track". params may carry "market", "limit", "offset" and
// "include_external".
func (a *API) Search(ctx context.Context, query string, types []string, params ...map[string]any) (*client.Response, error) {
	b := a.webAPI().
		WithPath("/v1/search").
		WithQueryParameters(params...).
		WithQueryParameters(map[string]any{
			"type": strings.Join(types, ","),
			"q":    query,
		})

	return a.send(ctx, http.MethodGet, b)
}

// AddToQueue appends the track or episode uri to the playback queue.
// params may carry "device_id".
func (a *API) AddToQueue(ctx context.Context, uri string, params ...map[string]any) (*client.Response, error) {
	b := a.webAPI().
		WithPath("/v1/me/player/queue").
		WithQueryParameters(params...).
		WithQueryParameter("uri", uri)

	return a.send(ctx, http.MethodPost, b)
}

// SetShuffle toggles shuffle on the active device. params may carry
// "device_id".
func (a *API) SetShuffle(ctx context.Context, state bool, params ...map[string]any) (*client.Response, error) {
	b := a.webAPI().
		WithPath("/v1/me/player/shuffle").
		WithQueryParameters(params...).
		WithQueryParameter("state", state)

	return a.send(ctx, http.MethodPut, b)
}

// Play starts or resumes playback. "device_id" in params goes into the
// query string; "context_uri", "uris", "offset" and "position_ms" go into
// the JSON body.
func (a *API) Play(ctx context.Context, params ...map[string]any) (*client.Response, error) {
	query := make(map[string]any)
	body := make(map[string]any)
	for _, p := range params {
		for k, v := range p {
			if k == "device_id" {
				query[k] = v
				continue
			}
			body[k] = v
		}
	}

	b := a.webAPI().
		WithPath("/v1/me/player/play").
		WithHeader("Content-Type", contentTypeJSON).
		WithQueryParameters(query).
		WithBodyParameters(body)

	return a.send(ctx, http.MethodPut, b)
}

// Pause pauses playback. params may carry "device_id".
func (a *API) Pause(ctx context.Context, params ...map[string]any) (*client.Response, error) {
	b := a.webAPI().
		WithPath("/v1/me/player/pause").
		WithQueryParameters(params...)

	return a.send(ctx, http.MethodPut, b)
}

// RemoveTracksFromPlaylist removes every occurrence of the given track
// uris. params may carry "snapshot_id".
func (a *API) RemoveTracksFromPlaylist(ctx context.Context, playlistID string, uris []string, params ...map[string]any) (*client.Response, error) {
	tracks := make([]any, len(uris))
	for i, uri := range uris {
		tracks[i] = map[string]any{"uri": uri}
	}

	b := a.webAPI().
		WithPath("/v1/playlists/"+url.PathEscape(playlistID)+"/tracks").
		WithHeader("Content-Type", contentTypeJSON).
		WithBodyParameters(params...).
		WithBodyParameter("tracks", tracks)

	return a.send(ctx, http.MethodDelete, b)
}

// RemoveFromMySavedTracks removes tracks from the user's library. The
// ids are sent as a JSON array body.
func (a *API) RemoveFromMySavedTracks(ctx context.Context, trackIDs []string) (*client.Response, error) {
	ids := make([]any, len(trackIDs))
	for i, id := range trackIDs {
		ids[i] = id
	}

	b := a.webAPI().
		WithPath("/v1/me/tracks").
		WithHeader("Content-Type", contentTypeJSON).
		WithBodyValues(ids)

	return a.send(ctx, http.MethodDelete, b)
}
