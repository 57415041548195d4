package portalsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Session is a wallet session. Its token is not refreshed; once it expires
// run AuthenticateWithKey again.
type Session struct {
	client    *SDKClient
	address   string
	token     string
	expiresAt time.Time
}

// NewSessionFromToken wraps an existing session token.
func (c *SDKClient) NewSessionFromToken(address, token string, expiresAt time.Time) *Session {
	return &Session{client: c, address: address, token: token, expiresAt: expiresAt}
}

func (s *Session) Address() string      { return s.address }
func (s *Session) AccessToken() string  { return s.token }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// Expired reports whether the token's lifetime has passed.
func (s *Session) Expired() bool {
	return !s.expiresAt.IsZero() && !time.Now().Before(s.expiresAt)
}

// Dispatch runs an action for the session's wallet. Succeeded, failed and
// busy outcomes all come back as an ActionResponse; err is only set when no
// outcome was produced.
func (s *Session) Dispatch(ctx context.Context, kind string, payload any) (*ActionResponse, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/v1/actions/"+url.PathEscape(kind), s.token, payload)
	if err != nil {
		return nil, err
	}

	var out ActionResponse
	if err := decodeJSON(resp, &out, http.StatusOK, http.StatusUnprocessableEntity, http.StatusConflict); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRole resolves the session wallet's role.
func (s *Session) GetRole(ctx context.Context) (*RoleResponse, error) {
	var out RoleResponse
	if err := s.client.getJSON(ctx, "/v1/role", s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNavigation returns the session wallet's menu.
func (s *Session) GetNavigation(ctx context.Context) (*NavigationResponse, error) {
	var out NavigationResponse
	if err := s.client.getJSON(ctx, "/v1/navigation", s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListActivity returns the session wallet's recent dispatches, newest first.
// A zero limit uses the server default.
func (s *Session) ListActivity(ctx context.Context, limit int) ([]Activity, error) {
	path := "/v1/activity"
	if limit > 0 {
		path = withQuery(path, "limit", strconv.Itoa(limit))
	}

	var out ActivityListResponse
	if err := s.client.getJSON(ctx, path, s.token, &out); err != nil {
		return nil, err
	}
	return out.Activity, nil
}

// GetActivity returns one of the session wallet's records.
func (s *Session) GetActivity(ctx context.Context, id string) (*Activity, error) {
	var out Activity
	if err := s.client.getJSON(ctx, "/v1/activity/"+url.PathEscape(id), s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
