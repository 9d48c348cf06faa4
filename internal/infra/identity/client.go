package identity

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
)

const sessionHeader = "X-Session-ID"

// Client exchanges a login session id with the external identity provider.
type Client struct {
	http *http.Client
	url  string
}

func NewClient(cfg config.IdentityConfig) *Client {
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		url:  cfg.SessionDataURL,
	}
}

type sessionData struct {
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture"`
	SessionToken string  `json:"session_token"`
}

func (c *Client) ExchangeSession(ctx context.Context, sessionID string) (*commands.ExternalIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "identity: build request")
	}
	req.Header.Set(sessionHeader, sessionID)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "identity: request failed"), errs.ErrUpstream)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode >= 500:
		return nil, errs.Mark(errs.Newf("identity: provider returned %d", res.StatusCode), errs.ErrUpstream)
	case res.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, errs.ErrUnauthenticated
	}

	var data sessionData
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "identity: decode session data"), errs.ErrUpstream)
	}
	if data.Email == "" || data.SessionToken == "" {
		return nil, errs.ErrUnauthenticated
	}

	return &commands.ExternalIdentity{
		Email:        data.Email,
		Name:         data.Name,
		Picture:      data.Picture,
		SessionToken: data.SessionToken,
	}, nil
}
