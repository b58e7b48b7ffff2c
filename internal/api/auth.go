package api

import (
	"context"
	"net/http"

	"github.com/klikphone/sav-portal/internal/models"
	"github.com/klikphone/sav-portal/internal/session"
)

// Login exchanges a PIN for a bearer token and moves the gate through
// authenticating into authenticated. A second call while one is in flight
// fails with session.ErrLoginInFlight.
func (c *Client) Login(ctx context.Context, pin string, role session.Role, username string) (session.Identity, error) {
	if err := c.Gate.BeginLogin(); err != nil {
		return session.Identity{}, err
	}

	var resp models.LoginResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   models.LoginRequest{Pin: pin, Role: string(role), Username: username},
		out:    &resp,
		login:  true,
	})
	if err != nil {
		c.Gate.FailLogin()
		return session.Identity{}, err
	}
	if resp.AccessToken == "" {
		c.Gate.FailLogin()
		return session.Identity{}, ErrInvalidCredentials
	}

	id := session.Identity{Role: role, Username: resp.Username, Token: resp.AccessToken}
	if r, ok := session.ParseRole(resp.Role); ok {
		id.Role = r
	}
	if id.Username == "" {
		id.Username = username
	}
	if err := c.Gate.CompleteLogin(ctx, id); err != nil {
		return session.Identity{}, err
	}
	c.Logger.Info().Str("role", string(id.Role)).Str("username", id.Username).Msg("logged in")
	return id, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.Gate.Logout(ctx)
}
