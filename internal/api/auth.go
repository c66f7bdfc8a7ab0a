package api

import (
	"context"
	"net/http"

	"forkful/internal/domain"
)

// Register creates an account. The service logs the new user in by setting
// the session cookie on the response.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	var out domain.User
	err := c.Do(ctx, http.MethodPost, "/api/auth/register", WithJSON(reg), WithOut(&out))
	return out, err
}

// Login starts a session for existing credentials.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	var out domain.User
	err := c.Do(ctx, http.MethodPost, "/api/auth/login", WithJSON(creds), WithOut(&out))
	return out, err
}

// Logout ends the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, "/api/auth/logout")
}

// Refresh rotates the session cookie explicitly. Do already refreshes
// transparently on 401; this is for callers that want to renew up front.
func (c *Client) Refresh(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, refreshPath)
}

// Me returns the account behind the current session.
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	err := c.Do(ctx, http.MethodGet, "/api/auth/me", WithOut(&out))
	return out, err
}

// ForgotPassword asks the service to email a reset token.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	in := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.Do(ctx, http.MethodPost, "/api/auth/forgot-password", WithJSON(in))
}

// ResetPassword completes the forgot-password flow.
func (c *Client) ResetPassword(ctx context.Context, reset domain.PasswordReset) error {
	return c.Do(ctx, http.MethodPost, "/api/auth/reset-password", WithJSON(reset))
}

// Compile-time assertion that Client implements domain.AuthAPI.
var _ domain.AuthAPI = (*Client)(nil)
