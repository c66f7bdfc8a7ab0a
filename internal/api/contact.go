package api

import (
	"context"
	"net/http"

	"forkful/internal/domain"
)

// SendContactMessage submits a contact-form message.
func (c *Client) SendContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	return c.Do(ctx, http.MethodPost, "/api/contact/", WithJSON(msg))
}

// Compile-time assertion that Client implements domain.ContactAPI.
var _ domain.ContactAPI = (*Client)(nil)
