package api

import (
	"context"
	"net/http"

	"forkful/internal/domain"
)

const profilePath = "/api/profiles/me"

// GetProfile returns the current user's profile.
func (c *Client) GetProfile(ctx context.Context) (domain.Profile, error) {
	var out domain.Profile
	err := c.Do(ctx, http.MethodGet, profilePath, WithOut(&out))
	return out, err
}

// UpdateProfile changes bio, goal, or diet type.
func (c *Client) UpdateProfile(ctx context.Context, in domain.ProfileInput) (domain.Profile, error) {
	var out domain.Profile
	err := c.Do(ctx, http.MethodPut, profilePath, WithJSON(in), WithOut(&out))
	return out, err
}

// UpdateProfileImage uploads a new profile image as multipart/form-data.
func (c *Client) UpdateProfileImage(ctx context.Context, filename string, image []byte) (domain.Profile, error) {
	f := NewForm()
	f.AddFile("image", filename, image)
	var out domain.Profile
	err := c.Do(ctx, http.MethodPut, profilePath, WithForm(f), WithOut(&out))
	return out, err
}

// ListGoals returns the dietary goal options.
func (c *Client) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	var out []domain.Goal
	err := c.Do(ctx, http.MethodGet, "/api/profiles/goals/", WithOut(&out))
	return out, err
}

// ListDietTypes returns the diet classification options.
func (c *Client) ListDietTypes(ctx context.Context) ([]domain.DietType, error) {
	var out []domain.DietType
	err := c.Do(ctx, http.MethodGet, "/api/profiles/diet-types/", WithOut(&out))
	return out, err
}

// Compile-time assertion that Client implements domain.ProfileAPI.
var _ domain.ProfileAPI = (*Client)(nil)
