package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"forkful/internal/domain"
)

// SearchIngredients matches food-database entries by name.
func (c *Client) SearchIngredients(ctx context.Context, name string) ([]domain.Ingredient, error) {
	q := url.Values{}
	q.Set("name", name)
	var out []domain.Ingredient
	err := c.Do(ctx, http.MethodGet, "/api/ingredients/", WithQuery(q), WithOut(&out))
	return out, err
}

// IngredientNutrition returns per-100g nutrition facts for an ingredient.
func (c *Client) IngredientNutrition(ctx context.Context, id int64) (domain.Nutrition, error) {
	q := url.Values{}
	q.Set("id", strconv.FormatInt(id, 10))
	var out domain.Nutrition
	err := c.Do(ctx, http.MethodGet, "/api/ingredients/nutritions/", WithQuery(q), WithOut(&out))
	return out, err
}

// Compile-time assertion that Client implements domain.IngredientAPI.
var _ domain.IngredientAPI = (*Client)(nil)
