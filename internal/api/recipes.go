package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"forkful/internal/domain"
)

const recipesPath = "/api/recipes/"

func recipePath(id int64, action string) string {
	if action == "" {
		return fmt.Sprintf("%s%d/", recipesPath, id)
	}
	return fmt.Sprintf("%s%d/%s/", recipesPath, id, action)
}

// ListRecipes returns one page of the recipe collection. Page 0 means the
// first page.
func (c *Client) ListRecipes(ctx context.Context, page int) (domain.RecipePage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	var out domain.RecipePage
	err := c.Do(ctx, http.MethodGet, recipesPath, WithQuery(q), WithOut(&out))
	return out, err
}

// GetRecipe returns a single recipe by id.
func (c *Client) GetRecipe(ctx context.Context, id int64) (domain.Recipe, error) {
	var out domain.Recipe
	err := c.Do(ctx, http.MethodGet, recipePath(id, ""), WithOut(&out))
	return out, err
}

// CreateRecipe adds a recipe owned by the current user.
func (c *Client) CreateRecipe(ctx context.Context, in domain.RecipeInput) (domain.Recipe, error) {
	var out domain.Recipe
	err := c.Do(ctx, http.MethodPost, recipesPath, WithJSON(in), WithOut(&out))
	return out, err
}

// UpdateRecipe replaces a recipe the current user owns.
func (c *Client) UpdateRecipe(ctx context.Context, id int64, in domain.RecipeInput) (domain.Recipe, error) {
	var out domain.Recipe
	err := c.Do(ctx, http.MethodPut, recipePath(id, ""), WithJSON(in), WithOut(&out))
	return out, err
}

// DeleteRecipe removes a recipe the current user owns.
func (c *Client) DeleteRecipe(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, recipePath(id, ""))
}

// SearchRecipes queries the collection. A free-text query goes to the
// search sub-path; a tags-only filter goes to the by-tags sub-path.
func (c *Client) SearchRecipes(ctx context.Context, filter domain.RecipeFilter) (domain.RecipePage, error) {
	q := url.Values{}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}

	path := recipesPath + "search/"
	switch {
	case filter.Query != "":
		q.Set("q", filter.Query)
		if len(filter.Tags) > 0 {
			q.Set("tags", strings.Join(filter.Tags, ","))
		}
	case len(filter.Tags) > 0:
		path = recipesPath + "by-tags/"
		q.Set("tags", strings.Join(filter.Tags, ","))
	default:
		return c.ListRecipes(ctx, filter.Page)
	}

	var out domain.RecipePage
	err := c.Do(ctx, http.MethodGet, path, WithQuery(q), WithOut(&out))
	return out, err
}

// MyRecipes returns recipes owned by the current user.
func (c *Client) MyRecipes(ctx context.Context) (domain.RecipePage, error) {
	var out domain.RecipePage
	err := c.Do(ctx, http.MethodGet, recipesPath+"my/", WithOut(&out))
	return out, err
}

// ToggleLike flips the current user's like on a recipe and returns the
// updated record.
func (c *Client) ToggleLike(ctx context.Context, id int64) (domain.Recipe, error) {
	var out domain.Recipe
	err := c.Do(ctx, http.MethodPost, recipePath(id, "like"), WithOut(&out))
	return out, err
}

// ToggleSave flips the current user's save on a recipe and returns the
// updated record.
func (c *Client) ToggleSave(ctx context.Context, id int64) (domain.Recipe, error) {
	var out domain.Recipe
	err := c.Do(ctx, http.MethodPost, recipePath(id, "save"), WithOut(&out))
	return out, err
}

// Compile-time assertion that Client implements domain.RecipeAPI.
var _ domain.RecipeAPI = (*Client)(nil)
