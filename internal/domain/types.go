package domain

import "time"

// User is the authenticated account as returned by /api/auth/me.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Tag labels a recipe for filtering, e.g. "vegan" or "breakfast".
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RecipeIngredient is one line of a recipe's ingredient list. The
// IngredientID references the service's food database; Name is denormalised
// by the backend for display.
type RecipeIngredient struct {
	IngredientID int64   `json:"ingredient_id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

// Recipe mirrors the service's recipe record.
type Recipe struct {
	ID           int64              `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Instructions []string           `json:"instructions"`
	Servings     int                `json:"servings"`
	PrepMinutes  int                `json:"prep_minutes"`
	CookMinutes  int                `json:"cook_minutes"`
	ImageURL     string             `json:"image_url"`
	Author       User               `json:"author"`
	Tags         []Tag              `json:"tags"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Likes        int                `json:"likes"`
	Liked        bool               `json:"liked"`
	Saved        bool               `json:"saved"`
	CreatedAt    time.Time          `json:"created_at"`
}

// RecipePage is the service's pagination envelope for recipe listings.
type RecipePage struct {
	Count    int      `json:"count"`
	Next     string   `json:"next"`
	Previous string   `json:"previous"`
	Results  []Recipe `json:"results"`
}

// RecipeInput is the payload for creating or updating a recipe.
type RecipeInput struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Instructions []string           `json:"instructions"`
	Servings     int                `json:"servings"`
	PrepMinutes  int                `json:"prep_minutes"`
	CookMinutes  int                `json:"cook_minutes"`
	TagIDs       []int64            `json:"tag_ids"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
}

// RecipeFilter selects recipes by free-text query, tags, and page.
type RecipeFilter struct {
	Query string
	Tags  []string
	Page  int
}

// Ingredient is a food-database entry matched by name search.
type Ingredient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Nutrition holds per-100g nutrition facts for an ingredient.
type Nutrition struct {
	IngredientID int64   `json:"ingredient_id"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	Carbs        float64 `json:"carbs"`
}

// Goal is a dietary goal option offered by the service.
type Goal struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DietType is a diet classification option offered by the service.
type DietType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Profile mirrors the service's profile record for the current user.
type Profile struct {
	User     User      `json:"user"`
	Bio      string    `json:"bio"`
	ImageURL string    `json:"image_url"`
	Goal     *Goal     `json:"goal,omitempty"`
	DietType *DietType `json:"diet_type,omitempty"`
}

// ProfileInput is the payload for updating the current user's profile.
type ProfileInput struct {
	Bio        string `json:"bio,omitempty"`
	GoalID     int64  `json:"goal_id,omitempty"`
	DietTypeID int64  `json:"diet_type_id,omitempty"`
}

// ContactMessage is a message submitted through the contact form endpoint.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Credentials authenticates an existing account.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration creates a new account.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordReset completes a forgot-password flow with the emailed token.
type PasswordReset struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}
