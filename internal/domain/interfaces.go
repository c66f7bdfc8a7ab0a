package domain

import (
	"context"
	"net/http"
)

// AuthAPI manages the account session, all with context.
type AuthAPI interface {
	Register(ctx context.Context, reg Registration) (User, error)
	Login(ctx context.Context, creds Credentials) (User, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	Me(ctx context.Context) (User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, reset PasswordReset) error
}

// RecipeAPI exposes the recipe collection and its action sub-paths.
type RecipeAPI interface {
	ListRecipes(ctx context.Context, page int) (RecipePage, error)
	GetRecipe(ctx context.Context, id int64) (Recipe, error)
	CreateRecipe(ctx context.Context, in RecipeInput) (Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, in RecipeInput) (Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
	SearchRecipes(ctx context.Context, filter RecipeFilter) (RecipePage, error)
	MyRecipes(ctx context.Context) (RecipePage, error)
	ToggleLike(ctx context.Context, id int64) (Recipe, error)
	ToggleSave(ctx context.Context, id int64) (Recipe, error)
}

// IngredientAPI resolves ingredients against the service's food database.
type IngredientAPI interface {
	SearchIngredients(ctx context.Context, name string) ([]Ingredient, error)
	IngredientNutrition(ctx context.Context, id int64) (Nutrition, error)
}

// ProfileAPI manages the current user's profile.
type ProfileAPI interface {
	GetProfile(ctx context.Context) (Profile, error)
	UpdateProfile(ctx context.Context, in ProfileInput) (Profile, error)
	UpdateProfileImage(ctx context.Context, filename string, image []byte) (Profile, error)
	ListGoals(ctx context.Context) ([]Goal, error)
	ListDietTypes(ctx context.Context) ([]DietType, error)
}

// ContactAPI submits contact-form messages.
type ContactAPI interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}

// SessionStore persists session cookies between CLI invocations. It is an
// http.CookieJar whose contents survive the process.
type SessionStore interface {
	http.CookieJar

	// Clear drops every stored cookie, logging the user out locally.
	Clear() error
}
