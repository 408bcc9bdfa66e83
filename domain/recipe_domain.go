package domain

import (
	"errors"
)

// StyleSurpriseMe means "no style hint"; the gateway falls back to its default instruction.
const StyleSurpriseMe = "Surprise Me"

var (
	RecipeStyles = []string{
		StyleSurpriseMe,
		"Quick (< 15m)",
		"Vegetarian",
		"Low Carb",
		"Italian",
		"Mexican",
		"Asian",
		"Comfort Food",
		"Breakfast",
		"Smoothie",
	}

	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessGenerateRecipes = "recipes generated successfully"
	MessageSuccessGetRecipeStyles = "success get recipe styles"
	MessageSuccessSetRecipeStyle  = "recipe style selected"
	MessageNoIngredientsAvailable = "no ingredients available"
	MessageFailedGetRecipeDetail  = "failed to get recipe detail"
	MessageFailedGenerateRecipes  = "could not generate recipes right now"
	MessageFailedSetRecipeStyle   = "failed to select recipe style"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNoIngredients  = errors.New("no ingredients available for recipe generation")
)

type (
	GenerateRecipesRequest struct {
		Style string `json:"style" validate:"omitempty,max=120"`
	}

	SetRecipeStyleRequest struct {
		Style string `json:"style" validate:"omitempty,max=120"`
	}

	Recipe struct {
		ID                 string   `json:"id"`
		Title              string   `json:"title"`
		Description        string   `json:"description"`
		CookingTime        string   `json:"cooking_time"`
		Calories           int      `json:"calories"`
		IngredientsUsed    []string `json:"ingredients_used"`
		MissingIngredients []string `json:"missing_ingredients"`
		Instructions       []string `json:"instructions"`
	}

	RecipeListResponse struct {
		Recipes      []Recipe `json:"recipes"`
		TotalRecipes int      `json:"total_recipes"`
		Style        string   `json:"style"`
	}

	GenerateRecipesResponse struct {
		Recipes       []Recipe `json:"recipes"`
		TotalRecipes  int      `json:"total_recipes"`
		Ingredients   []string `json:"ingredients"`
		ExpiringItems int      `json:"expiring_items"`
		Style         string   `json:"style"`
	}

	RecipeStylesResponse struct {
		Styles   []string `json:"styles"`
		Selected string   `json:"selected"`
	}
)
