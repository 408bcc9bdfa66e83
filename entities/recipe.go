package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	CookingTime        string    `json:"cooking_time"`
	Calories           int       `json:"calories"`
	IngredientsUsed    []string  `json:"ingredients_used"`
	MissingIngredients []string  `json:"missing_ingredients"`
	Instructions       []string  `json:"instructions"`
}
