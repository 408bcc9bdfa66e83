package recipe

import (
	"FridgeMate/domain"
	"FridgeMate/entities"
	"FridgeMate/pkg/inventory"

	"github.com/google/uuid"
)

type (
	// RecipeRepository is the recipe-facing view of the session state.
	RecipeRepository interface {
		GetRecipes() ([]entities.Recipe, string)
		GetRecipeByID(id uuid.UUID) (entities.Recipe, error)
		ReplaceRecipes(recipes []entities.Recipe, seq uint64) error
		GetStyle() string
		SetStyle(style string) error
		GetIngredientSource() ([]entities.FoodItem, uint64)
	}

	recipeRepository struct {
		inventory inventory.InventoryRepository
	}
)

func NewRecipeRepository(inventoryRepository inventory.InventoryRepository) RecipeRepository {
	return &recipeRepository{inventory: inventoryRepository}
}

func (r *recipeRepository) GetRecipes() ([]entities.Recipe, string) {
	state := r.inventory.Snapshot()
	return state.Recipes, state.Style
}

func (r *recipeRepository) GetRecipeByID(id uuid.UUID) (entities.Recipe, error) {
	for _, recipe := range r.inventory.Snapshot().Recipes {
		if recipe.ID == id {
			return recipe, nil
		}
	}
	return entities.Recipe{}, domain.ErrRecipeNotFound
}

// ReplaceRecipes swaps in a new result set unless the user navigated after seq was read.
func (r *recipeRepository) ReplaceRecipes(recipes []entities.Recipe, seq uint64) error {
	_, err := r.inventory.Dispatch(inventory.SetRecipes{Recipes: recipes, Seq: seq})
	return err
}

func (r *recipeRepository) GetStyle() string {
	return r.inventory.Snapshot().Style
}

func (r *recipeRepository) SetStyle(style string) error {
	_, err := r.inventory.Dispatch(inventory.SetStyle{Style: style})
	return err
}

// GetIngredientSource returns the current items together with the navigation
// sequence they were read at.
func (r *recipeRepository) GetIngredientSource() ([]entities.FoodItem, uint64) {
	state := r.inventory.Snapshot()
	return state.Items, state.NavigationSeq
}
