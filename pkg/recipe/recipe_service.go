package recipe

import (
	"FridgeMate/domain"
	"FridgeMate/entities"
	"FridgeMate/internal/utils"
	"FridgeMate/pkg/expiry"
	"FridgeMate/pkg/gemini"
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

const (
	// expiringWindow selects the ingredients that are put first in the prompt.
	expiringWindow = 3 * expiry.Day

	// maxOtherIngredients caps how many inventory names are sent besides the expiring ones.
	maxOtherIngredients = 10
)

type (
	RecipeService interface {
		GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest) (domain.GenerateRecipesResponse, error)
		GetRecipes(ctx context.Context) domain.RecipeListResponse
		GetRecipeDetail(ctx context.Context, recipeID string) (domain.Recipe, error)
		SetStyle(ctx context.Context, req domain.SetRecipeStyleRequest) (domain.RecipeStylesResponse, error)
		GetStyles(ctx context.Context) domain.RecipeStylesResponse
	}

	recipeService struct {
		recipeRepository RecipeRepository
		gateway          gemini.Gateway
		busy             *semaphore.Weighted
		now              func() time.Time
	}
)

func NewRecipeService(recipeRepository RecipeRepository, gateway gemini.Gateway, busy *semaphore.Weighted, now func() time.Time) RecipeService {
	if now == nil {
		now = time.Now
	}
	return &recipeService{
		recipeRepository: recipeRepository,
		gateway:          gateway,
		busy:             busy,
		now:              now,
	}
}

func (s *recipeService) GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest) (domain.GenerateRecipesResponse, error) {
	items, seq := s.recipeRepository.GetIngredientSource()
	if len(items) == 0 {
		return domain.GenerateRecipesResponse{
			Recipes:     []domain.Recipe{},
			Ingredients: []string{},
		}, domain.ErrNoIngredients
	}

	style := strings.TrimSpace(req.Style)
	if style == "" {
		style = s.recipeRepository.GetStyle()
	}

	ingredients, expiring := SelectIngredients(items, s.now())

	if !s.busy.TryAcquire(1) {
		return domain.GenerateRecipesResponse{}, domain.ErrGatewayBusy
	}
	defer s.busy.Release(1)

	recipes, err := s.gateway.GenerateRecipes(ctx, ingredients, styleHint(style))
	if err != nil {
		utils.LogError("recipe", "GenerateRecipes", "GenerateRecipes", ingredients, err)
		return domain.GenerateRecipesResponse{}, err
	}

	if err := s.recipeRepository.ReplaceRecipes(recipes, seq); err != nil {
		if errors.Is(err, domain.ErrResultDiscarded) {
			utils.Logger().WithFields(logrus.Fields{
				"module":  "recipe",
				"recipes": len(recipes),
			}).Info("recipe result dropped after navigation")
		}
		return domain.GenerateRecipesResponse{}, err
	}

	return domain.GenerateRecipesResponse{
		Recipes:       toRecipeResponses(recipes),
		TotalRecipes:  len(recipes),
		Ingredients:   ingredients,
		ExpiringItems: expiring,
		Style:         displayStyle(style),
	}, nil
}

func (s *recipeService) GetRecipes(ctx context.Context) domain.RecipeListResponse {
	recipes, style := s.recipeRepository.GetRecipes()
	return domain.RecipeListResponse{
		Recipes:      toRecipeResponses(recipes),
		TotalRecipes: len(recipes),
		Style:        displayStyle(style),
	}
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.Recipe, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(id)
	if err != nil {
		return domain.Recipe{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) SetStyle(ctx context.Context, req domain.SetRecipeStyleRequest) (domain.RecipeStylesResponse, error) {
	style := strings.TrimSpace(req.Style)
	if style == domain.StyleSurpriseMe {
		style = ""
	}

	if err := s.recipeRepository.SetStyle(style); err != nil {
		return domain.RecipeStylesResponse{}, err
	}
	return domain.RecipeStylesResponse{
		Styles:   domain.RecipeStyles,
		Selected: displayStyle(style),
	}, nil
}

func (s *recipeService) GetStyles(ctx context.Context) domain.RecipeStylesResponse {
	return domain.RecipeStylesResponse{
		Styles:   domain.RecipeStyles,
		Selected: displayStyle(s.recipeRepository.GetStyle()),
	}
}

// SelectIngredients puts the names of items expiring within three days first,
// then the first ten inventory names, without duplicates. The second value
// is how many items fell in the expiring window.
func SelectIngredients(items []entities.FoodItem, now time.Time) ([]string, int) {
	cutoff := now.Add(expiringWindow)

	names := make([]string, 0, len(items))
	expiring := 0
	for _, item := range items {
		if item.ExpiryDate.Before(cutoff) {
			names = append(names, item.Name)
			expiring++
		}
	}
	for _, item := range items[:min(len(items), maxOtherIngredients)] {
		names = append(names, item.Name)
	}
	return gemini.DedupeIngredients(names), expiring
}

func styleHint(style string) string {
	if style == domain.StyleSurpriseMe {
		return ""
	}
	return style
}

func displayStyle(style string) string {
	if style == "" {
		return domain.StyleSurpriseMe
	}
	return style
}

func toRecipeResponses(recipes []entities.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, toRecipeResponse(recipe))
	}
	return out
}

func toRecipeResponse(recipe entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:                 recipe.ID.String(),
		Title:              recipe.Title,
		Description:        recipe.Description,
		CookingTime:        recipe.CookingTime,
		Calories:           recipe.Calories,
		IngredientsUsed:    slices.Clone(recipe.IngredientsUsed),
		MissingIngredients: slices.Clone(recipe.MissingIngredients),
		Instructions:       slices.Clone(recipe.Instructions),
	}
}
