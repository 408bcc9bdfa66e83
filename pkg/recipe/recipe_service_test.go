package recipe

import (
	"FridgeMate/domain"
	"FridgeMate/entities"
	"FridgeMate/pkg/inventory"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"
)

var testNow = time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)

type fakeGateway struct {
	recipes     []entities.Recipe
	err         error
	ingredients []string
	style       string
	calls       int
	onCall      func()
}

func (g *fakeGateway) AnalyzeImage(ctx context.Context, image []byte) ([]entities.DetectedItem, error) {
	return nil, nil
}

func (g *fakeGateway) GenerateRecipes(ctx context.Context, ingredients []string, style string) ([]entities.Recipe, error) {
	g.calls++
	g.ingredients = ingredients
	g.style = style
	if g.onCall != nil {
		g.onCall()
	}
	return g.recipes, g.err
}

func sampleRecipes() []entities.Recipe {
	return []entities.Recipe{
		{ID: uuid.New(), Title: "Spinach Omelette", IngredientsUsed: []string{"Eggs", "Spinach"}, MissingIngredients: []string{}, Instructions: []string{"Whisk", "Cook"}},
		{ID: uuid.New(), Title: "Milk Shake", IngredientsUsed: []string{"Milk"}, MissingIngredients: []string{"Banana"}, Instructions: []string{"Blend"}},
	}
}

func newTestService(initial inventory.State, gateway *fakeGateway, busy *semaphore.Weighted) (RecipeService, inventory.InventoryRepository) {
	repo := inventory.NewInventoryRepository(initial)
	if busy == nil {
		busy = semaphore.NewWeighted(1)
	}
	return NewRecipeService(NewRecipeRepository(repo), gateway, busy, func() time.Time { return testNow }), repo
}

func TestGenerateRecipesEmptyInventory(t *testing.T) {
	gateway := &fakeGateway{}
	svc, _ := newTestService(inventory.NewState(), gateway, nil)

	_, err := svc.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{})
	assert.ErrorIs(t, err, domain.ErrNoIngredients)
	assert.Zero(t, gateway.calls)
}

func TestGenerateRecipesReplacesResultSet(t *testing.T) {
	gateway := &fakeGateway{recipes: sampleRecipes()}
	initial := inventory.DemoState(testNow)
	initial.Recipes = []entities.Recipe{{ID: uuid.New(), Title: "Old"}}
	svc, repo := newTestService(initial, gateway, nil)

	res, err := svc.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalRecipes)
	assert.Equal(t, domain.StyleSurpriseMe, res.Style)
	assert.Equal(t, "", gateway.style)
	assert.Equal(t, 2, res.ExpiringItems)
	assert.Equal(t, []string{"Milk", "Spinach", "Eggs", "Chicken Breast"}, gateway.ingredients)

	state := repo.Snapshot()
	require.Len(t, state.Recipes, 2)
	assert.Equal(t, "Spinach Omelette", state.Recipes[0].Title)

	detail, err := svc.GetRecipeDetail(context.Background(), state.Recipes[1].ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"Banana"}, detail.MissingIngredients)
}

func TestGenerateRecipesUsesSelectedStyle(t *testing.T) {
	gateway := &fakeGateway{recipes: sampleRecipes()}
	svc, _ := newTestService(inventory.DemoState(testNow), gateway, nil)

	styles, err := svc.SetStyle(context.Background(), domain.SetRecipeStyleRequest{Style: "Italian"})
	require.NoError(t, err)
	assert.Equal(t, "Italian", styles.Selected)

	res, err := svc.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Italian", gateway.style)
	assert.Equal(t, "Italian", res.Style)

	_, err = svc.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{Style: domain.StyleSurpriseMe})
	require.NoError(t, err)
	assert.Equal(t, "", gateway.style)

	_, err = svc.SetStyle(context.Background(), domain.SetRecipeStyleRequest{Style: domain.StyleSurpriseMe})
	require.NoError(t, err)
	assert.Equal(t, domain.StyleSurpriseMe, svc.GetStyles(context.Background()).Selected)
}

func TestGenerateRecipesFailureKeepsPreviousRecipes(t *testing.T) {
	initial := inventory.DemoState(testNow)
	initial.Recipes = sampleRecipes()
	gateway := &fakeGateway{err: domain.ErrGeminiProcessingFailed}
	svc, repo := newTestService(initial, gateway, nil)

	_, err := svc.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{})
	assert.True(t, errors.Is(err, domain.ErrGeminiProcessingFailed))
	assert.Equal(t, 2, svc.GetRecipes(context.Background()).TotalRecipes)
	assert.Len(t, repo.Snapshot().Recipes, 2)
}

func TestGenerateRecipesDiscardedAfterNavigation(t *testing.T) {
	gateway := &fakeGateway{recipes: sampleRecipes()}
	svc, repo := newTestService(inventory.DemoState(testNow), gateway, nil)
	gateway.onCall = func() {
		_, err := repo.Dispatch(inventory.SetView{View: domain.ViewInventory})
		require.NoError(t, err)
	}

	_, err := svc.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{})
	assert.ErrorIs(t, err, domain.ErrResultDiscarded)
	assert.Empty(t, repo.Snapshot().Recipes)
}

func TestGenerateRecipesWhileBusy(t *testing.T) {
	busy := semaphore.NewWeighted(1)
	require.True(t, busy.TryAcquire(1))
	gateway := &fakeGateway{recipes: sampleRecipes()}
	svc, _ := newTestService(inventory.DemoState(testNow), gateway, busy)

	_, err := svc.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{})
	assert.ErrorIs(t, err, domain.ErrGatewayBusy)
	assert.Zero(t, gateway.calls)

	busy.Release(1)
	_, err = svc.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{})
	assert.NoError(t, err)
}

func TestGetRecipeDetailErrors(t *testing.T) {
	svc, _ := newTestService(inventory.NewState(), &fakeGateway{}, nil)

	_, err := svc.GetRecipeDetail(context.Background(), "abc")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = svc.GetRecipeDetail(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestSelectIngredients(t *testing.T) {
	items := make([]entities.FoodItem, 0, 14)
	for i := 0; i < 12; i++ {
		items = append(items, entities.FoodItem{Name: string(rune('A' + i)), ExpiryDate: testNow.AddDate(0, 0, 10)})
	}
	items = append(items,
		entities.FoodItem{Name: "Yogurt", ExpiryDate: testNow.AddDate(0, 0, 1)},
		entities.FoodItem{Name: "a", ExpiryDate: testNow.Add(-time.Hour)},
	)

	names, expiring := SelectIngredients(items, testNow)
	assert.Equal(t, 2, expiring)
	assert.Equal(t, []string{"Yogurt", "a", "B", "C", "D", "E", "F", "G", "H", "I", "J"}, names)
}
