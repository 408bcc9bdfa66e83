package inventory

import (
	"FridgeMate/domain"
	"FridgeMate/entities"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)

func newItem(name string, days int) entities.FoodItem {
	return entities.FoodItem{
		ID:         uuid.New(),
		Name:       name,
		Category:   "Dairy",
		Quantity:   "1 unit",
		ExpiryDate: testNow.AddDate(0, 0, days),
		AddedDate:  testNow,
	}
}

func TestAddItemsKeepsOrderAndCounts(t *testing.T) {
	a, b, c := newItem("Milk", 2), newItem("Eggs", 5), newItem("Milk", 3)

	state, err := Reduce(NewState(), AddItems{Items: []entities.FoodItem{a, b, c}})
	require.NoError(t, err)

	assert.Equal(t, []entities.FoodItem{a, b, c}, state.Items)
	assert.Equal(t, 3, state.Stats.ItemsTracked)
}

func TestConsumeAppliesFixedDeltas(t *testing.T) {
	item := newItem("Milk", 2)
	state := DemoState(testNow)
	state.Items = append(state.Items, item)

	next, err := Reduce(state, Consume{ID: item.ID})
	require.NoError(t, err)

	assert.Len(t, next.Items, len(state.Items)-1)
	assert.True(t, next.Stats.MoneySaved.Equal(decimal.RequireFromString("128.00")))
	assert.True(t, next.Stats.FoodWasteReducedKg.Equal(decimal.RequireFromString("4.7")))
	assert.True(t, next.Stats.CO2SavedKg.Equal(decimal.RequireFromString("11.7")))
	assert.Equal(t, state.Stats.ItemsTracked, next.Stats.ItemsTracked)
}

func TestConsumeManyTimesStaysExact(t *testing.T) {
	state := NewState()
	for i := 0; i < 10; i++ {
		item := newItem("Milk", i)
		var err error
		state, err = Reduce(state, AddItems{Items: []entities.FoodItem{item}})
		require.NoError(t, err)
		state, err = Reduce(state, Consume{ID: item.ID})
		require.NoError(t, err)
	}

	assert.Equal(t, "35.00", state.Stats.MoneySaved.StringFixed(2))
	assert.Equal(t, "5.0", state.Stats.FoodWasteReducedKg.StringFixed(1))
	assert.Equal(t, "12.0", state.Stats.CO2SavedKg.StringFixed(1))
	assert.Equal(t, 10, state.Stats.ItemsTracked)
}

func TestDeleteHasNoStatEffect(t *testing.T) {
	item := newItem("Milk", 2)
	state, err := Reduce(NewState(), AddItems{Items: []entities.FoodItem{item}})
	require.NoError(t, err)

	next, err := Reduce(state, Delete{ID: item.ID})
	require.NoError(t, err)
	assert.Empty(t, next.Items)
	assert.Equal(t, state.Stats, next.Stats)
}

func TestUnknownIDIsNotFound(t *testing.T) {
	state := DemoState(testNow)

	for _, action := range []Action{Consume{ID: uuid.New()}, Delete{ID: uuid.New()}} {
		next, err := Reduce(state, action)
		assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
		assert.Equal(t, state, next)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := DemoState(testNow)
	state.Recipes = []entities.Recipe{{ID: uuid.New(), Title: "Soup", IngredientsUsed: []string{"Milk"}, MissingIngredients: []string{}, Instructions: []string{"Heat"}}}
	before := state.Clone()

	actions := []Action{
		AddItems{Items: []entities.FoodItem{newItem("Butter", 10)}},
		Consume{ID: state.Items[0].ID},
		Delete{ID: state.Items[1].ID},
		SetStyle{Style: "Italian"},
		SetView{View: domain.ViewRecipes},
		SetRecipes{Recipes: nil, Seq: state.NavigationSeq},
		OpenScan{Scan: entities.ReceiptScan{ID: uuid.New(), Items: []entities.DetectedItem{{Name: "Tea"}}}, Seq: state.NavigationSeq},
	}
	for _, action := range actions {
		_, err := Reduce(state, action)
		require.NoError(t, err)
		assert.Equal(t, before, state, action.actionName())
	}
}

func TestSetViewBumpsNavigationSeq(t *testing.T) {
	state, err := Reduce(NewState(), SetView{View: domain.ViewDashboard})
	require.NoError(t, err)
	assert.Equal(t, domain.ViewDashboard, state.View)
	assert.EqualValues(t, 1, state.NavigationSeq)

	_, err = Reduce(state, SetView{View: "settings"})
	assert.ErrorIs(t, err, domain.ErrInvalidView)
}

func TestLateResultsAreDiscarded(t *testing.T) {
	state := NewState()
	seq := state.NavigationSeq
	recipes := []entities.Recipe{{ID: uuid.New(), Title: "Soup"}}

	moved, err := Reduce(state, SetView{View: domain.ViewInventory})
	require.NoError(t, err)

	next, err := Reduce(moved, SetRecipes{Recipes: recipes, Seq: seq})
	assert.ErrorIs(t, err, domain.ErrResultDiscarded)
	assert.Empty(t, next.Recipes)

	next, err = Reduce(moved, OpenScan{Scan: entities.ReceiptScan{ID: uuid.New()}, Seq: seq})
	assert.ErrorIs(t, err, domain.ErrResultDiscarded)
	assert.Nil(t, next.Scan)

	next, err = Reduce(moved, SetRecipes{Recipes: recipes, Seq: moved.NavigationSeq})
	require.NoError(t, err)
	assert.Len(t, next.Recipes, 1)
}

func TestScanReview(t *testing.T) {
	scan := entities.ReceiptScan{
		ID: uuid.New(),
		Items: []entities.DetectedItem{
			{Name: "Milk", ExpiryDate: testNow},
			{Name: "Brd", ExpiryDate: testNow},
			{Name: "Receipt paper", ExpiryDate: testNow},
		},
	}
	state, err := Reduce(NewState(), OpenScan{Scan: scan})
	require.NoError(t, err)

	state, err = Reduce(state, RenameScannedItem{Index: 1, Name: "Bread"})
	require.NoError(t, err)
	state, err = Reduce(state, RemoveScannedItem{Index: 2})
	require.NoError(t, err)
	require.Len(t, state.Scan.Items, 2)
	assert.Equal(t, "Bread", state.Scan.Items[1].Name)
	assert.Len(t, scan.Items, 3)

	_, err = Reduce(state, RenameScannedItem{Index: 0, Name: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptyItemName)
	_, err = Reduce(state, RemoveScannedItem{Index: 5})
	assert.ErrorIs(t, err, domain.ErrScannedItemNotFound)

	state, err = Reduce(state, ConfirmScan{ScanID: scan.ID, AddedAt: testNow})
	require.NoError(t, err)
	assert.Nil(t, state.Scan)
	require.Len(t, state.Items, 2)
	assert.Equal(t, "Milk", state.Items[0].Name)
	assert.Equal(t, "Bread", state.Items[1].Name)
	assert.Equal(t, testNow, state.Items[1].AddedDate)
	assert.NotEqual(t, state.Items[0].ID, state.Items[1].ID)
	assert.Equal(t, 2, state.Stats.ItemsTracked)

	_, err = Reduce(state, ConfirmScan{ScanID: scan.ID, AddedAt: testNow})
	assert.ErrorIs(t, err, domain.ErrNoPendingScan)
}

func TestConfirmScanUsesGivenIDs(t *testing.T) {
	scan := entities.ReceiptScan{ID: uuid.New(), Items: []entities.DetectedItem{{Name: "Milk"}, {Name: "Tea"}}}
	state, err := Reduce(NewState(), OpenScan{Scan: scan})
	require.NoError(t, err)

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	next := 0
	state, err = Reduce(state, ConfirmScan{ScanID: scan.ID, NewID: func() uuid.UUID {
		id := ids[next]
		next++
		return id
	}})
	require.NoError(t, err)
	assert.Equal(t, ids[0], state.Items[0].ID)
	assert.Equal(t, ids[1], state.Items[1].ID)
}

func TestConfirmScanRejectsOtherScan(t *testing.T) {
	state, err := Reduce(NewState(), OpenScan{Scan: entities.ReceiptScan{ID: uuid.New(), Items: []entities.DetectedItem{{Name: "Milk"}}}})
	require.NoError(t, err)

	next, err := Reduce(state, ConfirmScan{ScanID: uuid.New(), AddedAt: testNow})
	assert.ErrorIs(t, err, domain.ErrScanChanged)
	assert.NotNil(t, next.Scan)
	assert.Empty(t, next.Items)
}

func TestConfirmScanRejectsEmptyNames(t *testing.T) {
	scan := entities.ReceiptScan{ID: uuid.New(), Items: []entities.DetectedItem{{Name: "Milk"}, {Name: " "}}}
	state, err := Reduce(NewState(), OpenScan{Scan: scan})
	require.NoError(t, err)

	next, err := Reduce(state, ConfirmScan{ScanID: scan.ID, AddedAt: testNow})
	assert.ErrorIs(t, err, domain.ErrEmptyItemName)
	assert.NotNil(t, next.Scan)
	assert.Empty(t, next.Items)
}
