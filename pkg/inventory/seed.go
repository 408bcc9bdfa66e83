package inventory

import (
	"FridgeMate/entities"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemoState is the sample fridge shown on first launch when demo data is enabled.
func DemoState(now time.Time) State {
	state := NewState()
	day := 24 * time.Hour

	state.Items = []entities.FoodItem{
		{ID: uuid.New(), Name: "Milk", Category: "Dairy", Quantity: "1L", ExpiryDate: now.Add(2 * day), AddedDate: now},
		{ID: uuid.New(), Name: "Eggs", Category: "Dairy", Quantity: "12 pcs", ExpiryDate: now.Add(8 * day), AddedDate: now},
		{ID: uuid.New(), Name: "Spinach", Category: "Vegetables", Quantity: "1 bag", ExpiryDate: now.Add(-1 * day), AddedDate: now},
		{ID: uuid.New(), Name: "Chicken Breast", Category: "Meat", Quantity: "500g", ExpiryDate: now.Add(3 * day), AddedDate: now},
	}
	state.Stats = entities.ImpactStats{
		MoneySaved:         decimal.RequireFromString("124.50"),
		FoodWasteReducedKg: decimal.RequireFromString("4.2"),
		CO2SavedKg:         decimal.RequireFromString("10.5"),
		ItemsTracked:       45,
	}
	return state
}
