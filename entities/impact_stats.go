package entities

import (
	"github.com/shopspring/decimal"
)

var (
	ConsumeMoneySaved   = decimal.RequireFromString("3.50")
	ConsumeWasteReduced = decimal.RequireFromString("0.5")
	ConsumeCO2Saved     = decimal.RequireFromString("1.2")
)

// ImpactStats holds session totals. They only ever grow.
type ImpactStats struct {
	MoneySaved         decimal.Decimal `json:"money_saved"`
	FoodWasteReducedKg decimal.Decimal `json:"food_waste_reduced_kg"`
	CO2SavedKg         decimal.Decimal `json:"co2_saved_kg"`
	ItemsTracked       int             `json:"items_tracked"`
}

func (s ImpactStats) WithItemsTracked(n int) ImpactStats {
	s.ItemsTracked += n
	return s
}

func (s ImpactStats) WithConsumedItem() ImpactStats {
	s.MoneySaved = s.MoneySaved.Add(ConsumeMoneySaved)
	s.FoodWasteReducedKg = s.FoodWasteReducedKg.Add(ConsumeWasteReduced)
	s.CO2SavedKg = s.CO2SavedKg.Add(ConsumeCO2Saved)
	return s
}
