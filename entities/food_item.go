package entities

import (
	"github.com/google/uuid"
	"time"
)

// FoodItem carries no status: freshness is derived from ExpiryDate when read.
type FoodItem struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   string    `json:"quantity"`
	ExpiryDate time.Time `json:"expiry_date"`
	AddedDate  time.Time `json:"added_date"`
}
