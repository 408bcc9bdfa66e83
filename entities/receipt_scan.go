package entities

import (
	"github.com/google/uuid"
	"time"
)

// DetectedItem is an item recognised in a photo that the user has not confirmed yet.
type DetectedItem struct {
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   string    `json:"quantity"`
	ExpiryDate time.Time `json:"expiry_date"`
}

type ReceiptScan struct {
	ID        uuid.UUID      `json:"id"`
	MimeType  string         `json:"mime_type"`
	ScannedAt time.Time      `json:"scanned_at"`
	Items     []DetectedItem `json:"items"`
}
