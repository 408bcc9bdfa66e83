package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	StatusFresh        = "fresh"
	StatusExpiringSoon = "expiring_soon"
	StatusExpired      = "expired"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessConsumeFoodItem   = "food item marked as consumed"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessUploadReceipt     = "receipt analyzed successfully"
	MessageSuccessGetReceiptScan    = "receipt scan retrieved successfully"
	MessageSuccessUpdateScannedItem = "scanned item updated successfully"
	MessageSuccessRemoveScannedItem = "scanned item removed successfully"
	MessageSuccessDiscardScan       = "receipt scan discarded"
	MessageSuccessSaveScannedItems  = "scanned items saved successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedConsumeFoodItem   = "failed to mark food item as consumed"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedUploadReceipt     = "failed to upload receipt"
	MessageFailedProcessReceipt    = "failed to analyze image. please try again"
	MessageFailedGetReceiptScan    = "failed to retrieve receipt scan"
	MessageFailedUpdateScannedItem = "failed to update scanned item"
	MessageFailedRemoveScannedItem = "failed to remove scanned item"
	MessageFailedDiscardScan       = "failed to discard receipt scan"
	MessageFailedSaveScannedItems  = "failed to save scanned items"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound       = errors.New("food item not found")
	ErrInvalidExpiryDate      = errors.New("invalid expiry date")
	ErrInvalidImageFormat     = errors.New("invalid image format")
	ErrEmptyImage             = errors.New("image is empty")
	ErrEmptyItemName          = errors.New("item name must not be empty")
	ErrNoPendingScan          = errors.New("no receipt scan awaiting confirmation")
	ErrScannedItemNotFound    = errors.New("scanned item not found")
	ErrScanChanged            = errors.New("receipt scan was replaced, review it again")
	ErrInvalidStatusFilter    = errors.New("invalid status filter")
	ErrGeminiProcessingFailed = errors.New("gemini processing failed")
)

type (
	// AddFoodItemRequest is a manual entry. Either ExpiryDate (YYYY-MM-DD) or
	// DaysUntilExpiry must be given.
	AddFoodItemRequest struct {
		Name            string `json:"name" validate:"required"`
		Category        string `json:"category" validate:"omitempty,max=64"`
		Quantity        string `json:"quantity" validate:"omitempty,max=64"`
		ExpiryDate      string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
		DaysUntilExpiry *int   `json:"days_until_expiry" validate:"omitempty,min=-365,max=3650"`
	}

	FoodItemResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Category   string    `json:"category"`
		Quantity   string    `json:"quantity"`
		ExpiryDate time.Time `json:"expiry_date"`
		AddedDate  time.Time `json:"added_date"`
		Status     string    `json:"status"`
		DaysLeft   int       `json:"days_left"`
		Label      string    `json:"label"`
	}

	InventoryResponse struct {
		Items []FoodItemResponse `json:"items"`
		Total int                `json:"total"`
	}

	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ScannedItemResponse struct {
		Index      int       `json:"index"`
		Name       string    `json:"name"`
		Category   string    `json:"category"`
		Quantity   string    `json:"quantity"`
		ExpiryDate time.Time `json:"expiry_date"`
		DaysLeft   int       `json:"days_left"`
	}

	ReceiptScanResponse struct {
		ScanID    string                `json:"scan_id"`
		ScannedAt time.Time             `json:"scanned_at"`
		Items     []ScannedItemResponse `json:"items"`
	}

	RenameScannedItemRequest struct {
		Name string `json:"name" validate:"required"`
	}

	SaveScannedItemsResponse struct {
		Items []FoodItemResponse `json:"items"`
		Added int                `json:"added"`
	}

	MonthlySaving struct {
		Month string  `json:"month"`
		Saved float64 `json:"saved"`
	}

	DashboardStatsResponse struct {
		MoneySaved         string          `json:"money_saved"`
		FoodWasteReducedKg string          `json:"food_waste_reduced_kg"`
		CO2SavedKg         string          `json:"co2_saved_kg"`
		ItemsTracked       int             `json:"items_tracked"`
		CurrentItems       int             `json:"current_items"`
		FreshItems         int             `json:"fresh_items"`
		ExpiringSoonItems  int             `json:"expiring_soon_items"`
		ExpiredItems       int             `json:"expired_items"`
		MonthlySavings     []MonthlySaving `json:"monthly_savings"`
	}
)
