package inventory

import (
	"FridgeMate/domain"
	"FridgeMate/entities"
	"FridgeMate/internal/utils"
	"FridgeMate/pkg/expiry"
	"FridgeMate/pkg/gemini"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// historicalSavings is the simulated saving history shown before the current month.
var historicalSavings = []float64{40, 35, 50}

type (
	InventoryService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, status string) (domain.InventoryResponse, error)
		ConsumeFoodItem(ctx context.Context, id string) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error)

		ScanReceipt(ctx context.Context, req domain.UploadReceiptRequest) (domain.ReceiptScanResponse, error)
		GetPendingScan(ctx context.Context) (domain.ReceiptScanResponse, error)
		RenameScannedItem(ctx context.Context, index int, req domain.RenameScannedItemRequest) (domain.ReceiptScanResponse, error)
		RemoveScannedItem(ctx context.Context, index int) (domain.ReceiptScanResponse, error)
		SaveScannedItems(ctx context.Context) (domain.SaveScannedItemsResponse, error)
		DiscardScan(ctx context.Context) error

		SetView(ctx context.Context, req domain.SetViewRequest) (domain.ViewResponse, error)
		GetView(ctx context.Context) domain.ViewResponse
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		gateway             gemini.Gateway
		busy                *semaphore.Weighted
		now                 func() time.Time
	}
)

// NewInventoryService wires the service. busy is shared with every other
// service that talks to the gateway so only one analysis runs at a time.
func NewInventoryService(inventoryRepository InventoryRepository, gateway gemini.Gateway, busy *semaphore.Weighted, now func() time.Time) InventoryService {
	if now == nil {
		now = time.Now
	}
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		gateway:             gateway,
		busy:                busy,
		now:                 now,
	}
}

func (s *inventoryService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.FoodItemResponse{}, domain.ErrEmptyItemName
	}

	now := s.now()
	var expiryDate time.Time
	switch {
	case req.ExpiryDate != "":
		parsed, err := time.ParseInLocation("2006-01-02", req.ExpiryDate, now.Location())
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = parsed
	case req.DaysUntilExpiry != nil:
		expiryDate = now.AddDate(0, 0, *req.DaysUntilExpiry)
	default:
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	item := entities.FoodItem{
		ID:         uuid.New(),
		Name:       name,
		Category:   orDefault(req.Category, gemini.DefaultCategory),
		Quantity:   orDefault(req.Quantity, gemini.DefaultQuantity),
		ExpiryDate: expiryDate,
		AddedDate:  now,
	}

	if _, err := s.inventoryRepository.Dispatch(AddItems{Items: []entities.FoodItem{item}}); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(item, now), nil
}

func (s *inventoryService) GetFoodItems(ctx context.Context, status string) (domain.InventoryResponse, error) {
	if status != "" && !expiry.IsValidStatus(status) {
		return domain.InventoryResponse{}, domain.ErrInvalidStatusFilter
	}

	now := s.now()
	state := s.inventoryRepository.Snapshot()

	items := make([]domain.FoodItemResponse, 0, len(state.Items))
	for _, item := range expiry.SortByExpiry(state.Items) {
		res := toFoodItemResponse(item, now)
		if status != "" && res.Status != status {
			continue
		}
		items = append(items, res)
	}

	return domain.InventoryResponse{
		Items: items,
		Total: len(items),
	}, nil
}

func (s *inventoryService) ConsumeFoodItem(ctx context.Context, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	_, err = s.inventoryRepository.Dispatch(Consume{ID: itemID})
	return err
}

func (s *inventoryService) DeleteFoodItem(ctx context.Context, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	_, err = s.inventoryRepository.Dispatch(Delete{ID: itemID})
	return err
}

func (s *inventoryService) GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error) {
	now := s.now()
	state := s.inventoryRepository.Snapshot()

	res := domain.DashboardStatsResponse{
		MoneySaved:         state.Stats.MoneySaved.StringFixed(2),
		FoodWasteReducedKg: state.Stats.FoodWasteReducedKg.StringFixed(1),
		CO2SavedKg:         state.Stats.CO2SavedKg.StringFixed(1),
		ItemsTracked:       state.Stats.ItemsTracked,
		CurrentItems:       len(state.Items),
		MonthlySavings:     monthlySavings(now, state.Stats.MoneySaved.InexactFloat64()),
	}

	for _, item := range state.Items {
		switch expiry.Bucket(expiry.DaysLeft(item.ExpiryDate, now)) {
		case domain.StatusFresh:
			res.FreshItems++
		case domain.StatusExpiringSoon:
			res.ExpiringSoonItems++
		case domain.StatusExpired:
			res.ExpiredItems++
		}
	}

	return res, nil
}

// ScanReceipt runs image analysis and opens a review of the detected items.
// Nothing is added to the inventory until SaveScannedItems.
func (s *inventoryService) ScanReceipt(ctx context.Context, req domain.UploadReceiptRequest) (domain.ReceiptScanResponse, error) {
	if req.ReceiptImage == nil {
		return domain.ReceiptScanResponse{}, domain.ErrEmptyImage
	}

	file, err := req.ReceiptImage.Open()
	if err != nil {
		return domain.ReceiptScanResponse{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.ReceiptScanResponse{}, err
	}

	if !s.busy.TryAcquire(1) {
		return domain.ReceiptScanResponse{}, domain.ErrGatewayBusy
	}
	defer s.busy.Release(1)

	seq := s.inventoryRepository.Snapshot().NavigationSeq

	detected, err := s.gateway.AnalyzeImage(ctx, data)
	if err != nil {
		if errors.Is(err, domain.ErrGeminiProcessingFailed) {
			utils.LogError("inventory", "ScanReceipt", "AnalyzeImage", req.ReceiptImage.Filename, err)
		}
		return domain.ReceiptScanResponse{}, err
	}

	scan := entities.ReceiptScan{
		ID:        uuid.New(),
		MimeType:  req.ReceiptImage.Header.Get("Content-Type"),
		ScannedAt: s.now(),
		Items:     detected,
	}

	state, err := s.inventoryRepository.Dispatch(OpenScan{Scan: scan, Seq: seq})
	if err != nil {
		if errors.Is(err, domain.ErrResultDiscarded) {
			utils.Logger().WithFields(logrus.Fields{
				"module": "inventory",
				"scanID": scan.ID.String(),
				"items":  len(detected),
			}).Info("scan result dropped after navigation")
		}
		return domain.ReceiptScanResponse{}, err
	}

	return toReceiptScanResponse(state.Scan, s.now()), nil
}

func (s *inventoryService) GetPendingScan(ctx context.Context) (domain.ReceiptScanResponse, error) {
	state := s.inventoryRepository.Snapshot()
	if state.Scan == nil {
		return domain.ReceiptScanResponse{}, domain.ErrNoPendingScan
	}
	return toReceiptScanResponse(state.Scan, s.now()), nil
}

func (s *inventoryService) RenameScannedItem(ctx context.Context, index int, req domain.RenameScannedItemRequest) (domain.ReceiptScanResponse, error) {
	state, err := s.inventoryRepository.Dispatch(RenameScannedItem{Index: index, Name: strings.TrimSpace(req.Name)})
	if err != nil {
		return domain.ReceiptScanResponse{}, err
	}
	return toReceiptScanResponse(state.Scan, s.now()), nil
}

func (s *inventoryService) RemoveScannedItem(ctx context.Context, index int) (domain.ReceiptScanResponse, error) {
	state, err := s.inventoryRepository.Dispatch(RemoveScannedItem{Index: index})
	if err != nil {
		return domain.ReceiptScanResponse{}, err
	}
	return toReceiptScanResponse(state.Scan, s.now()), nil
}

// SaveScannedItems turns every reviewed item into an inventory item in one
// step. The review is read under the repository lock, so a rename that was
// acknowledged before this call is always saved.
func (s *inventoryService) SaveScannedItems(ctx context.Context) (domain.SaveScannedItemsResponse, error) {
	pending := s.inventoryRepository.Snapshot().Scan
	if pending == nil {
		return domain.SaveScannedItemsResponse{}, domain.ErrNoPendingScan
	}

	now := s.now()
	var ids []uuid.UUID
	state, err := s.inventoryRepository.Dispatch(ConfirmScan{
		ScanID:  pending.ID,
		AddedAt: now,
		NewID: func() uuid.UUID {
			id := uuid.New()
			ids = append(ids, id)
			return id
		},
	})
	if err != nil {
		return domain.SaveScannedItemsResponse{}, err
	}

	saved := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		saved[id] = true
	}

	res := domain.SaveScannedItemsResponse{
		Items: make([]domain.FoodItemResponse, 0, len(ids)),
		Added: len(ids),
	}
	for _, item := range state.Items {
		if saved[item.ID] {
			res.Items = append(res.Items, toFoodItemResponse(item, now))
		}
	}
	return res, nil
}

func (s *inventoryService) DiscardScan(ctx context.Context) error {
	if s.inventoryRepository.Snapshot().Scan == nil {
		return domain.ErrNoPendingScan
	}
	_, err := s.inventoryRepository.Dispatch(DiscardScan{})
	return err
}

func (s *inventoryService) SetView(ctx context.Context, req domain.SetViewRequest) (domain.ViewResponse, error) {
	state, err := s.inventoryRepository.Dispatch(SetView{View: req.View})
	if err != nil {
		return domain.ViewResponse{}, err
	}
	return domain.ViewResponse{View: state.View, NavigationSeq: state.NavigationSeq}, nil
}

func (s *inventoryService) GetView(ctx context.Context) domain.ViewResponse {
	state := s.inventoryRepository.Snapshot()
	return domain.ViewResponse{View: state.View, NavigationSeq: state.NavigationSeq}
}

func toFoodItemResponse(item entities.FoodItem, now time.Time) domain.FoodItemResponse {
	c := expiry.Classify(item.ExpiryDate, now)
	return domain.FoodItemResponse{
		ID:         item.ID.String(),
		Name:       item.Name,
		Category:   item.Category,
		Quantity:   item.Quantity,
		ExpiryDate: item.ExpiryDate,
		AddedDate:  item.AddedDate,
		Status:     c.Status,
		DaysLeft:   c.DaysLeft,
		Label:      c.Label,
	}
}

func toReceiptScanResponse(scan *entities.ReceiptScan, now time.Time) domain.ReceiptScanResponse {
	res := domain.ReceiptScanResponse{
		ScanID:    scan.ID.String(),
		ScannedAt: scan.ScannedAt,
		Items:     make([]domain.ScannedItemResponse, 0, len(scan.Items)),
	}
	for i, item := range scan.Items {
		res.Items = append(res.Items, domain.ScannedItemResponse{
			Index:      i,
			Name:       item.Name,
			Category:   item.Category,
			Quantity:   item.Quantity,
			ExpiryDate: item.ExpiryDate,
			DaysLeft:   expiry.DaysLeft(item.ExpiryDate, now),
		})
	}
	return res
}

// monthlySavings returns the three previous months followed by the current
// month, which carries the live total.
func monthlySavings(now time.Time, current float64) []domain.MonthlySaving {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	out := make([]domain.MonthlySaving, 0, len(historicalSavings)+1)
	for i, saved := range historicalSavings {
		month := firstOfMonth.AddDate(0, i-len(historicalSavings), 0)
		out = append(out, domain.MonthlySaving{Month: month.Month().String()[:3], Saved: saved})
	}
	return append(out, domain.MonthlySaving{Month: now.Month().String()[:3], Saved: current})
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
