package inventory

import (
	"FridgeMate/domain"
	"FridgeMate/entities"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// State is the whole session: inventory, impact totals, the last recipe
// results and what the user is currently looking at. Reduce never mutates a
// State it is given.
type State struct {
	Items         []entities.FoodItem
	Stats         entities.ImpactStats
	Recipes       []entities.Recipe
	Style         string
	View          string
	NavigationSeq uint64
	Scan          *entities.ReceiptScan
}

type (
	Action interface {
		actionName() string
	}

	AddItems struct {
		Items []entities.FoodItem
	}

	Consume struct {
		ID uuid.UUID
	}

	Delete struct {
		ID uuid.UUID
	}

	SetStyle struct {
		Style string
	}

	SetView struct {
		View string
	}

	// SetRecipes replaces the recipe set if no navigation happened since Seq was read.
	SetRecipes struct {
		Recipes []entities.Recipe
		Seq     uint64
	}

	OpenScan struct {
		Scan entities.ReceiptScan
		Seq  uint64
	}

	RenameScannedItem struct {
		Index int
		Name  string
	}

	RemoveScannedItem struct {
		Index int
	}

	// ConfirmScan moves the items of the open review into the inventory. The
	// items are built from the review as it is when the action is applied, so
	// edits dispatched earlier are never lost. ScanID must name the open
	// review. NewID is called once per item, in order; nil means uuid.New.
	ConfirmScan struct {
		ScanID  uuid.UUID
		AddedAt time.Time
		NewID   func() uuid.UUID
	}

	DiscardScan struct{}
)

func (AddItems) actionName() string          { return "AddItems" }
func (Consume) actionName() string           { return "Consume" }
func (Delete) actionName() string            { return "Delete" }
func (SetStyle) actionName() string          { return "SetStyle" }
func (SetView) actionName() string           { return "SetView" }
func (SetRecipes) actionName() string        { return "SetRecipes" }
func (OpenScan) actionName() string          { return "OpenScan" }
func (RenameScannedItem) actionName() string { return "RenameScannedItem" }
func (RemoveScannedItem) actionName() string { return "RemoveScannedItem" }
func (ConfirmScan) actionName() string       { return "ConfirmScan" }
func (DiscardScan) actionName() string       { return "DiscardScan" }

func NewState() State {
	return State{
		Items:   []entities.FoodItem{},
		Recipes: []entities.Recipe{},
		View:    domain.ViewInventory,
	}
}

// Reduce applies one action. On error the returned state is the input state.
func Reduce(state State, action Action) (State, error) {
	next := state.Clone()

	switch a := action.(type) {
	case AddItems:
		next.Items = append(next.Items, a.Items...)
		next.Stats = next.Stats.WithItemsTracked(len(a.Items))

	case Consume:
		idx := indexOfItem(next.Items, a.ID)
		if idx < 0 {
			return state, domain.ErrFoodItemNotFound
		}
		next.Items = removeItem(next.Items, idx)
		next.Stats = next.Stats.WithConsumedItem()

	case Delete:
		idx := indexOfItem(next.Items, a.ID)
		if idx < 0 {
			return state, domain.ErrFoodItemNotFound
		}
		next.Items = removeItem(next.Items, idx)

	case SetStyle:
		next.Style = a.Style

	case SetView:
		if !isValidView(a.View) {
			return state, domain.ErrInvalidView
		}
		next.View = a.View
		next.NavigationSeq++

	case SetRecipes:
		if a.Seq != state.NavigationSeq {
			return state, domain.ErrResultDiscarded
		}
		next.Recipes = cloneRecipes(a.Recipes)

	case OpenScan:
		if a.Seq != state.NavigationSeq {
			return state, domain.ErrResultDiscarded
		}
		scan := cloneScan(&a.Scan)
		next.Scan = scan

	case RenameScannedItem:
		if next.Scan == nil {
			return state, domain.ErrNoPendingScan
		}
		if a.Index < 0 || a.Index >= len(next.Scan.Items) {
			return state, domain.ErrScannedItemNotFound
		}
		if strings.TrimSpace(a.Name) == "" {
			return state, domain.ErrEmptyItemName
		}
		next.Scan.Items[a.Index].Name = a.Name

	case RemoveScannedItem:
		if next.Scan == nil {
			return state, domain.ErrNoPendingScan
		}
		if a.Index < 0 || a.Index >= len(next.Scan.Items) {
			return state, domain.ErrScannedItemNotFound
		}
		items := next.Scan.Items
		next.Scan.Items = append(items[:a.Index:a.Index], items[a.Index+1:]...)

	case ConfirmScan:
		if next.Scan == nil {
			return state, domain.ErrNoPendingScan
		}
		if next.Scan.ID != a.ScanID {
			return state, domain.ErrScanChanged
		}
		for _, detected := range next.Scan.Items {
			if strings.TrimSpace(detected.Name) == "" {
				return state, domain.ErrEmptyItemName
			}
		}
		newID := a.NewID
		if newID == nil {
			newID = uuid.New
		}
		for _, detected := range next.Scan.Items {
			next.Items = append(next.Items, entities.FoodItem{
				ID:         newID(),
				Name:       detected.Name,
				Category:   detected.Category,
				Quantity:   detected.Quantity,
				ExpiryDate: detected.ExpiryDate,
				AddedDate:  a.AddedAt,
			})
		}
		next.Stats = next.Stats.WithItemsTracked(len(next.Scan.Items))
		next.Scan = nil

	case DiscardScan:
		next.Scan = nil

	default:
		return state, fmt.Errorf("unknown action %T", action)
	}

	return next, nil
}

// Clone copies every slice so that callers can hand the result out freely.
func (s State) Clone() State {
	out := s
	out.Items = append([]entities.FoodItem{}, s.Items...)
	out.Recipes = cloneRecipes(s.Recipes)
	out.Scan = cloneScan(s.Scan)
	return out
}

func indexOfItem(items []entities.FoodItem, id uuid.UUID) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func removeItem(items []entities.FoodItem, idx int) []entities.FoodItem {
	out := make([]entities.FoodItem, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}

func cloneRecipes(recipes []entities.Recipe) []entities.Recipe {
	out := make([]entities.Recipe, len(recipes))
	for i, r := range recipes {
		r.IngredientsUsed = append([]string{}, r.IngredientsUsed...)
		r.MissingIngredients = append([]string{}, r.MissingIngredients...)
		r.Instructions = append([]string{}, r.Instructions...)
		out[i] = r
	}
	return out
}

func cloneScan(scan *entities.ReceiptScan) *entities.ReceiptScan {
	if scan == nil {
		return nil
	}
	out := *scan
	out.Items = append([]entities.DetectedItem{}, scan.Items...)
	return &out
}

func isValidView(view string) bool {
	switch view {
	case domain.ViewInventory, domain.ViewScan, domain.ViewRecipes, domain.ViewDashboard:
		return true
	}
	return false
}
