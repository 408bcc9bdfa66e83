package inventory

import (
	"FridgeMate/internal/utils"
	"sync"

	"github.com/sirupsen/logrus"
)

type (
	InventoryRepository interface {
		// Dispatch runs the action through Reduce and stores the result.
		Dispatch(action Action) (State, error)
		Snapshot() State
	}

	inventoryRepository struct {
		mu    sync.RWMutex
		state State
	}
)

func NewInventoryRepository(initial State) InventoryRepository {
	return &inventoryRepository{state: initial.Clone()}
}

func (r *inventoryRepository) Dispatch(action Action) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := Reduce(r.state, action)
	if err != nil {
		utils.Logger().WithFields(logrus.Fields{
			"module": "inventory",
			"action": action.actionName(),
		}).Debug(err.Error())
		return r.state.Clone(), err
	}

	r.state = next
	utils.Logger().WithFields(logrus.Fields{
		"module":        "inventory",
		"action":        action.actionName(),
		"items":         len(next.Items),
		"navigationSeq": next.NavigationSeq,
	}).Debug("state updated")
	return next.Clone(), nil
}

func (r *inventoryRepository) Snapshot() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Clone()
}
