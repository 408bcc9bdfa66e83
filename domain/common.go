package domain

import (
	"errors"
)

const (
	ViewInventory = "inventory"
	ViewScan      = "scan"
	ViewRecipes   = "recipes"
	ViewDashboard = "dashboard"
)

var (
	MessageFailedBodyRequest = "failed to parse request body"
	MessageSuccessGetView    = "current view retrieved successfully"
	MessageSuccessSetView    = "view changed successfully"
	MessageFailedSetView     = "failed to change view"

	ErrParseUUID       = errors.New("failed to parse UUID")
	ErrInvalidView     = errors.New("invalid view")
	ErrGatewayBusy     = errors.New("another analysis is already in progress")
	ErrResultDiscarded = errors.New("result discarded after navigation")
)

type (
	SetViewRequest struct {
		View string `json:"view" validate:"required,oneof=inventory scan recipes dashboard"`
	}

	ViewResponse struct {
		View          string `json:"view"`
		NavigationSeq uint64 `json:"navigation_seq"`
	}
)
