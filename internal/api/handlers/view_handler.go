package handlers

import (
	"FridgeMate/domain"
	"FridgeMate/internal/api/presenters"
	"FridgeMate/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	// ViewHandler tracks which screen the client is on. Changing it drops any
	// analysis result still in flight.
	ViewHandler interface {
		GetView(c *fiber.Ctx) error
		SetView(c *fiber.Ctx) error
	}

	viewHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewViewHandler(inventoryService inventory.InventoryService, validator *validator.Validate) ViewHandler {
	return &viewHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *viewHandler) GetView(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.inventoryService.GetView(c.Context()), fiber.StatusOK, domain.MessageSuccessGetView)
}

func (h *viewHandler) SetView(c *fiber.Ctx) error {
	req := new(domain.SetViewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetView, err)
	}

	res, err := h.inventoryService.SetView(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSetView, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSetView)
}
