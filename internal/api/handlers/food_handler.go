package handlers

import (
	"FridgeMate/domain"
	"FridgeMate/internal/api/presenters"
	"FridgeMate/pkg/inventory"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		ConsumeFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
		UploadReceipt(c *fiber.Ctx) error
		GetReceiptScan(c *fiber.Ctx) error
		RenameScannedItem(c *fiber.Ctx) error
		RemoveScannedItem(c *fiber.Ctx) error
		DiscardReceiptScan(c *fiber.Ctx) error
		SaveScannedItems(c *fiber.Ctx) error
	}

	foodHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewFoodHandler(inventoryService inventory.InventoryService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.inventoryService.AddFoodItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	status := c.Query("status")
	if status == "all" {
		status = ""
	}

	res, err := h.inventoryService.GetFoodItems(c.Context(), status)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) ConsumeFoodItem(c *fiber.Ctx) error {
	if err := h.inventoryService.ConsumeFoodItem(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedConsumeFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessConsumeFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	if err := h.inventoryService.DeleteFoodItem(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) GetDashboardStats(c *fiber.Ctx) error {
	res, err := h.inventoryService.GetDashboardStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetDashboardStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboardStats)
}

func (h *foodHandler) UploadReceipt(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	req := domain.UploadReceiptRequest{ReceiptImage: file}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	res, err := h.inventoryService.ScanReceipt(c.Context(), req)
	if err != nil {
		message := domain.MessageFailedUploadReceipt
		if errors.Is(err, domain.ErrGeminiProcessingFailed) {
			message = domain.MessageFailedProcessReceipt
		}
		return presenters.ErrorResponse(c, errorStatus(err), message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadReceipt)
}

func (h *foodHandler) GetReceiptScan(c *fiber.Ctx) error {
	res, err := h.inventoryService.GetPendingScan(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetReceiptScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceiptScan)
}

func (h *foodHandler) RenameScannedItem(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateScannedItem, domain.ErrScannedItemNotFound)
	}

	req := new(domain.RenameScannedItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateScannedItem, err)
	}

	res, err := h.inventoryService.RenameScannedItem(c.Context(), index, *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateScannedItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateScannedItem)
}

func (h *foodHandler) RemoveScannedItem(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveScannedItem, domain.ErrScannedItemNotFound)
	}

	res, err := h.inventoryService.RemoveScannedItem(c.Context(), index)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedRemoveScannedItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveScannedItem)
}

func (h *foodHandler) DiscardReceiptScan(c *fiber.Ctx) error {
	if err := h.inventoryService.DiscardScan(c.Context()); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDiscardScan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDiscardScan)
}

func (h *foodHandler) SaveScannedItems(c *fiber.Ctx) error {
	res, err := h.inventoryService.SaveScannedItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSaveScannedItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveScannedItems)
}
