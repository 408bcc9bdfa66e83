package handlers

import (
	"FridgeMate/domain"
	"FridgeMate/internal/api/presenters"
	"FridgeMate/pkg/recipe"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GenerateRecipes(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetRecipeStyles(c *fiber.Ctx) error
		SetRecipeStyle(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GenerateRecipes(c *fiber.Ctx) error {
	req := new(domain.GenerateRecipesRequest)

	// an empty body means "use the selected style"
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateRecipes, err)
	}

	res, err := h.recipeService.GenerateRecipes(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrNoIngredients) {
			return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageNoIngredientsAvailable)
		}
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGenerateRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateRecipes)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.recipeService.GetRecipes(c.Context()), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeDetail(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetRecipeStyles(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.recipeService.GetStyles(c.Context()), fiber.StatusOK, domain.MessageSuccessGetRecipeStyles)
}

func (h *recipeHandler) SetRecipeStyle(c *fiber.Ctx) error {
	req := new(domain.SetRecipeStyleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetRecipeStyle, err)
	}

	res, err := h.recipeService.SetStyle(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSetRecipeStyle, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSetRecipeStyle)
}
