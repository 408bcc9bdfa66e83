package gemini

import (
	"FridgeMate/entities"
	"FridgeMate/internal/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	OpAnalyzeImage    = "analyzeImage"
	OpGenerateRecipes = "generateRecipes"

	DefaultDaysUntilExpiry = 7
	DefaultQuantity        = "1 unit"
	DefaultCategory        = "Pantry"

	// MaxShelfLifeDays bounds model shelf-life estimates in both directions.
	MaxShelfLifeDays = 3650
)

var tracer = otel.Tracer("FridgeMate/gemini")

// Gateway is everything the application asks of the generative model.
type Gateway interface {
	AnalyzeImage(ctx context.Context, image []byte) ([]entities.DetectedItem, error)
	GenerateRecipes(ctx context.Context, ingredients []string, style string) ([]entities.Recipe, error)
}

type (
	detectedItemPayload struct {
		Name            *string  `json:"name"`
		Category        *string  `json:"category"`
		Quantity        *string  `json:"quantity"`
		DaysUntilExpiry *float64 `json:"daysUntilExpiry"`
	}

	recipePayload struct {
		Title              *string  `json:"title"`
		Description        *string  `json:"description"`
		IngredientsUsed    []string `json:"ingredientsUsed"`
		MissingIngredients []string `json:"missingIngredients"`
		Instructions       []string `json:"instructions"`
		CookingTime        *string  `json:"cookingTime"`
		Calories           *float64 `json:"calories"`
	}
)

// AnalyzeImage asks the model to list the food items in a photo. An empty list
// is a valid answer.
func (c *Client) AnalyzeImage(ctx context.Context, image []byte) ([]entities.DetectedItem, error) {
	ctx, span := tracer.Start(ctx, OpAnalyzeImage)
	defer span.End()

	payload, mimeType, err := PrepareImage(image)
	if err != nil {
		endSpan(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("image.mime_type", mimeType), attribute.Int("image.bytes", len(payload)))

	text, err := c.generate(ctx, OpAnalyzeImage, []part{imagePart(mimeType, payload), textPart(imagePrompt)}, detectedItemsSchema, 0.1)
	if err != nil {
		endSpan(span, err)
		return nil, err
	}

	items, err := c.parseDetectedItems(text)
	if err != nil {
		endSpan(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("items.detected", len(items)))
	return items, nil
}

func (c *Client) parseDetectedItems(text string) ([]entities.DetectedItem, error) {
	records, err := decodeArray(OpAnalyzeImage, text)
	if err != nil {
		return nil, err
	}

	now := c.now()
	items := make([]entities.DetectedItem, 0, len(records))
	for i, record := range records {
		var p detectedItemPayload
		if err := json.Unmarshal(record, &p); err != nil {
			return nil, schemaError(OpAnalyzeImage, i, err)
		}
		item, err := p.toDetectedItem(i, now)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (p detectedItemPayload) toDetectedItem(index int, now time.Time) (entities.DetectedItem, error) {
	if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
		return entities.DetectedItem{}, schemaError(OpAnalyzeImage, index, errors.New("missing name"))
	}

	item := entities.DetectedItem{
		Name:     strings.TrimSpace(*p.Name),
		Category: DefaultCategory,
		Quantity: DefaultQuantity,
	}

	if p.Category != nil && strings.TrimSpace(*p.Category) != "" {
		item.Category = strings.TrimSpace(*p.Category)
	} else {
		logGap(OpAnalyzeImage, index, "category", DefaultCategory)
	}

	if p.Quantity != nil && strings.TrimSpace(*p.Quantity) != "" {
		item.Quantity = strings.TrimSpace(*p.Quantity)
	}

	days := DefaultDaysUntilExpiry
	if p.DaysUntilExpiry != nil {
		days = clampDays(*p.DaysUntilExpiry)
	} else {
		logGap(OpAnalyzeImage, index, "daysUntilExpiry", DefaultDaysUntilExpiry)
	}
	item.ExpiryDate = now.AddDate(0, 0, days)

	return item, nil
}

// GenerateRecipes asks for three recipes built from the given ingredients.
// The list is deduplicated here; an empty list is still sent.
func (c *Client) GenerateRecipes(ctx context.Context, ingredients []string, style string) ([]entities.Recipe, error) {
	ctx, span := tracer.Start(ctx, OpGenerateRecipes)
	defer span.End()

	ingredients = DedupeIngredients(ingredients)
	style = strings.TrimSpace(style)
	span.SetAttributes(attribute.Int("ingredients", len(ingredients)), attribute.String("style", style))

	text, err := c.generate(ctx, OpGenerateRecipes, []part{textPart(BuildRecipePrompt(ingredients, style))}, recipesSchema, 0.7)
	if err != nil {
		endSpan(span, err)
		return nil, err
	}

	recipes, err := parseRecipes(text)
	if err != nil {
		endSpan(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("recipes", len(recipes)))
	return recipes, nil
}

func parseRecipes(text string) ([]entities.Recipe, error) {
	records, err := decodeArray(OpGenerateRecipes, text)
	if err != nil {
		return nil, err
	}

	recipes := make([]entities.Recipe, 0, len(records))
	for i, record := range records {
		var p recipePayload
		if err := json.Unmarshal(record, &p); err != nil {
			return nil, schemaError(OpGenerateRecipes, i, err)
		}
		recipe, err := p.toRecipe(i)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (p recipePayload) toRecipe(index int) (entities.Recipe, error) {
	switch {
	case p.Title == nil || strings.TrimSpace(*p.Title) == "":
		return entities.Recipe{}, schemaError(OpGenerateRecipes, index, errors.New("missing title"))
	case p.IngredientsUsed == nil:
		return entities.Recipe{}, schemaError(OpGenerateRecipes, index, errors.New("missing ingredientsUsed"))
	case p.Instructions == nil:
		return entities.Recipe{}, schemaError(OpGenerateRecipes, index, errors.New("missing instructions"))
	}

	recipe := entities.Recipe{
		ID:                 uuid.New(),
		Title:              strings.TrimSpace(*p.Title),
		IngredientsUsed:    p.IngredientsUsed,
		MissingIngredients: []string{},
		Instructions:       p.Instructions,
	}
	if p.Description != nil {
		recipe.Description = *p.Description
	}
	if p.MissingIngredients != nil {
		recipe.MissingIngredients = p.MissingIngredients
	}
	if p.CookingTime != nil {
		recipe.CookingTime = *p.CookingTime
	}
	if p.Calories != nil {
		recipe.Calories = int(math.Round(*p.Calories))
	}
	return recipe, nil
}

func clampDays(days float64) int {
	if math.IsNaN(days) {
		return DefaultDaysUntilExpiry
	}
	return int(math.Round(math.Max(-MaxShelfLifeDays, math.Min(MaxShelfLifeDays, days))))
}

func schemaError(op string, index int, err error) error {
	return &GatewayError{Op: op, Reason: ReasonSchema, Err: fmt.Errorf("record %d: %w", index, err)}
}

func logGap(op string, index int, field string, fallback any) {
	utils.Logger().WithFields(logrus.Fields{
		"module":  "gemini",
		"op":      op,
		"record":  index,
		"field":   field,
		"default": fallback,
	}).Debug("optional field missing, using default")
}

func endSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
