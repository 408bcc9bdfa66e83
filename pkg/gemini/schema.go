package gemini

import (
	"fmt"
	"strings"
)

// Schema is the subset of the OpenAPI schema object accepted as responseSchema.
type Schema struct {
	Type             string             `json:"type"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
	Items            *Schema            `json:"items,omitempty"`
	Required         []string           `json:"required,omitempty"`
}

const (
	TypeArray   = "ARRAY"
	TypeObject  = "OBJECT"
	TypeString  = "STRING"
	TypeInteger = "INTEGER"
)

const imagePrompt = "Analyze this image of groceries/receipt. Identify food items. " +
	"For each item, predict a realistic category and typical shelf life in days from now " +
	"(default to 7 if unknown). Return a JSON array."

const defaultStyleInstruction = "The recipes should be healthy and creative."

var detectedItemsSchema = &Schema{
	Type: TypeArray,
	Items: &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"name":            {Type: TypeString},
			"category":        {Type: TypeString},
			"quantity":        {Type: TypeString},
			"daysUntilExpiry": {Type: TypeInteger},
		},
		PropertyOrdering: []string{"name", "category", "quantity", "daysUntilExpiry"},
		Required:         []string{"name", "category", "daysUntilExpiry"},
	},
}

var recipesSchema = &Schema{
	Type: TypeArray,
	Items: &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":              {Type: TypeString},
			"description":        {Type: TypeString},
			"ingredientsUsed":    {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"missingIngredients": {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"instructions":       {Type: TypeArray, Items: &Schema{Type: TypeString}},
			"cookingTime":        {Type: TypeString},
			"calories":           {Type: TypeInteger},
		},
		PropertyOrdering: []string{
			"title", "description", "ingredientsUsed", "missingIngredients",
			"instructions", "cookingTime", "calories",
		},
		Required: []string{"title", "ingredientsUsed", "instructions"},
	},
}

func BuildRecipePrompt(ingredients []string, style string) string {
	styleInstruction := defaultStyleInstruction
	if style != "" {
		styleInstruction = fmt.Sprintf("The recipes should follow this style: %q.", style)
	}

	return styleInstruction + "\n" +
		"Create 3 recipes using some of these ingredients: " + strings.Join(ingredients, ", ") + ".\n" +
		"Prioritize using as many input ingredients as possible to reduce waste."
}

// DedupeIngredients trims names and keeps the first spelling of each
// case-insensitive duplicate.
func DedupeIngredients(ingredients []string) []string {
	seen := make(map[string]bool, len(ingredients))
	out := make([]string, 0, len(ingredients))
	for _, name := range ingredients {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}
