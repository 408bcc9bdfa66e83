package routes

import (
	"FridgeMate/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	FoodHandler   handlers.FoodHandler
	RecipeHandler handlers.RecipeHandler
	ViewHandler   handlers.ViewHandler
}

func (c *Config) Setup() {
	c.GuestRoute()
	c.FoodItems()
	c.Recipes()
	c.View()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items")
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)

	// receipt review, registered before /:id so the static paths win
	foodItems.Post("/receipt-scan", c.FoodHandler.UploadReceipt)
	foodItems.Get("/receipt-scan", c.FoodHandler.GetReceiptScan)
	foodItems.Delete("/receipt-scan", c.FoodHandler.DiscardReceiptScan)
	foodItems.Patch("/receipt-scan/items/:index", c.FoodHandler.RenameScannedItem)
	foodItems.Delete("/receipt-scan/items/:index", c.FoodHandler.RemoveScannedItem)
	foodItems.Post("/save-scanned", c.FoodHandler.SaveScannedItems)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Post("/:id/consume", c.FoodHandler.ConsumeFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	recipes.Get("/styles", c.RecipeHandler.GetRecipeStyles)
	recipes.Put("/style", c.RecipeHandler.SetRecipeStyle)
	recipes.Post("/generate", c.RecipeHandler.GenerateRecipes)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
}

func (c *Config) View() {
	c.App.Get("/api/v1/view", c.ViewHandler.GetView)
	c.App.Put("/api/v1/view", c.ViewHandler.SetView)
}
