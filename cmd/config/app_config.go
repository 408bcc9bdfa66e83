package config

import (
	"FridgeMate/internal/api/handlers"
	"FridgeMate/internal/api/routes"
	"FridgeMate/internal/middleware"
	"FridgeMate/internal/utils"
	"FridgeMate/pkg/gemini"
	"FridgeMate/pkg/inventory"
	"FridgeMate/pkg/recipe"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/semaphore"
)

// NewApp builds the HTTP application around one in-memory session. The
// gateway is injected so tests can swap the Gemini client out.
func NewApp(gateway gemini.Gateway, accessLog io.Writer) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		BodyLimit: utils.GetConfigInt("REQUEST_BODY_LIMIT_BYTES", 10*1024*1024),
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	app.Use(middlewares.RecoverMiddleware())
	app.Use(middlewares.AccessLogMiddleware(accessLog))
	app.Use(middlewares.CORSMiddleware())

	initial := inventory.NewState()
	if utils.GetConfigBool("SEED_DEMO_DATA") {
		initial = inventory.DemoState(time.Now())
		utils.Logger().WithField("items", len(initial.Items)).Info("seeded demo inventory")
	}

	// gateway calls from any service share one busy flag
	busy := semaphore.NewWeighted(1)

	// Repository
	inventoryRepository := inventory.NewInventoryRepository(initial)
	recipeRepository := recipe.NewRecipeRepository(inventoryRepository)

	// Service
	inventoryService := inventory.NewInventoryService(inventoryRepository, gateway, busy, time.Now)
	recipeService := recipe.NewRecipeService(recipeRepository, gateway, busy, time.Now)

	// Handler
	foodHandler := handlers.NewFoodHandler(inventoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	viewHandler := handlers.NewViewHandler(inventoryService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		FoodHandler:   foodHandler,
		RecipeHandler: recipeHandler,
		ViewHandler:   viewHandler,
	}
	routesConfig.Setup()
	return app, nil
}
