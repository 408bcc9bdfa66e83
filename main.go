package main

import (
	"FridgeMate/cmd/config"
	"FridgeMate/internal/utils"
	"FridgeMate/pkg/gemini"

	"github.com/sirupsen/logrus"
)

func main() {
	utils.LoadConfig()

	accessLog, err := utils.SetupLogger()
	if err != nil {
		utils.Logger().WithError(err).Warn("log file unavailable, logging to stdout only")
	}

	if utils.GetConfig("GEMINI_API_KEY") == "" {
		utils.Logger().Warn("GEMINI_API_KEY is not set; image analysis and recipe generation will fail")
	}

	app, err := config.NewApp(gemini.NewGeminiClient(), accessLog)
	if err != nil {
		utils.Logger().WithError(err).Fatal("failed to build app")
	}

	port := utils.GetConfig("APP_PORT")
	utils.Logger().WithFields(logrus.Fields{
		"port":  port,
		"model": utils.GetConfig("GEMINI_MODEL"),
	}).Info("starting server")

	if err := app.Listen(":" + port); err != nil {
		utils.Logger().WithError(err).Fatal("server stopped")
	}
}
