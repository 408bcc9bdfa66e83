package utils

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// HTTP server
	AppPort           string `yaml:"APP_PORT"`
	CORSAllowOrigins  string `yaml:"CORS_ALLOW_ORIGINS"`
	RequestBodyLimitB int    `yaml:"REQUEST_BODY_LIMIT_BYTES"`

	// Logging
	LogLevel string `yaml:"LOG_LEVEL"`
	LogFile  string `yaml:"LOG_FILE"`

	// Gemini API configuration
	GeminiAPIKey         string `yaml:"GEMINI_API_KEY"`
	GeminiModel          string `yaml:"GEMINI_MODEL"`
	GeminiBaseURL        string `yaml:"GEMINI_BASE_URL"`
	GeminiTimeoutSeconds int    `yaml:"GEMINI_TIMEOUT_SECONDS"`

	// Session
	SeedDemoData bool `yaml:"SEED_DEMO_DATA"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:              "8080",
		CORSAllowOrigins:     "*",
		RequestBodyLimitB:    10 * 1024 * 1024,
		LogLevel:             "info",
		LogFile:              "./logs/app.log",
		GeminiModel:          "gemini-2.5-flash",
		GeminiBaseURL:        "https://generativelanguage.googleapis.com",
		GeminiTimeoutSeconds: 30,
	}
}

// LoadConfig reads config.yaml, then lets .env and process environment
// variables override individual keys.
func LoadConfig() {
	LoadConfigFrom("config.yaml")
}

func LoadConfigFrom(path string) {
	config = defaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	_ = godotenv.Load()
	applyEnv()
}

func applyEnv() {
	for _, key := range []string{
		"APP_PORT", "CORS_ALLOW_ORIGINS", "LOG_LEVEL", "LOG_FILE",
		"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL",
	} {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			setString(key, v)
		}
	}
	if v := os.Getenv("GEMINI_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.GeminiTimeoutSeconds = n
		}
	}
	if v := os.Getenv("REQUEST_BODY_LIMIT_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.RequestBodyLimitB = n
		}
	}
	if v := os.Getenv("SEED_DEMO_DATA"); v != "" {
		config.SeedDemoData = strings.EqualFold(v, "true") || v == "1"
	}
}

func setString(key, value string) {
	switch key {
	case "APP_PORT":
		config.AppPort = value
	case "CORS_ALLOW_ORIGINS":
		config.CORSAllowOrigins = value
	case "LOG_LEVEL":
		config.LogLevel = value
	case "LOG_FILE":
		config.LogFile = value
	case "GEMINI_API_KEY":
		config.GeminiAPIKey = value
	case "GEMINI_MODEL":
		config.GeminiModel = value
	case "GEMINI_BASE_URL":
		config.GeminiBaseURL = value
	}
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "CORS_ALLOW_ORIGINS":
		return config.CORSAllowOrigins
	case "REQUEST_BODY_LIMIT_BYTES":
		return strconv.Itoa(config.RequestBodyLimitB)
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FILE":
		return config.LogFile
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	case "GEMINI_BASE_URL":
		return config.GeminiBaseURL
	case "GEMINI_TIMEOUT_SECONDS":
		return strconv.Itoa(config.GeminiTimeoutSeconds)
	case "SEED_DEMO_DATA":
		return getBoolString(config.SeedDemoData)
	default:
		return ""
	}
}

func GetConfigInt(key string, fallback int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return fallback
	}
	return n
}

func GetConfigBool(key string) bool {
	return GetConfig(key) == "true"
}
