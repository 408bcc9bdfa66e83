package middleware

import (
	"FridgeMate/internal/utils"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AccessLogMiddleware(out io.Writer) fiber.Handler
		RecoverMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: utils.GetConfig("CORS_ALLOW_ORIGINS"),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

func (m *middleware) AccessLogMiddleware(out io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     out,
	})
}

// RecoverMiddleware turns a handler panic into a 500 and logs it instead of
// killing the process.
func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			utils.Logger().WithFields(logrus.Fields{
				"module": "http",
				"method": c.Method(),
				"path":   c.Path(),
			}).Error(fmt.Sprintf("panic: %v", e))
		},
	})
}
