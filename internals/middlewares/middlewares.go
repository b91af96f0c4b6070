package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "lls_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the app-wide middleware chain in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(RequestIDMiddleware())
}
