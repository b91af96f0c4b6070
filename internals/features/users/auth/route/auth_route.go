package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "lls_backend/internals/features/users/auth/controller"
)

// AuthRoutes mounts the public session endpoints.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", ctrl.Login)
}
