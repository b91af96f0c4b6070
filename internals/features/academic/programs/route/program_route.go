package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	programCtrl "lls_backend/internals/features/academic/programs/controller"
	authMw "lls_backend/internals/middlewares/auth"
)

// ProgramRoutes expects r to already carry AuthMiddleware.
func ProgramRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := programCtrl.NewProgramController(db)

	r.Post("/programs",
		authMw.OnlyRoles(constants.RoleErrorAdmin("programs"), constants.AdminOnly...),
		ctrl.Create)
	r.Get("/programs", ctrl.List)
}
