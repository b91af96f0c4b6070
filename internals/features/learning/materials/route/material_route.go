package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	materialCtrl "lls_backend/internals/features/learning/materials/controller"
	authMw "lls_backend/internals/middlewares/auth"
)

// MaterialRoutes expects r to already carry AuthMiddleware. Course and
// staff scoping happens inside the controller.
func MaterialRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := materialCtrl.NewMaterialController(db)

	onlyStaff := authMw.OnlyRoles(constants.RoleErrorStaff("course materials"), constants.StaffAndAbove...)

	r.Get("/courses/:id/materials", ctrl.ListByCourse)
	r.Post("/materials", onlyStaff, ctrl.Create)
	r.Get("/materials/:id", ctrl.Detail)
	r.Delete("/materials/:id", onlyStaff, ctrl.Delete)
}
