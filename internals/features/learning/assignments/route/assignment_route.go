package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	assignmentCtrl "lls_backend/internals/features/learning/assignments/controller"
	authMw "lls_backend/internals/middlewares/auth"
)

// AssignmentRoutes expects r to already carry AuthMiddleware.
func AssignmentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := assignmentCtrl.NewAssignmentController(db)

	onlyStaff := authMw.OnlyRoles(constants.RoleErrorStaff("assignments"), constants.StaffAndAbove...)

	r.Post("/assignments", onlyStaff, ctrl.Create)
	r.Get("/materials/:id/assignments", ctrl.ListByMaterial)
}
