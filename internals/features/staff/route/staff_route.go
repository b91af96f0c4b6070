package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	staffCtrl "lls_backend/internals/features/staff/controller"
	authMw "lls_backend/internals/middlewares/auth"
)

// StaffRoutes expects r to already carry AuthMiddleware. The staff
// directory is admin territory end to end.
func StaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := staffCtrl.NewStaffController(db)

	onlyAdmin := authMw.OnlyRoles(constants.RoleErrorAdmin("the staff directory"), constants.AdminOnly...)

	r.Post("/staff", onlyAdmin, ctrl.Create)
	r.Get("/staff", onlyAdmin, ctrl.List)
	r.Put("/staff/:id", onlyAdmin, ctrl.Update)
}
