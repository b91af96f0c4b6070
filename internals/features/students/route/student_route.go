package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	studentCtrl "lls_backend/internals/features/students/controller"
	authMw "lls_backend/internals/middlewares/auth"
)

// StudentPublicRoutes serves self-registration without authentication.
func StudentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	r.Post("/register", ctrl.Register)
}

// StudentRoutes expects r to already carry AuthMiddleware.
func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	onlyAdmin := authMw.OnlyRoles(constants.RoleErrorAdmin("the student directory"), constants.AdminOnly...)
	onlyStaff := authMw.OnlyRoles(constants.RoleErrorStaff("student listings"), constants.StaffAndAbove...)

	r.Post("/students", onlyAdmin, ctrl.Create)
	r.Get("/students", onlyAdmin, ctrl.List)
	r.Get("/staff/:id/students", onlyStaff, ctrl.ListStaffStudents)
	r.Get("/students/:id", ctrl.Profile)
}
