package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	courseCtrl "lls_backend/internals/features/academic/courses/controller"
	authMw "lls_backend/internals/middlewares/auth"
)

// CoursePublicRoutes serves the course list without authentication: the
// student registration form needs it before any account exists.
func CoursePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := courseCtrl.NewCourseController(db)

	r.Get("/courses", ctrl.List)
}

// CourseRoutes expects r to already carry AuthMiddleware.
func CourseRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := courseCtrl.NewCourseController(db)

	onlyAdmin := authMw.OnlyRoles(constants.RoleErrorAdmin("courses"), constants.AdminOnly...)
	onlyStaff := authMw.OnlyRoles(constants.RoleErrorStaff("course listings"), constants.StaffAndAbove...)

	r.Post("/courses", onlyAdmin, ctrl.Create)
	r.Get("/staff/:id/courses", onlyStaff, ctrl.ListStaffCourses)
	r.Post("/programs/:id/courses", onlyAdmin, ctrl.AddCourseToProgram)
	r.Get("/programs/:id/courses", ctrl.ListProgramCourses)
}
