package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	ayCtrl "lls_backend/internals/features/academic/academic_years/controller"
	authMw "lls_backend/internals/middlewares/auth"
)

// AcademicYearRoutes expects r to already carry AuthMiddleware.
func AcademicYearRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := ayCtrl.NewAcademicYearController(db)

	r.Post("/academic-years",
		authMw.OnlyRoles(constants.RoleErrorAdmin("academic years"), constants.AdminOnly...),
		ctrl.Create)
	r.Get("/academic-years", ctrl.List)
}
