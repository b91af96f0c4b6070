package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	mcqCtrl "lls_backend/internals/features/learning/mcqs/controller"
	authMw "lls_backend/internals/middlewares/auth"
)

// MCQRoutes expects r to already carry AuthMiddleware. All three routes
// expose the answer key one way or another, so they are staff-only; the
// student-facing question list is embedded in the material detail.
func MCQRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := mcqCtrl.NewMCQController(db)

	onlyStaff := authMw.OnlyRoles(constants.RoleErrorStaff("quiz questions"), constants.StaffAndAbove...)

	r.Post("/mcqs", onlyStaff, ctrl.Create)
	r.Get("/materials/:id/mcqs", onlyStaff, ctrl.ListByMaterial)
	r.Delete("/mcqs/:id", onlyStaff, ctrl.Delete)
}
