package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	submissionCtrl "lls_backend/internals/features/submissions/controller"
	authMw "lls_backend/internals/middlewares/auth"
)

// SubmissionLearningRoutes mounts the student-facing submission endpoints
// under the learning group; r must already carry AuthMiddleware.
func SubmissionLearningRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := submissionCtrl.NewSubmissionController(db)

	onlyStudent := authMw.OnlyRoles(constants.RoleErrorStudent("assignment submission"), constants.StudentOnly...)

	r.Post("/assignments/submit", onlyStudent, ctrl.Submit)
	r.Get("/assignments/submissions/:student_id/:material_id", ctrl.StudentSubmissions)
}

// SubmissionRoutes mounts the evaluation side; r must already carry
// AuthMiddleware.
func SubmissionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := submissionCtrl.NewSubmissionController(db)

	onlyStaff := authMw.OnlyRoles(constants.RoleErrorStaff("submission review"), constants.StaffAndAbove...)

	r.Get("/staff/:id/submissions", onlyStaff, ctrl.StaffSubmissions)
	r.Post("/evaluations", onlyStaff, ctrl.Evaluate)
	r.Get("/evaluations", ctrl.ListEvaluations)
}
