package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	academicYearRoute "lls_backend/internals/features/academic/academic_years/route"
	courseRoute "lls_backend/internals/features/academic/courses/route"
	programRoute "lls_backend/internals/features/academic/programs/route"
	recordsRoute "lls_backend/internals/features/admin/records/route"
	assignmentRoute "lls_backend/internals/features/learning/assignments/route"
	materialRoute "lls_backend/internals/features/learning/materials/route"
	mcqRoute "lls_backend/internals/features/learning/mcqs/route"
	quizRoute "lls_backend/internals/features/learning/quiz/route"
	staffRoute "lls_backend/internals/features/staff/route"
	studentRoute "lls_backend/internals/features/students/route"
	submissionRoute "lls_backend/internals/features/submissions/route"
	authRoute "lls_backend/internals/features/users/auth/route"
	authMw "lls_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature under /api. Public routes are registered
// before the guarded groups: fiber matches in registration order, so they
// stay reachable without a token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up public routes...")
	authRoute.AuthRoutes(api, db)
	studentRoute.StudentPublicRoutes(api.Group("/student"), db)
	courseRoute.CoursePublicRoutes(api.Group("/academic"), db)

	authenticated := authMw.AuthMiddleware()

	// ===================== ACADEMIC =====================
	log.Println("[INFO] Setting up academic routes...")
	academic := api.Group("/academic", authenticated)
	academicYearRoute.AcademicYearRoutes(academic, db)
	programRoute.ProgramRoutes(academic, db)
	courseRoute.CourseRoutes(academic, db)

	// ===================== DIRECTORY =====================
	log.Println("[INFO] Setting up staff and student routes...")
	staffRoute.StaffRoutes(api.Group("/staff", authenticated), db)
	studentRoute.StudentRoutes(api.Group("/student", authenticated), db)

	// ===================== LEARNING =====================
	log.Println("[INFO] Setting up learning routes...")
	learning := api.Group("/learning", authenticated)
	materialRoute.MaterialRoutes(learning, db)
	mcqRoute.MCQRoutes(learning, db)
	assignmentRoute.AssignmentRoutes(learning, db)
	quizRoute.QuizRoutes(learning, db)
	submissionRoute.SubmissionLearningRoutes(learning, db)

	// ===================== SUBMISSION =====================
	log.Println("[INFO] Setting up submission routes...")
	submissionRoute.SubmissionRoutes(api.Group("/submission", authenticated), db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up admin routes...")
	admin := api.Group("/admin",
		authenticated,
		authMw.OnlyRoles(constants.RoleErrorAdmin("administrative records"), constants.AdminOnly...),
	)
	recordsRoute.RecordsRoutes(admin, db)
}
