package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	quizCtrl "lls_backend/internals/features/learning/quiz/controller"
	authMw "lls_backend/internals/middlewares/auth"
)

// QuizRoutes expects r to already carry AuthMiddleware. Results stay open
// to all roles; the controller narrows students to their own rows.
func QuizRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := quizCtrl.NewQuizController(db)

	onlyStudent := authMw.OnlyRoles(constants.RoleErrorStudent("quiz submission"), constants.StudentOnly...)

	r.Post("/quiz/submit", onlyStudent, ctrl.Submit)
	r.Get("/quiz/results/:student_id/:material_id", ctrl.Results)
}
