package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	mcqModel "lls_backend/internals/features/learning/mcqs/model"
	"lls_backend/internals/features/learning/quiz/dto"
	"lls_backend/internals/features/learning/quiz/model"
	"lls_backend/internals/features/learning/quiz/service"
	helper "lls_backend/internals/helpers"
	helperAuth "lls_backend/internals/helpers/auth"
)

type QuizController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/learning/quiz/submit (STUDENT, own id only)
//
// A submission is atomic: either every answer row lands or none do. A
// second submission for the same material is rejected with 409; retakes
// are intentionally not supported.
func (ctrl *QuizController) Submit(c *fiber.Ctx) error {
	var body dto.SubmitQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	own := helperAuth.GetStudentID(c)
	if own == nil || *own != body.StudentID {
		return helper.JsonError(c, fiber.StatusForbidden, "Students may only submit their own quiz")
	}

	var questions []mcqModel.MCQModel
	if err := ctrl.DB.Where("material_id = ?", body.MaterialID).
		Order("mcq_id").Find(&questions).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	answers := make(map[int]string, len(body.Answers))
	for _, a := range body.Answers {
		if _, dup := answers[a.MCQID]; dup {
			return helper.JsonError(c, fiber.StatusBadRequest, "Duplicate answer for the same question")
		}
		answers[a.MCQID] = a.SelectedOption
	}

	result, err := service.Grade(questions, answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoQuestions):
			return helper.JsonError(c, fiber.StatusNotFound, "This material has no quiz")
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	var existing int64
	if err := ctrl.DB.Model(&model.QuizAnswerModel{}).
		Where("student_id = ? AND material_id = ?", body.StudentID, body.MaterialID).
		Count(&existing).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Quiz already submitted for this material")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, a := range result.Answers {
			row := model.QuizAnswerModel{
				StudentID:      body.StudentID,
				MCQID:          a.MCQID,
				MaterialID:     body.MaterialID,
				SelectedOption: a.SelectedOption,
				IsCorrect:      a.IsCorrect,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// unique (student_id, mcq_id) lost a race with a concurrent submit
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Quiz already submitted for this material")
		}
		return helper.JsonDBError(c, err, "")
	}

	keys := make(map[int]string, len(questions))
	for _, q := range questions {
		keys[q.MCQID] = q.CorrectOption
	}
	results := make([]dto.QuizQuestionResult, 0, len(result.Answers))
	for _, a := range result.Answers {
		results = append(results, dto.QuizQuestionResult{
			MCQID:          a.MCQID,
			SelectedOption: a.SelectedOption,
			IsCorrect:      a.IsCorrect,
			CorrectOption:  keys[a.MCQID],
		})
	}

	return c.JSON(dto.SubmitQuizResponse{
		Message:         "Quiz submitted successfully",
		Results:         results,
		CorrectCount:    result.CorrectAnswers,
		TotalCount:      result.TotalQuestions,
		ScorePercentage: result.ScorePercentage,
	})
}

// GET /api/learning/quiz/results/:student_id/:material_id
// (STUDENT own id only; STAFF/ADMIN any)
//
// Always 200: submitted=false with empty results simply means this student
// never took the quiz.
func (ctrl *QuizController) Results(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	materialID, err := c.ParamsInt("material_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material id")
	}

	role, err := helperAuth.GetRole(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if role == constants.RoleStudent {
		own := helperAuth.GetStudentID(c)
		if own == nil || *own != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "Students may only view their own results")
		}
	}

	var rows []model.QuizAnswerModel
	if err := ctrl.DB.Preload("MCQ").
		Where("student_id = ? AND material_id = ?", studentID, materialID).
		Order("mcq_id").Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := dto.QuizResultsResponse{
		Submitted: len(rows) > 0,
		Results:   make([]dto.QuizQuestionResult, 0, len(rows)),
	}
	for _, row := range rows {
		item := dto.QuizQuestionResult{
			MCQID:          row.MCQID,
			SelectedOption: row.SelectedOption,
			IsCorrect:      row.IsCorrect,
		}
		if row.MCQ != nil {
			item.CorrectOption = row.MCQ.CorrectOption
		}
		if row.IsCorrect {
			resp.CorrectCount++
		}
		resp.Results = append(resp.Results, item)
	}
	resp.TotalCount = len(rows)
	resp.ScorePercentage = service.Score(resp.CorrectCount, resp.TotalCount)
	return c.JSON(resp)
}
