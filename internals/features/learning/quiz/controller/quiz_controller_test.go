package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lls_backend/internals/constants"
	yearModel "lls_backend/internals/features/academic/academic_years/model"
	courseModel "lls_backend/internals/features/academic/courses/model"
	programModel "lls_backend/internals/features/academic/programs/model"
	materialModel "lls_backend/internals/features/learning/materials/model"
	mcqModel "lls_backend/internals/features/learning/mcqs/model"
	"lls_backend/internals/features/learning/quiz/dto"
	"lls_backend/internals/features/learning/quiz/model"
	staffModel "lls_backend/internals/features/staff/model"
	studentModel "lls_backend/internals/features/students/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&yearModel.AcademicYearModel{},
		&programModel.ProgramModel{},
		&staffModel.StaffModel{},
		&courseModel.CourseModel{},
		&studentModel.StudentModel{},
		&materialModel.StudyMaterialModel{},
		&mcqModel.MCQModel{},
		&model.QuizAnswerModel{},
	))
	return db
}

// seedQuiz sets up one quiz material with two questions (keys A then B)
// and one enrolled student.
func seedQuiz(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&courseModel.CourseModel{CourseName: "Spoken English", Status: "Active"}).Error)
	require.NoError(t, db.Create(&materialModel.StudyMaterialModel{
		CourseID:     1,
		Title:        "Tenses Quiz",
		MaterialType: materialModel.MaterialTypeQuiz,
	}).Error)
	mcqs := []mcqModel.MCQModel{
		{MaterialID: 1, Question: "Past tense of go?", OptionA: "went", OptionB: "goed", CorrectOption: "A"},
		{MaterialID: 1, Question: "Past tense of eat?", OptionA: "eated", OptionB: "ate", CorrectOption: "B"},
	}
	require.NoError(t, db.Create(&mcqs).Error)
	require.NoError(t, db.Create(&studentModel.StudentModel{
		Name:  "Meena Pillai",
		Email: "meena@lls.test",
	}).Error)
}

func asStudent(studentID int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", studentID)
		c.Locals("userRole", constants.RoleStudent)
		c.Locals("studentID", studentID)
		return c.Next()
	}
}

func newQuizApp(db *gorm.DB, identity fiber.Handler) *fiber.App {
	app := fiber.New()
	ctrl := NewQuizController(db)
	app.Post("/learning/quiz/submit", identity, ctrl.Submit)
	app.Get("/learning/quiz/results/:student_id/:material_id", identity, ctrl.Results)
	return app
}

func postJSON(target string, payload any) *http.Request {
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(fiber.MethodPost, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestQuizSubmit(t *testing.T) {
	fullAnswers := []dto.QuizAnswerInput{
		{MCQID: 1, SelectedOption: "A"},
		{MCQID: 2, SelectedOption: "A"},
	}

	t.Run("students cannot submit for another student", func(t *testing.T) {
		app := newQuizApp(newTestDB(t), asStudent(2))
		resp, err := app.Test(postJSON("/learning/quiz/submit", dto.SubmitQuizRequest{
			StudentID: 1, MaterialID: 1, Answers: fullAnswers,
		}))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("partial answer sets are rejected", func(t *testing.T) {
		db := newTestDB(t)
		seedQuiz(t, db)
		app := newQuizApp(db, asStudent(1))
		resp, err := app.Test(postJSON("/learning/quiz/submit", dto.SubmitQuizRequest{
			StudentID: 1, MaterialID: 1,
			Answers: []dto.QuizAnswerInput{{MCQID: 1, SelectedOption: "A"}},
		}))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("submit grades and persists, second attempt conflicts", func(t *testing.T) {
		db := newTestDB(t)
		seedQuiz(t, db)
		app := newQuizApp(db, asStudent(1))

		resp, err := app.Test(postJSON("/learning/quiz/submit", dto.SubmitQuizRequest{
			StudentID: 1, MaterialID: 1, Answers: fullAnswers,
		}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got dto.SubmitQuizResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, 1, got.CorrectCount)
		assert.Equal(t, 2, got.TotalCount)
		assert.Equal(t, 50, got.ScorePercentage)
		require.Len(t, got.Results, 2)
		assert.True(t, got.Results[0].IsCorrect)
		assert.False(t, got.Results[1].IsCorrect)
		assert.Equal(t, "B", got.Results[1].CorrectOption)

		// answers are write-once, a retake must not alter them
		resp, err = app.Test(postJSON("/learning/quiz/submit", dto.SubmitQuizRequest{
			StudentID: 1, MaterialID: 1,
			Answers: []dto.QuizAnswerInput{
				{MCQID: 1, SelectedOption: "A"},
				{MCQID: 2, SelectedOption: "B"},
			},
		}))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

		var rows []model.QuizAnswerModel
		require.NoError(t, db.Order("mcq_id").Find(&rows).Error)
		require.Len(t, rows, 2)
		assert.Equal(t, "A", rows[1].SelectedOption)
		assert.False(t, rows[1].IsCorrect)
	})
}

func TestQuizResults(t *testing.T) {
	t.Run("students cannot view another student's results", func(t *testing.T) {
		app := newQuizApp(newTestDB(t), asStudent(2))
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/learning/quiz/results/1/1", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("unsubmitted quiz reports submitted=false", func(t *testing.T) {
		db := newTestDB(t)
		seedQuiz(t, db)
		app := newQuizApp(db, asStudent(1))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/learning/quiz/results/1/1", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got dto.QuizResultsResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.False(t, got.Submitted)
		assert.Empty(t, got.Results)
	})

	t.Run("submitted quiz is rebuilt from stored answers", func(t *testing.T) {
		db := newTestDB(t)
		seedQuiz(t, db)
		app := newQuizApp(db, asStudent(1))

		resp, err := app.Test(postJSON("/learning/quiz/submit", dto.SubmitQuizRequest{
			StudentID: 1, MaterialID: 1,
			Answers: []dto.QuizAnswerInput{
				{MCQID: 1, SelectedOption: "A"},
				{MCQID: 2, SelectedOption: "B"},
			},
		}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/learning/quiz/results/1/1", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got dto.QuizResultsResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.True(t, got.Submitted)
		assert.Equal(t, 2, got.CorrectCount)
		assert.Equal(t, 100, got.ScorePercentage)
	})
}
