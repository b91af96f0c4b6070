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
	assignmentModel "lls_backend/internals/features/learning/assignments/model"
	materialModel "lls_backend/internals/features/learning/materials/model"
	staffModel "lls_backend/internals/features/staff/model"
	studentModel "lls_backend/internals/features/students/model"
	"lls_backend/internals/features/submissions/dto"
	"lls_backend/internals/features/submissions/model"
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
		&assignmentModel.AssignmentModel{},
		&model.AssignmentSubmissionModel{},
	))
	return db
}

func intPtr(v int) *int { return &v }

// seedAssignment sets up staff 1 owning course 1 with one assignment, plus
// one enrolled student.
func seedAssignment(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&staffModel.StaffModel{Name: "Asha Verma", Email: "asha@lls.test", Status: "Active"}).Error)
	require.NoError(t, db.Create(&courseModel.CourseModel{CourseName: "Spoken English", StaffID: intPtr(1), Status: "Active"}).Error)
	require.NoError(t, db.Create(&materialModel.StudyMaterialModel{
		CourseID:     1,
		Title:        "Essay Writing",
		MaterialType: materialModel.MaterialTypeAssignment,
	}).Error)
	require.NoError(t, db.Create(&assignmentModel.AssignmentModel{MaterialID: 1, Title: "My Daily Routine"}).Error)
	require.NoError(t, db.Create(&studentModel.StudentModel{
		Name:     "Meena Pillai",
		Email:    "meena@lls.test",
		CourseID: intPtr(1),
	}).Error)
}

func identity(userID int, role string, studentID int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		c.Locals("userRole", role)
		if studentID > 0 {
			c.Locals("studentID", studentID)
		}
		return c.Next()
	}
}

func newSubmissionApp(db *gorm.DB, who fiber.Handler) *fiber.App {
	app := fiber.New()
	ctrl := NewSubmissionController(db)
	app.Post("/learning/assignments/submit", who, ctrl.Submit)
	app.Get("/submission/staff/:id/submissions", who, ctrl.StaffSubmissions)
	app.Post("/submission/evaluations", who, ctrl.Evaluate)
	return app
}

func postJSON(target string, payload any) *http.Request {
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(fiber.MethodPost, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAssignmentSubmit(t *testing.T) {
	t.Run("students cannot submit for another student", func(t *testing.T) {
		app := newSubmissionApp(newTestDB(t), identity(2, constants.RoleStudent, 2))
		resp, err := app.Test(postJSON("/learning/assignments/submit", dto.SubmitAssignmentRequest{
			StudentID: 1, AssignmentID: 1, AssignmentText: "My essay",
		}))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("empty submission is rejected", func(t *testing.T) {
		app := newSubmissionApp(newTestDB(t), identity(1, constants.RoleStudent, 1))
		resp, err := app.Test(postJSON("/learning/assignments/submit", dto.SubmitAssignmentRequest{
			StudentID: 1, AssignmentID: 1,
		}))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("resubmission overwrites until evaluated, then conflicts", func(t *testing.T) {
		db := newTestDB(t)
		seedAssignment(t, db)
		studentApp := newSubmissionApp(db, identity(1, constants.RoleStudent, 1))

		resp, err := studentApp.Test(postJSON("/learning/assignments/submit", dto.SubmitAssignmentRequest{
			StudentID: 1, AssignmentID: 1, AssignmentText: "First draft",
		}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		resp, err = studentApp.Test(postJSON("/learning/assignments/submit", dto.SubmitAssignmentRequest{
			StudentID: 1, AssignmentID: 1, AssignmentText: "Second draft",
		}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var sub model.AssignmentSubmissionModel
		require.NoError(t, db.First(&sub, 1).Error)
		require.NotNil(t, sub.AssignmentText)
		assert.Equal(t, "Second draft", *sub.AssignmentText)

		marks := 72.5
		staffApp := newSubmissionApp(db, identity(1, constants.RoleStaff, 0))
		resp, err = staffApp.Test(postJSON("/submission/evaluations", dto.EvaluateSubmissionRequest{
			SubmissionID: 1, Marks: &marks, Feedback: "Good structure",
		}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, err = studentApp.Test(postJSON("/learning/assignments/submit", dto.SubmitAssignmentRequest{
			StudentID: 1, AssignmentID: 1, AssignmentText: "Third draft",
		}))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestEvaluate(t *testing.T) {
	submitOnce := func(t *testing.T, db *gorm.DB) {
		t.Helper()
		app := newSubmissionApp(db, identity(1, constants.RoleStudent, 1))
		resp, err := app.Test(postJSON("/learning/assignments/submit", dto.SubmitAssignmentRequest{
			StudentID: 1, AssignmentID: 1, AssignmentText: "My essay",
		}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	t.Run("staff evaluation records the evaluator", func(t *testing.T) {
		db := newTestDB(t)
		seedAssignment(t, db)
		submitOnce(t, db)

		marks := 85.0
		app := newSubmissionApp(db, identity(1, constants.RoleStaff, 0))
		resp, err := app.Test(postJSON("/submission/evaluations", dto.EvaluateSubmissionRequest{
			SubmissionID: 1, Marks: &marks,
		}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "A", got["grade"])
		assert.Equal(t, true, got["passed"])

		var sub model.AssignmentSubmissionModel
		require.NoError(t, db.First(&sub, 1).Error)
		assert.True(t, sub.IsEvaluated)
		require.NotNil(t, sub.EvaluatedBy)
		assert.Equal(t, 1, *sub.EvaluatedBy)
	})

	t.Run("admin evaluation leaves evaluated_by empty", func(t *testing.T) {
		db := newTestDB(t)
		seedAssignment(t, db)
		submitOnce(t, db)

		marks := 40.0
		app := newSubmissionApp(db, identity(0, constants.RoleAdmin, 0))
		resp, err := app.Test(postJSON("/submission/evaluations", dto.EvaluateSubmissionRequest{
			SubmissionID: 1, Marks: &marks, Feedback: "Needs more work",
		}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "F", got["grade"])
		assert.Equal(t, false, got["passed"])

		var sub model.AssignmentSubmissionModel
		require.NoError(t, db.First(&sub, 1).Error)
		assert.True(t, sub.IsEvaluated)
		assert.Nil(t, sub.EvaluatedBy)
	})

	t.Run("staff cannot evaluate submissions outside their courses", func(t *testing.T) {
		db := newTestDB(t)
		seedAssignment(t, db)
		submitOnce(t, db)

		marks := 60.0
		app := newSubmissionApp(db, identity(2, constants.RoleStaff, 0))
		resp, err := app.Test(postJSON("/submission/evaluations", dto.EvaluateSubmissionRequest{
			SubmissionID: 1, Marks: &marks,
		}))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestStaffSubmissionsScoping(t *testing.T) {
	app := newSubmissionApp(newTestDB(t), identity(2, constants.RoleStaff, 0))
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/submission/staff/1/submissions", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
