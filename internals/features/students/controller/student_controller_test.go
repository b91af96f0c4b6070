package controller

import (
	"encoding/json"
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
	staffModel "lls_backend/internals/features/staff/model"
	"lls_backend/internals/features/students/dto"
	"lls_backend/internals/features/students/model"
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
		&model.StudentModel{},
	))
	return db
}

func withIdentity(userID int, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		c.Locals("userRole", role)
		c.Locals("userName", "Test User")
		return c.Next()
	}
}

func intPtr(v int) *int { return &v }

func seedStaffStudents(t *testing.T, db *gorm.DB) {
	t.Helper()
	staff := []staffModel.StaffModel{
		{Name: "Asha Verma", Email: "asha@lls.test", Status: "Active"},
		{Name: "Ravi Iyer", Email: "ravi@lls.test", Status: "Active"},
	}
	require.NoError(t, db.Create(&staff).Error)

	courses := []courseModel.CourseModel{
		{CourseName: "Spoken English", StaffID: intPtr(1), Status: "Active"},
		{CourseName: "Business English", StaffID: intPtr(1), Status: "Active"},
		{CourseName: "Hindi Basics", StaffID: intPtr(2), Status: "Active"},
	}
	require.NoError(t, db.Create(&courses).Error)

	students := []model.StudentModel{
		{Name: "Meena Pillai", Email: "meena@lls.test", CourseID: intPtr(1)},
		{Name: "Arjun Nair", Email: "arjun@lls.test", CourseID: intPtr(2)},
		{Name: "Divya Rao", Email: "divya@lls.test", CourseID: intPtr(3)},
	}
	require.NoError(t, db.Create(&students).Error)
}

func newStaffStudentsApp(db *gorm.DB, userID int, role string) *fiber.App {
	app := fiber.New()
	ctrl := NewStudentController(db)
	app.Get("/student/staff/:id/students", withIdentity(userID, role), ctrl.ListStaffStudents)
	return app
}

func TestListStaffStudents(t *testing.T) {
	t.Run("staff cannot list another staff's students", func(t *testing.T) {
		app := newStaffStudentsApp(newTestDB(t), 2, constants.RoleStaff)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/student/staff/1/students", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("no course filter returns students across all owned courses", func(t *testing.T) {
		db := newTestDB(t)
		seedStaffStudents(t, db)
		app := newStaffStudentsApp(db, 1, constants.RoleStaff)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/student/staff/1/students", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got []dto.StudentResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Len(t, got, 2)
		assert.Equal(t, "Meena Pillai", got[0].Name)
		assert.Equal(t, "Arjun Nair", got[1].Name)
	})

	t.Run("admin without course filter is not rejected", func(t *testing.T) {
		db := newTestDB(t)
		seedStaffStudents(t, db)
		app := newStaffStudentsApp(db, 0, constants.RoleAdmin)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/student/staff/2/students", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got []dto.StudentResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "Divya Rao", got[0].Name)
	})

	t.Run("course filter narrows to that course", func(t *testing.T) {
		db := newTestDB(t)
		seedStaffStudents(t, db)
		app := newStaffStudentsApp(db, 1, constants.RoleStaff)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/student/staff/1/students?course_id=2", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got []dto.StudentResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "Arjun Nair", got[0].Name)
	})

	t.Run("filtering by an unowned course is forbidden", func(t *testing.T) {
		db := newTestDB(t)
		seedStaffStudents(t, db)
		app := newStaffStudentsApp(db, 1, constants.RoleStaff)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/student/staff/1/students?course_id=3", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("staff with no courses gets an empty list", func(t *testing.T) {
		db := newTestDB(t)
		require.NoError(t, db.Create(&staffModel.StaffModel{Name: "New Hire", Email: "new@lls.test", Status: "Active"}).Error)
		app := newStaffStudentsApp(db, 1, constants.RoleStaff)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/student/staff/1/students", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got []dto.StudentResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Empty(t, got)
	})
}
