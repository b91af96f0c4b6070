package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	courseModel "lls_backend/internals/features/academic/courses/model"
	"lls_backend/internals/features/students/dto"
	"lls_backend/internals/features/students/model"
	helper "lls_backend/internals/helpers"
	helperAuth "lls_backend/internals/helpers/auth"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/student/register (public)
func (ctrl *StudentController) Register(c *fiber.Ctx) error {
	var body dto.RegisterStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student, err := ctrl.buildStudent(body.Name, body.Email, body.DOB, body.Contact,
		body.ParentName, body.ParentContact, body.ParentEmail, body.ProgramID, body.CourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := student.SetPassword(body.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := ctrl.DB.Create(student).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Student registered successfully",
		"student_id": student.StudentID,
	})
}

// POST /api/student/students (ADMIN)
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student, err := ctrl.buildStudent(body.Name, body.Email, body.DOB, body.Contact,
		body.ParentName, body.ParentContact, body.ParentEmail, body.ProgramID, body.CourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if body.Password != "" {
		if err := student.SetPassword(body.Password); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
	}

	if err := ctrl.DB.Create(student).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Student created successfully",
		"student_id": student.StudentID,
	})
}

// GET /api/student/students (ADMIN), optional ?course_id= filter
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Preload("Program").Preload("Course").Order("student_id")
	if courseID := c.QueryInt("course_id"); courseID > 0 {
		q = q.Where("course_id = ?", courseID)
	}

	var students []model.StudentModel
	if err := q.Find(&students).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return c.JSON(toStudentResponses(students))
}

// GET /api/student/staff/:id/students[?course_id=] (STAFF own id, ADMIN any)
//
// course_id narrows the listing to one course, which must belong to the
// staff member being queried; without it the listing covers every course
// they own. Students outside those courses are never visible here.
func (ctrl *StudentController) ListStaffStudents(c *fiber.Ctx) error {
	staffID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid staff id")
	}

	role, err := helperAuth.GetRole(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if role == constants.RoleStaff {
		callerID, err := helperAuth.GetUserID(c)
		if err != nil || callerID != staffID {
			return helper.JsonError(c, fiber.StatusForbidden, "Staff may only view their own students")
		}
	}

	q := ctrl.DB.Preload("Program").Preload("Course").Order("student_id")

	if courseID := c.QueryInt("course_id"); courseID > 0 {
		var course courseModel.CourseModel
		if err := ctrl.DB.First(&course, courseID).Error; err != nil {
			return helper.JsonDBError(c, err, "Course not found")
		}
		if course.StaffID == nil || *course.StaffID != staffID {
			return helper.JsonError(c, fiber.StatusForbidden, "Course not assigned to this staff")
		}
		q = q.Where("course_id = ?", courseID)
	} else {
		var ownedCourseIDs []int
		if err := ctrl.DB.Model(&courseModel.CourseModel{}).
			Where("staff_id = ?", staffID).
			Pluck("course_id", &ownedCourseIDs).Error; err != nil {
			return helper.JsonDBError(c, err, "")
		}
		if len(ownedCourseIDs) == 0 {
			return c.JSON([]dto.StudentResponse{})
		}
		q = q.Where("course_id IN ?", ownedCourseIDs)
	}

	var students []model.StudentModel
	if err := q.Find(&students).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return c.JSON(toStudentResponses(students))
}

// GET /api/student/students/:id (STUDENT own id, STAFF/ADMIN any)
func (ctrl *StudentController) Profile(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	role, err := helperAuth.GetRole(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if role == constants.RoleStudent {
		own := helperAuth.GetStudentID(c)
		if own == nil || *own != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "Students may only view their own profile")
		}
	}

	var student model.StudentModel
	if err := ctrl.DB.Preload("Program").Preload("Course").
		First(&student, studentID).Error; err != nil {
		return helper.JsonDBError(c, err, "Student not found")
	}
	return c.JSON(toStudentResponse(student))
}

func (ctrl *StudentController) buildStudent(name, email, dob, contact, parentName, parentContact, parentEmail string, programID, courseID *int) (*model.StudentModel, error) {
	student := &model.StudentModel{
		Name:          name,
		Email:         strings.ToLower(strings.TrimSpace(email)),
		Contact:       optStr(contact),
		ParentName:    optStr(parentName),
		ParentContact: optStr(parentContact),
		ParentEmail:   optStr(parentEmail),
		ProgramID:     programID,
		CourseID:      courseID,
	}
	if dob != "" {
		d, err := helper.ParseDate(dob)
		if err != nil {
			return nil, err
		}
		student.DOB = &d
	}
	return student, nil
}

func toStudentResponse(s model.StudentModel) dto.StudentResponse {
	resp := dto.StudentResponse{
		StudentID:     s.StudentID,
		Name:          s.Name,
		Email:         s.Email,
		DOB:           helper.FormatDatePtr(s.DOB),
		Contact:       s.Contact,
		ParentName:    s.ParentName,
		ParentContact: s.ParentContact,
		ParentEmail:   s.ParentEmail,
		ProgramID:     s.ProgramID,
		CourseID:      s.CourseID,
	}
	if s.Program != nil {
		resp.ProgramName = &s.Program.ProgramName
	}
	if s.Course != nil {
		resp.CourseName = &s.Course.CourseName
	}
	return resp
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toStudentResponses(students []model.StudentModel) []dto.StudentResponse {
	resp := make([]dto.StudentResponse, 0, len(students))
	for _, s := range students {
		resp = append(resp, toStudentResponse(s))
	}
	return resp
}
