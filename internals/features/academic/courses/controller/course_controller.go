package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	"lls_backend/internals/features/academic/courses/dto"
	"lls_backend/internals/features/academic/courses/model"
	materialModel "lls_backend/internals/features/learning/materials/model"
	helper "lls_backend/internals/helpers"
	helperAuth "lls_backend/internals/helpers/auth"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/academic/courses (ADMIN)
//
// Program links are set at creation time; the link rows default to
// semester 1 and can be refined via POST /programs/:id/courses.
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	status := body.Status
	if status == "" {
		status = "Active"
	}

	course := model.CourseModel{
		CourseName:  body.CourseName,
		Description: body.Description,
		Credits:     body.Credits,
		StaffID:     body.StaffID,
		Status:      status,
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		for _, programID := range body.ProgramIDs {
			link := model.ProgramCourseModel{
				ProgramID: programID,
				CourseID:  course.CourseID,
				Semester:  1,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Course created successfully",
		"course_id": course.CourseID,
	})
}

// GET /api/academic/courses (public: the registration form lists courses)
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	var courses []model.CourseModel
	if err := ctrl.DB.Preload("Teacher").Order("course_id").Find(&courses).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		var links []model.ProgramCourseModel
		if err := ctrl.DB.Preload("Program").Where("course_id = ?", course.CourseID).Find(&links).Error; err != nil {
			return helper.JsonDBError(c, err, "")
		}

		linked := make([]dto.LinkedProgram, 0, len(links))
		for _, pc := range links {
			if pc.Program == nil {
				continue
			}
			linked = append(linked, dto.LinkedProgram{
				ProgramID:   pc.ProgramID,
				ProgramName: pc.Program.ProgramName,
				Semester:    pc.Program.Semester,
			})
		}

		item := dto.CourseResponse{
			CourseID:       course.CourseID,
			CourseName:     course.CourseName,
			Description:    course.Description,
			Credits:        course.Credits,
			StaffID:        course.StaffID,
			LinkedPrograms: linked,
			Status:         course.Status,
		}
		if course.Teacher != nil {
			item.TeacherName = &course.Teacher.Name
		}
		resp = append(resp, item)
	}
	return c.JSON(resp)
}

// GET /api/academic/staff/:id/courses (STAFF own id, ADMIN any)
func (ctrl *CourseController) ListStaffCourses(c *fiber.Ctx) error {
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
			return helper.JsonError(c, fiber.StatusForbidden, "Staff may only view their own courses")
		}
	}

	var courses []model.CourseModel
	if err := ctrl.DB.Where("staff_id = ?", staffID).Order("course_id").Find(&courses).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.StaffCourseResponse, 0, len(courses))
	for _, course := range courses {
		var materialCount int64
		if err := ctrl.DB.Model(&materialModel.StudyMaterialModel{}).
			Where("course_id = ?", course.CourseID).Count(&materialCount).Error; err != nil {
			return helper.JsonDBError(c, err, "")
		}
		resp = append(resp, dto.StaffCourseResponse{
			CourseID:      course.CourseID,
			CourseName:    course.CourseName,
			Description:   course.Description,
			Credits:       course.Credits,
			Status:        course.Status,
			MaterialCount: materialCount,
		})
	}
	return c.JSON(resp)
}

// POST /api/academic/programs/:id/courses (ADMIN)
func (ctrl *CourseController) AddCourseToProgram(c *fiber.Ctx) error {
	programID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program id")
	}

	var body dto.AddCourseToProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	link := model.ProgramCourseModel{
		ProgramID: programID,
		CourseID:  body.CourseID,
		Semester:  body.Semester,
	}
	if err := ctrl.DB.Create(&link).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Course added to program successfully",
	})
}

// GET /api/academic/programs/:id/courses (any authenticated role)
func (ctrl *CourseController) ListProgramCourses(c *fiber.Ctx) error {
	programID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program id")
	}

	var links []model.ProgramCourseModel
	if err := ctrl.DB.Preload("Course").Where("program_id = ?", programID).
		Order("program_course_id").Find(&links).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.ProgramCourseResponse, 0, len(links))
	for _, pc := range links {
		if pc.Course == nil {
			continue
		}
		resp = append(resp, dto.ProgramCourseResponse{
			ProgramCourseID: pc.ProgramCourseID,
			CourseID:        pc.CourseID,
			CourseName:      pc.Course.CourseName,
			Semester:        pc.Semester,
			Credits:         pc.Course.Credits,
		})
	}
	return c.JSON(resp)
}
