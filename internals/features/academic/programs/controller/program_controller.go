package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/features/academic/programs/dto"
	"lls_backend/internals/features/academic/programs/model"
	helper "lls_backend/internals/helpers"
)

type ProgramController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/academic/programs (ADMIN)
func (ctrl *ProgramController) Create(c *fiber.Ctx) error {
	var body dto.CreateProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if body.Semester == 0 {
		body.Semester = 1
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	status := body.Status
	if status == "" {
		status = "Active"
	}

	program := model.ProgramModel{
		ProgramName:    body.ProgramName,
		Description:    body.Description,
		DurationMonths: body.DurationMonths,
		Semester:       body.Semester,
		AcademicYearID: body.AcademicYearID,
		Status:         status,
	}
	if err := ctrl.DB.Create(&program).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Program created successfully",
		"program_id": program.ProgramID,
	})
}

// GET /api/academic/programs[?academic_year_id] (any authenticated role)
func (ctrl *ProgramController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Preload("AcademicYear").Order("program_id")
	if yearID := c.QueryInt("academic_year_id"); yearID > 0 {
		q = q.Where("academic_year_id = ?", yearID)
	}

	var programs []model.ProgramModel
	if err := q.Find(&programs).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.ProgramResponse, 0, len(programs))
	for _, p := range programs {
		item := dto.ProgramResponse{
			ProgramID:      p.ProgramID,
			ProgramName:    p.ProgramName,
			Description:    p.Description,
			DurationMonths: p.DurationMonths,
			Semester:       p.Semester,
			AcademicYearID: p.AcademicYearID,
			Status:         p.Status,
		}
		if p.AcademicYear != nil {
			item.AcademicYearName = &p.AcademicYear.Year
		}
		resp = append(resp, item)
	}
	return c.JSON(resp)
}
