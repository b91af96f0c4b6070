package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/features/academic/academic_years/dto"
	"lls_backend/internals/features/academic/academic_years/model"
	helper "lls_backend/internals/helpers"
)

type AcademicYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicYearController(db *gorm.DB) *AcademicYearController {
	return &AcademicYearController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/academic/academic-years (ADMIN)
func (ctrl *AcademicYearController) Create(c *fiber.Ctx) error {
	var body dto.CreateAcademicYearRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	startDate, err := helper.ParseDate(body.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}
	endDate, err := helper.ParseDate(body.EndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_date must be YYYY-MM-DD")
	}

	status := body.Status
	if status == "" {
		status = "Active"
	}

	year := model.AcademicYearModel{
		Year:      body.Year,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
	}
	if err := ctrl.DB.Create(&year).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "An academic year with this label already exists")
		}
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":          "Academic Year created successfully",
		"academic_year_id": year.AcademicYearID,
	})
}

// GET /api/academic/academic-years (any authenticated role)
func (ctrl *AcademicYearController) List(c *fiber.Ctx) error {
	var years []model.AcademicYearModel
	if err := ctrl.DB.Order("academic_year_id").Find(&years).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.AcademicYearResponse, 0, len(years))
	for _, y := range years {
		resp = append(resp, dto.AcademicYearResponse{
			AcademicYearID: y.AcademicYearID,
			Year:           y.Year,
			StartDate:      helper.FormatDate(y.StartDate),
			EndDate:        helper.FormatDate(y.EndDate),
			Status:         y.Status,
		})
	}
	return c.JSON(resp)
}
