package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/features/staff/dto"
	"lls_backend/internals/features/staff/model"
	helper "lls_backend/internals/helpers"
)

type StaffController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/staff/staff (ADMIN)
func (ctrl *StaffController) Create(c *fiber.Ctx) error {
	var body dto.CreateStaffRequest
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

	staff := model.StaffModel{
		Name:           body.Name,
		Email:          strings.ToLower(strings.TrimSpace(body.Email)),
		Phone:          optStr(body.Phone),
		Qualifications: optStr(body.Qualifications),
		Status:         status,
	}
	if body.Password != "" {
		if err := staff.SetPassword(body.Password); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
	}

	if err := ctrl.DB.Create(&staff).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "A staff member with this email already exists")
		}
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Staff created successfully",
		"staff_id": staff.StaffID,
	})
}

// GET /api/staff/staff (ADMIN)
func (ctrl *StaffController) List(c *fiber.Ctx) error {
	var staff []model.StaffModel
	if err := ctrl.DB.Order("staff_id").Find(&staff).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.StaffResponse, 0, len(staff))
	for _, s := range staff {
		resp = append(resp, dto.StaffResponse{
			StaffID:        s.StaffID,
			Name:           s.Name,
			Email:          s.Email,
			Phone:          s.Phone,
			Qualifications: s.Qualifications,
			Status:         s.Status,
			HasPassword:    s.PasswordHash != nil,
		})
	}
	return c.JSON(resp)
}

// PUT /api/staff/staff/:id (ADMIN)
//
// Field-wise update; a new password replaces the old hash in place.
func (ctrl *StaffController) Update(c *fiber.Ctx) error {
	staffID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid staff id")
	}

	var body dto.UpdateStaffRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var staff model.StaffModel
	if err := ctrl.DB.First(&staff, staffID).Error; err != nil {
		return helper.JsonDBError(c, err, "Staff not found")
	}

	if body.Name != nil {
		staff.Name = *body.Name
	}
	if body.Email != nil {
		staff.Email = strings.ToLower(strings.TrimSpace(*body.Email))
	}
	if body.Phone != nil {
		staff.Phone = optStr(*body.Phone)
	}
	if body.Qualifications != nil {
		staff.Qualifications = optStr(*body.Qualifications)
	}
	if body.Status != nil {
		staff.Status = *body.Status
	}
	if body.Password != nil && *body.Password != "" {
		if err := staff.SetPassword(*body.Password); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
	}

	if err := ctrl.DB.Save(&staff).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "A staff member with this email already exists")
		}
		return helper.JsonDBError(c, err, "")
	}

	return c.JSON(fiber.Map{"message": "Staff updated successfully"})
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
