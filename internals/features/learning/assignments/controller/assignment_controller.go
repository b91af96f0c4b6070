package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	courseModel "lls_backend/internals/features/academic/courses/model"
	"lls_backend/internals/features/learning/assignments/dto"
	"lls_backend/internals/features/learning/assignments/model"
	materialModel "lls_backend/internals/features/learning/materials/model"
	helper "lls_backend/internals/helpers"
	helperAuth "lls_backend/internals/helpers/auth"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/learning/assignments (STAFF for own courses, ADMIN any)
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	var body dto.CreateAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	role, err := helperAuth.GetRole(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if role == constants.RoleStaff {
		userID, err := helperAuth.GetUserID(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		var mat materialModel.StudyMaterialModel
		if err := ctrl.DB.First(&mat, body.MaterialID).Error; err != nil {
			return helper.JsonDBError(c, err, "Material not found")
		}
		var course courseModel.CourseModel
		if err := ctrl.DB.First(&course, mat.CourseID).Error; err != nil {
			return helper.JsonDBError(c, err, "Course not found")
		}
		if course.StaffID == nil || *course.StaffID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "Course not assigned to this staff")
		}
	}

	assignment := model.AssignmentModel{
		MaterialID: body.MaterialID,
		Title:      body.Title,
	}
	if body.Instructions != "" {
		assignment.Instructions = &body.Instructions
	}
	if body.DueDate != "" {
		d, err := helper.ParseDate(body.DueDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid due_date, expected YYYY-MM-DD")
		}
		assignment.DueDate = &d
	}

	if err := ctrl.DB.Create(&assignment).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Assignment created successfully",
		"assignment_id": assignment.AssignmentID,
	})
}

// GET /api/learning/materials/:id/assignments (any authenticated role)
func (ctrl *AssignmentController) ListByMaterial(c *fiber.Ctx) error {
	materialID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material id")
	}

	var assignments []model.AssignmentModel
	if err := ctrl.DB.Where("material_id = ?", materialID).
		Order("assignment_id").Find(&assignments).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		resp = append(resp, dto.AssignmentResponse{
			AssignmentID: a.AssignmentID,
			MaterialID:   a.MaterialID,
			Title:        a.Title,
			Instructions: a.Instructions,
			DueDate:      helper.FormatDatePtr(a.DueDate),
		})
	}
	return c.JSON(resp)
}
