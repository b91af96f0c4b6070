package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	courseModel "lls_backend/internals/features/academic/courses/model"
	materialModel "lls_backend/internals/features/learning/materials/model"
	"lls_backend/internals/features/learning/mcqs/dto"
	"lls_backend/internals/features/learning/mcqs/model"
	quizModel "lls_backend/internals/features/learning/quiz/model"
	helper "lls_backend/internals/helpers"
	helperAuth "lls_backend/internals/helpers/auth"
)

type MCQController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMCQController(db *gorm.DB) *MCQController {
	return &MCQController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/learning/mcqs (STAFF for own courses, ADMIN any)
func (ctrl *MCQController) Create(c *fiber.Ctx) error {
	var body dto.CreateMCQRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctrl.checkMaterialOwnership(c, body.MaterialID); err != nil {
		return err
	}

	mcq := model.MCQModel{
		MaterialID:    body.MaterialID,
		Question:      body.Question,
		OptionA:       body.OptionA,
		OptionB:       body.OptionB,
		OptionC:       body.OptionC,
		OptionD:       body.OptionD,
		CorrectOption: body.CorrectOption,
	}
	// the key must point at an option that actually exists
	if !mcq.HasOption(mcq.CorrectOption) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Correct option has no corresponding answer text")
	}

	if err := ctrl.DB.Create(&mcq).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "MCQ created successfully",
		"mcq_id":  mcq.MCQID,
	})
}

// GET /api/learning/materials/:id/mcqs (STAFF/ADMIN: includes the answer key)
func (ctrl *MCQController) ListByMaterial(c *fiber.Ctx) error {
	materialID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material id")
	}

	var mcqs []model.MCQModel
	if err := ctrl.DB.Where("material_id = ?", materialID).
		Order("mcq_id").Find(&mcqs).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.MCQResponse, 0, len(mcqs))
	for _, q := range mcqs {
		resp = append(resp, dto.MCQResponse{
			MCQID:         q.MCQID,
			MaterialID:    q.MaterialID,
			Question:      q.Question,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectOption: q.CorrectOption,
		})
	}
	return c.JSON(resp)
}

// DELETE /api/learning/mcqs/:id (STAFF for own courses, ADMIN any)
func (ctrl *MCQController) Delete(c *fiber.Ctx) error {
	mcqID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mcq id")
	}

	var mcq model.MCQModel
	if err := ctrl.DB.First(&mcq, mcqID).Error; err != nil {
		return helper.JsonDBError(c, err, "MCQ not found")
	}

	if err := ctrl.checkMaterialOwnership(c, mcq.MaterialID); err != nil {
		return err
	}

	// quiz answers reference the question; drop them with it so the
	// delete cannot trip over the foreign key
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mcq_id = ?", mcq.MCQID).
			Delete(&quizModel.QuizAnswerModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&mcq).Error
	}); err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return c.JSON(fiber.Map{"message": "MCQ deleted successfully"})
}

// checkMaterialOwnership rejects staff touching quiz content on a course
// that is not theirs. Admin passes unconditionally.
func (ctrl *MCQController) checkMaterialOwnership(c *fiber.Ctx, materialID int) error {
	role, err := helperAuth.GetRole(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if role != constants.RoleStaff {
		return nil
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var mat materialModel.StudyMaterialModel
	if err := ctrl.DB.First(&mat, materialID).Error; err != nil {
		return helper.JsonDBError(c, err, "Material not found")
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, mat.CourseID).Error; err != nil {
		return helper.JsonDBError(c, err, "Course not found")
	}
	if course.StaffID == nil || *course.StaffID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Course not assigned to this staff")
	}
	return nil
}
