package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	courseModel "lls_backend/internals/features/academic/courses/model"
	assignmentModel "lls_backend/internals/features/learning/assignments/model"
	"lls_backend/internals/features/learning/materials/dto"
	"lls_backend/internals/features/learning/materials/model"
	"lls_backend/internals/features/learning/materials/service"
	mcqModel "lls_backend/internals/features/learning/mcqs/model"
	helper "lls_backend/internals/helpers"
	helperAuth "lls_backend/internals/helpers/auth"
)

type MaterialController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /api/learning/courses/:id/materials (any authenticated role;
// students only for their own course)
func (ctrl *MaterialController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	role, err := helperAuth.GetRole(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if role == constants.RoleStudent {
		own := helperAuth.GetCourseID(c)
		if own == nil || *own != courseID {
			return helper.JsonError(c, fiber.StatusForbidden, "You are not enrolled in this course")
		}
	}

	var mats []model.StudyMaterialModel
	if err := ctrl.DB.Where("course_id = ?", courseID).
		Order("order_index, material_id").Find(&mats).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.MaterialListItem, 0, len(mats))
	for _, m := range mats {
		var mcqCount, assignmentCount int64
		if err := ctrl.DB.Model(&mcqModel.MCQModel{}).
			Where("material_id = ?", m.MaterialID).Count(&mcqCount).Error; err != nil {
			return helper.JsonDBError(c, err, "")
		}
		if err := ctrl.DB.Model(&assignmentModel.AssignmentModel{}).
			Where("material_id = ?", m.MaterialID).Count(&assignmentCount).Error; err != nil {
			return helper.JsonDBError(c, err, "")
		}
		resp = append(resp, dto.MaterialListItem{
			MaterialID:      m.MaterialID,
			Title:           m.Title,
			Description:     m.Description,
			MaterialType:    string(m.MaterialType),
			DurationMinutes: m.DurationMinutes,
			OrderIndex:      m.OrderIndex,
			UploadDate:      helper.FormatDatePtr(m.UploadDate),
			MCQCount:        mcqCount,
			AssignmentCount: assignmentCount,
		})
	}
	return c.JSON(resp)
}

// POST /api/learning/materials (STAFF for own courses, ADMIN any)
func (ctrl *MaterialController) Create(c *fiber.Ctx) error {
	var body dto.CreateMaterialRequest
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
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, body.CourseID).Error; err != nil {
		return helper.JsonDBError(c, err, "Course not found")
	}
	if role == constants.RoleStaff {
		if course.StaffID == nil || *course.StaffID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "Course not assigned to this staff")
		}
	}

	materialType := model.MaterialType(body.MaterialType)
	if materialType == "" {
		materialType = model.MaterialTypeVideo
	}

	// new lessons go to the end of the course
	var maxOrder int
	row := ctrl.DB.Model(&model.StudyMaterialModel{}).
		Where("course_id = ?", body.CourseID).
		Select("COALESCE(MAX(order_index), 0)").Row()
	if err := row.Scan(&maxOrder); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	today := datatypes.Date(time.Now())
	mat := model.StudyMaterialModel{
		CourseID:        body.CourseID,
		Title:           body.Title,
		Description:     optStr(body.Description),
		MaterialType:    materialType,
		VideoURL:        optStr(body.VideoURL),
		FilePath:        optStr(body.FilePath),
		DurationMinutes: body.DurationMinutes,
		OrderIndex:      maxOrder + 1,
		UploadDate:      &today,
		UploadedBy:      &userID,
	}

	if err := ctrl.DB.Create(&mat).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Material created successfully",
		"material_id": mat.MaterialID,
	})
}

// GET /api/learning/materials/:id (any authenticated role; students only
// within their own course). The embedded quiz questions carry no answer key.
func (ctrl *MaterialController) Detail(c *fiber.Ctx) error {
	materialID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material id")
	}

	var mat model.StudyMaterialModel
	if err := ctrl.DB.First(&mat, materialID).Error; err != nil {
		return helper.JsonDBError(c, err, "Material not found")
	}

	role, err := helperAuth.GetRole(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if role == constants.RoleStudent {
		own := helperAuth.GetCourseID(c)
		if own == nil || *own != mat.CourseID {
			return helper.JsonError(c, fiber.StatusForbidden, "You are not enrolled in this course")
		}
	}

	var mcqs []mcqModel.MCQModel
	if err := ctrl.DB.Where("material_id = ?", materialID).
		Order("mcq_id").Find(&mcqs).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	var assignments []assignmentModel.AssignmentModel
	if err := ctrl.DB.Where("material_id = ?", materialID).
		Order("assignment_id").Find(&assignments).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := dto.MaterialDetailResponse{
		MaterialID:      mat.MaterialID,
		CourseID:        mat.CourseID,
		Title:           mat.Title,
		Description:     mat.Description,
		MaterialType:    string(mat.MaterialType),
		VideoURL:        mat.VideoURL,
		FilePath:        mat.FilePath,
		DurationMinutes: mat.DurationMinutes,
		OrderIndex:      mat.OrderIndex,
		UploadDate:      helper.FormatDatePtr(mat.UploadDate),
		MCQs:            make([]dto.MCQView, 0, len(mcqs)),
		Assignments:     make([]dto.AssignmentView, 0, len(assignments)),
	}
	if mat.VideoURL != nil {
		embed := service.NormalizeVideoURL(*mat.VideoURL)
		resp.VideoEmbedURL = &embed
	}
	for _, q := range mcqs {
		resp.MCQs = append(resp.MCQs, dto.MCQView{
			MCQID:    q.MCQID,
			Question: q.Question,
			OptionA:  q.OptionA,
			OptionB:  q.OptionB,
			OptionC:  q.OptionC,
			OptionD:  q.OptionD,
		})
	}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, dto.AssignmentView{
			AssignmentID: a.AssignmentID,
			Title:        a.Title,
			Instructions: a.Instructions,
			DueDate:      helper.FormatDatePtr(a.DueDate),
		})
	}
	return c.JSON(resp)
}

// DELETE /api/learning/materials/:id (STAFF for own courses, ADMIN any)
func (ctrl *MaterialController) Delete(c *fiber.Ctx) error {
	materialID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material id")
	}

	var mat model.StudyMaterialModel
	if err := ctrl.DB.First(&mat, materialID).Error; err != nil {
		return helper.JsonDBError(c, err, "Material not found")
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
		var course courseModel.CourseModel
		if err := ctrl.DB.First(&course, mat.CourseID).Error; err != nil {
			return helper.JsonDBError(c, err, "Course not found")
		}
		if course.StaffID == nil || *course.StaffID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "Course not assigned to this staff")
		}
	}

	if err := ctrl.DB.Delete(&mat).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return c.JSON(fiber.Map{"message": "Material deleted successfully"})
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
