package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/constants"
	courseModel "lls_backend/internals/features/academic/courses/model"
	assignmentModel "lls_backend/internals/features/learning/assignments/model"
	materialModel "lls_backend/internals/features/learning/materials/model"
	"lls_backend/internals/features/submissions/dto"
	"lls_backend/internals/features/submissions/model"
	"lls_backend/internals/features/submissions/service"
	helper "lls_backend/internals/helpers"
	helperAuth "lls_backend/internals/helpers/auth"
)

const timestampLayout = "2006-01-02 15:04:05"

type SubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/learning/assignments/submit (STUDENT, own id only)
//
// Re-submitting overwrites the previous response until a staff member
// evaluates it; after that the submission is locked and returns 409.
func (ctrl *SubmissionController) Submit(c *fiber.Ctx) error {
	var body dto.SubmitAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if body.AssignmentText == "" && body.FilePath == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Submission must include text or a file")
	}

	own := helperAuth.GetStudentID(c)
	if own == nil || *own != body.StudentID {
		return helper.JsonError(c, fiber.StatusForbidden, "Students may only submit their own work")
	}

	var assignment assignmentModel.AssignmentModel
	if err := ctrl.DB.First(&assignment, body.AssignmentID).Error; err != nil {
		return helper.JsonDBError(c, err, "Assignment not found")
	}

	var existing model.AssignmentSubmissionModel
	err := ctrl.DB.Where("assignment_id = ? AND student_id = ?", body.AssignmentID, body.StudentID).
		First(&existing).Error
	switch {
	case err == nil:
		if existing.IsEvaluated {
			return helper.JsonError(c, fiber.StatusConflict, "Submission already evaluated and can no longer be changed")
		}
		existing.AssignmentText = optStr(body.AssignmentText)
		existing.FilePath = optStr(body.FilePath)
		existing.SubmittedDate = time.Now()
		if err := ctrl.DB.Save(&existing).Error; err != nil {
			return helper.JsonDBError(c, err, "")
		}
		return c.JSON(fiber.Map{
			"message":       "Assignment resubmitted successfully",
			"submission_id": existing.SubmissionID,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := model.AssignmentSubmissionModel{
			AssignmentID:   body.AssignmentID,
			StudentID:      body.StudentID,
			AssignmentText: optStr(body.AssignmentText),
			FilePath:       optStr(body.FilePath),
		}
		if err := ctrl.DB.Create(&sub).Error; err != nil {
			return helper.JsonDBError(c, err, "")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":       "Assignment submitted successfully",
			"submission_id": sub.SubmissionID,
		})
	default:
		return helper.JsonDBError(c, err, "")
	}
}

// GET /api/learning/assignments/submissions/:student_id/:material_id
// (STUDENT own id only; STAFF/ADMIN any)
func (ctrl *SubmissionController) StudentSubmissions(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	materialID, err := c.ParamsInt("material_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material id")
	}

	role, err := helperAuth.GetRole(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if role == constants.RoleStudent {
		own := helperAuth.GetStudentID(c)
		if own == nil || *own != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "Students may only view their own submissions")
		}
	}

	var subs []model.AssignmentSubmissionModel
	if err := ctrl.DB.Preload("Assignment").Preload("Student").
		Joins("JOIN assignments ON assignments.assignment_id = assignment_submissions.assignment_id").
		Where("assignment_submissions.student_id = ? AND assignments.material_id = ?", studentID, materialID).
		Order("assignment_submissions.submission_id").
		Find(&subs).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return c.JSON(toSubmissionResponses(subs))
}

// GET /api/submission/staff/:id/submissions (STAFF own id, ADMIN any)
// Filters: ?status=evaluated|pending and ?search= on student name or
// assignment title.
func (ctrl *SubmissionController) StaffSubmissions(c *fiber.Ctx) error {
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
			return helper.JsonError(c, fiber.StatusForbidden, "Staff may only view submissions for their own courses")
		}
	}

	q := ctrl.DB.Preload("Assignment").Preload("Student").
		Joins("JOIN assignments ON assignments.assignment_id = assignment_submissions.assignment_id").
		Joins("JOIN study_materials ON study_materials.material_id = assignments.material_id").
		Joins("JOIN courses ON courses.course_id = study_materials.course_id").
		Joins("JOIN students ON students.student_id = assignment_submissions.student_id").
		Where("courses.staff_id = ?", staffID)

	switch c.Query("status") {
	case "evaluated":
		q = q.Where("assignment_submissions.is_evaluated")
	case "pending":
		q = q.Where("NOT assignment_submissions.is_evaluated")
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("students.name ILIKE ? OR students.email ILIKE ? OR assignments.title ILIKE ?", like, like, like)
	}

	var subs []model.AssignmentSubmissionModel
	if err := q.Order("assignment_submissions.submitted_date DESC").Find(&subs).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return c.JSON(toSubmissionResponses(subs))
}

// POST /api/submission/evaluations (STAFF for own courses, ADMIN any)
//
// Marks outside 0..100 are rejected before anything is written.
// Re-evaluation overwrites the previous marks and feedback.
func (ctrl *SubmissionController) Evaluate(c *fiber.Ctx) error {
	var body dto.EvaluateSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var sub model.AssignmentSubmissionModel
	if err := ctrl.DB.First(&sub, body.SubmissionID).Error; err != nil {
		return helper.JsonDBError(c, err, "Submission not found")
	}

	role, err := helperAuth.GetRole(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if role == constants.RoleStaff {
		if err := ctrl.checkSubmissionOwnership(&sub, userID); err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		}
	}

	now := time.Now()
	sub.Marks = body.Marks
	sub.Feedback = optStr(body.Feedback)
	sub.IsEvaluated = true
	// evaluated_by references staff; the bootstrap admin has no staff row,
	// so its evaluations are recorded without an evaluator id.
	if role == constants.RoleStaff {
		sub.EvaluatedBy = &userID
	} else {
		sub.EvaluatedBy = nil
	}
	sub.EvaluatedAt = &now
	if err := ctrl.DB.Save(&sub).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	return c.JSON(fiber.Map{
		"message": "Submission evaluated successfully",
		"grade":   service.GradeLetter(*body.Marks),
		"passed":  service.IsPass(*body.Marks),
	})
}

// GET /api/submission/evaluations[?student_id=] (STUDENT own only; STAFF/ADMIN any)
func (ctrl *SubmissionController) ListEvaluations(c *fiber.Ctx) error {
	studentID := c.QueryInt("student_id")

	role, err := helperAuth.GetRole(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if role == constants.RoleStudent {
		own := helperAuth.GetStudentID(c)
		if own == nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Students may only view their own evaluations")
		}
		if studentID == 0 {
			studentID = *own
		} else if studentID != *own {
			return helper.JsonError(c, fiber.StatusForbidden, "Students may only view their own evaluations")
		}
	}

	q := ctrl.DB.Preload("Assignment").Preload("Student").Preload("Evaluator").
		Where("is_evaluated")
	if studentID > 0 {
		q = q.Where("student_id = ?", studentID)
	}

	var subs []model.AssignmentSubmissionModel
	if err := q.Order("evaluated_at DESC").Find(&subs).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.EvaluationResponse, 0, len(subs))
	for _, sub := range subs {
		if sub.Marks == nil {
			continue
		}
		item := dto.EvaluationResponse{
			SubmissionID: sub.SubmissionID,
			AssignmentID: sub.AssignmentID,
			StudentID:    sub.StudentID,
			Marks:        *sub.Marks,
			Grade:        service.GradeLetter(*sub.Marks),
			Passed:       service.IsPass(*sub.Marks),
			Feedback:     sub.Feedback,
			EvaluatedBy:  sub.EvaluatedBy,
		}
		if sub.Assignment != nil {
			item.AssignmentTitle = sub.Assignment.Title
		}
		if sub.Student != nil {
			item.StudentName = sub.Student.Name
		}
		if sub.Evaluator != nil {
			item.EvaluatorName = &sub.Evaluator.Name
		}
		if sub.EvaluatedAt != nil {
			s := sub.EvaluatedAt.Format(timestampLayout)
			item.EvaluatedAt = &s
		}
		resp = append(resp, item)
	}
	return c.JSON(resp)
}

// checkSubmissionOwnership walks submission -> assignment -> material ->
// course and verifies the course belongs to the given staff member.
func (ctrl *SubmissionController) checkSubmissionOwnership(sub *model.AssignmentSubmissionModel, staffID int) error {
	var assignment assignmentModel.AssignmentModel
	if err := ctrl.DB.First(&assignment, sub.AssignmentID).Error; err != nil {
		return errors.New("Course not assigned to this staff")
	}
	var mat materialModel.StudyMaterialModel
	if err := ctrl.DB.First(&mat, assignment.MaterialID).Error; err != nil {
		return errors.New("Course not assigned to this staff")
	}
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, mat.CourseID).Error; err != nil {
		return errors.New("Course not assigned to this staff")
	}
	if course.StaffID == nil || *course.StaffID != staffID {
		return errors.New("Course not assigned to this staff")
	}
	return nil
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toSubmissionResponses(subs []model.AssignmentSubmissionModel) []dto.SubmissionResponse {
	resp := make([]dto.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		item := dto.SubmissionResponse{
			SubmissionID:   sub.SubmissionID,
			AssignmentID:   sub.AssignmentID,
			StudentID:      sub.StudentID,
			AssignmentText: sub.AssignmentText,
			FilePath:       sub.FilePath,
			SubmittedDate:  sub.SubmittedDate.Format(timestampLayout),
			IsEvaluated:    sub.IsEvaluated,
			Marks:          sub.Marks,
			Feedback:       sub.Feedback,
			EvaluatedBy:    sub.EvaluatedBy,
		}
		if sub.Assignment != nil {
			item.AssignmentTitle = sub.Assignment.Title
		}
		if sub.Student != nil {
			item.StudentName = sub.Student.Name
		}
		if sub.Marks != nil {
			g := service.GradeLetter(*sub.Marks)
			item.Grade = &g
		}
		if sub.EvaluatedAt != nil {
			s := sub.EvaluatedAt.Format(timestampLayout)
			item.EvaluatedAt = &s
		}
		resp = append(resp, item)
	}
	return resp
}
