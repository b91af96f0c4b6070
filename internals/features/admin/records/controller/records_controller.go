package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/features/admin/records/dto"
	"lls_backend/internals/features/admin/records/model"
	helper "lls_backend/internals/helpers"
)

const timestampLayout = "2006-01-02 15:04:05"

// RecordsController covers the administrative bookkeeping rows: payments,
// certificates and feedback. All routes are admin-only.
type RecordsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRecordsController(db *gorm.DB) *RecordsController {
	return &RecordsController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/admin/payments
func (ctrl *RecordsController) CreatePayment(c *fiber.Ctx) error {
	var body dto.CreatePaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	status := body.Status
	if status == "" {
		status = "Completed"
	}
	payment := model.PaymentModel{
		StudentID: body.StudentID,
		Amount:    body.Amount,
		Method:    model.PaymentMethod(body.Method),
		Status:    status,
	}
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Payment recorded successfully",
		"payment_id": payment.PaymentID,
	})
}

// GET /api/admin/payments, optional ?student_id= filter
func (ctrl *RecordsController) ListPayments(c *fiber.Ctx) error {
	q := ctrl.DB.Preload("Student").Order("payment_id")
	if studentID := c.QueryInt("student_id"); studentID > 0 {
		q = q.Where("student_id = ?", studentID)
	}

	var payments []model.PaymentModel
	if err := q.Find(&payments).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		item := dto.PaymentResponse{
			PaymentID: p.PaymentID,
			StudentID: p.StudentID,
			Amount:    p.Amount,
			Date:      p.Date.Format(timestampLayout),
			Method:    string(p.Method),
			Status:    p.Status,
		}
		if p.Student != nil {
			item.StudentName = p.Student.Name
		}
		resp = append(resp, item)
	}
	return c.JSON(resp)
}

// POST /api/admin/certificates
func (ctrl *RecordsController) CreateCertificate(c *fiber.Ctx) error {
	var body dto.CreateCertificateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	status := body.Status
	if status == "" {
		status = "Issued"
	}
	cert := model.CertificateModel{
		StudentID:         body.StudentID,
		SubmissionID:      body.SubmissionID,
		CertificateNumber: body.CertificateNumber,
		Status:            status,
	}
	if err := ctrl.DB.Create(&cert).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "A certificate with this number already exists")
		}
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":        "Certificate issued successfully",
		"certificate_id": cert.CertificateID,
	})
}

// GET /api/admin/certificates, optional ?student_id= filter
func (ctrl *RecordsController) ListCertificates(c *fiber.Ctx) error {
	q := ctrl.DB.Preload("Student").Order("certificate_id")
	if studentID := c.QueryInt("student_id"); studentID > 0 {
		q = q.Where("student_id = ?", studentID)
	}

	var certs []model.CertificateModel
	if err := q.Find(&certs).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		item := dto.CertificateResponse{
			CertificateID:     cert.CertificateID,
			StudentID:         cert.StudentID,
			SubmissionID:      cert.SubmissionID,
			IssueDate:         cert.IssueDate.Format(timestampLayout),
			CertificateNumber: cert.CertificateNumber,
			Status:            cert.Status,
		}
		if cert.Student != nil {
			item.StudentName = cert.Student.Name
		}
		resp = append(resp, item)
	}
	return c.JSON(resp)
}

// POST /api/admin/feedback
func (ctrl *RecordsController) CreateFeedback(c *fiber.Ctx) error {
	var body dto.CreateFeedbackRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	fb := model.FeedbackModel{
		StudentID: body.StudentID,
		Rating:    body.Rating,
	}
	if body.Comments != "" {
		fb.Comments = &body.Comments
	}
	if err := ctrl.DB.Create(&fb).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Feedback recorded successfully",
		"feedback_id": fb.FeedbackID,
	})
}

// GET /api/admin/feedback
func (ctrl *RecordsController) ListFeedback(c *fiber.Ctx) error {
	var items []model.FeedbackModel
	if err := ctrl.DB.Preload("Student").Order("feedback_id").Find(&items).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := make([]dto.FeedbackResponse, 0, len(items))
	for _, fb := range items {
		item := dto.FeedbackResponse{
			FeedbackID: fb.FeedbackID,
			StudentID:  fb.StudentID,
			Rating:     fb.Rating,
			Comments:   fb.Comments,
			Date:       fb.Date.Format(timestampLayout),
		}
		if fb.Student != nil {
			item.StudentName = fb.Student.Name
		}
		resp = append(resp, item)
	}
	return c.JSON(resp)
}
