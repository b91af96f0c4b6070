package dto

type CreatePaymentRequest struct {
	StudentID int     `json:"student_id" validate:"required,gte=1"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,oneof=Card 'Bank Transfer' Cash"`
	Status    string  `json:"status" validate:"omitempty,oneof=Completed Pending Failed"`
}

type PaymentResponse struct {
	PaymentID   int     `json:"payment_id"`
	StudentID   int     `json:"student_id"`
	StudentName string  `json:"student_name"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Method      string  `json:"method"`
	Status      string  `json:"status"`
}

type CreateCertificateRequest struct {
	StudentID         int    `json:"student_id" validate:"required,gte=1"`
	SubmissionID      *int   `json:"submission_id"`
	CertificateNumber string `json:"certificate_number" validate:"required"`
	Status            string `json:"status" validate:"omitempty,oneof=Pending Issued Revoked"`
}

type CertificateResponse struct {
	CertificateID     int    `json:"certificate_id"`
	StudentID         int    `json:"student_id"`
	StudentName       string `json:"student_name"`
	SubmissionID      *int   `json:"submission_id"`
	IssueDate         string `json:"issue_date"`
	CertificateNumber string `json:"certificate_number"`
	Status            string `json:"status"`
}

type CreateFeedbackRequest struct {
	StudentID int    `json:"student_id" validate:"required,gte=1"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comments  string `json:"comments"`
}

type FeedbackResponse struct {
	FeedbackID  int     `json:"feedback_id"`
	StudentID   int     `json:"student_id"`
	StudentName string  `json:"student_name"`
	Rating      int     `json:"rating"`
	Comments    *string `json:"comments"`
	Date        string  `json:"date"`
}
