package model

import (
	"time"

	studentModel "lls_backend/internals/features/students/model"
	submissionModel "lls_backend/internals/features/submissions/model"
)

// Administrative records: manual payments, issued certificates and student
// feedback. No gateway or document generation behind these, they are plain
// bookkeeping rows.

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "Card"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCash         PaymentMethod = "Cash"
)

type PaymentModel struct {
	PaymentID int           `gorm:"primaryKey;autoIncrement;column:payment_id" json:"payment_id"`
	StudentID int           `gorm:"not null;index;column:student_id" json:"student_id"`
	Amount    float64       `gorm:"type:numeric(10,2);not null;column:amount" json:"amount"`
	Date      time.Time     `gorm:"type:timestamptz;not null;autoCreateTime;column:date" json:"date"`
	Method    PaymentMethod `gorm:"type:varchar(20);not null;column:method" json:"method"`
	Status    string        `gorm:"type:varchar(10);not null;default:'Completed';column:status" json:"status"`

	Student *studentModel.StudentModel `gorm:"foreignKey:StudentID;references:StudentID" json:"-"`
}

func (PaymentModel) TableName() string { return "payments" }

type CertificateModel struct {
	CertificateID     int       `gorm:"primaryKey;autoIncrement;column:certificate_id" json:"certificate_id"`
	StudentID         int       `gorm:"not null;index;column:student_id" json:"student_id"`
	SubmissionID      *int      `gorm:"column:submission_id" json:"submission_id,omitempty"`
	IssueDate         time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:issue_date" json:"issue_date"`
	CertificateNumber string    `gorm:"type:varchar(50);not null;uniqueIndex;column:certificate_number" json:"certificate_number"`
	Status            string    `gorm:"type:varchar(10);not null;default:'Pending';column:status" json:"status"`

	Student    *studentModel.StudentModel                 `gorm:"foreignKey:StudentID;references:StudentID" json:"-"`
	Submission *submissionModel.AssignmentSubmissionModel `gorm:"foreignKey:SubmissionID;references:SubmissionID" json:"-"`
}

func (CertificateModel) TableName() string { return "certificates" }

type FeedbackModel struct {
	FeedbackID int       `gorm:"primaryKey;autoIncrement;column:feedback_id" json:"feedback_id"`
	StudentID  int       `gorm:"not null;index;column:student_id" json:"student_id"`
	Rating     int       `gorm:"not null;column:rating" json:"rating"`
	Comments   *string   `gorm:"type:text;column:comments" json:"comments,omitempty"`
	Date       time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:date" json:"date"`

	Student *studentModel.StudentModel `gorm:"foreignKey:StudentID;references:StudentID" json:"-"`
}

func (FeedbackModel) TableName() string { return "feedbacks" }
