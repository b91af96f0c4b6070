package model

import (
	"time"

	assignmentModel "lls_backend/internals/features/learning/assignments/model"
	staffModel "lls_backend/internals/features/staff/model"
	studentModel "lls_backend/internals/features/students/model"
)

// AssignmentSubmissionModel holds the student's response and, once a staff
// member evaluates it, the evaluation fields. One row per
// (assignment, student); the text may be overwritten while is_evaluated is
// false and becomes read-only to the student afterwards.
type AssignmentSubmissionModel struct {
	SubmissionID   int       `gorm:"primaryKey;autoIncrement;column:submission_id" json:"submission_id"`
	AssignmentID   int       `gorm:"not null;uniqueIndex:uq_submissions_assignment_student;column:assignment_id" json:"assignment_id"`
	StudentID      int       `gorm:"not null;uniqueIndex:uq_submissions_assignment_student;column:student_id" json:"student_id"`
	AssignmentText *string   `gorm:"type:text;column:assignment_text" json:"assignment_text,omitempty"`
	FilePath       *string   `gorm:"type:varchar(255);column:file_path" json:"file_path,omitempty"`
	SubmittedDate  time.Time `gorm:"not null;autoCreateTime;column:submitted_date" json:"submitted_date"`

	// evaluation; marks is 0..100 when is_evaluated. evaluated_by is the
	// staff id of the evaluator, nil when the bootstrap admin (which has
	// no staff row) did the evaluation.
	Marks       *float64   `gorm:"type:numeric(5,2);column:marks" json:"marks,omitempty"`
	Feedback    *string    `gorm:"type:text;column:feedback" json:"feedback,omitempty"`
	IsEvaluated bool       `gorm:"not null;default:false;column:is_evaluated" json:"is_evaluated"`
	EvaluatedBy *int       `gorm:"column:evaluated_by" json:"evaluated_by,omitempty"`
	EvaluatedAt *time.Time `gorm:"column:evaluated_at" json:"evaluated_at,omitempty"`

	Assignment *assignmentModel.AssignmentModel `gorm:"foreignKey:AssignmentID;references:AssignmentID" json:"-"`
	Student    *studentModel.StudentModel       `gorm:"foreignKey:StudentID;references:StudentID" json:"-"`
	Evaluator  *staffModel.StaffModel           `gorm:"foreignKey:EvaluatedBy;references:StaffID" json:"-"`
}

func (AssignmentSubmissionModel) TableName() string { return "assignment_submissions" }
