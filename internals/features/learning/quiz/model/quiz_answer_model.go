package model

import (
	"time"

	mcqModel "lls_backend/internals/features/learning/mcqs/model"
	studentModel "lls_backend/internals/features/students/model"
)

// QuizAnswerModel is one answered question of a submitted quiz. Rows are
// written once, in a single transaction covering the whole answer set, and
// never updated: the unique (student_id, mcq_id) index backs the
// one-submission-per-student invariant.
type QuizAnswerModel struct {
	QuizAnswerID   int       `gorm:"primaryKey;autoIncrement;column:quiz_answer_id" json:"quiz_answer_id"`
	StudentID      int       `gorm:"not null;uniqueIndex:uq_quiz_answers_student_mcq;index:idx_quiz_answers_student_material;column:student_id" json:"student_id"`
	MCQID          int       `gorm:"not null;uniqueIndex:uq_quiz_answers_student_mcq;column:mcq_id" json:"mcq_id"`
	MaterialID     int       `gorm:"not null;index:idx_quiz_answers_student_material;column:material_id" json:"material_id"`
	SelectedOption string    `gorm:"type:varchar(1);not null;column:selected_option" json:"selected_option"`
	IsCorrect      bool      `gorm:"not null;column:is_correct" json:"is_correct"`
	SubmittedAt    time.Time `gorm:"not null;autoCreateTime;column:submitted_at" json:"submitted_at"`

	Student *studentModel.StudentModel `gorm:"foreignKey:StudentID;references:StudentID" json:"-"`
	MCQ     *mcqModel.MCQModel         `gorm:"foreignKey:MCQID;references:MCQID" json:"-"`
}

func (QuizAnswerModel) TableName() string { return "quiz_answers" }
