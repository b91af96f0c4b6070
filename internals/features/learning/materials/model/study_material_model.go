package model

import (
	"gorm.io/datatypes"

	courseModel "lls_backend/internals/features/academic/courses/model"
)

type MaterialType string

const (
	MaterialTypeVideo      MaterialType = "video"
	MaterialTypeDocument   MaterialType = "document"
	MaterialTypeQuiz       MaterialType = "quiz"
	MaterialTypeAssignment MaterialType = "assignment"
)

func (t MaterialType) Valid() bool {
	switch t {
	case MaterialTypeVideo, MaterialTypeDocument, MaterialTypeQuiz, MaterialTypeAssignment:
		return true
	}
	return false
}

type StudyMaterialModel struct {
	MaterialID      int             `gorm:"primaryKey;autoIncrement;column:material_id" json:"material_id"`
	CourseID        int             `gorm:"not null;index;column:course_id" json:"course_id"`
	Title           string          `gorm:"type:varchar(200);not null;column:title" json:"title"`
	Description     *string         `gorm:"type:text;column:description" json:"description,omitempty"`
	MaterialType    MaterialType    `gorm:"type:varchar(20);not null;default:'video';column:material_type" json:"material_type"`
	VideoURL        *string         `gorm:"type:varchar(500);column:video_url" json:"video_url,omitempty"`
	FilePath        *string         `gorm:"type:varchar(255);column:file_path" json:"file_path,omitempty"`
	DurationMinutes *int            `gorm:"column:duration_minutes" json:"duration_minutes,omitempty"`
	OrderIndex      int             `gorm:"not null;default:0;column:order_index" json:"order_index"`
	UploadDate      *datatypes.Date `gorm:"type:date;column:upload_date" json:"upload_date,omitempty"`
	UploadedBy      *int            `gorm:"column:uploaded_by" json:"uploaded_by,omitempty"`

	Course *courseModel.CourseModel `gorm:"foreignKey:CourseID;references:CourseID" json:"-"`
}

func (StudyMaterialModel) TableName() string { return "study_materials" }
