package model

import (
	"gorm.io/datatypes"

	materialModel "lls_backend/internals/features/learning/materials/model"
)

type AssignmentModel struct {
	AssignmentID int             `gorm:"primaryKey;autoIncrement;column:assignment_id" json:"assignment_id"`
	MaterialID   int             `gorm:"not null;index;column:material_id" json:"material_id"`
	Title        string          `gorm:"type:varchar(200);not null;column:title" json:"title"`
	Instructions *string         `gorm:"type:text;column:instructions" json:"instructions,omitempty"`
	DueDate      *datatypes.Date `gorm:"type:date;column:due_date" json:"due_date,omitempty"`

	Material *materialModel.StudyMaterialModel `gorm:"foreignKey:MaterialID;references:MaterialID" json:"-"`
}

func (AssignmentModel) TableName() string { return "assignments" }
