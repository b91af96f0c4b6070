package model

import (
	academicYearModel "lls_backend/internals/features/academic/academic_years/model"
)

type ProgramModel struct {
	ProgramID      int     `gorm:"primaryKey;autoIncrement;column:program_id" json:"program_id"`
	ProgramName    string  `gorm:"type:varchar(100);not null;column:program_name" json:"program_name"`
	Description    *string `gorm:"type:text;column:description" json:"description,omitempty"`
	DurationMonths *int    `gorm:"column:duration_months" json:"duration_months,omitempty"`
	Semester       int     `gorm:"not null;default:1;column:semester" json:"semester"`
	AcademicYearID *int    `gorm:"column:academic_year_id" json:"academic_year_id,omitempty"`
	Status         string  `gorm:"type:varchar(10);not null;default:'Active';column:status" json:"status"`

	AcademicYear *academicYearModel.AcademicYearModel `gorm:"foreignKey:AcademicYearID;references:AcademicYearID" json:"-"`
}

func (ProgramModel) TableName() string { return "programs" }
