package model

import (
	"gorm.io/datatypes"
)

type AcademicYearModel struct {
	AcademicYearID int            `gorm:"primaryKey;autoIncrement;column:academic_year_id" json:"academic_year_id"`
	Year           string         `gorm:"type:varchar(20);not null;uniqueIndex;column:year" json:"year"`
	StartDate      datatypes.Date `gorm:"type:date;not null;column:start_date" json:"start_date"`
	EndDate        datatypes.Date `gorm:"type:date;not null;column:end_date" json:"end_date"`
	Status         string         `gorm:"type:varchar(10);not null;default:'Active';column:status" json:"status"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }
