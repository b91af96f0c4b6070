package model

import (
	programModel "lls_backend/internals/features/academic/programs/model"
	staffModel "lls_backend/internals/features/staff/model"
)

type CourseModel struct {
	CourseID    int     `gorm:"primaryKey;autoIncrement;column:course_id" json:"course_id"`
	CourseName  string  `gorm:"type:varchar(100);not null;column:course_name" json:"course_name"`
	Description *string `gorm:"type:text;column:description" json:"description,omitempty"`
	Credits     *int    `gorm:"column:credits" json:"credits,omitempty"`
	StaffID     *int    `gorm:"column:staff_id" json:"staff_id,omitempty"`
	Status      string  `gorm:"type:varchar(10);not null;default:'Active';column:status" json:"status"`

	Teacher *staffModel.StaffModel `gorm:"foreignKey:StaffID;references:StaffID" json:"-"`
}

func (CourseModel) TableName() string { return "courses" }

// ProgramCourseModel is the many-to-many link between programs and courses.
// The semester on the link row is the semester the course is taught in for
// that program, independent of the program's own semester.
type ProgramCourseModel struct {
	ProgramCourseID int `gorm:"primaryKey;autoIncrement;column:program_course_id" json:"program_course_id"`
	ProgramID       int `gorm:"not null;index;column:program_id" json:"program_id"`
	CourseID        int `gorm:"not null;index;column:course_id" json:"course_id"`
	Semester        int `gorm:"not null;default:1;column:semester" json:"semester"`

	Program *programModel.ProgramModel `gorm:"foreignKey:ProgramID;references:ProgramID" json:"-"`
	Course  *CourseModel               `gorm:"foreignKey:CourseID;references:CourseID" json:"-"`
}

func (ProgramCourseModel) TableName() string { return "program_courses" }
