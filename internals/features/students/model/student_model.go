package model

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	courseModel "lls_backend/internals/features/academic/courses/model"
	programModel "lls_backend/internals/features/academic/programs/model"
)

type StudentModel struct {
	StudentID     int             `gorm:"primaryKey;autoIncrement;column:student_id" json:"student_id"`
	Name          string          `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Email         string          `gorm:"type:varchar(100);not null;uniqueIndex;column:email" json:"email"`
	PasswordHash  *string         `gorm:"type:varchar(255);column:password_hash" json:"-"`
	DOB           *datatypes.Date `gorm:"type:date;column:dob" json:"dob,omitempty"`
	Contact       *string         `gorm:"type:varchar(20);column:contact" json:"contact,omitempty"`
	ParentName    *string         `gorm:"type:varchar(100);column:parent_name" json:"parent_name,omitempty"`
	ParentContact *string         `gorm:"type:varchar(20);column:parent_contact" json:"parent_contact,omitempty"`
	ParentEmail   *string         `gorm:"type:varchar(100);column:parent_email" json:"parent_email,omitempty"`
	ProgramID     *int            `gorm:"column:program_id" json:"program_id,omitempty"`
	CourseID      *int            `gorm:"column:course_id" json:"course_id,omitempty"`

	Program *programModel.ProgramModel `gorm:"foreignKey:ProgramID;references:ProgramID" json:"-"`
	Course  *courseModel.CourseModel   `gorm:"foreignKey:CourseID;references:CourseID" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

func (s *StudentModel) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h := string(hash)
	s.PasswordHash = &h
	return nil
}

func (s *StudentModel) CheckPassword(pwd string) error {
	if s.PasswordHash == nil {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(*s.PasswordHash), []byte(pwd))
}
