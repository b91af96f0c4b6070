package model

import "golang.org/x/crypto/bcrypt"

type StaffModel struct {
	StaffID        int     `gorm:"primaryKey;autoIncrement;column:staff_id" json:"staff_id"`
	Name           string  `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Email          string  `gorm:"type:varchar(100);not null;uniqueIndex;column:email" json:"email"`
	PasswordHash   *string `gorm:"type:varchar(255);column:password_hash" json:"-"`
	Phone          *string `gorm:"type:varchar(20);column:phone" json:"phone,omitempty"`
	Qualifications *string `gorm:"type:text;column:qualifications" json:"qualifications,omitempty"`
	Status         string  `gorm:"type:varchar(10);not null;default:'Active';column:status" json:"status"`
}

func (StaffModel) TableName() string { return "staff" }

func (s *StaffModel) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h := string(hash)
	s.PasswordHash = &h
	return nil
}

func (s *StaffModel) CheckPassword(pwd string) error {
	if s.PasswordHash == nil {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(*s.PasswordHash), []byte(pwd))
}
