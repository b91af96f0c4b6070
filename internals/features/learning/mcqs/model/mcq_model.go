package model

import (
	materialModel "lls_backend/internals/features/learning/materials/model"
)

// MCQModel is a single multiple-choice question. Options A and B are
// mandatory, C and D optional; correct_option is one of A/B/C/D.
type MCQModel struct {
	MCQID         int     `gorm:"primaryKey;autoIncrement;column:mcq_id" json:"mcq_id"`
	MaterialID    int     `gorm:"not null;index;column:material_id" json:"material_id"`
	Question      string  `gorm:"type:text;not null;column:question" json:"question"`
	OptionA       string  `gorm:"type:varchar(200);not null;column:option_a" json:"option_a"`
	OptionB       string  `gorm:"type:varchar(200);not null;column:option_b" json:"option_b"`
	OptionC       *string `gorm:"type:varchar(200);column:option_c" json:"option_c,omitempty"`
	OptionD       *string `gorm:"type:varchar(200);column:option_d" json:"option_d,omitempty"`
	CorrectOption string  `gorm:"type:varchar(1);not null;column:correct_option" json:"correct_option"`

	Material *materialModel.StudyMaterialModel `gorm:"foreignKey:MaterialID;references:MaterialID" json:"-"`
}

func (MCQModel) TableName() string { return "mcqs" }

// HasOption reports whether the given letter refers to a present option.
func (m *MCQModel) HasOption(letter string) bool {
	switch letter {
	case "A", "B":
		return true
	case "C":
		return m.OptionC != nil && *m.OptionC != ""
	case "D":
		return m.OptionD != nil && *m.OptionD != ""
	}
	return false
}
