package dto

type CreateMCQRequest struct {
	MaterialID    int     `json:"material_id" validate:"required,gte=1"`
	Question      string  `json:"question" validate:"required"`
	OptionA       string  `json:"option_a" validate:"required"`
	OptionB       string  `json:"option_b" validate:"required"`
	OptionC       *string `json:"option_c"`
	OptionD       *string `json:"option_d"`
	CorrectOption string  `json:"correct_option" validate:"required,oneof=A B C D"`
}

// MCQResponse includes the answer key; it is only served to staff and admin.
type MCQResponse struct {
	MCQID         int     `json:"mcq_id"`
	MaterialID    int     `json:"material_id"`
	Question      string  `json:"question"`
	OptionA       string  `json:"option_a"`
	OptionB       string  `json:"option_b"`
	OptionC       *string `json:"option_c"`
	OptionD       *string `json:"option_d"`
	CorrectOption string  `json:"correct_option"`
}
