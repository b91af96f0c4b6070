package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestSubmitQuizRequestValidation(t *testing.T) {
	v := validator.New()

	valid := SubmitQuizRequest{
		StudentID:  1,
		MaterialID: 2,
		Answers: []QuizAnswerInput{
			{MCQID: 10, SelectedOption: "A"},
			{MCQID: 11, SelectedOption: "D"},
		},
	}
	assert.NoError(t, v.Struct(&valid))

	t.Run("empty answer set rejected", func(t *testing.T) {
		req := valid
		req.Answers = nil
		assert.Error(t, v.Struct(&req))
	})

	t.Run("option outside A-D rejected", func(t *testing.T) {
		req := valid
		req.Answers = []QuizAnswerInput{{MCQID: 10, SelectedOption: "E"}}
		assert.Error(t, v.Struct(&req))
	})

	t.Run("missing student id rejected", func(t *testing.T) {
		req := valid
		req.StudentID = 0
		assert.Error(t, v.Struct(&req))
	})
}
