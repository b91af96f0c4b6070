package service

import (
	"errors"
	"math"

	mcqModel "lls_backend/internals/features/learning/mcqs/model"
)

var (
	ErrNoQuestions      = errors.New("quiz has no questions")
	ErrIncompleteAnswer = errors.New("every question must be answered")
	ErrUnknownQuestion  = errors.New("answer refers to a question outside this quiz")
	ErrInvalidOption    = errors.New("selected option is not offered by the question")
)

type AnswerResult struct {
	MCQID          int
	SelectedOption string
	IsCorrect      bool
}

type QuizResult struct {
	TotalQuestions  int
	CorrectAnswers  int
	ScorePercentage int
	Answers         []AnswerResult
}

// Grade scores a complete set of answers against a quiz. The answer set
// must cover every question exactly, with options the question offers.
func Grade(questions []mcqModel.MCQModel, answers map[int]string) (*QuizResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if len(answers) != len(questions) {
		return nil, ErrIncompleteAnswer
	}

	byID := make(map[int]mcqModel.MCQModel, len(questions))
	for _, q := range questions {
		byID[q.MCQID] = q
	}
	for mcqID := range answers {
		if _, ok := byID[mcqID]; !ok {
			return nil, ErrUnknownQuestion
		}
	}

	result := &QuizResult{
		TotalQuestions: len(questions),
		Answers:        make([]AnswerResult, 0, len(questions)),
	}
	for _, q := range questions {
		selected, ok := answers[q.MCQID]
		if !ok {
			return nil, ErrIncompleteAnswer
		}
		if !q.HasOption(selected) {
			return nil, ErrInvalidOption
		}
		correct := selected == q.CorrectOption
		if correct {
			result.CorrectAnswers++
		}
		result.Answers = append(result.Answers, AnswerResult{
			MCQID:          q.MCQID,
			SelectedOption: selected,
			IsCorrect:      correct,
		})
	}

	result.ScorePercentage = Score(result.CorrectAnswers, result.TotalQuestions)
	return result, nil
}

// Score is the canonical percentage: correct over total, rounded to the
// nearest whole percent.
func Score(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(total)))
}
