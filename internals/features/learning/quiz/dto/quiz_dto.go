package dto

type QuizAnswerInput struct {
	MCQID          int    `json:"mcq_id" validate:"required,gte=1"`
	SelectedOption string `json:"selected_option" validate:"required,oneof=A B C D"`
}

type SubmitQuizRequest struct {
	StudentID  int               `json:"student_id" validate:"required,gte=1"`
	MaterialID int               `json:"material_id" validate:"required,gte=1"`
	Answers    []QuizAnswerInput `json:"answers" validate:"required,min=1,dive"`
}

// QuizQuestionResult is the per-question verdict. The key is revealed here
// because the quiz is over for this student by the time it is sent.
type QuizQuestionResult struct {
	MCQID          int    `json:"mcq_id"`
	SelectedOption string `json:"selected_option"`
	IsCorrect      bool   `json:"is_correct"`
	CorrectOption  string `json:"correct_option"`
}

type SubmitQuizResponse struct {
	Message         string               `json:"message"`
	Results         []QuizQuestionResult `json:"results"`
	CorrectCount    int                  `json:"correct_count"`
	TotalCount      int                  `json:"total_count"`
	ScorePercentage int                  `json:"score_percentage"`
}

// QuizResultsResponse rebuilds the same verdicts from the persisted rows so
// a returning student sees the quiz exactly as it ended. submitted=false
// means the student never took this quiz.
type QuizResultsResponse struct {
	Submitted       bool                 `json:"submitted"`
	Results         []QuizQuestionResult `json:"results"`
	CorrectCount    int                  `json:"correct_count"`
	TotalCount      int                  `json:"total_count"`
	ScorePercentage int                  `json:"score_percentage"`
}
