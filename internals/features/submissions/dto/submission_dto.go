package dto

type SubmitAssignmentRequest struct {
	StudentID      int    `json:"student_id" validate:"required,gte=1"`
	AssignmentID   int    `json:"assignment_id" validate:"required,gte=1"`
	AssignmentText string `json:"assignment_text"`
	FilePath       string `json:"file_path"`
}

type EvaluateSubmissionRequest struct {
	SubmissionID int      `json:"submission_id" validate:"required,gte=1"`
	Marks        *float64 `json:"marks" validate:"required,gte=0,lte=100"`
	Feedback     string   `json:"feedback"`
}

type SubmissionResponse struct {
	SubmissionID    int      `json:"submission_id"`
	AssignmentID    int      `json:"assignment_id"`
	AssignmentTitle string   `json:"assignment_title"`
	StudentID       int      `json:"student_id"`
	StudentName     string   `json:"student_name"`
	AssignmentText  *string  `json:"assignment_text"`
	FilePath        *string  `json:"file_path"`
	SubmittedDate   string   `json:"submitted_date"`
	IsEvaluated     bool     `json:"is_evaluated"`
	Marks           *float64 `json:"marks"`
	Grade           *string  `json:"grade"`
	Feedback        *string  `json:"feedback"`
	EvaluatedBy     *int     `json:"evaluated_by"`
	EvaluatedAt     *string  `json:"evaluated_at"`
}

type EvaluationResponse struct {
	SubmissionID    int     `json:"submission_id"`
	AssignmentID    int     `json:"assignment_id"`
	AssignmentTitle string  `json:"assignment_title"`
	StudentID       int     `json:"student_id"`
	StudentName     string  `json:"student_name"`
	Marks           float64 `json:"marks"`
	Grade           string  `json:"grade"`
	Passed          bool    `json:"passed"`
	Feedback        *string `json:"feedback"`
	EvaluatedBy     *int    `json:"evaluated_by"`
	EvaluatorName   *string `json:"evaluator_name"`
	EvaluatedAt     *string `json:"evaluated_at"`
}
