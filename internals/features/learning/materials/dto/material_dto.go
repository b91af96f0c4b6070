package dto

type CreateMaterialRequest struct {
	CourseID        int    `json:"course_id" validate:"required,gte=1"`
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	MaterialType    string `json:"material_type" validate:"omitempty,oneof=video document quiz assignment"`
	VideoURL        string `json:"video_url"`
	FilePath        string `json:"file_path"`
	DurationMinutes *int   `json:"duration_minutes" validate:"omitempty,gte=0"`
}

// MaterialListItem is the per-lesson row on the course page; the counts let
// the client badge lessons that carry a quiz or an assignment.
type MaterialListItem struct {
	MaterialID      int     `json:"material_id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	MaterialType    string  `json:"material_type"`
	DurationMinutes *int    `json:"duration_minutes"`
	OrderIndex      int     `json:"order_index"`
	UploadDate      *string `json:"upload_date"`
	MCQCount        int64   `json:"mcq_count"`
	AssignmentCount int64   `json:"assignment_count"`
}

// MCQView deliberately omits the correct option: it is the shape
// students receive while taking a quiz.
type MCQView struct {
	MCQID    int     `json:"mcq_id"`
	Question string  `json:"question"`
	OptionA  string  `json:"option_a"`
	OptionB  string  `json:"option_b"`
	OptionC  *string `json:"option_c"`
	OptionD  *string `json:"option_d"`
}

type AssignmentView struct {
	AssignmentID int     `json:"assignment_id"`
	Title        string  `json:"title"`
	Instructions *string `json:"instructions"`
	DueDate      *string `json:"due_date"`
}

type MaterialDetailResponse struct {
	MaterialID      int              `json:"material_id"`
	CourseID        int              `json:"course_id"`
	Title           string           `json:"title"`
	Description     *string          `json:"description"`
	MaterialType    string           `json:"material_type"`
	VideoURL        *string          `json:"video_url"`
	VideoEmbedURL   *string          `json:"video_embed_url"`
	FilePath        *string          `json:"file_path"`
	DurationMinutes *int             `json:"duration_minutes"`
	OrderIndex      int              `json:"order_index"`
	UploadDate      *string          `json:"upload_date"`
	MCQs            []MCQView        `json:"mcqs"`
	Assignments     []AssignmentView `json:"assignments"`
}
