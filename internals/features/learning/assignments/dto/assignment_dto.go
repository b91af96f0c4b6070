package dto

type CreateAssignmentRequest struct {
	MaterialID   int    `json:"material_id" validate:"required,gte=1"`
	Title        string `json:"title" validate:"required"`
	Instructions string `json:"instructions"`
	DueDate      string `json:"due_date"`
}

type AssignmentResponse struct {
	AssignmentID int     `json:"assignment_id"`
	MaterialID   int     `json:"material_id"`
	Title        string  `json:"title"`
	Instructions *string `json:"instructions"`
	DueDate      *string `json:"due_date"`
}
