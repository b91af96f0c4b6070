package dto

type CreateProgramRequest struct {
	ProgramName    string  `json:"program_name" validate:"required"`
	Description    *string `json:"description"`
	DurationMonths *int    `json:"duration_months"`
	Semester       int     `json:"semester" validate:"required,gte=1,lte=8"`
	AcademicYearID *int    `json:"academic_year_id"`
	Status         string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type ProgramResponse struct {
	ProgramID        int     `json:"program_id"`
	ProgramName      string  `json:"program_name"`
	Description      *string `json:"description"`
	DurationMonths   *int    `json:"duration_months"`
	Semester         int     `json:"semester"`
	AcademicYearID   *int    `json:"academic_year_id"`
	AcademicYearName *string `json:"academic_year_name"`
	Status           string  `json:"status"`
}
