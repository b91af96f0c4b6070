package dto

type CreateAcademicYearRequest struct {
	Year      string `json:"year" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type AcademicYearResponse struct {
	AcademicYearID int    `json:"academic_year_id"`
	Year           string `json:"year"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Status         string `json:"status"`
}
