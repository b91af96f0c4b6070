package dto

type CreateStaffRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"omitempty,min=6"`
	Phone          string `json:"phone"`
	Qualifications string `json:"qualifications"`
	Status         string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateStaffRequest carries only the fields present in the request body;
// nil fields are left untouched.
type UpdateStaffRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Password       *string `json:"password" validate:"omitempty,min=6"`
	Phone          *string `json:"phone"`
	Qualifications *string `json:"qualifications"`
	Status         *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type StaffResponse struct {
	StaffID        int     `json:"staff_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	Qualifications *string `json:"qualifications"`
	Status         string  `json:"status"`
	HasPassword    bool    `json:"has_password"`
}
