package dto

type RegisterStudentRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	DOB           string `json:"dob"`
	Contact       string `json:"contact"`
	ParentName    string `json:"parent_name"`
	ParentContact string `json:"parent_contact"`
	ParentEmail   string `json:"parent_email" validate:"omitempty,email"`
	ProgramID     *int   `json:"program_id"`
	CourseID      *int   `json:"course_id"`
}

// CreateStudentRequest is the admin-side variant; the password is optional
// since admins may enroll students before they ever log in.
type CreateStudentRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"omitempty,min=6"`
	DOB           string `json:"dob"`
	Contact       string `json:"contact"`
	ParentName    string `json:"parent_name"`
	ParentContact string `json:"parent_contact"`
	ParentEmail   string `json:"parent_email" validate:"omitempty,email"`
	ProgramID     *int   `json:"program_id"`
	CourseID      *int   `json:"course_id"`
}

type StudentResponse struct {
	StudentID     int     `json:"student_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	DOB           *string `json:"dob"`
	Contact       *string `json:"contact"`
	ParentName    *string `json:"parent_name"`
	ParentContact *string `json:"parent_contact"`
	ParentEmail   *string `json:"parent_email"`
	ProgramID     *int    `json:"program_id"`
	ProgramName   *string `json:"program_name"`
	CourseID      *int    `json:"course_id"`
	CourseName    *string `json:"course_name"`
}
