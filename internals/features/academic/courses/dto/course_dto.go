package dto

type CreateCourseRequest struct {
	CourseName  string  `json:"course_name" validate:"required"`
	Description *string `json:"description"`
	Credits     *int    `json:"credits"`
	StaffID     *int    `json:"staff_id"`
	Status      string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
	ProgramIDs  []int   `json:"program_ids"`
}

type LinkedProgram struct {
	ProgramID   int    `json:"program_id"`
	ProgramName string `json:"program_name"`
	Semester    int    `json:"semester"`
}

type CourseResponse struct {
	CourseID       int             `json:"course_id"`
	CourseName     string          `json:"course_name"`
	Description    *string         `json:"description"`
	Credits        *int            `json:"credits"`
	StaffID        *int            `json:"staff_id"`
	TeacherName    *string         `json:"teacher_name"`
	LinkedPrograms []LinkedProgram `json:"linked_programs"`
	Status         string          `json:"status"`
}

type StaffCourseResponse struct {
	CourseID      int     `json:"course_id"`
	CourseName    string  `json:"course_name"`
	Description   *string `json:"description"`
	Credits       *int    `json:"credits"`
	Status        string  `json:"status"`
	MaterialCount int64   `json:"material_count"`
}

type AddCourseToProgramRequest struct {
	CourseID int `json:"course_id" validate:"required"`
	Semester int `json:"semester" validate:"required,gte=1,lte=8"`
}

type ProgramCourseResponse struct {
	ProgramCourseID int    `json:"program_course_id"`
	CourseID        int    `json:"course_id"`
	CourseName      string `json:"course_name"`
	Semester        int    `json:"semester"`
	Credits         *int   `json:"credits"`
}
