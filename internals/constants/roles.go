package constants

import "fmt"

// Role error message templates
const (
	ErrOnlyStaffCanAccess    = "Only staff or admin may access %s."
	ErrOnlyAdminsCanAccess   = "Only admin may access %s."
	ErrOnlyStudentsCanAccess = "Only students may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// Roles
// ==========================

// The closed role set. Role strings live here and in JWT claims only;
// everything else compares against these constants.
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

var (
	AllRoles = []string{
		RoleAdmin,
		RoleStaff,
		RoleStudent,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
