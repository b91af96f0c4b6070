package controller

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lls_backend/internals/configs"
	"lls_backend/internals/constants"
	staffModel "lls_backend/internals/features/staff/model"
	studentModel "lls_backend/internals/features/students/model"
	"lls_backend/internals/features/users/auth/dto"
	helperAuth "lls_backend/internals/helpers/auth"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/auth/login
//
// Lookup order: bootstrap admin, staff, student. The response body is the
// identity blob the client keeps for the session, plus the bearer token.
// Login errors use the {message} key the login screen reads.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid payload"})
	}
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if err := ctrl.Validator.Struct(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and password are required"})
	}

	// Bootstrap admin: a fixed identity, not a staff row.
	if body.Email == strings.ToLower(configs.AdminEmail) {
		if subtle.ConstantTimeCompare([]byte(body.Password), []byte(configs.AdminPassword)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid password"})
		}
		return ctrl.loginResponse(c, 0, configs.AdminName, body.Email, constants.RoleAdmin, nil, nil)
	}

	var staff staffModel.StaffModel
	err := ctrl.DB.Where("LOWER(email) = ?", body.Email).First(&staff).Error
	if err == nil {
		if staff.CheckPassword(body.Password) != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid password"})
		}
		return ctrl.loginResponse(c, staff.StaffID, staff.Name, staff.Email, constants.RoleStaff, nil, nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	var student studentModel.StudentModel
	err = ctrl.DB.Where("LOWER(email) = ?", body.Email).First(&student).Error
	if err == nil {
		if student.CheckPassword(body.Password) != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid password"})
		}
		sid := student.StudentID
		return ctrl.loginResponse(c, student.StudentID, student.Name, student.Email, constants.RoleStudent, student.CourseID, &sid)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not found"})
}

func (ctrl *AuthController) loginResponse(c *fiber.Ctx, userID int, name, email, role string, courseID, studentID *int) error {
	token, err := helperAuth.GenerateToken(userID, name, role, courseID, studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not create session"})
	}

	resp := fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user_id": userID,
		"name":    name,
		"email":   email,
		"role":    role,
	}
	if courseID != nil {
		resp["course_id"] = *courseID
	}
	if studentID != nil {
		resp["student_id"] = *studentID
	}
	return c.JSON(resp)
}
