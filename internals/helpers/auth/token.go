package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"lls_backend/internals/configs"
)

var (
	ErrMissingUserID = errors.New("user_id not found in token")
	ErrMissingRole   = errors.New("role not found in token")
)

// Claims is the session identity the client used to keep in browser storage.
// The server is the source of truth now; the client only holds the token.
type Claims struct {
	UserID    int    `json:"user_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CourseID  *int   `json:"course_id,omitempty"`  // students only
	StudentID *int   `json:"student_id,omitempty"` // students only
	jwt.RegisteredClaims
}

func GenerateToken(userID int, name, role string, courseID, studentID *int) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Name:      name,
		Role:      role,
		CourseID:  courseID,
		StudentID: studentID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(configs.JWTExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Locals accessors. AuthMiddleware is the only writer.

func GetUserID(c *fiber.Ctx) (int, error) {
	id, ok := c.Locals("userID").(int)
	if !ok {
		return 0, ErrMissingUserID
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || role == "" {
		return "", ErrMissingRole
	}
	return role, nil
}

func GetUserName(c *fiber.Ctx) string {
	name, _ := c.Locals("userName").(string)
	return name
}

// GetStudentID returns the caller's student id; nil for non-students.
func GetStudentID(c *fiber.Ctx) *int {
	id, ok := c.Locals("studentID").(int)
	if !ok {
		return nil
	}
	return &id
}

// GetCourseID returns the student's enrolled course id; nil when absent.
func GetCourseID(c *fiber.Ctx) *int {
	id, ok := c.Locals("courseID").(int)
	if !ok {
		return nil
	}
	return &id
}
