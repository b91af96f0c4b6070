package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"lls_backend/internals/configs"
	helperAuth "lls_backend/internals/helpers/auth"
)

// AuthMiddleware requires a valid bearer token and loads the caller's
// identity into Locals. A missing or unparseable identity is treated as
// unauthenticated, never as an error of any other kind.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		if configs.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims, err := helperAuth.ParseToken(tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid or expired token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("userRole", claims.Role)
		c.Locals("userName", claims.Name)
		if claims.StudentID != nil {
			c.Locals("studentID", *claims.StudentID)
		}
		if claims.CourseID != nil {
			c.Locals("courseID", *claims.CourseID)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")); token != "" {
			return token, nil
		}
	}
	// cookie fallback for browser clients
	if token := c.Cookies("access_token"); token != "" {
		return token, nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing token")
}
