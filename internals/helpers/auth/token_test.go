package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lls_backend/internals/configs"
	"lls_backend/internals/constants"
)

func TestTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"
	configs.JWTExpiry = time.Hour

	courseID := 4
	studentID := 12
	token, err := GenerateToken(12, "A Student", constants.RoleStudent, &courseID, &studentID)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, 12, claims.UserID)
	assert.Equal(t, "A Student", claims.Name)
	assert.Equal(t, constants.RoleStudent, claims.Role)
	require.NotNil(t, claims.CourseID)
	assert.Equal(t, 4, *claims.CourseID)
	require.NotNil(t, claims.StudentID)
	assert.Equal(t, 12, *claims.StudentID)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"
	configs.JWTExpiry = -time.Minute

	token, err := GenerateToken(1, "Admin", constants.RoleAdmin, nil, nil)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"
	configs.JWTExpiry = time.Hour

	token, err := GenerateToken(1, "Admin", constants.RoleAdmin, nil, nil)
	require.NoError(t, err)

	configs.JWTSecret = "a-different-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}
