package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func validRegister() RegisterStudentRequest {
	return RegisterStudentRequest{
		Name:     "A Student",
		Email:    "student@example.com",
		Password: "secret",
	}
}

func TestRegisterStudentRequestValidation(t *testing.T) {
	v := validator.New()

	t.Run("minimal valid request", func(t *testing.T) {
		req := validRegister()
		assert.NoError(t, v.Struct(&req))
	})

	t.Run("five character password rejected", func(t *testing.T) {
		req := validRegister()
		req.Password = "abcde"
		assert.Error(t, v.Struct(&req))
	})

	t.Run("six character password accepted", func(t *testing.T) {
		req := validRegister()
		req.Password = "abcdef"
		assert.NoError(t, v.Struct(&req))
	})

	t.Run("missing password rejected", func(t *testing.T) {
		req := validRegister()
		req.Password = ""
		assert.Error(t, v.Struct(&req))
	})

	t.Run("bad email rejected", func(t *testing.T) {
		req := validRegister()
		req.Email = "not-an-email"
		assert.Error(t, v.Struct(&req))
	})

	t.Run("bad parent email rejected, empty allowed", func(t *testing.T) {
		req := validRegister()
		req.ParentEmail = "nope"
		assert.Error(t, v.Struct(&req))

		req.ParentEmail = ""
		assert.NoError(t, v.Struct(&req))
	})
}
