package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatDate(t *testing.T) {
	d, err := ParseDate("2026-02-14")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-14", FormatDate(d))

	_, err = ParseDate("14/02/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestFormatDatePtr(t *testing.T) {
	assert.Nil(t, FormatDatePtr(nil))

	d, err := ParseDate("2025-12-31")
	require.NoError(t, err)
	s := FormatDatePtr(&d)
	require.NotNil(t, s)
	assert.Equal(t, "2025-12-31", *s)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	// wrapped driver text without a typed pg error
	assert.True(t, IsUniqueViolation(errors.New(`pq: duplicate key value violates unique constraint "uq_staff_email"`)))
}
