package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeLetter(t *testing.T) {
	tests := []struct {
		marks float64
		want  string
	}{
		{100, "A+"},
		{95, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{82, "A"},
		{80, "A"},
		{71, "B"},
		{70, "B"},
		{65, "C"},
		{60, "C"},
		{55, "D"},
		{50, "D"},
		{49.5, "F"},
		{39, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeLetter(tt.marks), "marks=%v", tt.marks)
	}
}

func TestIsPass(t *testing.T) {
	assert.True(t, IsPass(50))
	assert.True(t, IsPass(100))
	assert.False(t, IsPass(49.99))
	assert.False(t, IsPass(0))
}
