package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestEvaluateSubmissionRequestMarksRange(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		marks   *float64
		wantErr bool
	}{
		{"zero is valid", f(0), false},
		{"hundred is valid", f(100), false},
		{"mid-range is valid", f(72.5), false},
		{"above 100 rejected", f(101), true},
		{"negative rejected", f(-1), true},
		{"missing rejected", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := EvaluateSubmissionRequest{SubmissionID: 1, Marks: tt.marks}
			err := v.Struct(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
