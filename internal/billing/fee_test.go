package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"studentmgmt/internal/errors"
	"studentmgmt/internal/model"
)

func TestResolveFee(t *testing.T) {
	tests := []struct {
		name          string
		lesson        model.Lesson
		student       *model.Student
		expectedFee   string
		expectedError error
	}{
		{
			name:        "explicit fee wins over student rate",
			lesson:      model.Lesson{Fee: decimal.NewNullDecimal(decimal.NewFromInt(25))},
			student:     &model.Student{CurrentFee: decimal.NewFromInt(20)},
			expectedFee: "25",
		},
		{
			name:        "missing fee falls back to student current rate",
			lesson:      model.Lesson{},
			student:     &model.Student{CurrentFee: decimal.RequireFromString("17.50")},
			expectedFee: "17.5",
		},
		{
			name:        "explicit zero fee is kept, not replaced",
			lesson:      model.Lesson{Fee: decimal.NewNullDecimal(decimal.Zero)},
			student:     &model.Student{CurrentFee: decimal.NewFromInt(20)},
			expectedFee: "0",
		},
		{
			name:          "nil student",
			lesson:        model.Lesson{},
			student:       nil,
			expectedError: errors.ErrMissingStudent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := ResolveFee(&tt.lesson, tt.student)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedFee, fee.String())
		})
	}
}
