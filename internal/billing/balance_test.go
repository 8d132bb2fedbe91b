package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"studentmgmt/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name     string
		students []model.Student
		lessons  []model.Lesson
		payments []model.Payment
		expected map[uint]string // studentID -> balance
	}{
		{
			name:     "charges minus payments",
			students: []model.Student{{ID: 1}},
			lessons: []model.Lesson{
				{StudentID: 1, Hours: dec("2"), Fee: nullDec("20")},
				{StudentID: 1, Hours: dec("1"), Fee: nullDec("20")},
			},
			payments: []model.Payment{
				{StudentID: 1, Amount: dec("50")},
			},
			expected: map[uint]string{1: "10.00"},
		},
		{
			name:     "single lesson and partial payment",
			students: []model.Student{{ID: 1}},
			lessons: []model.Lesson{
				{StudentID: 1, Hours: dec("3"), Fee: nullDec("15")},
			},
			payments: []model.Payment{
				{StudentID: 1, Amount: dec("40")},
			},
			expected: map[uint]string{1: "5.00"},
		},
		{
			name:     "no activity yields zero row",
			students: []model.Student{{ID: 7}},
			expected: map[uint]string{7: "0.00"},
		},
		{
			name:     "lesson with no fee contributes nothing",
			students: []model.Student{{ID: 1}},
			lessons: []model.Lesson{
				{StudentID: 1, Hours: dec("2"), Fee: decimal.NullDecimal{}},
				{StudentID: 1, Hours: dec("1"), Fee: nullDec("30")},
			},
			payments: []model.Payment{
				{StudentID: 1, Amount: dec("10")},
			},
			expected: map[uint]string{1: "20.00"},
		},
		{
			name:     "overpayment goes negative",
			students: []model.Student{{ID: 1}},
			lessons: []model.Lesson{
				{StudentID: 1, Hours: dec("1"), Fee: nullDec("20")},
			},
			payments: []model.Payment{
				{StudentID: 1, Amount: dec("35")},
			},
			expected: map[uint]string{1: "-15.00"},
		},
		{
			name:     "fractional hours round half to even",
			students: []model.Student{{ID: 1}, {ID: 2}},
			lessons: []model.Lesson{
				// 0.25 × 20.10 = 5.025 → 5.02
				{StudentID: 1, Hours: dec("0.25"), Fee: nullDec("20.10")},
				// 0.25 × 20.30 = 5.075 → 5.08
				{StudentID: 2, Hours: dec("0.25"), Fee: nullDec("20.30")},
			},
			expected: map[uint]string{1: "5.02", 2: "5.08"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ComputeBalances(tt.students, tt.lessons, tt.payments)

			assert.Len(t, rows, len(tt.students))
			for _, row := range rows {
				want, ok := tt.expected[row.Student.ID]
				assert.True(t, ok, "unexpected row for student %d", row.Student.ID)
				assert.Equal(t, want, row.Balance.StringFixed(2))
			}
		})
	}
}

func TestComputeBalances_PreservesStudentOrder(t *testing.T) {
	students := []model.Student{{ID: 3}, {ID: 1}, {ID: 2}}

	rows := ComputeBalances(students, nil, nil)

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Student.ID)
	}
	assert.Equal(t, []uint{3, 1, 2}, ids)
}

func TestComputeBalances_ChargedAndPaidComponents(t *testing.T) {
	students := []model.Student{{ID: 1}, {ID: 2}}
	lessons := []model.Lesson{
		{StudentID: 1, Hours: dec("2"), Fee: nullDec("20")},
		{StudentID: 2, Hours: dec("1.5"), Fee: nullDec("18")},
	}
	payments := []model.Payment{
		{StudentID: 1, Amount: dec("30")},
	}

	rows := ComputeBalances(students, lessons, payments)

	assert.Equal(t, "40", rows[0].Charged.String())
	assert.Equal(t, "30", rows[0].Paid.String())
	assert.Equal(t, "10.00", rows[0].Balance.StringFixed(2))

	assert.Equal(t, "27", rows[1].Charged.String())
	assert.Equal(t, "0", rows[1].Paid.String())
	assert.Equal(t, "27.00", rows[1].Balance.StringFixed(2))
}

func TestComputeBalances_Deterministic(t *testing.T) {
	students := []model.Student{{ID: 1}, {ID: 2}}
	lessons := []model.Lesson{
		{StudentID: 1, Hours: dec("2"), Fee: nullDec("22.50")},
		{StudentID: 2, Hours: dec("4"), Fee: nullDec("10")},
	}
	payments := []model.Payment{
		{StudentID: 1, Amount: dec("20")},
		{StudentID: 2, Amount: dec("40")},
	}

	first := ComputeBalances(students, lessons, payments)
	second := ComputeBalances(students, lessons, payments)

	assert.Equal(t, first, second)
}
