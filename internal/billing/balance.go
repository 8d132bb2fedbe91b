package billing

import (
	"github.com/shopspring/decimal"

	"studentmgmt/internal/model"
)

// StudentBalance is one row of the balance report.
type StudentBalance struct {
	Student model.Student
	Charged decimal.Decimal
	Paid    decimal.Decimal
	Balance decimal.Decimal
}

// ComputeBalances reduces the full lesson and payment history to one balance
// row per student, in the order students are supplied:
//
//	charged = Σ fee × hours over the student's lessons
//	paid    = Σ amount over the student's payments
//	balance = round(charged − paid, 2)
//
// Rounding is half-to-even (RoundBank). A lesson with no fee set contributes
// zero to charged; that should not occur for lessons created through the
// resolver, but direct edits can produce one and the report must tolerate it.
// Students with no activity yield an all-zero row.
func ComputeBalances(students []model.Student, lessons []model.Lesson, payments []model.Payment) []StudentBalance {
	charged := make(map[uint]decimal.Decimal, len(students))
	paid := make(map[uint]decimal.Decimal, len(students))

	for _, l := range lessons {
		if !l.Fee.Valid {
			continue
		}
		charged[l.StudentID] = charged[l.StudentID].Add(l.Fee.Decimal.Mul(l.Hours))
	}
	for _, p := range payments {
		paid[p.StudentID] = paid[p.StudentID].Add(p.Amount)
	}

	rows := make([]StudentBalance, 0, len(students))
	for _, s := range students {
		c := charged[s.ID]
		p := paid[s.ID]
		rows = append(rows, StudentBalance{
			Student: s,
			Charged: c,
			Paid:    p,
			Balance: c.Sub(p).RoundBank(2),
		})
	}
	return rows
}
