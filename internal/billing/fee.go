// Package billing holds the two pieces of domain logic in the system: fee
// defaulting for new lessons and the per-student balance aggregation. Both
// are pure computations over already-loaded records.
package billing

import (
	"github.com/shopspring/decimal"

	"studentmgmt/internal/errors"
	"studentmgmt/internal/model"
)

// ResolveFee returns the per-hour rate to store on a lesson about to be
// persisted: the lesson's own fee when explicitly set, otherwise the owning
// student's CurrentFee at the moment of the call. The caller is responsible
// for invoking this exactly once, inside the lesson-create transaction, and
// never again on update — the resolved value is a snapshot, later changes to
// the student's CurrentFee must not touch existing lessons.
func ResolveFee(lesson *model.Lesson, student *model.Student) (decimal.Decimal, error) {
	if student == nil {
		return decimal.Zero, errors.ErrMissingStudent
	}
	if lesson.Fee.Valid {
		return lesson.Fee.Decimal, nil
	}
	return student.CurrentFee, nil
}
