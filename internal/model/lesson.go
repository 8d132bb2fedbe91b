package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lesson represents a single tutoring session given to a student.
// Fee is the per-hour rate actually charged for this lesson; it is nullable
// on input and filled from the student's CurrentFee exactly once, inside the
// create transaction. Fee * Hours is the amount owed for the lesson.
type Lesson struct {
	ID        uint                `json:"id" gorm:"primaryKey"`
	StudentID uint                `json:"student_id" gorm:"not null;index"`
	Date      time.Time           `json:"date" gorm:"type:date;not null;index"`
	Hours     decimal.Decimal     `json:"hours" gorm:"type:decimal(6,2);not null"`
	Fee       decimal.NullDecimal `json:"fee" gorm:"type:decimal(10,2)"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`

	// Relations
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}
