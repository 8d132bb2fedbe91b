package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents money received from a student. Payments are not matched
// to individual lessons; reconciliation is aggregate only.
type Payment struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	StudentID uint            `json:"student_id" gorm:"not null;index"`
	Date      time.Time       `json:"date" gorm:"type:date;not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relations
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}
