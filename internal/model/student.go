package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Student represents a tutored student. CurrentFee is the default per-hour
// rate applied to new lessons that carry no explicit fee; it is a live
// default, already-created lessons keep the fee snapshotted at insert time.
type Student struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	FirstName  string          `json:"first_name" gorm:"size:30;not null"`
	LastName   string          `json:"last_name" gorm:"size:50;not null;index"`
	CurrentFee decimal.Decimal `json:"current_fee" gorm:"type:decimal(10,2);not null;default:0"`
	YearStart  int             `json:"year_start" gorm:"index"`
	LocationID *uint           `json:"location_id,omitempty" gorm:"index"`
	SubjectID  *uint           `json:"subject_id,omitempty" gorm:"index"`
	GradeID    *uint           `json:"grade_id,omitempty" gorm:"index"`
	Notes      string          `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relations
	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	Subject  *Subject  `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	Grade    *Grade    `json:"grade,omitempty" gorm:"foreignKey:GradeID"`
}

// Label returns the display form "First Last (2024-25)" used by grids and
// the balance report.
func (s *Student) Label() string {
	if s.YearStart == 0 {
		return fmt.Sprintf("%s %s", s.FirstName, s.LastName)
	}
	return fmt.Sprintf("%s %s (%d-%02d)", s.FirstName, s.LastName, s.YearStart, (s.YearStart+1)%100)
}
