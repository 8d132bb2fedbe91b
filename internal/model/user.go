package model

import "time"

// User represents an admin user of the application. Users only exist for the
// login gate; they are not part of the tutoring domain model.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"size:35"`
	LastName     string    `json:"last_name" gorm:"size:35"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:35;not null"`
	Email        string    `json:"email" gorm:"size:120"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName returns the user's full name.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
