package model

// Location is where lessons for a student take place.
type Location struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:80;not null"`
}

// Subject is the subject a student is tutored in.
type Subject struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:80;not null"`
}

// Grade is the school grade / class of a student.
type Grade struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:80;not null"`
}
