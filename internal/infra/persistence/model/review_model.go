package model

import "time"

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// The rating bound is also validated at the API layer; the check constraint
// is the storage-level backstop the source system lacked.
type ReviewModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ClientName string    `gorm:"type:text;not null"`
	Business   string    `gorm:"type:text;not null"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Text       string    `gorm:"type:text;not null"`
	Approved   string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
