package model

import "time"

// ContentModel is the GORM-specific struct for the 'content' table.
type ContentModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"type:text;not null"`
	Body        string     `gorm:"type:text;not null"`
	Excerpt     string     `gorm:"type:text"`
	Author      string     `gorm:"type:text;not null;default:'Admin'"`
	Status      string     `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt   time.Time  `gorm:"not null"`
	PublishedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContentModel) TableName() string {
	return "content"
}
