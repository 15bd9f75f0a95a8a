package model

import "time"

// PageViewEventModel is the GORM-specific struct for the 'page_view_events'
// table. Append-only; rows are never updated or deleted.
type PageViewEventModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	EventType string    `gorm:"type:varchar(50);not null;index"`
	Page      string    `gorm:"type:text;not null;index"`
	Action    string    `gorm:"type:text"`
	Referrer  string    `gorm:"type:text"`
	UserAgent string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PageViewEventModel) TableName() string {
	return "page_view_events"
}
