package model

import "time"

// SettingModel is the GORM-specific struct for the 'settings' table.
// One row per key, upsert semantics.
type SettingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Key       string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
