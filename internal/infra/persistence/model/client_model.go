// Package model contains the GORM-specific persistence structs.
package model

import "time"

// ClientModel is the GORM-specific struct for the 'clients' table.
type ClientModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:text;not null"`
	Location   string    `gorm:"type:text;not null"`
	Phone      string    `gorm:"type:text;not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Active'"`
	LastActive time.Time `gorm:"not null;autoCreateTime"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}
