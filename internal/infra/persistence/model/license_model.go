package model

import "time"

// LicenseModel is the GORM-specific struct for the 'licenses' table.
// The unique index on key is what the issuance retry loop relies on; the
// source system generated keys without any uniqueness guarantee.
type LicenseModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Key       string  `gorm:"type:text;not null;uniqueIndex"`
	Status    string  `gorm:"type:varchar(20);not null;default:'Unused'"`
	Shop      string  `gorm:"type:text;not null;default:'-'"`
	Expiry    string  `gorm:"type:text;not null"`
	Created   string  `gorm:"type:text;not null"`
	Phone     *string `gorm:"type:text"`
	ClientID  *int64  `gorm:"index"`
	CreatedAt time.Time `gorm:"not null"`

	Client *ClientModel `gorm:"foreignKey:ClientID"`
}

// TableName explicitly sets the table name for GORM.
func (LicenseModel) TableName() string {
	return "licenses"
}
