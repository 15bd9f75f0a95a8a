package model

// UserModel is the GORM-specific struct for the 'users' table.
// Password holds a bcrypt hash.
type UserModel struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	Username string `gorm:"type:text;not null;uniqueIndex"`
	Password string `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
