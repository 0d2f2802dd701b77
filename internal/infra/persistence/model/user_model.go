package model

import (
	"time"
)

// UserModel is the GORM-specific struct for the 'users' table, keyed by the
// identity-provider uid.
type UserModel struct {
	UID         string  `gorm:"type:text;primaryKey"`
	Email       *string `gorm:"type:text"`
	DisplayName *string `gorm:"type:text"`
	PhotoURL    string  `gorm:"type:text"`
	UserType    string  `gorm:"type:text;not null;default:buyer"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
