package model

import (
	"time"
)

// AdminModel is the GORM-specific struct for the 'admins' table.
type AdminModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	UserID  string `gorm:"type:text"`
	Email   string `gorm:"type:text;not null;uniqueIndex"`
	Role    string `gorm:"type:text;not null;default:secondary"`
	AddedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
