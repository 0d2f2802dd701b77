package model

import (
	"time"
)

// SheepModel is the GORM-specific struct for the 'sheep' table.
// Money columns are numeric(10,2) scanned as text; the repository converts
// at the boundary.
type SheepModel struct {
	ID                 int64   `gorm:"primaryKey;autoIncrement"`
	Name               string  `gorm:"type:text;not null"`
	Category           string  `gorm:"type:text;not null"`
	Price              string  `gorm:"type:numeric(10,2);not null"`
	DiscountPercentage *string `gorm:"type:numeric(5,2)"`
	ImageIDs           []byte  `gorm:"type:jsonb;not null"`
	Age                string  `gorm:"type:text;not null"`
	Weight             string  `gorm:"type:text;not null"`
	Breed              string  `gorm:"type:text;not null"`
	HealthStatus       string  `gorm:"type:text;not null"`
	Description        string  `gorm:"type:text;not null"`
	IsFeatured         bool    `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (SheepModel) TableName() string {
	return "sheep"
}
