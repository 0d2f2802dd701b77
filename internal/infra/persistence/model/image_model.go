package model

import (
	"time"
)

// ImageModel is the GORM-specific struct for the 'images' table.
// IDs are application-assigned UUID strings so that both storage backends
// expose the same opaque identifier shape.
type ImageModel struct {
	ID               string `gorm:"type:uuid;primaryKey"`
	ImageURL         string `gorm:"type:text;not null"`
	ThumbnailURL     string `gorm:"type:text"`
	DeleteURL        string `gorm:"type:text"`
	OriginalFileName string `gorm:"type:text"`
	MimeType         string `gorm:"type:text;not null"`
	FileSize         int64  `gorm:"not null;default:0"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}
