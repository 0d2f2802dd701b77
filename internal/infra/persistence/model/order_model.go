package model

import (
	"time"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Items are stored as a JSON document; the total is numeric(10,2) as text.
type OrderModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      string `gorm:"type:text"`
	UserName    string `gorm:"type:text;not null"`
	UserPhone   string `gorm:"type:text;not null"`
	WilayaCode  string `gorm:"type:text;not null"`
	WilayaName  string `gorm:"type:text;not null"`
	CommuneID   int    `gorm:"not null"`
	CommuneName string `gorm:"type:text;not null"`
	Items       []byte `gorm:"type:jsonb;not null"`
	TotalAmount string `gorm:"type:numeric(10,2);not null"`
	Status      string `gorm:"type:text;not null;default:pending"`
	Notes       string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
