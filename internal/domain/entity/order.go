package entity

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order lifecycle states.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderItem is a single catalog line inside an order.
type OrderItem struct {
	SheepID   string  `json:"sheepId"`           // Catalog listing reference.
	SheepName string  `json:"sheepName"`         // Denormalized listing name at purchase time.
	ImageID   string  `json:"imageId,omitempty"` // Denormalized cover image reference.
	Price     float64 `json:"price"`             // Unit price at purchase time.
	Quantity  int     `json:"quantity"`          // Number of units, at least 1.
}

// Order represents a customer purchase request.
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId,omitempty"` // Optional identity-provider uid of the buyer.
	UserName    string      `json:"userName"`
	UserPhone   string      `json:"userPhone"`
	WilayaCode  string      `json:"wilayaCode"`
	WilayaName  string      `json:"wilayaName"`
	CommuneID   int         `json:"communeId"`
	CommuneName string      `json:"communeName"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"` // Client-supplied total, not recomputed.
	Status      OrderStatus `json:"status"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
