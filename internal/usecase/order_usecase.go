package usecase

import (
	"context"

	"souk/internal/domain/entity"
)

// OrderItemInput is one catalog line of a new order.
type OrderItemInput struct {
	SheepID   string    `json:"sheepId" validate:"required"`
	SheepName string    `json:"sheepName"`
	ImageID   string    `json:"imageId"`
	Price     FlexFloat `json:"price" validate:"gte=0"`
	Quantity  int       `json:"quantity" validate:"gte=1"`
}

// CreateOrderInput carries a new customer order.
type CreateOrderInput struct {
	UserID      string           `json:"userId"`
	UserName    string           `json:"userName" validate:"required"`
	UserPhone   string           `json:"userPhone" validate:"required,min=10"`
	WilayaCode  string           `json:"wilayaCode" validate:"required"`
	WilayaName  string           `json:"wilayaName" validate:"required"`
	CommuneID   int              `json:"communeId" validate:"gte=1"`
	CommuneName string           `json:"communeName" validate:"required"`
	Items       []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	TotalAmount FlexFloat        `json:"totalAmount" validate:"gte=0"`
	Status      string           `json:"status" validate:"omitempty,oneof=pending processing completed cancelled"`
	Notes       string           `json:"notes"`
}

//nolint:gochecknoglobals
var orderMessages = map[string]string{
	"UserName":    "customer name is required",
	"UserPhone":   "phone number must be at least 10 digits",
	"WilayaCode":  "wilaya is required",
	"WilayaName":  "wilaya is required",
	"CommuneID":   "commune is required",
	"CommuneName": "commune is required",
	"Items":       "at least one item is required",
	"SheepID":     "item sheep reference is required",
	"Price":       "price must be a positive number",
	"Quantity":    "item quantity must be at least 1",
	"TotalAmount": "total amount must be a positive number",
	"Status":      "status must be one of pending, processing, completed or cancelled",
}

// Validate checks the input and reports the first violated rule.
func (i *CreateOrderInput) Validate() error {
	return validateStruct(i, orderMessages)
}

// UpdateOrderInput carries an order status change.
type UpdateOrderInput struct {
	Status string  `json:"status" validate:"required,oneof=pending processing completed cancelled"`
	Notes  *string `json:"notes"`
}

// Validate checks the input and reports the first violated rule.
func (i *UpdateOrderInput) Validate() error {
	return validateStruct(i, orderMessages)
}

// OrderUsecase defines the interface for order management use cases.
type OrderUsecase interface {
	// ListOrders retrieves all orders, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrder retrieves a single order.
	GetOrder(ctx context.Context, id string) (*entity.Order, error)

	// PlaceOrder validates and persists a new order and publishes its event.
	PlaceOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// UpdateOrder applies a status change to an existing order.
	UpdateOrder(ctx context.Context, id string, input *UpdateOrderInput) (*entity.Order, error)

	// DeleteOrder removes an order. Absent ids succeed.
	DeleteOrder(ctx context.Context, id string) error
}
