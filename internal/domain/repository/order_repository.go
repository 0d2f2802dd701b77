package repository

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// GetAll retrieves all orders, newest first.
	GetAll(ctx context.Context) ([]*entity.Order, error)

	// FindByID retrieves an order by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// Create persists a new order and fills in backend-assigned fields.
	Create(ctx context.Context, order *entity.Order) error

	// Update persists the full state of an existing order.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
