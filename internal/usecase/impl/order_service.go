package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	deliveryctx "souk/internal/delivery/context"
	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	"souk/internal/usecase"
)

type orderService struct {
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(orderRepo repository.OrderRepository, publisher service.EventPublisher, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// ListOrders retrieves all orders, newest first
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// GetOrder retrieves a single order
func (s *orderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	return order, nil
}

// PlaceOrder validates and persists a new order and publishes its event
func (s *orderService) PlaceOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := entity.OrderStatusPending
	if input.Status != "" {
		status = entity.OrderStatus(input.Status)
	}

	now := time.Now()
	order := &entity.Order{
		UserID:      input.UserID,
		UserName:    input.UserName,
		UserPhone:   input.UserPhone,
		WilayaCode:  input.WilayaCode,
		WilayaName:  input.WilayaName,
		CommuneID:   input.CommuneID,
		CommuneName: input.CommuneName,
		Items:       toOrderItems(input.Items),
		TotalAmount: input.TotalAmount.Float64(),
		Status:      status,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishEvent(ctx, order)

	return order, nil
}

// UpdateOrder applies a status change to an existing order
func (s *orderService) UpdateOrder(ctx context.Context, id string, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	order.Status = entity.OrderStatus(input.Status)
	if input.Notes != nil {
		order.Notes = *input.Notes
	}
	order.UpdatedAt = time.Now()

	if err := s.orderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.publishEvent(ctx, order)

	return order, nil
}

// DeleteOrder removes an order. Absent ids succeed.
func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

// publishEvent emits the order event best-effort. A broker outage must not
// fail the customer request.
func (s *orderService) publishEvent(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:   deliveryctx.GetRequestIDFromContext(ctx),
		OrderID:     order.ID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish order event",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}

func toOrderItems(inputs []usecase.OrderItemInput) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(inputs))
	for _, item := range inputs {
		items = append(items, entity.OrderItem{
			SheepID:   item.SheepID,
			SheepName: item.SheepName,
			ImageID:   item.ImageID,
			Price:     item.Price.Float64(),
			Quantity:  item.Quantity,
		})
	}

	return items
}
