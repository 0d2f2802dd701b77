package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	deliveryctx "souk/internal/delivery/context"
	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	mockRepo "souk/internal/mocks/repository"
	mockService "souk/internal/mocks/service"
	"souk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockService.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewOrderService(orderRepo, publisher, logger)

	return orderServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func validCreateOrderInput() *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		UserName:    "Ahmed B",
		UserPhone:   "0550123456",
		WilayaCode:  "16",
		WilayaName:  "Alger",
		CommuneID:   1601,
		CommuneName: "Bab El Oued",
		Items: []usecase.OrderItemInput{
			{SheepID: "sheep-1", SheepName: "Ouled Djellal ram", Price: usecase.FlexFloat(85000), Quantity: 1},
		},
		TotalAmount: usecase.FlexFloat(85000),
	}
}

func TestOrderService_PlaceOrder_DefaultsToPending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := validCreateOrderInput()

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = "order-new"
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, "order-new", event.OrderID)
			assert.Equal(t, "pending", event.Status)
			assert.InDelta(t, 85000, event.TotalAmount, 0.001)
			assert.Equal(t, 1, event.ItemCount)
		}).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "order-new", order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "sheep-1", order.Items[0].SheepID)
}

func TestOrderService_PlaceOrder_PublisherFailureIsIgnored(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := validCreateOrderInput()

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker unavailable"))

	order, err := fx.service.PlaceOrder(ctx, input)
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_PlaceOrder_CarriesRequestID(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := deliveryctx.WithRequestID(context.Background(), "req-42")
	input := validCreateOrderInput()

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, "req-42", event.RequestID)
		}).
		Return(nil)

	_, err := fx.service.PlaceOrder(ctx, input)
	require.NoError(t, err)
}

func TestOrderService_PlaceOrder_MissingPhone(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := validCreateOrderInput()
	input.UserPhone = "123"

	order, err := fx.service.PlaceOrder(ctx, input)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "phone number must be at least 10 digits", err.Error())
}

func TestOrderService_PlaceOrder_NoItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := validCreateOrderInput()
	input.Items = nil

	order, err := fx.service.PlaceOrder(ctx, input)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "at least one item is required", err.Error())
}

func TestOrderService_PlaceOrder_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := validCreateOrderInput()
	input.Status = "shipped"

	order, err := fx.service.PlaceOrder(ctx, input)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "status must be one of pending, processing, completed or cancelled", err.Error())
}

func TestOrderService_ListOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orders := []*entity.Order{{ID: "order-1"}, {ID: "order-2"}}

	fx.orderRepo.EXPECT().
		GetAll(ctx).
		Return(orders, nil)

	result, err := fx.service.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_UpdateOrder_StatusChange(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	existing := &entity.Order{
		ID:          "order-1",
		UserName:    "Ahmed B",
		Status:      entity.OrderStatusPending,
		TotalAmount: 85000,
		Items:       []entity.OrderItem{{SheepID: "sheep-1", Quantity: 1}},
	}

	fx.orderRepo.EXPECT().
		FindByID(ctx, "order-1").
		Return(existing, nil)

	fx.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, "processing", event.Status)
		}).
		Return(nil)

	order, err := fx.service.UpdateOrder(ctx, "order-1", &usecase.UpdateOrderInput{Status: "processing"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
}

func TestOrderService_UpdateOrder_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	order, err := fx.service.UpdateOrder(ctx, "order-1", &usecase.UpdateOrderInput{Status: "shipped"})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "status must be one of pending, processing, completed or cancelled", err.Error())
}

func TestOrderService_UpdateOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.UpdateOrder(ctx, "missing", &usecase.UpdateOrderInput{Status: "completed"})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_DeleteOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		Delete(ctx, "order-1").
		Return(nil)

	err := fx.service.DeleteOrder(ctx, "order-1")
	require.NoError(t, err)
}
