package firestore

import (
	"context"
	"time"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const orderCollection = "orders"

// orderDoc is the Firestore document shape of an order.
type orderDoc struct {
	UserID      string         `firestore:"userId"`
	UserName    string         `firestore:"userName"`
	UserPhone   string         `firestore:"userPhone"`
	WilayaCode  string         `firestore:"wilayaCode"`
	WilayaName  string         `firestore:"wilayaName"`
	CommuneID   int            `firestore:"communeId"`
	CommuneName string         `firestore:"communeName"`
	Items       []orderItemDoc `firestore:"items"`
	TotalAmount float64        `firestore:"totalAmount"`
	Status      string         `firestore:"status"`
	Notes       string         `firestore:"notes"`
	CreatedAt   time.Time      `firestore:"createdAt"`
	UpdatedAt   time.Time      `firestore:"updatedAt"`
}

// orderItemDoc is one order line inside the items array.
type orderItemDoc struct {
	SheepID   string  `firestore:"sheepId"`
	SheepName string  `firestore:"sheepName"`
	ImageID   string  `firestore:"imageId"`
	Price     float64 `firestore:"price"`
	Quantity  int     `firestore:"quantity"`
}

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{
		client: client,
	}
}

// GetAll retrieves all orders, newest first.
func (repo *orderRepository) GetAll(ctx context.Context) ([]*entity.Order, error) {
	iter := repo.client.Collection(orderCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	orders := make([]*entity.Order, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list orders")
		}

		var data orderDoc
		if err := doc.DataTo(&data); err != nil {
			return nil, errors.Wrap(err, "failed to decode order document")
		}

		orders = append(orders, toOrderEntity(doc.Ref.ID, &data))
	}

	return orders, nil
}

// FindByID retrieves an order by its document id.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := repo.client.Collection(orderCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	var data orderDoc
	if err := doc.DataTo(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode order document")
	}

	return toOrderEntity(doc.Ref.ID, &data), nil
}

// Create persists a new order and fills in the assigned document id.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	ref, _, err := repo.client.Collection(orderCollection).Add(ctx, fromOrderEntity(order))
	if err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	order.ID = ref.ID

	return nil
}

// Update persists the full state of an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	ref := repo.client.Collection(orderCollection).Doc(order.ID)

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to load order for update")
	}

	if _, err := ref.Set(ctx, fromOrderEntity(order)); err != nil {
		return errors.Wrap(err, "failed to update order")
	}

	return nil
}

// Delete removes an order. Deleting an absent id is not an error.
func (repo *orderRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(orderCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// --- Mapper Functions ---

func toOrderEntity(id string, data *orderDoc) *entity.Order {
	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			SheepID:   item.SheepID,
			SheepName: item.SheepName,
			ImageID:   item.ImageID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return &entity.Order{
		ID:          id,
		UserID:      data.UserID,
		UserName:    data.UserName,
		UserPhone:   data.UserPhone,
		WilayaCode:  data.WilayaCode,
		WilayaName:  data.WilayaName,
		CommuneID:   data.CommuneID,
		CommuneName: data.CommuneName,
		Items:       items,
		TotalAmount: data.TotalAmount,
		Status:      entity.OrderStatus(data.Status),
		Notes:       data.Notes,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromOrderEntity(data *entity.Order) *orderDoc {
	items := make([]orderItemDoc, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, orderItemDoc{
			SheepID:   item.SheepID,
			SheepName: item.SheepName,
			ImageID:   item.ImageID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return &orderDoc{
		UserID:      data.UserID,
		UserName:    data.UserName,
		UserPhone:   data.UserPhone,
		WilayaCode:  data.WilayaCode,
		WilayaName:  data.WilayaName,
		CommuneID:   data.CommuneID,
		CommuneName: data.CommuneName,
		Items:       items,
		TotalAmount: data.TotalAmount,
		Status:      string(data.Status),
		Notes:       data.Notes,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
