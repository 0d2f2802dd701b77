package postgres

import (
	"context"
	"encoding/json"
	"strconv"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// GetAll retrieves all orders, newest first.
func (repo *orderRepository) GetAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindByID retrieves an order by its identifier.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	orderID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, repository.ErrOrderNotFound
	}

	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", orderID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// Create persists a new order and fills in backend-assigned fields.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = strconv.FormatInt(orderM.ID, 10)
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// Update persists the full state of an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderID, err := strconv.ParseInt(order.ID, 10, 64)
	if err != nil {
		return repository.ErrOrderNotFound
	}

	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Select("*").
		Omit("id", "created_at").
		Updates(orderM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order. Deleting an absent id is not an error.
func (repo *orderRepository) Delete(ctx context.Context, id string) error {
	orderID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", orderID).
		Delete(&model.OrderModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// --- Mapper Functions ---

// orderItemDoc is the JSON shape of one order line inside the items column.
type orderItemDoc struct {
	SheepID   string  `json:"sheepId"`
	SheepName string  `json:"sheepName"`
	ImageID   string  `json:"imageId,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	var itemDocs []orderItemDoc
	if len(data.Items) > 0 {
		_ = json.Unmarshal(data.Items, &itemDocs)
	}
	items := make([]entity.OrderItem, 0, len(itemDocs))
	for _, doc := range itemDocs {
		items = append(items, entity.OrderItem{
			SheepID:   doc.SheepID,
			SheepName: doc.SheepName,
			ImageID:   doc.ImageID,
			Price:     doc.Price,
			Quantity:  doc.Quantity,
		})
	}

	return &entity.Order{
		ID:          strconv.FormatInt(data.ID, 10),
		UserID:      data.UserID,
		UserName:    data.UserName,
		UserPhone:   data.UserPhone,
		WilayaCode:  data.WilayaCode,
		WilayaName:  data.WilayaName,
		CommuneID:   data.CommuneID,
		CommuneName: data.CommuneName,
		Items:       items,
		TotalAmount: parseMoney(data.TotalAmount),
		Status:      entity.OrderStatus(data.Status),
		Notes:       data.Notes,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	itemDocs := make([]orderItemDoc, 0, len(data.Items))
	for _, item := range data.Items {
		itemDocs = append(itemDocs, orderItemDoc{
			SheepID:   item.SheepID,
			SheepName: item.SheepName,
			ImageID:   item.ImageID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	items, err := json.Marshal(itemDocs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order items")
	}

	return &model.OrderModel{
		UserID:      data.UserID,
		UserName:    data.UserName,
		UserPhone:   data.UserPhone,
		WilayaCode:  data.WilayaCode,
		WilayaName:  data.WilayaName,
		CommuneID:   data.CommuneID,
		CommuneName: data.CommuneName,
		Items:       items,
		TotalAmount: formatMoney(data.TotalAmount),
		Status:      string(data.Status),
		Notes:       data.Notes,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}
