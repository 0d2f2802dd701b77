// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// sheepRepository implements the repository.SheepRepository interface.
type sheepRepository struct {
	db *gorm.DB
}

// NewSheepRepository is the constructor for sheepRepository.
func NewSheepRepository(db *gorm.DB) repository.SheepRepository {
	return &sheepRepository{
		db: db,
	}
}

// GetAll retrieves all listings, newest first.
func (repo *sheepRepository) GetAll(ctx context.Context) ([]*entity.Sheep, error) {
	var sheepModels []*model.SheepModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&sheepModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sheep")
	}

	sheep := make([]*entity.Sheep, 0, len(sheepModels))
	for _, sheepM := range sheepModels {
		sheep = append(sheep, toSheepDomain(sheepM))
	}

	return sheep, nil
}

// FindByID retrieves a listing by its identifier.
func (repo *sheepRepository) FindByID(ctx context.Context, id string) (*entity.Sheep, error) {
	sheepID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, repository.ErrSheepNotFound
	}

	var sheepM model.SheepModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", sheepID).
		First(&sheepM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSheepNotFound
		}

		return nil, errors.Wrap(err, "failed to find sheep by ID")
	}

	return toSheepDomain(&sheepM), nil
}

// Create persists a new listing and fills in backend-assigned fields.
func (repo *sheepRepository) Create(ctx context.Context, sheep *entity.Sheep) error {
	sheepM, err := fromSheepDomain(sheep)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(sheepM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required sheep information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sheep")
	}

	sheep.ID = strconv.FormatInt(sheepM.ID, 10)
	sheep.CreatedAt = sheepM.CreatedAt
	sheep.UpdatedAt = sheepM.UpdatedAt

	return nil
}

// Update persists the full state of an existing listing.
func (repo *sheepRepository) Update(ctx context.Context, sheep *entity.Sheep) error {
	sheepID, err := strconv.ParseInt(sheep.ID, 10, 64)
	if err != nil {
		return repository.ErrSheepNotFound
	}

	sheepM, err := fromSheepDomain(sheep)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SheepModel{}).
		Where("id = ?", sheepID).
		Select("*").
		Omit("id", "created_at").
		Updates(sheepM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update sheep")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSheepNotFound
	}

	return nil
}

// Delete removes a listing. Deleting an absent id is not an error.
func (repo *sheepRepository) Delete(ctx context.Context, id string) error {
	sheepID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", sheepID).
		Delete(&model.SheepModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete sheep")
	}

	return nil
}

// --- Mapper Functions ---

// toSheepDomain converts a GORM SheepModel to a domain Sheep entity.
func toSheepDomain(data *model.SheepModel) *entity.Sheep {
	if data == nil {
		return nil
	}

	var imageIDs []string
	if len(data.ImageIDs) > 0 {
		// A malformed document yields an empty reference list rather than a failure.
		_ = json.Unmarshal(data.ImageIDs, &imageIDs)
	}

	sheep := &entity.Sheep{
		ID:           strconv.FormatInt(data.ID, 10),
		Name:         data.Name,
		Category:     entity.SheepCategory(data.Category),
		Price:        parseMoney(data.Price),
		ImageIDs:     imageIDs,
		Age:          data.Age,
		Weight:       data.Weight,
		Breed:        data.Breed,
		HealthStatus: data.HealthStatus,
		Description:  data.Description,
		IsFeatured:   data.IsFeatured,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.DiscountPercentage != nil {
		discount := parseMoney(*data.DiscountPercentage)
		sheep.DiscountPercentage = &discount
	}

	return sheep
}

// fromSheepDomain converts a domain Sheep entity to a GORM SheepModel.
func fromSheepDomain(data *entity.Sheep) (*model.SheepModel, error) {
	if data == nil {
		return nil, nil
	}

	imageIDs, err := json.Marshal(data.ImageIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode image IDs")
	}

	sheepM := &model.SheepModel{
		Name:         data.Name,
		Category:     string(data.Category),
		Price:        formatMoney(data.Price),
		ImageIDs:     imageIDs,
		Age:          data.Age,
		Weight:       data.Weight,
		Breed:        data.Breed,
		HealthStatus: data.HealthStatus,
		Description:  data.Description,
		IsFeatured:   data.IsFeatured,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.DiscountPercentage != nil {
		discount := formatMoney(*data.DiscountPercentage)
		sheepM.DiscountPercentage = &discount
	}

	return sheepM, nil
}
