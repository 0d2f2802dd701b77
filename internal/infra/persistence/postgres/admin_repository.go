package postgres

import (
	"context"
	"strconv"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// GetAll retrieves every allow-list entry.
func (repo *adminRepository) GetAll(ctx context.Context) ([]*entity.Admin, error) {
	var adminModels []*model.AdminModel

	if err := repo.db.WithContext(ctx).
		Order("added_at DESC").
		Find(&adminModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}

	admins := make([]*entity.Admin, 0, len(adminModels))
	for _, adminM := range adminModels {
		admins = append(admins, toAdminDomain(adminM))
	}

	return admins, nil
}

// FindByEmail retrieves an entry by its email, matched case-insensitively.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminDomain(&adminM), nil
}

// Create persists a new entry. The email must not already be listed.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAdmin
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required admin information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.ID = strconv.FormatInt(adminM.ID, 10)

	return nil
}

// Delete removes an entry by id. Deleting an absent id is not an error.
func (repo *adminRepository) Delete(ctx context.Context, id string) error {
	adminID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", adminID).
		Delete(&model.AdminModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete admin")
	}

	return nil
}

// --- Mapper Functions ---

// toAdminDomain converts a GORM AdminModel to a domain Admin entity.
func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:      strconv.FormatInt(data.ID, 10),
		UserID:  data.UserID,
		Email:   data.Email,
		Role:    entity.AdminRole(data.Role),
		AddedAt: data.AddedAt,
	}
}

// fromAdminDomain converts a domain Admin entity to a GORM AdminModel.
func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		UserID:  data.UserID,
		Email:   data.Email,
		Role:    string(data.Role),
		AddedAt: data.AddedAt,
	}
}
