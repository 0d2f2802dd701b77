package postgres

import (
	"context"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByUID retrieves a profile by identity-provider uid.
func (repo *userRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by uid")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new profile. The uid must not already exist.
func (repo *userRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	userM := fromUserDomain(profile)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user profile")
	}

	profile.CreatedAt = userM.CreatedAt

	return nil
}

// UpdateUserType changes the stored user type for an existing profile.
func (repo *userRepository) UpdateUserType(ctx context.Context, uid string, userType entity.UserType) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("uid = ?", uid).
		Update("user_type", string(userType))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user type")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain UserProfile entity.
func toUserDomain(data *model.UserModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		UID:         data.UID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		PhotoURL:    data.PhotoURL,
		UserType:    entity.UserType(data.UserType),
		CreatedAt:   data.CreatedAt,
	}
}

// fromUserDomain converts a domain UserProfile entity to a GORM UserModel.
func fromUserDomain(data *entity.UserProfile) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		UID:         data.UID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		PhotoURL:    data.PhotoURL,
		UserType:    string(data.UserType),
		CreatedAt:   data.CreatedAt,
	}
}
