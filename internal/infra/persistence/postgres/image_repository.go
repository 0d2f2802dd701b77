package postgres

import (
	"context"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// imageRepository implements the repository.ImageRepository interface.
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{
		db: db,
	}
}

// Create persists a new image record and fills in backend-assigned fields.
func (repo *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	imageM := fromImageDomain(image)
	if imageM.ID == "" {
		// Application-assigned UUIDs keep ids opaque strings on every backend.
		imageM.ID = uuid.NewString()
	}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create image record")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

// FindByID retrieves an image record by its identifier.
func (repo *imageRepository) FindByID(ctx context.Context, id string) (*entity.Image, error) {
	var imageM model.ImageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find image by ID")
	}

	return toImageDomain(&imageM), nil
}

// FindByIDs retrieves image records for the given ids in one round trip.
// Missing ids are silently omitted from the result.
func (repo *imageRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Image, error) {
	if len(ids) == 0 {
		return []*entity.Image{}, nil
	}

	var imageModels []*model.ImageModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&imageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find images by IDs")
	}

	images := make([]*entity.Image, 0, len(imageModels))
	for _, imageM := range imageModels {
		images = append(images, toImageDomain(imageM))
	}

	return images, nil
}

// --- Mapper Functions ---

// toImageDomain converts a GORM ImageModel to a domain Image entity.
func toImageDomain(data *model.ImageModel) *entity.Image {
	if data == nil {
		return nil
	}

	return &entity.Image{
		ID:               data.ID,
		ImageURL:         data.ImageURL,
		ThumbnailURL:     data.ThumbnailURL,
		DeleteURL:        data.DeleteURL,
		OriginalFileName: data.OriginalFileName,
		MimeType:         data.MimeType,
		FileSize:         data.FileSize,
		CreatedAt:        data.CreatedAt,
	}
}

// fromImageDomain converts a domain Image entity to a GORM ImageModel.
func fromImageDomain(data *entity.Image) *model.ImageModel {
	if data == nil {
		return nil
	}

	return &model.ImageModel{
		ID:               data.ID,
		ImageURL:         data.ImageURL,
		ThumbnailURL:     data.ThumbnailURL,
		DeleteURL:        data.DeleteURL,
		OriginalFileName: data.OriginalFileName,
		MimeType:         data.MimeType,
		FileSize:         data.FileSize,
		CreatedAt:        data.CreatedAt,
	}
}
