package firestore

import (
	"context"
	"time"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const imageCollection = "images"

// imageDoc is the Firestore document shape of an uploaded image record.
type imageDoc struct {
	ImageURL         string    `firestore:"imageUrl"`
	ThumbnailURL     string    `firestore:"thumbnailUrl"`
	DeleteURL        string    `firestore:"deleteUrl"`
	OriginalFileName string    `firestore:"originalFileName"`
	MimeType         string    `firestore:"mimeType"`
	FileSize         int64     `firestore:"fileSize"`
	CreatedAt        time.Time `firestore:"createdAt"`
}

// imageRepository implements the repository.ImageRepository interface.
type imageRepository struct {
	client *firestore.Client
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(client *firestore.Client) repository.ImageRepository {
	return &imageRepository{
		client: client,
	}
}

// Create persists a new image record under an application-assigned id.
func (repo *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}

	ref := repo.client.Collection(imageCollection).Doc(image.ID)
	if _, err := ref.Set(ctx, fromImageEntity(image)); err != nil {
		return errors.Wrap(err, "failed to create image record")
	}

	return nil
}

// FindByID retrieves an image record by its document id.
func (repo *imageRepository) FindByID(ctx context.Context, id string) (*entity.Image, error) {
	doc, err := repo.client.Collection(imageCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find image by ID")
	}

	var data imageDoc
	if err := doc.DataTo(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode image document")
	}

	return toImageEntity(doc.Ref.ID, &data), nil
}

// FindByIDs retrieves image records for the given ids in one round trip.
// Missing ids are silently omitted from the result.
func (repo *imageRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Image, error) {
	if len(ids) == 0 {
		return []*entity.Image{}, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, repo.client.Collection(imageCollection).Doc(id))
	}

	docs, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find images by IDs")
	}

	images := make([]*entity.Image, 0, len(docs))
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}

		var data imageDoc
		if err := doc.DataTo(&data); err != nil {
			return nil, errors.Wrap(err, "failed to decode image document")
		}

		images = append(images, toImageEntity(doc.Ref.ID, &data))
	}

	return images, nil
}

// --- Mapper Functions ---

func toImageEntity(id string, data *imageDoc) *entity.Image {
	return &entity.Image{
		ID:               id,
		ImageURL:         data.ImageURL,
		ThumbnailURL:     data.ThumbnailURL,
		DeleteURL:        data.DeleteURL,
		OriginalFileName: data.OriginalFileName,
		MimeType:         data.MimeType,
		FileSize:         data.FileSize,
		CreatedAt:        data.CreatedAt,
	}
}

func fromImageEntity(data *entity.Image) *imageDoc {
	return &imageDoc{
		ImageURL:         data.ImageURL,
		ThumbnailURL:     data.ThumbnailURL,
		DeleteURL:        data.DeleteURL,
		OriginalFileName: data.OriginalFileName,
		MimeType:         data.MimeType,
		FileSize:         data.FileSize,
		CreatedAt:        data.CreatedAt,
	}
}
