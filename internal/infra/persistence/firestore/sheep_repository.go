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

const sheepCollection = "sheep"

// sheepDoc is the Firestore document shape of a listing.
type sheepDoc struct {
	Name               string    `firestore:"name"`
	Category           string    `firestore:"category"`
	Price              float64   `firestore:"price"`
	DiscountPercentage *float64  `firestore:"discountPercentage"`
	ImageIDs           []string  `firestore:"imageIds"`
	Age                string    `firestore:"age"`
	Weight             string    `firestore:"weight"`
	Breed              string    `firestore:"breed"`
	HealthStatus       string    `firestore:"healthStatus"`
	Description        string    `firestore:"description"`
	IsFeatured         bool      `firestore:"isFeatured"`
	CreatedAt          time.Time `firestore:"createdAt"`
	UpdatedAt          time.Time `firestore:"updatedAt"`
}

// sheepRepository implements the repository.SheepRepository interface.
type sheepRepository struct {
	client *firestore.Client
}

// NewSheepRepository is the constructor for sheepRepository.
func NewSheepRepository(client *firestore.Client) repository.SheepRepository {
	return &sheepRepository{
		client: client,
	}
}

// GetAll retrieves all listings, newest first.
func (repo *sheepRepository) GetAll(ctx context.Context) ([]*entity.Sheep, error) {
	iter := repo.client.Collection(sheepCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	sheep := make([]*entity.Sheep, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list sheep")
		}

		var data sheepDoc
		if err := doc.DataTo(&data); err != nil {
			return nil, errors.Wrap(err, "failed to decode sheep document")
		}

		sheep = append(sheep, toSheepEntity(doc.Ref.ID, &data))
	}

	return sheep, nil
}

// FindByID retrieves a listing by its document id.
func (repo *sheepRepository) FindByID(ctx context.Context, id string) (*entity.Sheep, error) {
	doc, err := repo.client.Collection(sheepCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrSheepNotFound
		}

		return nil, errors.Wrap(err, "failed to find sheep by ID")
	}

	var data sheepDoc
	if err := doc.DataTo(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode sheep document")
	}

	return toSheepEntity(doc.Ref.ID, &data), nil
}

// Create persists a new listing and fills in the assigned document id.
func (repo *sheepRepository) Create(ctx context.Context, sheep *entity.Sheep) error {
	ref, _, err := repo.client.Collection(sheepCollection).Add(ctx, fromSheepEntity(sheep))
	if err != nil {
		return errors.Wrap(err, "failed to create sheep")
	}

	sheep.ID = ref.ID

	return nil
}

// Update persists the full state of an existing listing.
func (repo *sheepRepository) Update(ctx context.Context, sheep *entity.Sheep) error {
	ref := repo.client.Collection(sheepCollection).Doc(sheep.ID)

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrSheepNotFound
		}

		return errors.Wrap(err, "failed to load sheep for update")
	}

	if _, err := ref.Set(ctx, fromSheepEntity(sheep)); err != nil {
		return errors.Wrap(err, "failed to update sheep")
	}

	return nil
}

// Delete removes a listing. Deleting an absent id is not an error.
func (repo *sheepRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(sheepCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete sheep")
	}

	return nil
}

// --- Mapper Functions ---

func toSheepEntity(id string, data *sheepDoc) *entity.Sheep {
	return &entity.Sheep{
		ID:                 id,
		Name:               data.Name,
		Category:           entity.SheepCategory(data.Category),
		Price:              data.Price,
		DiscountPercentage: data.DiscountPercentage,
		ImageIDs:           data.ImageIDs,
		Age:                data.Age,
		Weight:             data.Weight,
		Breed:              data.Breed,
		HealthStatus:       data.HealthStatus,
		Description:        data.Description,
		IsFeatured:         data.IsFeatured,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromSheepEntity(data *entity.Sheep) *sheepDoc {
	return &sheepDoc{
		Name:               data.Name,
		Category:           string(data.Category),
		Price:              data.Price,
		DiscountPercentage: data.DiscountPercentage,
		ImageIDs:           data.ImageIDs,
		Age:                data.Age,
		Weight:             data.Weight,
		Breed:              data.Breed,
		HealthStatus:       data.HealthStatus,
		Description:        data.Description,
		IsFeatured:         data.IsFeatured,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
