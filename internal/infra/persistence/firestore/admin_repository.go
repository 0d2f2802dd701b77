package firestore

import (
	"context"
	"strings"
	"time"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

const adminCollection = "admins"

// adminDoc is the Firestore document shape of an allow-list entry.
// The email is stored lowercased so equality queries are case-insensitive.
type adminDoc struct {
	UserID  string    `firestore:"userId"`
	Email   string    `firestore:"email"`
	Role    string    `firestore:"role"`
	AddedAt time.Time `firestore:"addedAt"`
}

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	client *firestore.Client
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &adminRepository{
		client: client,
	}
}

// GetAll retrieves every allow-list entry.
func (repo *adminRepository) GetAll(ctx context.Context) ([]*entity.Admin, error) {
	iter := repo.client.Collection(adminCollection).
		OrderBy("addedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	admins := make([]*entity.Admin, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list admins")
		}

		var data adminDoc
		if err := doc.DataTo(&data); err != nil {
			return nil, errors.Wrap(err, "failed to decode admin document")
		}

		admins = append(admins, toAdminEntity(doc.Ref.ID, &data))
	}

	return admins, nil
}

// FindByEmail retrieves an entry by its email, matched case-insensitively.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	iter := repo.client.Collection(adminCollection).
		Where("email", "==", strings.ToLower(email)).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrAdminNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	var data adminDoc
	if err := doc.DataTo(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode admin document")
	}

	return toAdminEntity(doc.Ref.ID, &data), nil
}

// Create persists a new entry. The email must not already be listed.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	if _, err := repo.FindByEmail(ctx, admin.Email); err == nil {
		return repository.ErrDuplicateAdmin
	} else if !errors.Is(err, repository.ErrAdminNotFound) {
		return err
	}

	ref, _, err := repo.client.Collection(adminCollection).Add(ctx, fromAdminEntity(admin))
	if err != nil {
		return errors.Wrap(err, "failed to create admin")
	}

	admin.ID = ref.ID

	return nil
}

// Delete removes an entry by id. Deleting an absent id is not an error.
func (repo *adminRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(adminCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete admin")
	}

	return nil
}

// --- Mapper Functions ---

func toAdminEntity(id string, data *adminDoc) *entity.Admin {
	return &entity.Admin{
		ID:      id,
		UserID:  data.UserID,
		Email:   data.Email,
		Role:    entity.AdminRole(data.Role),
		AddedAt: data.AddedAt,
	}
}

func fromAdminEntity(data *entity.Admin) *adminDoc {
	return &adminDoc{
		UserID:  data.UserID,
		Email:   strings.ToLower(data.Email),
		Role:    string(data.Role),
		AddedAt: data.AddedAt,
	}
}
