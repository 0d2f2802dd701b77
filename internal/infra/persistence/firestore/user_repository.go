package firestore

import (
	"context"
	"time"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const userCollection = "users"

// userDoc is the Firestore document shape of a profile, keyed by uid.
type userDoc struct {
	Email       *string   `firestore:"email"`
	DisplayName *string   `firestore:"displayName"`
	PhotoURL    string    `firestore:"photoUrl"`
	UserType    string    `firestore:"userType"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

// FindByUID retrieves a profile by identity-provider uid.
func (repo *userRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	doc, err := repo.client.Collection(userCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by uid")
	}

	var data userDoc
	if err := doc.DataTo(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	return toUserEntity(doc.Ref.ID, &data), nil
}

// Create persists a new profile. The uid must not already exist.
func (repo *userRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	ref := repo.client.Collection(userCollection).Doc(profile.UID)

	doc, err := ref.Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return errors.Wrap(err, "failed to check for existing user")
	}
	if err == nil && doc.Exists() {
		return repository.ErrDuplicateUser
	}

	if _, err := ref.Set(ctx, fromUserEntity(profile)); err != nil {
		return errors.Wrap(err, "failed to create user profile")
	}

	return nil
}

// UpdateUserType changes the stored user type for an existing profile.
func (repo *userRepository) UpdateUserType(ctx context.Context, uid string, userType entity.UserType) error {
	ref := repo.client.Collection(userCollection).Doc(uid)

	if _, err := ref.Update(ctx, []firestore.Update{
		{Path: "userType", Value: string(userType)},
	}); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update user type")
	}

	return nil
}

// --- Mapper Functions ---

func toUserEntity(uid string, data *userDoc) *entity.UserProfile {
	return &entity.UserProfile{
		UID:         uid,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		PhotoURL:    data.PhotoURL,
		UserType:    entity.UserType(data.UserType),
		CreatedAt:   data.CreatedAt,
	}
}

func fromUserEntity(data *entity.UserProfile) *userDoc {
	return &userDoc{
		Email:       data.Email,
		DisplayName: data.DisplayName,
		PhotoURL:    data.PhotoURL,
		UserType:    string(data.UserType),
		CreatedAt:   data.CreatedAt,
	}
}
