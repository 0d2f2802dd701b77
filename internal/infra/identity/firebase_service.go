// Package identity resolves accounts against Firebase Authentication.
package identity

import (
	"context"
	"errors"
	"fmt"

	"souk/config"
	"souk/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type firebaseIdentityService struct {
	client *auth.Client
}

// NewFirebaseIdentityService creates an identity service backed by Firebase Auth
func NewFirebaseIdentityService(ctx context.Context, cfg *config.Config) (service.IdentityService, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	conf := &firebase.Config{ProjectID: cfg.Firebase.ProjectID}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	return &firebaseIdentityService{
		client: client,
	}, nil
}

// GetUser resolves an account by uid
func (s *firebaseIdentityService) GetUser(ctx context.Context, uid string) (*service.IdentityUser, error) {
	record, err := s.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, service.ErrIdentityNotFound
		}

		return nil, fmt.Errorf("failed to get user %s: %w", uid, err)
	}

	return toIdentityUser(record), nil
}

// GetUserByEmail resolves an account by email address
func (s *firebaseIdentityService) GetUserByEmail(ctx context.Context, email string) (*service.IdentityUser, error) {
	record, err := s.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, service.ErrIdentityNotFound
		}

		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return toIdentityUser(record), nil
}

func toIdentityUser(record *auth.UserRecord) *service.IdentityUser {
	return &service.IdentityUser{
		UID:   record.UID,
		Email: record.Email,
	}
}
