package usecase

import (
	"context"

	"souk/internal/domain/entity"
)

// CreateSheepInput carries a new catalog listing.
type CreateSheepInput struct {
	Name               string     `json:"name" validate:"required"`
	Category           string     `json:"category" validate:"required,oneof=local romanian spanish"`
	Price              FlexFloat  `json:"price" validate:"gte=0"`
	DiscountPercentage *FlexFloat `json:"discountPercentage" validate:"omitempty,gte=0,lte=100"`
	ImageIDs           []string   `json:"imageIds" validate:"required,min=1"`
	Age                string     `json:"age" validate:"required"`
	Weight             string     `json:"weight" validate:"required"`
	Breed              string     `json:"breed" validate:"required"`
	HealthStatus       string     `json:"healthStatus" validate:"required"`
	Description        string     `json:"description" validate:"required,min=10"`
	IsFeatured         bool       `json:"isFeatured"`
}

//nolint:gochecknoglobals
var sheepMessages = map[string]string{
	"Name":               "name is required",
	"Category":           "category must be one of local, romanian or spanish",
	"Price":              "price must be a positive number",
	"DiscountPercentage": "discount must be between 0 and 100",
	"ImageIDs":           "at least one image is required",
	"Age":                "age is required",
	"Weight":             "weight is required",
	"Breed":              "breed is required",
	"HealthStatus":       "health status is required",
	"Description":        "description must be at least 10 characters",
}

// Validate checks the input and reports the first violated rule.
func (i *CreateSheepInput) Validate() error {
	return validateStruct(i, sheepMessages)
}

// UpdateSheepInput carries a partial listing update. Nil fields are left unchanged.
type UpdateSheepInput struct {
	Name               *string    `json:"name" validate:"omitempty,min=1"`
	Category           *string    `json:"category" validate:"omitempty,oneof=local romanian spanish"`
	Price              *FlexFloat `json:"price" validate:"omitempty,gte=0"`
	DiscountPercentage *FlexFloat `json:"discountPercentage" validate:"omitempty,gte=0,lte=100"`
	ImageIDs           *[]string  `json:"imageIds" validate:"omitempty,min=1"`
	Age                *string    `json:"age" validate:"omitempty,min=1"`
	Weight             *string    `json:"weight" validate:"omitempty,min=1"`
	Breed              *string    `json:"breed" validate:"omitempty,min=1"`
	HealthStatus       *string    `json:"healthStatus" validate:"omitempty,min=1"`
	Description        *string    `json:"description" validate:"omitempty,min=10"`
	IsFeatured         *bool      `json:"isFeatured"`
}

// Validate checks the provided fields and reports the first violated rule.
func (i *UpdateSheepInput) Validate() error {
	return validateStruct(i, sheepMessages)
}

// CatalogUsecase defines the interface for catalog management use cases.
type CatalogUsecase interface {
	// ListSheep retrieves all listings, newest first, with image URLs resolved.
	ListSheep(ctx context.Context) ([]*entity.Sheep, error)

	// GetSheep retrieves a single listing with image URLs resolved.
	GetSheep(ctx context.Context, id string) (*entity.Sheep, error)

	// CreateSheep validates and persists a new listing.
	CreateSheep(ctx context.Context, input *CreateSheepInput) (*entity.Sheep, error)

	// UpdateSheep merges the provided fields into an existing listing.
	UpdateSheep(ctx context.Context, id string, input *UpdateSheepInput) (*entity.Sheep, error)

	// DeleteSheep removes a listing. Absent ids succeed.
	DeleteSheep(ctx context.Context, id string) error
}
