package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/usecase"
)

type catalogService struct {
	sheepRepo repository.SheepRepository
	imageRepo repository.ImageRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(sheepRepo repository.SheepRepository, imageRepo repository.ImageRepository) usecase.CatalogUsecase {
	return &catalogService{
		sheepRepo: sheepRepo,
		imageRepo: imageRepo,
	}
}

// ListSheep retrieves all listings, newest first, with image URLs resolved
func (s *catalogService) ListSheep(ctx context.Context) ([]*entity.Sheep, error) {
	sheep, err := s.sheepRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheep: %w", err)
	}

	// One batched lookup across every listing instead of a per-listing fan-out.
	ids := make([]string, 0)
	seen := make(map[string]struct{})
	for _, item := range sheep {
		for _, id := range item.ImageIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	urls, err := s.imageURLsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, item := range sheep {
		item.Images = resolveImageURLs(item.ImageIDs, urls)
	}

	return sheep, nil
}

// GetSheep retrieves a single listing with image URLs resolved
func (s *catalogService) GetSheep(ctx context.Context, id string) (*entity.Sheep, error) {
	sheep, err := s.sheepRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSheepNotFound) {
			return nil, domainerrors.ErrSheepNotFound
		}

		return nil, fmt.Errorf("failed to find sheep by ID: %w", err)
	}

	urls, err := s.imageURLsByID(ctx, sheep.ImageIDs)
	if err != nil {
		return nil, err
	}
	sheep.Images = resolveImageURLs(sheep.ImageIDs, urls)

	return sheep, nil
}

// CreateSheep validates and persists a new listing
func (s *catalogService) CreateSheep(ctx context.Context, input *usecase.CreateSheepInput) (*entity.Sheep, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	sheep := &entity.Sheep{
		Name:         input.Name,
		Category:     entity.SheepCategory(input.Category),
		Price:        input.Price.Float64(),
		ImageIDs:     input.ImageIDs,
		Age:          input.Age,
		Weight:       input.Weight,
		Breed:        input.Breed,
		HealthStatus: input.HealthStatus,
		Description:  input.Description,
		IsFeatured:   input.IsFeatured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.DiscountPercentage != nil {
		discount := input.DiscountPercentage.Float64()
		sheep.DiscountPercentage = &discount
	}

	if err := s.sheepRepo.Create(ctx, sheep); err != nil {
		return nil, fmt.Errorf("failed to create sheep: %w", err)
	}

	urls, err := s.imageURLsByID(ctx, sheep.ImageIDs)
	if err != nil {
		return nil, err
	}
	sheep.Images = resolveImageURLs(sheep.ImageIDs, urls)

	return sheep, nil
}

// UpdateSheep merges the provided fields into an existing listing
func (s *catalogService) UpdateSheep(ctx context.Context, id string, input *usecase.UpdateSheepInput) (*entity.Sheep, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sheep, err := s.sheepRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSheepNotFound) {
			return nil, domainerrors.ErrSheepNotFound
		}

		return nil, fmt.Errorf("failed to find sheep by ID: %w", err)
	}

	applySheepUpdate(sheep, input)
	sheep.UpdatedAt = time.Now()

	if err := s.sheepRepo.Update(ctx, sheep); err != nil {
		if errors.Is(err, repository.ErrSheepNotFound) {
			return nil, domainerrors.ErrSheepNotFound
		}

		return nil, fmt.Errorf("failed to update sheep: %w", err)
	}

	urls, err := s.imageURLsByID(ctx, sheep.ImageIDs)
	if err != nil {
		return nil, err
	}
	sheep.Images = resolveImageURLs(sheep.ImageIDs, urls)

	return sheep, nil
}

// DeleteSheep removes a listing. Absent ids succeed.
func (s *catalogService) DeleteSheep(ctx context.Context, id string) error {
	if err := s.sheepRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sheep: %w", err)
	}

	return nil
}

// imageURLsByID resolves image ids to URLs with a single repository call.
func (s *catalogService) imageURLsByID(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	images, err := s.imageRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find images by IDs: %w", err)
	}

	urls := make(map[string]string, len(images))
	for _, img := range images {
		urls[img.ID] = img.ImageURL
	}

	return urls, nil
}

// resolveImageURLs keeps the listing's image order, dropping missing records.
func resolveImageURLs(ids []string, urls map[string]string) []string {
	resolved := make([]string, 0, len(ids))
	for _, id := range ids {
		if url, ok := urls[id]; ok {
			resolved = append(resolved, url)
		}
	}

	return resolved
}

func applySheepUpdate(sheep *entity.Sheep, input *usecase.UpdateSheepInput) {
	if input.Name != nil {
		sheep.Name = *input.Name
	}
	if input.Category != nil {
		sheep.Category = entity.SheepCategory(*input.Category)
	}
	if input.Price != nil {
		sheep.Price = input.Price.Float64()
	}
	if input.DiscountPercentage != nil {
		discount := input.DiscountPercentage.Float64()
		sheep.DiscountPercentage = &discount
	}
	if input.ImageIDs != nil {
		sheep.ImageIDs = *input.ImageIDs
	}
	if input.Age != nil {
		sheep.Age = *input.Age
	}
	if input.Weight != nil {
		sheep.Weight = *input.Weight
	}
	if input.Breed != nil {
		sheep.Breed = *input.Breed
	}
	if input.HealthStatus != nil {
		sheep.HealthStatus = *input.HealthStatus
	}
	if input.Description != nil {
		sheep.Description = *input.Description
	}
	if input.IsFeatured != nil {
		sheep.IsFeatured = *input.IsFeatured
	}
}
