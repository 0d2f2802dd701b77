package impl

import (
	"context"
	"testing"
	"time"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	mockRepo "souk/internal/mocks/repository"
	"souk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	sheepRepo *mockRepo.MockSheepRepository
	imageRepo *mockRepo.MockImageRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	sheepRepo := mockRepo.NewMockSheepRepository(t)
	imageRepo := mockRepo.NewMockImageRepository(t)
	service := NewCatalogService(sheepRepo, imageRepo)

	return catalogServiceFixtures{
		service:   service,
		sheepRepo: sheepRepo,
		imageRepo: imageRepo,
	}
}

func validCreateSheepInput() *usecase.CreateSheepInput {
	return &usecase.CreateSheepInput{
		Name:         "Ouled Djellal ram",
		Category:     "local",
		Price:        usecase.FlexFloat(85000),
		ImageIDs:     []string{"img-1"},
		Age:          "2 years",
		Weight:       "70 kg",
		Breed:        "Ouled Djellal",
		HealthStatus: "vaccinated",
		Description:  "Large ram in excellent condition",
	}
}

func TestCatalogService_ListSheep_ResolvesImages(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	listings := []*entity.Sheep{
		{ID: "sheep-1", Name: "First", ImageIDs: []string{"img-1", "img-2"}},
		{ID: "sheep-2", Name: "Second", ImageIDs: []string{"img-2"}},
	}

	fx.sheepRepo.EXPECT().
		GetAll(ctx).
		Return(listings, nil)

	// Shared image ids are fetched once across the whole page.
	fx.imageRepo.EXPECT().
		FindByIDs(ctx, []string{"img-1", "img-2"}).
		Return([]*entity.Image{
			{ID: "img-1", ImageURL: "https://img.example/1.jpg"},
			{ID: "img-2", ImageURL: "https://img.example/2.jpg"},
		}, nil)

	result, err := fx.service.ListSheep(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, []string{"https://img.example/1.jpg", "https://img.example/2.jpg"}, result[0].Images)
	assert.Equal(t, []string{"https://img.example/2.jpg"}, result[1].Images)
}

func TestCatalogService_ListSheep_NoImages(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.sheepRepo.EXPECT().
		GetAll(ctx).
		Return([]*entity.Sheep{{ID: "sheep-1", Name: "Bare"}}, nil)

	// No FindByIDs expectation: the image repo must not be touched.
	result, err := fx.service.ListSheep(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Empty(t, result[0].Images)
}

func TestCatalogService_ListSheep_RepoError(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.sheepRepo.EXPECT().
		GetAll(ctx).
		Return(nil, errors.New("connection refused"))

	result, err := fx.service.ListSheep(ctx)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to list sheep")
}

func TestCatalogService_GetSheep_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	listing := &entity.Sheep{ID: "sheep-1", Name: "First", ImageIDs: []string{"img-1"}}

	fx.sheepRepo.EXPECT().
		FindByID(ctx, "sheep-1").
		Return(listing, nil)

	fx.imageRepo.EXPECT().
		FindByIDs(ctx, []string{"img-1"}).
		Return([]*entity.Image{{ID: "img-1", ImageURL: "https://img.example/1.jpg"}}, nil)

	result, err := fx.service.GetSheep(ctx, "sheep-1")
	require.NoError(t, err)
	assert.Equal(t, "sheep-1", result.ID)
	assert.Equal(t, []string{"https://img.example/1.jpg"}, result.Images)
}

func TestCatalogService_GetSheep_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.sheepRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrSheepNotFound)

	result, err := fx.service.GetSheep(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrSheepNotFound, err)
}

func TestCatalogService_GetSheep_DropsMissingImages(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	listing := &entity.Sheep{ID: "sheep-1", ImageIDs: []string{"img-1", "img-gone", "img-2"}}

	fx.sheepRepo.EXPECT().
		FindByID(ctx, "sheep-1").
		Return(listing, nil)

	fx.imageRepo.EXPECT().
		FindByIDs(ctx, []string{"img-1", "img-gone", "img-2"}).
		Return([]*entity.Image{
			{ID: "img-2", ImageURL: "https://img.example/2.jpg"},
			{ID: "img-1", ImageURL: "https://img.example/1.jpg"},
		}, nil)

	result, err := fx.service.GetSheep(ctx, "sheep-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.example/1.jpg", "https://img.example/2.jpg"}, result.Images)
}

func TestCatalogService_CreateSheep_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := validCreateSheepInput()

	fx.sheepRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Sheep")).
		Run(func(_ context.Context, sheep *entity.Sheep) {
			sheep.ID = "sheep-new"
		}).
		Return(nil)

	fx.imageRepo.EXPECT().
		FindByIDs(ctx, []string{"img-1"}).
		Return([]*entity.Image{{ID: "img-1", ImageURL: "https://img.example/1.jpg"}}, nil)

	result, err := fx.service.CreateSheep(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "sheep-new", result.ID)
	assert.Equal(t, entity.CategoryLocal, result.Category)
	assert.InDelta(t, 85000, result.Price, 0.001)
	assert.Equal(t, []string{"https://img.example/1.jpg"}, result.Images)
	assert.False(t, result.CreatedAt.IsZero())
}

func TestCatalogService_CreateSheep_InvalidCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := validCreateSheepInput()
	input.Category = "merino"

	result, err := fx.service.CreateSheep(ctx, input)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "category must be one of local, romanian or spanish", err.Error())
}

func TestCatalogService_CreateSheep_MissingImages(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := validCreateSheepInput()
	input.ImageIDs = nil

	result, err := fx.service.CreateSheep(ctx, input)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "at least one image is required", err.Error())
}

func TestCatalogService_CreateSheep_ShortDescription(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := validCreateSheepInput()
	input.Description = "short"

	result, err := fx.service.CreateSheep(ctx, input)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "description must be at least 10 characters", err.Error())
}

func TestCatalogService_UpdateSheep_PartialMerge(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	existing := &entity.Sheep{
		ID:           "sheep-1",
		Name:         "Old name",
		Category:     entity.CategoryLocal,
		Price:        50000,
		ImageIDs:     []string{"img-1"},
		Age:          "2 years",
		Weight:       "60 kg",
		Breed:        "Ouled Djellal",
		HealthStatus: "vaccinated",
		Description:  "An older listing text",
		UpdatedAt:    time.Now().Add(-time.Hour),
	}

	newName := "New name"
	newPrice := usecase.FlexFloat(62000)
	featured := true
	input := &usecase.UpdateSheepInput{
		Name:       &newName,
		Price:      &newPrice,
		IsFeatured: &featured,
	}

	fx.sheepRepo.EXPECT().
		FindByID(ctx, "sheep-1").
		Return(existing, nil)

	fx.sheepRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Sheep")).
		Return(nil)

	fx.imageRepo.EXPECT().
		FindByIDs(ctx, []string{"img-1"}).
		Return([]*entity.Image{{ID: "img-1", ImageURL: "https://img.example/1.jpg"}}, nil)

	result, err := fx.service.UpdateSheep(ctx, "sheep-1", input)
	require.NoError(t, err)
	assert.Equal(t, "New name", result.Name)
	assert.InDelta(t, 62000, result.Price, 0.001)
	assert.True(t, result.IsFeatured)
	// Untouched fields survive the merge.
	assert.Equal(t, entity.CategoryLocal, result.Category)
	assert.Equal(t, "Ouled Djellal", result.Breed)
}

func TestCatalogService_UpdateSheep_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	newName := "New name"

	fx.sheepRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrSheepNotFound)

	result, err := fx.service.UpdateSheep(ctx, "missing", &usecase.UpdateSheepInput{Name: &newName})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrSheepNotFound, err)
}

func TestCatalogService_UpdateSheep_InvalidCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	category := "merino"

	result, err := fx.service.UpdateSheep(ctx, "sheep-1", &usecase.UpdateSheepInput{Category: &category})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "category must be one of local, romanian or spanish", err.Error())
}

func TestCatalogService_DeleteSheep_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.sheepRepo.EXPECT().
		Delete(ctx, "sheep-1").
		Return(nil)

	err := fx.service.DeleteSheep(ctx, "sheep-1")
	require.NoError(t, err)
}

func TestCatalogService_DeleteSheep_RepoError(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.sheepRepo.EXPECT().
		Delete(ctx, "sheep-1").
		Return(errors.New("connection refused"))

	err := fx.service.DeleteSheep(ctx, "sheep-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete sheep")
}
