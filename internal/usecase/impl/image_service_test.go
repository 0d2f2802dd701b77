package impl

import (
	"context"
	"encoding/base64"
	"testing"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	mockRepo "souk/internal/mocks/repository"
	mockService "souk/internal/mocks/service"
	"souk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// imageServiceFixtures holds all test dependencies for image service tests.
type imageServiceFixtures struct {
	service   usecase.ImageUsecase
	imageRepo *mockRepo.MockImageRepository
	host      *mockService.MockImageHostService
}

func createTestImageService(t *testing.T) imageServiceFixtures {
	imageRepo := mockRepo.NewMockImageRepository(t)
	host := mockService.NewMockImageHostService(t)
	service := NewImageService(imageRepo, host)

	return imageServiceFixtures{
		service:   service,
		imageRepo: imageRepo,
		host:      host,
	}
}

func validPayload() string {
	return base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
}

func TestImageService_Upload_Success(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	payload := validPayload()
	input := &usecase.UploadImageInput{
		ImageData:        payload,
		MimeType:         "image/jpeg",
		OriginalFileName: "ram.jpg",
	}

	fx.host.EXPECT().
		Upload(ctx, payload, "ram.jpg").
		Return(&service.HostedImage{
			URL:          "https://img.example/full.jpg",
			ThumbnailURL: "https://img.example/thumb.jpg",
			DeleteURL:    "https://img.example/delete",
			Size:         1024,
		}, nil)

	fx.imageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Image")).
		Run(func(_ context.Context, image *entity.Image) {
			image.ID = "img-new"
		}).
		Return(nil)

	image, err := fx.service.Upload(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "img-new", image.ID)
	assert.Equal(t, "https://img.example/full.jpg", image.ImageURL)
	assert.Equal(t, "https://img.example/thumb.jpg", image.ThumbnailURL)
	assert.Equal(t, "image/jpeg", image.MimeType)
	assert.Equal(t, int64(1024), image.FileSize)
}

func TestImageService_Upload_StripsDataURLPrefix(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	payload := validPayload()
	input := &usecase.UploadImageInput{
		ImageData: "data:image/png;base64," + payload,
		MimeType:  "image/png",
	}

	// The host receives the bare base64 payload without the data URL header.
	fx.host.EXPECT().
		Upload(ctx, payload, "").
		Return(&service.HostedImage{URL: "https://img.example/full.png"}, nil)

	fx.imageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Image")).
		Return(nil)

	image, err := fx.service.Upload(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/full.png", image.ImageURL)
}

func TestImageService_Upload_RejectsUnsupportedMime(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	input := &usecase.UploadImageInput{
		ImageData: validPayload(),
		MimeType:  "application/pdf",
	}

	// No Upload expectation: the host must never see a rejected payload.
	image, err := fx.service.Upload(ctx, input)
	require.Error(t, err)
	assert.Nil(t, image)
	assert.Contains(t, err.Error(), "unsupported image type")
}

func TestImageService_Upload_RejectsInvalidBase64(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	input := &usecase.UploadImageInput{
		ImageData: "not base64 at all!!!",
		MimeType:  "image/jpeg",
	}

	image, err := fx.service.Upload(ctx, input)
	require.Error(t, err)
	assert.Nil(t, image)
	assert.Equal(t, "image data must be valid base64", err.Error())
}

func TestImageService_Upload_MissingMimeType(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	input := &usecase.UploadImageInput{ImageData: validPayload()}

	image, err := fx.service.Upload(ctx, input)
	require.Error(t, err)
	assert.Nil(t, image)
	assert.Equal(t, "mime type is required", err.Error())
}

func TestImageService_Upload_HostFailure(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	payload := validPayload()
	input := &usecase.UploadImageInput{
		ImageData: payload,
		MimeType:  "image/jpeg",
	}

	fx.host.EXPECT().
		Upload(ctx, payload, "").
		Return(nil, errors.New("rate limited"))

	image, err := fx.service.Upload(ctx, input)
	require.Error(t, err)
	assert.Nil(t, image)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPSTREAM_ERROR", appErr.ErrorCode())
}

func TestImageService_GetImage_Success(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	stored := &entity.Image{ID: "img-1", ImageURL: "https://img.example/1.jpg"}

	fx.imageRepo.EXPECT().
		FindByID(ctx, "img-1").
		Return(stored, nil)

	image, err := fx.service.GetImage(ctx, "img-1")
	require.NoError(t, err)
	assert.Equal(t, "img-1", image.ID)
}

func TestImageService_GetImage_NotFound(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()

	fx.imageRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrImageNotFound)

	image, err := fx.service.GetImage(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, image)
	assert.Equal(t, domainerrors.ErrImageNotFound, err)
}
