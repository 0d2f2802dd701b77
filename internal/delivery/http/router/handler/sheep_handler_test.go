package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"
	mockRepo "souk/internal/mocks/repository"
	"souk/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sheepHandlerFixtures wires the handler against a real catalog service backed
// by repository mocks, so the full envelope rendering is under test.
type sheepHandlerFixtures struct {
	handler   *SheepHandler
	echo      *echo.Echo
	sheepRepo *mockRepo.MockSheepRepository
	imageRepo *mockRepo.MockImageRepository
}

func createTestSheepHandler(t *testing.T) sheepHandlerFixtures {
	sheepRepo := mockRepo.NewMockSheepRepository(t)
	imageRepo := mockRepo.NewMockImageRepository(t)
	handler := NewSheepHandler(SheepHandlerParams{
		CatalogUC: impl.NewCatalogService(sheepRepo, imageRepo),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return sheepHandlerFixtures{
		handler:   handler,
		echo:      echo.New(),
		sheepRepo: sheepRepo,
		imageRepo: imageRepo,
	}
}

func TestSheepHandler_ListSheep_Success(t *testing.T) {
	fx := createTestSheepHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sheep", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.sheepRepo.EXPECT().
		GetAll(req.Context()).
		Return([]*entity.Sheep{{ID: "sheep-1", Name: "Ouled Djellal ram"}}, nil)

	err := fx.handler.ListSheep(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, "Ouled Djellal ram")
}

func TestSheepHandler_GetSheep_NotFound(t *testing.T) {
	fx := createTestSheepHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sheep/missing", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	fx.sheepRepo.EXPECT().
		FindByID(req.Context(), "missing").
		Return(nil, repository.ErrSheepNotFound)

	err := fx.handler.GetSheep(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, "SHEEP_NOT_FOUND")
}

func TestSheepHandler_CreateSheep_ValidationError(t *testing.T) {
	fx := createTestSheepHandler(t)

	payload := `{"name":"Ram","category":"merino","price":1000,"imageIds":["img-1"],` +
		`"age":"2 years","weight":"70 kg","breed":"Merino","healthStatus":"ok",` +
		`"description":"Imported breed, not supported"}`
	req := httptest.NewRequest(http.MethodPost, "/api/sheep", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.CreateSheep(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "VALIDATION_ERROR")
	assert.Contains(t, body, "category must be one of local, romanian or spanish")
}

func TestSheepHandler_CreateSheep_AcceptsStringPrice(t *testing.T) {
	fx := createTestSheepHandler(t)

	payload := `{"name":"Ram","category":"local","price":"85000","imageIds":["img-1"],` +
		`"age":"2 years","weight":"70 kg","breed":"Ouled Djellal","healthStatus":"vaccinated",` +
		`"description":"Large ram in excellent condition"}`
	req := httptest.NewRequest(http.MethodPost, "/api/sheep", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.sheepRepo.EXPECT().
		Create(req.Context(), mock.AnythingOfType("*entity.Sheep")).
		Run(func(_ context.Context, sheep *entity.Sheep) {
			sheep.ID = "sheep-new"
		}).
		Return(nil)

	fx.imageRepo.EXPECT().
		FindByIDs(req.Context(), []string{"img-1"}).
		Return([]*entity.Image{{ID: "img-1", ImageURL: "https://img.example/1.jpg"}}, nil)

	err := fx.handler.CreateSheep(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"price":85000`)
	assert.Contains(t, body, "https://img.example/1.jpg")
}

func TestSheepHandler_DeleteSheep_NoContent(t *testing.T) {
	fx := createTestSheepHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/sheep/sheep-1", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("sheep-1")

	fx.sheepRepo.EXPECT().
		Delete(req.Context(), "sheep-1").
		Return(nil)

	err := fx.handler.DeleteSheep(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
