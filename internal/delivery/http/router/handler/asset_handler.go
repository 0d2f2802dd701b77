package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"souk/config"
	"souk/internal/delivery/http/response"
	"souk/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AssetHandlerParams holds dependencies for AssetHandler, injected by Fx.
type AssetHandlerParams struct {
	fx.In

	BundleStore service.BundleStore
	QRCodeSvc   service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// AssetHandler serves the downloadable app bundle and its QR code
type AssetHandler struct {
	bundleStore service.BundleStore
	qrcodeSvc   service.QRCodeService
	cfg         *config.Config
	logger      *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler
func NewAssetHandler(params AssetHandlerParams) *AssetHandler {
	return &AssetHandler{
		bundleStore: params.BundleStore,
		qrcodeSvc:   params.QRCodeSvc,
		cfg:         params.Config,
		logger:      params.Logger,
	}
}

// DownloadApp streams the application bundle as an attachment
func (h *AssetHandler) DownloadApp(c echo.Context) error {
	reader, info, err := h.bundleStore.Fetch(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrBundleNotFound) {
			return response.NotFound(c, "BUNDLE_NOT_FOUND", "App bundle not found")
		}

		return errors.WithStack(err)
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", info.Name))
	c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))

	return c.Stream(http.StatusOK, info.ContentType, reader)
}

// DownloadQRCode returns a PNG QR code encoding the download URL
func (h *AssetHandler) DownloadQRCode(c echo.Context) error {
	content := h.downloadURL(c)

	png, err := h.qrcodeSvc.GeneratePNG(content)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// downloadURL prefers the configured public URL and falls back to the
// address the request came in on.
func (h *AssetHandler) downloadURL(c echo.Context) string {
	if h.cfg.Assets != nil && h.cfg.Assets.PublicURL != "" {
		return h.cfg.Assets.PublicURL
	}

	return fmt.Sprintf("%s://%s/api/download-app", c.Scheme(), c.Request().Host)
}
