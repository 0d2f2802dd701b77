package main

import (
	"context"
	"log/slog"
	"os"

	"souk/config"
	"souk/internal/delivery"
	"souk/internal/delivery/http"
	"souk/internal/delivery/http/middleware"
	"souk/internal/delivery/http/router/handler"
	"souk/internal/domain/service"
	"souk/internal/infra/assets"
	"souk/internal/infra/identity"
	"souk/internal/infra/imagehost"
	logs "souk/internal/infra/log"
	firestorerepo "souk/internal/infra/persistence/firestore"
	"souk/internal/infra/persistence/postgres"
	"souk/internal/infra/pubsub"
	"souk/internal/infra/qrcode"
	"souk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg.Storage.Backend),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

// injectRepo wires the repository set for the configured storage backend.
func injectRepo(backend string) fx.Option {
	if backend == config.StorageBackendFirestore {
		return fx.Options(
			fx.Provide(
				firestorerepo.NewFirestoreClient,
				firestorerepo.NewSheepRepository,
				firestorerepo.NewOrderRepository,
				firestorerepo.NewAdminRepository,
				firestorerepo.NewImageRepository,
				firestorerepo.NewUserRepository,
			),
		)
	}

	return fx.Options(
		fx.Provide(
			postgres.New,
			postgres.NewSheepRepository,
			postgres.NewOrderRepository,
			postgres.NewAdminRepository,
			postgres.NewImageRepository,
			postgres.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			identity.NewFirebaseIdentityService,
			imagehost.NewImgBBService,
			assets.NewBlobBundleStore,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewAdminService,
			impl.NewUserService,
			impl.NewImageService,
			impl.NewAuthorizer,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSheepHandler,
			handler.NewOrderHandler,
			handler.NewAdminHandler,
			handler.NewUserHandler,
			handler.NewImageHandler,
			handler.NewAssetHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
