package main

import (
	"context"
	"log/slog"
	"os"

	"mazao/config"
	"mazao/internal/delivery"
	"mazao/internal/delivery/api"
	apimiddleware "mazao/internal/delivery/api/middleware"
	"mazao/internal/delivery/api/router/handler"
	"mazao/internal/domain/service"
	"mazao/internal/infra/ai"
	"mazao/internal/infra/auth"
	logs "mazao/internal/infra/log"
	"mazao/internal/infra/persistence/postgres"
	"mazao/internal/infra/qrcode"
	"mazao/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
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
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewClientRepository,
			postgres.NewLicenseRepository,
			postgres.NewContentRepository,
			postgres.NewReviewRepository,
			postgres.NewSettingRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			ai.NewOpenAIGenerator,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService() service.QRCodeService {
	return qrcode.NewQRCodeService(256, "M")
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewClientService,
			impl.NewLicenseService,
			impl.NewContentService,
			impl.NewGenerationService,
			impl.NewReviewService,
			impl.NewSettingService,
			impl.NewAnalyticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewClientHandler,
			handler.NewLicenseHandler,
			handler.NewContentHandler,
			handler.NewReviewHandler,
			handler.NewSettingHandler,
			handler.NewAIHandler,
			handler.NewAnalyticsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
