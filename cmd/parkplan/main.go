// The parkplan binary serves the client-facing vacation planning API.
package main

import (
	"context"
	"log/slog"
	"os"

	"parkplan/config"
	"parkplan/internal/delivery"
	"parkplan/internal/delivery/http"
	"parkplan/internal/delivery/http/middleware"
	"parkplan/internal/delivery/http/router/handler"
	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/service"
	"parkplan/internal/infra/auth"
	logs "parkplan/internal/infra/log"
	"parkplan/internal/infra/persistence/firestore"
	"parkplan/internal/infra/persistence/resolver"
	"parkplan/internal/infra/persistence/rtdb"
	"parkplan/internal/infra/pubsub"
	"parkplan/internal/infra/qrcode"
	"parkplan/internal/infra/ratelimit"
	"parkplan/internal/infra/stream"
	"parkplan/internal/usecase/impl"

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
		firestore.NewClient,
		rtdb.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewUserRepository,
			firestore.NewVacationRepository,
			firestore.NewItineraryRepository,
			firestore.NewMessageRepository,
			firestore.NewGeofenceRepository,
			firestore.NewReferenceRepository,
			firestore.NewAuditRepository,
			rtdb.NewLocationRepository,
			rtdb.NewWaitTimeRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptCodeHasher,
			auth.NewInviteTokenService,
			auth.NewFirebaseVerifier,
			resolver.NewMembershipResolver,
			newAuthorizer,
			newRateLimiter,
			newStreamHub,
			stream.NewBroadcaster,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newAuthorizer wires the policy engine behind its interface
func newAuthorizer(membershipResolver authz.MembershipResolver) authz.Authorizer {
	return authz.NewEngine(membershipResolver)
}

// newRateLimiter creates the per-identity token bucket
func newRateLimiter(cfg *config.Config) service.RateLimiter {
	return ratelimit.New(cfg, ratelimit.SystemClock())
}

// newStreamHub creates the live-subscription hub. Delivery to each
// subscriber re-runs the read policy, so access revoked mid-stream silently
// stops further events.
func newStreamHub(authorizer authz.Authorizer, logger *slog.Logger) *stream.Hub {
	authorize := func(ctx context.Context, ident *authz.Identity, event *stream.Event) bool {
		req := &authz.Request{
			Collection: event.Collection,
			Action:     authz.ActionRead,
			Identity:   ident,
			ResourceID: event.ResourceID,
			VacationID: event.VacationID,
			Old:        event.Document,
		}

		return authorizer.CanPerform(ctx, req) == nil
	}

	return stream.NewHub(authorize, logger)
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
			impl.NewUserService,
			impl.NewVacationService,
			impl.NewItineraryService,
			impl.NewMessageService,
			impl.NewLocationService,
			impl.NewReferenceService,
			impl.NewAuditService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewVacationHandler,
			handler.NewItineraryHandler,
			handler.NewMessageHandler,
			handler.NewLocationHandler,
			handler.NewReferenceHandler,
			handler.NewAuditHandler,
			handler.NewStreamHandler,
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
