// The parksync binary refreshes the reference catalog and live wait-time
// boards from the upstream park API, then exits. It is meant to run on a
// schedule, frequently for wait times and daily for the catalog.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"parkplan/config"
	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/service"
	logs "parkplan/internal/infra/log"
	"parkplan/internal/infra/persistence/firestore"
	"parkplan/internal/infra/persistence/resolver"
	"parkplan/internal/infra/persistence/rtdb"
	"parkplan/internal/infra/pubsub"
	"parkplan/internal/infra/ratelimit"
	"parkplan/internal/infra/stream"
	"parkplan/internal/infra/themeparks"
	"parkplan/internal/usecase"
	"parkplan/internal/usecase/impl"

	"go.uber.org/fx"
)

// importerUID identifies the importer's service identity in audit trails.
const importerUID = "catalog-importer"

type runSyncParams struct {
	fx.In

	Ctx        context.Context
	Logger     *slog.Logger
	SyncUC     usecase.SyncUsecase
	Shutdowner fx.Shutdowner
}

var catalogFlag = flag.Bool("catalog", false, "refresh the full catalog instead of wait times only")

func main() {
	flag.Parse()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			runSync,
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
			firestore.NewVacationRepository,
			firestore.NewReferenceRepository,
			rtdb.NewWaitTimeRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			themeparks.NewClient,
			resolver.NewMembershipResolver,
			newAuthorizer,
			newRateLimiter,
			newStreamHub,
			stream.NewBroadcaster,
			pubsub.NewEventPublisher,
		),
	)
}

// newAuthorizer wires the policy engine behind its interface. The importer
// runs the same policy as every other caller; its writes pass because the
// identity carries the admin claim.
func newAuthorizer(membershipResolver authz.MembershipResolver) authz.Authorizer {
	return authz.NewEngine(membershipResolver)
}

// newRateLimiter creates the per-identity token bucket
func newRateLimiter(cfg *config.Config) service.RateLimiter {
	return ratelimit.New(cfg, ratelimit.SystemClock())
}

// newStreamHub creates the hub wait-time broadcasts flow through. The
// importer has no HTTP subscribers of its own, but keeps the broadcast path
// identical to the API server's.
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

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSyncService,
		),
	)
}

func runSync(params runSyncParams) {
	go func() {
		ident := &authz.Identity{UID: importerUID, Admin: true}

		var err error
		if *catalogFlag {
			err = params.SyncUC.SyncCatalog(params.Ctx, ident)
		} else {
			err = params.SyncUC.SyncWaitTimes(params.Ctx, ident)
		}

		if err != nil {
			params.Logger.Error("Sync failed", slog.Any("error", err))
			if shutdownErr := params.Shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
				os.Exit(1)
			}

			return
		}

		if err := params.Shutdowner.Shutdown(); err != nil {
			os.Exit(1)
		}
	}()
}
