package components

import (
	"context"
	"io"
	"log/slog"

	"smartbox-gateway/internal/infra/audio"
	"smartbox-gateway/internal/pkg/clock"
	"smartbox-gateway/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewOwnershipVerifier,
		usecase.NewActionStrategies,
		newCoordinatorFactory,
		newHub,
		usecase.NewUnlockCommands,
		usecase.NewAttemptQueries,
	),
)

// newCoordinatorFactory builds per-principal coordinators. Each coordinator
// owns its own emitter so concurrent principals never share playback state;
// the device sink itself is shared and serialized by the emitter's writes.
func newCoordinatorFactory(
	verifier usecase.OwnershipVerifier,
	signals usecase.SignalClient,
	strategies *usecase.ActionStrategies,
	audit usecase.AttemptAudit,
	outcomes usecase.OutcomePublisher,
	clk clock.Clock,
	sink io.Writer,
	logger *slog.Logger,
) usecase.CoordinatorFactory {
	return func() usecase.UnlockCoordinator {
		return usecase.NewUnlockCoordinator(
			verifier,
			signals,
			audio.NewEmitter(sink, logger),
			strategies,
			audit,
			outcomes,
			clk,
			logger,
		)
	}
}

func newHub(lc fx.Lifecycle, factory usecase.CoordinatorFactory) *usecase.Hub {
	hub := usecase.NewHub(factory)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.DisposeAll()
			return nil
		},
	})
	return hub
}
