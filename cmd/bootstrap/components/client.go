package components

import (
	"io"
	"log/slog"

	"smartbox-gateway/internal/infra/audio"
	"smartbox-gateway/internal/infra/audit"
	"smartbox-gateway/internal/infra/directory"
	"smartbox-gateway/internal/infra/ledger"
	"smartbox-gateway/internal/infra/lockctl"
	"smartbox-gateway/internal/pkg/config"
	"smartbox-gateway/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientModule wires every outbound dependency: the lock-controller client,
// ledger clients, the Redis-cached box directory, the audit store, and the
// audio device sink.
var ClientModule = fx.Module("clients",
	fx.Provide(
		newLockCtlClient,
		newSignalClient,
		newBoxDirectory,
		newReservationLedger,
		newOrderLedger,
		newAuditStore,
		newAttemptAudit,
		newAttemptAuditReader,
		newAudioSink,
	),
)

func newLockCtlClient(cfg config.Config, logger *slog.Logger) *lockctl.Client {
	return lockctl.NewClient(cfg.LockCtl, logger)
}

func newSignalClient(client *lockctl.Client) usecase.SignalClient {
	return client
}

func newBoxDirectory(client *lockctl.Client, rdb *redis.Client, cfg config.Config, logger *slog.Logger) usecase.BoxDirectory {
	return directory.NewCachedDirectory(client, rdb, cfg.Redis.OwnershipTTL, logger)
}

func newReservationLedger(cfg config.Config, logger *slog.Logger) usecase.ReservationLedger {
	return ledger.NewReservationClient(cfg.Ledger, logger)
}

func newOrderLedger(cfg config.Config, logger *slog.Logger) usecase.OrderLedger {
	return ledger.NewOrderClient(cfg.Ledger, logger)
}

func newAuditStore(pool *pgxpool.Pool, logger *slog.Logger) *audit.Store {
	return audit.NewStore(pool, logger)
}

func newAttemptAudit(store *audit.Store) usecase.AttemptAudit {
	return store
}

func newAttemptAuditReader(store *audit.Store) usecase.AttemptAuditReader {
	return store
}

func newAudioSink(cfg config.Config, logger *slog.Logger) (io.Writer, error) {
	sink, err := audio.OpenDeviceSink(cfg.Audio.DevicePath)
	if err != nil {
		return nil, err
	}
	logger.Info("audio sink opened", "device", cfg.Audio.DevicePath)
	return sink, nil
}
