//go:build integration

package audit_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"smartbox-gateway/internal/infra/audit"
	"smartbox-gateway/internal/usecase"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
	testDB       = "audit_test"
)

type AuditStoreTestSuite struct {
	suite.Suite
	container testcontainers.Container
	pool      *pgxpool.Pool
	store     *audit.Store
}

func (s *AuditStoreTestSuite) SetupSuite() {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort(nat.Port("5432/tcp")).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, nat.Port("5432/tcp"))
	s.Require().NoError(err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testUser, testPassword, host, port.Port(), testDB)
	pool, err := pgxpool.New(ctx, dsn)
	s.Require().NoError(err)
	s.pool = pool

	s.Require().NoError(audit.Migrate(ctx, pool))
	s.store = audit.NewStore(pool, slog.New(slog.DiscardHandler))
}

func (s *AuditStoreTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *AuditStoreTestSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE unlock_attempts")
	s.Require().NoError(err)
}

func TestAuditStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	suite.Run(t, new(AuditStoreTestSuite))
}

func record(boxID int64, outcome string, endedAt time.Time) usecase.AuditRecord {
	return usecase.AuditRecord{
		AttemptID:     uuid.New(),
		BoxID:         boxID,
		PrincipalID:   100,
		PrincipalRole: "guest",
		Action:        "check_in",
		Outcome:       outcome,
		FailureKind:   "",
		StartedAt:     endedAt.Add(-30 * time.Second),
		EndedAt:       endedAt,
	}
}

func (s *AuditStoreTestSuite) TestRecordAndReadBack() {
	ctx := context.Background()
	endedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rec := record(42, "succeeded", endedAt)
	s.Require().NoError(s.store.Record(ctx, rec))

	got, err := s.store.RecentForBox(ctx, 42, 10)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(rec.AttemptID, got[0].AttemptID)
	s.Equal(rec.Outcome, got[0].Outcome)
	s.True(rec.EndedAt.Equal(got[0].EndedAt))
}

func (s *AuditStoreTestSuite) TestRecentForBoxOrdersNewestFirst() {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := range 5 {
		rec := record(42, "succeeded", base.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.store.Record(ctx, rec))
	}
	// A different box must not bleed into the result.
	s.Require().NoError(s.store.Record(ctx, record(99, "failed", base.Add(time.Hour))))

	got, err := s.store.RecentForBox(ctx, 42, 3)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	for i := 1; i < len(got); i++ {
		s.True(got[i-1].EndedAt.After(got[i].EndedAt), "records must be newest first")
	}
	for _, rec := range got {
		s.EqualValues(42, rec.BoxID)
	}
}

func (s *AuditStoreTestSuite) TestRecentForBoxClampsLimit() {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := range 25 {
		rec := record(42, "succeeded", base.Add(time.Duration(i)*time.Second))
		s.Require().NoError(s.store.Record(ctx, rec))
	}

	// Zero and out-of-range limits fall back to the default of 20.
	for _, limit := range []int{0, -1, 1000} {
		got, err := s.store.RecentForBox(ctx, 42, limit)
		require.NoError(s.T(), err)
		s.Len(got, 20, "limit %d", limit)
	}
}
