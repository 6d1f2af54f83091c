//go:build unit

package directory_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"smartbox-gateway/internal/domain/box"
	"smartbox-gateway/internal/infra/directory"
	usecasemock "smartbox-gateway/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Without Redis every lookup goes straight to the backend; the cache is an
// optimization, never a requirement.
func TestHostBoxesWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := usecasemock.NewMockBoxDirectory(ctrl)
	dir := directory.NewCachedDirectory(inner, nil, 30*time.Second, slog.New(slog.DiscardHandler))

	want := []box.ID{41, 42}
	inner.EXPECT().HostBoxes(gomock.Any(), box.HostID(7)).Return(want, nil).Times(2)

	for range 2 {
		ids, err := dir.HostBoxes(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, want, ids)
	}
}

func TestHostBoxesBackendErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := usecasemock.NewMockBoxDirectory(ctrl)
	dir := directory.NewCachedDirectory(inner, nil, 30*time.Second, slog.New(slog.DiscardHandler))

	backendErr := errors.New("lockctl down")
	inner.EXPECT().HostBoxes(gomock.Any(), box.HostID(7)).Return(nil, backendErr)

	_, err := dir.HostBoxes(context.Background(), 7)
	assert.ErrorIs(t, err, backendErr)
}
