//go:build unit

package lockctl_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"smartbox-gateway/internal/infra"
	"smartbox-gateway/internal/infra/lockctl"
	"smartbox-gateway/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.Handler) *lockctl.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return lockctl.NewClient(config.LockCtlConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, slog.New(slog.DiscardHandler))
}

func TestRequestSignal(t *testing.T) {
	t.Run("decodes and spools the payload", func(t *testing.T) {
		waveform := []byte("RIFF....WAVEfmt fake waveform bytes")
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/boxes/open-signal", r.URL.Path)

			var body struct {
				BoxID  int64 `json:"box_id"`
				HostID int64 `json:"host_id"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.EqualValues(t, 42, body.BoxID)
			assert.EqualValues(t, 7, body.HostID)

			json.NewEncoder(w).Encode(map[string]string{
				"data": base64.StdEncoding.EncodeToString(waveform),
			})
		}))

		sig, err := client.RequestSignal(context.Background(), 42, 7)
		require.NoError(t, err)
		assert.Equal(t, waveform, sig.Data())

		// The waveform is spooled to a temp file released with the signal.
		onDisk, err := os.ReadFile(sig.Path())
		require.NoError(t, err)
		assert.Equal(t, waveform, onDisk)

		require.NoError(t, sig.Release())
		_, statErr := os.Stat(sig.Path())
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("invalid base64 is a bad response", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"data": "not-base64!!"})
		}))

		_, err := client.RequestSignal(context.Background(), 42, 7)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBadResponse))
	})

	t.Run("empty payload is a bad response", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"data": ""})
		}))

		_, err := client.RequestSignal(context.Background(), 42, 7)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBadResponse))
	})

	t.Run("upstream 5xx is unavailable", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))

		_, err := client.RequestSignal(context.Background(), 42, 7)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})

	t.Run("unknown box is not found", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.RequestSignal(context.Background(), 42, 7)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unreachable backend is unavailable", func(t *testing.T) {
		client := lockctl.NewClient(config.LockCtlConfig{
			BaseURL: "http://127.0.0.1:1",
			Timeout: 200 * time.Millisecond,
		}, slog.New(slog.DiscardHandler))

		_, err := client.RequestSignal(context.Background(), 42, 7)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})
}

func TestHostBoxes(t *testing.T) {
	t.Run("lists owned box ids", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/hosts/7/boxes", r.URL.Path)
			w.Write([]byte(`{"boxes":[{"id":41},{"id":42}]}`))
		}))

		ids, err := client.HostBoxes(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, ids, 2)
		assert.EqualValues(t, 41, ids[0])
		assert.EqualValues(t, 42, ids[1])
	})

	t.Run("empty list for unknown host body", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"boxes":[]}`))
		}))

		ids, err := client.HostBoxes(context.Background(), 9)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("malformed body is a bad response", func(t *testing.T) {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"boxes": "nope"`))
		}))

		_, err := client.HostBoxes(context.Background(), 7)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBadResponse))
	})
}
