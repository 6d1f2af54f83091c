// Package lockctl talks to the lock-controller backend: it issues one-time
// open signals and knows which boxes each host owns.
package lockctl

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"smartbox-gateway/internal/domain/box"
	"smartbox-gateway/internal/domain/signal"
	"smartbox-gateway/internal/infra"
	"smartbox-gateway/internal/pkg/config"
)

type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.LockCtlConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type openSignalRequest struct {
	BoxID  int64 `json:"box_id"`
	HostID int64 `json:"host_id"`
}

type openSignalResponse struct {
	Data string `json:"data"`
}

// RequestSignal fetches a base64-encoded audio payload bound to this single
// request and spools the decoded waveform to a temp file owned by the caller.
func (c *Client) RequestSignal(ctx context.Context, boxID box.ID, hostID box.HostID) (*signal.Signal, error) {
	payload, err := json.Marshal(openSignalRequest{BoxID: boxID.Int64(), HostID: hostID.Int64()})
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindBadResponse, "marshal open-signal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/boxes/open-signal", bytes.NewReader(payload))
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindUnavailable, "build open-signal request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindUnavailable, "open-signal request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, infra.WrapClientErr(c.logger, statusKind(resp.StatusCode),
			fmt.Sprintf("open-signal request rejected with status %d", resp.StatusCode), nil)
	}

	var body openSignalResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindBadResponse, "decode open-signal response", err)
	}

	data, err := base64.StdEncoding.DecodeString(body.Data)
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindBadResponse, "open-signal payload is not valid base64", err)
	}
	if len(data) == 0 {
		return nil, infra.WrapClientErr(c.logger, infra.KindBadResponse, "open-signal payload is empty", nil)
	}

	tmp, err := os.CreateTemp("", "boxsignal-*.wav")
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindBadResponse, "spool open-signal payload", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, infra.WrapClientErr(c.logger, infra.KindBadResponse, "spool open-signal payload", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, infra.WrapClientErr(c.logger, infra.KindBadResponse, "spool open-signal payload", err)
	}

	return signal.New(data, tmp.Name()), nil
}

type boxListResponse struct {
	Boxes []struct {
		ID int64 `json:"id"`
	} `json:"boxes"`
}

// HostBoxes returns the ids of every box the host owns.
func (c *Client) HostBoxes(ctx context.Context, hostID box.HostID) ([]box.ID, error) {
	url := fmt.Sprintf("%s/v1/hosts/%d/boxes", c.baseURL, hostID.Int64())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindUnavailable, "build box-list request", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindUnavailable, "box-list request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, infra.WrapClientErr(c.logger, statusKind(resp.StatusCode),
			fmt.Sprintf("box-list request rejected with status %d", resp.StatusCode), nil)
	}

	var body boxListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindBadResponse, "decode box-list response", err)
	}

	ids := make([]box.ID, 0, len(body.Boxes))
	for _, b := range body.Boxes {
		ids = append(ids, box.ID(b.ID))
	}
	return ids, nil
}

func statusKind(status int) infra.ClientErrorKind {
	switch {
	case status == http.StatusNotFound:
		return infra.KindNotFound
	case status >= 500:
		return infra.KindUnavailable
	default:
		return infra.KindRemoteRejected
	}
}
