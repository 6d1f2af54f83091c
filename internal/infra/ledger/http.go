// Package ledger holds the HTTP clients for the reservation and order systems
// of record. Every call is a narrow request/response; the gateway never owns
// ledger state.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"smartbox-gateway/internal/infra"
)

// transitionResponse is the envelope every ledger mutation returns.
type transitionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
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

// doTransition posts a mutation and interprets the {success, message}
// envelope. A success=false body is a remote rejection, not a transport fault.
func doTransition(ctx context.Context, httpc *http.Client, logger *slog.Logger, url string, body any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return infra.WrapClientErr(logger, infra.KindBadResponse, "marshal ledger request", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return infra.WrapClientErr(logger, infra.KindUnavailable, "build ledger request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return infra.WrapClientErr(logger, infra.KindUnavailable, "ledger request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return infra.WrapClientErr(logger, statusKind(resp.StatusCode),
			fmt.Sprintf("ledger request rejected with status %d", resp.StatusCode), nil)
	}

	var envelope transitionResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return infra.WrapClientErr(logger, infra.KindBadResponse, "decode ledger response", err)
	}
	if !envelope.Success {
		return infra.WrapClientErr(logger, infra.KindRemoteRejected, "ledger rejected transition: "+envelope.Message, nil)
	}
	return nil
}

func doGet(ctx context.Context, httpc *http.Client, logger *slog.Logger, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return infra.WrapClientErr(logger, infra.KindUnavailable, "build ledger request", err)
	}

	resp, err := httpc.Do(req)
	if err != nil {
		return infra.WrapClientErr(logger, infra.KindUnavailable, "ledger request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return infra.WrapClientErr(logger, statusKind(resp.StatusCode),
			fmt.Sprintf("ledger request rejected with status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapClientErr(logger, infra.KindBadResponse, "decode ledger response", err)
	}
	return nil
}
