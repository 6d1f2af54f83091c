// Package qr turns scanned QR payloads into box identifiers. The payload
// format is a bare decimal integer; anything else is a caller error and never
// reaches ownership verification.
package qr

import (
	"errors"
	"strconv"
	"strings"

	"smartbox-gateway/internal/domain/box"
)

var ErrInvalidPayload = errors.New("invalid QR code")

func ParseBoxID(payload string) (box.ID, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return 0, ErrInvalidPayload
	}
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPayload
	}
	return box.ID(id), nil
}
