package infra

import (
	"errors"
	"log/slog"

	"smartbox-gateway/internal/pkg/errs"
)

type ClientErrorKind string

type ClientError struct {
	Kind ClientErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e ClientError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e ClientError) Unwrap() error {
	return e.err
}

func WrapClientErr(slogger *slog.Logger, kind ClientErrorKind, msg string, err error) error {
	slogger.Error("Client error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return ClientError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ClientErrorKind) bool {
	var e ClientError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Remote-call error kinds shared by the lock-controller and ledger clients.
const (
	KindNotFound       ClientErrorKind = "NOT_FOUND"
	KindUnavailable    ClientErrorKind = "UNAVAILABLE"     // transport failure, timeout
	KindBadResponse    ClientErrorKind = "BAD_RESPONSE"    // undecodable or malformed body
	KindRemoteRejected ClientErrorKind = "REMOTE_REJECTED" // backend said no
)
