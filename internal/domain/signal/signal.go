// Package signal holds the one-time open-signal payload. Each payload is
// bound to a single unlock attempt, backed by a temp file that must be
// released on every exit path; payloads are never replayed across attempts.
package signal

import (
	"os"
	"sync"
)

type Signal struct {
	data []byte
	path string

	releaseOnce sync.Once
	releaseErr  error
}

// New wraps decoded waveform bytes and the temp file they were spooled to.
// path may be empty when no file backs the payload.
func New(data []byte, path string) *Signal {
	return &Signal{data: data, path: path}
}

func (s *Signal) Data() []byte {
	return s.data
}

func (s *Signal) Path() string {
	return s.path
}

// Release deletes the backing temp file. Safe to call more than once; later
// calls return the first result.
func (s *Signal) Release() error {
	s.releaseOnce.Do(func() {
		s.data = nil
		if s.path == "" {
			return
		}
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			s.releaseErr = err
		}
	})
	return s.releaseErr
}
