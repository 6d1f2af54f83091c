// Package audio plays open-signal waveforms into a device sink. The emitter
// loops a signal until stopped because the lock hardware may need sustained
// exposure before the human observer sees the box open.
package audio

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"

	"smartbox-gateway/internal/domain/signal"
)

var ErrEmptySignal = errors.New("signal payload is empty")

const chunkSize = 4096

// Emitter owns at most one playback at a time. Starting a new signal
// implicitly stops and releases any prior one; no playback is ever orphaned.
type Emitter struct {
	sink   io.Writer
	logger *slog.Logger

	mu      sync.Mutex
	current *playback
}

type playback struct {
	sig      *signal.Signal
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewEmitter(sink io.Writer, logger *slog.Logger) *Emitter {
	return &Emitter{
		sink:   sink,
		logger: logger,
	}
}

// Start begins looping the signal into the sink. It takes ownership of the
// signal in every case: on success the signal is released when the loop
// exits, on error it is released before Start returns. onErr is invoked at
// most once, from its own goroutine, if a sink write fails after Start
// returned.
func (e *Emitter) Start(sig *signal.Signal, onErr func(error)) error {
	if sig == nil {
		return ErrEmptySignal
	}
	if len(sig.Data()) == 0 {
		if err := sig.Release(); err != nil {
			e.logger.Warn("failed to release empty signal", "error", err)
		}
		return ErrEmptySignal
	}

	// Implicit stop of any prior playback before the new one begins.
	e.Stop()

	p := &playback{
		sig:  sig,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	e.mu.Lock()
	e.current = p
	e.mu.Unlock()

	go e.loop(p, onErr)
	return nil
}

// Stop halts the active playback and returns only once its loop has exited
// and the signal resource is released. Safe to call repeatedly, including
// when nothing is playing.
func (e *Emitter) Stop() {
	e.mu.Lock()
	p := e.current
	e.current = nil
	e.mu.Unlock()

	if p == nil {
		return
	}
	p.halt()
}

func (e *Emitter) loop(p *playback, onErr func(error)) {
	defer close(p.done)
	defer func() {
		if err := p.sig.Release(); err != nil {
			e.logger.Warn("failed to release signal after playback", "error", err)
		}
	}()

	data := p.sig.Data()
	for {
		for offset := 0; offset < len(data); offset += chunkSize {
			select {
			case <-p.stop:
				return
			default:
			}

			end := offset + chunkSize
			if end > len(data) {
				end = len(data)
			}
			if _, err := e.sink.Write(data[offset:end]); err != nil {
				e.detach(p)
				if onErr != nil {
					go onErr(err)
				}
				return
			}
		}
	}
}

// detach clears the current playback if it is still p, so a later Stop does
// not block on an already-dead loop.
func (e *Emitter) detach(p *playback) {
	e.mu.Lock()
	if e.current == p {
		e.current = nil
	}
	e.mu.Unlock()
	p.stopOnce.Do(func() { close(p.stop) })
}

func (p *playback) halt() {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}

// OpenDeviceSink opens the configured audio device (or pipe) for writing.
func OpenDeviceSink(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY, 0)
}
