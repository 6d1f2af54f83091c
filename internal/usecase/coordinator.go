package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"smartbox-gateway/internal/domain/attempt"
	"smartbox-gateway/internal/domain/box"
	"smartbox-gateway/internal/domain/principal"
	"smartbox-gateway/internal/infra"
	"smartbox-gateway/internal/pkg/clock"
	"smartbox-gateway/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAttemptInFlight        = errs.New("unlock attempt already in flight")
	ErrConfirmationNotPending = errs.New("no confirmation pending")
	ErrNotesNotExpected       = errs.New("notes not expected for this attempt")
	ErrAttemptSuperseded      = errs.New("attempt was cancelled or superseded")
	ErrSignalRequestFailed    = errs.New("open signal request failed")
	ErrPlaybackFailed         = errs.New("signal playback failed")
	ErrActionFailed           = errs.New("box opened, but the record was not updated")
)

// AttemptView is the observable state of a coordinator, bound into UI/API
// responses.
type AttemptView struct {
	State         attempt.State
	AttemptID     uuid.UUID
	BoxID         box.ID
	Action        attempt.ActionKind
	NotesRequired bool
	FailureKind   attempt.FailureKind
	Message       string
}

// UnlockCoordinator sequences one unlock-and-reconcile cycle: ownership
// verification, signal request, emission, human confirmation, and exactly one
// downstream action. At most one attempt is active per coordinator.
type UnlockCoordinator interface {
	StartAttempt(ctx context.Context, boxID box.ID, pr principal.Principal, action attempt.PendingAction) (AttemptView, error)
	Confirm(ctx context.Context, successful bool) (AttemptView, error)
	SubmitNotes(ctx context.Context, notes string) (AttemptView, error)
	Cancel() AttemptView
	Reset() AttemptView
	CurrentView() AttemptView
}

type coordinatorImpl struct {
	mu            sync.Mutex
	gen           uint64
	state         attempt.State
	att           *attempt.Attempt
	emitting      bool
	awaitingNotes bool
	failure       attempt.FailureKind
	message       string

	verifier   OwnershipVerifier
	signals    SignalClient
	emitter    SignalEmitter
	strategies *ActionStrategies
	audit      AttemptAudit
	outcomes   OutcomePublisher
	clock      clock.Clock
	logger     *slog.Logger
}

func NewUnlockCoordinator(
	verifier OwnershipVerifier,
	signals SignalClient,
	emitter SignalEmitter,
	strategies *ActionStrategies,
	audit AttemptAudit,
	outcomes OutcomePublisher,
	clk clock.Clock,
	logger *slog.Logger,
) UnlockCoordinator {
	return &coordinatorImpl{
		state:      attempt.StateIdle,
		verifier:   verifier,
		signals:    signals,
		emitter:    emitter,
		strategies: strategies,
		audit:      audit,
		outcomes:   outcomes,
		clock:      clk,
		logger:     logger,
	}
}

func (c *coordinatorImpl) StartAttempt(
	ctx context.Context,
	boxID box.ID,
	pr principal.Principal,
	action attempt.PendingAction,
) (AttemptView, error) {
	c.mu.Lock()
	if !c.state.AcceptsStart() {
		view := c.viewLocked()
		c.mu.Unlock()
		return view, ErrAttemptInFlight
	}
	c.clearLocked()
	c.gen++
	gen := c.gen
	c.att = attempt.New(boxID, pr, action, c.clock.Now())
	c.state = attempt.StateVerifyingOwnership
	c.mu.Unlock()

	// Ownership failure must never trigger a signal request or emission.
	hostID, err := c.verifier.Verify(ctx, boxID, pr, action)
	if err != nil {
		return c.failAttempt(gen, classifyVerifyFailure(err), err)
	}

	c.mu.Lock()
	if c.gen != gen || c.state != attempt.StateVerifyingOwnership {
		view := c.viewLocked()
		c.mu.Unlock()
		return view, ErrAttemptSuperseded
	}
	c.att.HostID = hostID
	c.state = attempt.StateRequestingSignal
	c.mu.Unlock()

	sig, err := c.signals.RequestSignal(ctx, boxID, hostID)
	if err != nil {
		return c.failAttempt(gen, classifySignalFailure(err), errs.Mark(err, ErrSignalRequestFailed))
	}

	c.mu.Lock()
	if c.gen != gen || c.state != attempt.StateRequestingSignal {
		view := c.viewLocked()
		c.mu.Unlock()
		// Arrived after cancel/reset: discard the payload, never play it.
		if releaseErr := sig.Release(); releaseErr != nil {
			c.logger.Warn("failed to release stale signal payload", "error", releaseErr)
		}
		return view, ErrAttemptSuperseded
	}

	c.state = attempt.StateEmitting
	if startErr := c.emitter.Start(sig, func(playErr error) { c.playbackFailed(gen, playErr) }); startErr != nil {
		return c.failLockedAndRecord(attempt.FailurePlayback, errs.Mark(startErr, ErrPlaybackFailed))
	}
	c.emitting = true
	c.state = attempt.StateAwaitingConfirmation
	view := c.viewLocked()
	c.mu.Unlock()
	return view, nil
}

// Confirm resolves the human observation of the physical box. The emitter is
// stopped before anything else happens on this edge; audio never continues
// past it. A confirmation arriving after the attempt already resolved is a
// no-op.
func (c *coordinatorImpl) Confirm(ctx context.Context, successful bool) (AttemptView, error) {
	c.mu.Lock()
	switch {
	case c.state == attempt.StateAwaitingConfirmation:
		// fall through
	case c.state == attempt.StateApplyingAction || c.state.Terminal():
		view := c.viewLocked()
		c.mu.Unlock()
		return view, nil
	default:
		view := c.viewLocked()
		c.mu.Unlock()
		return view, ErrConfirmationNotPending
	}

	gen := c.gen
	c.stopEmissionLocked()

	if !successful {
		c.state = attempt.StateFailed
		c.failure = attempt.FailureOpenDenied
		c.message = "The box did not open. Nothing was recorded; scan again to retry."
		att := c.att
		view := c.viewLocked()
		c.mu.Unlock()
		c.recordOutcome(att, "failed", attempt.FailureOpenDenied)
		return view, nil
	}

	c.state = attempt.StateApplyingAction
	if c.att.Action.Kind.RequiresNotes() && c.att.Action.Notes == nil {
		// Notes are only meaningful once the box is known to be open; the
		// strategy dispatch waits for SubmitNotes.
		c.awaitingNotes = true
		view := c.viewLocked()
		c.mu.Unlock()
		return view, nil
	}
	pr := c.att.Principal
	action := c.att.Action
	c.mu.Unlock()

	return c.applyAction(ctx, gen, pr, action)
}

func (c *coordinatorImpl) SubmitNotes(ctx context.Context, notes string) (AttemptView, error) {
	c.mu.Lock()
	if c.att == nil || c.state != attempt.StateApplyingAction || !c.awaitingNotes {
		view := c.viewLocked()
		c.mu.Unlock()
		return view, ErrNotesNotExpected
	}

	c.att.Action.Notes = normalizeNotes(notes)
	c.awaitingNotes = false
	gen := c.gen
	pr := c.att.Principal
	action := c.att.Action
	c.mu.Unlock()

	return c.applyAction(ctx, gen, pr, action)
}

func (c *coordinatorImpl) Cancel() AttemptView {
	c.mu.Lock()
	if !c.state.AcceptsCancel() {
		view := c.viewLocked()
		c.mu.Unlock()
		return view
	}

	prev := c.state
	c.gen++
	c.stopEmissionLocked()
	c.state = attempt.StateCancelled
	c.awaitingNotes = false
	att := c.att
	view := c.viewLocked()
	c.mu.Unlock()

	if att != nil && prev != attempt.StateIdle && prev != attempt.StateCancelled {
		c.recordOutcome(att, "cancelled", attempt.FailureNone)
	}
	return view
}

// Reset clears the attempt and returns to Idle. Emission is force-stopped
// even though it should already be stopped; a reset mid-flight behaves like a
// cancel.
func (c *coordinatorImpl) Reset() AttemptView {
	c.mu.Lock()
	prev := c.state
	att := c.att
	c.gen++
	c.emitting = false
	c.emitter.Stop()
	c.clearLocked()
	c.state = attempt.StateIdle
	view := c.viewLocked()
	c.mu.Unlock()

	if att != nil && !prev.Terminal() && prev != attempt.StateIdle {
		c.recordOutcome(att, "cancelled", attempt.FailureNone)
	}
	return view
}

func (c *coordinatorImpl) CurrentView() AttemptView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *coordinatorImpl) applyAction(
	ctx context.Context,
	gen uint64,
	pr principal.Principal,
	action attempt.PendingAction,
) (AttemptView, error) {
	strategy, ok := c.strategies.ForKind(action.Kind)
	if !ok {
		return c.failAttempt(gen, attempt.FailureAction, ErrActionNotConfigured)
	}

	outcome, err := strategy.Apply(ctx, pr, action)

	c.mu.Lock()
	if c.gen != gen || c.state != attempt.StateApplyingAction {
		view := c.viewLocked()
		c.mu.Unlock()
		return view, ErrAttemptSuperseded
	}

	if err != nil {
		// The box physically opened; this failure must read as "record not
		// updated", never as "box still closed".
		c.state = attempt.StateFailed
		c.failure = attempt.FailureAction
		c.message = "Box opened, but the record could not be updated."
		att := c.att
		view := c.viewLocked()
		c.mu.Unlock()
		c.recordOutcome(att, "failed", attempt.FailureAction)
		return view, errs.Mark(err, ErrActionFailed)
	}

	c.state = attempt.StateSucceeded
	c.message = outcome.Message
	att := c.att
	view := c.viewLocked()
	c.mu.Unlock()
	c.recordOutcome(att, "succeeded", attempt.FailureNone)
	return view, nil
}

// playbackFailed is called from the emitter goroutine when the audio device
// fails mid-loop. Late reports for a superseded generation are discarded.
func (c *coordinatorImpl) playbackFailed(gen uint64, playErr error) {
	c.mu.Lock()
	if c.gen != gen || (c.state != attempt.StateEmitting && c.state != attempt.StateAwaitingConfirmation) {
		c.mu.Unlock()
		return
	}
	c.stopEmissionLocked()
	c.state = attempt.StateFailed
	c.failure = attempt.FailurePlayback
	c.message = "Signal was sent, but playback failed. Scan again to retry."
	att := c.att
	c.mu.Unlock()

	c.logger.Error("signal playback failed", "error", playErr, "attempt_id", att.ID)
	c.recordOutcome(att, "failed", attempt.FailurePlayback)
}

func (c *coordinatorImpl) failAttempt(gen uint64, kind attempt.FailureKind, cause error) (AttemptView, error) {
	c.mu.Lock()
	if c.gen != gen || c.state.Terminal() || c.state == attempt.StateIdle {
		view := c.viewLocked()
		c.mu.Unlock()
		return view, ErrAttemptSuperseded
	}
	return c.failLockedAndRecord(kind, cause)
}

// failLockedAndRecord finishes a failure transition. The mutex must be held;
// it is released before returning.
func (c *coordinatorImpl) failLockedAndRecord(kind attempt.FailureKind, cause error) (AttemptView, error) {
	c.stopEmissionLocked()
	c.state = attempt.StateFailed
	c.failure = kind
	c.message = failureMessage(kind)
	att := c.att
	view := c.viewLocked()
	c.mu.Unlock()

	c.recordOutcome(att, "failed", kind)
	return view, cause
}

func (c *coordinatorImpl) stopEmissionLocked() {
	if !c.emitting {
		return
	}
	c.emitting = false
	c.emitter.Stop()
}

func (c *coordinatorImpl) clearLocked() {
	c.att = nil
	c.failure = attempt.FailureNone
	c.message = ""
	c.awaitingNotes = false
}

func (c *coordinatorImpl) viewLocked() AttemptView {
	view := AttemptView{
		State:         c.state,
		NotesRequired: c.awaitingNotes,
		FailureKind:   c.failure,
		Message:       c.message,
	}
	if c.att != nil {
		view.AttemptID = c.att.ID
		view.BoxID = c.att.BoxID
		view.Action = c.att.Action.Kind
	}
	return view
}

// recordOutcome appends the terminal snapshot to the audit trail and publishes
// the outcome event. Both are best-effort: the physical outcome already
// happened, so a recording failure is logged, never surfaced to the attempt.
func (c *coordinatorImpl) recordOutcome(att *attempt.Attempt, outcome string, kind attempt.FailureKind) {
	endedAt := c.clock.Now()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		rec := AuditRecord{
			AttemptID:     att.ID,
			BoxID:         att.BoxID.Int64(),
			PrincipalID:   att.Principal.ID,
			PrincipalRole: att.Principal.Role.String(),
			Action:        att.Action.Kind.String(),
			Outcome:       outcome,
			FailureKind:   string(kind),
			StartedAt:     att.StartedAt,
			EndedAt:       endedAt,
		}
		if err := c.audit.Record(ctx, rec); err != nil {
			c.logger.Error("failed to record attempt audit", "error", err, "attempt_id", att.ID)
		}

		ev := OutcomeEvent{
			AttemptID:     att.ID.String(),
			BoxID:         att.BoxID.Int64(),
			PrincipalID:   att.Principal.ID,
			PrincipalRole: att.Principal.Role.String(),
			Action:        att.Action.Kind.String(),
			Outcome:       outcome,
			FailureKind:   string(kind),
			OccurredAt:    endedAt,
		}
		if err := c.outcomes.PublishOutcome(ctx, ev); err != nil {
			c.logger.Error("failed to publish attempt outcome", "error", err, "attempt_id", att.ID)
		}
	}()
}

// normalizeNotes trims operator notes; an empty string is normalized to
// absent so the ledger never stores blank notes.
func normalizeNotes(notes string) *string {
	trimmed := strings.TrimSpace(notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func classifyVerifyFailure(err error) attempt.FailureKind {
	switch {
	case errors.Is(err, ErrBoxMismatch):
		return attempt.FailureCaller
	case errors.Is(err, ErrOwnershipLookupFailed):
		return attempt.FailureNetwork
	default:
		return attempt.FailureOwnership
	}
}

func classifySignalFailure(err error) attempt.FailureKind {
	if infra.IsKind(err, infra.KindBadResponse) {
		return attempt.FailureDecode
	}
	return attempt.FailureNetwork
}

func failureMessage(kind attempt.FailureKind) string {
	switch kind {
	case attempt.FailureCaller:
		return "This QR code does not belong to your reservation."
	case attempt.FailureOwnership:
		return "You are not entitled to open this box."
	case attempt.FailureNetwork:
		return "A network error occurred. Scan again to retry."
	case attempt.FailureDecode:
		return "The open signal could not be decoded. Scan again to retry."
	case attempt.FailurePlayback:
		return "Signal was sent, but playback failed. Scan again to retry."
	case attempt.FailureAction:
		return "Box opened, but the record could not be updated."
	default:
		return "The unlock attempt failed."
	}
}
