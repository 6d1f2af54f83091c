// Package attempt defines the vocabulary of one unlock-and-reconcile cycle:
// the coordinator state set, the pending downstream action, and the failure
// taxonomy surfaced to callers.
package attempt

import (
	"time"

	"smartbox-gateway/internal/domain/box"
	"smartbox-gateway/internal/domain/order"
	"smartbox-gateway/internal/domain/principal"
	"smartbox-gateway/internal/domain/reservation"

	"github.com/google/uuid"
)

type State string

const (
	StateIdle                 State = "idle"
	StateVerifyingOwnership   State = "verifying_ownership"
	StateRequestingSignal     State = "requesting_signal"
	StateEmitting             State = "emitting"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateApplyingAction       State = "applying_action"
	StateSucceeded            State = "succeeded"
	StateFailed               State = "failed"
	StateCancelled            State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

// Terminal reports whether the attempt is finished. Idle is not terminal: it
// means no attempt exists at all.
func (s State) Terminal() bool {
	switch s {
	case StateSucceeded, StateFailed, StateCancelled:
		return true
	default:
		return false
	}
}

// AcceptsStart reports whether a new attempt may begin from this state.
func (s State) AcceptsStart() bool {
	return s == StateIdle || s.Terminal()
}

// AcceptsCancel reports whether cancel() applies. Succeeded and Failed are
// final; everything else, including Idle, collapses to Cancelled.
func (s State) AcceptsCancel() bool {
	return s != StateSucceeded && s != StateFailed
}

// CanTransitionTo encodes the forward edges of the state machine. Cancelled
// is reachable from every non-terminal state and is handled separately.
func (s State) CanTransitionTo(next State) bool {
	switch s {
	case StateIdle:
		return next == StateVerifyingOwnership
	case StateVerifyingOwnership:
		return next == StateRequestingSignal || next == StateFailed
	case StateRequestingSignal:
		return next == StateEmitting || next == StateFailed
	case StateEmitting:
		return next == StateAwaitingConfirmation || next == StateFailed
	case StateAwaitingConfirmation:
		return next == StateApplyingAction || next == StateFailed
	case StateApplyingAction:
		return next == StateSucceeded || next == StateFailed
	default:
		return false
	}
}

type ActionKind string

const (
	ActionNone     ActionKind = "none"
	ActionCheckIn  ActionKind = "check_in"
	ActionCheckOut ActionKind = "check_out"
	ActionFulfill  ActionKind = "fulfill"
)

func (k ActionKind) String() string {
	return string(k)
}

func (k ActionKind) IsValid() bool {
	switch k {
	case ActionNone, ActionCheckIn, ActionCheckOut, ActionFulfill:
		return true
	default:
		return false
	}
}

// RequiresNotes reports whether the action needs operator notes between
// physical confirmation and ledger dispatch.
func (k ActionKind) RequiresNotes() bool {
	return k == ActionFulfill
}

// PendingAction is the downstream business transaction an attempt will apply
// once the box is confirmed open. Exactly one of Reservation/Order is set
// depending on Kind; Notes is filled after physical confirmation for fulfill.
type PendingAction struct {
	Kind        ActionKind
	Reservation *reservation.Reservation
	Order       *order.Order
	Notes       *string
}

// FailureKind classifies terminal failures for callers: each kind carries
// different retry and messaging semantics (see the coordinator).
type FailureKind string

const (
	FailureNone       FailureKind = ""
	FailureCaller     FailureKind = "caller_error"
	FailureOwnership  FailureKind = "ownership_error"
	FailureNetwork    FailureKind = "network_error"
	FailureDecode     FailureKind = "decode_error"
	FailurePlayback   FailureKind = "playback_error"
	FailureOpenDenied FailureKind = "physical_open_denied"
	FailureAction     FailureKind = "action_error"
)

// Attempt is the in-memory, single-owner record of one unlock cycle. It is
// never persisted; the audit trail keeps its own terminal snapshot.
type Attempt struct {
	ID        uuid.UUID
	BoxID     box.ID
	HostID    box.HostID
	Principal principal.Principal
	Action    PendingAction
	StartedAt time.Time
}

func New(boxID box.ID, pr principal.Principal, action PendingAction, startedAt time.Time) *Attempt {
	return &Attempt{
		ID:        uuid.New(),
		BoxID:     boxID,
		Principal: pr,
		Action:    action,
		StartedAt: startedAt,
	}
}
