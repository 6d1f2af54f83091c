//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"smartbox-gateway/internal/domain/attempt"
	"smartbox-gateway/internal/domain/box"
	"smartbox-gateway/internal/domain/signal"
	"smartbox-gateway/internal/infra"
	"smartbox-gateway/internal/pkg/clock"
	"smartbox-gateway/internal/usecase"
	"smartbox-gateway/tests/common/builder"
	usecasemock "smartbox-gateway/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CoordinatorTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	verifier     *usecasemock.MockOwnershipVerifier
	signals      *usecasemock.MockSignalClient
	emitter      *usecasemock.MockSignalEmitter
	reservations *usecasemock.MockReservationLedger
	orders       *usecasemock.MockOrderLedger
	audit        *usecasemock.MockAttemptAudit
	outcomes     *usecasemock.MockOutcomePublisher
	clock        *clock.FixedClock
	coordinator  usecase.UnlockCoordinator

	auditCh chan usecase.AuditRecord
	eventCh chan usecase.OutcomeEvent
}

func (s *CoordinatorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.verifier = usecasemock.NewMockOwnershipVerifier(s.mockCtrl)
	s.signals = usecasemock.NewMockSignalClient(s.mockCtrl)
	s.emitter = usecasemock.NewMockSignalEmitter(s.mockCtrl)
	s.reservations = usecasemock.NewMockReservationLedger(s.mockCtrl)
	s.orders = usecasemock.NewMockOrderLedger(s.mockCtrl)
	s.audit = usecasemock.NewMockAttemptAudit(s.mockCtrl)
	s.outcomes = usecasemock.NewMockOutcomePublisher(s.mockCtrl)
	s.clock = clock.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	// Terminal outcomes are recorded from a background goroutine; buffer them
	// so tests can assert on the snapshot without racing teardown.
	s.auditCh = make(chan usecase.AuditRecord, 4)
	s.eventCh = make(chan usecase.OutcomeEvent, 4)
	s.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec usecase.AuditRecord) error {
			s.auditCh <- rec
			return nil
		}).AnyTimes()
	s.outcomes.EXPECT().PublishOutcome(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev usecase.OutcomeEvent) error {
			s.eventCh <- ev
			return nil
		}).AnyTimes()

	s.coordinator = usecase.NewUnlockCoordinator(
		s.verifier,
		s.signals,
		s.emitter,
		usecase.NewActionStrategies(s.reservations, s.orders, s.clock),
		s.audit,
		s.outcomes,
		s.clock,
		slog.New(slog.DiscardHandler),
	)
}

func (s *CoordinatorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCoordinatorSuite(t *testing.T) {
	suite.Run(t, new(CoordinatorTestSuite))
}

func (s *CoordinatorTestSuite) waitAudit() usecase.AuditRecord {
	select {
	case rec := <-s.auditCh:
		return rec
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for audit record")
		return usecase.AuditRecord{}
	}
}

func (s *CoordinatorTestSuite) waitEvent() usecase.OutcomeEvent {
	select {
	case ev := <-s.eventCh:
		return ev
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for outcome event")
		return usecase.OutcomeEvent{}
	}
}

// startToAwaitingConfirmation drives a fresh attempt through verification,
// signal request, and emission start, returning the emitter's error callback.
func (s *CoordinatorTestSuite) startToAwaitingConfirmation(b *builder.AttemptBuilder, action attempt.PendingAction) func(error) {
	var onErr func(error)

	s.verifier.EXPECT().Verify(gomock.Any(), b.BoxID, gomock.Any(), gomock.Any()).
		Return(box.HostID(b.HostID), nil)
	s.signals.EXPECT().RequestSignal(gomock.Any(), b.BoxID, box.HostID(b.HostID)).
		Return(signal.New([]byte("waveform"), ""), nil)
	s.emitter.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *signal.Signal, cb func(error)) error {
			onErr = cb
			return nil
		})

	view, err := s.coordinator.StartAttempt(context.Background(), b.BoxID, b.BuildGuest(), action)
	s.Require().NoError(err)
	s.Require().Equal(attempt.StateAwaitingConfirmation, view.State)
	return onErr
}

func (s *CoordinatorTestSuite) TestCheckInHappyPath() {
	b := builder.NewAttemptBuilder()
	s.startToAwaitingConfirmation(b, b.BuildCheckInAction())

	s.emitter.EXPECT().Stop()
	s.reservations.EXPECT().CheckIn(gomock.Any(), b.ReservationID).Return(nil)

	view, err := s.coordinator.Confirm(context.Background(), true)
	s.Require().NoError(err)

	want := usecase.AttemptView{
		State:   attempt.StateSucceeded,
		BoxID:   b.BoxID,
		Action:  attempt.ActionCheckIn,
		Message: "Checked in. Enjoy your stay!",
	}
	if diff := cmp.Diff(want, view, cmpopts.IgnoreFields(usecase.AttemptView{}, "AttemptID")); diff != "" {
		s.Fail("unexpected view", diff)
	}

	rec := s.waitAudit()
	s.Equal("succeeded", rec.Outcome)
	s.Equal("check_in", rec.Action)
	s.Equal(b.BoxID.Int64(), rec.BoxID)

	ev := s.waitEvent()
	s.Equal("succeeded", ev.Outcome)
	s.Equal(rec.AttemptID.String(), ev.AttemptID)
}

func (s *CoordinatorTestSuite) TestOwnershipFailureNeverRequestsSignal() {
	b := builder.NewAttemptBuilder()

	// No RequestSignal or Start expectations: the mock controller fails the
	// test if the coordinator reaches either after a verification error.
	s.verifier.EXPECT().Verify(gomock.Any(), b.BoxID, gomock.Any(), gomock.Any()).
		Return(box.HostID(0), usecase.ErrBoxMismatch)

	view, err := s.coordinator.StartAttempt(context.Background(), b.BoxID, b.BuildGuest(), b.BuildCheckInAction())
	s.Require().Error(err)
	s.Equal(attempt.StateFailed, view.State)
	s.Equal(attempt.FailureCaller, view.FailureKind)
	s.NotEmpty(view.Message)

	rec := s.waitAudit()
	s.Equal("failed", rec.Outcome)
	s.Equal(string(attempt.FailureCaller), rec.FailureKind)
}

func (s *CoordinatorTestSuite) TestOwnershipLookupFailureIsNetwork() {
	b := builder.NewAttemptBuilder()

	s.verifier.EXPECT().Verify(gomock.Any(), b.BoxID, gomock.Any(), gomock.Any()).
		Return(box.HostID(0), usecase.ErrOwnershipLookupFailed)

	view, err := s.coordinator.StartAttempt(context.Background(), b.BoxID, b.BuildCleaner(), b.BuildFulfillAction())
	s.Require().Error(err)
	s.Equal(attempt.StateFailed, view.State)
	s.Equal(attempt.FailureNetwork, view.FailureKind)
	s.waitAudit()
}

func (s *CoordinatorTestSuite) TestSignalRequestBadResponseIsDecodeFailure() {
	b := builder.NewAttemptBuilder()

	s.verifier.EXPECT().Verify(gomock.Any(), b.BoxID, gomock.Any(), gomock.Any()).
		Return(box.HostID(b.HostID), nil)
	badResp := infra.WrapClientErr(slog.New(slog.DiscardHandler), infra.KindBadResponse, "signal decode", errors.New("not base64"))
	s.signals.EXPECT().RequestSignal(gomock.Any(), b.BoxID, box.HostID(b.HostID)).
		Return(nil, badResp)

	view, err := s.coordinator.StartAttempt(context.Background(), b.BoxID, b.BuildGuest(), b.BuildCheckInAction())
	s.Require().ErrorIs(err, usecase.ErrSignalRequestFailed)
	s.Equal(attempt.StateFailed, view.State)
	s.Equal(attempt.FailureDecode, view.FailureKind)
	s.waitAudit()
}

func (s *CoordinatorTestSuite) TestEmitterStartFailureIsPlayback() {
	b := builder.NewAttemptBuilder()

	s.verifier.EXPECT().Verify(gomock.Any(), b.BoxID, gomock.Any(), gomock.Any()).
		Return(box.HostID(b.HostID), nil)
	s.signals.EXPECT().RequestSignal(gomock.Any(), b.BoxID, box.HostID(b.HostID)).
		Return(signal.New([]byte("waveform"), ""), nil)
	s.emitter.EXPECT().Start(gomock.Any(), gomock.Any()).Return(errors.New("device busy"))

	view, err := s.coordinator.StartAttempt(context.Background(), b.BoxID, b.BuildGuest(), b.BuildCheckInAction())
	s.Require().ErrorIs(err, usecase.ErrPlaybackFailed)
	s.Equal(attempt.StateFailed, view.State)
	s.Equal(attempt.FailurePlayback, view.FailureKind)
	s.waitAudit()
}

func (s *CoordinatorTestSuite) TestPlaybackFailureMidLoop() {
	b := builder.NewAttemptBuilder()
	onErr := s.startToAwaitingConfirmation(b, b.BuildCheckInAction())

	s.emitter.EXPECT().Stop()
	onErr(errors.New("write: broken pipe"))

	view := s.coordinator.CurrentView()
	s.Equal(attempt.StateFailed, view.State)
	s.Equal(attempt.FailurePlayback, view.FailureKind)

	rec := s.waitAudit()
	s.Equal(string(attempt.FailurePlayback), rec.FailureKind)
}

func (s *CoordinatorTestSuite) TestConfirmFalseIsTerminalWithoutAction() {
	b := builder.NewAttemptBuilder()
	s.startToAwaitingConfirmation(b, b.BuildCheckInAction())

	// No CheckIn expectation: a denied open must never touch the ledger.
	s.emitter.EXPECT().Stop()

	view, err := s.coordinator.Confirm(context.Background(), false)
	s.Require().NoError(err)
	s.Equal(attempt.StateFailed, view.State)
	s.Equal(attempt.FailureOpenDenied, view.FailureKind)

	rec := s.waitAudit()
	s.Equal("failed", rec.Outcome)
	s.Equal(string(attempt.FailureOpenDenied), rec.FailureKind)
}

func (s *CoordinatorTestSuite) TestConfirmWithoutAttempt() {
	_, err := s.coordinator.Confirm(context.Background(), true)
	s.Require().ErrorIs(err, usecase.ErrConfirmationNotPending)
}

func (s *CoordinatorTestSuite) TestRepeatedConfirmIsNoOp() {
	b := builder.NewAttemptBuilder()
	s.startToAwaitingConfirmation(b, b.BuildCheckInAction())

	// Stop must fire exactly once even when the caller confirms twice.
	s.emitter.EXPECT().Stop().Times(1)
	s.reservations.EXPECT().CheckIn(gomock.Any(), b.ReservationID).Return(nil).Times(1)

	first, err := s.coordinator.Confirm(context.Background(), true)
	s.Require().NoError(err)
	s.Equal(attempt.StateSucceeded, first.State)

	second, err := s.coordinator.Confirm(context.Background(), true)
	s.Require().NoError(err)
	s.Equal(attempt.StateSucceeded, second.State)
	s.waitAudit()
}

func (s *CoordinatorTestSuite) TestSecondAttemptRejectedWhileInFlight() {
	b := builder.NewAttemptBuilder()
	s.startToAwaitingConfirmation(b, b.BuildCheckInAction())

	view, err := s.coordinator.StartAttempt(context.Background(), b.BoxID, b.BuildGuest(), b.BuildCheckInAction())
	s.Require().ErrorIs(err, usecase.ErrAttemptInFlight)
	s.Equal(attempt.StateAwaitingConfirmation, view.State)

	// The original attempt is still live and can finish normally.
	s.emitter.EXPECT().Stop()
	s.reservations.EXPECT().CheckIn(gomock.Any(), b.ReservationID).Return(nil)
	final, err := s.coordinator.Confirm(context.Background(), true)
	s.Require().NoError(err)
	s.Equal(attempt.StateSucceeded, final.State)
	s.waitAudit()
}

func (s *CoordinatorTestSuite) TestCancelDuringEmissionStopsAndRecords() {
	b := builder.NewAttemptBuilder()
	s.startToAwaitingConfirmation(b, b.BuildCheckInAction())

	s.emitter.EXPECT().Stop()
	view := s.coordinator.Cancel()
	s.Equal(attempt.StateCancelled, view.State)

	rec := s.waitAudit()
	s.Equal("cancelled", rec.Outcome)

	// Confirmation after cancel must not resurrect the attempt.
	confirmed, err := s.coordinator.Confirm(context.Background(), true)
	s.Require().NoError(err)
	s.Equal(attempt.StateCancelled, confirmed.State)
}

func (s *CoordinatorTestSuite) TestCancelWhenIdleIsHarmless() {
	view := s.coordinator.Cancel()
	s.Equal(attempt.StateCancelled, view.State)
	s.Empty(s.auditCh)
}

func (s *CoordinatorTestSuite) TestResetReturnsToIdle() {
	b := builder.NewAttemptBuilder()
	s.startToAwaitingConfirmation(b, b.BuildCheckInAction())

	// Reset force-stops emission even mid-flight.
	s.emitter.EXPECT().Stop().MinTimes(1)
	view := s.coordinator.Reset()
	s.Equal(attempt.StateIdle, view.State)
	s.Equal(attempt.FailureNone, view.FailureKind)

	rec := s.waitAudit()
	s.Equal("cancelled", rec.Outcome)
}

func (s *CoordinatorTestSuite) TestCheckOutTimestampPrecedesTransition() {
	b := builder.NewAttemptBuilder()
	b.ReservationStatus = "checked_in"
	s.startToAwaitingConfirmation(b, b.BuildCheckOutAction())

	s.emitter.EXPECT().Stop()
	gomock.InOrder(
		s.reservations.EXPECT().SetCheckoutAt(gomock.Any(), b.ReservationID, s.clock.Now()).Return(nil),
		s.reservations.EXPECT().CheckOut(gomock.Any(), b.ReservationID).Return(nil),
	)

	view, err := s.coordinator.Confirm(context.Background(), true)
	s.Require().NoError(err)
	s.Equal(attempt.StateSucceeded, view.State)
	s.waitAudit()
}

func (s *CoordinatorTestSuite) TestCheckOutTimestampFailureSkipsTransition() {
	b := builder.NewAttemptBuilder()
	b.ReservationStatus = "checked_in"
	s.startToAwaitingConfirmation(b, b.BuildCheckOutAction())

	// No CheckOut expectation: the transition is never attempted after the
	// timestamp write fails.
	s.emitter.EXPECT().Stop()
	s.reservations.EXPECT().SetCheckoutAt(gomock.Any(), b.ReservationID, gomock.Any()).
		Return(errors.New("ledger down"))

	view, err := s.coordinator.Confirm(context.Background(), true)
	s.Require().ErrorIs(err, usecase.ErrActionFailed)
	s.Equal(attempt.StateFailed, view.State)
	s.Equal(attempt.FailureAction, view.FailureKind)
	s.Equal("Box opened, but the record could not be updated.", view.Message)
	s.waitAudit()
}

func (s *CoordinatorTestSuite) TestFulfillCollectsNotesAfterConfirmation() {
	b := builder.NewAttemptBuilder()
	s.startToAwaitingConfirmation(b, b.BuildFulfillAction())

	s.emitter.EXPECT().Stop()
	view, err := s.coordinator.Confirm(context.Background(), true)
	s.Require().NoError(err)
	s.Equal(attempt.StateApplyingAction, view.State)
	s.True(view.NotesRequired)

	notes := "restocked two towels"
	s.orders.EXPECT().Fulfill(gomock.Any(), b.OrderID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, got *string) error {
			s.Require().NotNil(got)
			s.Equal(notes, *got)
			return nil
		})

	view, err = s.coordinator.SubmitNotes(context.Background(), "  "+notes+"  ")
	s.Require().NoError(err)
	s.Equal(attempt.StateSucceeded, view.State)
	s.False(view.NotesRequired)
	s.waitAudit()
}

func (s *CoordinatorTestSuite) TestFulfillEmptyNotesBecomeAbsent() {
	b := builder.NewAttemptBuilder()
	s.startToAwaitingConfirmation(b, b.BuildFulfillAction())

	s.emitter.EXPECT().Stop()
	_, err := s.coordinator.Confirm(context.Background(), true)
	s.Require().NoError(err)

	s.orders.EXPECT().Fulfill(gomock.Any(), b.OrderID, gomock.Nil()).Return(nil)

	view, err := s.coordinator.SubmitNotes(context.Background(), "   ")
	s.Require().NoError(err)
	s.Equal(attempt.StateSucceeded, view.State)
	s.waitAudit()
}

func (s *CoordinatorTestSuite) TestNotesRejectedOutsideFulfillFlow() {
	b := builder.NewAttemptBuilder()
	s.startToAwaitingConfirmation(b, b.BuildCheckInAction())

	_, err := s.coordinator.SubmitNotes(context.Background(), "unexpected")
	s.Require().ErrorIs(err, usecase.ErrNotesNotExpected)

	s.emitter.EXPECT().Stop()
	s.coordinator.Cancel()
	s.waitAudit()
}

func (s *CoordinatorTestSuite) TestHostOpenWithoutAction() {
	b := builder.NewAttemptBuilder()
	var onErr func(error)

	s.verifier.EXPECT().Verify(gomock.Any(), b.BoxID, gomock.Any(), gomock.Any()).
		Return(box.HostID(b.HostID), nil)
	s.signals.EXPECT().RequestSignal(gomock.Any(), b.BoxID, box.HostID(b.HostID)).
		Return(signal.New([]byte("waveform"), ""), nil)
	s.emitter.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *signal.Signal, cb func(error)) error {
			onErr = cb
			return nil
		})

	view, err := s.coordinator.StartAttempt(context.Background(), b.BoxID, b.BuildHost(), b.BuildNoneAction())
	s.Require().NoError(err)
	s.Equal(attempt.StateAwaitingConfirmation, view.State)
	s.NotNil(onErr)

	s.emitter.EXPECT().Stop()
	view, err = s.coordinator.Confirm(context.Background(), true)
	s.Require().NoError(err)
	s.Equal(attempt.StateSucceeded, view.State)
	s.Equal("Box opened.", view.Message)
	s.waitAudit()
}

func (s *CoordinatorTestSuite) TestRetryAfterTerminalFailure() {
	b := builder.NewAttemptBuilder()

	s.verifier.EXPECT().Verify(gomock.Any(), b.BoxID, gomock.Any(), gomock.Any()).
		Return(box.HostID(0), usecase.ErrBoxMismatch)
	_, err := s.coordinator.StartAttempt(context.Background(), b.BoxID, b.BuildGuest(), b.BuildCheckInAction())
	s.Require().Error(err)
	s.waitAudit()

	// A terminal state accepts a fresh attempt without an explicit reset.
	s.startToAwaitingConfirmation(b, b.BuildCheckInAction())
	s.Equal(attempt.StateAwaitingConfirmation, s.coordinator.CurrentView().State)

	s.emitter.EXPECT().Stop()
	s.coordinator.Cancel()
	s.waitAudit()
}
