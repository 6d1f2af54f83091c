package response

import (
	"time"

	"smartbox-gateway/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AttemptResponse struct {
	State         string     `json:"state"`
	AttemptID     *uuid.UUID `json:"attemptId,omitempty"`
	BoxID         int64      `json:"boxId,omitempty"`
	Action        string     `json:"action,omitempty"`
	NotesRequired bool       `json:"notesRequired"`
	FailureKind   string     `json:"failureKind,omitempty"`
	Message       string     `json:"message,omitempty"`
}

func FromAttemptView(view usecase.AttemptView) *AttemptResponse {
	resp := &AttemptResponse{
		State:         view.State.String(),
		BoxID:         view.BoxID.Int64(),
		Action:        view.Action.String(),
		NotesRequired: view.NotesRequired,
		FailureKind:   string(view.FailureKind),
		Message:       view.Message,
	}
	if view.AttemptID != uuid.Nil {
		id := view.AttemptID
		resp.AttemptID = &id
	}
	return resp
}

type AttemptHistoryItem struct {
	AttemptID     uuid.UUID `json:"attemptId"`
	BoxID         int64     `json:"boxId"`
	PrincipalID   int64     `json:"principalId"`
	PrincipalRole string    `json:"principalRole"`
	Action        string    `json:"action"`
	Outcome       string    `json:"outcome"`
	FailureKind   string    `json:"failureKind,omitempty"`
	StartedAt     time.Time `json:"startedAt"`
	EndedAt       time.Time `json:"endedAt"`
}

func FromAuditRecords(records []usecase.AuditRecord) []AttemptHistoryItem {
	items := make([]AttemptHistoryItem, len(records))
	for i, rec := range records {
		_ = copier.Copy(&items[i], &rec)
	}
	return items
}
