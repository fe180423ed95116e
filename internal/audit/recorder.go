package audit

import (
	"context"
	"log/slog"
	"time"
)

// Actions recorded after a successful create.
const (
	ActionClientCreated     = "client_created"
	ActionCaseCreated       = "case_created"
	ActionPaymentRegistered = "payment_registered"
	ActionHearingScheduled  = "hearing_scheduled"
)

type Event struct {
	OperationID string    `json:"operation_id"`
	Action      string    `json:"action"`
	Entity      string    `json:"entity"`
	EntityKey   string    `json:"entity_key"`
	Metadata    any       `json:"metadata,omitempty"`
	At          time.Time `json:"at"`
}

// Recorder writes events synchronously. A failing sink is logged and
// never reaches the caller.
type Recorder struct {
	sink   Sink
	logger *slog.Logger
}

func NewRecorder(sink Sink, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{sink: sink, logger: logger}
}

func (r *Recorder) Record(ctx context.Context, ev Event) {
	if r == nil || r.sink == nil {
		return
	}

	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	if err := r.sink.Write(ctx, ev); err != nil {
		r.logger.Warn("audit write failed",
			"op_id", ev.OperationID,
			"action", ev.Action,
			"error", err,
		)
	}
}
