package office

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/escritorio-juridico/internal/audit"
	domain "github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
)

// ScheduleHearing books a hearing for an existing case. The client is
// always taken from the case; whatever the caller put in ClientCPF is
// discarded.
type ScheduleHearing struct {
	base
}

func NewScheduleHearing(
	repo domain.Repository,
	recorder *audit.Recorder,
	logger *slog.Logger,
) *ScheduleHearing {
	return &ScheduleHearing{base: newBase(repo, recorder, logger)}
}

func (uc *ScheduleHearing) Execute(
	ctx context.Context,
	in domain.Hearing,
) (*domain.Hearing, error) {

	opID := newOperationID()

	if err := in.Validate(); err != nil {
		return nil, uc.fail(ctx, "schedule hearing", opID, err)
	}

	cs, err := uc.caseByNumber(ctx, in.CaseNumber)
	if err != nil {
		return nil, uc.fail(ctx, "schedule hearing", opID, err)
	}
	if cs == nil {
		return nil, uc.fail(ctx, "schedule hearing", opID,
			&domain.ReferenceError{Entity: domain.EntityCase, Key: in.CaseNumber})
	}

	saved, err := uc.repo.AddHearing(ctx, in)
	if err != nil {
		return nil, uc.fail(ctx, "schedule hearing", opID, err)
	}

	uc.audit.Record(ctx, audit.Event{
		OperationID: opID,
		Action:      audit.ActionHearingScheduled,
		Entity:      domain.EntityHearing,
		EntityKey:   saved.CaseNumber,
		Metadata: map[string]string{
			"client_cpf": saved.ClientCPF,
			"date_time":  saved.DateTime,
		},
	})

	uc.logger.Info("hearing scheduled",
		"op_id", opID,
		"case_number", saved.CaseNumber,
		"cpf", saved.ClientCPF,
	)
	return saved, nil
}
