package office

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/escritorio-juridico/internal/audit"
	domain "github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
)

type RegisterPayment struct {
	base
}

func NewRegisterPayment(
	repo domain.Repository,
	recorder *audit.Recorder,
	logger *slog.Logger,
) *RegisterPayment {
	return &RegisterPayment{base: newBase(repo, recorder, logger)}
}

func (uc *RegisterPayment) Execute(
	ctx context.Context,
	in domain.Payment,
) (*domain.Payment, error) {

	opID := newOperationID()

	if err := in.Validate(); err != nil {
		return nil, uc.fail(ctx, "register payment", opID, err)
	}

	ok, err := uc.clientExists(ctx, in.ClientCPF)
	if err != nil {
		return nil, uc.fail(ctx, "register payment", opID, err)
	}
	if !ok {
		return nil, uc.fail(ctx, "register payment", opID,
			&domain.ReferenceError{Entity: domain.EntityClient, Key: in.ClientCPF})
	}

	if err := uc.repo.AddPayment(ctx, in); err != nil {
		return nil, uc.fail(ctx, "register payment", opID, err)
	}

	uc.audit.Record(ctx, audit.Event{
		OperationID: opID,
		Action:      audit.ActionPaymentRegistered,
		Entity:      domain.EntityPayment,
		EntityKey:   in.ClientCPF,
		Metadata:    map[string]any{"amount": in.Amount},
	})

	uc.logger.Info("payment registered",
		"op_id", opID,
		"cpf", in.ClientCPF,
		"amount", in.Amount,
	)
	return &in, nil
}
