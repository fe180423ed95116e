package office

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/escritorio-juridico/internal/audit"
	domain "github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
)

type CreateCase struct {
	base
}

func NewCreateCase(
	repo domain.Repository,
	recorder *audit.Recorder,
	logger *slog.Logger,
) *CreateCase {
	return &CreateCase{base: newBase(repo, recorder, logger)}
}

func (uc *CreateCase) Execute(
	ctx context.Context,
	in domain.Case,
) (*domain.Case, error) {

	opID := newOperationID()

	if err := in.Validate(); err != nil {
		return nil, uc.fail(ctx, "create case", opID, err)
	}

	// --------------------------------------------------
	// 1. Número livre
	// --------------------------------------------------
	existing, err := uc.caseByNumber(ctx, in.Number)
	if err != nil {
		return nil, uc.fail(ctx, "create case", opID, err)
	}
	if existing != nil {
		return nil, uc.fail(ctx, "create case", opID,
			&domain.DuplicateKeyError{Entity: domain.EntityCase, Key: in.Number})
	}

	// --------------------------------------------------
	// 2. Cliente existe
	// --------------------------------------------------
	ok, err := uc.clientExists(ctx, in.ClientCPF)
	if err != nil {
		return nil, uc.fail(ctx, "create case", opID, err)
	}
	if !ok {
		return nil, uc.fail(ctx, "create case", opID,
			&domain.ReferenceError{Entity: domain.EntityClient, Key: in.ClientCPF})
	}

	if err := uc.repo.AddCase(ctx, in); err != nil {
		return nil, uc.fail(ctx, "create case", opID, err)
	}

	uc.audit.Record(ctx, audit.Event{
		OperationID: opID,
		Action:      audit.ActionCaseCreated,
		Entity:      domain.EntityCase,
		EntityKey:   in.Number,
		Metadata:    map[string]string{"client_cpf": in.ClientCPF},
	})

	uc.logger.Info("case created",
		"op_id", opID,
		"case_number", in.Number,
		"cpf", in.ClientCPF,
	)
	return &in, nil
}
