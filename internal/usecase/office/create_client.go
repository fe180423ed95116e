package office

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/escritorio-juridico/internal/audit"
	domain "github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
)

type CreateClient struct {
	base
}

func NewCreateClient(
	repo domain.Repository,
	recorder *audit.Recorder,
	logger *slog.Logger,
) *CreateClient {
	return &CreateClient{base: newBase(repo, recorder, logger)}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in domain.Client,
) (*domain.Client, error) {

	opID := newOperationID()

	if err := in.Validate(); err != nil {
		return nil, uc.fail(ctx, "create client", opID, err)
	}

	// --------------------------------------------------
	// CPF livre?
	// --------------------------------------------------
	exists, err := uc.clientExists(ctx, in.CPF)
	if err != nil {
		return nil, uc.fail(ctx, "create client", opID, err)
	}
	if exists {
		return nil, uc.fail(ctx, "create client", opID,
			&domain.DuplicateKeyError{Entity: domain.EntityClient, Key: in.CPF})
	}

	if err := uc.repo.AddClient(ctx, in); err != nil {
		return nil, uc.fail(ctx, "create client", opID, err)
	}

	uc.audit.Record(ctx, audit.Event{
		OperationID: opID,
		Action:      audit.ActionClientCreated,
		Entity:      domain.EntityClient,
		EntityKey:   in.CPF,
	})

	uc.logger.Info("client created", "op_id", opID, "cpf", in.CPF)
	return &in, nil
}
