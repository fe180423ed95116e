// Package office holds the application flows that sit between the form
// controller and the repository: pre-checks, the write and the audit trail.
package office

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/escritorio-juridico/internal/audit"
	domain "github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
)

// base carries what every use case needs.
type base struct {
	repo   domain.Repository
	audit  *audit.Recorder
	logger *slog.Logger
}

func newBase(
	repo domain.Repository,
	recorder *audit.Recorder,
	logger *slog.Logger,
) base {
	if logger == nil {
		logger = slog.Default()
	}
	return base{repo: repo, audit: recorder, logger: logger}
}

func newOperationID() string {
	return uuid.NewString()
}

// found turns a point-lookup result into a bool, keeping storage errors.
func found(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (b base) clientExists(ctx context.Context, cpf string) (bool, error) {
	_, err := b.repo.FindClientByCPF(ctx, cpf)
	return found(err)
}

func (b base) caseByNumber(ctx context.Context, number string) (*domain.Case, error) {
	c, err := b.repo.FindCaseByNumber(ctx, number)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return c, err
}

// fail logs a rejected operation at a level matching its kind.
func (b base) fail(ctx context.Context, op, opID string, err error) error {
	level := slog.LevelInfo
	if domain.IsStorageUnavailable(err) {
		level = slog.LevelError
	}
	b.logger.Log(ctx, level, op+" rejected",
		"op_id", opID,
		"error", err,
	)
	return err
}
