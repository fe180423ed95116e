package office

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
)

// Lookup groups the read-only queries. Point lookups return
// domain.ErrNotFound when nothing matches.
type Lookup struct {
	repo   domain.Repository
	logger *slog.Logger
}

func NewLookup(repo domain.Repository, logger *slog.Logger) *Lookup {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lookup{repo: repo, logger: logger}
}

func (l *Lookup) Client(ctx context.Context, cpf string) (*domain.Client, error) {
	c, err := l.repo.FindClientByCPF(ctx, cpf)
	l.log("find client", err, "cpf", cpf)
	return c, err
}

func (l *Lookup) Case(ctx context.Context, number string) (*domain.Case, error) {
	c, err := l.repo.FindCaseByNumber(ctx, number)
	l.log("find case", err, "case_number", number)
	return c, err
}

func (l *Lookup) Payments(ctx context.Context, cpf string) ([]domain.Payment, error) {
	ps, err := l.repo.FindPaymentsByClientCPF(ctx, cpf)
	l.log("find payments", err, "cpf", cpf, "count", len(ps))
	return ps, err
}

func (l *Lookup) Hearings(ctx context.Context, number string) ([]domain.Hearing, error) {
	hs, err := l.repo.FindHearingsByCaseNumber(ctx, number)
	l.log("find hearings", err, "case_number", number, "count", len(hs))
	return hs, err
}

func (l *Lookup) log(op string, err error, args ...any) {
	if err != nil && domain.IsStorageUnavailable(err) {
		l.logger.Error(op+" failed", append(args, "error", err)...)
		return
	}
	l.logger.Debug(op, args...)
}
