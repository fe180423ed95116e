package main

import (
	"fmt"
	"log/slog"

	"github.com/BruksfildServices01/escritorio-juridico/internal/audit"
	"github.com/BruksfildServices01/escritorio-juridico/internal/config"
	dbpkg "github.com/BruksfildServices01/escritorio-juridico/internal/db"
	"github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
	"github.com/BruksfildServices01/escritorio-juridico/internal/form"
	infraRepo "github.com/BruksfildServices01/escritorio-juridico/internal/infra/repository"
	"github.com/BruksfildServices01/escritorio-juridico/internal/timezone"
	usecase "github.com/BruksfildServices01/escritorio-juridico/internal/usecase/office"
)

// app holds the wired services for one process.
type app struct {
	services form.Services
	auditLog audit.Reader
	close    func() error
}

type auditStore interface {
	audit.Sink
	audit.Reader
}

// newApp picks the repository and audit sink for cfg.Store and builds the
// use cases on top of them.
func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	loc := timezone.Location(cfg.Timezone)

	var (
		repo    office.Repository
		sink    auditStore
		closeFn = func() error { return nil }
	)

	switch cfg.Store {
	case config.StoreMemory:
		repo = infraRepo.NewOfficeMemoryRepository(loc)
		sink = audit.NewMemorySink()

	case config.StoreSQLite, config.StorePostgres:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		repo = infraRepo.NewOfficeGormRepository(db, loc)
		sink = audit.NewGormSink(db)
		closeFn = sqlDB.Close

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	recorder := audit.NewRecorder(sink, logger)

	logger.Info("storage ready", "store", cfg.Store, "timezone", loc.String())

	return &app{
		services: form.Services{
			CreateClient:    usecase.NewCreateClient(repo, recorder, logger),
			CreateCase:      usecase.NewCreateCase(repo, recorder, logger),
			RegisterPayment: usecase.NewRegisterPayment(repo, recorder, logger),
			ScheduleHearing: usecase.NewScheduleHearing(repo, recorder, logger),
			Lookup:          usecase.NewLookup(repo, logger),
		},
		auditLog: sink,
		close:    closeFn,
	}, nil
}

func (a *app) Close() {
	if err := a.close(); err != nil {
		slog.Warn("close storage", "error", err)
	}
}
