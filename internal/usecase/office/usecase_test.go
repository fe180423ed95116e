package office

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/escritorio-juridico/internal/audit"
	domain "github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
	"github.com/BruksfildServices01/escritorio-juridico/internal/infra/repository"
)

type fixture struct {
	sink *audit.MemorySink

	createClient    *CreateClient
	createCase      *CreateCase
	registerPayment *RegisterPayment
	scheduleHearing *ScheduleHearing
	lookup          *Lookup
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(repository.NewOfficeMemoryRepository(time.UTC))
}

func newFixtureWith(repo domain.Repository) *fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sink := audit.NewMemorySink()
	rec := audit.NewRecorder(sink, logger)

	f := &fixture{
		sink:            sink,
		createClient:    NewCreateClient(repo, rec, logger),
		createCase:      NewCreateCase(repo, rec, logger),
		registerPayment: NewRegisterPayment(repo, rec, logger),
		scheduleHearing: NewScheduleHearing(repo, rec, logger),
		lookup:          NewLookup(repo, logger),
	}
	return f
}

func ana() domain.Client {
	return domain.Client{Name: "Ana", CPF: "111", Age: 30, Phone: "9999", Address: "Rua A", Email: "ana@x.com"}
}

func TestCreateClient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.createClient.Execute(ctx, ana())
	require.NoError(t, err)
	assert.Equal(t, "111", got.CPF)

	_, err = f.createClient.Execute(ctx, ana())
	assert.True(t, domain.IsDuplicate(err), "got %v", err)

	events := f.sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionClientCreated, events[0].Action)
	assert.Equal(t, "111", events[0].EntityKey)
	assert.Len(t, events[0].OperationID, 36)
}

func TestCreateClient_InvalidNeverAudits(t *testing.T) {
	f := newFixture(t)

	c := ana()
	c.Name = ""
	_, err := f.createClient.Execute(context.Background(), c)

	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, f.sink.Events())
}

func TestCreateCase_UnknownClient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.createCase.Execute(ctx, domain.Case{Number: "P1", Description: "d", ClientCPF: "999"})
	assert.True(t, domain.IsReference(err), "got %v", err)

	_, err = f.lookup.Case(ctx, "P1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.sink.Events())
}

func TestCreateCase_DuplicateBeforeReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.createClient.Execute(ctx, ana())
	require.NoError(t, err)
	_, err = f.createCase.Execute(ctx, domain.Case{Number: "P1", Description: "d", ClientCPF: "111"})
	require.NoError(t, err)

	_, err = f.createCase.Execute(ctx, domain.Case{Number: "P1", Description: "d", ClientCPF: "999"})
	assert.True(t, domain.IsDuplicate(err), "got %v", err)
}

func TestRegisterPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.registerPayment.Execute(ctx, domain.Payment{ClientCPF: "111", Amount: 10, Description: "x"})
	assert.True(t, domain.IsReference(err))

	_, err = f.createClient.Execute(ctx, ana())
	require.NoError(t, err)

	_, err = f.registerPayment.Execute(ctx, domain.Payment{ClientCPF: "111", Amount: 10, Description: "x"})
	require.NoError(t, err)

	ps, err := f.lookup.Payments(ctx, "111")
	require.NoError(t, err)
	assert.Len(t, ps, 1)
}

func TestScheduleHearing_Scenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.createClient.Execute(ctx, ana())
	require.NoError(t, err)
	_, err = f.createCase.Execute(ctx, domain.Case{Number: "P1", Description: "Divórcio", ClientCPF: "111"})
	require.NoError(t, err)

	saved, err := f.scheduleHearing.Execute(ctx, domain.Hearing{
		CaseNumber: "P1",
		ClientCPF:  "222",
		DateTime:   "01/02/2026 10:00",
		Location:   "Room1",
		Type:       "Conciliação",
	})
	require.NoError(t, err)
	assert.Equal(t, "111", saved.ClientCPF)

	hs, err := f.lookup.Hearings(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, hs, 1)
	assert.Equal(t, "111", hs[0].ClientCPF)

	actions := []string{}
	for _, ev := range f.sink.Events() {
		actions = append(actions, ev.Action)
	}
	assert.Equal(t, []string{
		audit.ActionClientCreated,
		audit.ActionCaseCreated,
		audit.ActionHearingScheduled,
	}, actions)
}

func TestScheduleHearing_UnknownCase(t *testing.T) {
	f := newFixture(t)

	_, err := f.scheduleHearing.Execute(context.Background(), domain.Hearing{
		CaseNumber: "P404", DateTime: "01/02/2026 10:00", Location: "Room1", Type: "Civil",
	})
	assert.True(t, domain.IsReference(err), "got %v", err)
}

func TestScheduleHearing_BadDateNeverTouchesStorage(t *testing.T) {
	f := newFixtureWith(&brokenRepo{})

	_, err := f.scheduleHearing.Execute(context.Background(), domain.Hearing{
		CaseNumber: "P1", DateTime: "2025-12-25", Location: "Room1", Type: "Civil",
	})
	assert.True(t, domain.IsValidation(err), "got %v", err)
}

// brokenRepo fails every call as an unreachable database would.
type brokenRepo struct{}

var errDown = &domain.StorageUnavailableError{Op: "test", Err: errors.New("connection refused")}

func (brokenRepo) AddClient(context.Context, domain.Client) error { return errDown }
func (brokenRepo) FindClientByCPF(context.Context, string) (*domain.Client, error) {
	return nil, errDown
}
func (brokenRepo) AddCase(context.Context, domain.Case) error { return errDown }
func (brokenRepo) FindCaseByNumber(context.Context, string) (*domain.Case, error) {
	return nil, errDown
}
func (brokenRepo) AddPayment(context.Context, domain.Payment) error { return errDown }
func (brokenRepo) FindPaymentsByClientCPF(context.Context, string) ([]domain.Payment, error) {
	return nil, errDown
}
func (brokenRepo) AddHearing(context.Context, domain.Hearing) (*domain.Hearing, error) {
	return nil, errDown
}
func (brokenRepo) FindHearingsByCaseNumber(context.Context, string) ([]domain.Hearing, error) {
	return nil, errDown
}

func TestStorageFailuresPropagate(t *testing.T) {
	f := newFixtureWith(&brokenRepo{})
	ctx := context.Background()

	_, err := f.createClient.Execute(ctx, ana())
	assert.True(t, domain.IsStorageUnavailable(err))

	_, err = f.createCase.Execute(ctx, domain.Case{Number: "P1", Description: "d", ClientCPF: "111"})
	assert.True(t, domain.IsStorageUnavailable(err))

	_, err = f.lookup.Hearings(ctx, "P1")
	assert.True(t, domain.IsStorageUnavailable(err))

	assert.Empty(t, f.sink.Events())
}
