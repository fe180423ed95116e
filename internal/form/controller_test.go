package form

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/escritorio-juridico/internal/audit"
	"github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
	"github.com/BruksfildServices01/escritorio-juridico/internal/infra/repository"
	usecase "github.com/BruksfildServices01/escritorio-juridico/internal/usecase/office"
)

// scriptedPrompter replays canned answers and records what it was asked.
type scriptedPrompter struct {
	forms []map[string]string
	keys  []string

	asked [][]office.Field
}

func (p *scriptedPrompter) CollectFields(_ context.Context, _ string, fields []office.Field) (map[string]string, error) {
	p.asked = append(p.asked, fields)
	if len(p.forms) == 0 {
		return nil, ErrCancelled
	}
	next := p.forms[0]
	p.forms = p.forms[1:]
	return next, nil
}

func (p *scriptedPrompter) CollectString(context.Context, string, string) (string, error) {
	if len(p.keys) == 0 {
		return "", ErrCancelled
	}
	next := p.keys[0]
	p.keys = p.keys[1:]
	return next, nil
}

type notification struct {
	Severity Severity
	Title    string
	Message  string
}

type recordingNotifier struct {
	got    []notification
	result any
}

func (n *recordingNotifier) Notify(s Severity, title, msg string) {
	n.got = append(n.got, notification{s, title, msg})
}

func (n *recordingNotifier) RecordResult(v any) { n.result = v }

func (n *recordingNotifier) last() notification {
	if len(n.got) == 0 {
		return notification{}
	}
	return n.got[len(n.got)-1]
}

func newServices() Services {
	repo := repository.NewOfficeMemoryRepository(time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := audit.NewRecorder(audit.NewMemorySink(), logger)
	return Services{
		CreateClient:    usecase.NewCreateClient(repo, rec, logger),
		CreateCase:      usecase.NewCreateCase(repo, rec, logger),
		RegisterPayment: usecase.NewRegisterPayment(repo, rec, logger),
		ScheduleHearing: usecase.NewScheduleHearing(repo, rec, logger),
		Lookup:          usecase.NewLookup(repo, logger),
	}
}

func anaForm() map[string]string {
	return map[string]string{
		office.KeyName: "Ana", office.KeyCPF: "111", office.KeyAge: "30",
		office.KeyPhone: "9999", office.KeyAddress: "Rua A", office.KeyEmail: "ana@x.com",
	}
}

func run(t *testing.T, svc Services, p *scriptedPrompter, flow func(*Controller) func(context.Context) error) (*recordingNotifier, error) {
	t.Helper()
	n := &recordingNotifier{}
	c := NewController(svc, p, n)
	return n, flow(c)(context.Background())
}

func TestAddClient_Success(t *testing.T) {
	svc := newServices()

	n, err := run(t, svc, &scriptedPrompter{forms: []map[string]string{anaForm()}},
		func(c *Controller) func(context.Context) error { return c.AddClient })
	require.NoError(t, err)

	assert.Equal(t, notification{Info, "Sucesso", "Cliente 'Ana' adicionado!"}, n.last())
	require.IsType(t, &office.Client{}, n.result)
	assert.Equal(t, "111", n.result.(*office.Client).CPF)
}

func TestAddClient_RepromptsWithPreviousAnswers(t *testing.T) {
	svc := newServices()

	bad := anaForm()
	bad[office.KeyAge] = "abc"

	p := &scriptedPrompter{forms: []map[string]string{bad, anaForm()}}
	n, err := run(t, svc, p, func(c *Controller) func(context.Context) error { return c.AddClient })
	require.NoError(t, err)

	require.Len(t, n.got, 2)
	assert.Equal(t, Warning, n.got[0].Severity)
	assert.Equal(t, "O campo 'Idade' deve ser um número inteiro.", n.got[0].Message)
	assert.Equal(t, Info, n.got[1].Severity)

	require.Len(t, p.asked, 2)
	assert.Equal(t, "", p.asked[0][0].Default)
	for _, f := range p.asked[1] {
		assert.Equal(t, bad[f.Key], f.Default, f.Key)
	}
}

func TestAddClient_CancelHasNoSideEffects(t *testing.T) {
	svc := newServices()

	n, err := run(t, svc, &scriptedPrompter{}, func(c *Controller) func(context.Context) error { return c.AddClient })
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Empty(t, n.got)

	_, err = svc.Lookup.Client(context.Background(), "111")
	assert.ErrorIs(t, err, office.ErrNotFound)
}

func TestAddClient_Duplicate(t *testing.T) {
	svc := newServices()
	p := &scriptedPrompter{forms: []map[string]string{anaForm(), anaForm()}}
	n := &recordingNotifier{}
	c := NewController(svc, p, n)

	require.NoError(t, c.AddClient(context.Background()))
	err := c.AddClient(context.Background())

	assert.True(t, office.IsDuplicate(err))
	assert.Equal(t, notification{Warning, "Erro", "Cliente com CPF '111' já existe."}, n.last())
}

func TestWithMaxAttempts(t *testing.T) {
	bad := anaForm()
	bad[office.KeyName] = " "

	p := &scriptedPrompter{forms: []map[string]string{bad, anaForm()}}
	n := &recordingNotifier{}
	c := NewController(newServices(), p, n, WithMaxAttempts(1))

	err := c.AddClient(context.Background())
	assert.True(t, office.IsValidation(err))
	assert.Len(t, p.asked, 1)
	assert.Equal(t, Warning, n.last().Severity)
}

func TestAddCase_UnknownClient(t *testing.T) {
	svc := newServices()

	n, err := run(t, svc, &scriptedPrompter{forms: []map[string]string{{
		office.KeyCaseNumber: "P1", office.KeyDescription: "Divórcio", office.KeyClientCPF: "999",
	}}}, func(c *Controller) func(context.Context) error { return c.AddCase })

	assert.True(t, office.IsReference(err))
	assert.Equal(t, notification{Warning, "Erro", "Cliente com CPF '999' não encontrado. Adicione-o primeiro."}, n.last())

	_, err = run(t, svc, &scriptedPrompter{keys: []string{"P1"}},
		func(c *Controller) func(context.Context) error { return c.FindCase })
	assert.ErrorIs(t, err, office.ErrNotFound)
}

func TestAddHearing_NeverAsksForClient(t *testing.T) {
	svc := newServices()
	ctx := context.Background()
	_, err := svc.CreateClient.Execute(ctx, office.Client{Name: "Ana", CPF: "111", Age: 30, Phone: "1", Address: "x", Email: "a@a"})
	require.NoError(t, err)
	_, err = svc.CreateCase.Execute(ctx, office.Case{Number: "P1", Description: "d", ClientCPF: "111"})
	require.NoError(t, err)

	p := &scriptedPrompter{forms: []map[string]string{
		{office.KeyCaseNumber: "P1", office.KeyDateTime: "2025-12-25", office.KeyLocation: "Room1", office.KeyHearingType: "Civil"},
		{office.KeyCaseNumber: "P1", office.KeyDateTime: "25/12/2025 14:30", office.KeyLocation: "Room1", office.KeyHearingType: "Civil"},
	}}
	n, err := run(t, svc, p, func(c *Controller) func(context.Context) error { return c.AddHearing })
	require.NoError(t, err)

	for _, f := range p.asked[0] {
		assert.NotEqual(t, office.KeyClientCPF, f.Key)
	}
	assert.Equal(t, Warning, n.got[0].Severity)
	assert.Equal(t, notification{Info, "Sucesso", "Audiência agendada para 25/12/2025 14:30 (cliente 111)!"}, n.last())
}

func TestFindClient(t *testing.T) {
	svc := newServices()
	_, err := run(t, svc, &scriptedPrompter{forms: []map[string]string{anaForm()}},
		func(c *Controller) func(context.Context) error { return c.AddClient })
	require.NoError(t, err)

	n, err := run(t, svc, &scriptedPrompter{keys: []string{" 111 "}},
		func(c *Controller) func(context.Context) error { return c.FindClient })
	require.NoError(t, err)
	assert.Equal(t, "Cliente Encontrado", n.last().Title)
	assert.Contains(t, n.last().Message, "Nome: Ana\nCPF: 111")

	n, err = run(t, svc, &scriptedPrompter{keys: []string{"000"}},
		func(c *Controller) func(context.Context) error { return c.FindClient })
	assert.ErrorIs(t, err, office.ErrNotFound)
	assert.Equal(t, notification{Info, "Cliente Não Encontrado", "Cliente com CPF '000' não encontrado."}, n.last())
}

func TestFind_EmptyKeyCancels(t *testing.T) {
	n, err := run(t, newServices(), &scriptedPrompter{keys: []string{"  "}},
		func(c *Controller) func(context.Context) error { return c.FindPayments })
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Empty(t, n.got)
}

func TestFindPayments_Listing(t *testing.T) {
	svc := newServices()
	ctx := context.Background()
	_, err := svc.CreateClient.Execute(ctx, office.Client{Name: "Ana", CPF: "111", Age: 30, Phone: "1", Address: "x", Email: "a@a"})
	require.NoError(t, err)

	n, err := run(t, svc, &scriptedPrompter{keys: []string{"111"}},
		func(c *Controller) func(context.Context) error { return c.FindPayments })
	require.NoError(t, err)
	assert.Equal(t, "Nenhum pagamento encontrado para o CPF '111'.", n.last().Message)
	assert.Equal(t, []office.Payment{}, n.result)

	_, err = svc.RegisterPayment.Execute(ctx, office.Payment{ClientCPF: "111", Amount: 150.5, Description: "entrada"})
	require.NoError(t, err)

	n, err = run(t, svc, &scriptedPrompter{keys: []string{"111"}},
		func(c *Controller) func(context.Context) error { return c.FindPayments })
	require.NoError(t, err)
	assert.Equal(t, "--- Pagamentos para CPF: 111 ---\n\n"+
		"Pagamento #1:\n"+
		"CPF do Cliente: 111\nValor (R$): 150.50\nDescrição: entrada\n"+
		separator+"\n", n.last().Message)
}

func TestActions_MenuOrder(t *testing.T) {
	c := NewController(newServices(), &scriptedPrompter{}, &recordingNotifier{})

	var labels []string
	for _, a := range c.Actions() {
		labels = append(labels, a.Label)
	}
	assert.Equal(t, []string{
		"Adicionar Cliente", "Adicionar Processo", "Registrar Pagamento", "Agendar Audiência",
		"Buscar Cliente", "Buscar Processo", "Buscar Pagamento", "Buscar Audiência",
	}, labels)
}

func TestSentence(t *testing.T) {
	assert.Equal(t, "O campo 'Nome' é obrigatório.", sentence("o campo 'Nome' é obrigatório"))
	assert.Equal(t, "", sentence(""))
}
