package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
	usecase "github.com/BruksfildServices01/escritorio-juridico/internal/usecase/office"
)

// Services are the application flows the controller calls.
type Services struct {
	CreateClient    *usecase.CreateClient
	CreateCase      *usecase.CreateCase
	RegisterPayment *usecase.RegisterPayment
	ScheduleHearing *usecase.ScheduleHearing
	Lookup          *usecase.Lookup
}

type Controller struct {
	svc      Services
	prompter Prompter
	notifier Notifier

	// maxAttempts bounds how many times a form is re-requested after a
	// validation failure; 0 means until the user cancels.
	maxAttempts int
}

type Option func(*Controller)

// WithMaxAttempts limits form submissions per flow. After the last failed
// attempt the flow returns the ValidationError.
func WithMaxAttempts(n int) Option {
	return func(c *Controller) { c.maxAttempts = n }
}

func NewController(
	svc Services,
	prompter Prompter,
	notifier Notifier,
	opts ...Option,
) *Controller {
	c := &Controller{svc: svc, prompter: prompter, notifier: notifier}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Action is one entry of the main menu.
type Action struct {
	Label string
	Run   func(ctx context.Context) error
}

// Actions lists the flows in menu order.
func (c *Controller) Actions() []Action {
	return []Action{
		{Label: "Adicionar Cliente", Run: c.AddClient},
		{Label: "Adicionar Processo", Run: c.AddCase},
		{Label: "Registrar Pagamento", Run: c.AddPayment},
		{Label: "Agendar Audiência", Run: c.AddHearing},
		{Label: "Buscar Cliente", Run: c.FindClient},
		{Label: "Buscar Processo", Run: c.FindCase},
		{Label: "Buscar Pagamento", Run: c.FindPayments},
		{Label: "Buscar Audiência", Run: c.FindHearings},
	}
}

// ======================================================
// ADD FLOWS
// ======================================================

func (c *Controller) AddClient(ctx context.Context) error {
	return c.add(ctx, "Adicionar Cliente", office.ClientFields,
		func(v office.Values) (string, any, error) {
			cl, err := c.svc.CreateClient.Execute(ctx, office.ClientFromValues(v))
			if err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("Cliente '%s' adicionado!", cl.Name), cl, nil
		})
}

func (c *Controller) AddCase(ctx context.Context) error {
	return c.add(ctx, "Adicionar Processo", office.CaseFields,
		func(v office.Values) (string, any, error) {
			cs, err := c.svc.CreateCase.Execute(ctx, office.CaseFromValues(v))
			if err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("Processo '%s' adicionado!", cs.Number), cs, nil
		})
}

func (c *Controller) AddPayment(ctx context.Context) error {
	return c.add(ctx, "Registrar Pagamento", office.PaymentFields,
		func(v office.Values) (string, any, error) {
			p, err := c.svc.RegisterPayment.Execute(ctx, office.PaymentFromValues(v))
			if err != nil {
				return "", nil, err
			}
			return "Pagamento registrado!", p, nil
		})
}

func (c *Controller) AddHearing(ctx context.Context) error {
	return c.add(ctx, "Agendar Audiência", office.HearingFields,
		func(v office.Values) (string, any, error) {
			h, err := c.svc.ScheduleHearing.Execute(ctx, office.HearingFromValues(v))
			if err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("Audiência agendada para %s (cliente %s)!", h.DateTime, h.ClientCPF), h, nil
		})
}

// add runs collect → validate → submit. Validation failures re-request
// the form with the previous answers pre-filled; any other failure ends
// the flow.
func (c *Controller) add(
	ctx context.Context,
	title string,
	fields []office.Field,
	submit func(office.Values) (string, any, error),
) error {

	prompt := office.InputFields(fields)

	for attempt := 1; ; attempt++ {
		raw, err := c.prompter.CollectFields(ctx, title, prompt)
		if err != nil {
			return c.collectFailed(title, err)
		}

		values, err := office.ParseValues(fields, raw)
		if err == nil {
			var (
				msg    string
				result any
			)
			msg, result, err = submit(values)
			if err == nil {
				c.present(result)
				c.notifier.Notify(Info, "Sucesso", msg)
				return nil
			}
		}

		if !office.IsValidation(err) {
			c.notifyFailure(title, err)
			return err
		}

		c.notifier.Notify(Warning, "Erro de Entrada", sentence(validationMessage(err)))
		if c.maxAttempts > 0 && attempt >= c.maxAttempts {
			return err
		}
		prompt = office.WithDefaults(prompt, raw)
	}
}

// ======================================================
// FIND FLOWS
// ======================================================

func (c *Controller) FindClient(ctx context.Context) error {
	cpf, err := c.collectKey(ctx, "Buscar Cliente", "Digite o CPF do cliente a buscar:")
	if err != nil {
		return err
	}

	cl, err := c.svc.Lookup.Client(ctx, cpf)
	switch {
	case errors.Is(err, office.ErrNotFound):
		c.notifier.Notify(Info, "Cliente Não Encontrado",
			fmt.Sprintf("Cliente com CPF '%s' não encontrado.", cpf))
		return err
	case err != nil:
		c.notifyFailure("Buscar Cliente", err)
		return err
	}

	c.present(cl)
	c.notifier.Notify(Info, "Cliente Encontrado", strings.Join(cl.Details(), "\n"))
	return nil
}

func (c *Controller) FindCase(ctx context.Context) error {
	number, err := c.collectKey(ctx, "Buscar Processo", "Digite o número do processo a buscar:")
	if err != nil {
		return err
	}

	cs, err := c.svc.Lookup.Case(ctx, number)
	switch {
	case errors.Is(err, office.ErrNotFound):
		c.notifier.Notify(Info, "Processo Não Encontrado",
			fmt.Sprintf("Processo com número '%s' não encontrado.", number))
		return err
	case err != nil:
		c.notifyFailure("Buscar Processo", err)
		return err
	}

	c.present(cs)
	c.notifier.Notify(Info, "Processo Encontrado", strings.Join(cs.Details(), "\n"))
	return nil
}

func (c *Controller) FindPayments(ctx context.Context) error {
	cpf, err := c.collectKey(ctx, "Buscar Pagamento", "Digite o CPF do cliente para buscar pagamentos:")
	if err != nil {
		return err
	}

	ps, err := c.svc.Lookup.Payments(ctx, cpf)
	if err != nil {
		c.notifyFailure("Buscar Pagamento", err)
		return err
	}
	c.present(ps)
	if len(ps) == 0 {
		c.notifier.Notify(Info, "Pagamento Não Encontrado",
			fmt.Sprintf("Nenhum pagamento encontrado para o CPF '%s'.", cpf))
		return nil
	}

	items := make([][]string, 0, len(ps))
	for _, p := range ps {
		items = append(items, p.Details())
	}
	c.notifier.Notify(Info, "Pagamentos Encontrados",
		listing(fmt.Sprintf("Pagamentos para CPF: %s", cpf), "Pagamento", items))
	return nil
}

func (c *Controller) FindHearings(ctx context.Context) error {
	number, err := c.collectKey(ctx, "Buscar Audiência", "Digite o número do processo para buscar audiências:")
	if err != nil {
		return err
	}

	hs, err := c.svc.Lookup.Hearings(ctx, number)
	if err != nil {
		c.notifyFailure("Buscar Audiência", err)
		return err
	}
	c.present(hs)
	if len(hs) == 0 {
		c.notifier.Notify(Info, "Audiência Não Encontrada",
			fmt.Sprintf("Nenhuma audiência encontrada para o Processo '%s'.", number))
		return nil
	}

	items := make([][]string, 0, len(hs))
	for _, h := range hs {
		items = append(items, h.Details())
	}
	c.notifier.Notify(Info, "Audiências Encontradas",
		listing(fmt.Sprintf("Audiências para Processo: %s", number), "Audiência", items))
	return nil
}

// collectKey asks for a lookup key. An empty answer counts as a cancel.
func (c *Controller) collectKey(ctx context.Context, title, prompt string) (string, error) {
	key, err := c.prompter.CollectString(ctx, title, prompt)
	if err != nil {
		return "", c.collectFailed(title, err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrCancelled
	}
	return key, nil
}

// ======================================================
// MESSAGES
// ======================================================

func (c *Controller) present(v any) {
	if r, ok := c.notifier.(ResultRecorder); ok {
		r.RecordResult(v)
	}
}

func (c *Controller) collectFailed(title string, err error) error {
	if errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled) {
		return ErrCancelled
	}
	c.notifier.Notify(Error, title, fmt.Sprintf("Erro ao ler a entrada: %v", err))
	return err
}

func (c *Controller) notifyFailure(title string, err error) {
	var (
		dup *office.DuplicateKeyError
		ref *office.ReferenceError
	)

	switch {
	case errors.As(err, &dup):
		c.notifier.Notify(Warning, "Erro", fmt.Sprintf("%s já existe.", describe(dup.Entity, dup.Key)))
	case errors.As(err, &ref):
		msg := fmt.Sprintf("%s não encontrado.", describe(ref.Entity, ref.Key))
		if ref.Entity == office.EntityClient {
			msg += " Adicione-o primeiro."
		}
		c.notifier.Notify(Warning, "Erro", msg)
	default:
		c.notifier.Notify(Error, "Erro",
			fmt.Sprintf("%s: não foi possível acessar o armazenamento (%v).", title, err))
	}
}

func describe(entity, key string) string {
	switch entity {
	case office.EntityClient:
		return fmt.Sprintf("Cliente com CPF '%s'", key)
	case office.EntityCase:
		return fmt.Sprintf("Processo com número '%s'", key)
	default:
		return fmt.Sprintf("Registro '%s'", key)
	}
}

func validationMessage(err error) string {
	var ve *office.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}

// sentence upper-cases the first letter and ends s with a period.
func sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	s = string(unicode.ToUpper(r)) + s[size:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}

const separator = "----------------------------------------"

func listing(header, label string, items [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s ---\n\n", header)
	for i, lines := range items {
		fmt.Fprintf(&b, "%s #%d:\n%s\n", label, i+1, strings.Join(lines, "\n"))
		b.WriteString(separator + "\n")
	}
	return b.String()
}
