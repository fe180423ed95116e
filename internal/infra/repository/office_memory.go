package repository

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
)

// OfficeMemoryRepository implements office.Repository with in-memory maps
// and slices. Nothing survives a restart; used for demos and tests.
type OfficeMemoryRepository struct {
	mu  sync.RWMutex
	loc *time.Location

	clients  map[string]office.Client
	cases    map[string]office.Case
	payments []office.Payment
	hearings []memoryHearing
}

type memoryHearing struct {
	caseNumber string
	at         time.Time
	location   string
	kind       string
}

func NewOfficeMemoryRepository(loc *time.Location) *OfficeMemoryRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &OfficeMemoryRepository{
		loc:     loc,
		clients: make(map[string]office.Client),
		cases:   make(map[string]office.Case),
	}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *OfficeMemoryRepository) AddClient(_ context.Context, client office.Client) error {
	if err := client.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[client.CPF]; ok {
		return &office.DuplicateKeyError{Entity: office.EntityClient, Key: client.CPF}
	}
	r.clients[client.CPF] = client
	return nil
}

func (r *OfficeMemoryRepository) FindClientByCPF(_ context.Context, cpf string) (*office.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[cpf]
	if !ok {
		return nil, office.ErrNotFound
	}
	return &c, nil
}

// --------------------------------------------------
// Case
// --------------------------------------------------

func (r *OfficeMemoryRepository) AddCase(_ context.Context, c office.Case) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cases[c.Number]; ok {
		return &office.DuplicateKeyError{Entity: office.EntityCase, Key: c.Number}
	}
	if _, ok := r.clients[c.ClientCPF]; !ok {
		return &office.ReferenceError{Entity: office.EntityClient, Key: c.ClientCPF}
	}
	r.cases[c.Number] = c
	return nil
}

func (r *OfficeMemoryRepository) FindCaseByNumber(_ context.Context, number string) (*office.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cases[number]
	if !ok {
		return nil, office.ErrNotFound
	}
	return &c, nil
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *OfficeMemoryRepository) AddPayment(_ context.Context, payment office.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[payment.ClientCPF]; !ok {
		return &office.ReferenceError{Entity: office.EntityClient, Key: payment.ClientCPF}
	}
	r.payments = append(r.payments, payment)
	return nil
}

func (r *OfficeMemoryRepository) FindPaymentsByClientCPF(_ context.Context, cpf string) ([]office.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []office.Payment{}
	for _, p := range r.payments {
		if p.ClientCPF == cpf {
			out = append(out, p)
		}
	}
	return out, nil
}

// --------------------------------------------------
// Hearing
// --------------------------------------------------

func (r *OfficeMemoryRepository) AddHearing(_ context.Context, hearing office.Hearing) (*office.Hearing, error) {
	if err := hearing.Validate(); err != nil {
		return nil, err
	}

	at, err := office.ParseHearingTime(hearing.DateTime, r.loc)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cs, ok := r.cases[hearing.CaseNumber]
	if !ok {
		return nil, &office.ReferenceError{Entity: office.EntityCase, Key: hearing.CaseNumber}
	}

	r.hearings = append(r.hearings, memoryHearing{
		caseNumber: cs.Number,
		at:         at,
		location:   hearing.Location,
		kind:       hearing.Type,
	})

	return &office.Hearing{
		CaseNumber: cs.Number,
		ClientCPF:  cs.ClientCPF,
		DateTime:   office.FormatHearingTime(at, r.loc),
		Location:   hearing.Location,
		Type:       hearing.Type,
	}, nil
}

func (r *OfficeMemoryRepository) FindHearingsByCaseNumber(_ context.Context, number string) ([]office.Hearing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []office.Hearing{}
	for _, h := range r.hearings {
		if h.caseNumber != number {
			continue
		}
		out = append(out, office.Hearing{
			CaseNumber: h.caseNumber,
			ClientCPF:  r.cases[h.caseNumber].ClientCPF,
			DateTime:   office.FormatHearingTime(h.at, r.loc),
			Location:   h.location,
			Type:       h.kind,
		})
	}
	return out, nil
}

var _ office.Repository = (*OfficeMemoryRepository)(nil)
