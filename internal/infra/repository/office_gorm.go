package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
	"github.com/BruksfildServices01/escritorio-juridico/internal/models"
)

// OfficeGormRepository persists office records through gorm (postgres or
// sqlite). Each write is a single INSERT; primary and foreign keys are the
// authoritative guard for the invariants.
type OfficeGormRepository struct {
	db  *gorm.DB
	loc *time.Location
}

func NewOfficeGormRepository(db *gorm.DB, loc *time.Location) *OfficeGormRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &OfficeGormRepository{db: db, loc: loc}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *OfficeGormRepository) AddClient(
	ctx context.Context,
	client office.Client,
) error {

	if err := client.Validate(); err != nil {
		return err
	}

	row := models.Client{
		CPF:     client.CPF,
		Name:    client.Name,
		Age:     client.Age,
		Phone:   client.Phone,
		Address: client.Address,
		Email:   client.Email,
	}

	err := r.db.WithContext(ctx).Create(&row).Error
	return translateWriteError("add client", err, writeTarget{
		entity: office.EntityClient,
		key:    client.CPF,
	})
}

func (r *OfficeGormRepository) FindClientByCPF(
	ctx context.Context,
	cpf string,
) (*office.Client, error) {

	var row models.Client
	if err := r.db.WithContext(ctx).
		Where("cpf = ?", cpf).
		First(&row).Error; err != nil {
		return nil, translateReadError("find client", err)
	}

	return &office.Client{
		Name:    row.Name,
		CPF:     row.CPF,
		Age:     row.Age,
		Phone:   row.Phone,
		Address: row.Address,
		Email:   row.Email,
	}, nil
}

// --------------------------------------------------
// Case
// --------------------------------------------------

func (r *OfficeGormRepository) AddCase(
	ctx context.Context,
	c office.Case,
) error {

	if err := c.Validate(); err != nil {
		return err
	}

	exists, err := r.exists(ctx, &models.Case{}, "case_number = ?", c.Number)
	if err != nil {
		return &office.StorageUnavailableError{Op: "add case", Err: err}
	}
	if exists {
		return &office.DuplicateKeyError{Entity: office.EntityCase, Key: c.Number}
	}

	exists, err = r.exists(ctx, &models.Client{}, "cpf = ?", c.ClientCPF)
	if err != nil {
		return &office.StorageUnavailableError{Op: "add case", Err: err}
	}
	if !exists {
		return &office.ReferenceError{Entity: office.EntityClient, Key: c.ClientCPF}
	}

	row := models.Case{
		CaseNumber:  c.Number,
		ClientCPF:   c.ClientCPF,
		Description: c.Description,
	}

	err = r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&row).Error
	return translateWriteError("add case", err, writeTarget{
		entity:    office.EntityCase,
		key:       c.Number,
		refEntity: office.EntityClient,
		refKey:    c.ClientCPF,
	})
}

func (r *OfficeGormRepository) FindCaseByNumber(
	ctx context.Context,
	number string,
) (*office.Case, error) {

	var row models.Case
	if err := r.db.WithContext(ctx).
		Where("case_number = ?", number).
		First(&row).Error; err != nil {
		return nil, translateReadError("find case", err)
	}

	return &office.Case{
		Number:      row.CaseNumber,
		Description: row.Description,
		ClientCPF:   row.ClientCPF,
	}, nil
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *OfficeGormRepository) AddPayment(
	ctx context.Context,
	payment office.Payment,
) error {

	if err := payment.Validate(); err != nil {
		return err
	}

	exists, err := r.exists(ctx, &models.Client{}, "cpf = ?", payment.ClientCPF)
	if err != nil {
		return &office.StorageUnavailableError{Op: "add payment", Err: err}
	}
	if !exists {
		return &office.ReferenceError{Entity: office.EntityClient, Key: payment.ClientCPF}
	}

	row := models.Payment{
		ClientCPF:   payment.ClientCPF,
		Amount:      payment.Amount,
		Description: payment.Description,
	}

	err = r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&row).Error
	return translateWriteError("add payment", err, writeTarget{
		entity:    office.EntityPayment,
		refEntity: office.EntityClient,
		refKey:    payment.ClientCPF,
	})
}

func (r *OfficeGormRepository) FindPaymentsByClientCPF(
	ctx context.Context,
	cpf string,
) ([]office.Payment, error) {

	var rows []models.Payment
	if err := r.db.WithContext(ctx).
		Where("client_cpf = ?", cpf).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, &office.StorageUnavailableError{Op: "find payments", Err: err}
	}

	out := make([]office.Payment, 0, len(rows))
	for _, p := range rows {
		out = append(out, office.Payment{
			ClientCPF:   p.ClientCPF,
			Amount:      p.Amount,
			Description: p.Description,
		})
	}

	return out, nil
}

// --------------------------------------------------
// Hearing
// --------------------------------------------------

func (r *OfficeGormRepository) AddHearing(
	ctx context.Context,
	hearing office.Hearing,
) (*office.Hearing, error) {

	if err := hearing.Validate(); err != nil {
		return nil, err
	}

	at, err := office.ParseHearingTime(hearing.DateTime, r.loc)
	if err != nil {
		return nil, err
	}

	var cs models.Case
	if err := r.db.WithContext(ctx).
		Where("case_number = ?", hearing.CaseNumber).
		First(&cs).Error; err != nil {
		err = translateReadError("add hearing", err)
		if errors.Is(err, office.ErrNotFound) {
			return nil, &office.ReferenceError{Entity: office.EntityCase, Key: hearing.CaseNumber}
		}
		return nil, err
	}

	row := models.Hearing{
		CaseNumber:  cs.CaseNumber,
		ScheduledAt: at,
		Location:    hearing.Location,
		HearingType: hearing.Type,
	}

	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&row).Error; err != nil {
		return nil, translateWriteError("add hearing", err, writeTarget{
			entity:    office.EntityHearing,
			refEntity: office.EntityCase,
			refKey:    hearing.CaseNumber,
		})
	}

	return &office.Hearing{
		CaseNumber: cs.CaseNumber,
		ClientCPF:  cs.ClientCPF,
		DateTime:   office.FormatHearingTime(at, r.loc),
		Location:   row.Location,
		Type:       row.HearingType,
	}, nil
}

func (r *OfficeGormRepository) FindHearingsByCaseNumber(
	ctx context.Context,
	number string,
) ([]office.Hearing, error) {

	var rows []models.Hearing
	if err := r.db.WithContext(ctx).
		Preload("Case").
		Where("case_number = ?", number).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, &office.StorageUnavailableError{Op: "find hearings", Err: err}
	}

	out := make([]office.Hearing, 0, len(rows))
	for _, h := range rows {
		out = append(out, office.Hearing{
			CaseNumber: h.CaseNumber,
			ClientCPF:  h.Case.ClientCPF,
			DateTime:   office.FormatHearingTime(h.ScheduledAt, r.loc),
			Location:   h.Location,
			Type:       h.HearingType,
		})
	}

	return out, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (r *OfficeGormRepository) exists(
	ctx context.Context,
	model any,
	query string,
	args ...any,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where(query, args...).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Compile-time check
var _ office.Repository = (*OfficeGormRepository)(nil)
