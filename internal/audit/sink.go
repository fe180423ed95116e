package audit

import (
	"context"
	"encoding/json"
	"sync"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/escritorio-juridico/internal/models"
)

// Sink stores audit events.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

// Query filters an audit listing. Empty fields match everything.
type Query struct {
	Action string
	Entity string
	Limit  int
	Offset int
}

// Reader lists stored events, newest first, with the unpaged total.
type Reader interface {
	List(ctx context.Context, q Query) ([]Event, int64, error)
}

// ======================================================
// GORM
// ======================================================

// GormSink writes events to the audit_logs table.
type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Write(ctx context.Context, ev Event) error {
	row := models.AuditLog{
		OperationID: ev.OperationID,
		Action:      ev.Action,
		Entity:      ev.Entity,
		EntityKey:   ev.EntityKey,
		Metadata:    encodeMetadata(ev.Metadata),
		CreatedAt:   ev.At,
	}

	return s.db.WithContext(ctx).Create(&row).Error
}

func (s *GormSink) List(ctx context.Context, q Query) ([]Event, int64, error) {
	tx := s.db.WithContext(ctx).Model(&models.AuditLog{})

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := tx.Session(&gorm.Session{}).Order("id DESC")
	if q.Limit > 0 {
		page = page.Limit(q.Limit)
	}
	if q.Offset > 0 {
		page = page.Offset(q.Offset)
	}

	var rows []models.AuditLog
	if err := page.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]Event, 0, len(rows))
	for _, r := range rows {
		ev := Event{
			OperationID: r.OperationID,
			Action:      r.Action,
			Entity:      r.Entity,
			EntityKey:   r.EntityKey,
			At:          r.CreatedAt,
		}
		if r.Metadata != "" {
			ev.Metadata = json.RawMessage(r.Metadata)
		}
		out = append(out, ev)
	}
	return out, total, nil
}

func encodeMetadata(metadata any) string {
	if metadata == nil {
		return ""
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(b)
}

// ======================================================
// MEMORY
// ======================================================

// MemorySink keeps events in process memory.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Write(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, ev)
	return nil
}

// Events returns a copy of the recorded events in write order.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *MemorySink) List(_ context.Context, q Query) ([]Event, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]Event, 0, len(s.events))
	for i := len(s.events) - 1; i >= 0; i-- {
		ev := s.events[i]
		if q.Action != "" && ev.Action != q.Action {
			continue
		}
		if q.Entity != "" && ev.Entity != q.Entity {
			continue
		}
		matched = append(matched, ev)
	}

	total := int64(len(matched))
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Offset >= len(matched) {
		return []Event{}, total, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, total, nil
}

var (
	_ Sink   = (*GormSink)(nil)
	_ Sink   = (*MemorySink)(nil)
	_ Reader = (*GormSink)(nil)
	_ Reader = (*MemorySink)(nil)
)
