// Package form drives the add and find flows against an abstract
// presentation boundary, so the same flows serve the terminal and HTTP.
package form

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
)

// ErrCancelled is returned by a Prompter when the user gives up on a form.
var ErrCancelled = errors.New("operação cancelada")

type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Prompter collects input. Both calls block until the user answers or
// cancels.
type Prompter interface {
	// CollectFields asks for every field and returns raw answers keyed by
	// Field.Key. Field.Default holds the value to pre-fill.
	CollectFields(ctx context.Context, title string, fields []office.Field) (map[string]string, error)

	// CollectString asks for a single value, typically a lookup key.
	CollectString(ctx context.Context, title, prompt string) (string, error)
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(severity Severity, title, message string)
}

// ResultRecorder is an optional Notifier extension for adapters that also
// want the record behind a successful notification.
type ResultRecorder interface {
	RecordResult(v any)
}
