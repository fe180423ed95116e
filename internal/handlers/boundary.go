package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
	"github.com/BruksfildServices01/escritorio-juridico/internal/form"
)

// requestPrompter answers a form flow from one HTTP request. It answers
// once; a second request for input means the first answers were rejected.
type requestPrompter struct {
	fields map[string]string
	key    string
	used   bool
}

func (p *requestPrompter) CollectFields(context.Context, string, []office.Field) (map[string]string, error) {
	if p.used || p.fields == nil {
		return nil, form.ErrCancelled
	}
	p.used = true
	return p.fields, nil
}

func (p *requestPrompter) CollectString(context.Context, string, string) (string, error) {
	if p.used {
		return "", form.ErrCancelled
	}
	p.used = true
	return p.key, nil
}

// responseNotifier keeps what the flow showed so it can become the
// response body. Only the last notification is kept.
type responseNotifier struct {
	severity form.Severity
	title    string
	message  string
	result   any
	notified bool
}

func (n *responseNotifier) Notify(severity form.Severity, title, message string) {
	n.severity, n.title, n.message = severity, title, message
	n.notified = true
}

func (n *responseNotifier) RecordResult(v any) { n.result = v }

var (
	_ form.Prompter       = (*requestPrompter)(nil)
	_ form.Notifier       = (*responseNotifier)(nil)
	_ form.ResultRecorder = (*responseNotifier)(nil)
)

// decodeFields reads a flat JSON object into raw field answers. Numbers
// keep their literal text so "150.50" and 150.50 parse the same way.
func decodeFields(body io.Reader) (map[string]string, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("body must be a JSON object")
	}

	raw := make(map[string]string, len(obj))
	for k, v := range obj {
		switch x := v.(type) {
		case nil:
		case string:
			raw[k] = x
		case json.Number:
			raw[k] = x.String()
		default:
			return nil, fmt.Errorf("field %q must be a string or a number", k)
		}
	}
	return raw, nil
}
