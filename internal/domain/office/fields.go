package office

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ===============================
// Field descriptors
// ===============================

type FieldType int

const (
	FieldString FieldType = iota
	FieldInteger
	FieldDecimal
	FieldOptionalString
)

func (t FieldType) String() string {
	switch t {
	case FieldString:
		return "string"
	case FieldInteger:
		return "integer"
	case FieldDecimal:
		return "decimal"
	case FieldOptionalString:
		return "optional-string"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// Field describes one entity attribute. The same list drives input
// validation and the detail summary.
type Field struct {
	Label   string
	Key     string
	Default string
	Type    FieldType

	// Derived fields are rendered but never collected from input.
	Derived bool

	// MaxLen caps string fields in characters; 0 means no limit.
	MaxLen int

	// Max caps integer and decimal fields; 0 means no limit.
	Max float64

	// Check is an extra rule applied to the trimmed raw value.
	Check func(raw string) error
}

// InputFields returns the fields a user is asked for, in declaration order.
func InputFields(fields []Field) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if f.Derived {
			continue
		}
		out = append(out, f)
	}
	return out
}

// WithDefaults returns a copy of fields whose defaults are taken from raw.
// Used to re-request a form with the previous answers.
func WithDefaults(fields []Field, raw map[string]string) []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	for i := range out {
		if v, ok := raw[out[i].Key]; ok {
			out[i].Default = v
		}
	}
	return out
}

// ===============================
// Values
// ===============================

// Values maps a field key to its typed value: string, int, float64, or
// *string for optional strings (nil when absent).
type Values map[string]any

func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

func (v Values) Int(key string) int {
	n, _ := v[key].(int)
	return n
}

func (v Values) Float(key string) float64 {
	f, _ := v[key].(float64)
	return f
}

func (v Values) OptionalString(key string) *string {
	s, _ := v[key].(*string)
	return s
}

// ===============================
// Validation
// ===============================

// ParseField converts a raw input string into the typed value for f.
func ParseField(f Field, raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		if f.Type == FieldOptionalString {
			return (*string)(nil), nil
		}
		return nil, invalid(f.Key, fmt.Sprintf("o campo '%s' é obrigatório", f.Label))
	}

	var value any
	switch f.Type {
	case FieldString:
		value = raw

	case FieldOptionalString:
		s := raw
		value = &s

	case FieldInteger:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, invalid(f.Key, fmt.Sprintf("o campo '%s' deve ser um número inteiro", f.Label))
		}
		if n <= 0 {
			return nil, invalid(f.Key, fmt.Sprintf("'%s' deve ser um número inteiro positivo", f.Label))
		}
		value = n

	case FieldDecimal:
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, invalid(f.Key, fmt.Sprintf("o campo '%s' deve ser um número válido", f.Label))
		}
		if x <= 0 {
			return nil, invalid(f.Key, fmt.Sprintf("'%s' deve ser um número positivo", f.Label))
		}
		value = x

	default:
		return nil, invalid(f.Key, fmt.Sprintf("tipo de campo desconhecido: %s", f.Type))
	}

	if err := checkLimits(f, value); err != nil {
		return nil, err
	}

	if f.Check != nil {
		if err := f.Check(raw); err != nil {
			return nil, err
		}
	}

	return value, nil
}

// DecimalPlaces is the precision kept for decimal (money) fields.
const DecimalPlaces = 2

// checkLimits enforces MaxLen, Max and the decimal precision on an already
// typed value, so nothing the storage columns cannot hold gets that far.
func checkLimits(f Field, v any) error {
	switch x := v.(type) {
	case string:
		if f.MaxLen > 0 && utf8.RuneCountInString(x) > f.MaxLen {
			return invalid(f.Key, fmt.Sprintf("'%s' deve ter no máximo %d caracteres", f.Label, f.MaxLen))
		}
	case *string:
		if x != nil {
			return checkLimits(f, *x)
		}
	case int:
		if f.Max > 0 && float64(x) > f.Max {
			return invalid(f.Key, fmt.Sprintf("'%s' deve ser no máximo %s", f.Label, strconv.FormatFloat(f.Max, 'f', -1, 64)))
		}
	case float64:
		if f.Max > 0 && x > f.Max {
			return invalid(f.Key, fmt.Sprintf("'%s' deve ser no máximo %s", f.Label, strconv.FormatFloat(f.Max, 'f', DecimalPlaces, 64)))
		}
		scale := math.Pow10(DecimalPlaces)
		if math.Round(x*scale)/scale != x {
			return invalid(f.Key, fmt.Sprintf("'%s' deve ter no máximo %d casas decimais", f.Label, DecimalPlaces))
		}
	}
	return nil
}

// ParseValues parses every input field of fields from raw, stopping at the
// first invalid one.
func ParseValues(fields []Field, raw map[string]string) (Values, error) {
	values := make(Values, len(fields))
	for _, f := range InputFields(fields) {
		v, err := ParseField(f, raw[f.Key])
		if err != nil {
			return nil, err
		}
		values[f.Key] = v
	}
	return values, nil
}

// validateValues applies the ParseField rules to already typed values.
func validateValues(fields []Field, values Values) error {
	for _, f := range InputFields(fields) {
		if err := validateValue(f, values[f.Key]); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(f Field, v any) error {
	switch f.Type {
	case FieldString:
		s, _ := v.(string)
		if strings.TrimSpace(s) == "" {
			return invalid(f.Key, fmt.Sprintf("o campo '%s' é obrigatório", f.Label))
		}
		if err := checkLimits(f, s); err != nil {
			return err
		}
		if f.Check != nil {
			return f.Check(strings.TrimSpace(s))
		}
	case FieldOptionalString:
		return checkLimits(f, v)
	case FieldInteger:
		n, _ := v.(int)
		if n <= 0 {
			return invalid(f.Key, fmt.Sprintf("'%s' deve ser um número inteiro positivo", f.Label))
		}
		return checkLimits(f, n)
	case FieldDecimal:
		x, _ := v.(float64)
		if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
			return invalid(f.Key, fmt.Sprintf("'%s' deve ser um número positivo", f.Label))
		}
		return checkLimits(f, x)
	}
	return nil
}

// ===============================
// Rendering
// ===============================

// Details renders every field as a "label: value" line, in declaration order.
func Details(fields []Field, values Values) []string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%s: %s", f.Label, formatValue(f, values[f.Key])))
	}
	return lines
}

func formatValue(f Field, v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case *string:
		if x == nil {
			return "-"
		}
		return *x
	case float64:
		if f.Type == FieldDecimal {
			return strconv.FormatFloat(x, 'f', 2, 64)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
