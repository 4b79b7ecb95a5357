package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Payload is the loosely typed "data" object of a request body.
// Numbers are kept as json.Number so integer checks see the submitted literal.
type Payload map[string]any

// Decode parses a JSON value. Anything that is not an object yields an empty payload.
func Decode(raw []byte) (Payload, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Payload{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var v any
	if err := decoder.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	p, ok := From(v)
	if !ok {
		return Payload{}, nil
	}

	return p, nil
}

// From converts a decoded JSON object into a Payload.
func From(v any) (Payload, bool) {
	switch m := v.(type) {
	case Payload:
		return m, true
	case map[string]any:
		return Payload(m), true
	default:
		return nil, false
	}
}

// Has reports whether the field is present with a truthy value.
func (p Payload) Has(field string) bool {
	return Truthy(p[field])
}

// Text returns the field as text. Strings are returned verbatim, other
// values as their JSON text, absent values as "".
func (p Payload) Text(field string) string {
	switch v := p[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(b)
	}
}

// String returns the field only when it holds a JSON string.
func (p Payload) String(field string) (string, bool) {
	s, ok := p[field].(string)

	return s, ok
}

// Integer returns the field when it holds an integral JSON number.
func (p Payload) Integer(field string) (int64, bool) {
	return Integer(p[field])
}

// List returns the field when it holds a JSON array.
func (p Payload) List(field string) ([]any, bool) {
	l, ok := p[field].([]any)

	return l, ok
}

// Truthy reports whether v counts as present: null, false, "" and zero do not.
// Arrays and objects always do, even when empty.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			// out of float range, still a non-zero literal
			return true
		}

		return f != 0
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}

// Clone returns a deep copy of p. Nested objects and arrays are copied too.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}

	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(Payload(t).Clone())
	case Payload:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}

		return out
	default:
		return v
	}
}

// Number returns v as a float64 when it is a finite JSON number.
func Number(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// IsInteger reports whether v is a finite number without a fractional part,
// whatever its magnitude. Numeric strings are not integers.
func IsInteger(v any) bool {
	f, ok := Number(v)

	return ok && f == math.Trunc(f)
}

// Integer reports whether v is a number without a fractional part
// that fits in an int64. Numeric strings are not integers.
func Integer(v any) (int64, bool) {
	var f float64
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, true
		}
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = t
	case int:
		return int64(t), true
	case int64:
		return t, true
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}
