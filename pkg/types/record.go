package types

import (
	"fmt"
	"strconv"
)

// FieldID is the record field that carries the record identity.
const FieldID = "id"

// Record is one row of application data: a mapping from field name to a
// scalar value (string, number, bool or nil). Records are treated as
// read-only by the view; it only filters, reorders and slices references.
type Record map[string]any

// ID returns the record identity formatted as a string. Integer and float
// identities format without a fractional part. Returns "" when the record
// has no id.
func (r Record) ID() string {
	return FormatValue(r[FieldID])
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// FormatValue returns the display string of a scalar value. nil formats as
// the empty string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	}
	if f, ok := ToFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// ToFloat converts any Go numeric value to float64. The second result is
// false for non-numeric values, including numeric-looking strings.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
