// Package validation turns raw form fields into typed inputs, collecting
// field-level messages instead of failing on the first problem.
package validation

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Form is the raw field set of a submission.
type Form map[string]string

// FormFromValues keeps the first value of every key.
func FormFromValues(values url.Values) Form {
	f := make(Form, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			f[key] = vals[0]
		}
	}
	return f
}

// With returns a copy of f with key set to value.
func (f Form) With(key, value string) Form {
	out := make(Form, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[key] = value
	return out
}

// Value returns the trimmed value of key and whether it is present.
// Empty or whitespace-only values count as absent.
func (f Form) Value(key string) (string, bool) {
	v := strings.TrimSpace(f[key])
	return v, v != ""
}

// FieldErrors maps a wire field name to its ordered messages.
type FieldErrors map[string][]string

// Add appends msg to field.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Has reports whether field already failed.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// Fields returns the failed field names in sorted order.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Map returns e as a plain map, or nil when empty.
func (e FieldErrors) Map() map[string][]string {
	if len(e) == 0 {
		return nil
	}
	return e
}

func optionalString(f Form, key string) *string {
	v, ok := f.Value(key)
	if !ok {
		return nil
	}
	return &v
}

// intField coerces key to an integer. Absent keys yield def when a default
// exists, otherwise "is required".
func intField(f Form, key string, def *int64, errs FieldErrors) int64 {
	raw, ok := f.Value(key)
	if !ok {
		if def != nil {
			return *def
		}
		errs.Add(key, msgRequired)
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errs.Add(key, msgInteger)
		return 0
	}
	return n
}

func decimalField(f Form, key string, errs FieldErrors) decimal.Decimal {
	raw, ok := f.Value(key)
	if !ok {
		errs.Add(key, msgRequired)
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		errs.Add(key, msgNumber)
		return decimal.Zero
	}
	if !priceExponentOK(d) {
		errs.Add(key, msgPrice)
		return decimal.Zero
	}
	return d
}
