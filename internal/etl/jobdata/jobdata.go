// Package jobdata encapsulates data access from incoming job payloads.
//
// All missing-data errors carry the full parent-key context, so a lookup
// of "job_guid" under "job" reports ['job']['job_guid'] rather than just
// the immediately missing key.
package jobdata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/asutherland/treeherder-service/internal/errors"
)

// JobData is a read-only view over an untyped nested payload that tracks
// the path of keys consumed so far.
type JobData struct {
	data    map[string]any
	context []string
}

// New wraps an already decoded payload.
func New(data map[string]any) JobData {
	return JobData{data: data}
}

// FromJSON decodes a raw JSON blob into JobData.
func FromJSON(blob []byte) (JobData, error) {
	var data map[string]any
	if err := json.Unmarshal(blob, &data); err != nil {
		return JobData{}, apperrors.Malformedf("malformed JSON: %v", err)
	}
	return JobData{data: data}, nil
}

// Get returns the value stored under key. Nested objects come back as
// JobData with the path context extended so deeper lookups also report
// full paths.
func (d JobData) Get(key string) (any, error) {
	value, ok := d.data[key]
	if !ok {
		return nil, d.missing(key)
	}

	if nested, isMap := value.(map[string]any); isMap {
		return JobData{data: nested, context: d.childContext(key)}, nil
	}
	return value, nil
}

// Map returns the nested object stored under key.
func (d JobData) Map(key string) (JobData, error) {
	value, err := d.Get(key)
	if err != nil {
		return JobData{}, err
	}
	nested, ok := value.(JobData)
	if !ok {
		return JobData{}, apperrors.Validationf(
			"expected object at %s, got %T", d.describe(key), value)
	}
	return nested, nil
}

// String returns the scalar stored under key, coerced to a string the way
// upstream submitters expect (numbers without a float suffix).
func (d JobData) String(key string) (string, error) {
	value, err := d.Get(key)
	if err != nil {
		return "", err
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return formatNumber(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	default:
		return "", apperrors.Validationf(
			"expected scalar at %s, got %T", d.describe(key), value)
	}
}

// StringSlice returns the array of strings stored under key.
func (d JobData) StringSlice(key string) ([]string, error) {
	value, err := d.Get(key)
	if err != nil {
		return nil, err
	}
	raw, ok := value.([]any)
	if !ok {
		return nil, apperrors.Validationf(
			"expected array at %s, got %T", d.describe(key), value)
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			s = fmt.Sprint(item)
		}
		out = append(out, s)
	}
	return out, nil
}

// Raw returns the underlying decoded payload.
func (d JobData) Raw() map[string]any {
	return d.data
}

func (d JobData) childContext(key string) []string {
	ctx := make([]string, 0, len(d.context)+1)
	ctx = append(ctx, d.context...)
	ctx = append(ctx, key)
	return ctx
}

func (d JobData) missing(key string) error {
	return apperrors.MissingField(
		fmt.Sprintf("missing data: %s.", d.describe(key)))
}

func (d JobData) describe(key string) string {
	var b strings.Builder
	for _, c := range d.childContext(key) {
		fmt.Fprintf(&b, "['%s']", c)
	}
	return b.String()
}

// formatNumber renders JSON numbers without a trailing ".0" for integral
// values, matching how submitters serialize request ids and timestamps.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
