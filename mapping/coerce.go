package mapping

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/classfetch/classfetch/model"
)

// Coercion rules. Each converts a raw JSON value into its target Go type
// or reports why it cannot; absence is handled by the mapper, never here.
// Numbers may arrive as json.Number (the client decodes with UseNumber),
// float64 (plain decoding) or Go ints (payloads built in code), but never
// as strings: a string where an integer is expected is upstream breakage,
// not something to paper over.

func coerceInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("expected an integer")
		}
		return i, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected an integer")
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("expected an integer")
	}
}

func coerceString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected a string")
	}
	return s, nil
}

func coerceBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected a boolean")
	}
	return b, nil
}

func coerceDate(v any) (model.Date, error) {
	s, ok := v.(string)
	if !ok {
		return model.Date{}, fmt.Errorf("expected a YYYY-MM-DD string")
	}
	return model.ParseDate(s)
}

// datetimeLayouts are the timestamp shapes observed in API responses. The
// offset-less variants are interpreted in the school's configured location.
var datetimeLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339, true},
	{"2006-01-02 15:04:05.999999Z07:00", true},
	{"2006-01-02 15:04:05.999999-0700", true},
	{"2006-01-02T15:04:05.999999", false},
	{"2006-01-02 15:04:05.999999", false},
}

func coerceDateTime(v any, loc *time.Location) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("expected an ISO-8601 timestamp string")
	}
	for _, l := range datetimeLayouts {
		var t time.Time
		var err error
		if l.zoned {
			t, err = time.Parse(l.layout, s)
		} else {
			t, err = time.ParseInLocation(l.layout, s, loc)
		}
		if err == nil {
			return t, nil
		}
	}
	// Older payloads under-specify time as a bare date; fall through to
	// the date rule and pin it to midnight.
	d, err := model.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return d.Time(loc), nil
}

func coerceStringList(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return append([]string{}, list...), nil
	case []any:
		out := make([]string, 0, len(list))
		for i, el := range list {
			s, err := coerceString(el)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected an array of strings")
	}
}

func coerceIntList(v any) ([]int64, error) {
	switch list := v.(type) {
	case []int64:
		return append([]int64{}, list...), nil
	case []any:
		out := make([]int64, 0, len(list))
		for i, el := range list {
			n, err := coerceInt64(el)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected an array of integers")
	}
}
