package mapping

import (
	"reflect"
	"sort"
	"time"

	"github.com/classfetch/classfetch/model"
)

// Option configures a mapping call.
type Option func(*options)

type options struct {
	loc      *time.Location
	failFast bool
	drift    func(entity string, keys []string)
}

// WithLocation supplies the school's configured time zone, used to anchor
// timestamps that arrive without an offset. Defaults to local time.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// WithFailFast makes MapMany abort on the first record error instead of
// collecting per-record failures.
func WithFailFast() Option {
	return func(o *options) {
		o.failFast = true
	}
}

// WithDriftSink registers a callback invoked with the raw keys of a payload
// that the entity schema does not cover. Unknown keys are ignored for
// forward compatibility; the sink exists for callers who want to notice
// upstream schema drift.
func WithDriftSink(sink func(entity string, keys []string)) Option {
	return func(o *options) {
		o.drift = sink
	}
}

func buildOptions(opts []Option) options {
	o := options{loc: time.Local}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Map applies the schema of T to one raw JSON object and produces a typed
// record. Field presence in the record mirrors field presence in the
// payload: nothing is fabricated for absent fields and nothing present is
// dropped. The exceptions are list-typed fields, which default to empty
// slices so callers can range without nil checks, and JSON null, which is
// treated the same as absence.
func Map[T any](raw map[string]any, opts ...Option) (*T, error) {
	o := buildOptions(opts)
	rec := new(T)
	if err := mapInto(reflect.ValueOf(rec).Elem(), raw, &o); err != nil {
		return nil, err
	}
	return rec, nil
}

func mapInto(rv reflect.Value, raw map[string]any, o *options) error {
	sch, err := schemaOf(rv.Type())
	if err != nil {
		return err
	}

	for _, f := range sch.Fields {
		v, ok := raw[f.Name]
		if v == nil {
			ok = false
		}
		if !ok {
			if f.Presence == Always {
				return &MissingFieldError{Entity: sch.Entity, Field: f.Name}
			}
			if f.rule.isList() {
				// Absent collections become empty ones; see the
				// package doc for why lists are special-cased.
				rv.Field(f.index).Set(emptyList(f.rule))
			}
			continue
		}

		set, err := coerceField(f, v, o)
		if err != nil {
			return &MalformedFieldError{
				Entity: sch.Entity,
				Field:  f.Name,
				Value:  v,
				Reason: err.Error(),
				Err:    err,
			}
		}
		rv.Field(f.index).Set(set)
	}

	if o.drift != nil {
		if keys := unknownKeys(sch, raw); len(keys) > 0 {
			o.drift(sch.Entity, keys)
		}
	}
	return nil
}

func coerceField(f Field, v any, o *options) (reflect.Value, error) {
	switch f.rule {
	case ruleInt:
		n, err := coerceInt64(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(&n), nil
	case ruleString:
		s, err := coerceString(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(&s), nil
	case ruleBool:
		b, err := coerceBool(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(&b), nil
	case ruleDate:
		d, err := coerceDate(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(&d), nil
	case ruleDateTime:
		t, err := coerceDateTime(v, o.loc)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(&t), nil
	case ruleStringList:
		list, err := coerceStringList(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(list), nil
	case ruleIntList:
		list, err := coerceIntList(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(list), nil
	default:
		widgets, err := decodeWidgets(v, o.loc)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(widgets), nil
	}
}

func emptyList(r rule) reflect.Value {
	switch r {
	case ruleStringList:
		return reflect.ValueOf([]string{})
	case ruleIntList:
		return reflect.ValueOf([]int64{})
	default:
		return reflect.ValueOf([]model.Widget{})
	}
}

func unknownKeys(sch *Schema, raw map[string]any) []string {
	var keys []string
	for k := range raw {
		if _, ok := sch.byName[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
