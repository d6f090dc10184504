package mapping

import "fmt"

// Item pairs one element of a mapped collection with its source index and
// either the typed record or the error that kept it from mapping.
type Item[T any] struct {
	Index  int
	Record *T
	Err    error
}

// MapMany applies the schema of T to every element of a raw JSON array,
// preserving source order.
//
// The default policy is best-effort: one malformed record in a large
// roster must not block processing of the rest, so per-record failures are
// returned in place (Item.Err set, Item.Record nil) and the call itself
// succeeds. With WithFailFast the first record error aborts the whole
// batch and is returned wrapped with its index.
func MapMany[T any](raws []any, opts ...Option) ([]Item[T], error) {
	o := buildOptions(opts)
	items := make([]Item[T], 0, len(raws))

	for i, el := range raws {
		item := Item[T]{Index: i}

		obj, ok := el.(map[string]any)
		if !ok {
			sch, err := SchemaFor[T]()
			if err != nil {
				return nil, err
			}
			item.Err = &MalformedFieldError{
				Entity: sch.Entity,
				Value:  el,
				Reason: "payload element is not a JSON object",
			}
		} else {
			rec, err := Map[T](obj, withOptions(o))
			if err != nil {
				item.Err = err
			} else {
				item.Record = rec
			}
		}

		if item.Err != nil && o.failFast {
			return nil, fmt.Errorf("record %d: %w", i, item.Err)
		}
		items = append(items, item)
	}
	return items, nil
}

// withOptions reuses an already-built option set for nested calls.
func withOptions(o options) Option {
	return func(dst *options) { *dst = o }
}

// Records extracts the successfully mapped records from a batch, in order.
func Records[T any](items []Item[T]) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if item.Err == nil {
			out = append(out, item.Record)
		}
	}
	return out
}

// Failed extracts the failed items from a batch, in order.
func Failed[T any](items []Item[T]) []Item[T] {
	var out []Item[T]
	for _, item := range items {
		if item.Err != nil {
			out = append(out, item)
		}
	}
	return out
}
