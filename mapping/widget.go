package mapping

import (
	"fmt"
	"sort"
	"time"

	"github.com/classfetch/classfetch/model"
)

// decodeWidgets converts a raw widget collection into model.Widget values.
// Conference reports and form templates send a JSON array of widget
// objects; older form and application payloads send a JSON object of
// name->value pairs instead, which is normalized into text widgets ordered
// by name (Go maps do not preserve the upstream key order).
func decodeWidgets(v any, loc *time.Location) ([]model.Widget, error) {
	switch raw := v.(type) {
	case []any:
		out := make([]model.Widget, 0, len(raw))
		for i, el := range raw {
			w, err := decodeWidget(el, loc)
			if err != nil {
				return nil, fmt.Errorf("widget %d: %w", i, err)
			}
			out = append(out, w)
		}
		return out, nil
	case map[string]any:
		names := make([]string, 0, len(raw))
		for name := range raw {
			names = append(names, name)
		}
		sort.Strings(names)

		out := make([]model.Widget, 0, len(names))
		for _, name := range names {
			w, err := decodeWidget(map[string]any{
				"type":  model.WidgetText,
				"name":  name,
				"value": raw[name],
			}, loc)
			if err != nil {
				return nil, fmt.Errorf("widget %q: %w", name, err)
			}
			out = append(out, w)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected an array of widgets")
	}
}

// decodeWidget maps one raw widget object onto its variant. Unrecognized
// type discriminators (and widgets with no usable discriminator at all)
// become UnknownWidget rather than errors, so a new upstream widget kind
// never blocks ingestion of its siblings. Malformed attributes on a known
// variant do fail.
func decodeWidget(v any, loc *time.Location) (model.Widget, error) {
	attrs, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a widget object")
	}

	kind, ok := attrs["type"].(string)
	if !ok {
		return model.UnknownWidget{Attrs: attrs}, nil
	}

	rest := newAttrReader(attrs)
	switch kind {
	case model.WidgetText:
		w := model.TextWidget{}
		var err error
		if w.Name, err = rest.str("name"); err != nil {
			return nil, err
		}
		if w.Label, err = rest.str("label"); err != nil {
			return nil, err
		}
		if w.Value, err = rest.str("value"); err != nil {
			return nil, err
		}
		w.Extra = rest.extra()
		return w, nil

	case model.WidgetSelect:
		w := model.SelectWidget{}
		var err error
		if w.Name, err = rest.str("name"); err != nil {
			return nil, err
		}
		if w.Label, err = rest.str("label"); err != nil {
			return nil, err
		}
		if w.Value, err = rest.str("value"); err != nil {
			return nil, err
		}
		if w.Options, err = rest.strings("options"); err != nil {
			return nil, err
		}
		w.Extra = rest.extra()
		return w, nil

	case model.WidgetDate:
		w := model.DateWidget{}
		var err error
		if w.Name, err = rest.str("name"); err != nil {
			return nil, err
		}
		if w.Label, err = rest.str("label"); err != nil {
			return nil, err
		}
		if w.Value, err = rest.date("value"); err != nil {
			return nil, err
		}
		w.Extra = rest.extra()
		return w, nil

	case model.WidgetCheckbox:
		w := model.CheckboxWidget{}
		var err error
		if w.Name, err = rest.str("name"); err != nil {
			return nil, err
		}
		if w.Label, err = rest.str("label"); err != nil {
			return nil, err
		}
		if w.Checked, err = rest.boolean("value"); err != nil {
			return nil, err
		}
		w.Extra = rest.extra()
		return w, nil

	case model.WidgetHeader:
		w := model.HeaderWidget{}
		var err error
		if w.Label, err = rest.str("label"); err != nil {
			return nil, err
		}
		w.Extra = rest.extra()
		return w, nil

	default:
		return model.UnknownWidget{Type: kind, Attrs: attrs}, nil
	}
}

// attrReader consumes recognized widget attributes and keeps whatever is
// left over, so known variants preserve attributes the upstream schema
// added after this library was written.
type attrReader struct {
	rest map[string]any
}

func newAttrReader(attrs map[string]any) *attrReader {
	rest := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if k == "type" {
			continue
		}
		rest[k] = v
	}
	return &attrReader{rest: rest}
}

func (r *attrReader) take(key string) (any, bool) {
	v, ok := r.rest[key]
	if !ok || v == nil {
		delete(r.rest, key)
		return nil, false
	}
	delete(r.rest, key)
	return v, true
}

func (r *attrReader) str(key string) (*string, error) {
	v, ok := r.take(key)
	if !ok {
		return nil, nil
	}
	s, err := coerceString(v)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", key, err)
	}
	return &s, nil
}

func (r *attrReader) strings(key string) ([]string, error) {
	v, ok := r.take(key)
	if !ok {
		return nil, nil
	}
	list, err := coerceStringList(v)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", key, err)
	}
	return list, nil
}

func (r *attrReader) date(key string) (*model.Date, error) {
	v, ok := r.take(key)
	if !ok {
		return nil, nil
	}
	d, err := coerceDate(v)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", key, err)
	}
	return &d, nil
}

func (r *attrReader) boolean(key string) (*bool, error) {
	v, ok := r.take(key)
	if !ok {
		return nil, nil
	}
	b, err := coerceBool(v)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", key, err)
	}
	return &b, nil
}

func (r *attrReader) extra() map[string]any {
	if len(r.rest) == 0 {
		return nil
	}
	return r.rest
}
