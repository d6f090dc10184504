package mapping

import (
	"reflect"
	"time"

	"github.com/classfetch/classfetch/model"
)

// Payload converts a mapped record back into a raw JSON-shaped map, using
// the same schema that produced it. Only populated fields appear in the
// output, dates are re-serialized as YYYY-MM-DD strings, timestamps as
// RFC 3339. Mapping the result again yields an equal record, which is the
// round-trip property the tests lean on; it is also handy for fixtures and
// for persisting fetched records as JSON.
func Payload(record any) (map[string]any, error) {
	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	sch, err := schemaOf(rv.Type())
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)
	for _, f := range sch.Fields {
		fv := rv.Field(f.index)
		if f.rule.isList() {
			if fv.IsNil() {
				continue
			}
			raw[f.Name] = listPayload(f, fv)
			continue
		}
		if fv.IsNil() {
			continue
		}
		raw[f.Name] = scalarPayload(f, fv.Elem())
	}
	return raw, nil
}

func scalarPayload(f Field, fv reflect.Value) any {
	switch f.rule {
	case ruleDate:
		return fv.Interface().(model.Date).String()
	case ruleDateTime:
		return fv.Interface().(time.Time).Format(time.RFC3339Nano)
	default:
		return fv.Interface()
	}
}

func listPayload(f Field, fv reflect.Value) any {
	switch f.rule {
	case ruleWidgetList:
		widgets := fv.Interface().([]model.Widget)
		out := make([]any, 0, len(widgets))
		for _, w := range widgets {
			out = append(out, widgetPayload(w))
		}
		return out
	default:
		return fv.Interface()
	}
}

// widgetPayload rebuilds the raw attribute map of a widget, including any
// residual attributes the variant carried through.
func widgetPayload(w model.Widget) map[string]any {
	switch v := w.(type) {
	case model.TextWidget:
		return widgetAttrs(v.Kind(), v.Extra, attr{"name", v.Name}, attr{"label", v.Label}, attr{"value", v.Value})
	case model.SelectWidget:
		raw := widgetAttrs(v.Kind(), v.Extra, attr{"name", v.Name}, attr{"label", v.Label}, attr{"value", v.Value})
		if v.Options != nil {
			raw["options"] = v.Options
		}
		return raw
	case model.DateWidget:
		raw := widgetAttrs(v.Kind(), v.Extra, attr{"name", v.Name}, attr{"label", v.Label})
		if v.Value != nil {
			raw["value"] = v.Value.String()
		}
		return raw
	case model.CheckboxWidget:
		raw := widgetAttrs(v.Kind(), v.Extra, attr{"name", v.Name}, attr{"label", v.Label})
		if v.Checked != nil {
			raw["value"] = *v.Checked
		}
		return raw
	case model.HeaderWidget:
		return widgetAttrs(v.Kind(), v.Extra, attr{"label", v.Label})
	case model.UnknownWidget:
		raw := make(map[string]any, len(v.Attrs))
		for k, val := range v.Attrs {
			raw[k] = val
		}
		return raw
	default:
		return map[string]any{"type": w.Kind()}
	}
}

type attr struct {
	key string
	val *string
}

func widgetAttrs(kind string, extra map[string]any, attrs ...attr) map[string]any {
	raw := map[string]any{"type": kind}
	for _, a := range attrs {
		if a.val != nil {
			raw[a.key] = *a.val
		}
	}
	for k, v := range extra {
		raw[k] = v
	}
	return raw
}
