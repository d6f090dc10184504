package mapping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classfetch/classfetch/model"
)

func TestDecodeWidgetVariants(t *testing.T) {
	raw := []any{
		map[string]any{"type": "header", "label": "Emergency contacts"},
		map[string]any{"type": "text", "name": "contact_name", "label": "Contact name", "value": "Rosa Santos"},
		map[string]any{"type": "select", "name": "relationship", "value": "grandparent", "options": []any{"parent", "grandparent", "other"}},
		map[string]any{"type": "date", "name": "start_date", "value": "2025-09-02"},
		map[string]any{"type": "checkbox", "name": "photo_release", "value": true},
	}

	widgets, err := decodeWidgets(raw, time.UTC)
	require.NoError(t, err)
	require.Len(t, widgets, 5)

	header, ok := widgets[0].(model.HeaderWidget)
	require.True(t, ok)
	assert.Equal(t, "Emergency contacts", *header.Label)

	text, ok := widgets[1].(model.TextWidget)
	require.True(t, ok)
	assert.Equal(t, "contact_name", *text.Name)
	assert.Equal(t, "Rosa Santos", *text.Value)
	assert.Nil(t, text.Extra)

	sel, ok := widgets[2].(model.SelectWidget)
	require.True(t, ok)
	assert.Equal(t, "grandparent", *sel.Value)
	assert.Equal(t, []string{"parent", "grandparent", "other"}, sel.Options)

	date, ok := widgets[3].(model.DateWidget)
	require.True(t, ok)
	assert.Equal(t, "2025-09-02", date.Value.String())

	check, ok := widgets[4].(model.CheckboxWidget)
	require.True(t, ok)
	assert.True(t, *check.Checked)
}

func TestDecodeWidgetUnknownKindPassesThrough(t *testing.T) {
	raw := []any{
		map[string]any{"type": "text", "name": "note", "value": "fine"},
		map[string]any{
			"type":        "signature_pad_v2",
			"name":        "guardian_signature",
			"strokes":     []any{"m0,0", "l5,5"},
			"pad_version": "2.1",
		},
		map[string]any{"type": "text", "name": "other", "value": "also fine"},
	}

	widgets, err := decodeWidgets(raw, time.UTC)
	require.NoError(t, err)
	require.Len(t, widgets, 3)

	// The unrecognized kind lands in the middle without disturbing its
	// siblings, raw attributes intact.
	unknown, ok := widgets[1].(model.UnknownWidget)
	require.True(t, ok)
	assert.Equal(t, "signature_pad_v2", unknown.Type)
	assert.Equal(t, "signature_pad_v2", unknown.Kind())
	assert.Equal(t, []any{"m0,0", "l5,5"}, unknown.Attrs["strokes"])
	assert.Equal(t, "2.1", unknown.Attrs["pad_version"])

	_, ok = widgets[0].(model.TextWidget)
	assert.True(t, ok)
	_, ok = widgets[2].(model.TextWidget)
	assert.True(t, ok)
}

func TestDecodeWidgetMissingDiscriminator(t *testing.T) {
	widgets, err := decodeWidgets([]any{
		map[string]any{"name": "untyped", "value": "x"},
		map[string]any{"type": 42, "name": "numeric type"},
	}, time.UTC)
	require.NoError(t, err)
	require.Len(t, widgets, 2)

	for _, w := range widgets {
		_, ok := w.(model.UnknownWidget)
		assert.True(t, ok)
	}
}

func TestDecodeWidgetMalformedKnownVariantFails(t *testing.T) {
	_, err := decodeWidgets([]any{
		map[string]any{"type": "date", "name": "start", "value": "next tuesday"},
	}, time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widget 0")
	assert.Contains(t, err.Error(), `attribute "value"`)

	_, err = decodeWidgets([]any{"not an object"}, time.UTC)
	require.Error(t, err)
}

func TestDecodeWidgetKeepsExtraAttributes(t *testing.T) {
	widgets, err := decodeWidgets([]any{
		map[string]any{"type": "text", "name": "note", "value": "x", "placeholder": "Type here", "required": true},
	}, time.UTC)
	require.NoError(t, err)

	text, ok := widgets[0].(model.TextWidget)
	require.True(t, ok)
	assert.Equal(t, "Type here", text.Extra["placeholder"])
	assert.Equal(t, true, text.Extra["required"])
	assert.NotContains(t, text.Extra, "type")
	assert.NotContains(t, text.Extra, "name")
}

func TestDecodeWidgetsObjectFormNormalization(t *testing.T) {
	raw := map[string]any{
		"parent_name": "Rosa Santos",
		"allergies":   "none",
	}

	widgets, err := decodeWidgets(raw, time.UTC)
	require.NoError(t, err)
	require.Len(t, widgets, 2)

	// Names come out sorted since the source object has no usable order.
	first, ok := widgets[0].(model.TextWidget)
	require.True(t, ok)
	assert.Equal(t, "allergies", *first.Name)
	assert.Equal(t, "none", *first.Value)

	second, ok := widgets[1].(model.TextWidget)
	require.True(t, ok)
	assert.Equal(t, "parent_name", *second.Name)
	assert.Equal(t, "Rosa Santos", *second.Value)
}

func TestMapFormWithWidgets(t *testing.T) {
	raw := map[string]any{
		"id":    float64(7),
		"state": "submitted",
		"fields": []any{
			map[string]any{"type": "text", "name": "parent_name", "value": "Rosa Santos"},
		},
	}

	form, err := Map[model.Form](raw)
	require.NoError(t, err)
	require.Len(t, form.Fields, 1)
	assert.Equal(t, "text", form.Fields[0].Kind())

	// A broken widget surfaces as a field-level error on "fields".
	raw["fields"] = []any{map[string]any{"type": "checkbox", "name": "x", "value": "yes"}}
	_, err = Map[model.Form](raw)
	var malformed *MalformedFieldError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "fields", malformed.Field)
}
