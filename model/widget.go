package model

// Widget is a single labeled question/answer unit embedded in forms, form
// templates, conference reports and online applications. The API renders a
// widget differently depending on its "type" discriminator, and each
// rendering kind carries its own attribute set, so widgets are modeled as a
// closed set of variants plus an open passthrough for kinds this library
// does not know about yet.
type Widget interface {
	// Kind returns the widget's type discriminator as it appeared on the
	// wire ("text", "select", ...).
	Kind() string
}

// Widget type discriminators known to this library.
const (
	WidgetText     = "text"
	WidgetSelect   = "select"
	WidgetDate     = "date"
	WidgetCheckbox = "checkbox"
	WidgetHeader   = "header"
)

// TextWidget is a free-text question, optionally answered.
type TextWidget struct {
	Name  *string
	Label *string
	Value *string
	// Extra holds attributes present on the payload that the variant does
	// not consume, so nothing is lost when the upstream schema grows.
	Extra map[string]any
}

func (TextWidget) Kind() string { return WidgetText }

// SelectWidget is a choice question with a fixed option list.
type SelectWidget struct {
	Name    *string
	Label   *string
	Value   *string
	Options []string
	Extra   map[string]any
}

func (SelectWidget) Kind() string { return WidgetSelect }

// DateWidget is a calendar-date question.
type DateWidget struct {
	Name  *string
	Label *string
	Value *Date
	Extra map[string]any
}

func (DateWidget) Kind() string { return WidgetDate }

// CheckboxWidget is a yes/no question.
type CheckboxWidget struct {
	Name    *string
	Label   *string
	Checked *bool
	Extra   map[string]any
}

func (CheckboxWidget) Kind() string { return WidgetCheckbox }

// HeaderWidget is a section heading with no answer.
type HeaderWidget struct {
	Label *string
	Extra map[string]any
}

func (HeaderWidget) Kind() string { return WidgetHeader }

// UnknownWidget preserves a widget whose type discriminator this library
// does not recognize. It is not an error: new widget kinds appear upstream
// without notice, and one unrecognized question must not block ingestion of
// the rest of the form. Attrs is the raw attribute map, verbatim.
type UnknownWidget struct {
	Type  string
	Attrs map[string]any
}

func (w UnknownWidget) Kind() string { return w.Type }
