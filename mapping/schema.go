package mapping

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/classfetch/classfetch/model"
)

// Presence classifies when a field may legitimately be absent from a
// payload. The distinction encodes a documented API behavior: list
// endpoints return a reduced projection of the detail field set, so the
// mapper must tell "the API never sends this here" apart from "the API
// sent something unexpected".
type Presence int

const (
	// Optional fields may be absent or null in any call shape.
	Optional Presence = iota
	// DetailOnly fields are returned by detail calls but may be omitted
	// from list projections.
	DetailOnly
	// Always fields are populated by both call shapes; absence is an
	// upstream contract break.
	Always
)

func (p Presence) String() string {
	switch p {
	case Always:
		return "always"
	case DetailOnly:
		return "detail"
	default:
		return "optional"
	}
}

// rule identifies the coercion applied to a raw JSON value.
type rule int

const (
	ruleInt rule = iota
	ruleString
	ruleBool
	ruleDate
	ruleDateTime
	ruleStringList
	ruleIntList
	ruleWidgetList
)

func (r rule) isList() bool {
	return r == ruleStringList || r == ruleIntList || r == ruleWidgetList
}

func (r rule) String() string {
	switch r {
	case ruleInt:
		return "integer"
	case ruleString:
		return "string"
	case ruleBool:
		return "boolean"
	case ruleDate:
		return "date"
	case ruleDateTime:
		return "datetime"
	case ruleStringList:
		return "list of string"
	case ruleIntList:
		return "list of integer"
	default:
		return "list of widget"
	}
}

// Field is one entry of an entity schema: a raw JSON key, the coercion
// rule applied to its value, and its presence policy.
type Field struct {
	Name     string
	Presence Presence

	rule  rule
	index int // struct field index
}

// Rule returns the name of the field's coercion rule.
func (f Field) Rule() string { return f.rule.String() }

// Schema is the ordered field list for one entity kind.
type Schema struct {
	Entity string
	Fields []Field

	byName map[string]int
}

// Field looks a field up by its raw JSON key.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.Fields[i], true
}

// SchemaFor returns the compiled schema for a record type. Schemas are
// derived from the `tc` struct tags on the model types and compiled once.
func SchemaFor[T any]() (*Schema, error) {
	return schemaOf(reflect.TypeOf((*T)(nil)).Elem())
}

var schemaCache sync.Map // reflect.Type -> *Schema

func schemaOf(t reflect.Type) (*Schema, error) {
	if cached, ok := schemaCache.Load(t); ok {
		return cached.(*Schema), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrUnsupportedType, t)
	}

	s := &Schema{
		Entity: t.Name(),
		byName: make(map[string]int),
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("tc")
		if !ok || tag == "-" {
			continue
		}

		f := Field{index: i}
		name, policy, _ := strings.Cut(tag, ",")
		f.Name = name
		switch policy {
		case "always":
			f.Presence = Always
		case "detail":
			f.Presence = DetailOnly
		case "optional", "":
			f.Presence = Optional
		default:
			return nil, fmt.Errorf("%w: %s.%s: unknown presence policy %q", ErrUnsupportedType, t.Name(), sf.Name, policy)
		}

		r, err := ruleFor(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
		}
		f.rule = r

		s.byName[f.Name] = len(s.Fields)
		s.Fields = append(s.Fields, f)
	}

	actual, _ := schemaCache.LoadOrStore(t, s)
	return actual.(*Schema), nil
}

var (
	dateType   = reflect.TypeOf(model.Date{})
	timeType   = reflect.TypeOf(time.Time{})
	widgetType = reflect.TypeOf((*model.Widget)(nil)).Elem()
	int64Type  = reflect.TypeOf(int64(0))
	stringType = reflect.TypeOf("")
	boolType   = reflect.TypeOf(false)
)

func ruleFor(t reflect.Type) (rule, error) {
	switch t.Kind() {
	case reflect.Pointer:
		switch t.Elem() {
		case int64Type:
			return ruleInt, nil
		case stringType:
			return ruleString, nil
		case boolType:
			return ruleBool, nil
		case dateType:
			return ruleDate, nil
		case timeType:
			return ruleDateTime, nil
		}
	case reflect.Slice:
		switch t.Elem() {
		case stringType:
			return ruleStringList, nil
		case int64Type:
			return ruleIntList, nil
		case widgetType:
			return ruleWidgetList, nil
		}
	}
	return 0, fmt.Errorf("%w: no coercion rule for %s", ErrUnsupportedType, t)
}
