package mapping

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType indicates a record type whose fields the schema
// compiler cannot express.
var ErrUnsupportedType = errors.New("unsupported record type")

// Error types for the mapping layer. Both carry the entity kind and the
// offending field so upstream schema drift can be debugged from the error
// alone, without re-inspecting raw payloads.
type (
	// MissingFieldError indicates that a field with the `always` presence
	// policy was absent (or null) in a payload. It signals a breaking
	// change in the upstream API contract, not a caller mistake.
	MissingFieldError struct {
		Entity string
		Field  string
	}

	// MalformedFieldError indicates that a present field could not be
	// coerced to its declared type.
	MalformedFieldError struct {
		Entity string
		Field  string
		Value  any
		Reason string
		Err    error
	}
)

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field %q missing from payload", e.Entity, e.Field)
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("%s: field %q: %s (got %v)", e.Entity, e.Field, e.Reason, e.Value)
}

func (e *MalformedFieldError) Unwrap() error {
	return e.Err
}

// IsMappingError reports whether err originated in the mapping layer.
func IsMappingError(err error) bool {
	var missing *MissingFieldError
	var malformed *MalformedFieldError
	return errors.As(err, &missing) || errors.As(err, &malformed)
}
