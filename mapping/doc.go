// Package mapping turns the loosely-structured JSON returned by the
// Transparent Classroom API into typed records.
//
// The API returns different field subsets for the same logical entity
// depending on the call shape: listing endpoints return a reduced
// projection of what the detail endpoint returns, and some fields only
// exist for certain entity states. Rather than hand-writing a parser per
// entity per shape, each record type in the model package declares its
// schema once, as `tc` struct tags naming the raw JSON key and a presence
// policy, and one generic routine interprets that schema.
//
// # Presence policies
//
// Every schema field is tagged always, detail, or optional:
//
//   - always: both call shapes populate it. Absence (or JSON null) means
//     the upstream contract broke and maps to MissingFieldError.
//   - detail: list calls may omit it; its absence from a list payload is
//     not an error.
//   - optional: may be absent or null anywhere.
//
// Mapped records mirror payload presence exactly: nil means the key was
// not there, and unknown raw keys are ignored (or surfaced through
// WithDriftSink). The single exception is list-typed fields, which default
// to empty slices when absent so callers never nil-check collections.
//
// # Mapping calls
//
// Map handles a single object, MapMany an array:
//
//	child, err := mapping.Map[model.Child](raw)
//	items, err := mapping.MapMany[model.Child](rawList)
//
// MapMany is best-effort by default: a malformed record yields an Item
// carrying its error and index while its siblings map normally. Use
// WithFailFast to abort a batch on the first failure instead.
//
// # Widgets
//
// Form fields, template widgets, conference report data and application
// fields all embed the polymorphic widget payload; see the model package
// for the variant set. Unrecognized widget types map to
// model.UnknownWidget and never fail the record.
//
// The layer is pure and stateless: it performs no I/O, never blocks, and
// is safe for concurrent use against independent payloads.
package mapping
