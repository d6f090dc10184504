// Package tc provides a read-only client for the Transparent Classroom API.
//
// Transparent Classroom is a student record-keeping system for Montessori
// schools. This package implements the read surface of its v1 API: rosters,
// classrooms, activity feeds, events, lesson proficiency levels, forms and
// templates, conference reports, online applications, schools, sessions and
// users.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the API client, holding credentials, session token and the
//     acting school/masquerade identity
//   - Queries: per-endpoint parameter structs mirroring the upstream query
//     surface (child/classroom/session filters, date ranges, pagination)
//   - Errors: structured error types for better error handling
//
// Response payloads are converted into typed records by the mapping
// package; this client only owns transport, authentication and query
// building.
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := tc.NewClient(tc.DefaultHost, "me@school.org", "secret", logger,
//		tc.WithTimeout(30*time.Second),
//		tc.WithSchoolID(42),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	children, err := client.ListChildren(ctx, tc.ChildQuery{ClassroomID: 7})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Authentication is lazy: the first request exchanges the configured email
// and password for an API token, which subsequent requests send in the
// X-TransparentClassroomToken header. Network admins can act on behalf of
// a school with WithSchoolID, and admins can act as another user with
// WithMasqueradeID.
//
// # Error handling
//
// List calls map their payloads best-effort: a single malformed record is
// logged and skipped rather than failing the whole roster. WithStrict
// switches the client to fail-fast batch mapping. Transport-level failures
// surface as *APIError with the HTTP status and body attached.
package tc
