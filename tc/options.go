package tc

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout      time.Duration
	httpClient   *http.Client
	schoolID     int64
	masqueradeID int64
	location     *time.Location
	strict       bool
	drift        func(entity string, keys []string)
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient supplies a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithSchoolID makes the client act on behalf of a school in the account's
// network. Sent as the X-TransparentClassroomSchoolId header.
func WithSchoolID(id int64) Option {
	return func(o *clientOptions) {
		o.schoolID = id
	}
}

// WithMasqueradeID makes the client act as another user. Sent as the
// X-TransparentClassroomMasqueradeId header; requires an admin account.
func WithMasqueradeID(id int64) Option {
	return func(o *clientOptions) {
		o.masqueradeID = id
	}
}

// WithLocation sets the school's time zone, used when mapping timestamps
// that arrive without an offset.
func WithLocation(loc *time.Location) Option {
	return func(o *clientOptions) {
		o.location = loc
	}
}

// WithStrict makes list calls fail on the first malformed record instead
// of skipping it.
func WithStrict() Option {
	return func(o *clientOptions) {
		o.strict = true
	}
}

// WithDriftSink forwards unknown payload keys to the given callback; see
// mapping.WithDriftSink.
func WithDriftSink(sink func(entity string, keys []string)) Option {
	return func(o *clientOptions) {
		o.drift = sink
	}
}
