package tc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classfetch/classfetch/mapping"
	"github.com/classfetch/classfetch/model"
)

const testToken = "s3cr3t-token"

func authPayload() map[string]any {
	return map[string]any{
		"id":         55,
		"type":       "teacher",
		"first_name": "Dana",
		"last_name":  "Whitfield",
		"email":      "dana@example.org",
		"roles":      []string{"teacher"},
		"school_id":  7,
		"api_token":  testToken,
	}
}

// newTestServer serves the authentication endpoint plus the given resource
// handlers, keyed by path.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/authenticate.json" {
			user, pass, ok := r.BasicAuth()
			if !ok || user != "dana@example.org" || pass != "hunter2" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(authPayload())
			return
		}
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h(w, r)
	}))
}

func newTestClient(t *testing.T, host string, opts ...Option) *Client {
	t.Helper()
	client, err := NewClient(host, "dana@example.org", "hunter2", zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name     string
		host     string
		email    string
		password string
		wantErr  bool
	}{
		{
			name:     "valid config",
			host:     "https://school.example.org",
			email:    "dana@example.org",
			password: "hunter2",
		},
		{
			name:     "default host",
			host:     "",
			email:    "dana@example.org",
			password: "hunter2",
		},
		{
			name:     "missing email",
			host:     "https://school.example.org",
			email:    "",
			password: "hunter2",
			wantErr:  true,
		},
		{
			name:     "missing password",
			host:     "https://school.example.org",
			email:    "dana@example.org",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.host, tt.email, tt.password, logger)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client := newTestClient(t, "https://school.example.org/")
	assert.Equal(t, "https://school.example.org", client.host)
}

func TestAuthenticate(t *testing.T) {
	server := newTestServer(t, nil)
	defer server.Close()

	client := newTestClient(t, server.URL)
	auth, err := client.Authenticate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testToken, auth.APIToken)
	require.NotNil(t, auth.SchoolID)
	assert.Equal(t, int64(7), *auth.SchoolID)

	require.NotNil(t, auth.User)
	assert.Equal(t, "Dana", *auth.User.FirstName)
	assert.Equal(t, "Whitfield", *auth.User.LastName)
	assert.Equal(t, []string{"teacher"}, auth.User.Roles)
}

func TestAuthenticateBadCredentials(t *testing.T) {
	server := newTestServer(t, nil)
	defer server.Close()

	client, err := NewClient(server.URL, "dana@example.org", "wrong", zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticateMissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":         55,
			"first_name": "Dana",
			"last_name":  "Whitfield",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListChildrenBestEffort(t *testing.T) {
	var sawHeaders bool
	server := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/children.json": func(w http.ResponseWriter, r *http.Request) {
			sawHeaders = true
			assert.Equal(t, testToken, r.Header.Get("X-TransparentClassroomToken"))
			assert.Equal(t, "7", r.Header.Get("X-TransparentClassroomSchoolId"))
			assert.Equal(t, "12", r.URL.Query().Get("classroom_id"))

			json.NewEncoder(w).Encode([]any{
				map[string]any{"id": 1, "first_name": "Maya", "last_name": "Santos"},
				map[string]any{"first_name": "Theo", "last_name": "Nguyen"},
				map[string]any{"id": 3, "first_name": "Lena", "last_name": "Okafor"},
			})
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL, WithSchoolID(7))
	children, err := client.ListChildren(context.Background(), ChildQuery{ClassroomID: 12})
	require.NoError(t, err)
	assert.True(t, sawHeaders)

	// The record with no id is skipped, its neighbors survive.
	require.Len(t, children, 2)
	assert.Equal(t, int64(1), *children[0].ID)
	assert.Equal(t, int64(3), *children[1].ID)
}

func TestListChildrenStrict(t *testing.T) {
	server := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/children.json": func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]any{
				map[string]any{"id": 1, "first_name": "Maya", "last_name": "Santos"},
				map[string]any{"first_name": "Theo", "last_name": "Nguyen"},
			})
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL, WithStrict())
	_, err := client.ListChildren(context.Background(), ChildQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
	assert.True(t, mapping.IsMappingError(err))
}

func TestGetChild(t *testing.T) {
	server := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/children/88.json": func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"id":         88,
				"first_name": "Maya",
				"last_name":  "Santos",
				"exit_notes": "moved away",
				"parent_ids": []any{4, 9},
			})
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)
	child, err := client.GetChild(context.Background(), 88)
	require.NoError(t, err)

	assert.Equal(t, int64(88), *child.ID)
	assert.Equal(t, "moved away", *child.ExitNotes)
	assert.Equal(t, []int64{4, 9}, child.ParentIDs)
}

func TestGetChildAsOf(t *testing.T) {
	server := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/children/88.json": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2024-09-01", r.URL.Query().Get("as_of"))
			json.NewEncoder(w).Encode(map[string]any{
				"id":         88,
				"first_name": "Maya",
				"last_name":  "Santos",
			})
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)
	asOf, err := model.ParseDate("2024-09-01")
	require.NoError(t, err)
	_, err = client.GetChildAsOf(context.Background(), 88, asOf)
	require.NoError(t, err)
}

func TestGetChildNotFound(t *testing.T) {
	server := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/children/404.json": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GetChild(context.Background(), 404)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, "/api/v1/children/404.json", apiErr.Endpoint)
}

func TestAuthenticateOnceAcrossRequests(t *testing.T) {
	var authCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/authenticate.json":
			authCalls++
			json.NewEncoder(w).Encode(authPayload())
		default:
			json.NewEncoder(w).Encode([]any{})
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := context.Background()
	_, err := client.ListSchools(ctx, PageQuery{})
	require.NoError(t, err)
	_, err = client.ListSessions(ctx, PageQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, authCalls)
}

func TestListConferenceReportsWidgets(t *testing.T) {
	server := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/conference_reports.json": func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]any{
				map[string]any{
					"id":       5,
					"name":     "Fall conference",
					"child_id": 88,
					"data": []any{
						map[string]any{"type": "text", "name": "summary", "value": "doing well"},
						map[string]any{"type": "signature_pad_v2", "name": "sig"},
					},
				},
			})
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)
	reports, err := client.ListConferenceReports(context.Background(), ConferenceReportQuery{ChildID: 88})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Widgets, 2)
	assert.Equal(t, "text", reports[0].Widgets[0].Kind())
	assert.Equal(t, "signature_pad_v2", reports[0].Widgets[1].Kind())
}
