package tc

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildrenByClassrooms(t *testing.T) {
	rosters := map[string][]any{
		"10": {
			map[string]any{"id": 1, "first_name": "Maya", "last_name": "Santos"},
			map[string]any{"id": 2, "first_name": "Theo", "last_name": "Nguyen"},
		},
		"20": {
			// Theo is enrolled in both classrooms.
			map[string]any{"id": 2, "first_name": "Theo", "last_name": "Nguyen"},
			map[string]any{"id": 3, "first_name": "Lena", "last_name": "Okafor"},
		},
	}

	server := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/children.json": func(w http.ResponseWriter, r *http.Request) {
			roster, ok := rosters[r.URL.Query().Get("classroom_id")]
			require.True(t, ok, "unexpected classroom_id %q", r.URL.Query().Get("classroom_id"))
			json.NewEncoder(w).Encode(roster)
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)
	children, err := client.ChildrenByClassrooms(context.Background(), []int64{10, 20})
	require.NoError(t, err)

	require.Len(t, children, 3)
	assert.Equal(t, int64(1), *children[0].ID)
	assert.Equal(t, int64(2), *children[1].ID)
	assert.Equal(t, int64(3), *children[2].ID)
}

func TestChildrenByClassroomsEmpty(t *testing.T) {
	client := newTestClient(t, "https://school.example.org")
	children, err := client.ChildrenByClassrooms(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, children)
}

func TestChildrenByClassroomsPropagatesErrors(t *testing.T) {
	server := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/children.json": func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("classroom_id") == "20" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode([]any{})
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.ChildrenByClassrooms(context.Background(), []int64{10, 20})
	require.Error(t, err)
}
