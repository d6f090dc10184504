package mapping

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classfetch/classfetch/model"
)

func TestCoerceInt64(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    int64
		wantErr bool
	}{
		{name: "int", input: 42, want: 42},
		{name: "int64", input: int64(42), want: 42},
		{name: "json number", input: json.Number("42"), want: 42},
		{name: "integral float", input: float64(42), want: 42},
		{name: "fractional float", input: 42.5, wantErr: true},
		{name: "numeric string rejected", input: "42", wantErr: true},
		{name: "bool rejected", input: true, wantErr: true},
		{name: "fractional json number", input: json.Number("42.5"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceInt64(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceDateTime(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   any
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339",
			input: "2019-09-03T10:15:00Z",
			want:  time.Date(2019, 9, 3, 10, 15, 0, 0, time.UTC),
		},
		{
			name:  "space separated with fractional seconds and offset",
			input: "2019-09-03 10:15:00.123456-0400",
			want:  time.Date(2019, 9, 3, 10, 15, 0, 123456000, time.FixedZone("", -4*3600)),
		},
		{
			name:  "offset-less anchored in configured location",
			input: "2019-09-03 10:15:00",
			want:  time.Date(2019, 9, 3, 10, 15, 0, 0, ny),
		},
		{
			name:  "bare date falls back to midnight",
			input: "2019-09-03",
			want:  time.Date(2019, 9, 3, 0, 0, 0, 0, ny),
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "not a string",
			input:   1567505700,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceDateTime(tt.input, ny)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestCoerceDate(t *testing.T) {
	d, err := coerceDate("2019-09-03")
	require.NoError(t, err)
	assert.Equal(t, model.Date{Year: 2019, Month: time.September, Day: 3}, d)

	_, err = coerceDate("2019-09-03T00:00:00Z")
	assert.Error(t, err)

	_, err = coerceDate(20190903)
	assert.Error(t, err)
}

func TestCoerceStringList(t *testing.T) {
	got, err := coerceStringList([]any{"Hispanic", "White"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hispanic", "White"}, got)

	got, err = coerceStringList([]any{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	_, err = coerceStringList([]any{"ok", 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 1")

	_, err = coerceStringList("not a list")
	assert.Error(t, err)
}

func TestCoerceIntList(t *testing.T) {
	got, err := coerceIntList([]any{json.Number("1"), json.Number("2")})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, got)

	_, err = coerceIntList([]any{json.Number("1"), "2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 1")
}
