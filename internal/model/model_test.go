package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    time.Time
		wantErr bool
	}{
		{
			name:    "date only",
			payload: `"2024-03-10"`,
			want:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "rfc3339",
			payload: `"2024-03-10T15:04:05Z"`,
			want:    time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC),
		},
		{
			name:    "null keeps zero value",
			payload: `null`,
		},
		{
			name:    "empty string keeps zero value",
			payload: `""`,
		},
		{
			name:    "garbage",
			payload: `"next tuesday"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var d Date
			err := json.Unmarshal([]byte(tt.payload), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, d.Time.Equal(tt.want), "got %v, want %v", d.Time, tt.want)
		})
	}
}
