package shared

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envelope Envelope
		want     string
	}{
		{
			name:     "success with data",
			envelope: Success(map[string]bool{"available": true}, ""),
			want:     `{"success":true,"data":{"available":true}}`,
		},
		{
			name:     "success with message only",
			envelope: Success(nil, "Left party"),
			want:     `{"success":true,"message":"Left party"}`,
		},
		{
			name:     "failure without details",
			envelope: Failure("User not found", ""),
			want:     `{"success":false,"error":"User not found"}`,
		},
		{
			name:     "failure with details",
			envelope: Failure("An unexpected error occurred", "connection refused"),
			want:     `{"success":false,"error":"An unexpected error occurred","details":"connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.envelope)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}
