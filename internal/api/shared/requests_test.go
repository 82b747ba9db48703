package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=1,max=5"`
	Step        *int    `json:"onboardingStep" validate:"omitempty,gte=0,lte=10"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr error
		anyErr  bool
	}{
		{name: "valid json", body: `{"displayName":"Ana"}`},
		{name: "unknown fields ignored", body: `{"displayName":"Ana","favouriteColor":"teal"}`},
		{name: "invalid json", body: `{"displayName":"Ana",}`, anyErr: true},
		{name: "empty body", body: "", wantErr: ErrEmptyBody},
		{name: "trailing value", body: `{"displayName":"Ana"} {}`, anyErr: true},
		{name: "wrong type", body: `{"onboardingStep":"three"}`, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var target sampleRequest
			err := DecodeJSON(w, req, &target)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				require.NotNil(t, target.DisplayName)
				assert.Equal(t, "Ana", *target.DisplayName)
			}
		})
	}
}

func TestDecodeJSON_NoBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPut, "/test", nil)
	var target sampleRequest
	assert.ErrorIs(t, DecodeJSON(httptest.NewRecorder(), req, &target), ErrEmptyBody)
}

func TestValidateRequest_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	step := 11
	err := ValidateRequest(&sampleRequest{Step: &step})
	require.Error(t, err)

	field, tag := FirstFieldError(err)
	assert.Equal(t, "onboardingStep", field)
	assert.Equal(t, "lte", tag)

	assert.NoError(t, ValidateRequest(&sampleRequest{}))
}

func TestFirstFieldError_NonValidationError(t *testing.T) {
	t.Parallel()

	field, tag := FirstFieldError(assert.AnError)
	assert.Empty(t, field)
	assert.Empty(t, tag)
}
