package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mrops-br/shopwave-api/internal/domain"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http/request"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("repo.FindByID: %w", domain.ErrProductNotFound),
			wantStatus: http.StatusNotFound,
			wantType:   "not_found",
		},
		{
			name:       "out of stock",
			err:        fmt.Errorf("cart.Add: %w", domain.ErrProductOutOfStock),
			wantStatus: http.StatusConflict,
			wantType:   "conflict",
		},
		{
			name:       "line quantity limit",
			err:        fmt.Errorf("cart.Add: %w", domain.ErrQuantityLimit),
			wantStatus: http.StatusConflict,
			wantType:   "conflict",
		},
		{
			name:       "invalid sort key",
			err:        fmt.Errorf("%w: %q", domain.ErrInvalidSortKey, "newest"),
			wantStatus: http.StatusBadRequest,
			wantType:   "bad_request",
		},
		{
			name:       "invalid category",
			err:        domain.ErrInvalidCategory,
			wantStatus: http.StatusBadRequest,
			wantType:   "bad_request",
		},
		{
			name:       "invalid request",
			err:        fmt.Errorf("%w: quantity failed on required", request.ErrInvalidRequest),
			wantStatus: http.StatusBadRequest,
			wantType:   "bad_request",
		},
		{
			name:       "anything else",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantType:   "internal_server_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.FromError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantType, body.Error)
			assert.Equal(t, tt.err.Error(), body.Message)
		})
	}
}
