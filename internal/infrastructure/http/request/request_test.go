package request_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mrops-br/shopwave-api/internal/app/dto"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		dst       func() interface{}
		wantError string
	}{
		{
			name: "add to cart: ok",
			body: `{"product_id":"1"}`,
			dst:  func() interface{} { return &dto.AddToCartRequest{} },
		},
		{
			name:      "add to cart without product id: error",
			body:      `{}`,
			dst:       func() interface{} { return &dto.AddToCartRequest{} },
			wantError: "invalid request: product_id failed on required",
		},
		{
			name: "update quantity to zero: ok",
			body: `{"quantity":0}`,
			dst:  func() interface{} { return &dto.UpdateQuantityRequest{} },
		},
		{
			name: "update quantity negative: ok",
			body: `{"quantity":-3}`,
			dst:  func() interface{} { return &dto.UpdateQuantityRequest{} },
		},
		{
			name:      "update quantity missing: error",
			body:      `{}`,
			dst:       func() interface{} { return &dto.UpdateQuantityRequest{} },
			wantError: "invalid request: quantity failed on required",
		},
		{
			name:      "update quantity too large: error",
			body:      `{"quantity":1000}`,
			dst:       func() interface{} { return &dto.UpdateQuantityRequest{} },
			wantError: "invalid request: quantity failed on lte=999",
		},
		{
			name:      "malformed body: error",
			body:      `{"product_id":`,
			dst:       func() interface{} { return &dto.AddToCartRequest{} },
			wantError: "invalid request",
		},
		{
			name:      "unknown field: error",
			body:      `{"product_id":"1","coupon":"x"}`,
			dst:       func() interface{} { return &dto.AddToCartRequest{} },
			wantError: "invalid request",
		},
	}

	v := request.NewValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			err := v.BindJSON(r, tt.dst())
			if tt.wantError != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, request.ErrInvalidRequest)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateBrowseRequest(t *testing.T) {
	v := request.NewValidator()

	require.NoError(t, v.Validate(&dto.BrowseProductsRequest{Search: "speaker", Sort: "rating"}))

	err := v.Validate(&dto.BrowseProductsRequest{Search: strings.Repeat("x", 101)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search failed on max=100")
}
