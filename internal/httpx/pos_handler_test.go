package httpx

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ariefcatur/go-laundry-pos.git/internal/pos"
)

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{pos.ErrVoucherNotFound, http.StatusNotFound},
		{pos.ErrMemberNotFound, http.StatusNotFound},
		{pos.ErrInventoryNotFound, http.StatusNotFound},
		{pos.ErrEmptyOrder, http.StatusBadRequest},
		{pos.ErrInvalidItem, http.StatusBadRequest},
		{pos.ErrUnsupportedPayment, http.StatusBadRequest},
		{pos.ErrInsufficientCash, http.StatusPaymentRequired},
		{pos.ErrInsufficientPoints, http.StatusConflict},
		{pos.ErrPriceUnresolved, http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", pos.ErrVoucherNotFound), http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		writeError(rec, tt.err)
		if rec.Code != tt.want {
			t.Errorf("writeError(%v) code = %d, want %d", tt.err, rec.Code, tt.want)
		}
	}
}

func TestCreateOrderRejectsBadRequests(t *testing.T) {
	h := &PosHandler{} // repo tidak tersentuh di jalur validasi awal

	tests := []struct {
		name   string
		body   string
		userID string
	}{
		{"invalidJSON", `{`, "u-1"},
		{"missingCustomerName", `{"payment_type":"cash","items":[]}`, "u-1"},
		{"missingUserHeader", `{"customer_name":"Budi","payment_type":"cash","items":[]}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/pos/orders", strings.NewReader(tt.body))
			if tt.userID != "" {
				req.Header.Set("X-User-Id", tt.userID)
			}
			rec := httptest.NewRecorder()
			h.createOrder(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("code = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}
