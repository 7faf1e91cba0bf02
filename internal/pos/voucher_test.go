package pos

import (
	"testing"
	"time"
)

func intp(v int) *int { return &v }

func TestComputeDiscountPercentage(t *testing.T) {
	tests := []struct {
		name     string
		pct      int
		cap      int
		subtotal int
		want     int
	}{
		{"belowCap", 10, 5000, 20000, 2000},
		{"hitsCap", 10, 1000, 20000, 1000},
		{"floorRounding", 15, 100000, 999, 150}, // 999 - floor(999*0.85) = 999 - 849
		{"fullDiscount", 100, 100000, 7500, 7500},
		{"zeroSubtotal", 25, 1000, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Voucher{DiscountPercentage: intp(tt.pct), MaxDiscountAmount: tt.cap}
			if got := ComputeDiscount(v, tt.subtotal); got != tt.want {
				t.Errorf("ComputeDiscount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeDiscountFixed(t *testing.T) {
	tests := []struct {
		name     string
		amount   int
		cap      int
		subtotal int
		want     int
	}{
		{"belowCap", 3000, 5000, 20000, 3000},
		{"cappedAtMax", 8000, 5000, 20000, 5000},
		{"exactCap", 5000, 5000, 20000, 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Voucher{DiscountAmount: intp(tt.amount), MaxDiscountAmount: tt.cap}
			if got := ComputeDiscount(v, tt.subtotal); got != tt.want {
				t.Errorf("ComputeDiscount() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Diskon tidak pernah melewati cap, model apapun, subtotal seberapapun.
func TestComputeDiscountNeverExceedsCap(t *testing.T) {
	subtotals := []int{0, 1, 999, 10_000, 123_456, 10_000_000}
	vouchers := []Voucher{
		{DiscountPercentage: intp(50), MaxDiscountAmount: 1000},
		{DiscountPercentage: intp(100), MaxDiscountAmount: 250},
		{DiscountAmount: intp(999_999), MaxDiscountAmount: 1500},
	}
	for _, v := range vouchers {
		for _, s := range subtotals {
			if got := ComputeDiscount(v, s); got > v.MaxDiscountAmount {
				t.Errorf("ComputeDiscount(%+v, %d) = %d exceeds cap %d", v, s, got, v.MaxDiscountAmount)
			}
		}
	}
}

func TestComputeDiscountNoModel(t *testing.T) {
	// schema menjamin tepat satu model terisi; kalau dua-duanya kosong,
	// diskon 0, bukan panic
	v := Voucher{MaxDiscountAmount: 1000, ExpiresAt: time.Now().Add(time.Hour)}
	if got := ComputeDiscount(v, 20000); got != 0 {
		t.Errorf("ComputeDiscount() = %d, want 0", got)
	}
}
