package pos

import (
	"errors"
	"testing"
)

func TestSettleCash(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		discount    int
		pointsValue int
		amountPaid  int
		wantTotal   int
		wantChange  int
		wantDisc    int
	}{
		{"exactTender", 10000, 0, 0, 10000, 10000, 0, 0},
		{"withChange", 10000, 0, 0, 15000, 10000, 5000, 0},
		{"voucherDiscount", 20000, 1000, 0, 20000, 19000, 1000, 1000},
		{"pointsOnly", 20000, 0, 2000, 18000, 18000, 0, 2000},
		{"voucherPlusPoints", 20000, 1000, 2000, 20000, 17000, 3000, 3000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Settle(PaymentCash, tt.total, tt.discount, tt.pointsValue, tt.amountPaid)
			if err != nil {
				t.Fatalf("Settle() error = %v", err)
			}
			if s.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", s.Total, tt.wantTotal)
			}
			if s.Change != tt.wantChange {
				t.Errorf("Change = %d, want %d", s.Change, tt.wantChange)
			}
			if s.DiscountAmount != tt.wantDisc {
				t.Errorf("DiscountAmount = %d, want %d", s.DiscountAmount, tt.wantDisc)
			}
			if s.AmountPaid != tt.amountPaid {
				t.Errorf("AmountPaid = %d, want %d", s.AmountPaid, tt.amountPaid)
			}
			if s.Status != TxSettlement {
				t.Errorf("Status = %s, want %s", s.Status, TxSettlement)
			}
			// konservasi: change selalu tender - payable
			if s.Change != s.AmountPaid-s.Total {
				t.Errorf("Change %d != AmountPaid-Total %d", s.Change, s.AmountPaid-s.Total)
			}
		})
	}
}

func TestSettleCashInsufficient(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		discount    int
		pointsValue int
		amountPaid  int
	}{
		{"shortTender", 10000, 0, 0, 9000},
		{"oneShort", 10000, 0, 0, 9999},
		{"discountNotEnough", 20000, 1000, 0, 18000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Settle(PaymentCash, tt.total, tt.discount, tt.pointsValue, tt.amountPaid)
			if !errors.Is(err, ErrInsufficientCash) {
				t.Errorf("Settle() error = %v, want ErrInsufficientCash", err)
			}
		})
	}
}

func TestSettleQRIS(t *testing.T) {
	s, err := Settle(PaymentQRIS, 20000, 1000, 2000, 0)
	if err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
	if s.Total != 17000 {
		t.Errorf("Total = %d, want 17000", s.Total)
	}
	if s.AmountPaid != 17000 {
		t.Errorf("AmountPaid = %d, want exact payable 17000", s.AmountPaid)
	}
	if s.Change != 0 {
		t.Errorf("Change = %d, want 0", s.Change)
	}
	if s.Status != TxPending {
		t.Errorf("Status = %s, want %s (nunggu webhook)", s.Status, TxPending)
	}
}

func TestSettleUnsupportedType(t *testing.T) {
	_, err := Settle(PaymentType("transfer"), 10000, 0, 0, 10000)
	if !errors.Is(err, ErrUnsupportedPayment) {
		t.Errorf("Settle() error = %v, want ErrUnsupportedPayment", err)
	}
}
