package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Settlement: hasil rekonsiliasi pembayaran satu order.
type Settlement struct {
	AmountPaid     int
	Change         int
	DiscountAmount int // diskon voucher + nilai poin yg di-redeem
	Total          int // payable bersih
	Status         TransactionStatus
}

// Settle menghitung payable akhir: totalItemPrice - discount - pointsValue
// (pointsValue = nilai positif poin yang di-redeem).
//   - cash: tender wajib cukup, kembalian dihitung, status langsung settlement.
//   - qris: tanpa tender, amountPaid = payable, status pending sampai webhook
//     gateway konfirmasi (di luar engine ini).
func Settle(paymentType PaymentType, totalItemPrice, discount, pointsValue, amountPaid int) (Settlement, error) {
	payable := totalItemPrice - discount - pointsValue

	switch paymentType {
	case PaymentCash:
		if amountPaid < payable {
			return Settlement{}, fmt.Errorf("%w: paid=%d payable=%d", ErrInsufficientCash, amountPaid, payable)
		}
		return Settlement{
			AmountPaid:     amountPaid,
			Change:         amountPaid - payable,
			DiscountAmount: discount + pointsValue,
			Total:          payable,
			Status:         TxSettlement,
		}, nil
	case PaymentQRIS:
		return Settlement{
			AmountPaid:     payable,
			Change:         0,
			DiscountAmount: discount + pointsValue,
			Total:          payable,
			Status:         TxPending,
		}, nil
	}
	return Settlement{}, fmt.Errorf("%w: %q", ErrUnsupportedPayment, paymentType)
}

func insertPayment(ctx context.Context, tx pgx.Tx, orderID string, pt PaymentType, gross int, s Settlement) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO payments(id, order_id, payment_type, gross_amount, discount_amount,
		                     total, amount_paid, change, transaction_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		uuid.NewString(), orderID, pt, gross, s.DiscountAmount,
		s.Total, s.AmountPaid, s.Change, s.Status, time.Now().UTC())
	return err
}
