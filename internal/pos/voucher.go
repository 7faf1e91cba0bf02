package pos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FetchVoucher mengambil voucher yang masih berlaku: aktif, visible, dan
// belum expired. Voucher yang tidak memenuhi salah satunya dianggap tidak ada.
func FetchVoucher(ctx context.Context, tx pgx.Tx, voucherID string) (Voucher, error) {
	var v Voucher
	err := tx.QueryRow(ctx, `
		SELECT id, code, description, discount_percentage, discount_amount,
		       max_discount_amount, points_cost, is_visible, expires_at
		FROM vouchers
		WHERE id = $1 AND is_active AND is_visible AND expires_at > now()`,
		voucherID,
	).Scan(&v.ID, &v.Code, &v.Description, &v.DiscountPercentage, &v.DiscountAmount,
		&v.MaxDiscountAmount, &v.PointsCost, &v.IsVisible, &v.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Voucher{}, fmt.Errorf("%w: id=%s", ErrVoucherNotFound, voucherID)
	}
	if err != nil {
		return Voucher{}, err
	}
	return v, nil
}

// ComputeDiscount menghitung potongan voucher terhadap subtotal order.
// Model persentase: subtotal - floor(subtotal * (1 - p/100)), lalu di-cap.
// Model nominal: min(amount, cap). Tepat satu model berlaku per voucher.
func ComputeDiscount(v Voucher, subtotal int) int {
	if v.DiscountPercentage != nil {
		p := *v.DiscountPercentage
		d := subtotal - subtotal*(100-p)/100
		if d > v.MaxDiscountAmount {
			return v.MaxDiscountAmount
		}
		return d
	}
	if v.DiscountAmount != nil {
		if *v.DiscountAmount > v.MaxDiscountAmount {
			return v.MaxDiscountAmount
		}
		return *v.DiscountAmount
	}
	return 0
}

// insertVoucherLine mencatat pemakaian voucher sebagai order item bersubtotal
// negatif, qty selalu 1.
func insertVoucherLine(ctx context.Context, tx pgx.Tx, orderID string, v Voucher, discount int) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO order_items(id, order_id, item_type, voucher_id, quantity, subtotal)
		VALUES ($1, $2, $3, $4, 1, $5)`,
		uuid.NewString(), orderID, ItemVoucher, v.ID, -discount)
	return err
}

// insertRedemption: satu baris history per pemakaian voucher oleh member,
// tidak pernah dipakai ulang utk order kedua dalam transaksi yg sama.
func insertRedemption(ctx context.Context, tx pgx.Tx, memberID, voucherID, orderID string, pointsSpent int) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO redemption_history(id, member_id, voucher_id, order_id, points_spent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), memberID, voucherID, orderID, pointsSpent, time.Now().UTC())
	return err
}
