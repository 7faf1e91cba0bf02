package pos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Belanja minimum (minor unit) supaya order dapat poin.
const minPointEarningSpend = 10_000

// pointsEarned = ceil(totalItemPrice / 10).
func pointsEarned(totalItemPrice int) int {
	return (totalItemPrice + 9) / 10
}

func earnsPoints(totalItemPrice int, memberID string) bool {
	return totalItemPrice >= minPointEarningSpend && memberID != ""
}

// redeemPoints mengurangi saldo poin member; points adalah delta negatif
// (atau nol). Lock row member dulu (FOR UPDATE) biar saldo yang dicek sama
// dengan yang di-update, lalu tolak kalau hasilnya bakal negatif.
func redeemPoints(ctx context.Context, tx pgx.Tx, memberID string, points int) error {
	var current int
	err := tx.QueryRow(ctx, `SELECT points FROM members WHERE id=$1 FOR UPDATE`, memberID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: id=%s", ErrMemberNotFound, memberID)
	}
	if err != nil {
		return err
	}
	if current+points < 0 {
		return fmt.Errorf("%w: have=%d want=%d", ErrInsufficientPoints, current, -points)
	}
	_, err = tx.Exec(ctx, `UPDATE members SET points = points + $2 WHERE id=$1`, memberID, points)
	return err
}

// insertPointsLine: baris order item sintetis bertipe points, subtotal =
// nilai poin yang di-redeem (negatif), jadi ikut mengurangi total order
// persis seperti voucher.
func insertPointsLine(ctx context.Context, tx pgx.Tx, orderID string, points int) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO order_items(id, order_id, item_type, quantity, subtotal)
		VALUES ($1, $2, $3, 1, $4)`,
		uuid.NewString(), orderID, ItemPoints, points)
	return err
}

// accruePoints: increment tanpa syarat; threshold dicek caller (earnsPoints).
func accruePoints(ctx context.Context, tx pgx.Tx, memberID string, earned int) error {
	_, err := tx.Exec(ctx, `UPDATE members SET points = points + $2 WHERE id=$1`, memberID, earned)
	return err
}
