package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

// CreateOrderTx menjalankan seluruh transaksi POS sebagai satu unit atomik:
// resolve member -> insert order -> pricing & insert item -> voucher ->
// poin -> payment -> pengurangan stok. Gagal di langkah manapun = rollback
// total, tidak ada order/payment/stock log/perubahan poin yang tersisa.
func (r *Repo) CreateOrderTx(ctx context.Context, in NewOrderInput, userID string) (orderID string, err error) {
	if len(in.Items) == 0 {
		return "", ErrEmptyOrder
	}
	for _, it := range in.Items {
		if err := it.Validate(); err != nil {
			return "", err
		}
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// 1) resolve member; walk-in bisa didaftarkan inline supaya id-nya
	// langsung kepakai di langkah berikutnya
	memberID := in.MemberID
	if in.NewMember && in.CustomerName != "" && in.Phone != "" && in.MemberID == "" {
		memberID, err = insertMember(ctx, tx, in.CustomerName, in.Phone)
		if err != nil {
			return "", err
		}
	}

	// 2) order shell; status dihitung dari isi keranjang
	orderID = uuid.NewString()
	if err := insertOrder(ctx, tx, Order{
		ID:           orderID,
		CustomerName: in.CustomerName,
		MemberID:     memberID,
		UserID:       userID,
		Status:       DeriveStatus(in.Items),
	}); err != nil {
		return "", err
	}

	// 3) harga otoritatif dari katalog, lalu persist semua baris non-voucher
	prices, err := ResolvePrices(ctx, tx, in.Items)
	if err != nil {
		return "", err
	}
	totalItemPrice, err := insertOrderItems(ctx, tx, orderID, in.Items, prices)
	if err != nil {
		return "", err
	}

	// 4) voucher (maksimal satu per order)
	discount := 0
	if voucherID := findVoucherID(in.Items); voucherID != "" {
		v, err := FetchVoucher(ctx, tx, voucherID)
		if err != nil {
			return "", err
		}
		discount = ComputeDiscount(v, totalItemPrice)
		if err := insertVoucherLine(ctx, tx, orderID, v, discount); err != nil {
			return "", err
		}
		if memberID != "" {
			if err := insertRedemption(ctx, tx, memberID, v.ID, orderID, v.PointsCost); err != nil {
				return "", err
			}
		}
	}

	// 5) redeem poin (kalau diminta) + accrue poin belanja
	pointsValue := 0
	if in.Points < 0 {
		if memberID == "" {
			return "", fmt.Errorf("%w: point redemption without member", ErrMemberNotFound)
		}
		if err := redeemPoints(ctx, tx, memberID, in.Points); err != nil {
			return "", err
		}
		if err := insertPointsLine(ctx, tx, orderID, in.Points); err != nil {
			return "", err
		}
		pointsValue = -in.Points
	}
	if earnsPoints(totalItemPrice, memberID) {
		if err := accruePoints(ctx, tx, memberID, pointsEarned(totalItemPrice)); err != nil {
			return "", err
		}
	}

	// 6) payment
	settlement, err := Settle(in.PaymentType, totalItemPrice, discount, pointsValue, in.AmountPaid)
	if err != nil {
		return "", err
	}
	if err := insertPayment(ctx, tx, orderID, in.PaymentType, totalItemPrice, settlement); err != nil {
		return "", err
	}

	// 7) stok: expand bundle + decrement, urut by inventory id
	if err := deductStock(ctx, tx, in.Items, orderID, userID); err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return orderID, nil
}

func findVoucherID(items []CartItem) string {
	for _, it := range items {
		if it.ItemType == ItemVoucher {
			return it.VoucherID
		}
	}
	return ""
}

func insertMember(ctx context.Context, tx pgx.Tx, name, phone string) (string, error) {
	id := uuid.NewString()
	_, err := tx.Exec(ctx, `INSERT INTO members(id, name, phone, points) VALUES ($1, $2, $3, 0)`,
		id, name, phone)
	if err != nil {
		return "", err
	}
	return id, nil
}

func insertOrder(ctx context.Context, tx pgx.Tx, o Order) error {
	var memberID *string
	if o.MemberID != "" {
		memberID = &o.MemberID
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO orders(id, customer_name, member_id, user_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID, o.CustomerName, memberID, o.UserID, o.Status, time.Now().UTC())
	return err
}

// insertOrderItems: persist semua baris keranjang selain voucher (voucher
// masuk belakangan sebagai baris diskon), return jumlah subtotal.
// Referensi yang tidak ter-resolve harganya = integrity fault, bukan harga 0.
func insertOrderItems(ctx context.Context, tx pgx.Tx, orderID string, items []CartItem, prices map[string]int) (total int, err error) {
	for _, it := range items {
		if it.ItemType == ItemVoucher {
			continue
		}
		price, ok := prices[it.Ref()]
		if !ok {
			return 0, fmt.Errorf("%w: %s id=%s", ErrPriceUnresolved, it.ItemType, it.Ref())
		}
		subtotal := it.Quantity * price

		var serviceID, inventoryID, bundlingID *string
		switch it.ItemType {
		case ItemService:
			serviceID = &it.ServiceID
		case ItemInventory:
			inventoryID = &it.InventoryID
		case ItemBundling:
			bundlingID = &it.BundlingID
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items(id, order_id, item_type, service_id, inventory_id,
			                        bundling_id, quantity, subtotal, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.NewString(), orderID, it.ItemType, serviceID, inventoryID,
			bundlingID, it.Quantity, subtotal, nullable(it.Note)); err != nil {
			return 0, err
		}
		total += subtotal
	}
	return total, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *Repo) GetOrderStatus(ctx context.Context, orderID string) (OrderStatus, error) {
	var s string
	err := r.DB.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1`, orderID).Scan(&s)
	if err != nil {
		return "", err
	}
	return OrderStatus(s), nil
}
