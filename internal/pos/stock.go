package pos

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// deduction: satu pengurangan stok yang sudah direncanakan. BundlingID terisi
// kalau pengurangan berasal dari ekspansi bundle.
type deduction struct {
	InventoryID string
	Qty         int
	BundlingID  string
}

// fetchBundlingComponents mengambil komposisi inventory dari bundle yang ada
// di keranjang (komponen service dilewati, tidak menyentuh stok).
func fetchBundlingComponents(ctx context.Context, tx pgx.Tx, bundlingIDs []string) ([]BundlingComponent, error) {
	if len(bundlingIDs) == 0 {
		return nil, nil
	}
	params, args := inParams(bundlingIDs)
	rows, err := tx.Query(ctx, `
		SELECT bundling_id, inventory_id, quantity
		FROM bundling_items
		WHERE inventory_id IS NOT NULL AND bundling_id IN (`+params+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comps []BundlingComponent
	for rows.Next() {
		var c BundlingComponent
		if err := rows.Scan(&c.BundlingID, &c.InventoryID, &c.QtyPerBundle); err != nil {
			return nil, err
		}
		comps = append(comps, c)
	}
	return comps, rows.Err()
}

// planDeductions menyusun daftar pengurangan stok: baris inventory langsung
// apa adanya, baris bundle di-expand per komponen (qtyPerBundle * qty order).
// Pengurangan utk inventory id yang sama TIDAK digabung; tiap entry jadi
// update sendiri. Hasil diurutkan by inventory id supaya urutan lock antar
// transaksi konsisten (hindari deadlock silang dua order).
func planDeductions(items []CartItem, comps []BundlingComponent) []deduction {
	var plan []deduction
	for _, it := range items {
		if it.ItemType == ItemInventory {
			plan = append(plan, deduction{InventoryID: it.InventoryID, Qty: it.Quantity})
		}
	}
	for _, c := range comps {
		for _, it := range items {
			if it.ItemType == ItemBundling && it.BundlingID == c.BundlingID {
				plan = append(plan, deduction{
					InventoryID: c.InventoryID,
					Qty:         c.QtyPerBundle * it.Quantity,
					BundlingID:  c.BundlingID,
				})
				break
			}
		}
	}
	sort.SliceStable(plan, func(i, j int) bool { return plan[i].InventoryID < plan[j].InventoryID })
	return plan
}

// deductStock menjalankan rencana pengurangan: decrement atomik + baca balik
// sisa stok, lalu satu baris stock_logs per movement. Row inventory yang
// hilang = integrity fault (NotFound), bukan miss biasa. Stok negatif ditolak
// CHECK constraint di DB dan menggagalkan seluruh transaksi.
func deductStock(ctx context.Context, tx pgx.Tx, items []CartItem, orderID, actorID string) error {
	comps, err := fetchBundlingComponents(ctx, tx, collectRefs(items, ItemBundling))
	if err != nil {
		return err
	}

	for _, d := range planDeductions(items, comps) {
		var remaining int
		err := tx.QueryRow(ctx, `
			UPDATE inventories SET stock = stock - $2, updated_at = now()
			WHERE id = $1
			RETURNING stock`, d.InventoryID, d.Qty).Scan(&remaining)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: id=%s", ErrInventoryNotFound, d.InventoryID)
		}
		if err != nil {
			return err
		}

		var bundlingID *string
		if d.BundlingID != "" {
			bundlingID = &d.BundlingID
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO stock_logs(id, inventory_id, type, change_amount, stock_remaining,
			                       order_id, bundling_id, actor_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.NewString(), d.InventoryID, StockLogOrder, -d.Qty, remaining,
			orderID, bundlingID, actorID, time.Now().UTC()); err != nil {
			return err
		}
	}
	return nil
}
