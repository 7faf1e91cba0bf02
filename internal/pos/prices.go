package pos

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

func collectRefs(items []CartItem, t ItemType) []string {
	var ids []string
	for _, it := range items {
		if it.ItemType == t && it.Ref() != "" {
			ids = append(ids, it.Ref())
		}
	}
	return ids
}

// inParams: builder placeholder $1,$2,... utk query IN (pola yg sama dgn
// lookup harga di order-api lama).
func inParams(ids []string) (string, []any) {
	params := ""
	args := make([]any, 0, len(ids))
	for i, id := range ids {
		if i > 0 {
			params += ","
		}
		params += fmt.Sprintf("$%d", i+1)
		args = append(args, id)
	}
	return params, args
}

func queryPrices(ctx context.Context, tx pgx.Tx, table string, ids []string, dst map[string]int) error {
	if len(ids) == 0 {
		return nil
	}
	params, args := inParams(ids)
	rows, err := tx.Query(ctx, `SELECT id, price FROM `+table+` WHERE id IN (`+params+`)`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var price int
		if err := rows.Scan(&id, &price); err != nil {
			return err
		}
		dst[id] = price
	}
	return rows.Err()
}

// ResolvePrices: harga otoritatif per id, satu query per tabel katalog
// (bukan per baris keranjang). Harga dari client tidak pernah dipakai.
// Id yang tidak ketemu di katalog manapun tidak muncul di map; caller wajib
// memperlakukan referensi wajib yang tak ter-resolve sebagai integrity fault.
func ResolvePrices(ctx context.Context, tx pgx.Tx, items []CartItem) (map[string]int, error) {
	prices := map[string]int{}
	lookups := []struct {
		table string
		t     ItemType
	}{
		{"inventories", ItemInventory},
		{"services", ItemService},
		{"bundlings", ItemBundling},
	}
	for _, l := range lookups {
		if err := queryPrices(ctx, tx, l.table, collectRefs(items, l.t), prices); err != nil {
			return nil, err
		}
	}
	return prices, nil
}
