package pos

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Query baca utk layar kasir. Semua read-only; hasil ListPOSItems di-cache
// di Redis oleh handler dan di-invalidate lewat event pos.order.created.

func (r *Repo) ListPOSItems(ctx context.Context) ([]POSItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, description, price, stock, 'inventory' AS item_type FROM inventories
		UNION ALL
		SELECT id, name, description, price, NULL, 'service' FROM services
		UNION ALL
		SELECT id, name, description, price, NULL, 'bundling' FROM bundlings WHERE is_active
		ORDER BY item_type, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []POSItem
	for rows.Next() {
		var it POSItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.Stock, &it.ItemType); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) ListActiveVouchers(ctx context.Context) ([]Voucher, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, code, description, discount_percentage, discount_amount,
		       max_discount_amount, points_cost, is_visible, expires_at
		FROM vouchers
		WHERE is_active AND is_visible AND expires_at > now()
		ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Voucher
	for rows.Next() {
		var v Voucher
		if err := rows.Scan(&v.ID, &v.Code, &v.Description, &v.DiscountPercentage, &v.DiscountAmount,
			&v.MaxDiscountAmount, &v.PointsCost, &v.IsVisible, &v.ExpiresAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *Repo) GetVoucherByCode(ctx context.Context, code string) (Voucher, error) {
	var v Voucher
	err := r.DB.QueryRow(ctx, `
		SELECT id, code, description, discount_percentage, discount_amount,
		       max_discount_amount, points_cost, is_visible, expires_at
		FROM vouchers
		WHERE code = $1 AND is_active AND is_visible AND expires_at > now()`,
		code,
	).Scan(&v.ID, &v.Code, &v.Description, &v.DiscountPercentage, &v.DiscountAmount,
		&v.MaxDiscountAmount, &v.PointsCost, &v.IsVisible, &v.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Voucher{}, ErrVoucherNotFound
	}
	if err != nil {
		return Voucher{}, err
	}
	return v, nil
}

// SearchMembers: cari member by potongan nomor hp, utk autocomplete kasir.
func (r *Repo) SearchMembers(ctx context.Context, phone string) ([]Member, error) {
	if phone == "" {
		return nil, nil
	}
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, phone, points FROM members
		WHERE phone ILIKE '%' || $1 || '%'
		ORDER BY name LIMIT 5`, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Points); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
