package pos

import (
	"fmt"
	"time"
)

type Order struct {
	ID           string
	CustomerName string
	MemberID     string // kosong = non-member
	UserID       string
	Status       OrderStatus
	CreatedAt    time.Time
}

type OrderItem struct {
	ID          string
	OrderID     string
	ItemType    ItemType
	ServiceID   string
	InventoryID string
	BundlingID  string
	VoucherID   string
	Quantity    int
	Subtotal    int // negatif untuk voucher/points
}

type Inventory struct {
	ID          string
	Name        string
	Price       int
	Stock       int
	SafetyStock int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Service struct {
	ID    string
	Name  string
	Price int
}

type Bundling struct {
	ID       string
	Name     string
	Price    int // harga bundle berdiri sendiri, bukan jumlah komponen
	IsActive bool
}

type BundlingComponent struct {
	BundlingID   string
	InventoryID  string
	QtyPerBundle int
}

type Member struct {
	ID     string
	Name   string
	Phone  string
	Points int
}

// Voucher: tepat satu dari DiscountPercentage/DiscountAmount terisi
// (di-enforce lewat CHECK constraint di schema).
type Voucher struct {
	ID                 string
	Code               string
	Description        string
	DiscountPercentage *int
	DiscountAmount     *int
	MaxDiscountAmount  int
	PointsCost         int
	IsVisible          bool
	ExpiresAt          time.Time
}

type Payment struct {
	ID                string
	OrderID           string
	PaymentType       PaymentType
	GrossAmount       int
	DiscountAmount    int
	Total             int
	AmountPaid        int
	Change            int
	TransactionStatus TransactionStatus
	CreatedAt         time.Time
}

type StockLog struct {
	ID             string
	InventoryID    string
	Type           StockLogType
	ChangeAmount   int // signed, negatif utk keluar
	StockRemaining int
	OrderID        string
	BundlingID     string
	ActorID        string
	CreatedAt      time.Time
}

type RedemptionHistory struct {
	ID          string
	MemberID    string
	VoucherID   string
	OrderID     string
	PointsSpent int
	CreatedAt   time.Time
}

// CartItem adalah satu baris keranjang dari client. Harga tidak pernah
// dikirim client; selalu di-resolve dari katalog (ResolvePrices).
type CartItem struct {
	ItemType    ItemType `json:"item_type"`
	ServiceID   string   `json:"service_id,omitempty"`
	InventoryID string   `json:"inventory_id,omitempty"`
	BundlingID  string   `json:"bundling_id,omitempty"`
	VoucherID   string   `json:"voucher_id,omitempty"`
	Note        string   `json:"note,omitempty"`
	Quantity    int      `json:"quantity"`
}

// Ref: id referensi yang terisi sesuai tag.
func (c CartItem) Ref() string {
	switch c.ItemType {
	case ItemService:
		return c.ServiceID
	case ItemInventory:
		return c.InventoryID
	case ItemBundling:
		return c.BundlingID
	case ItemVoucher:
		return c.VoucherID
	}
	return ""
}

// Validate menolak item dengan nol atau lebih dari satu referensi terisi,
// atau referensi yang tidak cocok dengan item_type-nya.
func (c CartItem) Validate() error {
	refs := 0
	for _, id := range []string{c.ServiceID, c.InventoryID, c.BundlingID, c.VoucherID} {
		if id != "" {
			refs++
		}
	}
	if refs != 1 {
		return fmt.Errorf("%w: item_type=%s has %d references", ErrInvalidItem, c.ItemType, refs)
	}
	if c.Ref() == "" {
		return fmt.Errorf("%w: reference does not match item_type=%s", ErrInvalidItem, c.ItemType)
	}
	switch c.ItemType {
	case ItemVoucher:
		if c.Quantity != 1 {
			return fmt.Errorf("%w: voucher quantity must be 1", ErrInvalidItem)
		}
	default:
		if c.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be >= 1", ErrInvalidItem)
		}
	}
	return nil
}

type NewOrderInput struct {
	CustomerName string      `json:"customer_name"`
	MemberID     string      `json:"member_id,omitempty"`
	NewMember    bool        `json:"new_member,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	Points       int         `json:"points,omitempty"` // negatif = redeem
	PaymentType  PaymentType `json:"payment_type"`
	AmountPaid   int         `json:"amount_paid,omitempty"` // wajib utk cash
	Items        []CartItem  `json:"items"`
}

// POSItem adalah baris gabungan katalog (inventory/service/bundling) untuk
// layar kasir. Stock nil untuk item non-inventory.
type POSItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Stock       *int     `json:"stock"`
	ItemType    ItemType `json:"item_type"`
}
