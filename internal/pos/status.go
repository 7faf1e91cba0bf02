package pos

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusReady      OrderStatus = "ready"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	StatusPending:    {StatusProcessing: true, StatusCancelled: true},
	StatusProcessing: {StatusReady: true, StatusCancelled: true},
	StatusReady:      {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// DeriveStatus: order yang isinya murni barang inventory langsung completed
// (tidak ada proses cuci); selain itu masuk antrian processing.
func DeriveStatus(items []CartItem) OrderStatus {
	for _, it := range items {
		if it.ItemType != ItemInventory {
			return StatusProcessing
		}
	}
	return StatusCompleted
}

type ItemType string

const (
	ItemService   ItemType = "service"
	ItemInventory ItemType = "inventory"
	ItemBundling  ItemType = "bundling"
	ItemVoucher   ItemType = "voucher"
	ItemPoints    ItemType = "points" // baris sintetis utk redeem poin
)

type PaymentType string

const (
	PaymentCash PaymentType = "cash"
	PaymentQRIS PaymentType = "qris"
)

type TransactionStatus string

const (
	TxSettlement TransactionStatus = "settlement" // cash: final saat itu juga
	TxPending    TransactionStatus = "pending"    // qris: nunggu webhook gateway
)

type StockLogType string

const (
	StockLogOrder      StockLogType = "order"
	StockLogAdjustment StockLogType = "adjustment"
	StockLogRestock    StockLogType = "restock"
	StockLogWaste      StockLogType = "waste"
)
