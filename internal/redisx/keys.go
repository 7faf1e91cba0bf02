package redisx

import "time"

const (
	// Cache listing item POS (union inventories+services+bundlings)
	KeyPOSItems = "pos:all"

	// Cache listing katalog inventory
	KeyInventories = "inventories:all"

	// Cache status order: order_status:{order_id} -> {"status": "..."}
	KeyOrderStatus = "order_status:%s"

	// Dedup event processing: dedup:{service}:{id} (id = event_id)
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLCatalog     = time.Hour
	TTLStatusCache = 5 * time.Minute
	TTLDedup       = 48 * time.Hour
)
