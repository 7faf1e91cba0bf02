package pos

import "testing"

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		items []CartItem
		want  OrderStatus
	}{
		{
			"onlyInventory",
			[]CartItem{
				{ItemType: ItemInventory, InventoryID: "inv-1", Quantity: 2},
				{ItemType: ItemInventory, InventoryID: "inv-2", Quantity: 1},
			},
			StatusCompleted,
		},
		{
			"withService",
			[]CartItem{
				{ItemType: ItemInventory, InventoryID: "inv-1", Quantity: 2},
				{ItemType: ItemService, ServiceID: "svc-1", Quantity: 1},
			},
			StatusProcessing,
		},
		{
			"withBundling",
			[]CartItem{{ItemType: ItemBundling, BundlingID: "bnd-1", Quantity: 1}},
			StatusProcessing,
		},
		{
			"withVoucher",
			[]CartItem{
				{ItemType: ItemInventory, InventoryID: "inv-1", Quantity: 1},
				{ItemType: ItemVoucher, VoucherID: "v-1", Quantity: 1},
			},
			StatusProcessing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.items); got != tt.want {
				t.Errorf("DeriveStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusProcessing, StatusReady, true},
		{StatusReady, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusReady, StatusCancelled, true},
		{StatusCompleted, StatusCancelled, false}, // terminal
		{StatusCancelled, StatusProcessing, false},
		{StatusPending, StatusCompleted, false}, // tidak boleh loncat
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
