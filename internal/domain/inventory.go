package domain

// InventorySlot represents a single item stack in the player's inventory
type InventorySlot struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Inventory represents the structure stored in the JSONB column.
// Slot order is an implementation detail; callers must not rely on it.
type Inventory struct {
	Slots      []InventorySlot `json:"slots"`
	LastUpdate int64           `json:"last_update,omitempty"`
}

// Quantity returns the held quantity for an item, 0 when absent.
func (inv *Inventory) Quantity(itemID string) int {
	for _, slot := range inv.Slots {
		if slot.ItemID == itemID {
			return slot.Quantity
		}
	}
	return 0
}
