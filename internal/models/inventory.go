package models

// Inventory is a set of flag identifiers. Items keep insertion order so the
// save file is stable; the zero value is an empty inventory.
type Inventory struct {
	items []string
}

// NewInventory builds an inventory from items, dropping duplicates and empty ids.
func NewInventory(items ...string) Inventory {
	var inv Inventory
	for _, it := range items {
		inv.Add(it)
	}
	return inv
}

func (inv *Inventory) Has(item string) bool {
	for _, it := range inv.items {
		if it == item {
			return true
		}
	}
	return false
}

// Add inserts item unless it is empty or already present.
func (inv *Inventory) Add(item string) bool {
	if item == "" || inv.Has(item) {
		return false
	}
	inv.items = append(inv.items, item)
	return true
}

// Remove deletes item; it is a no-op when absent.
func (inv *Inventory) Remove(item string) bool {
	for i, it := range inv.items {
		if it == item {
			inv.items = append(inv.items[:i:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

func (inv *Inventory) Len() int { return len(inv.items) }

// Items returns a copy of the inventory contents.
func (inv *Inventory) Items() []string {
	return append([]string(nil), inv.items...)
}

func (inv *Inventory) Clone() Inventory {
	return Inventory{items: append([]string(nil), inv.items...)}
}
