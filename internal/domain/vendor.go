package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Vendor owns an ordered inventory of items and trades them with other vendors.
//
// Inventory order is insertion order and matters: SwapFirstItem trades the head of
// each inventory, and ties in GetBestByCategory/GetByNewest go to the earliest item.
// Membership is by pointer. The same *Item may sit in several inventories, and Add
// never deduplicates.
//
// A Vendor is not safe for concurrent use; the swapmeet service serializes access.
type Vendor struct {
	ID        uuid.UUID `json:"vendor_id" db:"vendor_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	inventory []*Item
}

// Swap describes a completed exchange from the point of view of the vendor that
// initiated it.
type Swap struct {
	Given    *Item `json:"given"`
	Received *Item `json:"received"`
}

// NewVendor creates a vendor with an optional initial inventory
func NewVendor(name string, items ...*Item) *Vendor {
	now := time.Now().UTC()
	v := &Vendor{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	v.inventory = append(v.inventory, items...)
	return v
}

// Inventory returns a copy of the inventory slice. The items themselves are shared.
func (v *Vendor) Inventory() []*Item {
	return slices.Clone(v.inventory)
}

// Len returns the number of inventory entries
func (v *Vendor) Len() int {
	return len(v.inventory)
}

// Add appends item to the inventory and returns it
func (v *Vendor) Add(item *Item) *Item {
	v.inventory = append(v.inventory, item)
	return item
}

// Remove drops the first occurrence of item and returns it.
// Returns nil if the item is not in the inventory.
func (v *Vendor) Remove(item *Item) *Item {
	i := v.indexOf(item)
	if i == -1 {
		return nil
	}
	v.inventory = slices.Delete(v.inventory, i, i+1)
	return item
}

// Contains reports whether this exact item is in the inventory
func (v *Vendor) Contains(item *Item) bool {
	return v.indexOf(item) != -1
}

// ItemByID returns the first inventory item with the given ID, or nil
func (v *Vendor) ItemByID(id uuid.UUID) *Item {
	for _, item := range v.inventory {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func (v *Vendor) indexOf(item *Item) int {
	if item == nil {
		return -1
	}
	for i, candidate := range v.inventory {
		if candidate == item {
			return i
		}
	}
	return -1
}

// GetByCategory returns every item of the category, in inventory order.
// Each call builds a fresh slice; nothing is accumulated on the vendor.
func (v *Vendor) GetByCategory(category Category) []*Item {
	matches := make([]*Item, 0, len(v.inventory))
	for _, item := range v.inventory {
		if item.Category == category {
			matches = append(matches, item)
		}
	}
	return matches
}

// GetBestByCategory returns the item of the category with the highest condition.
// Ties go to the earliest item. Returns nil if no item has the category.
func (v *Vendor) GetBestByCategory(category Category) *Item {
	var best *Item
	for _, item := range v.GetByCategory(category) {
		if best == nil || item.Condition > best.Condition {
			best = item
		}
	}
	return best
}

// GetByAge returns the first item with exactly the given age, or nil
func (v *Vendor) GetByAge(age int) *Item {
	for _, item := range v.inventory {
		if item.Age == age {
			return item
		}
	}
	return nil
}

// GetByNewest returns the item with the lowest age. Ties go to the earliest item.
// Returns nil for an empty inventory.
func (v *Vendor) GetByNewest() *Item {
	var newest *Item
	for _, item := range v.inventory {
		if newest == nil || item.Age < newest.Age {
			newest = item
		}
	}
	return newest
}

// SwapItems gives mine to other and takes theirs in return.
// It returns ok=false without touching either inventory unless mine is in v's
// inventory and theirs is in other's. A vendor cannot swap with itself.
//
// Each item is appended to its new owner before it is removed from its old one.
// Afterwards mine sits at the end of other's inventory and theirs at the end of v's.
func (v *Vendor) SwapItems(other *Vendor, mine, theirs *Item) (Swap, bool) {
	if other == nil || other == v {
		return Swap{}, false
	}
	if !other.Contains(theirs) || !v.Contains(mine) {
		return Swap{}, false
	}

	other.Add(mine)
	v.Add(theirs)
	received := other.Remove(theirs)
	given := v.Remove(mine)

	now := time.Now().UTC()
	v.UpdatedAt = now
	other.UpdatedAt = now

	return Swap{Given: given, Received: received}, true
}

// SwapFirstItem trades the head of each inventory.
// Returns ok=false if either inventory is empty.
func (v *Vendor) SwapFirstItem(other *Vendor) (Swap, bool) {
	if other == nil || len(v.inventory) == 0 || len(other.inventory) == 0 {
		return Swap{}, false
	}
	return v.SwapItems(other, v.inventory[0], other.inventory[0])
}

// SwapBestByCategory gives other the best item v holds in theirPriority and takes
// the best item other holds in myPriority.
// Returns ok=false if either side has no item in the wanted category.
func (v *Vendor) SwapBestByCategory(other *Vendor, myPriority, theirPriority Category) (Swap, bool) {
	if other == nil {
		return Swap{}, false
	}
	mine := v.GetBestByCategory(theirPriority)
	theirs := other.GetBestByCategory(myPriority)
	if mine == nil || theirs == nil {
		return Swap{}, false
	}
	return v.SwapItems(other, mine, theirs)
}

// SwapByNewest trades each side's newest item.
// Returns ok=false if either inventory is empty.
func (v *Vendor) SwapByNewest(other *Vendor) (Swap, bool) {
	if other == nil {
		return Swap{}, false
	}
	return v.SwapItems(other, v.GetByNewest(), other.GetByNewest())
}

// Restore rebuilds a vendor from stored state without assigning new IDs or timestamps
func Restore(id uuid.UUID, name string, createdAt, updatedAt time.Time, items []*Item) *Vendor {
	return &Vendor{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		inventory: slices.Clone(items),
	}
}

// Clone returns a deep copy of the vendor. Items that appear more than once in the
// inventory stay a single shared item in the copy.
func (v *Vendor) Clone() *Vendor {
	copies := make(map[*Item]*Item, len(v.inventory))
	items := make([]*Item, len(v.inventory))
	for i, item := range v.inventory {
		c, ok := copies[item]
		if !ok {
			c = item.Clone()
			copies[item] = c
		}
		items[i] = c
	}
	return Restore(v.ID, v.Name, v.CreatedAt, v.UpdatedAt, items)
}

// Touch bumps UpdatedAt
func (v *Vendor) Touch() {
	v.UpdatedAt = time.Now().UTC()
}
