package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// Category tags an item with the kind of good it is (e.g. "Clothing")
type Category string

// Presentation selects the display text of an item. It stands in for the
// Clothing/Decor/Electronics subtypes, which only ever differed in display text.
type Presentation string

// Item represents a single tradeable good.
// Two items with identical attributes are still distinct items: vendors compare
// items by pointer, and by ID once they cross the persistence boundary.
type Item struct {
	ID           uuid.UUID    `json:"item_id" db:"item_id"`
	Category     Category     `json:"category" db:"category"`
	Condition    float64      `json:"condition" db:"condition"` // 0.0 (worst) - 5.0 (mint)
	Age          int          `json:"age" db:"age"`             // Lower is newer
	Presentation Presentation `json:"presentation" db:"presentation"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}

// ParseCategory trims surrounding space and otherwise keeps the caller's text.
// Categories compare by exact text, so "clothing" and "Clothing" are different tags.
func ParseCategory(raw string) Category {
	return Category(strings.TrimSpace(raw))
}

// PresentationFor returns the presentation used for items of the given category.
// Presentation only affects display text, so it ignores case.
func PresentationFor(category Category) Presentation {
	// A Caser keeps state between calls, so each call gets its own
	fold := cases.Fold()
	switch fold.String(string(category)) {
	case fold.String(string(CategoryClothing)):
		return PresentationClothing
	case fold.String(string(CategoryDecor)):
		return PresentationDecor
	case fold.String(string(CategoryElectronics)):
		return PresentationElectronics
	default:
		return PresentationGeneric
	}
}

// NewItem creates an item with a fresh ID and the presentation matching its category
func NewItem(category Category, condition float64, age int) *Item {
	return &Item{
		ID:           uuid.New(),
		Category:     category,
		Condition:    condition,
		Age:          age,
		Presentation: PresentationFor(category),
		CreatedAt:    time.Now().UTC(),
	}
}

// NewClothing creates a Clothing item
func NewClothing(condition float64, age int) *Item {
	return NewItem(CategoryClothing, condition, age)
}

// NewDecor creates a Decor item
func NewDecor(condition float64, age int) *Item {
	return NewItem(CategoryDecor, condition, age)
}

// NewElectronics creates an Electronics item
func NewElectronics(condition float64, age int) *Item {
	return NewItem(CategoryElectronics, condition, age)
}

// String returns the display text of the item's presentation
func (i *Item) String() string {
	switch i.Presentation {
	case PresentationClothing:
		return DisplayClothing
	case PresentationDecor:
		return DisplayDecor
	case PresentationElectronics:
		return DisplayElectronics
	default:
		return DisplayGeneric
	}
}

// ConditionDescription describes the condition score. Every presentation shares
// the same scale.
func (i *Item) ConditionDescription() string {
	switch {
	case i.Condition < 1:
		return ConditionHeavilyUsed
	case i.Condition < 2:
		return ConditionPoor
	case i.Condition < 3:
		return ConditionFair
	case i.Condition < 4:
		return ConditionGood
	case i.Condition < 5:
		return ConditionVeryGood
	default:
		return ConditionMint
	}
}

// Clone returns a copy of the item with the same ID. Used when an item leaves one
// in-memory graph for another (cache, storage).
func (i *Item) Clone() *Item {
	c := *i
	return &c
}
