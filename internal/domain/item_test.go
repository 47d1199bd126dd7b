package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItem(t *testing.T) {
	t.Run("assigns fresh identity", func(t *testing.T) {
		a := NewClothing(3, 1)
		b := NewClothing(3, 1)

		assert.NotEqual(t, a.ID, b.ID, "Items with equal attributes are still distinct")
		assert.NotSame(t, a, b)
	})

	t.Run("picks presentation from category", func(t *testing.T) {
		assert.Equal(t, PresentationClothing, NewClothing(1, 1).Presentation)
		assert.Equal(t, PresentationDecor, NewDecor(1, 1).Presentation)
		assert.Equal(t, PresentationElectronics, NewElectronics(1, 1).Presentation)
		assert.Equal(t, PresentationGeneric, NewItem("Toys", 1, 1).Presentation)
	})
}

func TestItem_String(t *testing.T) {
	tests := []struct {
		name string
		item *Item
		want string
	}{
		{"clothing", NewClothing(0, 0), DisplayClothing},
		{"decor", NewDecor(0, 0), DisplayDecor},
		{"electronics", NewElectronics(0, 0), DisplayElectronics},
		{"generic", NewItem("Books", 0, 0), DisplayGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.String())
		})
	}
}

func TestItem_ConditionDescription(t *testing.T) {
	tests := []struct {
		condition float64
		want      string
	}{
		{0, ConditionHeavilyUsed},
		{0.9, ConditionHeavilyUsed},
		{1, ConditionPoor},
		{2.5, ConditionFair},
		{3, ConditionGood},
		{4.99, ConditionVeryGood},
		{5, ConditionMint},
	}

	for _, tt := range tests {
		item := NewClothing(tt.condition, 0)
		assert.Equal(t, tt.want, item.ConditionDescription(), "condition %v", tt.condition)
	}

	t.Run("same scale for every presentation", func(t *testing.T) {
		assert.Equal(t, NewDecor(3.5, 0).ConditionDescription(), NewItem("Books", 3.5, 0).ConditionDescription())
	})
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryClothing, ParseCategory("Clothing"))
	assert.Equal(t, Category("ELECTRONICS"), ParseCategory("  ELECTRONICS "))
	assert.Equal(t, Category("iPhone cases"), ParseCategory("iPhone cases"))
	assert.Equal(t, Category(""), ParseCategory("   "))
}

func TestPresentationFor(t *testing.T) {
	assert.Equal(t, PresentationClothing, PresentationFor("clothing"))
	assert.Equal(t, PresentationElectronics, PresentationFor("ELECTRONICS"))
	assert.Equal(t, PresentationDecor, PresentationFor(CategoryDecor))
	assert.Equal(t, PresentationGeneric, PresentationFor("Books"))
}

func TestItem_Clone(t *testing.T) {
	item := NewDecor(4, 2)
	c := item.Clone()

	assert.Equal(t, item.ID, c.ID)
	assert.NotSame(t, item, c)

	c.Condition = 1
	assert.Equal(t, 4.0, item.Condition, "Clone must not alias the original")
}
