package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SwapMeet_Go/internal/database/memory"
	"github.com/osse101/SwapMeet_Go/internal/domain"
	"github.com/osse101/SwapMeet_Go/internal/swapmeet"
)

func TestLoad(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "vendors.yaml"))
	require.NoError(t, err)

	require.Len(t, f.Vendors, 3)
	assert.Equal(t, "Alice's Attic", f.Vendors[0].Name)
	require.Len(t, f.Vendors[0].Items, 2)
	assert.Equal(t, "clothing", f.Vendors[0].Items[0].Category)
	assert.Equal(t, 3.5, f.Vendors[0].Items[0].Condition)
	assert.Empty(t, f.Vendors[2].Items)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToReadSeed)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "vendors:\n  - name: a\n    colour: red\n"},
		{"missing name", "vendors:\n  - items: []\n"},
		{"missing category", "vendors:\n  - name: a\n    items:\n      - condition: 1\n"},
		{"condition out of range", "vendors:\n  - name: a\n    items:\n      - category: Decor\n        condition: 9\n"},
		{"negative age", "vendors:\n  - name: a\n    items:\n      - category: Decor\n        age: -2\n"},
		{"not yaml", "vendors: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Vendors)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	f, err := Load(filepath.Join("testdata", "vendors.yaml"))
	require.NoError(t, err)

	repo := memory.NewVendorRepository()
	svc := swapmeet.NewService(repo, swapmeet.DefaultCacheConfig())

	created, err := Apply(ctx, svc, f)
	require.NoError(t, err)
	require.Len(t, created, 3)

	vendors, err := svc.ListVendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 3)

	alice := vendors[0]
	require.Equal(t, 2, alice.Len())
	assert.Equal(t, domain.Category("clothing"), alice.Inventory()[0].Category)
	assert.Equal(t, domain.PresentationClothing, alice.Inventory()[0].Presentation)
	assert.Equal(t, domain.PresentationDecor, alice.Inventory()[1].Presentation)
}
