package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Validator Tests - Best, boundary, edge and invalid cases per field
// =============================================================================

func TestValidator_ItemRequest(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		req     ItemRequest
		wantErr bool
	}{
		// CASE 1: Best Case
		{"typical", ItemRequest{Category: "Clothing", Condition: 3.5, Age: 4}, false},
		{"custom category", ItemRequest{Category: "Toys", Condition: 1, Age: 1}, false},

		// CASE 2: Boundary Case
		{"condition at min", ItemRequest{Category: "Decor", Condition: 0}, false},
		{"condition at max", ItemRequest{Category: "Decor", Condition: 5}, false},
		{"condition just over max", ItemRequest{Category: "Decor", Condition: 5.01}, true},
		{"condition just under min", ItemRequest{Category: "Decor", Condition: -0.01}, true},
		{"age zero", ItemRequest{Category: "Decor", Age: 0}, false},
		{"age negative", ItemRequest{Category: "Decor", Age: -1}, true},
		{"category at max length", ItemRequest{Category: strings.Repeat("a", 64)}, false},
		{"category over max length", ItemRequest{Category: strings.Repeat("a", 65)}, true},

		// CASE 3: Edge - kept as sent, accepted here
		{"lowercase category", ItemRequest{Category: "electronics"}, false},

		// CASE 4: Invalid Case
		{"empty category", ItemRequest{}, true},
		{"whitespace category", ItemRequest{Category: "  "}, true},
		{"category with newline", ItemRequest{Category: "De\ncor"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("keys follow json names", func(t *testing.T) {
		err := v.ValidateStruct(SwapRequest{OtherVendorID: "nope"})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "Must be a valid UUID", fields["other_vendor_id"])
		assert.Equal(t, "This field is required", fields["my_item_id"])
		assert.Equal(t, "This field is required", fields["their_item_id"])
	})

	t.Run("non-validation error", func(t *testing.T) {
		fields := FormatValidationError(errors.New("boom"))
		assert.Equal(t, map[string]string{"error": ErrMsgInvalidRequestFormat}, fields)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
