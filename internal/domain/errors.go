package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Vendor errors
	ErrMsgVendorNotFound = "vendor not found"
	ErrMsgSameVendor     = "a vendor cannot swap with itself"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Inventory errors
	ErrMsgNotInInventory   = "item is not in the inventory"
	ErrMsgEmptyInventory   = "inventory is empty"
	ErrMsgNoQualifyingItem = "no item matches the request"

	// Swap errors
	ErrMsgSwapRejected = "swap rejected"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// The Vendor methods themselves report misses with nil/false; these are what the
// service layer turns those misses into.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Vendor errors
	ErrVendorNotFound = errors.New(ErrMsgVendorNotFound)
	ErrSameVendor     = errors.New(ErrMsgSameVendor)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Inventory errors
	ErrNotInInventory   = errors.New(ErrMsgNotInInventory)
	ErrEmptyInventory   = errors.New(ErrMsgEmptyInventory)
	ErrNoQualifyingItem = errors.New(ErrMsgNoQualifyingItem)

	// Swap errors
	ErrSwapRejected = errors.New(ErrMsgSwapRejected)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
