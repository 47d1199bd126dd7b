package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTx = "failed to begin vendor transaction"
)

// Error Messages - Vendor Operations
const (
	ErrMsgFailedToInsertVendor = "failed to insert vendor"
	ErrMsgFailedToUpdateVendor = "failed to update vendor"
	ErrMsgFailedToGetVendor    = "failed to get vendor"
	ErrMsgFailedToListVendors  = "failed to list vendors"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetInventory  = "failed to get inventory"
	ErrMsgFailedToSaveInventory = "failed to save inventory"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)

// Vendor queries
const (
	queryInsertVendor = `
		INSERT INTO vendors (vendor_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	queryUpdateVendor = `
		UPDATE vendors
		SET name = $2, updated_at = $3
		WHERE vendor_id = $1
	`
	querySelectVendor = `
		SELECT vendor_id, name, created_at, updated_at
		FROM vendors
		WHERE vendor_id = $1`
	queryListVendorIDs = `
		SELECT vendor_id
		FROM vendors
		ORDER BY created_at, vendor_id
	`
)

// Inventory queries
const (
	querySelectInventory = `
		SELECT i.item_id, i.category, i.condition, i.age, i.presentation, i.created_at
		FROM vendor_inventory vi
		JOIN items i ON i.item_id = vi.item_id
		WHERE vi.vendor_id = $1
		ORDER BY vi.position
	`
	queryUpsertItem = `
		INSERT INTO items (item_id, category, condition, age, presentation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (item_id) DO UPDATE
		SET category = EXCLUDED.category,
			condition = EXCLUDED.condition,
			age = EXCLUDED.age,
			presentation = EXCLUDED.presentation
	`
	queryClearInventory = `DELETE FROM vendor_inventory WHERE vendor_id = $1`
	queryInsertSlot     = `
		INSERT INTO vendor_inventory (vendor_id, position, item_id)
		VALUES ($1, $2, $3)
	`
)
