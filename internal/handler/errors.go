package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// Request error messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRequestFormat  = "Invalid request format"

	// Path and query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidPathID     = "Invalid %s"
	ErrMsgInvalidAge        = "Age must be a non-negative whole number"

	// Operation names used in logs
	OpCreateVendor       = "Create vendor"
	OpGetVendor          = "Get vendor"
	OpListVendors        = "List vendors"
	OpAddItem            = "Add item"
	OpRemoveItem         = "Remove item"
	OpGetByCategory      = "Get items by category"
	OpGetBestByCategory  = "Get best item by category"
	OpGetByAge           = "Get item by age"
	OpGetNewest          = "Get newest item"
	OpSwapItems          = "Swap items"
	OpSwapFirstItem      = "Swap first item"
	OpSwapBestByCategory = "Swap best by category"
	OpSwapByNewest       = "Swap by newest"

	// Success messages
	MsgVendorCreated = "Vendor created"
	MsgItemAdded     = "Item added"
	MsgItemRemoved   = "Item removed"
	MsgSwapCompleted = "Swap completed"

	// Path parameters
	ParamVendorID = "vendorID"
	ParamItemID   = "itemID"
	ParamAge      = "age"

	// Query parameters
	QueryCategory = "category"
)
