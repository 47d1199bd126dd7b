package swapmeet

import "time"

// TracerName is the instrumentation scope of every span this package starts
const TracerName = "github.com/osse101/SwapMeet_Go/internal/swapmeet"

// Cache defaults
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute
)

// Span names
const (
	SpanCreateVendor       = "swapmeet.create_vendor"
	SpanGetVendor          = "swapmeet.get_vendor"
	SpanListVendors        = "swapmeet.list_vendors"
	SpanAddItem            = "swapmeet.add_item"
	SpanRemoveItem         = "swapmeet.remove_item"
	SpanGetByCategory      = "swapmeet.get_by_category"
	SpanGetBestByCategory  = "swapmeet.get_best_by_category"
	SpanGetByAge           = "swapmeet.get_by_age"
	SpanGetNewest          = "swapmeet.get_newest"
	SpanSwapItems          = "swapmeet.swap_items"
	SpanSwapFirstItem      = "swapmeet.swap_first_item"
	SpanSwapBestByCategory = "swapmeet.swap_best_by_category"
	SpanSwapByNewest       = "swapmeet.swap_by_newest"
)

// Span attribute keys
const (
	AttrVendorID    = "vendor.id"
	AttrOtherID     = "vendor.other_id"
	AttrItemID      = "item.id"
	AttrCategory    = "item.category"
	AttrSwapKind    = "swap.kind"
	AttrResultCount = "result.count"
)

// Search kinds, used as metric labels
const (
	SearchKindCategory = "category"
	SearchKindBest     = "best_by_category"
	SearchKindAge      = "age"
	SearchKindNewest   = "newest"
)

// Log messages
const (
	LogMsgVendorCreated    = "Vendor created"
	LogMsgItemAdded        = "Item added to vendor"
	LogMsgItemRemoved      = "Item removed from vendor"
	LogMsgSwapCompleted    = "Swap completed"
	LogMsgSwapFailed       = "Swap failed"
	LogMsgFailedToBeginTx  = "Failed to begin transaction"
	LogMsgFailedToCommitTx = "Failed to commit transaction"
)

// Error messages
const (
	ErrMsgFailedToBeginTx  = "failed to begin transaction"
	ErrMsgFailedToCommitTx = "failed to commit transaction"
	ErrMsgFailedToSave     = "failed to save vendor"
	ErrMsgCategoryRequired = "category is required"
	ErrMsgNameRequired     = "vendor name is required"
	ErrMsgConditionRange   = "condition must be between 0 and 5"
	ErrMsgAgeNegative      = "age must not be negative"
)
