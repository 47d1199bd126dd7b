package domain

// Well-known item categories. Any non-empty category string is accepted; these are
// the ones with a dedicated presentation.
const (
	CategoryClothing    Category = "Clothing"
	CategoryDecor       Category = "Decor"
	CategoryElectronics Category = "Electronics"
)

// Presentation variants replace the per-category item subtypes
const (
	PresentationGeneric     Presentation = "generic"
	PresentationClothing    Presentation = "clothing"
	PresentationDecor       Presentation = "decor"
	PresentationElectronics Presentation = "electronics"
)

// Display text per presentation
const (
	DisplayGeneric     = "Hello World!"
	DisplayClothing    = "The finest clothing you could wear."
	DisplayDecor       = "Something to decorate your space."
	DisplayElectronics = "A gadget full of wonder."
)

// Condition scale bounds
const (
	MinCondition = 0.0
	MaxCondition = 5.0
)

// Condition descriptions, from worst to best
const (
	ConditionHeavilyUsed = "Heavily used"
	ConditionPoor        = "Poor"
	ConditionFair        = "Fair"
	ConditionGood        = "Good"
	ConditionVeryGood    = "Very good"
	ConditionMint        = "Mint"
)

// Swap kinds, used for logging and metrics labels
const (
	SwapKindItems    = "items"
	SwapKindFirst    = "first"
	SwapKindBest     = "best_by_category"
	SwapKindNewest   = "newest"
	SwapOutcomeOK    = "ok"
	SwapOutcomeNoop  = "rejected"
	SwapOutcomeError = "error"
)
