package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Swap meet metric names
const (
	MetricNameVendorsCreated     = "swapmeet_vendors_created_total"
	MetricNameItemsAdded         = "swapmeet_items_added_total"
	MetricNameItemsRemoved       = "swapmeet_items_removed_total"
	MetricNameSwapsTotal         = "swapmeet_swaps_total"
	MetricNameSearchesPerformed  = "swapmeet_searches_total"
	MetricNameVendorCacheLookups = "swapmeet_vendor_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Swap meet metric help text
const (
	HelpTextVendorsCreated     = "Total number of vendors created"
	HelpTextItemsAdded         = "Total number of items added to vendor inventories"
	HelpTextItemsRemoved       = "Total number of items removed from vendor inventories"
	HelpTextSwapsTotal         = "Total number of swap attempts by kind and outcome"
	HelpTextSearchesPerformed  = "Total number of inventory searches"
	HelpTextVendorCacheLookups = "Vendor cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
	LabelKind     = "kind"
	LabelOutcome  = "outcome"
	LabelResult   = "result"
)

// Cache lookup results
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

// UnmatchedRoute labels requests that no route matched, keeping path cardinality bounded
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
