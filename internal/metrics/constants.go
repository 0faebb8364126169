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

// Business metric names
const (
	MetricNameSessionsCreated  = "unlock_sessions_created_total"
	MetricNameCodeRedemptions  = "code_redemptions_total"
	MetricNameNextCodeDraws    = "next_code_draws_total"
	MetricNameCatalogExhausted = "catalog_exhausted_hits_total"
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

// Business metric help text
const (
	HelpTextSessionsCreated  = "Total number of unlock sessions created"
	HelpTextCodeRedemptions  = "Total number of redemption attempts by outcome"
	HelpTextNextCodeDraws    = "Total number of next-code draws by rarity"
	HelpTextCatalogExhausted = "Total number of next-code calls against an exhausted catalog"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelRarity  = "rarity"
)

// HTTPLatencyBuckets covers sub-millisecond in-memory handlers up to slow
// outliers.
var HTTPLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}
