package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Inventory metric names
const (
	MetricNameDaysAdvancedTotal  = "inventory_days_advanced_total"
	MetricNameDayAdvanceFailures = "inventory_day_advance_failures_total"
	MetricNameItemsUpdatedTotal  = "inventory_items_updated_total"
	MetricNameItemsExpired       = "inventory_items_expired"
	MetricNameItemsInStock       = "inventory_items_in_stock"
	MetricNameDayAdvanceDuration = "inventory_day_advance_duration_seconds"
	MetricNameCurrentDay         = "inventory_current_day"
	MetricNameWorkerJobsTotal    = "inventory_worker_jobs_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Inventory metric help text
const (
	HelpTextDaysAdvancedTotal  = "Total number of days the inventory has been advanced"
	HelpTextDayAdvanceFailures = "Total number of failed day advances"
	HelpTextItemsUpdatedTotal  = "Total number of item updates applied, by category"
	HelpTextItemsExpired       = "Items past their sell-by date after the last advance"
	HelpTextItemsInStock       = "Items in stock after the last advance, by category"
	HelpTextDayAdvanceDuration = "Time spent advancing the inventory by one day"
	HelpTextCurrentDay         = "Day number of the last completed advance"
	HelpTextWorkerJobsTotal    = "Background jobs processed, by job and result"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
	LabelJob      = "job"
	LabelResult   = "result"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	PathUnmatched = "unmatched"
)

// Buckets
var (
	HTTPLatencyBuckets       = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
	DayAdvanceLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}
)
