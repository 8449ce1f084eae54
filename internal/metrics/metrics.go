package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Inventory Metrics
var (
	DaysAdvancedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysAdvancedTotal,
			Help: HelpTextDaysAdvancedTotal,
		},
	)

	DayAdvanceFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDayAdvanceFailures,
			Help: HelpTextDayAdvanceFailures,
		},
	)

	ItemsUpdatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUpdatedTotal,
			Help: HelpTextItemsUpdatedTotal,
		},
		[]string{LabelCategory},
	)

	ItemsInStock = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameItemsInStock,
			Help: HelpTextItemsInStock,
		},
		[]string{LabelCategory},
	)

	ItemsExpired = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameItemsExpired,
			Help: HelpTextItemsExpired,
		},
	)

	CurrentDay = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCurrentDay,
			Help: HelpTextCurrentDay,
		},
	)

	DayAdvanceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDayAdvanceDuration,
			Help:    HelpTextDayAdvanceDuration,
			Buckets: DayAdvanceLatencyBuckets,
		},
	)

	WorkerJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorkerJobsTotal,
			Help: HelpTextWorkerJobsTotal,
		},
		[]string{LabelJob, LabelResult},
	)
)

// RecordDay publishes the outcome of a completed day advance
func RecordDay(report *domain.DayReport) {
	DaysAdvancedTotal.Inc()
	CurrentDay.Set(float64(report.Day))
	ItemsExpired.Set(float64(report.ItemsExpired))
	DayAdvanceDuration.Observe(report.Duration.Seconds())

	for _, category := range domain.Categories {
		count := report.ByCategory[category]
		ItemsInStock.WithLabelValues(category.String()).Set(float64(count))
		if !category.IsLegendary() && count > 0 {
			ItemsUpdatedTotal.WithLabelValues(category.String()).Add(float64(count))
		}
	}
}
