package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Global collector instance for singleton pattern
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the feed insights pipeline
type Collector struct {
	registry *prometheus.Registry

	// Request metrics
	FeedRequests *prometheus.CounterVec
	FeedDuration prometheus.Histogram

	// Branch metrics
	BranchDuration *prometheus.HistogramVec

	// Output metrics
	SuggestionsReturned *prometheus.HistogramVec
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	// Use singleton pattern to avoid duplicate registration in tests
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	if globalCollector != nil {
		return globalCollector
	}

	registry := prometheus.NewRegistry()

	feedRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_insights_requests_total",
			Help:      "Total number of feed insights requests",
		},
		[]string{"status"},
	)

	feedDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_insights_duration_seconds",
			Help:      "Feed insights orchestration duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	branchDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_insights_branch_duration_seconds",
			Help:      "Duration of each pipeline branch in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"branch"},
	)

	suggestionsReturned := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_insights_items_returned",
			Help:      "Number of items returned per payload section",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		},
		[]string{"section"},
	)

	registry.MustRegister(feedRequests, feedDuration, branchDuration, suggestionsReturned)

	globalCollector = &Collector{
		registry:            registry,
		FeedRequests:        feedRequests,
		FeedDuration:        feedDuration,
		BranchDuration:      branchDuration,
		SuggestionsReturned: suggestionsReturned,
	}
	return globalCollector
}

// Registry returns the underlying registry for exposition
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveRequest records one orchestration call
func (c *Collector) ObserveRequest(status string, duration time.Duration) {
	if c == nil {
		return
	}
	c.FeedRequests.WithLabelValues(status).Inc()
	c.FeedDuration.Observe(duration.Seconds())
}

// ObserveBranch records one branch execution
func (c *Collector) ObserveBranch(branch string, duration time.Duration) {
	if c == nil {
		return
	}
	c.BranchDuration.WithLabelValues(branch).Observe(duration.Seconds())
}

// ObserveSection records the item count of one payload section
func (c *Collector) ObserveSection(section string, count int) {
	if c == nil {
		return
	}
	c.SuggestionsReturned.WithLabelValues(section).Observe(float64(count))
}
