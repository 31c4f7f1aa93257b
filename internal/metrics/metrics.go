package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"gatbot/internal/store"
)

var (
	faqCountDesc = prometheus.NewDesc(
		"chatbot_faqs",
		"Number of FAQ records currently in the store",
		nil,
		nil,
	)

	resolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_resolutions_total",
			Help: "Total chat resolutions by source",
		},
		[]string{"source"},
	)

	resolutionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chatbot_resolution_duration_seconds",
			Help:    "Time spent resolving a chat question",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// CorpusCollector is a custom Prometheus collector that reads the FAQ count
// from the store on each scrape.
type CorpusCollector struct {
	faqs store.FAQStore
}

// Describe sends the metric descriptor to the channel.
func (c *CorpusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- faqCountDesc
}

// Collect queries the store for the current FAQ count and emits it as a gauge.
func (c *CorpusCollector) Collect(ch chan<- prometheus.Metric) {
	count, err := c.faqs.Count(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("failed to collect faq count metric")
		return
	}
	ch <- prometheus.MustNewConstMetric(faqCountDesc, prometheus.GaugeValue, float64(count))
}

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init(faqs store.FAQStore) {
	initOnce.Do(func() {
		prometheus.MustRegister(
			resolutionsTotal,
			resolutionDuration,
			&CorpusCollector{faqs: faqs},
		)
	})
}

// RecordResolution records one completed resolution.
func RecordResolution(source string, elapsed time.Duration) {
	resolutionsTotal.WithLabelValues(source).Inc()
	resolutionDuration.Observe(elapsed.Seconds())
}
