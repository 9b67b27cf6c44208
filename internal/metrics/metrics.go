package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	repliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerguide_chat_replies_total",
			Help: "Total chat replies by the path that produced them",
		},
		[]string{"source"},
	)

	fallbackKeywordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerguide_fallback_keyword_hits_total",
			Help: "Total fallback table matches by keyword",
		},
		[]string{"keyword"},
	)

	completionFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerguide_completion_failures_total",
			Help: "Total completion failures by reason",
		},
		[]string{"reason"},
	)

	fallbackTableDesc = prometheus.NewDesc(
		"careerguide_fallback_table_entries",
		"Number of entries in the active fallback table",
		[]string{"locale"},
		nil,
	)
)

// TableCollector reports the size of the active fallback table on each scrape.
type TableCollector struct {
	locale  string
	entries int
}

// Describe sends the metric descriptor to the channel.
func (c *TableCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- fallbackTableDesc
}

// Collect emits the table size as a gauge.
func (c *TableCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		fallbackTableDesc,
		prometheus.GaugeValue,
		float64(c.entries),
		c.locale,
	)
}

var initOnce sync.Once

// Init registers all collectors with the default registry.
// Must be called once at startup; later calls are no-ops.
func Init(locale string, tableEntries int) {
	initOnce.Do(func() {
		prometheus.MustRegister(
			repliesTotal,
			fallbackKeywordsTotal,
			completionFailuresTotal,
			&TableCollector{locale: locale, entries: tableEntries},
		)
	})
}

// RecordReply counts a reply by source ("completion", "fallback", "prompt").
func RecordReply(source string) {
	repliesTotal.WithLabelValues(source).Inc()
}

// RecordFallbackKeyword counts a fallback table match. Keywords come from the
// fixed table, so label cardinality is bounded.
func RecordFallbackKeyword(keyword string) {
	fallbackKeywordsTotal.WithLabelValues(keyword).Inc()
}

// RecordCompletionFailure counts a failed completion by reason.
func RecordCompletionFailure(reason string) {
	completionFailuresTotal.WithLabelValues(reason).Inc()
}
