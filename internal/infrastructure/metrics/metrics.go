package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_lookups_total",
		Help: "Cache lookups by cache and result.",
	}, []string{"cache", "result"})

	cacheLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cache_lookup_duration_seconds",
		Help:    "Latency of cache lookups.",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}, []string{"result"})

	tagCountUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tag_count_updates_total",
		Help: "Tag counters touched by the reconciler, by operation.",
	}, []string{"op"})

	tagIntegrityWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tag_count_integrity_warnings_total",
		Help: "Decrements that hit a counter already at zero, and drift found by live recounts.",
	})

	tagRecounts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tag_recount_corrections_total",
		Help: "Tag counters rewritten by a full recount.",
	})
)

func IncDetailHit()   { cacheLookups.WithLabelValues("blog_detail", "hit").Inc() }
func IncDetailMiss()  { cacheLookups.WithLabelValues("blog_detail", "miss").Inc() }
func IncListHit()     { cacheLookups.WithLabelValues("blog_list", "hit").Inc() }
func IncListMiss()    { cacheLookups.WithLabelValues("blog_list", "miss").Inc() }
func IncTagListHit()  { cacheLookups.WithLabelValues("tag_list", "hit").Inc() }
func IncTagListMiss() { cacheLookups.WithLabelValues("tag_list", "miss").Inc() }

func AddHitDuration(seconds float64)  { cacheLookupDuration.WithLabelValues("hit").Observe(seconds) }
func AddMissDuration(seconds float64) { cacheLookupDuration.WithLabelValues("miss").Observe(seconds) }

// AddTagCountUpdates records n counter changes; op is "increment", "decrement" or "set".
func AddTagCountUpdates(op string, n int) {
	if n > 0 {
		tagCountUpdates.WithLabelValues(op).Add(float64(n))
	}
}

func IncCountIntegrityWarning() { tagIntegrityWarnings.Inc() }

func AddRecountCorrections(n int) {
	if n > 0 {
		tagRecounts.Add(float64(n))
	}
}
