// Package metrics declares the prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "food_reels"

var (
	// ToggleTotal counts toggles by kind and outcome (on, off, error).
	ToggleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "toggles_total",
		Help:      "Like and save toggles by kind and result.",
	}, []string{"kind", "result"})

	// CounterClampTotal counts "off" toggles that found the counter already at zero.
	CounterClampTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "counter_clamps_total",
		Help:      "Decrements refused because the counter was already zero.",
	}, []string{"kind"})

	ToggleRetryTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "toggle_conflict_retries_total",
		Help:      "Toggles retried after a conflict with a concurrent toggle.",
	})

	ReconcileRepairsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconcile_repairs_total",
		Help:      "Counters overwritten by reconciliation.",
	}, []string{"kind"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route, method and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
)

// GinMiddleware observes request latency labelled by the matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
