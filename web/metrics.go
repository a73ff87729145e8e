// ABOUTME: Prometheus counters for command dispatch, persistence failures, and page views.
// ABOUTME: Registered via promauto on the default registry, served at /metrics.
package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitewright_commands_total",
		Help: "Editor commands dispatched, by command type and outcome.",
	}, []string{"type", "outcome"})

	persistFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sitewright_persist_failures_total",
		Help: "Document persistence failures. The in-memory document still advances.",
	})

	pageViewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitewright_page_views_total",
		Help: "Public page renders, by page name.",
	}, []string{"page"})
)

// CountPersistFailure increments the persistence-failure counter. Installed
// as the store's persist-failure hook by the composition root.
func CountPersistFailure() {
	persistFailuresTotal.Inc()
}
