// Package metrics exposes calculator activity as Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Path is where Handler is mounted.
const Path = "/metrics"

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(keyPressedCounter)
	registry.MustRegister(evaluationCounter)
	registry.MustRegister(shakeClearedCounter)
	registry.MustRegister(motionSampleCounter)
	registry.MustRegister(persistCounter)
}

// Handler serves the calculator metrics in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
