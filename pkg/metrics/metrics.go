// Package metrics declares the prometheus collectors maintained by s3web.
//
// Collectors are always updated. They are exported only once registered, e.g. by the CLI.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "s3web"

var (
	// Fetches counts requests issued to remote stores, by store and status code
	Fetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_total",
		Help:      "Total requests issued to remote stores.",
	}, []string{"store", "code"})

	// PulledBytes counts archive bytes written to local destinations
	PulledBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pulled_bytes_total",
		Help:      "Total archive bytes pulled from remotes.",
	})

	// SkippedLines counts manifest lines ignored while parsing
	SkippedLines = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "manifest_skipped_lines_total",
		Help:      "Total manifest lines skipped because they did not describe a commit.",
	})
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{Fetches, PulledBytes, SkippedLines}
}

// Register collectors on some registerer. Registering twice on the same registerer is not an error.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors() {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// Serve exposes a /metrics endpoint for the default gatherer on addr (e.g. ":9090"). It blocks.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
