package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aerosense_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "aerosense_http_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	WeatherUpstreamFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "aerosense_weather_upstream_failures_total",
			Help: "Failed or unusable NASA POWER responses",
		},
	)
)

func Register() {
	prometheus.MustRegister(ReqCount, ReqDuration, WeatherUpstreamFailures)
}

// Serve exposes /metrics on its own listener so the Fiber app stays free of
// net/http adaptors.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
