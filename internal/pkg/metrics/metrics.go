package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "digital_menu"

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	CarouselSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "carousel_sessions_active",
		Help:      "Open websocket carousel sessions.",
	})

	CarouselUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "carousel_state_pushes_total",
		Help:      "Carousel view states pushed to websocket clients.",
	})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restaurant_cache_lookups_total",
		Help:      "Public restaurant cache lookups by result (hit, miss, error).",
	}, []string{"result"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Change events by topic and sink.",
	}, []string{"topic", "sink"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
