package metrics

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "academic_records"

var (
	Registry = prometheus.NewRegistry()

	APIRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "API requests by route and response status.",
	}, []string{"method", "route", "status"})

	APILatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "API request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	ValidationRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_rejections_total",
		Help:      "Changes rejected by validation, by field.",
	}, []string{"field"})

	ApprovalDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "approval_decisions_total",
		Help:      "Records approved or disapproved, by kind.",
	}, []string{"kind", "decision"})

	ImportedUsers = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imported_users_total",
		Help:      "Rows processed by the bulk user load, by result.",
	}, []string{"result"})
)

func init() {
	Registry.MustRegister(
		APIRequests,
		APILatency,
		ValidationRejections,
		ApprovalDecisions,
		ImportedUsers,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
}

func ObserveValidation(field string) {
	if field == "" {
		field = "__all__"
	}
	ValidationRejections.WithLabelValues(field).Inc()
}

func ObserveApproval(kind string, approved bool, count int) {
	decision := "disapprove"
	if approved {
		decision = "approve"
	}
	ApprovalDecisions.WithLabelValues(kind, decision).Add(float64(count))
}

func ObserveRequest(method, route string, status int, seconds float64) {
	APIRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APILatency.WithLabelValues(method, route).Observe(seconds)
}

// Handler exposes the registry in the prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
