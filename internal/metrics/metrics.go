package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/banka-network/banka-backend/internal/domain"
)

const namespace = "banka"

// Recorder holds the Prometheus collectors of the backend
type Recorder struct {
	deployments        *prometheus.CounterVec
	deploymentDuration prometheus.Histogram
	requestCounter     *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
}

// New creates a recorder and registers its collectors on reg.
// A nil registerer creates unregistered collectors.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		deployments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "token_deployments_total",
				Help:      "Total number of token deployment attempts by resolved status",
			},
			[]string{"status"},
		),
		deploymentDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "token_deployment_duration_seconds",
				Help:      "Duration of token deployment attempts in seconds",
				Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
			},
		),
		requestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Total number of API requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "path"},
		),
	}
}

// ObserveDeployment records one deployment attempt
func (r *Recorder) ObserveDeployment(status domain.DeploymentStatus, duration time.Duration) {
	if r == nil {
		return
	}
	r.deployments.WithLabelValues(string(status)).Inc()
	r.deploymentDuration.Observe(duration.Seconds())
}

// Middleware returns a gin middleware collecting request count and latency.
// Requests are labelled with the route template to keep label cardinality bounded.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		r.requestCounter.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		r.requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
