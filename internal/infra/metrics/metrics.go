package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restro_ledger"

// Metrics implements shared.LedgerRecorder and exposes HTTP request metrics.
type Metrics struct {
	ReservationsTotal *prometheus.CounterVec
	GuestsSeated      prometheus.Counter
	CheckoutsTotal    prometheus.Counter
	DeletionsTotal    *prometheus.CounterVec
	SeatsLeftGauge    prometheus.Gauge

	RequestTotal    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ReservationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_total",
				Help:      "Reserve attempts by outcome",
			},
			[]string{"outcome"},
		),
		GuestsSeated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "guests_seated_total",
				Help:      "Guests admitted through successful reservations",
			},
		),
		CheckoutsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkouts_total",
				Help:      "Reservations checked out",
			},
		),
		DeletionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deletions_total",
				Help:      "Reservations deleted, by whether seats were released",
			},
			[]string{"released"},
		),
		SeatsLeftGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "seats_left",
				Help:      "Seats currently available",
			},
		),
		RequestTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

func (m *Metrics) ReservationCreated(guests int) {
	m.ReservationsTotal.WithLabelValues("created").Inc()
	m.GuestsSeated.Add(float64(guests))
}

func (m *Metrics) ReservationRejected(reason string) {
	m.ReservationsTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) ReservationCheckedOut(int) {
	m.CheckoutsTotal.Inc()
}

func (m *Metrics) ReservationDeleted(releasedSeats int) {
	m.DeletionsTotal.WithLabelValues(strconv.FormatBool(releasedSeats > 0)).Inc()
}

func (m *Metrics) SeatsLeft(n int) {
	m.SeatsLeftGauge.Set(float64(n))
}

// Middleware labels requests with the route template so ids do not explode cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
