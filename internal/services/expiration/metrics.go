package expiration

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the scheduler's Prometheus collectors
type Metrics struct {
	Scheduled prometheus.Counter
	Cancelled prometheus.Counter
	Warnings  prometheus.Counter
	Expired   *prometheus.CounterVec
	Pending   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg when it is not nil
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Scheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lobbyboard",
			Subsystem: "expiration",
			Name:      "scheduled_total",
			Help:      "Room deletions scheduled.",
		}),
		Cancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lobbyboard",
			Subsystem: "expiration",
			Name:      "cancelled_total",
			Help:      "Pending room deletions cancelled before firing.",
		}),
		Warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lobbyboard",
			Subsystem: "expiration",
			Name:      "warnings_total",
			Help:      "Expiry warnings delivered to room owners.",
		}),
		Expired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lobbyboard",
			Subsystem: "expiration",
			Name:      "expired_total",
			Help:      "Rooms deleted because their lifetime ran out.",
		}, []string{"source"}),
		Pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lobbyboard",
			Subsystem: "expiration",
			Name:      "pending",
			Help:      "Room deletions currently waiting to fire.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Scheduled, m.Cancelled, m.Warnings, m.Expired, m.Pending)
	}

	return m
}

const (
	// sourceTimer labels deletions fired by a scheduled task
	sourceTimer = "timer"

	// sourceRestore labels deletions made by RestoreAll for rooms already past their lifetime
	sourceRestore = "restore"
)
