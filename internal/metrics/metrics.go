// Package metrics exposes Prometheus metrics for the reminder scheduler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
)

var (
	// ScansTotal counts completed scheduler scans.
	ScansTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reminderbot",
			Subsystem: "scheduler",
			Name:      "scans_total",
			Help:      "Total number of scheduler scans",
		},
	)

	// ScanDuration tracks how long a full scan (delivery + persist) takes.
	ScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "reminderbot",
			Subsystem: "scheduler",
			Name:      "scan_duration_seconds",
			Help:      "Duration of scheduler scans in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// DeliveriesTotal counts fired reminders.
	// Labels: result (delivered, failed)
	DeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reminderbot",
			Subsystem: "scheduler",
			Name:      "deliveries_total",
			Help:      "Total number of fired reminders by delivery result",
		},
		[]string{"result"},
	)

	// PersistFailuresTotal counts failed saves of the reminder list.
	PersistFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reminderbot",
			Subsystem: "registry",
			Name:      "persist_failures_total",
			Help:      "Total number of failed reminder list saves",
		},
	)

	// ActiveReminders is the number of reminders held by the registry.
	ActiveReminders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "reminderbot",
			Subsystem: "registry",
			Name:      "active_reminders",
			Help:      "Current number of reminders in the registry",
		},
	)
)
