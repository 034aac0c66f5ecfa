// Package metrics exposes Prometheus collectors for the coordination engines.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SOSSubmitted counts accepted SOS submissions by emergency type.
	SOSSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relief",
		Subsystem: "sos",
		Name:      "submitted_total",
		Help:      "Accepted SOS submissions.",
	}, []string{"emergency_type"})

	// SOSTransitions counts SOS state changes by target status.
	SOSTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relief",
		Subsystem: "sos",
		Name:      "transitions_total",
		Help:      "SOS lifecycle transitions.",
	}, []string{"status"})

	// ValidationFailures counts rejected payloads by entity.
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relief",
		Name:      "validation_failures_total",
		Help:      "Payloads rejected by validation.",
	}, []string{"entity"})

	// AllocationTransitions counts allocation request state changes.
	AllocationTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relief",
		Subsystem: "allocation",
		Name:      "transitions_total",
		Help:      "Allocation workflow transitions.",
	}, []string{"status", "resource_type"})

	// InsufficientStock counts reservation attempts that did not fit.
	InsufficientStock = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relief",
		Subsystem: "ledger",
		Name:      "insufficient_stock_total",
		Help:      "Ledger reservations rejected for insufficient stock.",
	}, []string{"resource_type"})

	// LedgerCASConflicts counts optimistic-concurrency retries in the ledger.
	LedgerCASConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "relief",
		Subsystem: "ledger",
		Name:      "cas_conflicts_total",
		Help:      "Ledger compare-and-swap attempts that lost a race.",
	})

	// LockContention counts per-entity lock acquisitions that timed out.
	LockContention = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relief",
		Name:      "lock_contention_total",
		Help:      "Entity lock acquisitions that timed out.",
	}, []string{"entity"})

	// TrackingRegistered counts issued tracking ids by case type.
	TrackingRegistered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relief",
		Subsystem: "tracking",
		Name:      "registered_total",
		Help:      "Tracking ids issued.",
	}, []string{"case_type"})

	// BadgeCacheHits counts badge snapshots served from cache vs computed.
	BadgeCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relief",
		Subsystem: "badges",
		Name:      "lookups_total",
		Help:      "Badge snapshot lookups by source.",
	}, []string{"source"})

	// HTTPRequestDuration - время обработки запросов по маршруту и коду ответа
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "relief",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
