// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the prometheus collectors of the server.
// Every method is safe on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stash_journal"

// Outcome labels of the journal workflows.
const (
	DeductionLinked   = "linked"
	DeductionNoMatch  = "no_match"
	DeductionFallback = "fallback"

	FinishArchived = "archived"
	FinishResumed  = "resumed"
	FinishFailed   = "failed"

	UpsertCreated = "created"
	UpsertUpdated = "updated"
	UpsertFailed  = "failed"
)

// Metrics records HTTP traffic and workflow outcomes.
type Metrics struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	deductions *prometheus.CounterVec
	finishes   *prometheus.CounterVec
	upserts    *prometheus.CounterVec
}

// New registers the collectors on reg. A nil reg yields a no-op *Metrics.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}

	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		deductions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deductions_total",
			Help:      "Inventory deductions attempted on session creation by outcome.",
		}, []string{"outcome"}),
		finishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchase_finishes_total",
			Help:      "Finish and archive runs by outcome.",
		}, []string{"outcome"}),
		upserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strain_upserts_total",
			Help:      "Cultivar upserts by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.requests, m.duration, m.deductions, m.finishes, m.upserts)
	return m
}

// ObserveRequest records one served request. route is the chi route pattern.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// IncDeduction counts a deduction attempt.
func (m *Metrics) IncDeduction(outcome string) {
	if m == nil || m.deductions == nil {
		return
	}
	m.deductions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncFinish counts a finish and archive run.
func (m *Metrics) IncFinish(outcome string) {
	if m == nil || m.finishes == nil {
		return
	}
	m.finishes.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncUpsert counts a cultivar upsert.
func (m *Metrics) IncUpsert(outcome string) {
	if m == nil || m.upserts == nil {
		return
	}
	m.upserts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// Handler exposes the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
