// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

// Package metrics provides Prometheus instrumentation for:
//   - Catalog query performance (DuckDB)
//   - API endpoint latency and throughput
//   - Recommendation and chat pipeline activity
//   - Security filter blocks
//   - Text-completion collaborator health
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog store metrics
	CatalogQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Duration of catalog store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	CatalogQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_query_errors_total",
			Help: "Total number of catalog store query errors",
		},
		[]string{"operation"},
	)

	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	// Recommendation engine metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of use-case recommendation requests",
		},
		[]string{"usecase", "priority"},
	)

	RecommendCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_candidate_count",
			Help:    "Number of candidates surviving hard filters per ranking call",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
		[]string{"usecase"},
	)

	// Chat pipeline metrics
	ChatRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total number of chat pipeline invocations by detected intent",
		},
		[]string{"intent"},
	)

	BlockedQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_blocked_queries_total",
			Help: "Total number of queries blocked by the security filter",
		},
		[]string{"category"},
	)

	SanitizedResponsesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_sanitized_responses_total",
			Help: "Total number of generated responses replaced by the outbound filter",
		},
	)

	// Text-completion collaborator metrics
	CompletionRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "completion_request_duration_seconds",
			Help:    "Duration of text-completion collaborator calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	CompletionErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "completion_errors_total",
			Help: "Total number of failed text-completion calls",
		},
		[]string{"reason"}, // "request", "status", "circuit_open"
	)
)

// ObserveCatalogQuery records one catalog query's duration and outcome.
func ObserveCatalogQuery(operation string, start time.Time, err error) {
	CatalogQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		CatalogQueryErrors.WithLabelValues(operation).Inc()
	}
}

// ObserveAPIRequest records one API request.
func ObserveAPIRequest(endpoint, method string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}
