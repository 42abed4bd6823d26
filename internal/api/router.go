// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

// Package api provides the HTTP surface: Chi routing, middleware,
// request validation, and the standardized JSON response envelope.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router assembles the HTTP handler tree.
type Router struct {
	handler *Handler
}

// NewRouter returns a router around the given handlers.
func NewRouter(handler *Handler) *Router {
	return &Router{handler: handler}
}

// Setup builds the full middleware and route tree.
func (router *Router) Setup() http.Handler {
	cfg := router.handler.cfg
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(cfg.API.CORSOrigins))
	r.Use(RequestLogging())

	// Operational endpoints stay outside the rate limit so monitoring
	// never gets throttled by client traffic.
	r.Get("/api/v1/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimit(cfg.API.RateLimitReqs, cfg.API.RateLimitWindow))
		r.Use(SecurityHeaders())
		r.Use(RequestMetrics())

		r.Get("/laptops", router.handler.ListLaptops)
		r.Get("/laptops/{id}", router.handler.GetLaptop)

		r.Post("/recommend", router.handler.Recommend)
		r.Get("/recommend/profiles", router.handler.Profiles)
		r.Post("/compare", router.handler.Compare)

		r.Get("/search", router.handler.Search)
		r.Get("/search/suggest", router.handler.Suggest)

		r.Post("/chat", router.handler.Chat)
	})

	return r
}
