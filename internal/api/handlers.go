// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/ngocvb/laptoplens/internal/assistant"
	"github.com/ngocvb/laptoplens/internal/cache"
	"github.com/ngocvb/laptoplens/internal/catalog"
	"github.com/ngocvb/laptoplens/internal/config"
	"github.com/ngocvb/laptoplens/internal/logging"
	"github.com/ngocvb/laptoplens/internal/models"
	"github.com/ngocvb/laptoplens/internal/recommend"
	"github.com/ngocvb/laptoplens/internal/session"
)

// suggestLimitMax caps search-suggestion result counts.
const suggestLimitMax = 10

// responseCacheTTL bounds staleness of cached recommendation payloads.
// The catalog changes rarely, so minutes of staleness is acceptable.
const responseCacheTTL = 5 * time.Minute

// Handler carries the dependencies shared by all endpoint handlers.
type Handler struct {
	cfg       *config.Config
	store     catalog.Store
	engine    *recommend.Engine
	assistant *assistant.Service
	sessions  *session.Store
	cache     *cache.Cache
}

// NewHandler wires the endpoint handlers.
func NewHandler(cfg *config.Config, store catalog.Store, engine *recommend.Engine,
	svc *assistant.Service, sessions *session.Store) *Handler {
	return &Handler{
		cfg:       cfg,
		store:     store,
		engine:    engine,
		assistant: svc,
		sessions:  sessions,
		cache:     cache.New(responseCacheTTL),
	}
}

// Health reports service liveness and catalog size.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	count, err := h.store.Count(r.Context(), catalog.Filter{})
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE",
			"Catalog store is not responding", err)
		return
	}

	cacheStats := h.cache.GetStats()
	respondJSON(w, http.StatusOK, models.NewSuccessResponse(map[string]interface{}{
		"status":            "healthy",
		"laptops":           count,
		"assistant_enabled": h.cfg.Assistant.Enabled,
		"cache": map[string]interface{}{
			"keys":     cacheStats.TotalKeys,
			"hits":     cacheStats.Hits,
			"misses":   cacheStats.Misses,
			"hit_rate": h.cache.HitRate(),
		},
	}, time.Since(start)))
}

// laptopListResponse is the paginated listing payload.
type laptopListResponse struct {
	Laptops  []models.Laptop `json:"laptops"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ListLaptops returns a filtered, paginated catalog listing.
//
// Query parameters: brand, category, price_min, price_max, ram_min,
// q (name substring), page, page_size.
func (h *Handler) ListLaptops(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	category := models.Category(r.URL.Query().Get("category"))
	if category != "" && !category.IsValid() {
		respondError(w, http.StatusBadRequest, "INVALID_CATEGORY",
			"category must be one of: gaming, design, dev, student, office", nil)
		return
	}

	page := getIntParam(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := clamp(getIntParam(r, "page_size", h.cfg.API.DefaultPageSize), 1, h.cfg.API.MaxPageSize)

	f := catalog.Filter{
		Brand:         r.URL.Query().Get("brand"),
		Category:      category,
		PriceMin:      getInt64Param(r, "price_min"),
		PriceMax:      getInt64Param(r, "price_max"),
		RAMMin:        getIntParam(r, "ram_min", 0),
		NameContains:  r.URL.Query().Get("q"),
		OrderPriceAsc: true,
		Limit:         pageSize,
		Offset:        (page - 1) * pageSize,
	}

	total, err := h.store.Count(ctx, f)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_FAILED",
			"Failed to query catalog", err)
		return
	}
	laptops, err := h.store.Find(ctx, f)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_FAILED",
			"Failed to query catalog", err)
		return
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(laptopListResponse{
		Laptops:  laptops,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, time.Since(start)))
}

// laptopDetailResponse enriches one record with derived figures. Both
// benchmark variants are included because laptops throttle on battery.
type laptopDetailResponse struct {
	models.Laptop

	PriceFormatted        string  `json:"price_formatted"`
	PriceTier             string  `json:"price_tier"`
	RAMTier               string  `json:"ram_tier"`
	BatteryTier           string  `json:"battery_tier"`
	BenchmarkScore        float64 `json:"benchmark_score"`
	BenchmarkScoreBattery float64 `json:"benchmark_score_battery"`
}

// GetLaptop returns one laptop with derived tiers and benchmark score.
func (h *Handler) GetLaptop(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "id must be an integer", nil)
		return
	}

	l, err := h.store.Get(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Laptop not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_FAILED",
			"Failed to load laptop", err)
		return
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(laptopDetailResponse{
		Laptop:                l,
		PriceFormatted:        models.FormatPrice(l.Price),
		PriceTier:             models.PriceTier(l.Price),
		RAMTier:               models.RAMTier(l.RAMGB),
		BatteryTier:           models.BatteryTier(l.BatteryLifeOfficeMin),
		BenchmarkScore:        recommend.BenchmarkScore(l, recommend.BenchmarkPlugged),
		BenchmarkScoreBattery: recommend.BenchmarkScore(l, recommend.BenchmarkBattery),
	}, time.Since(start)))
}

// RecommendRequest is the POST /recommend body.
type RecommendRequest struct {
	// Need names the use-case profile.
	Need string `json:"need" validate:"required,oneof=gaming design dev student office"`

	// Priority adjusts the composite score; defaults to balanced.
	Priority string `json:"priority" validate:"omitempty,oneof=performance budget balanced"`

	// BudgetMax optionally caps candidate prices (VND).
	BudgetMax int64 `json:"budget_max" validate:"omitempty,gt=0"`
}

// Recommend runs the named use-case recommendation flow.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, models.NewErrorResponse(apiErr.Code, apiErr.Message, apiErr.Details))
		return
	}

	priority := recommend.Priority(req.Priority)
	if priority == "" {
		priority = recommend.PriorityBalanced
	}

	key := cache.GenerateKey("recommend", req)
	if cached, ok := h.cache.Get(key); ok {
		respondJSON(w, http.StatusOK, models.NewSuccessResponse(cached, time.Since(start)))
		return
	}

	var budgetMax *int64
	if req.BudgetMax > 0 {
		budgetMax = &req.BudgetMax
	}

	ranked, err := h.engine.RecommendForUseCase(r.Context(), models.Category(req.Need), priority, budgetMax)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "RECOMMEND_FAILED",
			"Failed to compute recommendations", err)
		return
	}

	payload := map[string]interface{}{
		"need":            req.Need,
		"priority":        string(priority),
		"recommendations": ranked,
		"count":           len(ranked),
	}
	h.cache.Set(key, payload)

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(payload, time.Since(start)))
}

// Profiles lists the built-in use-case profiles.
func (h *Handler) Profiles(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	respondJSON(w, http.StatusOK, models.NewSuccessResponse(map[string]interface{}{
		"profiles": recommend.Profiles(),
	}, time.Since(start)))
}

// CompareRequest is the POST /compare body.
type CompareRequest struct {
	// IDs lists the laptops to compare side by side.
	IDs []int64 `json:"ids" validate:"required,min=2,max=5,dive,gt=0"`

	// Mode selects the benchmark measurement set for the chart data;
	// defaults to plugged.
	Mode string `json:"mode" validate:"omitempty,oneof=plugged battery"`
}

// benchmarkEntry pairs a laptop name with its raw chart measurements.
type benchmarkEntry struct {
	Name string `json:"name"`

	recommend.BenchmarkMeasurements
}

// compareResponse is the comparison verdicts plus the mode-selected
// benchmark chart data.
type compareResponse struct {
	recommend.Comparison

	BenchmarkMode string           `json:"benchmark_mode"`
	Benchmarks    []benchmarkEntry `json:"benchmarks"`
}

// Compare scores 2..5 laptops side by side and picks verdicts.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, models.NewErrorResponse(apiErr.Code, apiErr.Message, apiErr.Details))
		return
	}

	laptops, err := h.store.GetMany(r.Context(), req.IDs)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_FAILED",
			"Failed to load laptops", err)
		return
	}
	if len(laptops) != len(req.IDs) {
		respondJSON(w, http.StatusNotFound, models.NewErrorResponse("NOT_FOUND",
			"One or more laptops do not exist",
			map[string]interface{}{"found": len(laptops), "requested": len(req.IDs)}))
		return
	}

	mode := recommend.BenchmarkMode(req.Mode)
	if !mode.IsValid() {
		mode = recommend.BenchmarkPlugged
	}
	benchmarks := make([]benchmarkEntry, len(laptops))
	for i, l := range laptops {
		benchmarks[i] = benchmarkEntry{
			Name:                  l.Name,
			BenchmarkMeasurements: recommend.MeasurementsFor(l, mode),
		}
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(compareResponse{
		Comparison:    recommend.Compare(laptops),
		BenchmarkMode: string(mode),
		Benchmarks:    benchmarks,
	}, time.Since(start)))
}

// Suggest returns type-ahead suggestions for the storefront search box.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := r.URL.Query().Get("q")
	if len([]rune(q)) < 2 {
		respondJSON(w, http.StatusOK, models.NewSuccessResponse(map[string]interface{}{
			"suggestions": []models.Laptop{},
		}, time.Since(start)))
		return
	}
	limit := clamp(getIntParam(r, "limit", 5), 1, suggestLimitMax)

	laptops, err := h.store.Suggest(r.Context(), q, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_FAILED",
			"Failed to query suggestions", err)
		return
	}
	if laptops == nil {
		laptops = []models.Laptop{}
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(map[string]interface{}{
		"suggestions": laptops,
	}, time.Since(start)))
}

// Search runs a sanitized free-text catalog search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := r.URL.Query().Get("q")
	limit := clamp(getIntParam(r, "limit", 10), 1, h.cfg.API.MaxPageSize)

	laptops, err := h.assistant.SearchLaptops(r.Context(), q, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_FAILED",
			"Failed to search catalog", err)
		return
	}
	if laptops == nil {
		laptops = []models.Laptop{}
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(map[string]interface{}{
		"results": laptops,
		"count":   len(laptops),
	}, time.Since(start)))
}

// ChatRequest is the POST /chat body.
type ChatRequest struct {
	// Message is the user's question.
	Message string `json:"message" validate:"required,max=4000"`

	// SessionID continues an existing conversation; empty starts one.
	SessionID string `json:"session_id" validate:"omitempty,uuid4"`
}

// chatResponse is the chat payload, the pipeline reply plus the
// session ID the client should send back on the next turn.
type chatResponse struct {
	assistant.Reply

	SessionID string `json:"session_id"`
}

// Chat runs one turn of the conversational assistant.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	if !h.cfg.Assistant.Enabled {
		respondError(w, http.StatusServiceUnavailable, "ASSISTANT_DISABLED",
			"The assistant is not enabled on this deployment", nil)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, models.NewErrorResponse(apiErr.Code, apiErr.Message, apiErr.Details))
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = session.NewSessionID()
	}

	history, err := h.sessions.History(sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_FAILED",
			"Failed to load conversation history", err)
		return
	}

	reply, err := h.assistant.GenerateResponse(ctx, req.Message, history)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "CHAT_FAILED",
			"Failed to generate a response", err)
		return
	}

	// Persist successful turns only; blocked or failed turns should not
	// pollute the transcript the model sees next time.
	if reply.Success && !reply.Blocked {
		if err := h.sessions.Append(sessionID,
			models.ChatMessage{Role: "user", Content: req.Message},
			models.ChatMessage{Role: "assistant", Content: reply.Response},
		); err != nil {
			logging.Ctx(ctx).Error().Err(err).Msg("Failed to persist chat turn")
		}
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(chatResponse{
		Reply:     reply,
		SessionID: sessionID,
	}, time.Since(start)))
}
