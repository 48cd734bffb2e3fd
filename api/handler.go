// Package api - HTTP handler for quotation
// This handler wraps the engine - it contains NO quotation logic.
// All calculation is delegated to core packages.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"artquote/core/consolidate"
	"artquote/core/engine"
	apperrors "artquote/internal/errors"
)

var (
	errNoInput        = apperrors.Input("request must contain at least one artwork or flow")
	errFragilityRange = apperrors.Input("artwork fragility must be between 0 and 5")
)

// Handler handles quotation requests
type Handler struct {
	engine *engine.Engine

	// defaultMarginPct applies when a request carries no margin
	defaultMarginPct float64
}

// NewHandler creates a new handler around an engine
func NewHandler(eng *engine.Engine, defaultMarginPct float64) *Handler {
	return &Handler{
		engine:           eng,
		defaultMarginPct: defaultMarginPct,
	}
}

// HandleQuote handles POST /quote
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := generateRequestID()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeQuoteError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if err := validateQuoteRequest(&req); err != nil {
		h.writeQuoteError(w, requestID, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	result := h.engine.Quote(ctx, engine.QuoteRequest{
		Artworks:   req.Artworks,
		Flows:      req.Flows,
		Steps:      req.Steps,
		Roles:      req.Roles,
		ExtraLines: req.ExtraLines,
		Margins:    h.margins(&req),
	})

	resp := &QuoteResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Status:    "success",
		Quote:     &result,
	}
	if result.Estimated {
		resp.Status = "partial"
		resp.Message = "one or more routes were estimated, not resolved"
	}
	h.writeJSON(w, resp, http.StatusOK)
}

// HandleRecommend handles POST /recommend
func (h *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := generateRequestID()

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, &RecommendResponse{
			RequestID: requestID,
			Timestamp: time.Now().UTC(),
			Status:    "error",
			Message:   err.Error(),
			Errors:    []ErrorDetail{{Code: "INVALID_JSON", Message: err.Error()}},
		}, http.StatusBadRequest)
		return
	}

	rec := h.engine.Recommend(ctx, req.Artworks, req.Flow, req.Roles)
	h.writeJSON(w, &RecommendResponse{
		RequestID:      requestID,
		Timestamp:      time.Now().UTC(),
		Status:         "success",
		Recommendation: &rec,
	}, http.StatusOK)
}

// HandleRoute handles POST /route
func (h *Handler) HandleRoute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := generateRequestID()

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, &RouteResponse{
			RequestID: requestID,
			Timestamp: time.Now().UTC(),
			Status:    "error",
			Message:   err.Error(),
			Errors:    []ErrorDetail{{Code: "INVALID_JSON", Message: err.Error()}},
		}, http.StatusBadRequest)
		return
	}

	result := h.engine.Route(ctx, req.Flow)
	h.writeJSON(w, &RouteResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Status:    "success",
		Route:     &result,
	}, http.StatusOK)
}

// margins builds the commercial settings for one request
func (h *Handler) margins(req *QuoteRequest) consolidate.MarginSettings {
	pct := h.defaultMarginPct
	if req.GlobalMarginPct != nil {
		pct = *req.GlobalMarginPct
	}
	m := consolidate.MarginSettings{GlobalPct: decimal.NewFromFloat(pct)}
	for flowID, override := range req.MarginOverrides {
		if m.Overrides == nil {
			m.Overrides = make(map[string]decimal.Decimal, len(req.MarginOverrides))
		}
		m.Overrides[flowID] = decimal.NewFromFloat(override)
	}
	return m
}

func validateQuoteRequest(req *QuoteRequest) error {
	if len(req.Flows) == 0 && len(req.Artworks) == 0 {
		return errNoInput
	}
	for i := range req.Artworks {
		if req.Artworks[i].Fragility < 0 || req.Artworks[i].Fragility > 5 {
			return errFragilityRange
		}
	}
	return nil
}

func (h *Handler) writeQuoteError(w http.ResponseWriter, requestID, code, message string, status int) {
	h.writeJSON(w, &QuoteResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Status:    "error",
		Message:   message,
		Errors:    []ErrorDetail{{Code: code, Message: message}},
	}, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func generateRequestID() string {
	return "req-" + uuid.NewString()
}
