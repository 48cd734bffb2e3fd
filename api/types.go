// Package api - API types for quotation
// These types define the contract for the quotation endpoints.
// The API is stateless: every response is computed from the request body
// and the pricing tables loaded at startup.
package api

import (
	"time"

	"artquote/core/engine"
	"artquote/core/route"
	"artquote/core/team"
	"artquote/core/types"
)

// QuoteRequest is the input to POST /quote
type QuoteRequest struct {
	// Artworks to pack and move
	Artworks []types.Artwork `json:"artworks"`

	// Flows are the transport legs to quote
	Flows []types.LogisticsFlow `json:"flows"`

	// Steps optionally describe the staffing mission
	Steps []types.LogisticsStep `json:"steps,omitempty"`

	// Roles is the staffing catalog
	Roles types.RoleCatalog `json:"roles,omitempty"`

	// ExtraLines are externally sourced quote lines (agent offers)
	ExtraLines []types.QuoteLine `json:"extra_lines,omitempty"`

	// GlobalMarginPct overrides the configured margin when non-nil
	GlobalMarginPct *float64 `json:"global_margin_pct,omitempty"`

	// MarginOverrides maps flow IDs to per-flow margins
	MarginOverrides map[string]float64 `json:"margin_overrides,omitempty"`
}

// QuoteResponse wraps the engine result with request tracking
type QuoteResponse struct {
	RequestID string              `json:"request_id"`
	Timestamp time.Time           `json:"timestamp"`
	Status    string              `json:"status"`
	Message   string              `json:"message,omitempty"`
	Quote     *engine.QuoteResult `json:"quote,omitempty"`
	Errors    []ErrorDetail       `json:"errors,omitempty"`
}

// RecommendRequest is the input to POST /recommend
type RecommendRequest struct {
	Artworks []types.Artwork     `json:"artworks"`
	Flow     types.LogisticsFlow `json:"flow"`
	Roles    types.RoleCatalog   `json:"roles"`
}

// RecommendResponse wraps a team recommendation
type RecommendResponse struct {
	RequestID      string              `json:"request_id"`
	Timestamp      time.Time           `json:"timestamp"`
	Status         string              `json:"status"`
	Message        string              `json:"message,omitempty"`
	Recommendation *team.Recommendation `json:"recommendation,omitempty"`
	Errors         []ErrorDetail       `json:"errors,omitempty"`
}

// RouteRequest is the input to POST /route
type RouteRequest struct {
	Flow types.LogisticsFlow `json:"flow"`
}

// RouteResponse wraps a resolved or estimated route
type RouteResponse struct {
	RequestID string        `json:"request_id"`
	Timestamp time.Time     `json:"timestamp"`
	Status    string        `json:"status"`
	Message   string        `json:"message,omitempty"`
	Route     *route.Result `json:"route,omitempty"`
	Errors    []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail carries one API error
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
