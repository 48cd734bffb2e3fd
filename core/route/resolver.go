// Package route resolves an origin/destination pair into a road distance
// and travel duration. The resolver makes exactly one attempt against the
// mapping provider and falls back to a deterministic estimator on any
// failure: quoting must never block on network reachability.
package route

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"artquote/internal/config"
	"artquote/internal/logging"
)

// Source distinguishes precise from estimated figures
type Source string

const (
	// SourceResolved means the mapping provider answered
	SourceResolved Source = "RESOLVED"

	// SourceEstimated means the deterministic fallback was used
	SourceEstimated Source = "ESTIMATED"
)

// Result is a resolved or estimated route
type Result struct {
	// DistanceKm is the road distance, rounded to whole kilometers
	DistanceKm int `json:"distance_km"`

	// DurationHours is the travel duration in hours
	DurationHours float64 `json:"duration_hours"`

	// OriginLabel and DestinationLabel are the resolved addresses
	// (echoes of the inputs on the fallback path)
	OriginLabel      string `json:"origin_label"`
	DestinationLabel string `json:"destination_label"`

	// Source tells consumers whether the figures are precise
	Source Source `json:"source"`

	// EstimateReason explains why the fallback was used
	EstimateReason string `json:"estimate_reason,omitempty"`
}

// Resolver queries a mapping provider with a bounded single attempt
type Resolver struct {
	client  *http.Client
	baseURL string
	apiKey  string
	log     *zap.Logger
}

// NewResolver builds a resolver from routing configuration. The provider
// key is read from the configured environment variable; an empty key is
// not an error, it just forces the estimator path.
func NewResolver(cfg config.RoutingConfig) *Resolver {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Resolver{
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
		apiKey:  os.Getenv(cfg.APIKeyEnv),
		log:     logging.Named("route"),
	}
}

// providerRequest is the mapping provider query shape
type providerRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// providerResponse is the expected provider success shape:
// distance in meters, duration in seconds, resolved labels.
type providerResponse struct {
	DistanceM        float64 `json:"distance_m"`
	DurationS        float64 `json:"duration_s"`
	OriginLabel      string  `json:"origin_label"`
	DestinationLabel string  `json:"destination_label"`
}

// Resolve returns a usable route for any input. Transient provider
// failures are logged at Warn and recovered via the estimator; the
// caller never sees an error.
func (r *Resolver) Resolve(ctx context.Context, origin, destination string) Result {
	if r.apiKey == "" {
		return r.fallback(origin, destination, "missing provider credentials")
	}

	result, err := r.query(ctx, origin, destination)
	if err != nil {
		return r.fallback(origin, destination, err.Error())
	}
	return result
}

func (r *Resolver) query(ctx context.Context, origin, destination string) (Result, error) {
	body, err := json.Marshal(providerRequest{Origin: origin, Destination: destination})
	if err != nil {
		return Result{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("provider status %d", resp.StatusCode)
	}

	var pr providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if pr.DistanceM <= 0 {
		return Result{}, fmt.Errorf("provider returned no distance")
	}

	originLabel := pr.OriginLabel
	if originLabel == "" {
		originLabel = origin
	}
	destinationLabel := pr.DestinationLabel
	if destinationLabel == "" {
		destinationLabel = destination
	}

	return Result{
		DistanceKm:       int(math.Round(pr.DistanceM / 1000)),
		DurationHours:    math.Round(pr.DurationS/3600*10) / 10,
		OriginLabel:      originLabel,
		DestinationLabel: destinationLabel,
		Source:           SourceResolved,
	}, nil
}

func (r *Resolver) fallback(origin, destination, reason string) Result {
	r.log.Warn("route estimated",
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.String("reason", reason),
	)

	result := Estimate(origin, destination)
	result.EstimateReason = reason
	return result
}
