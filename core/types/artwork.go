// Package types - Artwork model
package types

import "github.com/shopspring/decimal"

// Artwork is one physical work to be crated and shipped.
// Dimensions are centimeters. The engine never mutates an Artwork it
// receives; estimator results are returned, not written back.
type Artwork struct {
	// ID identifies the artwork in the owning project
	ID string `json:"id"`

	// Title is a display label
	Title string `json:"title,omitempty"`

	// HeightCm, WidthCm, DepthCm are the bare physical dimensions
	HeightCm float64 `json:"height_cm"`
	WidthCm  float64 `json:"width_cm"`
	DepthCm  float64 `json:"depth_cm"`

	// Fragility is a 1-5 risk rating; 0 means unknown
	Fragility int `json:"fragility"`

	// InsuranceValue is the declared insured value
	InsuranceValue decimal.Decimal `json:"insurance_value"`

	// FlowID assigns the artwork to a transport leg
	FlowID string `json:"flow_id,omitempty"`

	// RecommendedCrate is filled by the crate estimator
	RecommendedCrate string `json:"recommended_crate,omitempty"`

	// CrateEstimatedCost is filled by the crate estimator
	CrateEstimatedCost decimal.Decimal `json:"crate_estimated_cost"`
}

const (
	// OversizeSingleDimCm triggers the museum-grade crate on any one dimension
	OversizeSingleDimCm = 150.0

	// OversizeDimSumCm triggers the museum-grade crate on the dimension sum
	OversizeDimSumCm = 300.0

	// DefaultFragility substitutes a missing fragility rating
	DefaultFragility = 3
)

// VolumeM3 returns the footprint volume in cubic meters
func (a Artwork) VolumeM3() float64 {
	return a.HeightCm * a.WidthCm * a.DepthCm / 1e6
}

// IsOversized reports whether the artwork needs a custom museum-grade crate.
// Oversize is derived, never stored.
func (a Artwork) IsOversized() bool {
	if a.HeightCm > OversizeSingleDimCm || a.WidthCm > OversizeSingleDimCm || a.DepthCm > OversizeSingleDimCm {
		return true
	}
	return a.HeightCm+a.WidthCm+a.DepthCm > OversizeDimSumCm
}

// EffectiveFragility returns the fragility rating, defaulting to 3 when absent
func (a Artwork) EffectiveFragility() int {
	if a.Fragility < 1 || a.Fragility > 5 {
		return DefaultFragility
	}
	return a.Fragility
}

// HasDimensions reports whether all three dimensions are present
func (a Artwork) HasDimensions() bool {
	return a.HeightCm > 0 && a.WidthCm > 0 && a.DepthCm > 0
}
