// Package crate estimates crating and packing costs for a single artwork.
// Inputs degrade to documented defaults instead of failing: a quote is
// always produced, flagged with warnings when data was missing.
package crate

import (
	"github.com/shopspring/decimal"

	"artquote/core/pricing"
	"artquote/core/types"
)

// Size buckets by footprint volume (m³)
const (
	smallBucketMaxM3  = 1.0
	mediumBucketMaxM3 = 3.0
)

// On-site packing time constants (hours)
const (
	onSiteHoursStandard = 1.5
	onSiteHoursFragile  = 2.5
	onSiteHoursOversize = 1.0 // added on top for oversized works
)

// Estimate is the costed crating plan for one artwork
type Estimate struct {
	// CrateType is T1 (gallery) or T2 (museum)
	CrateType types.CrateType `json:"crate_type"`

	// CrateCost is the sellable crate price: materials + fabrication
	// labor, with overhead and margin applied
	CrateCost decimal.Decimal `json:"crate_cost"`

	// MaterialCost and FabricationCost are the raw components,
	// exposed for quote transparency
	MaterialCost    decimal.Decimal `json:"material_cost"`
	FabricationCost decimal.Decimal `json:"fabrication_cost"`

	// PackingCost is the on-site packing labor at the venue,
	// tracked separately from the crate itself
	PackingCost decimal.Decimal `json:"packing_cost"`

	// PackingHours covers fabrication plus on-site time
	PackingHours float64 `json:"packing_hours"`

	// PackingWorkers is the crew size for on-site handling
	PackingWorkers int `json:"packing_workers"`

	// Warnings flags degraded inputs (missing dimensions, fragility)
	Warnings []string `json:"warnings,omitempty"`
}

// EstimateCrate computes the crating plan for one artwork against a
// pricing table. Pure function: identical inputs yield identical output.
func EstimateCrate(artwork types.Artwork, cfg pricing.Config) Estimate {
	var warnings []string

	if !artwork.HasDimensions() {
		warnings = append(warnings, "missing or zero dimensions, assuming small size bucket")
	}
	if artwork.Fragility < 1 || artwork.Fragility > 5 {
		warnings = append(warnings, "missing fragility rating, assuming 3/5")
	}
	fragility := artwork.EffectiveFragility()

	crateType := types.CrateT1
	if artwork.IsOversized() {
		crateType = types.CrateT2
	}

	// Dimensions in meters.
	h := artwork.HeightCm / 100
	w := artwork.WidthCm / 100
	d := artwork.DepthCm / 100

	foamMm := cfg.FoamStandardMm
	if fragility >= 4 {
		foamMm = cfg.FoamFragileMm
	}
	foamM := foamMm / 1000
	wallM := cfg.WallThicknessMm(crateType) / 1000

	// Outer crate box: artwork + foam lining + walls on every side.
	// Museum crates sit on a pallet base.
	oh := h + 2*(foamM+wallM)
	ow := w + 2*(foamM+wallM)
	od := d + 2*(foamM+wallM)
	if crateType == types.CrateT2 {
		oh += cfg.PalletBaseMm / 1000
	}

	crateSurfaceM2 := 2 * (oh*ow + oh*od + ow*od)
	woodCost := decimal.NewFromFloat(crateSurfaceM2).Mul(cfg.WoodPerM2)

	// Foam lining volume: artwork surface covered at the selected thickness.
	artSurfaceM2 := 2 * (h*w + h*d + w*d)
	foamVolumeM3 := artSurfaceM2 * foamM
	foamCost := decimal.NewFromFloat(foamVolumeM3).Mul(cfg.FoamPerM3)

	materialCost := woodCost.Add(foamCost).Add(cfg.HardwareAllowance)

	// Museum crates carry a travel frame around the largest face.
	if crateType == types.CrateT2 {
		frameLinearM := 2 * (h + w)
		materialCost = materialCost.Add(decimal.NewFromFloat(frameLinearM).Mul(cfg.TravelFramePerM))
	}

	fabricationHours := fabricationHoursFor(artwork.VolumeM3(), crateType, cfg)
	fabricationCost := decimal.NewFromFloat(fabricationHours).Mul(cfg.WorkshopHourlyRate)

	onSiteHours := onSiteHoursStandard
	if fragility >= 4 {
		onSiteHours = onSiteHoursFragile
	}
	workers := 2
	if crateType == types.CrateT2 {
		onSiteHours += onSiteHoursOversize
		workers = 3
	}
	packingCost := decimal.NewFromFloat(onSiteHours).Mul(cfg.FieldPackerHourlyRate)

	raw := materialCost.Add(fabricationCost)
	sellable := raw.Mul(cfg.OverheadCoeff).Mul(cfg.MarginCoeff(crateType))

	return Estimate{
		CrateType:       crateType,
		CrateCost:       sellable.Round(2),
		MaterialCost:    materialCost.Round(2),
		FabricationCost: fabricationCost.Round(2),
		PackingCost:     packingCost.Round(2),
		PackingHours:    fabricationHours + onSiteHours,
		PackingWorkers:  workers,
		Warnings:        warnings,
	}
}

// fabricationHoursFor returns base workshop hours for the size bucket,
// scaled by the museum time coefficient for T2 crates
func fabricationHoursFor(volumeM3 float64, crateType types.CrateType, cfg pricing.Config) float64 {
	var hours float64
	switch {
	case volumeM3 <= smallBucketMaxM3:
		hours = cfg.BaseHoursSmall
	case volumeM3 <= mediumBucketMaxM3:
		hours = cfg.BaseHoursMedium
	default:
		hours = cfg.BaseHoursLarge
	}

	if crateType == types.CrateT2 {
		hours *= cfg.MuseumTimeCoeff
	}
	return hours
}
