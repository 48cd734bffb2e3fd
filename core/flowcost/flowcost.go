// Package flowcost composes crate, packing and transport costs into one
// shipment-leg total with a stable human-readable breakdown.
package flowcost

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"artquote/core/crate"
	"artquote/core/pricing"
	"artquote/core/transport"
	"artquote/core/types"
)

// FlowCost is the costed total for one flow
type FlowCost struct {
	// CrateCosts is the sum of sellable crate prices
	CrateCosts decimal.Decimal `json:"crate_costs"`

	// PackingCosts is the on-site packing labor subtotal
	PackingCosts decimal.Decimal `json:"packing_costs"`

	// Transport is the vehicle cost detail
	Transport transport.Cost `json:"transport"`

	// TotalCost sums crates, packing and transport
	TotalCost decimal.Decimal `json:"total_cost"`

	// Estimates carries the per-artwork crate estimates in input order
	Estimates []crate.Estimate `json:"estimates"`

	// Breakdown is the stable multi-line text contract rendered
	// verbatim by consumers; see Render for the format
	Breakdown string `json:"breakdown"`
}

// Calculate costs one flow: every artwork's crate and packing, plus the
// transport of the whole set over the given distance.
func Calculate(artworks []types.Artwork, distanceKm int, cfg pricing.Config) FlowCost {
	crateCosts := decimal.Zero
	packingCosts := decimal.Zero
	estimates := make([]crate.Estimate, 0, len(artworks))

	for _, a := range artworks {
		est := crate.EstimateCrate(a, cfg)
		estimates = append(estimates, est)
		crateCosts = crateCosts.Add(est.CrateCost)
		packingCosts = packingCosts.Add(est.PackingCost)
	}

	tc := transport.Calculate(artworks, distanceKm, cfg)
	total := crateCosts.Add(packingCosts).Add(tc.TotalCost)

	fc := FlowCost{
		CrateCosts:   crateCosts,
		PackingCosts: packingCosts,
		Transport:    tc,
		TotalCost:    total,
		Estimates:    estimates,
	}
	fc.Breakdown = fc.Render(len(artworks), cfg.Currency)
	return fc
}

// Render produces the breakdown text. The format is a display contract:
// one line per cost category, amount last with two decimals, total on the
// final line. Consumers render it verbatim.
func (f FlowCost) Render(artworkCount int, currency types.Currency) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Crates (%d artworks): %s %s\n", artworkCount, f.CrateCosts.StringFixed(2), currency)
	fmt.Fprintf(&b, "Packing labor: %s %s\n", f.PackingCosts.StringFixed(2), currency)
	fmt.Fprintf(&b, "Transport (%s, %.1f m3): %s %s\n",
		f.Transport.VehicleType, f.Transport.TotalVolumeM3, f.Transport.TotalCost.StringFixed(2), currency)
	fmt.Fprintf(&b, "Total: %s %s", f.TotalCost.StringFixed(2), currency)

	return b.String()
}
