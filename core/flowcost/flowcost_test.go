package flowcost

import (
	"fmt"
	"strings"
	"testing"

	"artquote/core/crate"
	"artquote/core/pricing"
	"artquote/core/transport"
	"artquote/core/types"
)

func work(h, w, d float64, fragility int) types.Artwork {
	return types.Artwork{HeightCm: h, WidthCm: w, DepthCm: d, Fragility: fragility}
}

func TestTotalsAddUp(t *testing.T) {
	cfg := pricing.Default()
	works := []types.Artwork{
		work(100, 80, 10, 2),
		work(160, 120, 20, 4),
	}

	fc := Calculate(works, 800, cfg)

	want := fc.CrateCosts.Add(fc.PackingCosts).Add(fc.Transport.TotalCost)
	if !fc.TotalCost.Equal(want) {
		t.Errorf("total = %s, want %s", fc.TotalCost, want)
	}
	if len(fc.Estimates) != 2 {
		t.Fatalf("estimate count = %d", len(fc.Estimates))
	}

	// Crate and packing subtotals match the per-artwork estimates.
	sumCrates := fc.Estimates[0].CrateCost.Add(fc.Estimates[1].CrateCost)
	if !fc.CrateCosts.Equal(sumCrates) {
		t.Errorf("crate subtotal = %s, want %s", fc.CrateCosts, sumCrates)
	}
}

func TestBreakdownFormatIsStable(t *testing.T) {
	cfg := pricing.Default()
	works := []types.Artwork{work(100, 80, 10, 2)}

	fc := Calculate(works, 300, cfg)

	want := fmt.Sprintf(
		"Crates (1 artworks): %s EUR\nPacking labor: %s EUR\nTransport (CAMION_20M3, %.1f m3): %s EUR\nTotal: %s EUR",
		fc.CrateCosts.StringFixed(2),
		fc.PackingCosts.StringFixed(2),
		fc.Transport.TotalVolumeM3,
		fc.Transport.TotalCost.StringFixed(2),
		fc.TotalCost.StringFixed(2),
	)
	if fc.Breakdown != want {
		t.Errorf("breakdown changed:\n got: %q\nwant: %q", fc.Breakdown, want)
	}

	if lines := strings.Split(fc.Breakdown, "\n"); len(lines) != 4 {
		t.Errorf("breakdown has %d lines, want 4", len(lines))
	}
}

func TestEmptyFlowIsZeroValued(t *testing.T) {
	fc := Calculate(nil, 500, pricing.Default())
	if !fc.TotalCost.IsZero() {
		t.Errorf("empty flow total = %s, want 0", fc.TotalCost)
	}
	if !strings.Contains(fc.Breakdown, "Total: 0.00 EUR") {
		t.Errorf("breakdown = %q", fc.Breakdown)
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	cfg := pricing.Default()
	works := []types.Artwork{work(120, 90, 15, 4), work(60, 40, 5, 0)}

	a := Calculate(works, 1200, cfg)
	b := Calculate(works, 1200, cfg)

	if a.Breakdown != b.Breakdown || !a.TotalCost.Equal(b.TotalCost) {
		t.Error("identical inputs must produce identical flow costs")
	}
}

func TestPackingTrackedSeparatelyFromCrates(t *testing.T) {
	cfg := pricing.Default()
	est := crate.EstimateCrate(work(100, 80, 10, 2), cfg)
	fc := Calculate([]types.Artwork{work(100, 80, 10, 2)}, 100, cfg)

	if !fc.PackingCosts.Equal(est.PackingCost) {
		t.Errorf("packing subtotal = %s, want %s", fc.PackingCosts, est.PackingCost)
	}
	if fc.Transport.VehicleType != types.VehicleTruck20M3 {
		t.Errorf("vehicle = %s", fc.Transport.VehicleType)
	}
	if fc.Transport.TotalVolumeM3 >= transport.Truck20M3CapacityM3 {
		t.Errorf("volume = %v", fc.Transport.TotalVolumeM3)
	}
}
