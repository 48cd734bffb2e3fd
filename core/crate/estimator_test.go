package crate

import (
	"testing"

	"github.com/shopspring/decimal"

	"artquote/core/pricing"
	"artquote/core/types"
)

func artwork(h, w, d float64, fragility int) types.Artwork {
	return types.Artwork{
		ID:       "aw-1",
		HeightCm: h, WidthCm: w, DepthCm: d,
		Fragility:      fragility,
		InsuranceValue: decimal.NewFromInt(10000),
	}
}

func TestOversizeSelectsT2(t *testing.T) {
	cfg := pricing.Default()

	tests := []struct {
		name    string
		artwork types.Artwork
		want    types.CrateType
	}{
		{"single dimension over 150", artwork(160, 80, 10, 2), types.CrateT2},
		{"dimension sum over 300", artwork(140, 140, 30, 2), types.CrateT2},
		{"compact work", artwork(100, 80, 10, 2), types.CrateT1},
		{"boundary: dim exactly 150, sum exactly 300", artwork(150, 140, 10, 2), types.CrateT1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCrate(tt.artwork, cfg)
			if got.CrateType != tt.want {
				t.Errorf("crate type = %s, want %s", got.CrateType, tt.want)
			}
		})
	}
}

func TestT2UsesMuseumMarginAndTime(t *testing.T) {
	cfg := pricing.Default()

	// Same physical size, forced into T2 by one long dimension.
	t1 := EstimateCrate(artwork(149, 100, 10, 2), cfg)
	t2 := EstimateCrate(artwork(151, 100, 10, 2), cfg)

	if t1.CrateType != types.CrateT1 || t2.CrateType != types.CrateT2 {
		t.Fatalf("setup broken: %s / %s", t1.CrateType, t2.CrateType)
	}
	if !t2.FabricationCost.GreaterThan(t1.FabricationCost) {
		t.Errorf("T2 fabrication %s should exceed T1 %s (museum time coefficient)",
			t2.FabricationCost, t1.FabricationCost)
	}
	if !t2.CrateCost.GreaterThan(t1.CrateCost) {
		t.Errorf("T2 crate cost %s should exceed T1 %s", t2.CrateCost, t1.CrateCost)
	}
	if t2.PackingWorkers != 3 {
		t.Errorf("T2 packing workers = %d, want 3", t2.PackingWorkers)
	}
}

func TestFragileWorksGetThickerFoam(t *testing.T) {
	cfg := pricing.Default()

	standard := EstimateCrate(artwork(100, 80, 10, 2), cfg)
	fragile := EstimateCrate(artwork(100, 80, 10, 5), cfg)

	if !fragile.MaterialCost.GreaterThan(standard.MaterialCost) {
		t.Errorf("fragile material cost %s should exceed standard %s",
			fragile.MaterialCost, standard.MaterialCost)
	}
	if fragile.PackingCost.LessThanOrEqual(standard.PackingCost) {
		t.Errorf("fragile packing cost %s should exceed standard %s",
			fragile.PackingCost, standard.PackingCost)
	}
}

func TestMissingDimensionsWarnsAndStillQuotes(t *testing.T) {
	cfg := pricing.Default()

	got := EstimateCrate(artwork(0, 0, 0, 2), cfg)
	if len(got.Warnings) == 0 {
		t.Fatal("expected a warning for missing dimensions")
	}
	if got.CrateType != types.CrateT1 {
		t.Errorf("crate type = %s, want T1 for zero dimensions", got.CrateType)
	}
	// Hardware allowance and labor still produce a positive quote.
	if !got.CrateCost.IsPositive() {
		t.Errorf("crate cost = %s, want positive best-effort quote", got.CrateCost)
	}
}

func TestMissingFragilityDefaultsToThree(t *testing.T) {
	cfg := pricing.Default()

	unrated := EstimateCrate(artwork(100, 80, 10, 0), cfg)
	rated := EstimateCrate(artwork(100, 80, 10, 3), cfg)

	if !unrated.CrateCost.Equal(rated.CrateCost) {
		t.Errorf("unrated cost %s should equal fragility-3 cost %s",
			unrated.CrateCost, rated.CrateCost)
	}

	found := false
	for _, w := range unrated.Warnings {
		if w == "missing fragility rating, assuming 3/5" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected fragility warning, got %v", unrated.Warnings)
	}
}

func TestSizeBucketsDriveFabricationHours(t *testing.T) {
	cfg := pricing.Default()

	small := EstimateCrate(artwork(50, 50, 50, 2), cfg) // 0.125 m³
	wantSmall := cfg.BaseHoursSmall + onSiteHoursStandard
	if small.PackingHours != wantSmall {
		t.Errorf("small packing hours = %v, want %v", small.PackingHours, wantSmall)
	}

	large := EstimateCrate(artwork(145, 145, 145, 2), cfg) // 3.05 m³, T2 by sum
	wantLarge := cfg.BaseHoursLarge*cfg.MuseumTimeCoeff + onSiteHoursStandard + onSiteHoursOversize
	if large.PackingHours != wantLarge {
		t.Errorf("large packing hours = %v, want %v", large.PackingHours, wantLarge)
	}
}

func TestEstimateIsIdempotent(t *testing.T) {
	cfg := pricing.Default()
	a := EstimateCrate(artwork(120, 90, 15, 4), cfg)
	b := EstimateCrate(artwork(120, 90, 15, 4), cfg)

	if !a.CrateCost.Equal(b.CrateCost) || !a.PackingCost.Equal(b.PackingCost) ||
		a.PackingHours != b.PackingHours || a.CrateType != b.CrateType {
		t.Errorf("estimates differ across identical calls: %+v vs %+v", a, b)
	}
}
