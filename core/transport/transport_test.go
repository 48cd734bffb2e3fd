package transport

import (
	"testing"

	"github.com/shopspring/decimal"

	"artquote/core/pricing"
	"artquote/core/types"
)

func box(h, w, d float64) types.Artwork {
	return types.Artwork{HeightCm: h, WidthCm: w, DepthCm: d, Fragility: 2}
}

func TestSmallShipmentUsesFlatRateTruck(t *testing.T) {
	cfg := pricing.Default()

	// 2 m³ bare, 2.8 m³ crated: well under the 20 m³ cutoff.
	cost := Calculate([]types.Artwork{box(100, 100, 200)}, 800, cfg)

	if cost.VehicleType != types.VehicleTruck20M3 {
		t.Fatalf("vehicle = %s, want %s", cost.VehicleType, types.VehicleTruck20M3)
	}
	if !cost.DistanceCost.IsZero() {
		t.Errorf("distance cost = %s, want 0 for the flat-rate class", cost.DistanceCost)
	}
	if !cost.TotalCost.Equal(cfg.Truck20M3DayRate) {
		t.Errorf("total = %s, want day rate %s", cost.TotalCost, cfg.Truck20M3DayRate)
	}
	if cost.TotalVolumeM3 != 2.8 {
		t.Errorf("volume = %v, want 2.8 (bare 2.0 x 1.4 inflation)", cost.TotalVolumeM3)
	}
}

func TestLargeShipmentEscalatesToHGV(t *testing.T) {
	cfg := pricing.Default()

	// 16 m³ bare, 22.4 m³ crated: over the cutoff.
	works := []types.Artwork{
		box(200, 200, 200), // 8 m³
		box(200, 200, 200),
	}
	cost := Calculate(works, 1000, cfg)

	if cost.VehicleType != types.VehicleSemiTrailer {
		t.Fatalf("vehicle = %s, want %s", cost.VehicleType, types.VehicleSemiTrailer)
	}

	wantDistance := cfg.HGVPerKm.Mul(decimal.NewFromInt(1000)).Round(2)
	if !cost.DistanceCost.Equal(wantDistance) {
		t.Errorf("distance cost = %s, want %s", cost.DistanceCost, wantDistance)
	}
	if !cost.TotalCost.Equal(cfg.HGVDayRate.Add(wantDistance)) {
		t.Errorf("total = %s, want base %s + distance %s", cost.TotalCost, cfg.HGVDayRate, wantDistance)
	}
}

func TestEmptyShipmentYieldsZeroes(t *testing.T) {
	cost := Calculate(nil, 500, pricing.Default())
	if !cost.TotalCost.IsZero() || !cost.BaseCost.IsZero() || cost.TotalVolumeM3 != 0 {
		t.Errorf("empty shipment must cost zero, got %+v", cost)
	}
}

func TestBaseAndDistanceExposedSeparately(t *testing.T) {
	cfg := pricing.Default()
	works := []types.Artwork{box(300, 300, 200)} // 18 m³ bare, 25.2 crated

	cost := Calculate(works, 250, cfg)
	if cost.VehicleType != types.VehicleSemiTrailer {
		t.Fatalf("vehicle = %s", cost.VehicleType)
	}
	if !cost.BaseCost.Add(cost.DistanceCost).Equal(cost.TotalCost) {
		t.Errorf("base %s + distance %s != total %s", cost.BaseCost, cost.DistanceCost, cost.TotalCost)
	}
}
