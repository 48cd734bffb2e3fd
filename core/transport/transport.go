// Package transport aggregates shipment volume, selects a vehicle class
// and computes the transport cost for one flow.
package transport

import (
	"math"

	"github.com/shopspring/decimal"

	"artquote/core/pricing"
	"artquote/core/types"
)

// PackingInflationFactor inflates bare artwork volume to crated volume.
// Crates add walls, foam and clearance around each work.
const PackingInflationFactor = 1.4

// Truck20M3CapacityM3 is the volume cutoff between the flat-rate box
// truck and the heavy-goods vehicle.
const Truck20M3CapacityM3 = 20.0

// Cost is the transport cost for one flow
type Cost struct {
	// TotalVolumeM3 is the crated shipment volume
	TotalVolumeM3 float64 `json:"total_volume_m3"`

	// VehicleType is the selected vehicle class
	VehicleType types.VehicleType `json:"vehicle_type"`

	// BaseCost is the vehicle day rate
	BaseCost decimal.Decimal `json:"base_cost"`

	// DistanceCost is the per-km surcharge; zero for the flat-rate class
	DistanceCost decimal.Decimal `json:"distance_cost"`

	// TotalCost is base plus distance
	TotalCost decimal.Decimal `json:"total_cost"`
}

// Calculate costs the transport of a set of artworks over a distance.
// An empty artwork set yields a zero-valued cost, not an error.
func Calculate(artworks []types.Artwork, distanceKm int, cfg pricing.Config) Cost {
	if len(artworks) == 0 {
		return Cost{VehicleType: types.VehicleTruck20M3}
	}

	var bareVolume float64
	for _, a := range artworks {
		bareVolume += a.VolumeM3()
	}
	totalVolume := round3(bareVolume * PackingInflationFactor)

	if totalVolume <= Truck20M3CapacityM3 {
		base := cfg.Truck20M3DayRate
		return Cost{
			TotalVolumeM3: totalVolume,
			VehicleType:   types.VehicleTruck20M3,
			BaseCost:      base,
			DistanceCost:  decimal.Zero,
			TotalCost:     base,
		}
	}

	base := cfg.HGVDayRate
	distanceCost := cfg.HGVPerKm.Mul(decimal.NewFromInt(int64(distanceKm))).Round(2)
	return Cost{
		TotalVolumeM3: totalVolume,
		VehicleType:   types.VehicleSemiTrailer,
		BaseCost:      base,
		DistanceCost:  distanceCost,
		TotalCost:     base.Add(distanceCost),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
