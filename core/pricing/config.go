// Package pricing defines the versioned pricing table consumed by every
// calculator. The table is an immutable value: calculators read it and
// never write it, so one table can serve concurrent quotations.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"artquote/core/types"
)

// Config is the pricing table for one tenant/session.
// Monetary fields are in the table currency; thicknesses are millimeters.
type Config struct {
	// Version identifies the table revision
	Version string `json:"version"`

	// Currency is the table currency
	Currency types.Currency `json:"currency"`

	// Material unit prices
	WoodPerM2         decimal.Decimal `json:"wood_per_m2"`          // €/m² plywood
	FoamPerM3         decimal.Decimal `json:"foam_per_m3"`          // €/m³ lining foam
	PlastazotePerM2   decimal.Decimal `json:"plastazote_per_m2"`    // €/m² at 50 mm
	EthafoamPerM2     decimal.Decimal `json:"ethafoam_per_m2"`      // €/m² at 50 mm
	TravelFramePerM   decimal.Decimal `json:"travel_frame_per_m"`   // €/m linear
	HardwareAllowance decimal.Decimal `json:"hardware_allowance"`   // € fixed per crate

	// Labor rates
	WorkshopHourlyRate    decimal.Decimal `json:"workshop_hourly_rate"`     // €/h
	FieldPackerHourlyRate decimal.Decimal `json:"field_packer_hourly_rate"` // €/h

	// Coefficients
	OverheadCoeff       decimal.Decimal `json:"overhead_coeff"`
	StandardMarginCoeff decimal.Decimal `json:"standard_margin_coeff"`
	MuseumMarginCoeff   decimal.Decimal `json:"museum_margin_coeff"`

	// Thickness constants (mm)
	FoamStandardMm float64 `json:"foam_standard_mm"`
	FoamFragileMm  float64 `json:"foam_fragile_mm"`
	WallT1Mm       float64 `json:"wall_t1_mm"`
	WallT2Mm       float64 `json:"wall_t2_mm"`
	TravelFrameMm  float64 `json:"travel_frame_mm"`
	PalletBaseMm   float64 `json:"pallet_base_mm"`

	// Base fabrication hours by size bucket
	BaseHoursSmall  float64 `json:"base_hours_small"`  // < 1 m³
	BaseHoursMedium float64 `json:"base_hours_medium"` // 1-3 m³
	BaseHoursLarge  float64 `json:"base_hours_large"`  // > 3 m³

	// MuseumTimeCoeff multiplies fabrication hours for T2 crates
	MuseumTimeCoeff float64 `json:"museum_time_coeff"`

	// Transport flat fees
	Truck20M3DayRate decimal.Decimal `json:"truck_20m3_day_rate"` // €/day
	HGVDayRate       decimal.Decimal `json:"hgv_day_rate"`        // €/day
	HGVPerKm         decimal.Decimal `json:"hgv_per_km"`          // €/km
}

// Default returns the reference pricing table
func Default() Config {
	return Config{
		Version:  "2026.1",
		Currency: types.CurrencyEUR,

		WoodPerM2:         dec(18),
		FoamPerM3:         dec(120),
		PlastazotePerM2:   dec(14),
		EthafoamPerM2:     dec(9),
		TravelFramePerM:   dec(22),
		HardwareAllowance: dec(35),

		WorkshopHourlyRate:    dec(48),
		FieldPackerHourlyRate: dec(42),

		OverheadCoeff:       decimal.NewFromFloat(1.15),
		StandardMarginCoeff: decimal.NewFromFloat(1.30),
		MuseumMarginCoeff:   decimal.NewFromFloat(1.45),

		FoamStandardMm: 50,
		FoamFragileMm:  100,
		WallT1Mm:       15,
		WallT2Mm:       22,
		TravelFrameMm:  60,
		PalletBaseMm:   120,

		BaseHoursSmall:  3,
		BaseHoursMedium: 5,
		BaseHoursLarge:  8,
		MuseumTimeCoeff: 1.5,

		Truck20M3DayRate: dec(650),
		HGVDayRate:       dec(980),
		HGVPerKm:         decimal.NewFromFloat(1.35),
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Validate reports non-negativity violations. The engine trusts the table
// and keeps calculating; the warnings are for the configuration owner.
func (c Config) Validate() []string {
	var warnings []string

	monetary := map[string]decimal.Decimal{
		"wood_per_m2":              c.WoodPerM2,
		"foam_per_m3":              c.FoamPerM3,
		"plastazote_per_m2":        c.PlastazotePerM2,
		"ethafoam_per_m2":          c.EthafoamPerM2,
		"travel_frame_per_m":       c.TravelFramePerM,
		"hardware_allowance":       c.HardwareAllowance,
		"workshop_hourly_rate":     c.WorkshopHourlyRate,
		"field_packer_hourly_rate": c.FieldPackerHourlyRate,
		"overhead_coeff":           c.OverheadCoeff,
		"standard_margin_coeff":    c.StandardMarginCoeff,
		"museum_margin_coeff":      c.MuseumMarginCoeff,
		"truck_20m3_day_rate":      c.Truck20M3DayRate,
		"hgv_day_rate":             c.HGVDayRate,
		"hgv_per_km":               c.HGVPerKm,
	}
	for name, v := range monetary {
		if v.IsNegative() {
			warnings = append(warnings, fmt.Sprintf("%s is negative: %s", name, v))
		}
	}

	scalar := map[string]float64{
		"foam_standard_mm":  c.FoamStandardMm,
		"foam_fragile_mm":   c.FoamFragileMm,
		"wall_t1_mm":        c.WallT1Mm,
		"wall_t2_mm":        c.WallT2Mm,
		"travel_frame_mm":   c.TravelFrameMm,
		"pallet_base_mm":    c.PalletBaseMm,
		"base_hours_small":  c.BaseHoursSmall,
		"base_hours_medium": c.BaseHoursMedium,
		"base_hours_large":  c.BaseHoursLarge,
		"museum_time_coeff": c.MuseumTimeCoeff,
	}
	for name, v := range scalar {
		if v < 0 {
			warnings = append(warnings, fmt.Sprintf("%s is negative: %v", name, v))
		}
	}

	return warnings
}

// MarginCoeff returns the margin coefficient for a crate type
func (c Config) MarginCoeff(crateType types.CrateType) decimal.Decimal {
	if crateType == types.CrateT2 {
		return c.MuseumMarginCoeff
	}
	return c.StandardMarginCoeff
}

// WallThicknessMm returns the crate wall thickness for a crate type
func (c Config) WallThicknessMm(crateType types.CrateType) float64 {
	if crateType == types.CrateT2 {
		return c.WallT2Mm
	}
	return c.WallT1Mm
}
