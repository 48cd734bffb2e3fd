// Package pricing - HCL table template generation
package pricing

import (
	"fmt"
	"strings"
)

// TemplateHCL renders the table as an HCL document, suitable as a starting
// point for a tenant-specific pricing file.
func (c Config) TemplateHCL() string {
	var b strings.Builder

	fmt.Fprintf(&b, "pricing {\n")
	fmt.Fprintf(&b, "  version  = %q\n", c.Version)
	fmt.Fprintf(&b, "  currency = %q\n\n", c.Currency)

	fmt.Fprintf(&b, "  materials {\n")
	fmt.Fprintf(&b, "    wood_per_m2        = %s # €/m² plywood\n", c.WoodPerM2)
	fmt.Fprintf(&b, "    foam_per_m3        = %s # €/m³ lining foam\n", c.FoamPerM3)
	fmt.Fprintf(&b, "    plastazote_per_m2  = %s # €/m² at 50 mm\n", c.PlastazotePerM2)
	fmt.Fprintf(&b, "    ethafoam_per_m2    = %s # €/m² at 50 mm\n", c.EthafoamPerM2)
	fmt.Fprintf(&b, "    travel_frame_per_m = %s # €/m linear\n", c.TravelFramePerM)
	fmt.Fprintf(&b, "    hardware_allowance = %s # € per crate\n", c.HardwareAllowance)
	fmt.Fprintf(&b, "  }\n\n")

	fmt.Fprintf(&b, "  labor {\n")
	fmt.Fprintf(&b, "    workshop_hourly_rate     = %s # €/h\n", c.WorkshopHourlyRate)
	fmt.Fprintf(&b, "    field_packer_hourly_rate = %s # €/h\n", c.FieldPackerHourlyRate)
	fmt.Fprintf(&b, "  }\n\n")

	fmt.Fprintf(&b, "  coefficients {\n")
	fmt.Fprintf(&b, "    overhead        = %s\n", c.OverheadCoeff)
	fmt.Fprintf(&b, "    standard_margin = %s\n", c.StandardMarginCoeff)
	fmt.Fprintf(&b, "    museum_margin   = %s\n", c.MuseumMarginCoeff)
	fmt.Fprintf(&b, "    museum_time     = %v\n", c.MuseumTimeCoeff)
	fmt.Fprintf(&b, "  }\n\n")

	fmt.Fprintf(&b, "  thickness_mm {\n")
	fmt.Fprintf(&b, "    foam_standard = %v\n", c.FoamStandardMm)
	fmt.Fprintf(&b, "    foam_fragile  = %v\n", c.FoamFragileMm)
	fmt.Fprintf(&b, "    wall_t1       = %v\n", c.WallT1Mm)
	fmt.Fprintf(&b, "    wall_t2       = %v\n", c.WallT2Mm)
	fmt.Fprintf(&b, "    travel_frame  = %v\n", c.TravelFrameMm)
	fmt.Fprintf(&b, "    pallet_base   = %v\n", c.PalletBaseMm)
	fmt.Fprintf(&b, "  }\n\n")

	fmt.Fprintf(&b, "  fabrication_hours {\n")
	fmt.Fprintf(&b, "    small  = %v # < 1 m³\n", c.BaseHoursSmall)
	fmt.Fprintf(&b, "    medium = %v # 1-3 m³\n", c.BaseHoursMedium)
	fmt.Fprintf(&b, "    large  = %v # > 3 m³\n", c.BaseHoursLarge)
	fmt.Fprintf(&b, "  }\n\n")

	fmt.Fprintf(&b, "  transport {\n")
	fmt.Fprintf(&b, "    truck_20m3_day_rate = %s # €/day\n", c.Truck20M3DayRate)
	fmt.Fprintf(&b, "    hgv_day_rate        = %s # €/day\n", c.HGVDayRate)
	fmt.Fprintf(&b, "    hgv_per_km          = %s # €/km\n", c.HGVPerKm)
	fmt.Fprintf(&b, "  }\n")
	fmt.Fprintf(&b, "}\n")

	return b.String()
}
