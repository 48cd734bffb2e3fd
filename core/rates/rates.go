// Package rates maps destinations to geographic zones and returns the
// per-diem and hotel nightly rates used by team costing. Lookups never
// fail: unknown locations resolve to the table's default zone.
package rates

import (
	"strings"

	"github.com/shopspring/decimal"

	"artquote/core/types"
)

// Zone is a geographic banding for subsistence rates
type Zone string

const (
	ZoneFrance       Zone = "FRANCE"
	ZoneEuropeWest   Zone = "EUROPE_WEST"
	ZoneEuropeEast   Zone = "EUROPE_EAST"
	ZoneNorthAmerica Zone = "NORTH_AMERICA"
	ZoneAsia         Zone = "ASIA"
	ZoneMiddleEast   Zone = "MIDDLE_EAST"
)

// String returns the string representation
func (z Zone) String() string {
	return string(z)
}

// ZoneRates holds the subsistence rates and matching rules for one zone
type ZoneRates struct {
	// Zone is the banding name
	Zone Zone `json:"zone"`

	// Countries matched against the free-text country input
	Countries []string `json:"countries,omitempty"`

	// Cities matched against the free-text city input; a city match
	// takes precedence over a country match
	Cities []string `json:"cities,omitempty"`

	// PerDiem is the daily subsistence allowance per staff member
	PerDiem decimal.Decimal `json:"per_diem"`

	// HotelRate is the STANDARD-category nightly rate
	HotelRate decimal.Decimal `json:"hotel_rate"`
}

// Table is the zone rate table. Like the pricing table it is an
// immutable value shared freely across quotations.
type Table struct {
	// DefaultZone absorbs unknown locations
	DefaultZone Zone `json:"default_zone"`

	// Zones lists the bandings in matching order
	Zones []ZoneRates `json:"zones"`
}

// hotelCategoryCoeff scales the STANDARD nightly rate per category
var hotelCategoryCoeff = map[types.HotelCategory]decimal.Decimal{
	types.HotelStandard: decimal.NewFromInt(1),
	types.HotelComfort:  decimal.NewFromFloat(1.25),
	types.HotelPremium:  decimal.NewFromFloat(1.6),
}

// DefaultTable returns the reference zone table
func DefaultTable() Table {
	return Table{
		DefaultZone: ZoneEuropeWest,
		Zones: []ZoneRates{
			{
				Zone:      ZoneFrance,
				Countries: []string{"france"},
				PerDiem:   decimal.NewFromInt(55),
				HotelRate: decimal.NewFromInt(110),
			},
			{
				Zone: ZoneEuropeWest,
				Countries: []string{
					"germany", "belgium", "netherlands", "italy", "spain",
					"switzerland", "austria", "portugal", "united kingdom", "uk",
				},
				PerDiem:   decimal.NewFromInt(65),
				HotelRate: decimal.NewFromInt(140),
			},
			{
				Zone: ZoneEuropeEast,
				Countries: []string{
					"poland", "czech republic", "hungary", "romania", "slovakia",
				},
				PerDiem:   decimal.NewFromInt(45),
				HotelRate: decimal.NewFromInt(90),
			},
			{
				Zone:      ZoneNorthAmerica,
				Countries: []string{"usa", "united states", "canada"},
				Cities:    []string{"new york"},
				PerDiem:   decimal.NewFromInt(90),
				HotelRate: decimal.NewFromInt(200),
			},
			{
				Zone: ZoneAsia,
				Countries: []string{
					"japan", "china", "south korea", "singapore", "hong kong",
				},
				PerDiem:   decimal.NewFromInt(80),
				HotelRate: decimal.NewFromInt(180),
			},
			{
				Zone:      ZoneMiddleEast,
				Countries: []string{"united arab emirates", "uae", "qatar", "saudi arabia"},
				PerDiem:   decimal.NewFromInt(85),
				HotelRate: decimal.NewFromInt(190),
			},
		},
	}
}

// normalize prepares free-text input for matching
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ZoneFor resolves a (city, country) pair to a zone. Inputs are free
// text and not normalized upstream; unknown input resolves to the
// default zone rather than failing.
func (t Table) ZoneFor(city, country string) Zone {
	city = normalize(city)
	country = normalize(country)

	if city != "" {
		for _, z := range t.Zones {
			for _, c := range z.Cities {
				if city == c {
					return z.Zone
				}
			}
		}
	}

	if country != "" {
		for _, z := range t.Zones {
			for _, c := range z.Countries {
				if country == c {
					return z.Zone
				}
			}
		}
	}

	return t.DefaultZone
}

// rates returns the ZoneRates entry for a zone, falling back to the
// default zone, then to the first entry
func (t Table) rates(zone Zone) ZoneRates {
	for _, z := range t.Zones {
		if z.Zone == zone {
			return z
		}
	}
	for _, z := range t.Zones {
		if z.Zone == t.DefaultZone {
			return z
		}
	}
	if len(t.Zones) > 0 {
		return t.Zones[0]
	}
	return ZoneRates{}
}

// PerDiem returns the daily subsistence allowance for a zone
func (t Table) PerDiem(zone Zone) decimal.Decimal {
	return t.rates(zone).PerDiem
}

// HotelRate returns the nightly hotel rate for a zone and category
func (t Table) HotelRate(zone Zone, category types.HotelCategory) decimal.Decimal {
	coeff, ok := hotelCategoryCoeff[category]
	if !ok {
		coeff = decimal.NewFromInt(1)
	}
	return t.rates(zone).HotelRate.Mul(coeff)
}
