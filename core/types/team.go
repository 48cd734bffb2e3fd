// Package types - Staffing catalog and mission models
package types

import "github.com/shopspring/decimal"

// HotelCategory bands the nightly hotel rate for a role
type HotelCategory string

const (
	HotelStandard HotelCategory = "STANDARD"
	HotelComfort  HotelCategory = "COMFORT"
	HotelPremium  HotelCategory = "PREMIUM"
)

// TeamRole is a staffing catalog entry
type TeamRole struct {
	// ID identifies the role in the catalog
	ID string `json:"id"`

	// Name is the role label (e.g. "Régisseur", "Technicien")
	Name string `json:"name"`

	// DailyRate is the salary cost per mission day
	DailyRate decimal.Decimal `json:"daily_rate"`

	// HotelCategory is the default hotel band for this role
	HotelCategory HotelCategory `json:"hotel_category"`
}

// TeamMember is one role slot with a head count
type TeamMember struct {
	// RoleID references the catalog
	RoleID string `json:"role_id"`

	// Count is the number of staff in this role
	Count int `json:"count"`
}

// LogisticsStep is one segment of a multi-leg mission
type LogisticsStep struct {
	// Label is a display name for the segment
	Label string `json:"label"`

	// DurationDays is the segment duration in days
	DurationDays int `json:"duration_days"`

	// Team is the step's composition
	Team []TeamMember `json:"team"`
}

// RoleCatalog indexes roles by ID
type RoleCatalog []TeamRole

// ByID returns the role with the given id
func (c RoleCatalog) ByID(id string) (TeamRole, bool) {
	for _, r := range c {
		if r.ID == id {
			return r, true
		}
	}
	return TeamRole{}, false
}
