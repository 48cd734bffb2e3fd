// Package team computes staffing costs for missions and recommends team
// compositions from shipment risk metrics.
package team

import (
	"github.com/shopspring/decimal"

	"artquote/core/rates"
	"artquote/core/types"
)

// UnknownRoleName labels compositions referencing a missing catalog entry
const UnknownRoleName = "Unknown"

// ResolvedMember is one role slot with its catalog entry resolved
type ResolvedMember struct {
	// Role is the catalog entry; a placeholder with rate 0 when the
	// composition referenced an unknown id
	Role types.TeamRole `json:"role"`

	// Count is the head count for this role
	Count int `json:"count"`
}

// StepCostResult is the costed staffing for one mission step
type StepCostResult struct {
	// Label names the step
	Label string `json:"label"`

	// Zone is the rate banding used for per-diem and hotel
	Zone rates.Zone `json:"zone"`

	// MissionDays and Nights; a mission of N days implies N-1 nights
	MissionDays int `json:"mission_days"`
	Nights      int `json:"nights"`

	// Cost components
	PerDiemTotal decimal.Decimal `json:"per_diem_total"`
	HotelTotal   decimal.Decimal `json:"hotel_total"`
	SalaryTotal  decimal.Decimal `json:"salary_total"`

	// TeamTotal = per-diem + hotel + salary
	TeamTotal decimal.Decimal `json:"team_total"`
}

// MissionCostResult sums step costs across a multi-leg mission
type MissionCostResult struct {
	// Steps holds the per-step breakdown in input order
	Steps []StepCostResult `json:"steps"`

	// Totals across all steps
	PerDiemTotal decimal.Decimal `json:"per_diem_total"`
	HotelTotal   decimal.Decimal `json:"hotel_total"`
	SalaryTotal  decimal.Decimal `json:"salary_total"`
	TeamTotal    decimal.Decimal `json:"team_total"`
}

// StepCosts computes per-diem, hotel and salary costs for one mission
// step. Zone rates come from the step destination; a single-day mission
// has no hotel nights.
func StepCosts(members []ResolvedMember, missionDays int, city, country string, table rates.Table) StepCostResult {
	zone := table.ZoneFor(city, country)

	nights := missionDays - 1
	if nights < 0 {
		nights = 0
	}

	days := decimal.NewFromInt(int64(missionDays))
	nightsDec := decimal.NewFromInt(int64(nights))
	perDiemRate := table.PerDiem(zone)

	perDiem := decimal.Zero
	hotel := decimal.Zero
	salary := decimal.Zero

	for _, m := range members {
		count := decimal.NewFromInt(int64(m.Count))
		perDiem = perDiem.Add(count.Mul(perDiemRate).Mul(days))
		hotel = hotel.Add(count.Mul(table.HotelRate(zone, m.Role.HotelCategory)).Mul(nightsDec))
		salary = salary.Add(count.Mul(m.Role.DailyRate).Mul(days))
	}

	return StepCostResult{
		Zone:         zone,
		MissionDays:  missionDays,
		Nights:       nights,
		PerDiemTotal: perDiem.Round(2),
		HotelTotal:   hotel.Round(2),
		SalaryTotal:  salary.Round(2),
		TeamTotal:    perDiem.Add(hotel).Add(salary).Round(2),
	}
}

// ResolveMembers matches a step composition against the role catalog.
// Unknown role ids resolve to a zero-rate "Unknown" placeholder so one
// bad reference never fails the whole mission costing.
func ResolveMembers(composition []types.TeamMember, catalog types.RoleCatalog) []ResolvedMember {
	resolved := make([]ResolvedMember, 0, len(composition))
	for _, tm := range composition {
		role, ok := catalog.ByID(tm.RoleID)
		if !ok {
			role = types.TeamRole{
				ID:            tm.RoleID,
				Name:          UnknownRoleName,
				DailyRate:     decimal.Zero,
				HotelCategory: types.HotelStandard,
			}
		}
		resolved = append(resolved, ResolvedMember{Role: role, Count: tm.Count})
	}
	return resolved
}

// CostsFromSteps costs a multi-leg mission. Every step resolves zone
// rates from the single mission destination; per-step destinations are
// carried on the step label only.
func CostsFromSteps(steps []types.LogisticsStep, destinationCity, destinationCountry string, table rates.Table, catalog types.RoleCatalog) MissionCostResult {
	result := MissionCostResult{
		PerDiemTotal: decimal.Zero,
		HotelTotal:   decimal.Zero,
		SalaryTotal:  decimal.Zero,
		TeamTotal:    decimal.Zero,
	}

	for _, step := range steps {
		members := ResolveMembers(step.Team, catalog)
		sc := StepCosts(members, step.DurationDays, destinationCity, destinationCountry, table)
		sc.Label = step.Label

		result.Steps = append(result.Steps, sc)
		result.PerDiemTotal = result.PerDiemTotal.Add(sc.PerDiemTotal)
		result.HotelTotal = result.HotelTotal.Add(sc.HotelTotal)
		result.SalaryTotal = result.SalaryTotal.Add(sc.SalaryTotal)
		result.TeamTotal = result.TeamTotal.Add(sc.TeamTotal)
	}

	return result
}
