// Package team - rule-based team composition recommendation
// Rules are independent evaluators applied in order; each returns an
// optional pick with a human-readable rationale, and the recommendation
// is their concatenation. Identical inputs always produce identical
// recommendations.
package team

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"artquote/core/types"
)

// Recommendation thresholds
const (
	// CourierValueThreshold triggers an escort on total insured value
	CourierValueThreshold = 500000

	// CourierDistanceKm triggers an escort on route distance
	CourierDistanceKm = 1000

	// CourierFragility triggers an escort on average fragility
	CourierFragility = 4.0

	// ArtworksPerTechnician sizes the handling crew
	ArtworksPerTechnician = 5

	// MaxTechnicians caps the handling crew
	MaxTechnicians = 4

	// DrivingHoursPerDay caps daily driving for duration estimates
	DrivingHoursPerDay = 8

	// AirMissionDays is the fixed air-freight mission duration
	AirMissionDays = 3
)

// Input carries the shipment metrics the rules evaluate
type Input struct {
	// Artworks in the shipment
	Artworks []types.Artwork `json:"artworks"`

	// DistanceKm is the route distance
	DistanceKm int `json:"distance_km"`

	// DurationHours is the road travel duration; derived from distance
	// at 80 km/h when absent
	DurationHours float64 `json:"duration_hours"`

	// FlowType selects the mission duration model
	FlowType types.FlowType `json:"flow_type"`
}

// RolePick is one recommended role with its rationale
type RolePick struct {
	// Role is the catalog entry
	Role types.TeamRole `json:"role"`

	// Count is the recommended head count
	Count int `json:"count"`

	// Reason lists every condition that produced this pick
	Reason string `json:"reason"`
}

// Recommendation is the proposed team for a shipment
type Recommendation struct {
	// Team lists the picks in rule order
	Team []RolePick `json:"team"`

	// MissionDays is the estimated mission duration
	MissionDays int `json:"mission_days"`

	// Summary metrics for downstream display
	ArtworkCount int             `json:"artwork_count"`
	TotalValue   decimal.Decimal `json:"total_value"`
	AvgFragility float64         `json:"avg_fragility"`
	DistanceKm   int             `json:"distance_km"`
}

// Rule evaluates one staffing condition. A nil return means the rule
// does not apply (or its role is absent from the catalog).
type Rule func(in Input, catalog types.RoleCatalog) *RolePick

// defaultRules in application order: supervisor, technicians, courier
var defaultRules = []Rule{supervisorRule, technicianRule, courierRule}

// Recommend proposes a team composition for a shipment
func Recommend(in Input, catalog types.RoleCatalog) Recommendation {
	rec := Recommendation{
		MissionDays:  missionDays(in),
		ArtworkCount: len(in.Artworks),
		TotalValue:   totalValue(in.Artworks),
		AvgFragility: avgFragility(in.Artworks),
		DistanceKm:   in.DistanceKm,
	}

	for _, rule := range defaultRules {
		if pick := rule(in, catalog); pick != nil {
			rec.Team = append(rec.Team, *pick)
		}
	}

	return rec
}

// supervisorRule: every mission gets exactly one supervisor (régisseur)
func supervisorRule(in Input, catalog types.RoleCatalog) *RolePick {
	role, ok := findRole(catalog, "régisseur", "regisseur", "supervisor")
	if !ok {
		return nil
	}
	return &RolePick{
		Role:   role,
		Count:  1,
		Reason: "one supervisor on every mission",
	}
}

// technicianRule: one technician per five artworks, between 1 and 4
func technicianRule(in Input, catalog types.RoleCatalog) *RolePick {
	role, ok := findRole(catalog, "technicien", "technician")
	if !ok {
		return nil
	}

	count := int(math.Ceil(float64(len(in.Artworks)) / ArtworksPerTechnician))
	if count < 1 {
		count = 1
	}
	if count > MaxTechnicians {
		count = MaxTechnicians
	}

	return &RolePick{
		Role:   role,
		Count:  count,
		Reason: fmt.Sprintf("%d artworks to handle", len(in.Artworks)),
	}
}

// courierRule: an escort (convoyeur) travels with high-value, long-haul
// or fragile shipments. The rationale lists every trigger that applied.
func courierRule(in Input, catalog types.RoleCatalog) *RolePick {
	role, ok := findRole(catalog, "convoyeur", "courier", "escort")
	if !ok {
		return nil
	}

	value := totalValue(in.Artworks)
	fragility := avgFragility(in.Artworks)

	var triggers []string
	if value.GreaterThan(decimal.NewFromInt(CourierValueThreshold)) {
		triggers = append(triggers, fmt.Sprintf("insured value %s exceeds %d", value, CourierValueThreshold))
	}
	if in.DistanceKm > CourierDistanceKm {
		triggers = append(triggers, fmt.Sprintf("distance %d km exceeds %d km", in.DistanceKm, CourierDistanceKm))
	}
	if fragility >= CourierFragility {
		triggers = append(triggers, fmt.Sprintf("average fragility %.1f at or above %.0f", fragility, CourierFragility))
	}

	if len(triggers) == 0 {
		return nil
	}

	return &RolePick{
		Role:   role,
		Count:  1,
		Reason: strings.Join(triggers, "; "),
	}
}

// missionDays estimates the mission duration: fixed for air freight,
// driving-capped plus pickup and delivery days for road
func missionDays(in Input) int {
	if in.FlowType == types.FlowAir {
		return AirMissionDays
	}

	hours := in.DurationHours
	if hours <= 0 {
		hours = float64(in.DistanceKm) / 80
	}

	return int(math.Ceil(hours/DrivingHoursPerDay)) + 2
}

func totalValue(artworks []types.Artwork) decimal.Decimal {
	total := decimal.Zero
	for _, a := range artworks {
		total = total.Add(a.InsuranceValue)
	}
	return total
}

func avgFragility(artworks []types.Artwork) float64 {
	if len(artworks) == 0 {
		return 0
	}
	sum := 0
	for _, a := range artworks {
		sum += a.EffectiveFragility()
	}
	return float64(sum) / float64(len(artworks))
}

// findRole returns the first catalog role whose name contains any of
// the given keywords, case-insensitively
func findRole(catalog types.RoleCatalog, keywords ...string) (types.TeamRole, bool) {
	for _, role := range catalog {
		name := strings.ToLower(role.Name)
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				return role, true
			}
		}
	}
	return types.TeamRole{}, false
}
