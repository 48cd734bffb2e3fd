// Package engine orchestrates a full quotation pass: route resolution,
// per-flow costing, staffing and financial consolidation. The engine
// holds only immutable tables and a route resolver, so one instance can
// serve concurrent quotes.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"artquote/core/consolidate"
	"artquote/core/flowcost"
	"artquote/core/pricing"
	"artquote/core/rates"
	"artquote/core/route"
	"artquote/core/team"
	"artquote/core/types"
)

// StaffFlowID labels the quote line carrying mission staffing costs
const StaffFlowID = "STAFF"

// QuoteRequest is the full input of one quotation pass
type QuoteRequest struct {
	// Artworks across all flows; FlowID assigns each to a leg
	Artworks []types.Artwork `json:"artworks"`

	// Flows are the transport legs to quote
	Flows []types.LogisticsFlow `json:"flows"`

	// Steps optionally describe the staffing mission
	Steps []types.LogisticsStep `json:"steps,omitempty"`

	// Roles is the staffing catalog; enables team costing and the
	// recommendation when present
	Roles types.RoleCatalog `json:"roles,omitempty"`

	// ExtraLines are externally sourced quote lines (agent offers)
	ExtraLines []types.QuoteLine `json:"extra_lines,omitempty"`

	// Margins for the commercial offer
	Margins consolidate.MarginSettings `json:"margins"`
}

// FlowQuote is one costed transport leg
type FlowQuote struct {
	// Flow is the input leg
	Flow types.LogisticsFlow `json:"flow"`

	// Route is the resolved or estimated route
	Route route.Result `json:"route"`

	// Cost is the leg's cost detail with breakdown text
	Cost flowcost.FlowCost `json:"cost"`

	// Artworks are the leg's works with estimator results written
	Artworks []types.Artwork `json:"artworks"`
}

// QuoteResult is the complete output of one quotation pass
type QuoteResult struct {
	// ID identifies this quotation
	ID string `json:"id"`

	// GeneratedAt stamps the pass
	GeneratedAt time.Time `json:"generated_at"`

	// Currency is the pricing table currency
	Currency types.Currency `json:"currency"`

	// Flows are the costed legs in input order
	Flows []FlowQuote `json:"flows"`

	// Team is the mission staffing cost, when steps were given
	Team *team.MissionCostResult `json:"team,omitempty"`

	// Recommendation is the proposed composition, when a catalog was
	// given; it uses the first flow's route metrics
	Recommendation *team.Recommendation `json:"recommendation,omitempty"`

	// Consolidation is the priced commercial offer
	Consolidation consolidate.Consolidation `json:"consolidation"`

	// Estimated is true when any route came from the fallback
	// estimator rather than the mapping provider
	Estimated bool `json:"estimated"`
}

// Engine runs quotation passes against immutable tables
type Engine struct {
	pricing pricing.Config
	rates   rates.Table
	routes  *route.Resolver
}

// New creates an engine. The pricing and rate tables are captured by
// value and never mutated.
func New(cfg pricing.Config, table rates.Table, resolver *route.Resolver) *Engine {
	return &Engine{pricing: cfg, rates: table, routes: resolver}
}

// Pricing returns the engine's pricing table
func (e *Engine) Pricing() pricing.Config {
	return e.pricing
}

// Quote runs one full quotation pass. Every degraded input resolves to
// a documented default, so the result is always a usable best-effort
// quote.
func (e *Engine) Quote(ctx context.Context, req QuoteRequest) QuoteResult {
	result := QuoteResult{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Currency:    e.pricing.Currency,
	}

	lines := append([]types.QuoteLine{}, req.ExtraLines...)
	var pricedArtworks []types.Artwork

	for _, flow := range req.Flows {
		works := artworksForFlow(req.Artworks, flow, len(req.Flows) == 1)

		rt := e.resolveRoute(ctx, flow)
		if rt.Source == route.SourceEstimated {
			result.Estimated = true
		}

		fc := flowcost.Calculate(works, rt.DistanceKm, e.pricing)

		// Write estimator results onto the returned copies.
		for i := range works {
			works[i].RecommendedCrate = fc.Estimates[i].CrateType.String()
			works[i].CrateEstimatedCost = fc.Estimates[i].CrateCost
		}
		pricedArtworks = append(pricedArtworks, works...)

		lines = append(lines,
			types.QuoteLine{
				ID:         uuid.NewString(),
				FlowID:     flow.ID,
				Label:      "Transport",
				TotalPrice: fc.Transport.TotalCost,
			},
			types.QuoteLine{
				ID:         uuid.NewString(),
				FlowID:     flow.ID,
				Label:      "Packing labor",
				TotalPrice: fc.PackingCosts,
			},
		)

		result.Flows = append(result.Flows, FlowQuote{
			Flow:     flow,
			Route:    rt,
			Cost:     fc,
			Artworks: works,
		})
	}

	if len(req.Steps) > 0 {
		destCity, destCountry := missionDestination(req.Flows)
		mission := team.CostsFromSteps(req.Steps, destCity, destCountry, e.rates, req.Roles)
		result.Team = &mission

		if mission.TeamTotal.IsPositive() {
			lines = append(lines, types.QuoteLine{
				ID:         uuid.NewString(),
				FlowID:     StaffFlowID,
				Label:      "Mission staff",
				TotalPrice: mission.TeamTotal,
			})
		}
	}

	if len(req.Roles) > 0 {
		rec := e.recommend(req, result.Flows)
		result.Recommendation = &rec
	}

	result.Consolidation = consolidate.Consolidate(req.Flows, lines, pricedArtworks, req.Margins)
	return result
}

// Recommend proposes a team for a shipment without running a full pass
func (e *Engine) Recommend(ctx context.Context, artworks []types.Artwork, flow types.LogisticsFlow, catalog types.RoleCatalog) team.Recommendation {
	rt := e.resolveRoute(ctx, flow)
	return team.Recommend(team.Input{
		Artworks:      artworks,
		DistanceKm:    rt.DistanceKm,
		DurationHours: rt.DurationHours,
		FlowType:      flow.Type,
	}, catalog)
}

// Route resolves a flow's route directly
func (e *Engine) Route(ctx context.Context, flow types.LogisticsFlow) route.Result {
	return e.resolveRoute(ctx, flow)
}

func (e *Engine) resolveRoute(ctx context.Context, flow types.LogisticsFlow) route.Result {
	origin := placeLabel(flow.OriginCity, flow.OriginCountry)
	destination := placeLabel(flow.DestinationCity, flow.DestinationCountry)

	if e.routes == nil {
		return route.Estimate(origin, destination)
	}
	return e.routes.Resolve(ctx, origin, destination)
}

func (e *Engine) recommend(req QuoteRequest, flows []FlowQuote) team.Recommendation {
	in := team.Input{Artworks: req.Artworks}
	if len(flows) > 0 {
		in.DistanceKm = flows[0].Route.DistanceKm
		in.DurationHours = flows[0].Route.DurationHours
		in.FlowType = flows[0].Flow.Type
	}
	return team.Recommend(in, req.Roles)
}

// artworksForFlow selects the artworks assigned to a flow. With a single
// flow, unassigned artworks ride along rather than dropping out of the
// quote. Returned slices are copies; the caller's artworks are never
// mutated.
func artworksForFlow(artworks []types.Artwork, flow types.LogisticsFlow, soleFlow bool) []types.Artwork {
	var out []types.Artwork
	for _, a := range artworks {
		if a.FlowID == flow.ID || (soleFlow && a.FlowID == "") {
			out = append(out, a)
		}
	}
	return out
}

// missionDestination is the single destination used for every mission
// step's zone rates
func missionDestination(flows []types.LogisticsFlow) (city, country string) {
	if len(flows) == 0 {
		return "", ""
	}
	last := flows[len(flows)-1]
	return last.DestinationCity, last.DestinationCountry
}

func placeLabel(city, country string) string {
	switch {
	case city == "":
		return country
	case country == "":
		return city
	default:
		return city + ", " + country
	}
}
