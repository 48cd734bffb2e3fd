// Package consolidate aggregates flow costs into a priced commercial
// offer: per-flow selling prices with configurable margins, plus blended
// totals across the whole project.
package consolidate

import (
	"sort"

	"github.com/shopspring/decimal"

	"artquote/core/types"
)

// PackingFlowID identifies the pseudo-flow carrying packing costs
const PackingFlowID = "PACKING"

// Margin source labels
const (
	MarginSourceGlobal   = "global"
	MarginSourceOverride = "override"
)

// MarginSettings bundles the global margin and per-flow overrides
type MarginSettings struct {
	// GlobalPct applies to flows without an override
	GlobalPct decimal.Decimal `json:"global_pct"`

	// Overrides maps flow id to a flow-specific margin
	Overrides map[string]decimal.Decimal `json:"overrides,omitempty"`
}

// For returns the effective margin for a flow and whether it came from
// an override
func (m MarginSettings) For(flowID string) (decimal.Decimal, bool) {
	if pct, ok := m.Overrides[flowID]; ok {
		return pct, true
	}
	return m.GlobalPct, false
}

// ApplyGlobal is the explicit bulk action: it sets the global margin and
// clears every per-flow override, which is distinct from merely changing
// the default.
func (m *MarginSettings) ApplyGlobal(pct decimal.Decimal) {
	m.GlobalPct = pct
	m.Overrides = map[string]decimal.Decimal{}
}

// FlowFinancial is one priced flow in the offer
type FlowFinancial struct {
	// FlowID identifies the flow; PackingFlowID for the pseudo-flow
	FlowID string `json:"flow_id"`

	// Label is the flow display name
	Label string `json:"label,omitempty"`

	// Cost is the summed quote-line cost
	Cost decimal.Decimal `json:"cost"`

	// MarginPct is the effective margin
	MarginPct decimal.Decimal `json:"margin_pct"`

	// MarginSource is "global" or "override"
	MarginSource string `json:"margin_source"`

	// SellingPrice = cost x (1 + margin/100)
	SellingPrice decimal.Decimal `json:"selling_price"`

	// Profit = selling - cost
	Profit decimal.Decimal `json:"profit"`
}

// Consolidation is the priced commercial offer
type Consolidation struct {
	// Flows lists priced flows in input order, orphan flows next in
	// id order, the packing pseudo-flow last
	Flows []FlowFinancial `json:"flows"`

	// Totals across all flows
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalSelling decimal.Decimal `json:"total_selling"`
	TotalProfit  decimal.Decimal `json:"total_profit"`

	// BlendedMarginPct = profit / cost x 100; zero when cost is zero
	BlendedMarginPct decimal.Decimal `json:"blended_margin_pct"`
}

// Consolidate groups quote lines by flow, applies margins and produces
// the offer. Degenerate inputs (no flows, zero costs) yield zero-valued
// aggregates, never a division by zero.
func Consolidate(flows []types.LogisticsFlow, lines []types.QuoteLine, artworks []types.Artwork, margins MarginSettings) Consolidation {
	costByFlow := make(map[string]decimal.Decimal)
	for _, line := range lines {
		costByFlow[line.FlowID] = costByFlow[line.FlowID].Add(line.TotalPrice)
	}

	var result Consolidation
	seen := make(map[string]bool)

	appendFlow := func(flowID, label string) {
		cost := costByFlow[flowID]
		pct, isOverride := margins.For(flowID)
		source := MarginSourceGlobal
		if isOverride {
			source = MarginSourceOverride
		}
		result.Flows = append(result.Flows, priceFlow(flowID, label, cost, pct, source))
		seen[flowID] = true
	}

	for _, flow := range flows {
		appendFlow(flow.ID, flow.Label)
	}

	// Lines referencing flows outside the given list still get priced;
	// refusing to quote is worse than a missing label.
	var orphans []string
	for flowID := range costByFlow {
		if !seen[flowID] {
			orphans = append(orphans, flowID)
		}
	}
	sort.Strings(orphans)
	for _, flowID := range orphans {
		appendFlow(flowID, "")
	}

	// Packing travels as its own pseudo-flow at the global margin.
	packingCost := decimal.Zero
	for _, a := range artworks {
		packingCost = packingCost.Add(a.CrateEstimatedCost)
	}
	if packingCost.IsPositive() {
		result.Flows = append(result.Flows,
			priceFlow(PackingFlowID, "Packing & crating", packingCost, margins.GlobalPct, MarginSourceGlobal))
	}

	for _, f := range result.Flows {
		result.TotalCost = result.TotalCost.Add(f.Cost)
		result.TotalSelling = result.TotalSelling.Add(f.SellingPrice)
		result.TotalProfit = result.TotalProfit.Add(f.Profit)
	}

	if result.TotalCost.IsPositive() {
		result.BlendedMarginPct = result.TotalProfit.
			Div(result.TotalCost).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return result
}

func priceFlow(flowID, label string, cost, marginPct decimal.Decimal, source string) FlowFinancial {
	selling := cost.Mul(decimal.NewFromInt(1).Add(marginPct.Div(decimal.NewFromInt(100)))).Round(2)
	return FlowFinancial{
		FlowID:       flowID,
		Label:        label,
		Cost:         cost,
		MarginPct:    marginPct,
		MarginSource: source,
		SellingPrice: selling,
		Profit:       selling.Sub(cost),
	}
}
