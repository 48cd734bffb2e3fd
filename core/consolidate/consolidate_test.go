package consolidate

import (
	"testing"

	"github.com/shopspring/decimal"

	"artquote/core/types"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestSingleFlowMargin(t *testing.T) {
	flows := []types.LogisticsFlow{{ID: "f1", Label: "Paris -> Berlin"}}
	lines := []types.QuoteLine{{ID: "l1", FlowID: "f1", TotalPrice: dec(1000)}}

	result := Consolidate(flows, lines, nil, MarginSettings{GlobalPct: dec(25)})

	if len(result.Flows) != 1 {
		t.Fatalf("flow count = %d", len(result.Flows))
	}
	f := result.Flows[0]
	if !f.SellingPrice.Equal(dec(1250)) {
		t.Errorf("selling = %s, want 1250", f.SellingPrice)
	}
	if !f.Profit.Equal(dec(250)) {
		t.Errorf("profit = %s, want 250", f.Profit)
	}
	if f.MarginSource != MarginSourceGlobal {
		t.Errorf("margin source = %s", f.MarginSource)
	}
}

func TestGlobalMarginAcrossFlows(t *testing.T) {
	flows := []types.LogisticsFlow{{ID: "f1"}, {ID: "f2"}}
	lines := []types.QuoteLine{
		{FlowID: "f1", TotalPrice: dec(1000)},
		{FlowID: "f2", TotalPrice: dec(2000)},
	}

	result := Consolidate(flows, lines, nil, MarginSettings{GlobalPct: dec(20)})

	if !result.TotalCost.Equal(dec(3000)) {
		t.Errorf("total cost = %s, want 3000", result.TotalCost)
	}
	if !result.TotalSelling.Equal(dec(3600)) {
		t.Errorf("total selling = %s, want 3600", result.TotalSelling)
	}
	if !result.BlendedMarginPct.Equal(dec(20)) {
		t.Errorf("blended margin = %s, want 20", result.BlendedMarginPct)
	}
}

func TestPerFlowOverride(t *testing.T) {
	flows := []types.LogisticsFlow{{ID: "f1"}, {ID: "f2"}}
	lines := []types.QuoteLine{
		{FlowID: "f1", TotalPrice: dec(1000)},
		{FlowID: "f2", TotalPrice: dec(1000)},
	}
	margins := MarginSettings{
		GlobalPct: dec(20),
		Overrides: map[string]decimal.Decimal{"f2": dec(40)},
	}

	result := Consolidate(flows, lines, nil, margins)

	if !result.Flows[0].SellingPrice.Equal(dec(1200)) {
		t.Errorf("f1 selling = %s, want 1200", result.Flows[0].SellingPrice)
	}
	if !result.Flows[1].SellingPrice.Equal(dec(1400)) {
		t.Errorf("f2 selling = %s, want 1400", result.Flows[1].SellingPrice)
	}
	if result.Flows[1].MarginSource != MarginSourceOverride {
		t.Errorf("f2 margin source = %s", result.Flows[1].MarginSource)
	}
}

func TestApplyGlobalClearsOverrides(t *testing.T) {
	margins := MarginSettings{
		GlobalPct: dec(20),
		Overrides: map[string]decimal.Decimal{"f1": dec(50)},
	}

	margins.ApplyGlobal(dec(30))

	if !margins.GlobalPct.Equal(dec(30)) {
		t.Errorf("global = %s, want 30", margins.GlobalPct)
	}
	if len(margins.Overrides) != 0 {
		t.Errorf("overrides not cleared: %v", margins.Overrides)
	}
	if pct, isOverride := margins.For("f1"); isOverride || !pct.Equal(dec(30)) {
		t.Errorf("For(f1) = %s override=%v, want 30 global", pct, isOverride)
	}
}

func TestPackingPseudoFlow(t *testing.T) {
	flows := []types.LogisticsFlow{{ID: "f1"}}
	lines := []types.QuoteLine{{FlowID: "f1", TotalPrice: dec(1000)}}
	artworks := []types.Artwork{
		{ID: "a1", CrateEstimatedCost: dec(300)},
		{ID: "a2", CrateEstimatedCost: dec(200)},
	}
	margins := MarginSettings{
		GlobalPct: dec(20),
		Overrides: map[string]decimal.Decimal{"f1": dec(40)},
	}

	result := Consolidate(flows, lines, artworks, margins)

	if len(result.Flows) != 2 {
		t.Fatalf("flow count = %d, want 2 (flow + packing)", len(result.Flows))
	}
	packing := result.Flows[1]
	if packing.FlowID != PackingFlowID {
		t.Fatalf("last flow = %s, want %s", packing.FlowID, PackingFlowID)
	}
	// Packing is always priced at the global margin, not the override.
	if !packing.SellingPrice.Equal(dec(600)) {
		t.Errorf("packing selling = %s, want 600", packing.SellingPrice)
	}
}

func TestOrphanLinesStillPriced(t *testing.T) {
	lines := []types.QuoteLine{{FlowID: "mystery", TotalPrice: dec(500)}}

	result := Consolidate(nil, lines, nil, MarginSettings{GlobalPct: dec(10)})

	if len(result.Flows) != 1 {
		t.Fatalf("flow count = %d", len(result.Flows))
	}
	if result.Flows[0].FlowID != "mystery" {
		t.Errorf("flow id = %s", result.Flows[0].FlowID)
	}
	if !result.Flows[0].SellingPrice.Equal(dec(550)) {
		t.Errorf("selling = %s, want 550", result.Flows[0].SellingPrice)
	}
}

func TestZeroCostYieldsZeroBlendedMargin(t *testing.T) {
	result := Consolidate(nil, nil, nil, MarginSettings{GlobalPct: dec(25)})

	if !result.TotalCost.IsZero() || !result.TotalSelling.IsZero() {
		t.Errorf("totals not zero: %+v", result)
	}
	if !result.BlendedMarginPct.IsZero() {
		t.Errorf("blended margin = %s, want 0 (no division by zero)", result.BlendedMarginPct)
	}
}

func TestFlowWithoutLinesHasZeroCost(t *testing.T) {
	flows := []types.LogisticsFlow{{ID: "empty"}}
	result := Consolidate(flows, nil, nil, MarginSettings{GlobalPct: dec(25)})

	if len(result.Flows) != 1 {
		t.Fatalf("flow count = %d", len(result.Flows))
	}
	if !result.Flows[0].Cost.IsZero() || !result.Flows[0].SellingPrice.IsZero() {
		t.Errorf("empty flow priced: %+v", result.Flows[0])
	}
}
