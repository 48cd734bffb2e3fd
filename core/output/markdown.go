// Package output - markdown report
package output

import (
	"fmt"
	"io"

	"artquote/core/engine"
)

// MarkdownFormatter renders the result as a markdown report
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report
func (f *MarkdownFormatter) Render(w io.Writer, result *engine.QuoteResult) error {
	fmt.Fprintf(w, "# Quotation %s\n\n", result.ID)
	if result.Estimated {
		fmt.Fprintf(w, "> Routes partially estimated.\n\n")
	}

	fmt.Fprintf(w, "## Flows\n\n")
	fmt.Fprintf(w, "| Flow | Route | Distance | Crates | Packing | Transport | Total |\n")
	fmt.Fprintf(w, "|---|---|---|---|---|---|---|\n")
	for _, fq := range result.Flows {
		label := fq.Flow.Label
		if label == "" {
			label = fq.Flow.ID
		}
		fmt.Fprintf(w, "| %s | %s -> %s | %d km | %s | %s | %s | %s |\n",
			label, fq.Route.OriginLabel, fq.Route.DestinationLabel, fq.Route.DistanceKm,
			fq.Cost.CrateCosts.StringFixed(2), fq.Cost.PackingCosts.StringFixed(2),
			fq.Cost.Transport.TotalCost.StringFixed(2), fq.Cost.TotalCost.StringFixed(2))
	}
	fmt.Fprintln(w)

	if result.Recommendation != nil {
		fmt.Fprintf(w, "## Recommended team\n\n")
		for _, pick := range result.Recommendation.Team {
			fmt.Fprintf(w, "- %dx **%s**: %s\n", pick.Count, pick.Role.Name, pick.Reason)
		}
		fmt.Fprintf(w, "\nEstimated mission: %d days\n\n", result.Recommendation.MissionDays)
	}

	fmt.Fprintf(w, "## Commercial offer\n\n")
	fmt.Fprintf(w, "| Flow | Cost | Margin | Selling | Profit |\n")
	fmt.Fprintf(w, "|---|---|---|---|---|\n")
	for _, flow := range result.Consolidation.Flows {
		label := flow.Label
		if label == "" {
			label = flow.FlowID
		}
		fmt.Fprintf(w, "| %s | %s | %s%% (%s) | %s | %s |\n",
			label, flow.Cost.StringFixed(2), flow.MarginPct.String(), flow.MarginSource,
			flow.SellingPrice.StringFixed(2), flow.Profit.StringFixed(2))
	}
	fmt.Fprintf(w, "| **Total** | %s | %s%% | %s | %s |\n",
		result.Consolidation.TotalCost.StringFixed(2),
		result.Consolidation.BlendedMarginPct.StringFixed(2),
		result.Consolidation.TotalSelling.StringFixed(2),
		result.Consolidation.TotalProfit.StringFixed(2))

	return nil
}
