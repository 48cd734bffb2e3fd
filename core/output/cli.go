// Package output - terminal report
package output

import (
	"fmt"
	"io"
	"strings"

	"artquote/core/engine"
)

// CLIFormatter renders a human-readable terminal report
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the report
func (f *CLIFormatter) Render(w io.Writer, result *engine.QuoteResult) error {
	fmt.Fprintf(w, "Quotation %s\n", result.ID)
	fmt.Fprintf(w, "Generated %s\n", result.GeneratedAt.Format("2006-01-02 15:04 MST"))
	if result.Estimated {
		fmt.Fprintln(w, "Note: one or more routes are estimated, not resolved")
	}
	fmt.Fprintln(w)

	for _, fq := range result.Flows {
		label := fq.Flow.Label
		if label == "" {
			label = fq.Flow.ID
		}
		fmt.Fprintf(w, "Flow %s (%s)\n", label, fq.Flow.Type)
		fmt.Fprintf(w, "  Route: %s -> %s, %d km, %.1f h [%s]\n",
			fq.Route.OriginLabel, fq.Route.DestinationLabel,
			fq.Route.DistanceKm, fq.Route.DurationHours, fq.Route.Source)

		for i, a := range fq.Artworks {
			fmt.Fprintf(w, "  Artwork %s: crate %s, %s %s\n",
				a.ID, a.RecommendedCrate, a.CrateEstimatedCost.StringFixed(2), result.Currency)
			for _, warning := range fq.Cost.Estimates[i].Warnings {
				fmt.Fprintf(w, "    warning: %s\n", warning)
			}
		}

		fmt.Fprintln(w, indent(fq.Cost.Breakdown, "  "))
		fmt.Fprintln(w)
	}

	if result.Team != nil {
		fmt.Fprintln(w, "Mission staff")
		for _, step := range result.Team.Steps {
			fmt.Fprintf(w, "  %s: %d days, %d nights, zone %s, %s %s\n",
				step.Label, step.MissionDays, step.Nights, step.Zone,
				step.TeamTotal.StringFixed(2), result.Currency)
		}
		fmt.Fprintf(w, "  Per-diem %s, hotel %s, salary %s, total %s %s\n\n",
			result.Team.PerDiemTotal.StringFixed(2),
			result.Team.HotelTotal.StringFixed(2),
			result.Team.SalaryTotal.StringFixed(2),
			result.Team.TeamTotal.StringFixed(2), result.Currency)
	}

	if result.Recommendation != nil {
		rec := result.Recommendation
		fmt.Fprintf(w, "Recommended team (%d artworks, %s %s insured, %d km, %d days)\n",
			rec.ArtworkCount, rec.TotalValue.StringFixed(0), result.Currency,
			rec.DistanceKm, rec.MissionDays)
		for _, pick := range rec.Team {
			fmt.Fprintf(w, "  %dx %s - %s\n", pick.Count, pick.Role.Name, pick.Reason)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Commercial offer")
	for _, flow := range result.Consolidation.Flows {
		label := flow.Label
		if label == "" {
			label = flow.FlowID
		}
		fmt.Fprintf(w, "  %-24s cost %12s  margin %5s%% (%s)  selling %12s  profit %10s\n",
			label, flow.Cost.StringFixed(2), flow.MarginPct.String(), flow.MarginSource,
			flow.SellingPrice.StringFixed(2), flow.Profit.StringFixed(2))
	}
	fmt.Fprintf(w, "  Total cost %s, selling %s, profit %s, blended margin %s%%\n",
		result.Consolidation.TotalCost.StringFixed(2),
		result.Consolidation.TotalSelling.StringFixed(2),
		result.Consolidation.TotalProfit.StringFixed(2),
		result.Consolidation.BlendedMarginPct.StringFixed(2))

	return nil
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
