// Package cmd - recommend command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"artquote/internal/errors"
)

var recommendJSON bool

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend <request.json>",
	Short: "Recommend a team composition for a logistics request",
	Long: `Analyze the artworks and the first transport flow of a request and
propose a team composition with a per-role rationale.

Examples:
  artquote recommend request.json
  artquote recommend --json request.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "emit the recommendation as JSON")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	req, err := readRequest(args[0])
	if err != nil {
		return err
	}
	if len(req.Flows) == 0 {
		return errors.Input("request has no transport flow to analyze")
	}
	if len(req.Roles) == 0 {
		return errors.Input("request has no role catalog")
	}

	eng, err := buildEngine()
	if err != nil {
		return err
	}

	rec := eng.Recommend(ctx, req.Artworks, req.Flows[0], req.Roles)

	if recommendJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	fmt.Printf("Recommended team (%d artworks, avg fragility %.1f, %d km):\n",
		rec.ArtworkCount, rec.AvgFragility, rec.DistanceKm)
	for _, pick := range rec.Team {
		fmt.Printf("  %dx %s: %s\n", pick.Count, pick.Role.Name, pick.Reason)
	}
	fmt.Printf("Mission duration: %d day(s)\n", rec.MissionDays)
	return nil
}
