// Package cmd - quote command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"artquote/api"
	"artquote/core/consolidate"
	"artquote/core/engine"
	"artquote/core/output"
	"artquote/core/pricing"
	"artquote/core/rates"
	"artquote/core/route"
	"artquote/internal/config"
	"artquote/internal/logging"
)

var (
	outputFormat string
	marginPct    float64
	pricingFile  string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <request.json>",
	Short: "Produce a full quotation for a logistics request",
	Long: `Price a logistics request end to end.

The request file describes the artworks, transport flows, mission steps
and role catalog. Crate estimation, transport costing, team costing and
the commercial offer all run in one pass.

Examples:
  artquote quote request.json
  artquote quote --format json request.json
  artquote quote --margin 30 --pricing rates.hcl request.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	quoteCmd.Flags().Float64VarP(&marginPct, "margin", "m", -1, "global margin percentage (overrides config)")
	quoteCmd.Flags().StringVarP(&pricingFile, "pricing", "p", "", "pricing table file (HCL)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	req, err := readRequest(args[0])
	if err != nil {
		return err
	}

	eng, err := buildEngine()
	if err != nil {
		return err
	}

	logging.Info("starting quotation",
		zap.Int("artworks", len(req.Artworks)),
		zap.Int("flows", len(req.Flows)))

	result := eng.Quote(ctx, engine.QuoteRequest{
		Artworks:   req.Artworks,
		Flows:      req.Flows,
		Steps:      req.Steps,
		Roles:      req.Roles,
		ExtraLines: req.ExtraLines,
		Margins:    requestMargins(req),
	})

	format := outputFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	return output.ForFormat(format).Render(os.Stdout, &result)
}

// readRequest loads and decodes a quotation request file
func readRequest(path string) (*api.QuoteRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}
	var req api.QuoteRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing request %s: %w", path, err)
	}
	return &req, nil
}

// requestMargins resolves the margin settings, flag over file over config
func requestMargins(req *api.QuoteRequest) consolidate.MarginSettings {
	pct := config.Get().Quote.DefaultMarginPct
	if req.GlobalMarginPct != nil {
		pct = *req.GlobalMarginPct
	}
	if marginPct >= 0 {
		pct = marginPct
	}
	m := consolidate.MarginSettings{GlobalPct: decimal.NewFromFloat(pct)}
	for flowID, override := range req.MarginOverrides {
		if m.Overrides == nil {
			m.Overrides = make(map[string]decimal.Decimal, len(req.MarginOverrides))
		}
		m.Overrides[flowID] = decimal.NewFromFloat(override)
	}
	return m
}

// buildEngine assembles the engine from the active configuration
func buildEngine() (*engine.Engine, error) {
	cfg := config.Get()

	path := pricingFile
	if path == "" {
		path = cfg.Pricing.FilePath
	}

	pcfg := pricing.Default()
	table := rates.DefaultTable()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			pcfg, err = pricing.LoadHCL(path)
			if err != nil {
				return nil, fmt.Errorf("loading pricing table: %w", err)
			}
			table, err = rates.LoadHCL(path)
			if err != nil {
				return nil, fmt.Errorf("loading zone rates: %w", err)
			}
		}
	}

	for _, warning := range pcfg.Validate() {
		logging.Warn("pricing table", zap.String("warning", warning))
	}

	resolver := route.NewResolver(cfg.Routing)
	return engine.New(pcfg, table, resolver), nil
}
