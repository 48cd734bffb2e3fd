// Package cmd - pricing table management
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"artquote/core/pricing"
	"artquote/internal/config"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Pricing table management",
	Long: `Inspect and bootstrap the pricing table.

The table is an HCL file holding material rates, labor rates, margin
coefficients, crate geometry and per-diem zones. Missing attributes
fall back to built-in defaults.`,
}

var pricingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active pricing table as HCL",
	RunE:  runPricingShow,
}

var pricingInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a pricing table template",
	Long: `Write the built-in pricing defaults as an editable HCL file.

Without an argument the configured pricing path is used. The command
refuses to overwrite an existing file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPricingInit,
}

func init() {
	pricingCmd.AddCommand(pricingShowCmd)
	pricingCmd.AddCommand(pricingInitCmd)
}

func runPricingShow(cmd *cobra.Command, args []string) error {
	cfg := pricing.Default()

	path := config.Get().Pricing.FilePath
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := pricing.LoadHCL(path)
			if err != nil {
				return fmt.Errorf("loading pricing table: %w", err)
			}
			cfg = loaded
		}
	}

	fmt.Print(cfg.TemplateHCL())
	return nil
}

func runPricingInit(cmd *cobra.Command, args []string) error {
	path := config.Get().Pricing.FilePath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no pricing path configured; pass one as an argument")
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating pricing directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(pricing.Default().TemplateHCL()), 0o644); err != nil {
		return fmt.Errorf("writing pricing template: %w", err)
	}

	fmt.Printf("Wrote pricing template to %s\n", path)
	return nil
}
