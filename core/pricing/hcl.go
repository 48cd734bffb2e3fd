// Package pricing - HCL pricing table loader
// Pricing tables are authored as HCL so configuration owners can comment
// and version them. A table file may carry blocks owned by other packages
// (e.g. zones); this loader only reads the pricing block.
package pricing

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"artquote/core/types"
	"artquote/internal/errors"
)

var pricingFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "pricing"},
	},
}

var pricingBlockSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "version"},
		{Name: "currency"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "materials"},
		{Type: "labor"},
		{Type: "coefficients"},
		{Type: "thickness_mm"},
		{Type: "fabrication_hours"},
		{Type: "transport"},
	},
}

// LoadHCL reads a pricing table from an HCL file. Missing attributes keep
// their default values, so a partial table is a valid override file.
func LoadHCL(path string) (Config, error) {
	cfg := Default()

	src, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Config("read pricing file", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return cfg, errors.Pricing("parse pricing file", fmt.Errorf("%s", diags.Error()))
	}

	content, _, diags := file.Body.PartialContent(pricingFileSchema)
	if diags.HasErrors() {
		return cfg, errors.Pricing("decode pricing file", fmt.Errorf("%s", diags.Error()))
	}

	for _, block := range content.Blocks {
		if block.Type != "pricing" {
			continue
		}
		if err := decodePricingBlock(block.Body, &cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

func decodePricingBlock(body hcl.Body, cfg *Config) error {
	content, _, diags := body.PartialContent(pricingBlockSchema)
	if diags.HasErrors() {
		return errors.Pricing("decode pricing block", fmt.Errorf("%s", diags.Error()))
	}

	if s, ok := attrString(content.Attributes, "version"); ok {
		cfg.Version = s
	}
	if s, ok := attrString(content.Attributes, "currency"); ok {
		cfg.Currency = types.Currency(s)
	}

	for _, block := range content.Blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return errors.Pricing("decode "+block.Type+" block", fmt.Errorf("%s", diags.Error()))
		}

		switch block.Type {
		case "materials":
			decAttr(attrs, "wood_per_m2", &cfg.WoodPerM2)
			decAttr(attrs, "foam_per_m3", &cfg.FoamPerM3)
			decAttr(attrs, "plastazote_per_m2", &cfg.PlastazotePerM2)
			decAttr(attrs, "ethafoam_per_m2", &cfg.EthafoamPerM2)
			decAttr(attrs, "travel_frame_per_m", &cfg.TravelFramePerM)
			decAttr(attrs, "hardware_allowance", &cfg.HardwareAllowance)
		case "labor":
			decAttr(attrs, "workshop_hourly_rate", &cfg.WorkshopHourlyRate)
			decAttr(attrs, "field_packer_hourly_rate", &cfg.FieldPackerHourlyRate)
		case "coefficients":
			decAttr(attrs, "overhead", &cfg.OverheadCoeff)
			decAttr(attrs, "standard_margin", &cfg.StandardMarginCoeff)
			decAttr(attrs, "museum_margin", &cfg.MuseumMarginCoeff)
			floatAttr(attrs, "museum_time", &cfg.MuseumTimeCoeff)
		case "thickness_mm":
			floatAttr(attrs, "foam_standard", &cfg.FoamStandardMm)
			floatAttr(attrs, "foam_fragile", &cfg.FoamFragileMm)
			floatAttr(attrs, "wall_t1", &cfg.WallT1Mm)
			floatAttr(attrs, "wall_t2", &cfg.WallT2Mm)
			floatAttr(attrs, "travel_frame", &cfg.TravelFrameMm)
			floatAttr(attrs, "pallet_base", &cfg.PalletBaseMm)
		case "fabrication_hours":
			floatAttr(attrs, "small", &cfg.BaseHoursSmall)
			floatAttr(attrs, "medium", &cfg.BaseHoursMedium)
			floatAttr(attrs, "large", &cfg.BaseHoursLarge)
		case "transport":
			decAttr(attrs, "truck_20m3_day_rate", &cfg.Truck20M3DayRate)
			decAttr(attrs, "hgv_day_rate", &cfg.HGVDayRate)
			decAttr(attrs, "hgv_per_km", &cfg.HGVPerKm)
		}
	}

	return nil
}

func attrValue(attrs hcl.Attributes, name string) (cty.Value, bool) {
	attr, ok := attrs[name]
	if !ok {
		return cty.NilVal, false
	}
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() || !v.IsKnown() || v.IsNull() {
		return cty.NilVal, false
	}
	return v, true
}

func attrString(attrs hcl.Attributes, name string) (string, bool) {
	v, ok := attrValue(attrs, name)
	if !ok || v.Type() != cty.String {
		return "", false
	}
	return v.AsString(), true
}

func attrFloat(attrs hcl.Attributes, name string) (float64, bool) {
	v, ok := attrValue(attrs, name)
	if !ok || v.Type() != cty.Number {
		return 0, false
	}
	f, _ := v.AsBigFloat().Float64()
	return f, true
}

func floatAttr(attrs hcl.Attributes, name string, dst *float64) {
	if f, ok := attrFloat(attrs, name); ok {
		*dst = f
	}
}

func decAttr(attrs hcl.Attributes, name string, dst *decimal.Decimal) {
	if f, ok := attrFloat(attrs, name); ok {
		*dst = decimal.NewFromFloat(f)
	}
}
