// Package rates - HCL zone table loader
// Zone tables live in the same HCL file as the pricing table; this
// loader only reads the zones block and ignores the rest.
package rates

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"artquote/internal/errors"
)

var zonesFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "zones"},
	},
}

var zonesBlockSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "default"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "zone", LabelNames: []string{"name"}},
	},
}

// LoadHCL reads a zone table from an HCL file. A file without a zones
// block yields the default table, so pricing-only files stay valid.
func LoadHCL(path string) (Table, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return DefaultTable(), errors.Config("read zone file", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return DefaultTable(), errors.Pricing("parse zone file", fmt.Errorf("%s", diags.Error()))
	}

	content, _, diags := file.Body.PartialContent(zonesFileSchema)
	if diags.HasErrors() {
		return DefaultTable(), errors.Pricing("decode zone file", fmt.Errorf("%s", diags.Error()))
	}

	if len(content.Blocks) == 0 {
		return DefaultTable(), nil
	}

	// A zones block replaces the default table entirely; the default
	// zone name still falls back when the block omits it.
	table := Table{DefaultZone: DefaultTable().DefaultZone}

	for _, block := range content.Blocks {
		if err := decodeZonesBlock(block.Body, &table); err != nil {
			return DefaultTable(), err
		}
	}

	return table, nil
}

func decodeZonesBlock(body hcl.Body, table *Table) error {
	content, _, diags := body.PartialContent(zonesBlockSchema)
	if diags.HasErrors() {
		return errors.Pricing("decode zones block", fmt.Errorf("%s", diags.Error()))
	}

	if attr, ok := content.Attributes["default"]; ok {
		v, diags := attr.Expr.Value(nil)
		if !diags.HasErrors() && v.Type() == cty.String {
			table.DefaultZone = Zone(v.AsString())
		}
	}

	for _, block := range content.Blocks {
		if block.Type != "zone" || len(block.Labels) != 1 {
			continue
		}

		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return errors.Pricing("decode zone "+block.Labels[0], fmt.Errorf("%s", diags.Error()))
		}

		zr := ZoneRates{Zone: Zone(block.Labels[0])}
		zr.Countries = stringListAttr(attrs, "countries")
		zr.Cities = stringListAttr(attrs, "cities")
		zr.PerDiem = decimalAttr(attrs, "per_diem")
		zr.HotelRate = decimalAttr(attrs, "hotel_rate")

		table.Zones = append(table.Zones, zr)
	}

	return nil
}

func stringListAttr(attrs hcl.Attributes, name string) []string {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() || !v.IsKnown() || v.IsNull() || !v.CanIterateElements() {
		return nil
	}

	var out []string
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.Type() == cty.String && !ev.IsNull() {
			out = append(out, ev.AsString())
		}
	}
	return out
}

func decimalAttr(attrs hcl.Attributes, name string) decimal.Decimal {
	attr, ok := attrs[name]
	if !ok {
		return decimal.Zero
	}
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() || !v.IsKnown() || v.IsNull() || v.Type() != cty.Number {
		return decimal.Zero
	}
	f, _ := v.AsBigFloat().Float64()
	return decimal.NewFromFloat(f)
}
