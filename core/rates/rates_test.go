package rates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"artquote/core/types"
)

func TestZoneForCountryMatch(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		city, country string
		want          Zone
	}{
		{"Paris", "France", ZoneFrance},
		{"Lyon", "FRANCE", ZoneFrance},
		{"Berlin", "Germany", ZoneEuropeWest},
		{"Warsaw", " Poland ", ZoneEuropeEast},
		{"Tokyo", "Japan", ZoneAsia},
		{"Dubai", "United Arab Emirates", ZoneMiddleEast},
	}

	for _, tt := range tests {
		if got := table.ZoneFor(tt.city, tt.country); got != tt.want {
			t.Errorf("ZoneFor(%q, %q) = %s, want %s", tt.city, tt.country, got, tt.want)
		}
	}
}

func TestZoneForCityTakesPrecedence(t *testing.T) {
	table := DefaultTable()
	// "New York" is listed as a city even when the country is free text.
	if got := table.ZoneFor("New York", "somewhere"); got != ZoneNorthAmerica {
		t.Errorf("ZoneFor(New York) = %s, want %s", got, ZoneNorthAmerica)
	}
}

func TestZoneForUnknownFallsBackToDefault(t *testing.T) {
	table := DefaultTable()
	if got := table.ZoneFor("Atlantis", "Oceania"); got != table.DefaultZone {
		t.Errorf("unknown location resolved to %s, want default %s", got, table.DefaultZone)
	}
	if got := table.ZoneFor("", ""); got != table.DefaultZone {
		t.Errorf("empty location resolved to %s, want default %s", got, table.DefaultZone)
	}
}

func TestHotelRateCategories(t *testing.T) {
	table := DefaultTable()
	base := table.HotelRate(ZoneFrance, types.HotelStandard)
	if !base.Equal(decimal.NewFromInt(110)) {
		t.Fatalf("standard rate = %s, want 110", base)
	}

	comfort := table.HotelRate(ZoneFrance, types.HotelComfort)
	if !comfort.Equal(decimal.NewFromFloat(137.5)) {
		t.Errorf("comfort rate = %s, want 137.5", comfort)
	}

	premium := table.HotelRate(ZoneFrance, types.HotelPremium)
	if !premium.Equal(decimal.NewFromInt(176)) {
		t.Errorf("premium rate = %s, want 176", premium)
	}

	// Unknown category behaves as STANDARD.
	if got := table.HotelRate(ZoneFrance, types.HotelCategory("SUITE")); !got.Equal(base) {
		t.Errorf("unknown category rate = %s, want %s", got, base)
	}
}

func TestPerDiemUnknownZoneUsesDefault(t *testing.T) {
	table := DefaultTable()
	want := table.PerDiem(table.DefaultZone)
	if got := table.PerDiem(Zone("NOWHERE")); !got.Equal(want) {
		t.Errorf("PerDiem(NOWHERE) = %s, want %s", got, want)
	}
}

func TestLoadHCLReplacesTable(t *testing.T) {
	table, err := LoadHCL(filepath.Join("..", "pricing", "testdata", "pricing.hcl"))
	if err != nil {
		t.Fatalf("LoadHCL: %v", err)
	}

	if table.DefaultZone != ZoneEuropeWest {
		t.Errorf("default zone = %s", table.DefaultZone)
	}
	if len(table.Zones) != 2 {
		t.Fatalf("zone count = %d, want 2", len(table.Zones))
	}

	if got := table.ZoneFor("", "France"); got != ZoneFrance {
		t.Errorf("ZoneFor(France) = %s", got)
	}
	if pd := table.PerDiem(ZoneFrance); !pd.Equal(decimal.NewFromInt(58)) {
		t.Errorf("per diem = %s, want 58", pd)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadHCLWithoutZonesBlockKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing-only.hcl")
	writeFile(t, path, "pricing {\n  version = \"x\"\n}\n")

	table, err := LoadHCL(path)
	if err != nil {
		t.Fatalf("LoadHCL: %v", err)
	}
	if len(table.Zones) != len(DefaultTable().Zones) {
		t.Errorf("expected default table, got %d zones", len(table.Zones))
	}
}
