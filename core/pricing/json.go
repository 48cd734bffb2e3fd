// Package pricing - JSON pricing table serialization
// The JSON field set is the boundary contract: every field keeps its unit
// (€/m², €/m³, €/h, mm) because the formulas assume them.
package pricing

import (
	"encoding/json"
	"os"

	"artquote/internal/errors"
)

// LoadJSON reads a pricing table from a JSON file. Absent fields keep
// their defaults, mirroring LoadHCL.
func LoadJSON(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Config("read pricing file", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Pricing("decode pricing file", err)
	}

	return cfg, nil
}

// SaveJSON writes the table to a JSON file
func (c Config) SaveJSON(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Internal("encode pricing table", err)
	}
	return os.WriteFile(path, data, 0644)
}
