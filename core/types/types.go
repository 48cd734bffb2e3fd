// Package types defines the domain model shared by all engine packages.
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// CrateType classifies a crating specification
type CrateType string

const (
	// CrateT1 is the standard gallery-grade crate
	CrateT1 CrateType = "T1"

	// CrateT2 is the museum-grade crate for oversized or high-risk works
	CrateT2 CrateType = "T2"
)

// String returns the string representation
func (t CrateType) String() string {
	return string(t)
}

// VehicleType classifies the transport vehicle
type VehicleType string

const (
	// VehicleTruck20M3 is the 20 m3 box truck, costed at a flat day rate.
	// The literal value is a display contract consumed downstream.
	VehicleTruck20M3 VehicleType = "CAMION_20M3"

	// VehicleSemiTrailer is the heavy-goods vehicle with a per-km surcharge
	VehicleSemiTrailer VehicleType = "SEMI_REMORQUE"
)

// String returns the string representation
func (v VehicleType) String() string {
	return string(v)
}
