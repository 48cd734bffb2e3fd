// Package types - Logistics flow and quote line models
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlowType is the transport mode of a flow
type FlowType string

const (
	FlowRoad   FlowType = "ROAD"
	FlowRoadEU FlowType = "ROAD_EU"
	FlowAir    FlowType = "AIR"
	FlowSea    FlowType = "SEA"
)

// FlowStatus tracks the commercial lifecycle of a flow
type FlowStatus string

const (
	FlowPendingQuote FlowStatus = "PENDING_QUOTE"
	FlowValidated    FlowStatus = "VALIDATED"
	FlowInTransit    FlowStatus = "IN_TRANSIT"
	FlowDelivered    FlowStatus = "DELIVERED"
)

// LogisticsFlow is one transport leg of a project.
// The engine reads it for routing inputs and never writes to it;
// cost results are attached externally as QuoteLines.
type LogisticsFlow struct {
	// ID identifies the flow in the owning project
	ID string `json:"id"`

	// Label is a display name
	Label string `json:"label,omitempty"`

	// Type is the transport mode
	Type FlowType `json:"type"`

	// Status is the commercial status
	Status FlowStatus `json:"status"`

	// Origin and destination
	OriginCity         string `json:"origin_city"`
	OriginCountry      string `json:"origin_country"`
	DestinationCity    string `json:"destination_city"`
	DestinationCountry string `json:"destination_country"`

	// Pickup and delivery dates
	PickupDate   *time.Time `json:"pickup_date,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
}

// QuoteLine is one costed line item tied to a flow
type QuoteLine struct {
	// ID identifies the line
	ID string `json:"id"`

	// FlowID ties the line to a flow
	FlowID string `json:"flow_id"`

	// AgentID optionally ties the line to a subcontracting agent
	AgentID string `json:"agent_id,omitempty"`

	// Label describes the service
	Label string `json:"label,omitempty"`

	// TotalPrice is the line cost
	TotalPrice decimal.Decimal `json:"total_price"`
}
