package models

import "time"

// SessionState tracks where a quote session is in the journey.
type SessionState string

const (
	StateConfiguring SessionState = "configuring"
	StateSummary     SessionState = "summary"
	StateSigned      SessionState = "signed"
)

// QuoteDocument is the letterhead of the proposal: reference number, validity
// window and the document-level price scalars the admin dashboard edits.
type QuoteDocument struct {
	Reference  string         `json:"reference"`
	IssuedAt   time.Time      `json:"issuedAt"`
	ValidUntil time.Time      `json:"validUntil"`
	PricePerKm float64        `json:"pricePerKm"`
	Scalars    PriceOverrides `json:"scalars"`
}

// QuoteSession holds everything between the welcome form and the signed quote.
type QuoteSession struct {
	SessionID string             `json:"sessionId"`
	Client    ClientData         `json:"client"`
	Document  QuoteDocument      `json:"document"`
	Config    QuoteConfiguration `json:"config"`
	Breakdown PriceBreakdown     `json:"breakdown"`
	State     SessionState       `json:"state"`

	// DistanceSeq stamps distance resolutions so a slow lookup for an old
	// address cannot overwrite a newer result.
	DistanceSeq int64 `json:"distanceSeq"`

	// Signature is the opaque data-URI approval artifact; set once on signing.
	Signature string     `json:"signature,omitempty"`
	SignedAt  *time.Time `json:"signedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ConfigUpdate is a partial mutation of a session's configuration. Deltas are
// in stepper presses; the reducer owns step sizes and floors.
type ConfigUpdate struct {
	Category      *ServiceCategory `json:"category,omitempty"`
	ServiceID     *ServiceID       `json:"serviceId,omitempty"`
	HoursDelta    *int             `json:"hoursDelta,omitempty"`
	QuantityDelta *int             `json:"quantityDelta,omitempty"`
	AddDrone      *bool            `json:"addDrone,omitempty"`
	AddRealTime   *bool            `json:"addRealTime,omitempty"`
}
