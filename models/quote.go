package models

// ClientData is collected once on the welcome screen and is immutable input to
// pricing; only Location feeds the distance resolver.
type ClientData struct {
	Name         string `json:"name" binding:"required"`
	Location     string `json:"location"`
	Date         string `json:"date"`
	Contact      string `json:"contact"`
	Company      string `json:"company,omitempty"`
	ProjectTitle string `json:"projectTitle,omitempty"`
}

// QuoteConfiguration holds the client's current selections. Hours only applies
// to the hourly social services, Quantity only to the counted services; the
// calculator is the authority on which fields a service consumes.
type QuoteConfiguration struct {
	Category    ServiceCategory `json:"category"`
	ServiceID   ServiceID       `json:"serviceId"`
	Hours       int             `json:"hours"`
	Quantity    int             `json:"quantity"`
	AddDrone    bool            `json:"addDrone"`
	AddRealTime bool            `json:"addRealTime"`
	DistanceKm  int             `json:"distanceKm"`
}

// LineItem is one contributing charge within a breakdown.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PriceBreakdown is a pure projection of a configuration: recomputed on every
// change, never stored as a source of truth.
type PriceBreakdown struct {
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
}

// PriceOverrides are the four catalog scalars the admin dashboard can edit.
// Process-lifetime only, discarded on restart.
type PriceOverrides struct {
	BasePrice      float64 `json:"basePrice"`
	StudioFee      float64 `json:"studioFee"`
	PhotoUnitPrice float64 `json:"photoUnitPrice"`
	VideoUnitPrice float64 `json:"videoUnitPrice"`
}
