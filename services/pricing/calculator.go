package pricing

import (
	"fmt"

	"earec/models"
)

// ComputeBreakdown evaluates a configuration against the catalog and returns
// the full line-item breakdown. Pure and deterministic; the additive order is
// service base, social real-time add-on, drone add-on, travel fee.
//
// Negative hours or quantity reaching the calculator is a bug in the caller
// (the configuration reducer is the sole producer of these fields), so it is
// rejected outright rather than clamped.
func ComputeBreakdown(cfg models.QuoteConfiguration, catalog *Catalog, pricePerKm float64) (models.PriceBreakdown, error) {
	if cfg.Hours < 0 || cfg.Quantity < 0 {
		return models.PriceBreakdown{}, fmt.Errorf("invalid configuration: hours=%d quantity=%d", cfg.Hours, cfg.Quantity)
	}

	entry, err := catalog.Entry(cfg.Category, cfg.ServiceID)
	if err != nil {
		return models.PriceBreakdown{}, err
	}

	var breakdown models.PriceBreakdown

	// 1. Service base. Only the field the rule shape consumes is read.
	units := 0
	switch {
	case entry.ConsumesHours:
		units = cfg.Hours
	case entry.ConsumesQuantity:
		units = cfg.Quantity
	}
	breakdown.Items = append(breakdown.Items, models.LineItem{
		Label:  entry.Label,
		Amount: entry.Rule.Amount(units),
	})

	// 2. Same-day real-time delivery, social only.
	if cfg.Category == models.CategorySocial && cfg.AddRealTime {
		breakdown.Items = append(breakdown.Items, models.LineItem{
			Label:  "Fotos Real Time",
			Amount: RealTimeSurcharge,
		})
	}

	// 3. Drone add-on. Skipped for video_production, where drone is already a
	// selectable service, so it can never be charged twice. Custom projects
	// are priced on request and take no add-ons.
	if cfg.AddDrone && cfg.Category != models.CategoryVideoProduction && cfg.Category != models.CategoryCustom {
		breakdown.Items = append(breakdown.Items, models.LineItem{
			Label:  "Drone (Imagens Aéreas)",
			Amount: DroneSurcharge,
		})
	}

	// 4. Round-trip travel fee, unless the category is travel-exempt.
	if cfg.DistanceKm > 0 && !IsTravelExempt(cfg.Category) {
		breakdown.Items = append(breakdown.Items, models.LineItem{
			Label:  fmt.Sprintf("Deslocamento (%d km x 2)", cfg.DistanceKm),
			Amount: float64(cfg.DistanceKm) * 2 * pricePerKm,
		})
	}

	for _, item := range breakdown.Items {
		breakdown.Total += item.Amount
	}
	return breakdown, nil
}
