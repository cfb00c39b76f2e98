package quote

import (
	"fmt"

	"earec/models"
	"earec/services/pricing"
)

// Stepper behavior for the two adjustable counters.
const (
	hoursFloor   = 2
	hoursStep    = 1
	defaultHours = 2

	quantityFloor   = 0
	quantityStep    = 5
	defaultQuantity = 10
)

// NewConfiguration returns the configuration a category opens on.
func NewConfiguration(catalog *pricing.Catalog, cat models.ServiceCategory) (models.QuoteConfiguration, error) {
	id, err := catalog.DefaultService(cat)
	if err != nil {
		return models.QuoteConfiguration{}, err
	}
	return models.QuoteConfiguration{
		Category:  cat,
		ServiceID: id,
		Hours:     defaultHours,
		Quantity:  defaultQuantity,
	}, nil
}

// ApplyUpdate folds a partial mutation into a configuration and returns the
// full next state. Every transition is a pure reducer: switching category
// resets the service to the category default and returns hours, quantity and
// both add-on flags to their defaults, so stale values from one service can
// never leak into another service's price formula. Resolved distance is a
// property of the client's address, not the category, and survives.
func ApplyUpdate(catalog *pricing.Catalog, cfg models.QuoteConfiguration, update models.ConfigUpdate) (models.QuoteConfiguration, error) {
	next := cfg

	if update.Category != nil && *update.Category != cfg.Category {
		fresh, err := NewConfiguration(catalog, *update.Category)
		if err != nil {
			return cfg, err
		}
		fresh.DistanceKm = cfg.DistanceKm
		next = fresh
	}

	if update.ServiceID != nil {
		// Reject ids from other categories outright.
		if _, err := catalog.Entry(next.Category, *update.ServiceID); err != nil {
			return cfg, err
		}
		next.ServiceID = *update.ServiceID
	}

	if update.HoursDelta != nil {
		next.Hours = clampStep(next.Hours, *update.HoursDelta, hoursStep, hoursFloor)
	}
	if update.QuantityDelta != nil {
		next.Quantity = clampStep(next.Quantity, *update.QuantityDelta, quantityStep, quantityFloor)
	}

	if update.AddDrone != nil {
		next.AddDrone = *update.AddDrone
	}
	if update.AddRealTime != nil {
		if *update.AddRealTime && next.Category != models.CategorySocial {
			return cfg, fmt.Errorf("real-time delivery is only offered for social services")
		}
		next.AddRealTime = *update.AddRealTime
	}

	return next, nil
}

// clampStep applies presses of a stepper, clamped at the floor. There is no
// upper bound.
func clampStep(current, presses, step, floor int) int {
	value := current + presses*step
	if value < floor {
		return floor
	}
	return value
}
