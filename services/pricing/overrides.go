package pricing

import (
	"fmt"
	"sync"

	"earec/models"
)

// DefaultOverrides are the scalars the quote document opens with.
func DefaultOverrides() models.PriceOverrides {
	return models.PriceOverrides{
		BasePrice:      5000, // mobilization minimum
		StudioFee:      2500,
		PhotoUnitPrice: 150,
		VideoUnitPrice: 1200,
	}
}

// OverrideStore owns the admin-editable price scalars for the lifetime of the
// process. It is seeded from defaults at startup, mutated only through the
// gated admin flow and never persisted.
type OverrideStore struct {
	mu     sync.RWMutex
	values models.PriceOverrides
}

func NewOverrideStore(initial models.PriceOverrides) *OverrideStore {
	return &OverrideStore{values: initial}
}

// Snapshot returns a copy of the current scalars.
func (s *OverrideStore) Snapshot() models.PriceOverrides {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

// Update replaces all four scalars at once. Partial updates are not offered:
// the admin form always submits the full set.
func (s *OverrideStore) Update(values models.PriceOverrides) error {
	if values.BasePrice < 0 || values.StudioFee < 0 || values.PhotoUnitPrice < 0 || values.VideoUnitPrice < 0 {
		return fmt.Errorf("price overrides must be non-negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
	return nil
}
