package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"earec/models"
	"earec/services/pricing"
)

func ptrCategory(c models.ServiceCategory) *models.ServiceCategory { return &c }
func ptrService(s models.ServiceID) *models.ServiceID              { return &s }
func ptrInt(i int) *int                                            { return &i }
func ptrBool(b bool) *bool                                         { return &b }

func TestNewConfiguration_CategoryDefaults(t *testing.T) {
	catalog := pricing.DefaultCatalog()

	expected := map[models.ServiceCategory]models.ServiceID{
		models.CategorySocial:          models.ServiceBirthday,
		models.CategoryCommercial:      models.ServiceCommPhoto,
		models.CategoryStudio:          models.ServiceStudioPhoto,
		models.CategoryVideoProduction: models.ServiceEditOnly,
		models.CategoryCustom:          models.ServiceCustomProject,
	}
	for cat, wantID := range expected {
		cfg, err := NewConfiguration(catalog, cat)
		require.NoError(t, err)
		assert.Equal(t, wantID, cfg.ServiceID)
		assert.Equal(t, 2, cfg.Hours)
		assert.Equal(t, 10, cfg.Quantity)
		assert.False(t, cfg.AddDrone)
		assert.False(t, cfg.AddRealTime)
	}
}

func TestApplyUpdate_CategoryChangeResetsEverything(t *testing.T) {
	catalog := pricing.DefaultCatalog()

	dirty := models.QuoteConfiguration{
		Category:    models.CategorySocial,
		ServiceID:   models.ServiceFifteen,
		Hours:       7,
		Quantity:    40,
		AddDrone:    true,
		AddRealTime: true,
		DistanceKm:  35,
	}

	for _, cat := range models.Categories() {
		if cat == dirty.Category {
			continue
		}
		next, err := ApplyUpdate(catalog, dirty, models.ConfigUpdate{Category: ptrCategory(cat)})
		require.NoError(t, err)

		wantID, _ := catalog.DefaultService(cat)
		assert.Equal(t, wantID, next.ServiceID)
		assert.Equal(t, 2, next.Hours)
		assert.Equal(t, 10, next.Quantity)
		assert.False(t, next.AddRealTime)
		assert.False(t, next.AddDrone, "drone add-on must not survive a category switch")
		assert.Equal(t, 35, next.DistanceKm, "distance belongs to the address, not the category")
	}
}

func TestApplyUpdate_SameCategoryIsNotAReset(t *testing.T) {
	catalog := pricing.DefaultCatalog()

	cfg := models.QuoteConfiguration{
		Category:  models.CategorySocial,
		ServiceID: models.ServiceFifteen,
		Hours:     6,
		Quantity:  10,
	}
	next, err := ApplyUpdate(catalog, cfg, models.ConfigUpdate{Category: ptrCategory(models.CategorySocial)})
	require.NoError(t, err)
	assert.Equal(t, cfg, next)
}

func TestApplyUpdate_ServiceChangeKeepsFields(t *testing.T) {
	catalog := pricing.DefaultCatalog()

	cfg := models.QuoteConfiguration{
		Category:  models.CategorySocial,
		ServiceID: models.ServiceBirthday,
		Hours:     5,
		Quantity:  10,
	}
	next, err := ApplyUpdate(catalog, cfg, models.ConfigUpdate{ServiceID: ptrService(models.ServiceWeddingBase)})
	require.NoError(t, err)
	assert.Equal(t, models.ServiceWeddingBase, next.ServiceID)
	assert.Equal(t, 5, next.Hours, "switching service within a category resets nothing")
}

func TestApplyUpdate_RejectsForeignService(t *testing.T) {
	catalog := pricing.DefaultCatalog()

	cfg := models.QuoteConfiguration{
		Category:  models.CategoryStudio,
		ServiceID: models.ServiceStudioPhoto,
	}
	_, err := ApplyUpdate(catalog, cfg, models.ConfigUpdate{ServiceID: ptrService(models.ServiceBirthday)})
	assert.Error(t, err)
}

func TestApplyUpdate_HoursStepper(t *testing.T) {
	catalog := pricing.DefaultCatalog()

	cfg, err := NewConfiguration(catalog, models.CategorySocial)
	require.NoError(t, err)

	next, err := ApplyUpdate(catalog, cfg, models.ConfigUpdate{HoursDelta: ptrInt(3)})
	require.NoError(t, err)
	assert.Equal(t, 5, next.Hours)

	// Clamped at the included minimum, never below.
	next, err = ApplyUpdate(catalog, next, models.ConfigUpdate{HoursDelta: ptrInt(-10)})
	require.NoError(t, err)
	assert.Equal(t, 2, next.Hours)
}

func TestApplyUpdate_QuantityStepper(t *testing.T) {
	catalog := pricing.DefaultCatalog()

	cfg, err := NewConfiguration(catalog, models.CategoryCommercial)
	require.NoError(t, err)

	next, err := ApplyUpdate(catalog, cfg, models.ConfigUpdate{QuantityDelta: ptrInt(2)})
	require.NoError(t, err)
	assert.Equal(t, 20, next.Quantity)

	next, err = ApplyUpdate(catalog, next, models.ConfigUpdate{QuantityDelta: ptrInt(-10)})
	require.NoError(t, err)
	assert.Equal(t, 0, next.Quantity, "quantity floors at zero")
}

func TestApplyUpdate_RealTimeOnlyForSocial(t *testing.T) {
	catalog := pricing.DefaultCatalog()

	cfg, err := NewConfiguration(catalog, models.CategoryCommercial)
	require.NoError(t, err)

	_, err = ApplyUpdate(catalog, cfg, models.ConfigUpdate{AddRealTime: ptrBool(true)})
	assert.Error(t, err)

	social, err := NewConfiguration(catalog, models.CategorySocial)
	require.NoError(t, err)
	next, err := ApplyUpdate(catalog, social, models.ConfigUpdate{AddRealTime: ptrBool(true)})
	require.NoError(t, err)
	assert.True(t, next.AddRealTime)
}

func TestApplyUpdate_CategoryAndServiceInOneCall(t *testing.T) {
	catalog := pricing.DefaultCatalog()

	cfg, err := NewConfiguration(catalog, models.CategorySocial)
	require.NoError(t, err)

	next, err := ApplyUpdate(catalog, cfg, models.ConfigUpdate{
		Category:  ptrCategory(models.CategoryCommercial),
		ServiceID: ptrService(models.ServiceCommCombo),
	})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryCommercial, next.Category)
	assert.Equal(t, models.ServiceCommCombo, next.ServiceID)
	assert.Equal(t, 10, next.Quantity)
}
