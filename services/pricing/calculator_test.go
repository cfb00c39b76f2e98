package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"earec/models"
)

const testPricePerKm = 2.0

func compute(t *testing.T, cfg models.QuoteConfiguration) models.PriceBreakdown {
	t.Helper()
	breakdown, err := ComputeBreakdown(cfg, DefaultCatalog(), testPricePerKm)
	require.NoError(t, err)
	return breakdown
}

func TestComputeBreakdown_BirthdayIncludedHours(t *testing.T) {
	breakdown := compute(t, models.QuoteConfiguration{
		Category:  models.CategorySocial,
		ServiceID: models.ServiceBirthday,
		Hours:     2,
	})

	assert.Equal(t, 400.0, breakdown.Total)
	assert.Len(t, breakdown.Items, 1)
}

func TestComputeBreakdown_BirthdayOvertime(t *testing.T) {
	breakdown := compute(t, models.QuoteConfiguration{
		Category:  models.CategorySocial,
		ServiceID: models.ServiceBirthday,
		Hours:     5,
	})

	assert.Equal(t, 400.0+3*250, breakdown.Total)
}

func TestComputeBreakdown_CommercialCombo(t *testing.T) {
	breakdown := compute(t, models.QuoteConfiguration{
		Category:  models.CategoryCommercial,
		ServiceID: models.ServiceCommCombo,
		Quantity:  20,
	})

	assert.Equal(t, 500.0+20*20, breakdown.Total)
}

func TestComputeBreakdown_StudioIsTravelExempt(t *testing.T) {
	breakdown := compute(t, models.QuoteConfiguration{
		Category:   models.CategoryStudio,
		ServiceID:  models.ServiceStudioPhoto,
		Quantity:   30,
		DistanceKm: 50,
	})

	assert.Equal(t, 30*25.0, breakdown.Total, "studio sessions never charge travel")
	for _, item := range breakdown.Items {
		assert.NotContains(t, item.Label, "Deslocamento")
	}
}

func TestComputeBreakdown_WeddingEssenceWithRealTimeAndTravel(t *testing.T) {
	breakdown := compute(t, models.QuoteConfiguration{
		Category:    models.CategorySocial,
		ServiceID:   models.ServiceWeddingEssence,
		Hours:       2,
		AddRealTime: true,
		DistanceKm:  20,
	})

	// 1750 base + 600 real time + 20km round trip at 2/km.
	assert.Equal(t, 1750.0+600+20*2*2, breakdown.Total)
}

func TestComputeBreakdown_TravelExemptForCustom(t *testing.T) {
	breakdown := compute(t, models.QuoteConfiguration{
		Category:   models.CategoryCustom,
		ServiceID:  models.ServiceCustomProject,
		DistanceKm: 120,
	})

	assert.Equal(t, 0.0, breakdown.Total, "custom projects are priced on request")
}

func TestComputeBreakdown_DroneNeverChargedTwice(t *testing.T) {
	// Drone selected as the video production service AND the generic add-on
	// flag toggled: the surcharge must not stack on the service price.
	breakdown := compute(t, models.QuoteConfiguration{
		Category:  models.CategoryVideoProduction,
		ServiceID: models.ServiceDrone,
		AddDrone:  true,
	})

	assert.Equal(t, 250.0, breakdown.Total)
	assert.Len(t, breakdown.Items, 1)
}

func TestComputeBreakdown_DroneAddOnOutsideVideoProduction(t *testing.T) {
	breakdown := compute(t, models.QuoteConfiguration{
		Category:  models.CategorySocial,
		ServiceID: models.ServiceGraduation,
		AddDrone:  true,
	})

	assert.Equal(t, 800.0+250, breakdown.Total)
}

func TestComputeBreakdown_RealTimeOnlyCountsForSocial(t *testing.T) {
	// The reducer rejects the flag outside social, but the calculator must
	// also ignore it if it ever arrives.
	breakdown := compute(t, models.QuoteConfiguration{
		Category:    models.CategoryCommercial,
		ServiceID:   models.ServiceCommVideo,
		AddRealTime: true,
	})

	assert.Equal(t, 500.0, breakdown.Total)
}

func TestComputeBreakdown_StaleFieldsAreIgnored(t *testing.T) {
	// A fixed-price service must not read a leftover quantity or hours value.
	breakdown := compute(t, models.QuoteConfiguration{
		Category:  models.CategorySocial,
		ServiceID: models.ServiceWeddingBase,
		Hours:     9,
		Quantity:  45,
	})

	assert.Equal(t, 650.0, breakdown.Total)
}

func TestComputeBreakdown_RejectsNegativeCounters(t *testing.T) {
	_, err := ComputeBreakdown(models.QuoteConfiguration{
		Category:  models.CategorySocial,
		ServiceID: models.ServiceBirthday,
		Hours:     -1,
	}, DefaultCatalog(), testPricePerKm)
	assert.Error(t, err)

	_, err = ComputeBreakdown(models.QuoteConfiguration{
		Category:  models.CategoryCommercial,
		ServiceID: models.ServiceCommPhoto,
		Quantity:  -5,
	}, DefaultCatalog(), testPricePerKm)
	assert.Error(t, err)
}

func TestComputeBreakdown_RejectsForeignService(t *testing.T) {
	_, err := ComputeBreakdown(models.QuoteConfiguration{
		Category:  models.CategoryStudio,
		ServiceID: models.ServiceBirthday,
	}, DefaultCatalog(), testPricePerKm)
	assert.Error(t, err)
}

func TestComputeBreakdown_TravelFeeAppliesRoundTrip(t *testing.T) {
	breakdown := compute(t, models.QuoteConfiguration{
		Category:   models.CategoryCommercial,
		ServiceID:  models.ServiceCommVideo,
		DistanceKm: 73,
	})

	assert.Equal(t, 500.0+73*2*testPricePerKm, breakdown.Total)
}
