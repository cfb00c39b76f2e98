package pricing

import (
	"fmt"

	"earec/models"
)

// Fixed add-on surcharges.
const (
	RealTimeSurcharge = 600.0 // same-day photo delivery, social only
	DroneSurcharge    = 250.0 // aerial footage added to a non-drone service
)

// Entry binds one sellable service to its pricing rule and declares which
// configuration fields the rule consumes. The flags are the single source of
// truth for field relevance: a stale quantity can never leak into a service
// whose entry does not consume it.
type Entry struct {
	Label            string
	Rule             Rule
	ConsumesHours    bool
	ConsumesQuantity bool
}

// Catalog is the static rule table for every service, keyed category first.
type Catalog struct {
	entries  map[models.ServiceCategory]map[models.ServiceID]Entry
	defaults map[models.ServiceCategory]models.ServiceID
}

// DefaultCatalog builds the current price table.
func DefaultCatalog() *Catalog {
	return &Catalog{
		entries: map[models.ServiceCategory]map[models.ServiceID]Entry{
			models.CategorySocial: {
				models.ServiceBirthday:       {Label: "Chá Revelação / Aniversário", Rule: TieredDuration{Base: 400, IncludedUnits: 2, OverageUnitPrice: 250}, ConsumesHours: true},
				models.ServiceFifteen:        {Label: "15 Anos", Rule: TieredDuration{Base: 400, IncludedUnits: 2, OverageUnitPrice: 250}, ConsumesHours: true},
				models.ServiceGraduation:     {Label: "Formatura", Rule: Fixed{Price: 800}},
				models.ServiceWeddingBase:    {Label: "Casamento (Base)", Rule: Fixed{Price: 650}},
				models.ServiceWeddingClassic: {Label: "Pacote Clássico (Pre + Casamento)", Rule: Fixed{Price: 900}},
				models.ServiceWeddingRomance: {Label: "Pacote Romance (Pre + MkOff + Casamento)", Rule: Fixed{Price: 1150}},
				models.ServiceWeddingEssence: {Label: "Pacote Essência (Completo + Vídeo)", Rule: Fixed{Price: 1750}},
			},
			models.CategoryCommercial: {
				models.ServiceCommPhoto: {Label: "Comércio (Fotos)", Rule: PerUnit{UnitPrice: 20}, ConsumesQuantity: true},
				models.ServiceCommVideo: {Label: "Comércio (Vídeo)", Rule: Fixed{Price: 500}},
				models.ServiceCommCombo: {Label: "Comércio (Foto + Vídeo)", Rule: ComboUnit{FixedComponent: 500, UnitPrice: 20}, ConsumesQuantity: true},
			},
			models.CategoryStudio: {
				models.ServiceStudioPhoto: {Label: "Estúdio (Fotos)", Rule: PerUnit{UnitPrice: 25}, ConsumesQuantity: true},
				models.ServiceStudioVideo: {Label: "Estúdio (Vídeo 2h)", Rule: Fixed{Price: 350}},
			},
			models.CategoryVideoProduction: {
				models.ServiceEditOnly:  {Label: "Apenas Edição", Rule: PerUnit{UnitPrice: 250}, ConsumesQuantity: true},
				models.ServiceCamCap:    {Label: "Captação Câmera", Rule: Fixed{Price: 350}},
				models.ServiceMobileCap: {Label: "Captação Celular", Rule: Fixed{Price: 250}},
				models.ServiceDrone:     {Label: "Drone (Imagens Aéreas)", Rule: Fixed{Price: 250}},
			},
			models.CategoryCustom: {
				// Price on request; quoted as zero.
				models.ServiceCustomProject: {Label: "Projeto Personalizado", Rule: Fixed{Price: 0}},
			},
		},
		defaults: map[models.ServiceCategory]models.ServiceID{
			models.CategorySocial:          models.ServiceBirthday,
			models.CategoryCommercial:      models.ServiceCommPhoto,
			models.CategoryStudio:          models.ServiceStudioPhoto,
			models.CategoryVideoProduction: models.ServiceEditOnly,
			models.CategoryCustom:          models.ServiceCustomProject,
		},
	}
}

// Entry resolves the rule-table entry for a category/service pair.
func (c *Catalog) Entry(cat models.ServiceCategory, id models.ServiceID) (Entry, error) {
	services, ok := c.entries[cat]
	if !ok {
		return Entry{}, fmt.Errorf("unknown service category %q", cat)
	}
	entry, ok := services[id]
	if !ok {
		return Entry{}, fmt.Errorf("service %q does not belong to category %q", id, cat)
	}
	return entry, nil
}

// DefaultService returns the canonical service a category opens on.
func (c *Catalog) DefaultService(cat models.ServiceCategory) (models.ServiceID, error) {
	id, ok := c.defaults[cat]
	if !ok {
		return "", fmt.Errorf("unknown service category %q", cat)
	}
	return id, nil
}

// Services returns the entries of one category for listing.
func (c *Catalog) Services(cat models.ServiceCategory) map[models.ServiceID]Entry {
	return c.entries[cat]
}

// IsTravelExempt reports whether a category never charges a travel fee,
// regardless of resolved distance.
func IsTravelExempt(cat models.ServiceCategory) bool {
	return cat == models.CategoryStudio || cat == models.CategoryCustom
}
