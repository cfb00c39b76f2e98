package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"earec/models"
	"earec/services/pricing"
	"earec/utils"
)

// CatalogHandler lists the sellable services so the selector UI can render
// itself without hardcoding the table.
type CatalogHandler struct {
	Catalog *pricing.Catalog
}

func NewCatalogHandler(catalog *pricing.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

type catalogService struct {
	ID               models.ServiceID `json:"id"`
	Label            string           `json:"label"`
	ConsumesHours    bool             `json:"consumesHours"`
	ConsumesQuantity bool             `json:"consumesQuantity"`
}

type catalogCategory struct {
	Category       models.ServiceCategory `json:"category"`
	DefaultService models.ServiceID       `json:"defaultService"`
	TravelExempt   bool                   `json:"travelExempt"`
	Services       []catalogService       `json:"services"`
}

// GetCatalog returns every category with its services and capability flags.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	var categories []catalogCategory
	for _, cat := range models.Categories() {
		defaultID, err := h.Catalog.DefaultService(cat)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list catalog", err.Error())
			return
		}
		entry := catalogCategory{
			Category:       cat,
			DefaultService: defaultID,
			TravelExempt:   pricing.IsTravelExempt(cat),
		}
		for id, svc := range h.Catalog.Services(cat) {
			entry.Services = append(entry.Services, catalogService{
				ID:               id,
				Label:            svc.Label,
				ConsumesHours:    svc.ConsumesHours,
				ConsumesQuantity: svc.ConsumesQuantity,
			})
		}
		categories = append(categories, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"addOns": gin.H{
			"realTime": pricing.RealTimeSurcharge,
			"drone":    pricing.DroneSurcharge,
		},
	})
}
