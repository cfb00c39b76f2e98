package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"earec/services/geo"
	"earec/utils"
)

// DistanceHandler exposes the distance resolver as a standalone endpoint so
// the configurator can show the travel estimate while the address is typed.
type DistanceHandler struct {
	Resolver geo.Resolver
}

func NewDistanceHandler(resolver geo.Resolver) *DistanceHandler {
	return &DistanceHandler{Resolver: resolver}
}

// ResolveDistance returns the estimated round-trip basis distance in km.
// Unresolvable addresses answer 0, never an error.
func (h *DistanceHandler) ResolveDistance(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: address", "")
		return
	}

	km := h.Resolver.Resolve(c.Request.Context(), address)
	c.JSON(http.StatusOK, gin.H{"distanceKm": km})
}
