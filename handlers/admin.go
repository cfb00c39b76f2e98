package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"earec/config"
	"earec/models"
	"earec/services/pricing"
	"earec/utils"
)

// AdminHandler exposes the gated price-override dashboard endpoints.
type AdminHandler struct {
	Overrides *pricing.OverrideStore
	Logger    *zap.Logger
}

func NewAdminHandler(overrides *pricing.OverrideStore, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Overrides: overrides, Logger: logger}
}

// Login checks the shared secret and mints a short-lived admin token.
// The comparison is case-insensitive; retries are unlimited.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Secret string `json:"secret" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	// Flat response delay to blunt rudimentary timing attacks.
	time.Sleep(800 * time.Millisecond)

	if !utils.VerifyAdminSecret(input.Secret, config.AppConfig.AdminSecretHash) {
		h.Logger.Warn("admin login rejected", zap.String("ip", c.ClientIP()))
		utils.JSONError(c, http.StatusUnauthorized, "Senha incorreta", "")
		return
	}

	token, err := utils.GenerateToken("admin", time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue admin token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetPricing returns the current override scalars.
func (h *AdminHandler) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, h.Overrides.Snapshot())
}

// UpdatePricing replaces the override scalars. In-memory only: the edit lasts
// until the process restarts.
func (h *AdminHandler) UpdatePricing(c *gin.Context) {
	var values models.PriceOverrides
	if err := c.ShouldBindJSON(&values); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Overrides.Update(values); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error(), "")
		return
	}
	h.Logger.Info("price overrides updated",
		zap.Float64("basePrice", values.BasePrice),
		zap.Float64("studioFee", values.StudioFee),
		zap.Float64("photoUnitPrice", values.PhotoUnitPrice),
		zap.Float64("videoUnitPrice", values.VideoUnitPrice))
	c.JSON(http.StatusOK, h.Overrides.Snapshot())
}
