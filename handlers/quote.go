package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"earec/models"
	"earec/services/quote"
	"earec/utils"
)

// QuoteHandler exposes the quote session flow over HTTP.
type QuoteHandler struct {
	Service quote.QuoteService
	Logger  *zap.Logger
}

func NewQuoteHandler(service quote.QuoteService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{Service: service, Logger: logger}
}

// StartSession creates a new quote session from the welcome-form client data.
func (h *QuoteHandler) StartSession(c *gin.Context) {
	var client models.ClientData
	if err := c.ShouldBindJSON(&client); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.InitiateSession(c.Request.Context(), client)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to initiate quote session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession returns the current configuration and a fresh breakdown.
func (h *QuoteHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession applies a configuration mutation and returns the repriced session.
func (h *QuoteHandler) UpdateSession(c *gin.Context) {
	var update models.ConfigUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.UpdateConfiguration(c.Request.Context(), c.Param("sessionID"), update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RefreshDistance re-resolves the travel distance for an edited address.
func (h *QuoteHandler) RefreshDistance(c *gin.Context) {
	var input struct {
		Location string `json:"location" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.RefreshDistance(c.Request.Context(), c.Param("sessionID"), input.Location)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// MoveToSummary advances the session to the summary step.
func (h *QuoteHandler) MoveToSummary(c *gin.Context) {
	session, err := h.Service.MoveToSummary(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// BackToConfiguration returns from the summary to the configurator.
func (h *QuoteHandler) BackToConfiguration(c *gin.Context) {
	session, err := h.Service.ReturnToConfiguration(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SignSession accepts the signature artifact and closes the quote.
func (h *QuoteHandler) SignSession(c *gin.Context) {
	var input struct {
		Signature string `json:"signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.Sign(c.Request.Context(), c.Param("sessionID"), input.Signature)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSession discards an in-flight session.
func (h *QuoteHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *QuoteHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, quote.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		return
	}
	utils.JSONError(c, http.StatusUnprocessableEntity, err.Error(), "")
}
