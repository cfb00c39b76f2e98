package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"earec/handlers"
	"earec/middleware"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Quote    *handlers.QuoteHandler
	Admin    *handlers.AdminHandler
	Catalog  *handlers.CatalogHandler
	Distance *handlers.DistanceHandler
}

// RegisterQuoteRoutes registers the quote session flow.
func RegisterQuoteRoutes(r *gin.Engine, hb *HandlerBundle) {
	quote := r.Group("/api/quote")
	{
		quote.POST("/session", hb.Quote.StartSession)
		quote.GET("/session/:sessionID", hb.Quote.GetSession)
		quote.PUT("/session/:sessionID", hb.Quote.UpdateSession)
		quote.PUT("/session/:sessionID/location", hb.Quote.RefreshDistance)
		quote.POST("/session/:sessionID/summary", hb.Quote.MoveToSummary)
		quote.POST("/session/:sessionID/configure", hb.Quote.BackToConfiguration)
		quote.POST("/session/:sessionID/sign", hb.Quote.SignSession)
		quote.DELETE("/session/:sessionID", hb.Quote.CancelSession)
	}
}

// RegisterAdminRoutes sets up the gated price-override endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.POST("/login", hb.Admin.Login)

		protected := admin.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.GET("/pricing", hb.Admin.GetPricing)
		protected.PUT("/pricing", hb.Admin.UpdatePricing)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "EAREC quote server"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterQuoteRoutes(r, hb)
	RegisterAdminRoutes(r, hb)

	r.GET("/api/catalog", hb.Catalog.GetCatalog)
	r.GET("/api/distance", hb.Distance.ResolveDistance)
}
