package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/wt-exchange/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, limiter *middleware.RateLimiter) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Public read access
		v1.GET("/catalog", handler.GetCatalog)
		v1.GET("/parcels", handler.ListParcels)
		v1.GET("/parcels/:id", handler.GetParcel)
		v1.GET("/streets", handler.ListStreets)
		v1.GET("/streets/:id", handler.GetStreet)
		v1.GET("/offers", handler.ListOffers)
		v1.GET("/offers/:id", handler.GetOffer)
		v1.GET("/economy/summary", handler.GetSummary)
		v1.GET("/economy/health", handler.GetEconomyHealth)
		v1.GET("/balances/:owner", handler.GetBalance)
		v1.GET("/events", handler.ListEvents)
		v1.GET("/season", handler.GetSeason)

		// Player actions (JWT subject is the acting identity)
		player := v1.Group("", middleware.Auth(authCfg), limiter.Middleware())
		{
			player.POST("/parcels/:id/buy", handler.BuyParcel)
			player.POST("/parcels/:id/upgrade", handler.UpgradeParcel)
			player.POST("/streets/:id/claim", handler.ClaimStreet)
			player.POST("/offers", handler.ProposeOffer)
			player.POST("/offers/:id/accept", handler.AcceptOffer)
			player.POST("/offers/:id/reject", handler.RejectOffer)
			player.POST("/offers/:id/cancel", handler.CancelOffer)
		}

		// Admin actions (API key only)
		admin := v1.Group("", middleware.APIKeyAuth(authCfg))
		{
			admin.POST("/parcels", handler.CreateParcel)
			admin.DELETE("/parcels/:id", handler.DeleteParcel)
			admin.POST("/parcels/:id/reset", handler.ResetParcel)
			admin.POST("/offers/gc", handler.ExpireOffers)
			admin.POST("/economy/tick", handler.RunTick)
			admin.POST("/balances/:owner/adjust", handler.AdjustBalance)
			admin.POST("/economy/transfer", handler.TransferBalance)
			admin.GET("/settings", handler.GetSettings)
			admin.PUT("/settings", handler.UpdateSettings)
			admin.GET("/settings/versions", handler.ListSettingsVersions)
			admin.POST("/settings/versions/:version/rollback", handler.RollbackSettings)
		}
	}
}
