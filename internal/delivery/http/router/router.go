// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	httpmiddleware "linkvault/internal/delivery/http/middleware"
	"linkvault/internal/delivery/http/router/handler"
	"linkvault/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WalletHandler    *handler.WalletHandler
	ProfileHandler   *handler.ProfileHandler
	ExploreHandler   *handler.ExploreHandler
	UnlockMiddleware *httpmiddleware.UnlockMiddleware
	RateLimiter      *middleware.IPRateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	walletHandler    *handler.WalletHandler
	profileHandler   *handler.ProfileHandler
	exploreHandler   *handler.ExploreHandler
	unlockMiddleware *httpmiddleware.UnlockMiddleware
	rateLimiter      *middleware.IPRateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		walletHandler:    params.WalletHandler,
		profileHandler:   params.ProfileHandler,
		exploreHandler:   params.ExploreHandler,
		unlockMiddleware: params.UnlockMiddleware,
		rateLimiter:      params.RateLimiter,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	walletGroup := e.Group("/wallet")
	{
		walletGroup.GET("", r.walletHandler.Get)
		walletGroup.POST("/connect", r.walletHandler.Connect)
		walletGroup.POST("/disconnect", r.walletHandler.Disconnect)
		walletGroup.POST("/chain", r.walletHandler.SwitchChain)
	}

	settingsGroup := e.Group("/settings")
	{
		settingsGroup.GET("/balance", r.walletHandler.Balance)
		settingsGroup.POST("/fund", r.walletHandler.Fund)
	}

	e.GET("/templates", r.exploreHandler.Templates)
	e.GET("/discover", r.exploreHandler.Discover)
	e.GET("/verify/:address", r.exploreHandler.Verify)
	analyticsGroup := e.Group("/analytics/:address")
	analyticsGroup.Use(r.unlockMiddleware.Extract)
	{
		analyticsGroup.GET("", r.exploreHandler.Analytics)
		analyticsGroup.POST("/rebuild", r.exploreHandler.RebuildAnalytics)
	}

	e.POST("/create", r.profileHandler.Create)

	profileGroup := e.Group("/p/:address")
	profileGroup.Use(r.unlockMiddleware.Extract)
	{
		profileGroup.GET("", r.profileHandler.GetByAddress)
		profileGroup.PUT("/edit", r.profileHandler.Edit)
		profileGroup.POST("/unlock", r.profileHandler.Unlock, r.rateLimiter.Limit)
		profileGroup.POST("/links/:linkId/click", r.profileHandler.Click, r.rateLimiter.Limit)
		profileGroup.GET("/qr", r.profileHandler.QRCode)
	}

	// Static routes above take precedence over this catch-all.
	e.GET("/:username", r.profileHandler.GetByUsername, r.unlockMiddleware.Extract)
}
