// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mazao/config"
	"mazao/internal/delivery/api/middleware"
	"mazao/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ClientHandler    *handler.ClientHandler
	LicenseHandler   *handler.LicenseHandler
	ContentHandler   *handler.ContentHandler
	ReviewHandler    *handler.ReviewHandler
	SettingHandler   *handler.SettingHandler
	AIHandler        *handler.AIHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	clientHandler    *handler.ClientHandler
	licenseHandler   *handler.LicenseHandler
	contentHandler   *handler.ContentHandler
	reviewHandler    *handler.ReviewHandler
	settingHandler   *handler.SettingHandler
	aiHandler        *handler.AIHandler
	analyticsHandler *handler.AnalyticsHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		clientHandler:    params.ClientHandler,
		licenseHandler:   params.LicenseHandler,
		contentHandler:   params.ContentHandler,
		reviewHandler:    params.ReviewHandler,
		settingHandler:   params.SettingHandler,
		aiHandler:        params.AIHandler,
		analyticsHandler: params.AnalyticsHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Client record routes
	clientsGroup := api.Group("/clients")
	{
		clientsGroup.GET("", r.clientHandler.ListClients)
		clientsGroup.POST("", r.clientHandler.CreateClient)
		clientsGroup.GET("/:id", r.clientHandler.GetClient)
		clientsGroup.PATCH("/:id", r.clientHandler.UpdateClient)
		clientsGroup.DELETE("/:id", r.clientHandler.DeleteClient)
	}

	// License management routes
	licensesGroup := api.Group("/licenses")
	{
		licensesGroup.GET("", r.licenseHandler.ListLicenses)
		licensesGroup.POST("", r.licenseHandler.IssueLicense)
		// Key lookup is registered before :id so the literal segment wins
		licensesGroup.GET("/key/:key", r.licenseHandler.GetLicenseByKey)
		licensesGroup.GET("/:id", r.licenseHandler.GetLicense)
		licensesGroup.PATCH("/:id", r.licenseHandler.UpdateLicense)
		licensesGroup.POST("/:id/assign", r.licenseHandler.AssignLicense)
		licensesGroup.GET("/:id/qr", r.licenseHandler.LicenseQR)
		licensesGroup.DELETE("/:id", r.licenseHandler.DeleteLicense)
	}

	// Content routes
	contentGroup := api.Group("/content")
	{
		contentGroup.GET("", r.contentHandler.ListContent)
		contentGroup.POST("", r.contentHandler.CreateContent)
		contentGroup.GET("/published", r.contentHandler.ListPublishedContent)
		contentGroup.GET("/:id", r.contentHandler.GetContent)
		contentGroup.PATCH("/:id", r.contentHandler.UpdateContent)
		contentGroup.DELETE("/:id", r.contentHandler.DeleteContent)
	}

	// Review routes
	reviewsGroup := api.Group("/reviews")
	{
		reviewsGroup.GET("", r.reviewHandler.ListReviews)
		reviewsGroup.POST("", r.reviewHandler.CreateReview)
		reviewsGroup.GET("/approved", r.reviewHandler.ListApprovedReviews)
		reviewsGroup.GET("/:id", r.reviewHandler.GetReview)
		reviewsGroup.PATCH("/:id", r.reviewHandler.UpdateReview)
		reviewsGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
	}

	// Persisted settings routes
	settingsGroup := api.Group("/settings")
	{
		settingsGroup.GET("", r.settingHandler.ListSettings)
		settingsGroup.POST("", r.settingHandler.UpsertSetting)
		settingsGroup.GET("/:key", r.settingHandler.GetSetting)
	}

	// AI drafting routes
	aiGroup := api.Group("/ai")
	{
		aiGroup.POST("/generate-content", r.aiHandler.GenerateContent)
	}

	// Analytics routes
	analyticsGroup := api.Group("/analytics")
	{
		analyticsGroup.GET("", r.analyticsHandler.ListEvents)
		analyticsGroup.POST("/track", r.analyticsHandler.TrackEvent)
		analyticsGroup.GET("/summary", r.analyticsHandler.Summary)
	}
}
