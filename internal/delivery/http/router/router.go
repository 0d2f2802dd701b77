// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"souk/config"
	"souk/internal/delivery/http/middleware"
	"souk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	SheepHandler   *handler.SheepHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
	UserHandler    *handler.UserHandler
	ImageHandler   *handler.ImageHandler
	AssetHandler   *handler.AssetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	sheepHandler   *handler.SheepHandler
	orderHandler   *handler.OrderHandler
	adminHandler   *handler.AdminHandler
	userHandler    *handler.UserHandler
	imageHandler   *handler.ImageHandler
	assetHandler   *handler.AssetHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		sheepHandler:   params.SheepHandler,
		orderHandler:   params.OrderHandler,
		adminHandler:   params.AdminHandler,
		userHandler:    params.UserHandler,
		imageHandler:   params.ImageHandler,
		assetHandler:   params.AssetHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Catalog routes: public reads, admin-gated writes
	sheepGroup := api.Group("/sheep")
	{
		sheepGroup.GET("", r.sheepHandler.ListSheep)
		sheepGroup.GET("/:id", r.sheepHandler.GetSheep)
		sheepGroup.POST("", r.sheepHandler.CreateSheep, r.authMiddleware.RequireAdmin)
		sheepGroup.PATCH("/:id", r.sheepHandler.UpdateSheep, r.authMiddleware.RequireAdmin)
		sheepGroup.DELETE("/:id", r.sheepHandler.DeleteSheep, r.authMiddleware.RequireAdmin)
	}

	// Order routes: public create, reads gated by configuration
	orderGroup := api.Group("/orders")
	{
		listMiddleware := []echo.MiddlewareFunc{}
		if r.cfg.Orders.AdminOnlyList {
			listMiddleware = append(listMiddleware, r.authMiddleware.RequireAdmin)
		}

		orderGroup.GET("", r.orderHandler.ListOrders, listMiddleware...)
		orderGroup.GET("/:id", r.orderHandler.GetOrder, listMiddleware...)
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.PATCH("/:id", r.orderHandler.UpdateOrder, r.authMiddleware.RequireAdmin)
		orderGroup.DELETE("/:id", r.orderHandler.DeleteOrder, r.authMiddleware.RequireAdmin)
	}

	// Allow-list routes: super-admin-gated mutations
	adminGroup := api.Group("/admins")
	{
		adminGroup.GET("", r.adminHandler.ListAdmins, r.authMiddleware.RequireAdmin)
		adminGroup.GET("/check", r.adminHandler.CheckAdmin)
		adminGroup.POST("", r.adminHandler.AddAdmin, r.authMiddleware.RequireSuperAdmin)
		adminGroup.DELETE("/:id", r.adminHandler.RemoveAdmin, r.authMiddleware.RequireSuperAdmin)
	}

	// Account lookup for admins checking an email against the identity provider
	api.GET("/admin/user-by-email", r.adminHandler.LookupUserByEmail, r.authMiddleware.RequireAdmin)

	// Profile routes
	userGroup := api.Group("/users")
	{
		userGroup.GET("/:uid", r.userHandler.GetProfile)
		userGroup.POST("", r.userHandler.CreateProfile)
		userGroup.PATCH("/:uid", r.userHandler.UpdateUserType)
	}

	// Image routes
	imageGroup := api.Group("/images")
	{
		imageGroup.POST("", r.imageHandler.UploadImage)
		imageGroup.GET("/:id", r.imageHandler.GetImage)
	}

	// App bundle routes
	api.GET("/download-app", r.assetHandler.DownloadApp)
	api.GET("/download-app/qrcode", r.assetHandler.DownloadQRCode)
}
