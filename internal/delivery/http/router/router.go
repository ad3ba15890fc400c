// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopseva/internal/delivery/http/middleware"
	"shopseva/internal/delivery/http/router/handler"
	"shopseva/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	DirectoryHandler  *handler.DirectoryHandler
	EngagementHandler *handler.EngagementHandler
	OwnerHandler      *handler.OwnerHandler
	AdminHandler      *handler.AdminHandler
	ContactHandler    *handler.ContactHandler
	ReferenceHandler  *handler.ReferenceHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Registry          *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	auth           *handler.AuthHandler
	directory      *handler.DirectoryHandler
	engagement     *handler.EngagementHandler
	owner          *handler.OwnerHandler
	admin          *handler.AdminHandler
	contact        *handler.ContactHandler
	reference      *handler.ReferenceHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:           params.AuthHandler,
		directory:      params.DirectoryHandler,
		engagement:     params.EngagementHandler,
		owner:          params.OwnerHandler,
		admin:          params.AdminHandler,
		contact:        params.ContactHandler,
		reference:      params.ReferenceHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/firebase", r.auth.FirebaseLogin)
	}

	// Public directory. Likes are keyed by the device header, not by an account.
	shopGroup := e.Group("/shops")
	{
		shopGroup.GET("", r.directory.SearchShops)
		shopGroup.GET("/liked", r.engagement.ListLiked)
		shopGroup.GET("/:id", r.directory.GetShop)
		shopGroup.GET("/:id/reviews", r.engagement.ListReviews)
		shopGroup.POST("/:id/reviews", r.engagement.SubmitReview, r.authMiddleware.Authenticate)
		shopGroup.POST("/:id/like", r.engagement.Like)
		shopGroup.DELETE("/:id/like", r.engagement.Unlike)
	}

	e.POST("/contact", r.contact.Submit)

	referenceGroup := e.Group("/reference")
	{
		referenceGroup.GET("/categories", r.reference.Categories)
		referenceGroup.GET("/states", r.reference.States)
		referenceGroup.GET("/districts", r.reference.Districts)
	}

	ownerGroup := e.Group("/owner")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	ownerGroup.Use(r.authMiddleware.RequireRole(entity.RoleShopkeeper))
	{
		ownerGroup.POST("/shops", r.owner.SubmitShop)
		ownerGroup.GET("/shops", r.owner.ListShops)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/shops", r.admin.ListShops)
		adminGroup.POST("/shops/:id/approve", r.admin.ApproveShop)
		adminGroup.POST("/shops/:id/reject", r.admin.RejectShop)
		adminGroup.PUT("/shops/:id", r.admin.UpdateShop)
		adminGroup.DELETE("/shops/:id", r.admin.DeleteShop)
		adminGroup.POST("/shops/:id/images", r.admin.AddImage)
		adminGroup.DELETE("/shops/:id/images/:index", r.admin.RemoveImage)

		adminGroup.GET("/messages", r.admin.ListMessages)
		adminGroup.PATCH("/messages/:id/read", r.admin.MarkMessageRead)
		adminGroup.DELETE("/messages/:id", r.admin.DeleteMessage)

		adminGroup.GET("/stats", r.admin.Stats)
	}
}
