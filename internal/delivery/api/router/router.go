// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"adhan/internal/delivery/api/router/handler"
)

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	SubscriptionHandler *handler.SubscriptionHandler
	TimingHandler       *handler.TimingHandler
	DispatchHandler     *handler.DispatchHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler       *handler.HealthHandler
	subscriptionHandler *handler.SubscriptionHandler
	timingHandler       *handler.TimingHandler
	dispatchHandler     *handler.DispatchHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:       params.HealthHandler,
		subscriptionHandler: params.SubscriptionHandler,
		timingHandler:       params.TimingHandler,
		dispatchHandler:     params.DispatchHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.HealthCheck)

	api := e.Group("/api")

	// Subscription management routes
	subscriptionsGroup := api.Group("/subscriptions")
	{
		subscriptionsGroup.POST("", r.subscriptionHandler.Subscribe)
		subscriptionsGroup.GET("/:id", r.subscriptionHandler.GetSubscription)
		subscriptionsGroup.DELETE("/:id", r.subscriptionHandler.Unsubscribe)
	}
	api.POST("/unsubscribe", r.subscriptionHandler.UnsubscribeEndpoint)

	// Prayer timing routes
	timingsGroup := api.Group("/timings")
	{
		timingsGroup.GET("", r.timingHandler.GetTimings)
		timingsGroup.GET("/month", r.timingHandler.GetMonthTimings)
		timingsGroup.GET("/next", r.timingHandler.GetNextPrayer)
	}

	api.GET("/vapid-public-key", r.dispatchHandler.GetVAPIDPublicKey)
	api.POST("/dispatch/run", r.dispatchHandler.RunTick)
}
