// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"parkplan/config"
	"parkplan/internal/delivery/http/middleware"
	"parkplan/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config           *config.Config
	UserHandler      *handler.UserHandler
	VacationHandler  *handler.VacationHandler
	ItineraryHandler *handler.ItineraryHandler
	MessageHandler   *handler.MessageHandler
	LocationHandler  *handler.LocationHandler
	ReferenceHandler *handler.ReferenceHandler
	AuditHandler     *handler.AuditHandler
	StreamHandler    *handler.StreamHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg              *config.Config
	userHandler      *handler.UserHandler
	vacationHandler  *handler.VacationHandler
	itineraryHandler *handler.ItineraryHandler
	messageHandler   *handler.MessageHandler
	locationHandler  *handler.LocationHandler
	referenceHandler *handler.ReferenceHandler
	auditHandler     *handler.AuditHandler
	streamHandler    *handler.StreamHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:              params.Config,
		userHandler:      params.UserHandler,
		vacationHandler:  params.VacationHandler,
		itineraryHandler: params.ItineraryHandler,
		messageHandler:   params.MessageHandler,
		locationHandler:  params.LocationHandler,
		referenceHandler: params.ReferenceHandler,
		auditHandler:     params.AuditHandler,
		streamHandler:    params.StreamHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Every route
// resolves the bearer token when one is present; the access policy inside
// the usecases decides what the resulting identity may do, so anonymous
// requests are denied by policy rather than by routing.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.Resolve)

	// Client error reports accept anonymous callers
	api.POST("/errors", r.auditHandler.ReportError)

	// Profile routes
	userGroup := api.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.GET("/:uid", r.userHandler.Get)
		userGroup.PATCH("/:uid", r.userHandler.Update)
		userGroup.DELETE("/:uid", r.userHandler.Delete)
		userGroup.POST("/me/devices", r.userHandler.RegisterDevice)
		userGroup.DELETE("/me/devices", r.userHandler.UnregisterDevice)
	}

	// Vacation and membership routes
	vacationGroup := api.Group("/vacations")
	{
		vacationGroup.POST("", r.vacationHandler.Create)
		vacationGroup.GET("", r.vacationHandler.List)
		vacationGroup.GET("/:id", r.vacationHandler.Get)
		vacationGroup.PATCH("/:id", r.vacationHandler.Update)
		vacationGroup.DELETE("/:id", r.vacationHandler.Delete)
		vacationGroup.POST("/:id/share-code/rotate", r.vacationHandler.RotateShareCode)
		vacationGroup.GET("/:id/join-qr", r.vacationHandler.JoinQR)

		vacationGroup.GET("/:id/members", r.vacationHandler.ListMembers)
		vacationGroup.POST("/:id/members", r.vacationHandler.AddMember)
		vacationGroup.PATCH("/:id/members/:uid", r.vacationHandler.UpdateMember)
		vacationGroup.DELETE("/:id/members/:uid", r.vacationHandler.RemoveMember)

		vacationGroup.POST("/:id/invites", r.vacationHandler.CreateInviteLink)

		// Group chat
		vacationGroup.POST("/:id/messages", r.messageHandler.Send)
		vacationGroup.GET("/:id/messages", r.messageHandler.List)
		vacationGroup.PATCH("/:id/messages/:messageId", r.messageHandler.Edit)
		vacationGroup.PUT("/:id/messages/:messageId/reaction", r.messageHandler.React)
		vacationGroup.DELETE("/:id/messages/:messageId", r.messageHandler.Delete)

		// Live locations and geofences
		vacationGroup.PUT("/:id/locations/me", r.locationHandler.Update)
		vacationGroup.GET("/:id/locations", r.locationHandler.List)
		vacationGroup.DELETE("/:id/locations/:uid", r.locationHandler.Delete)
		vacationGroup.POST("/:id/geofences", r.locationHandler.CreateGeofence)
		vacationGroup.GET("/:id/geofences", r.locationHandler.ListGeofences)
		vacationGroup.PATCH("/:id/geofences/:geofenceId", r.locationHandler.UpdateGeofence)
		vacationGroup.DELETE("/:id/geofences/:geofenceId", r.locationHandler.DeleteGeofence)
		vacationGroup.GET("/:id/alerts", r.locationHandler.ListAlerts)

		// Admin-only activity trail
		vacationGroup.GET("/:id/activity", r.auditHandler.ListActivity)

		// Live change feed
		vacationGroup.GET("/:id/stream", r.streamHandler.SubscribeVacation)
	}

	// Join routes sit outside the vacation group because the caller is not
	// a member yet
	joinGroup := api.Group("/join")
	joinGroup.Use(r.authMiddleware.Authenticate)
	{
		joinGroup.POST("/share-code", r.vacationHandler.Join)
		joinGroup.POST("/invite", r.vacationHandler.RedeemInvite)
	}

	// Itinerary routes
	itineraryGroup := api.Group("/itineraries")
	{
		itineraryGroup.POST("", r.itineraryHandler.Create)
		itineraryGroup.GET("", r.itineraryHandler.List)
		itineraryGroup.GET("/:id", r.itineraryHandler.Get)
		itineraryGroup.PATCH("/:id", r.itineraryHandler.Update)
		itineraryGroup.DELETE("/:id", r.itineraryHandler.Delete)

		itineraryGroup.POST("/:id/items", r.itineraryHandler.AddItem)
		itineraryGroup.GET("/:id/items", r.itineraryHandler.ListItems)
		itineraryGroup.PATCH("/:id/items/:itemId", r.itineraryHandler.UpdateItem)
		itineraryGroup.DELETE("/:id/items/:itemId", r.itineraryHandler.RemoveItem)
	}

	// Calendar event routes
	eventGroup := api.Group("/calendar-events")
	{
		eventGroup.POST("", r.itineraryHandler.CreateCalendarEvent)
		eventGroup.GET("", r.itineraryHandler.ListCalendarEvents)
		eventGroup.PATCH("/:id", r.itineraryHandler.UpdateCalendarEvent)
		eventGroup.DELETE("/:id", r.itineraryHandler.DeleteCalendarEvent)
	}

	// Read-only reference catalog
	parkGroup := api.Group("/parks")
	{
		parkGroup.GET("", r.referenceHandler.ListParks)
		parkGroup.GET("/:id", r.referenceHandler.GetPark)
		parkGroup.GET("/:id/attractions", r.referenceHandler.ListAttractions)
		parkGroup.GET("/:id/restaurants", r.referenceHandler.ListRestaurants)
		parkGroup.GET("/:id/hours", r.referenceHandler.GetParkHours)
		parkGroup.GET("/:id/wait-times", r.referenceHandler.GetWaitTimes)
		parkGroup.GET("/:id/stream", r.streamHandler.SubscribePark)
	}
	api.GET("/resorts", r.referenceHandler.ListResorts)

	// Testing endpoints, never registered in production
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		debugHandler := handler.NewDebugHandler()
		api.GET("/debug/whoami", debugHandler.WhoAmI)
	}
}
