package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/helpdesk/ticketing-system/docs"
	"github.com/helpdesk/ticketing-system/internal/api/handler"
	"github.com/helpdesk/ticketing-system/internal/api/middleware"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
	"github.com/helpdesk/ticketing-system/pkg/logger"
)

// Dependencies carries everything the router needs. Services are constructed
// in main and injected here so the routing layer owns no wiring of its own.
type Dependencies struct {
	Tickets       ports.TicketService
	Comments      ports.CommentService
	Profiles      ports.ProfileService
	Auth          ports.AuthService
	Notifications ports.NotificationService
	Enqueuer      ports.NotificationEnqueuer

	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	log := logger.Get()

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ticketing"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	ticketHandler := handler.NewTicketHandler(deps.Tickets)
	commentHandler := handler.NewCommentHandler(deps.Comments, deps.Enqueuer)
	relayHandler := handler.NewRelayHandler(deps.Comments, deps.Notifications, deps.Profiles, log)

	authRequired := middleware.Auth(deps.JWTSecret)
	authOptional := middleware.AuthOptional(deps.JWTSecret)

	// --- Auth routes ---
	// Register accepts an optional token: admins may create staff accounts.
	e.POST("/auth/register", authHandler.Register, authOptional)
	e.POST("/auth/login", authHandler.Login)

	// --- Profile directory ---
	profiles := e.Group("/v1/profiles", authRequired)
	profiles.GET("/me", profileHandler.Me)
	profiles.GET("", profileHandler.List, middleware.Staff())
	profiles.GET("/:id", profileHandler.Get)
	profiles.PATCH("/:id", profileHandler.Update)
	profiles.DELETE("/:id", profileHandler.Delete, middleware.AdminOnly())

	// --- Tickets, status log, comments, subscriptions ---
	tickets := e.Group("/v1/tickets", authRequired)
	tickets.POST("", ticketHandler.Create)
	tickets.GET("", ticketHandler.List)
	tickets.GET("/:id", ticketHandler.Get)
	tickets.PATCH("/:id", ticketHandler.Update)
	// Transitions carry no role gate here: the service allows anyone who can
	// view the ticket, so creators may resolve their own tickets.
	tickets.POST("/:id/start", ticketHandler.StartProgress)
	tickets.POST("/:id/close", ticketHandler.Close)
	tickets.GET("/:id/history", ticketHandler.History)
	tickets.GET("/:id/history/last", ticketHandler.LastHistory)
	tickets.GET("/:id/comments", commentHandler.List)
	tickets.POST("/:id/comments", commentHandler.Post)
	tickets.POST("/:id/subscribe", ticketHandler.Subscribe)
	tickets.DELETE("/:id/subscribe", ticketHandler.Unsubscribe)

	e.DELETE("/v1/comments/:id", commentHandler.Delete, authRequired)

	// --- Legacy relay contract (no auth, trusted network) ---
	e.POST("/api/post-comment-reply-and-notify", relayHandler.PostCommentReplyAndNotify)
	e.POST("/api/send-email", relayHandler.SendTestEmail)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
