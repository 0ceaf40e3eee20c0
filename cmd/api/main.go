package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/helpdesk/ticketing-system/internal/api"
	"github.com/helpdesk/ticketing-system/internal/core/service"
	"github.com/helpdesk/ticketing-system/internal/infrastructure/config"
	mongodb "github.com/helpdesk/ticketing-system/internal/infrastructure/db/mongo"
	redisdb "github.com/helpdesk/ticketing-system/internal/infrastructure/db/redis"
	"github.com/helpdesk/ticketing-system/internal/infrastructure/mail"
	"github.com/helpdesk/ticketing-system/internal/infrastructure/queue"
	"github.com/helpdesk/ticketing-system/pkg/logger"
)

// @title           Support Ticketing API
// @version         1.0
// @description     Ticket management, threaded comments and email notification relay.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	ticketRepo := mongodb.NewTicketRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	historyRepo := mongodb.NewHistoryRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	subscriberRepo := mongodb.NewSubscriberRepository(db)

	indexCtx, indexCancel := context.WithTimeout(ctx, 30*time.Second)
	defer indexCancel()
	for name, fn := range map[string]func(context.Context) error{
		"tickets":            ticketRepo.EnsureIndexes,
		"comments":           commentRepo.EnsureIndexes,
		"status_history":     historyRepo.EnsureIndexes,
		"profiles":           profileRepo.EnsureIndexes,
		"ticket_subscribers": subscriberRepo.EnsureIndexes,
	} {
		if err := fn(indexCtx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Services ---
	ticketService := service.NewTicketService(ticketRepo, historyRepo, profileRepo, subscriberRepo, log)
	commentService := service.NewCommentService(commentRepo, ticketRepo, profileRepo, ticketService, log)
	profileService := service.NewProfileService(profileRepo, log)
	authService := service.NewAuthService(profileRepo, cfg.JWTSecret, 24*time.Hour)

	mailer := mail.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.FromEmail)
	dedup := redisdb.NewDeliveryDedup(rdb)
	notificationService := service.NewNotificationService(
		ticketRepo, profileRepo, subscriberRepo, mailer, dedup,
		cfg.FrontendURL, cfg.Mail.TestEmail, log,
	)

	dispatcher := queue.NewDispatcher(0, notificationService, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Tickets:       ticketService,
		Comments:      commentService,
		Profiles:      profileService,
		Auth:          authService,
		Notifications: notificationService,
		Enqueuer:      dispatcher,
		Mongo:         db,
		Redis:         rdb,
		JWTSecret:     cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	cancel() // stops the notification workers
	log.Info().Msg("shutdown complete")
}
