// Command server runs the coffee-shop ordering API: session cart, checkout,
// order history, and background notification dispatch, exposed over HTTP.
//
//	@title        Surf & Turf Orders API
//	@version      1.0
//	@description  Cart, checkout, and order notification backend.
//	@BasePath     /api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/Waldo881/Surf-Turf/docs"
	"github.com/Waldo881/Surf-Turf/internal/cart"
	"github.com/Waldo881/Surf-Turf/internal/config"
	httpapi "github.com/Waldo881/Surf-Turf/internal/http"
	"github.com/Waldo881/Surf-Turf/internal/notify"
	"github.com/Waldo881/Surf-Turf/internal/observability"
	"github.com/Waldo881/Surf-Turf/internal/settings"
	"github.com/Waldo881/Surf-Turf/internal/store"
	"github.com/Waldo881/Surf-Turf/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx := context.Background()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing tracing")
	}

	db, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("opening database")
	}
	if err := store.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrating database")
	}

	cartSvc, err := cart.New(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("restoring cart")
	}

	// Notification pipeline: settings-aware mailer, retrying sender, durable
	// backlog monitor, fan-out dispatcher.
	settingsSvc := settings.NewService(db, cfg.Shop)
	mailer := notify.NewEmailJSMailer(cfg.Notify.EmailJSEndpoint, cfg.Notify.HTTPTimeout, settingsSvc)
	sender := notify.NewSender(db, mailer, cfg.Notify.MaxRetries, cfg.Notify.BackoffBase)
	dispatcher := notify.NewDispatcher(sender, settingsSvc, notify.ShopIdentity{
		Name:    cfg.Shop.Name,
		Phone:   cfg.Shop.PhoneNumber,
		Address: cfg.Shop.Address,
		Email:   cfg.Shop.Email,
	}, cfg.Notify.HTTPTimeout)

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	monitor := notify.NewMonitor(sender, cfg.Notify.SweepInterval, cfg.Notify.MaxBacklogTries)
	go monitor.Run(monitorCtx)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, cartSvc, dispatcher, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	stopMonitor()

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("tracer shutdown")
	}
	log.Info().Msg("stopped")
}
