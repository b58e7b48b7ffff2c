package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/klikphone/sav-portal/internal/api"
	"github.com/klikphone/sav-portal/internal/config"
	"github.com/klikphone/sav-portal/internal/db"
	httpapi "github.com/klikphone/sav-portal/internal/http"
	"github.com/klikphone/sav-portal/internal/session"
	"github.com/klikphone/sav-portal/internal/tarifs"
	"github.com/klikphone/sav-portal/internal/telemetry"
)

const serviceName = "sav-portal"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := log.Level(level).With().Str("service", serviceName).Logger()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	shutdownTracing := telemetry.Setup(ctx, telemetry.Options{
		ServiceName: serviceName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    cfg.OTLPInsecure,
	}, logger)

	state, err := db.Open(ctx, cfg.StateURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open session store")
	}
	defer state.Close()

	gate, err := session.Open(ctx, state)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to restore session")
	}
	logger.Info().Str("session", gate.State().String()).Msg("session restored")

	client := api.New(cfg.APIURL, gate, cfg.RequestTimeout, logger)
	refresher := &tarifs.Refresher{
		Source:       client,
		Mode:         cfg.TarifsRefreshMode,
		Delay:        cfg.TarifsRefreshDelay,
		PollInterval: cfg.TarifsPollInterval,
		PollTimeout:  cfg.TarifsPollTimeout,
		Logger:       logger,
	}

	router := httpapi.Router(cfg, httpapi.Deps{
		API:       client,
		Gate:      gate,
		State:     state,
		Refresher: refresher,
		Logger:    logger,
		BaseCtx:   ctx,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("api_url", cfg.APIURL).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	stop()

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	if err := shutdownTracing(ctxShutdown); err != nil {
		logger.Warn().Err(err).Msg("tracer shutdown")
	}
	logger.Info().Msg("server stopped")
}
