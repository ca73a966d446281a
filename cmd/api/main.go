package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AshuKumar2005/CityAcces/internal/api"
	"github.com/AshuKumar2005/CityAcces/internal/core/service"
	"github.com/AshuKumar2005/CityAcces/internal/infrastructure/storage"
	"github.com/AshuKumar2005/CityAcces/internal/pkg/config"
	"github.com/AshuKumar2005/CityAcces/pkg/logger"
)

// @title                       City Access API
// @version                     1.0
// @description                 Citizen services portal: complaints, amenities and announcements.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "city-access",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg, logger.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open storage")
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("closing storage")
		}
	}()

	repos := backend.Repos
	svcLog := logger.Component("service")
	e := api.NewRouter(api.Services{
		Sessions:      service.NewSessionService(repos.Identities, repos.Profiles, backend.Revocations, cfg.JWTSecret, cfg.TokenTTL, svcLog),
		Citizens:      service.NewCitizenService(repos, svcLog),
		Complaints:    service.NewComplaintTriageService(repos.Complaints, svcLog),
		Amenities:     service.NewAmenityService(repos.Amenities, svcLog),
		Announcements: service.NewAnnouncementService(repos.Announcements, svcLog),
		Stats:         service.NewStatsService(repos),
	}, api.Options{
		LoginRateLimit: cfg.LoginRateLimit,
		Checks:         backend.Checks,
	}, logger.Component("http"))

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
