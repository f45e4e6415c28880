package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"aidhub/internal/adapter/repo"
	"aidhub/internal/auth"
	"aidhub/internal/db"
	"aidhub/internal/domain"
	"aidhub/internal/http/handlers"
	httpapi "aidhub/internal/http/httpapi"
	"aidhub/internal/infra"
	"aidhub/internal/infra/geoip"
	"aidhub/internal/service"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	schemaDB := stdlib.OpenDBFromPool(dbpool)
	if err := db.Apply(ctx, schemaDB, logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply schema")
	}
	_ = schemaDB.Close()

	countries, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer countries.Close()

	runner := infra.NewSQLRunner(dbpool, logger)
	users := repo.NewUserRepository(runner)
	categories := repo.NewCategoryRepository(runner)
	requests := repo.NewRequestRepository(runner)
	comments := repo.NewCommentRepository(runner)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiresIn)
	lifecycle := domain.Lifecycle{AllowSelfResolve: cfg.AllowSelfResolve}

	app := &handlers.App{
		Auth:       service.NewAuthService(users, auth.NewPasswordHasher(cfg.BcryptCost), tokens, logger),
		Requests:   service.NewRequestService(requests, categories, comments, lifecycle, logger),
		Comments:   service.NewCommentService(requests, comments, lifecycle, logger),
		Categories: categories,
		Stats:      repo.NewStatsRepository(runner),
		DB:         dbpool,
		Logger:     logger,
		Production: cfg.Production(),
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		Tokens:          tokens,
		Users:           users,
		CORSOrigins:     cfg.CORSAllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		RequestTimeout:  cfg.RequestTimeout,
		DefaultLocale:   cfg.DefaultLocale,
		CountryLookup:   countries.Lookup(),
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Bool("self_resolve", cfg.AllowSelfResolve).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
