// Package main is the entry point for the TripSmart API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/Sahil-at-Work/TripSmart/internal/config"
	"github.com/Sahil-at-Work/TripSmart/internal/handler"
	"github.com/Sahil-at-Work/TripSmart/internal/middleware"
	"github.com/Sahil-at-Work/TripSmart/internal/repo"
	"github.com/Sahil-at-Work/TripSmart/internal/service"
	"github.com/Sahil-at-Work/TripSmart/internal/weather"
	"github.com/Sahil-at-Work/TripSmart/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A .env file is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed to read .env", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if cfg.MigrateOnStart {
		if err := migrate(context.Background(), pool); err != nil {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	// --- Weather ----------------------------------------------------------
	weatherSvc := newWeatherService(cfg, logger)

	// --- Services ---------------------------------------------------------
	cities := repo.NewCityRepo(pool)
	attractions := repo.NewAttractionRepo(pool)
	catalogSvc := service.NewCatalogService(cities, attractions, weatherSvc)
	itinerarySvc := service.NewItineraryService(
		repo.NewItineraryRepo(pool),
		repo.NewVisitRepo(pool),
		cities,
		attractions,
		weatherSvc,
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP, which the
	// weather rate limiter keys on.
	limiter := middleware.NewRateLimiter(cfg.WeatherRatePerSec, cfg.WeatherRateBurst)
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	srv := handler.NewServer(catalogSvc, itinerarySvc, weatherSvc, logger)
	r.Mount("/", handler.NewRouter(srv, handler.RouterOptions{
		Authenticate: middleware.NewAuthenticator([]byte(cfg.JWTSecret), logger),
		WeatherLimit: limiter.Handler,
	}))

	// --- HTTP Server ------------------------------------------------------
	// WriteTimeout leaves room for two upstream weather calls with retries.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies pending embedded migrations through a database/sql
// handle borrowed from the pool.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return err
	}
	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}

// newWeatherService wires the OpenWeather client, the optional Redis cache
// and the fallback policy. Without an API key every lookup is mocked or
// seasonal; without Redis responses are not cached.
func newWeatherService(cfg config.Config, logger *slog.Logger) *weather.Service {
	opts := []weather.Option{weather.WithLogger(logger)}
	if cfg.OpenWeatherAPIKey == "" {
		slog.Warn("OPENWEATHER_API_KEY not set; weather uses fallback data")
		return weather.NewService(nil, opts...)
	}

	client, err := weather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, nil)
	if err != nil {
		slog.Error("failed to create weather client", "error", err)
		os.Exit(1)
	}
	opts = append(opts, weather.WithGeocoder(client))

	var source weather.Source = client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		source = weather.NewCachedSource(client, redis.NewClient(redisOpts), cfg.WeatherCacheTTL, logger)
		slog.Info("weather cache enabled", "ttl", cfg.WeatherCacheTTL)
	}
	return weather.NewService(source, opts...)
}
