package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"seo-forecast-api/internal/config"
	"seo-forecast-api/internal/handlers"
	"seo-forecast-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	// Initialize services
	forecastCache := services.NewForecastCache(cfg.CacheTTL)
	forecastService := services.NewForecastService(cfg, forecastCache)

	// Initialize handlers
	forecastHandler := handlers.NewForecastHandler(forecastService)
	healthHandler := handlers.NewHealthHandler()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		StrictRouting: true,
		CaseSensitive: true,
		ServerHeader:  "SEO-Forecast-API",
		AppName:       "SEO Traffic Forecaster v1.0",
		ReadTimeout:   time.Second * 10,
		WriteTimeout:  time.Second * 30,
		BodyLimit:     cfg.BodyLimitBytes,
		ErrorHandler:  handlers.CustomErrorHandler,
	})

	// Middleware stack
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(requestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       3600,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitPerMin,
		Expiration: 1 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		},
	}))

	// Routes
	app.Get("/", handlers.Index)

	app.Get("/health", healthHandler.Health)
	app.Get("/health/ready", healthHandler.Ready)

	// API v1 routes
	v1 := app.Group("/v1")
	v1.Post("/forecast", forecastHandler.GetForecast)
	v1.Post("/forecast/report", forecastHandler.GetForecastReport)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	log.Info().Str("port", port).Str("environment", cfg.Environment).Msg("SEO Traffic Forecaster started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server shutdown complete")
}

// requestLogger logs each request through zerolog
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request")
		return err
	}
}
