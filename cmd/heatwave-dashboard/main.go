package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/lvmeteo/heatwave-dashboard/internal/api/http"
	"github.com/lvmeteo/heatwave-dashboard/internal/climate"
	"github.com/lvmeteo/heatwave-dashboard/internal/config"
	"github.com/lvmeteo/heatwave-dashboard/internal/observability"
	"github.com/lvmeteo/heatwave-dashboard/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// Load both tables once at startup. The HWI table is required; the
	// heatwave-days table degrades to a disabled tab when absent.
	load := func() (*climate.Dataset, error) {
		return climate.LoadDataset(log, cfg.HWIPath, cfg.HeatwaveDaysPath)
	}

	ds, err := load()
	if err != nil {
		log.Error("failed to load dataset", "path", cfg.HWIPath, "error", err)
		os.Exit(1)
	}
	metrics.ObserveDataset(len(ds.HWI), len(ds.HeatwaveDays))

	store := climate.NewStore(ds)

	// Optional periodic reload; a no-op unless RELOAD_INTERVAL is set.
	sched := scheduler.New(store, load, cfg.ReloadInterval, log, metrics)
	if err := sched.Start(); err != nil {
		log.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "heatwave-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	httpapi.RegisterRoutes(app, store, metrics)

	go func() {
		log.Info("http server starting", "addr", cfg.Addr())
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Error("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("error during shutdown", "error", err)
	}
}
