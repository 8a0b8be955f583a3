package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"coverage-planner/internal/common/config"
	"coverage-planner/internal/common/middleware"
	"coverage-planner/internal/planner/analysis"
	"coverage-planner/internal/planner/handlers"
	"coverage-planner/internal/planner/models"
	"coverage-planner/internal/planner/repository"
	"coverage-planner/internal/planner/schema"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Coverage Planner Service
// ============================================================

func main() {
	cfg, err := config.Load(config.PlannerPort)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := repository.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}

	validator, err := schema.NewProjectValidator()
	if err != nil {
		log.Fatalf("load schema: %v", err)
	}

	analyzer := analysis.New(analysis.Options{
		GridSize:     cfg.GridSize,
		MaxCells:     cfg.MaxGridCells,
		DefaultScale: models.NewScale(cfg.DefaultPixelsPerMeter),
	})
	plannerHandler := handlers.New(analyzer, validator, repo)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Coverage Planner",
		ErrorHandler: handlers.ErrorHandler,
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	app.Get("/health/ready", plannerHandler.Ready)

	// ============================================================
	// Planner Routes
	// ============================================================

	plannerHandler.Register(app)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Coverage Planner on %s (env: %s, grid: %dpx, max cells: %d, default scale: %g px/m)",
		addr, cfg.Environment, cfg.GridSize, cfg.MaxGridCells, cfg.DefaultPixelsPerMeter)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
