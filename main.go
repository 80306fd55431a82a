package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/lucky-wheel/cliparse"
	"github.com/danielhkuo/lucky-wheel/engine"
	"github.com/danielhkuo/lucky-wheel/handlers"
	"github.com/danielhkuo/lucky-wheel/middleware"
	"github.com/danielhkuo/lucky-wheel/models"
	"github.com/danielhkuo/lucky-wheel/orchestrator"
	"github.com/danielhkuo/lucky-wheel/router"
	"github.com/danielhkuo/lucky-wheel/sampler"
	"github.com/danielhkuo/lucky-wheel/store"
)

func main() {
	var err error

	// Load .env if present (real env wins)
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	driver := cfg.DatabaseType
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Seed configuration: defaults overlaid with the optional YAML file
	seed := store.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = store.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			slog.Error("seed file load failed", "file", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
	}

	// Open the state store (creates schema, seeds on first run)
	st, err := store.Open(dbConn, driver, seed, slog.Default())
	if err != nil {
		slog.Error("store open failed", "error", err)
		os.Exit(1)
	}
	slog.Info("State store ready")

	state := st.GetState()

	// Animation engine owns the wheel; one goroutine drives all frames
	eng := engine.New(state.Candidates, slog.Default())
	defer eng.Dispose()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go eng.Run(ctx)

	// Draw orchestrator
	orch := orchestrator.New(st, eng, eng, handlers.RequestPrompter{}, sampler.Default,
		orchestrator.SpinSettings{
			Duration:  cfg.SpinDuration,
			Turns:     cfg.SpinTurns,
			BaseSpeed: cfg.BaseSpeed,
			Stop:      cfg.StopConfig(),
		}, slog.Default())
	defer orch.Close()

	// Log state transitions for operators
	defer st.Subscribe(func(s models.AppState) {
		slog.Debug("state changed",
			"candidates", len(s.Candidates),
			"prizes", len(s.Prizes),
			"drawing", s.Drawing,
			"free_mode", s.FreeMode,
		)
	})()

	// Create router
	mux := router.NewRouter(st, eng, orch, seed, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
