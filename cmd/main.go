package main

import (
	"appraiser/internal/configuration"
	"appraiser/internal/estimate"
	"appraiser/internal/insight"
	"appraiser/internal/logging"
	"appraiser/internal/metrics"
	"appraiser/internal/server"
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// On errors while loading the configuration, reading the rules or starting
// the server the process exits with code 1.
func main() {
	configPath := flag.String("config", "/etc/appraiser/config.yaml", "configuration file")
	envPath := flag.String("env", ".env", "optional dotenv file with environment overrides")
	flag.Parse()

	if err := run(*configPath, *envPath); err != nil {
		os.Exit(1)
	}
}

// run wires the service and serves until SIGINT or SIGTERM.
// It returns after the log output is closed, so a failing start still
// flushes the log file.
func run(configPath, envPath string) error {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("Unable to load env file", "file", envPath, "error", err)
		return err
	}

	config, err := configuration.LoadConfig(configPath)
	if err != nil {
		slog.Error("Unable to load configuration", "error", err)
		return err
	}
	logOutput := logging.Setup(config.Logger)
	defer logOutput.Close()

	var tagger *insight.Tagger
	if len(config.Engine.Rules) != 0 {
		tagger, err = insight.LoadFromFile(config.Engine.Rules)
		if err != nil {
			slog.Error("Unable to load insight rules", "error", err)
			return err
		}
		slog.Info("Insight rules loaded", "rules", tagger.Len())
	}

	appCtx, appCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer appCancel()

	engine := estimate.NewEngine(estimate.NewRandom(config.Engine.Seed), estimate.WithLogger(slog.Default()))

	var (
		appMetrics *metrics.Metrics
		gatherer   prometheus.Gatherer
	)
	if config.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		appMetrics = metrics.NewWithRegistry(registry)
		gatherer = registry
	}

	router := server.NewApiV1Router(engine, tagger, appMetrics, gatherer, config.Metrics.Path)
	srv := server.NewServer(config.Server, router)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			serveErr <- err
			appCancel()
		}
	}()
	slog.Info("Server listening " + config.Server.Address)
	<-appCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second*10)
	defer shutdownCancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		slog.Error("Server shutdown", "error", err)
	}
	slog.Info("Server stopped")

	select {
	case err := <-serveErr:
		return err
	default:
		return nil
	}
}
