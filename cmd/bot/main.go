package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/config"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/service"
	"github.com/diegoclair/slack-reminder-bot/internal/handlers"
	"github.com/diegoclair/slack-reminder-bot/internal/logger"
	"github.com/diegoclair/slack-reminder-bot/internal/notifier"
	"github.com/diegoclair/slack-reminder-bot/internal/scheduler"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("bot stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg, zlog)
	if err != nil {
		return err
	}
	defer store.Close()

	slackClient := slack.New(cfg.SlackBotToken)
	slackNotifier := notifier.NewSlack(slackClient, cfg.SlackRatePerSec, zlog.Named("notifier"))

	services := service.NewInstance(store, slackNotifier, zlog)
	if err := services.Load(ctx); err != nil {
		return fmt.Errorf("failed to load reminders: %w", err)
	}

	sched := scheduler.New(services.Scheduler, cfg.ScanSchedule, zlog.Named("scheduler"))
	if err := sched.Start(); err != nil {
		return err
	}

	handler := handlers.New(services.Reminder, cfg.SlackSigningSecret, zlog.Named("handler"))

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		zlog.Info("shutdown requested")
	case err := <-serverErr:
		if err != nil {
			zlog.Error("server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("http shutdown", zap.Error(err))
	}

	// the last scan must finish before the store is closed
	if err := sched.Stop(shutdownCtx); err != nil {
		zlog.Warn("scheduler shutdown", zap.Error(err))
	}

	return nil
}
