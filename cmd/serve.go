package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"slot-engine/internal/adapter/events"
	httpadapter "slot-engine/internal/adapter/http"
	"slot-engine/internal/adapter/session"
	"slot-engine/internal/adapter/usecase"
	"slot-engine/internal/core/port"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

// runServe wires the catalog, brokers and usecases, then serves HTTP
// until SIGINT or SIGTERM.
func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cat, err := openCatalog(ctx, cfg, logger, false)
	if err != nil {
		return err
	}
	defer cat.close()

	var notifier port.HeadlineNotifier
	if cfg.NATS.URL != "" {
		n, err := events.NewHeadlineNotifier(cfg.NATS.URL, cfg.NATS.Subject)
		if err != nil {
			return err
		}
		defer n.Close()
		notifier = n
		logger.Info("headline changes published", slog.String("subject", cfg.NATS.Subject))
	}

	var sink port.EngagementSink
	if len(cfg.Kafka.Brokers) > 0 {
		s := events.NewEngagementSink(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.BatchTimeout, logger)
		defer func() {
			if err := s.Close(); err != nil {
				logger.Error("close kafka writer", slog.Any("error", err))
			}
		}()
		sink = s
		logger.Info("engagements streamed", slog.String("topic", cfg.Kafka.Topic))
	}

	placements := usecase.NewPlacementUseCase(cat.ads, logger)
	headlines := usecase.NewHeadlineUseCase(cat.headlines, cat.headlines.Slots(), notifier, logger, cfg.Reconcile)
	engagement := usecase.NewEngagementUseCase(
		session.NewTracker(cfg.Session.IdleTTL), cat.ads, sink, logger, cfg.Session.CountTimeout)

	handler := httpadapter.NewHandler(placements, headlines, engagement, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("catalog", cfg.Catalog.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
