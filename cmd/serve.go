package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/database"
	"github.com/DhavalSuthar-24/eplradar/internal/events"
	"github.com/DhavalSuthar-24/eplradar/internal/match"
	"github.com/DhavalSuthar-24/eplradar/routes"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	publisher := events.New(cfg.Kafka.Broker, cfg.Kafka.Topic)
	defer publisher.Close()

	hub := match.NewLiveHub()
	defer hub.Close()

	scheduler := match.NewStatusScheduler(match.NewMatchRepository(db), hub, publisher, cfg.Schedule.MatchDuration, cfg.App.MediaURL)
	if err := scheduler.Start(cfg.Schedule.StatusSpec); err != nil {
		return err
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr: ":" + cfg.App.Port,
		Handler: routes.SetupRoutes(routes.Deps{
			DB:        db,
			Config:    cfg,
			Logger:    l,
			Hub:       hub,
			Publisher: publisher,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		l.Info().Str("port", cfg.App.Port).Str("env", cfg.App.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	l.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
