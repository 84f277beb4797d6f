package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/holocron/internal/config"
	"github.com/deppfellow/holocron/internal/database"
	"github.com/deppfellow/holocron/internal/handler"
	"github.com/deppfellow/holocron/internal/logger"
	"github.com/deppfellow/holocron/internal/repository"
	"github.com/deppfellow/holocron/internal/router"
	"github.com/deppfellow/holocron/internal/seed"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/deppfellow/holocron/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// shutdownTimeout bounds how long in-flight requests get after a signal.
const shutdownTimeout = 30 * time.Second

func newRootCommand() *cobra.Command {
	serveCmd := newServeCommand()

	root := &cobra.Command{
		Use:           "holocron",
		Short:         "REST API for the Star Wars catalog and favorites",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}
	root.Flags().AddFlagSet(serveCmd.Flags())

	root.AddCommand(serveCmd, newMigrateCommand(), newSeedCommand())
	return root
}

// runtime bundles what every subcommand needs: validated config and a
// logger wired to New Relic when configured.
type runtime struct {
	cfg           *config.Config
	log           zerolog.Logger
	loggerService *logger.LoggerService
}

func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return &runtime{cfg: cfg, log: log, loggerService: loggerService}, nil
}

func (rt *runtime) close() {
	rt.loggerService.Shutdown()
}

func newServeCommand() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			return serve(cmd.Context(), rt, !skipMigrate)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not migrate the schema on startup")

	return cmd
}

func serve(ctx context.Context, rt *runtime, migrate bool) error {
	srv, err := server.New(rt.cfg, &rt.log, rt.loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if migrate {
		if err := database.Migrate(ctx, &rt.log, srv.DB); err != nil {
			_ = srv.Shutdown(ctx)
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Join(err, srv.Shutdown(shutdownCtx))
	case <-ctx.Done():
	}

	rt.log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	rt.log.Info().Msg("server exited properly")
	return nil
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			db, err := database.New(rt.cfg, &rt.log, rt.loggerService)
			if err != nil {
				return err
			}
			defer db.Close()

			return database.Migrate(cmd.Context(), &rt.log, db)
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [fixtures.yaml]",
		Short: "Upsert catalog fixtures, the bundled set when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			var fixtures *seed.Fixtures
			if len(args) == 1 {
				fixtures, err = seed.LoadFile(args[0])
			} else {
				fixtures, err = seed.Default()
			}
			if err != nil {
				return err
			}

			db, err := database.New(rt.cfg, &rt.log, rt.loggerService)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(cmd.Context(), &rt.log, db); err != nil {
				return err
			}

			return seed.Apply(cmd.Context(), &rt.log, db.DB, fixtures)
		},
	}
}
