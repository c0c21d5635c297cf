package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hs-exporter/internal/config"
	"hs-exporter/internal/export"
	"hs-exporter/internal/fetcher"
	"hs-exporter/internal/http"
	"hs-exporter/internal/pipeline"
	"hs-exporter/internal/service"
	"hs-exporter/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:   "hsexport",
		Short: "Export the HS 2022 nomenclature to an Excel workbook",
		Long: `Downloads the UN Statistics Division HS code table, keeps the basic-level
HS 2022 subheadings and writes HS_2022_Codes.xlsx with a "HS Tree" sheet and a
"Flat Table" sheet. When DB_PATH is set the run is also recorded in a SQLite catalog.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = loaded

			slog.SetDefault(setupLogger(cfg, cmd.ErrOrStderr()))
			slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runExport(cmd.Context(), cfg, pipeline.DefaultConfig(), cmd.OutOrStdout())
			return err
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the run catalog over HTTP and accept export requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	})

	return root
}

// setupLogger builds the process logger. Logs go to w (stderr) so stdout
// carries only progress lines.
func setupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// openCatalog opens and migrates the catalog database.
func openCatalog(dbPath string) (service.CatalogService, func(), error) {
	db, err := storage.New(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("Database initialized", "path", dbPath)

	catalog := service.NewCatalogService(storage.NewRunRepo(db), storage.NewCodeRepo(db))
	return catalog, func() { _ = db.Close() }, nil
}

// runExport performs one export, recording it in the catalog when one is configured.
func runExport(ctx context.Context, cfg *config.Config, pcfg pipeline.Config, progress io.Writer) (*pipeline.Result, error) {
	var recorder pipeline.Recorder
	if cfg.CatalogEnabled() {
		catalog, closeDB, err := openCatalog(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		defer closeDB()
		recorder = catalog
	}

	p := pipeline.NewPipeline(fetcher.NewClient(), export.NewWriter(), recorder, pcfg, progress)
	return p.Run(ctx)
}

// runServe starts the HTTP API and blocks until ctx is cancelled or the server fails.
func runServe(ctx context.Context, cfg *config.Config) error {
	if !cfg.CatalogEnabled() {
		return errors.New("serve requires DB_PATH to be set")
	}

	catalog, closeDB, err := openCatalog(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	exporter := pipeline.NewPipeline(fetcher.NewClient(), export.NewWriter(), catalog, pipeline.DefaultConfig(), nil)
	router := http.NewRouter(&http.Deps{
		Catalog:  catalog,
		Exporter: exporter,
	})

	srv := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("API server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("API server shutdown: %w", err)
	}
	return nil
}
