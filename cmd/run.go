package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/feedr/internal/cli"
	"github.com/inovacc/feedr/internal/device"
	"github.com/inovacc/feedr/internal/metrics"
	"github.com/inovacc/feedr/internal/model"
	"github.com/inovacc/feedr/internal/params"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const logFileName = "feedr.log"

var (
	runHeadless    bool
	runMetricsAddr string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the feeder controller",
	Long: `Run the feeder controller.

In a terminal the device panel is shown and driven with two keys:
space (short press) and enter (long press). Logs go to feedr.log in the
data directory while the panel is up.

Without a terminal, or with --headless, the controller only feeds on
schedule and logs every screen at debug level. In headless mode
--metrics-addr serves Prometheus metrics on /metrics.

Examples:
  feedr run
  feedr run --headless --metrics-addr :9101`,
	RunE: runController,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runHeadless, "headless", false, "Run without the terminal panel")
	runCmd.Flags().StringVar(&runMetricsAddr, "metrics-addr", "", "Listen address for /metrics in headless mode")
}

func runController(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("metrics-addr") {
		cfg.MetricsAddr = runMetricsAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if runHeadless || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runHeadlessController(ctx, cfg, slog.Default())
	}

	return runInteractive(ctx, cfg)
}

func runInteractive(ctx context.Context, cfg model.Config) error {
	dir, err := params.DataDir(cfg.DataDir)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	ctrl, err := openController(cfg, logger)
	if err != nil {
		return err
	}
	defer ctrl.close()

	input := device.NewQueueInput(8)
	screen := cli.NewScreen()
	nav := ctrl.navigator(input, screen)

	p := tea.NewProgram(cli.NewModel(nav, input, screen), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal panel: %w", err)
	}

	return nil
}

// runHeadlessController feeds on schedule until ctx is done.
func runHeadlessController(ctx context.Context, cfg model.Config, logger *slog.Logger) error {
	ctrl, err := openController(cfg, logger)
	if err != nil {
		return err
	}
	defer ctrl.close()

	if cfg.MetricsAddr != "" {
		srv := startMetricsServer(cfg.MetricsAddr, ctrl, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("metrics server shutdown", "error", err)
			}
		}()
	}

	nav := ctrl.navigator(device.NoInput{}, device.NewLogDisplay(logger))

	logger.Info("headless controller running")

	err = nav.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("headless controller stopped")
		return nil
	}

	return err
}

func startMetricsServer(addr string, ctrl *controller, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(ctrl.registry))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := ctrl.store.Ping(); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		_, _ = fmt.Fprintln(w, "ok")
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("metrics server listening", "addr", addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()

	return srv
}
