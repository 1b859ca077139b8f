package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/inovacc/feedr/internal/application"
	"github.com/kardianos/service"
	"github.com/spf13/cobra"
)

var (
	serviceAction string
	serviceStatus bool
	serviceRun    bool
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Manage the headless controller as a system service",
	Long: `Install, uninstall, start, stop, restart, or check the status of the
headless feeder controller as a system service.

On Windows, this creates/manages a Windows Service.
On Linux/macOS, this creates/manages a systemd/launchd service.

The installed service runs "feedr service --run" with the current --config
and --data-dir flags.

Examples:
  feedr --data-dir /var/lib/feedr service --action install
  feedr service --action start
  feedr service --status`,
	RunE: runService,
}

func init() {
	rootCmd.AddCommand(serviceCmd)
	serviceCmd.Flags().StringVar(&serviceAction, "action", "",
		fmt.Sprintf("Service action: %s", strings.Join(service.ControlAction[:], ", ")))
	serviceCmd.Flags().BoolVar(&serviceStatus, "status", false, "Check feedr service status")
	serviceCmd.Flags().BoolVar(&serviceRun, "run", false, "Run under the service manager")
	_ = serviceCmd.Flags().MarkHidden("run")
	serviceCmd.MarkFlagsMutuallyExclusive("action", "status", "run")
}

// program implements service.Interface around the headless controller.
type program struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (p *program) Start(_ service.Service) error {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	// Start should not block.
	go func() {
		defer close(p.done)

		if err := runHeadlessController(ctx, cfg, slog.Default()); err != nil {
			slog.Error("controller exited", "error", err)
		}
	}()

	return nil
}

func (p *program) Stop(_ service.Service) error {
	if p.cancel == nil {
		return nil
	}

	p.cancel()
	<-p.done

	return nil
}

func serviceArguments() []string {
	args := []string{"service", "--run"}

	if cfgFile != "" {
		args = append(args, "--config", cfgFile)
	}

	if cfg.DataDir != "" {
		args = append(args, "--data-dir", cfg.DataDir)
	}

	return args
}

func newService() (service.Service, error) {
	svcConfig := &service.Config{
		Name:        application.ServiceName,
		DisplayName: "Feedr Fish Feeder Controller",
		Description: "Runs the feedr feed schedule without a terminal",
		Arguments:   serviceArguments(),
	}

	s, err := service.New(&program{}, svcConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	return s, nil
}

func runService(cmd *cobra.Command, _ []string) error {
	if serviceAction == "" && !serviceStatus && !serviceRun {
		return cmd.Help()
	}

	s, err := newService()
	if err != nil {
		return err
	}

	switch {
	case serviceRun:
		return s.Run()
	case serviceStatus:
		return printServiceStatus(s)
	}

	if !slices.Contains(service.ControlAction[:], serviceAction) {
		return fmt.Errorf("unknown service action %q (want one of %s)",
			serviceAction, strings.Join(service.ControlAction[:], ", "))
	}

	if serviceAction == "uninstall" {
		// The unit cannot be removed while it runs.
		_ = s.Stop()
	}

	if err := service.Control(s, serviceAction); err != nil {
		return fmt.Errorf("service %s: %w", serviceAction, err)
	}

	slog.Info("service updated", "service", application.ServiceName, "action", serviceAction)
	fmt.Printf("✓ %s: %s done\n", application.ServiceName, serviceAction)

	if serviceAction == "install" {
		fmt.Println("\nTo start the service, run:")
		fmt.Println("  feedr service --action start")
	}

	return nil
}

func printServiceStatus(s service.Service) error {
	status, err := s.Status()
	if err != nil {
		return fmt.Errorf("failed to get service status: %w", err)
	}

	fmt.Printf("Service Status: ")

	switch status {
	case service.StatusRunning:
		fmt.Println("Running ✓")
	case service.StatusStopped:
		fmt.Println("Stopped")
	case service.StatusUnknown:
		fmt.Println("Unknown")
	default:
		fmt.Printf("%v\n", status)
	}

	return nil
}
