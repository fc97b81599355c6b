package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/timegrid/app"
	"github.com/kilianp07/timegrid/config"
	"github.com/kilianp07/timegrid/core/layout"
)

var (
	cfgPath string
	preset  string
)

var rootCmd = &cobra.Command{
	Use:           "timegrid",
	Short:         "Lay out parallel-lane day schedules on a shared time grid",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "zoom preset overriding the configuration")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// newService loads the configuration and applies command line overrides.
func newService() (*app.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if name := strings.ToLower(strings.TrimSpace(preset)); name != "" {
		p, ok := layout.Presets[name]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		cfg.Layout = p
	}
	return app.New(cfg)
}

func closeService(cmd *cobra.Command, svc *app.Service) {
	if err := svc.Close(); err != nil {
		if _, ferr := fmt.Fprintf(cmd.ErrOrStderr(), "error while closing service: %v\n", err); ferr != nil {
			fmt.Println("failed to write to stderr:", ferr)
		}
	}
}

var errNoSchedule = errors.New("schedule file required")

func schedulePath(args []string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", errNoSchedule
	}
	return args[0], nil
}
