package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/timegrid/app"
	"github.com/kilianp07/timegrid/infra/schedule"
	"github.com/kilianp07/timegrid/pkg/preview"
)

var (
	watchDebounce time.Duration
	watchPreview  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <schedule>",
	Short: "Rebuild the layout whenever the schedule file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", schedule.DefaultDebounce, "quiet period before a change is reloaded")
	watchCmd.Flags().BoolVar(&watchPreview, "preview", false, "print a preview after each rebuild")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := schedulePath(args)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	out := cmd.OutOrStdout()
	return svc.Watch(ctx, path, watchDebounce, func(res app.Result) {
		g := res.Layout.Grid
		fmt.Fprintf(out, "%s %s: %d entries, %d intervals, %d conflicts, %d diagnostics\n",
			time.Now().Format(time.TimeOnly), res.Source, len(res.Entries), len(g.Intervals),
			len(g.ConflictOccurrences), len(res.Diagnostics))
		if watchPreview {
			fmt.Fprint(out, preview.Render(res.Layout, res.Entries, preview.Options{}))
		}
	})
}
