package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/timegrid/pkg/preview"
)

var previewOpts preview.Options

var previewCmd = &cobra.Command{
	Use:   "preview <schedule>",
	Short: "Print a coloured terminal preview of the schedule grid",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewOpts.ColumnWidth, "width", 0, "lane column width")
	previewCmd.Flags().Float64Var(&previewOpts.PxPerLine, "px-per-line", 0, "pixels per terminal line; 0 prints one line per interval")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	path, err := schedulePath(args)
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	res, err := svc.BuildFile(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), preview.Render(res.Layout, res.Entries, previewOpts))
	return err
}
