package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kilianp07/timegrid/pkg/export"
)

var layoutFormat string

var layoutCmd = &cobra.Command{
	Use:   "layout <schedule>",
	Short: "Compute the layout of a schedule and write it as JSON or CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayout,
}

func init() {
	layoutCmd.Flags().StringVarP(&layoutFormat, "format", "f", "", "output format: json or csv (default from config)")
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	path, err := schedulePath(args)
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	name := layoutFormat
	if name == "" {
		name = svc.Config().Export.Format
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return err
	}
	res, err := svc.BuildFile(path)
	if err != nil {
		return err
	}
	return export.Write(cmd.OutOrStdout(), format, res.Layout, res.Entries)
}
