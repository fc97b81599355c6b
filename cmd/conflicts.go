package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/timegrid/core/conflict"
	"github.com/kilianp07/timegrid/core/model"
	"github.com/kilianp07/timegrid/pkg/export"
	"github.com/kilianp07/timegrid/pkg/preview"
)

var (
	conflictsCSV    bool
	conflictsAfter  string
	conflictsBefore string
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts <schedule>",
	Short: "List same-lane conflicts in navigation order",
	Long: `List same-lane conflicts in navigation order.

With --after or --before only the neighbouring conflict of the given pair
(written lane|a::b) is printed; navigation wraps around at both ends.`,
	Args: cobra.ExactArgs(1),
	RunE: runConflicts,
}

func init() {
	conflictsCmd.Flags().BoolVar(&conflictsCSV, "csv", false, "write conflicts as CSV")
	conflictsCmd.Flags().StringVar(&conflictsAfter, "after", "", "print the conflict following this pair")
	conflictsCmd.Flags().StringVar(&conflictsBefore, "before", "", "print the conflict preceding this pair")
	conflictsCmd.MarkFlagsMutuallyExclusive("after", "before")
	rootCmd.AddCommand(conflictsCmd)
}

func runConflicts(cmd *cobra.Command, args []string) error {
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
	out := cmd.OutOrStdout()
	if conflictsAfter != "" || conflictsBefore != "" {
		o, ok, err := neighbour(res.Layout.Grid.ConflictOccurrences, conflictsAfter, conflictsBefore)
		if err != nil {
			return err
		}
		if !ok {
			_, err = fmt.Fprintln(out, "no conflicts")
			return err
		}
		_, err = fmt.Fprintf(out, "%s %s\n", o.Key, export.IntervalLabel(res.Layout.Grid, o.FirstIntervalIndex))
		return err
	}
	if conflictsCSV {
		return export.WriteConflictsCSV(out, res.Layout.Grid)
	}
	_, err = fmt.Fprint(out, preview.RenderConflicts(res.Layout))
	return err
}

// neighbour steps a cursor from the named pair. Exactly one of after and
// before is set.
func neighbour(occ []model.ConflictOccurrence, after, before string) (model.ConflictOccurrence, bool, error) {
	raw := after
	if raw == "" {
		raw = before
	}
	key, ok := model.ParsePairKey(raw)
	if !ok {
		return model.ConflictOccurrence{}, false, fmt.Errorf("invalid pair %q, want lane|a::b", raw)
	}
	c := conflict.NewCursor(occ)
	if c.Len() == 0 {
		return model.ConflictOccurrence{}, false, nil
	}
	if !c.Seek(key) {
		return model.ConflictOccurrence{}, false, fmt.Errorf("pair %s is not in conflict", key)
	}
	if after != "" {
		o, ok := c.Next()
		return o, ok, nil
	}
	o, ok := c.Prev()
	return o, ok, nil
}
