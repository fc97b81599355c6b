// Package export writes computed layouts and conflict lists as JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/kilianp07/timegrid/core/grid"
	"github.com/kilianp07/timegrid/core/layout"
	"github.com/kilianp07/timegrid/core/model"
	"github.com/kilianp07/timegrid/core/timecode"
)

// Format names an output encoding.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, CSV:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// Write encodes the layout in the requested format. entries are needed by
// the CSV encoder to print times and titles next to placements.
func Write(w io.Writer, f Format, l layout.Layout, entries []model.Entry) error {
	switch f {
	case JSON:
		return WriteJSON(w, l)
	case CSV:
		return WriteCSV(w, l, entries)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// WriteJSON writes the layout to w in indented JSON format.
func WriteJSON(w io.Writer, l layout.Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

var placementHeader = []string{
	"entry_id", "lane_id", "kind", "title", "start", "end",
	"start_row", "row_span", "lane_column", "col_index", "col_count", "top", "height",
}

// WriteCSV writes one row per placed entry, in placement order.
func WriteCSV(w io.Writer, l layout.Layout, entries []model.Entry) error {
	byID := make(map[string]model.Entry, len(entries))
	for _, e := range entries {
		if _, ok := byID[e.ID]; !ok {
			byID[e.ID] = e
		}
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(placementHeader); err != nil {
		return err
	}
	for _, p := range l.Placements {
		e := byID[p.EntryID]
		col := l.Columns[e.LaneID][p.EntryID]
		top := 0.0
		if p.StartRow >= 1 && p.StartRow <= len(l.RowOffsets) {
			top = l.RowOffsets[p.StartRow-1]
		}
		height := grid.SpanHeight(l.RowHeights, p.StartRow, p.RowSpan)
		rec := []string{
			p.EntryID,
			e.LaneID,
			e.Kind(),
			e.Title(),
			timecode.FormatMinutes(e.StartMinutes),
			timecode.FormatMinutes(e.EndMinutes()),
			strconv.Itoa(p.StartRow),
			strconv.Itoa(p.RowSpan),
			strconv.Itoa(p.LaneColumn),
			strconv.Itoa(col.ColIndex),
			strconv.Itoa(col.ColCount),
			strconv.FormatFloat(top, 'f', -1, 64),
			strconv.FormatFloat(height, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteConflictsCSV writes the ordered conflict occurrences with the label
// of the interval where each pair first collides.
func WriteConflictsCSV(w io.Writer, g grid.Grid) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"lane_id", "entry_a", "entry_b", "first_interval", "at"}); err != nil {
		return err
	}
	for _, o := range g.ConflictOccurrences {
		rec := []string{
			o.LaneID,
			o.Key.A,
			o.Key.B,
			strconv.Itoa(o.FirstIntervalIndex),
			IntervalLabel(g, o.FirstIntervalIndex),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// IntervalLabel returns the "HH:MM-HH:MM" label of interval i, or "" when i
// is out of range.
func IntervalLabel(g grid.Grid, i int) string {
	if i < 0 || i >= len(g.Intervals) {
		return ""
	}
	iv := g.Intervals[i]
	return iv.Label + "-" + timecode.FormatMinutes(iv.EndMinutes)
}
