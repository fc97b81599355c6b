// Package preview renders a layout as a coloured text grid for terminals.
package preview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kilianp07/timegrid/core/layout"
	"github.com/kilianp07/timegrid/core/model"
	"github.com/kilianp07/timegrid/core/timecode"
)

// Options tune the rendering.
type Options struct {
	// ColumnWidth is the width of each lane column. Zero means 24.
	ColumnWidth int
	// PxPerLine scales row heights to terminal lines: a row gets
	// max(1, round(height/PxPerLine)) lines. Zero renders one line per row.
	PxPerLine float64
}

const defaultColumnWidth = 24

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Faint(true).Width(6)
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	cellStyle     = lipgloss.NewStyle().PaddingRight(1)
)

// Render draws one line per interval with a column per lane. Each cell lists
// the entries active in the interval; cells holding a conflict are flagged
// with "!".
func Render(l layout.Layout, entries []model.Entry, opts Options) string {
	width := opts.ColumnWidth
	if width <= 0 {
		width = defaultColumnWidth
	}
	lanes := l.Grid.Lanes
	if len(lanes) == 0 || len(l.Grid.Intervals) == 0 {
		return headerStyle.Render("(empty schedule)") + "\n"
	}

	// cells[row][lane] holds entry titles active in that row.
	cells := make([][][]string, len(l.Grid.Intervals))
	for i := range cells {
		cells[i] = make([][]string, len(lanes))
	}
	laneCol := model.LaneIndex(lanes)
	byID := make(map[string]model.Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	for _, p := range l.Placements {
		e, ok := byID[p.EntryID]
		col := p.LaneColumn - 1
		if !ok || col < 0 || col >= len(lanes) {
			continue
		}
		for r := p.StartRow - 1; r < p.StartRow-1+p.RowSpan && r < len(cells); r++ {
			if r < 0 {
				continue
			}
			title := e.Title()
			if r != p.StartRow-1 {
				title = "│ " + title
			}
			cells[r][col] = append(cells[r][col], title)
		}
	}
	conflicted := make(map[[2]int]bool, len(l.Grid.Conflicts))
	for _, c := range l.Grid.Conflicts {
		if col, ok := laneCol[c.LaneID]; ok {
			conflicted[[2]int{c.IntervalIndex, col}] = true
		}
	}

	laneStyles := make([]lipgloss.Style, len(lanes))
	for i, ln := range lanes {
		s := cellStyle.Width(width)
		if ln.Color != "" {
			s = s.Foreground(lipgloss.Color(ln.Color))
		}
		laneStyles[i] = s
	}

	var b strings.Builder
	header := []string{labelStyle.Render("")}
	for i, ln := range lanes {
		name := ln.DisplayName
		if name == "" {
			name = ln.ID
		}
		header = append(header, headerStyle.Inherit(laneStyles[i]).Render(truncate(name, width-1)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for r, iv := range l.Grid.Intervals {
		lines := 1
		if opts.PxPerLine > 0 && r < len(l.RowHeights) {
			if n := int(l.RowHeights[r]/opts.PxPerLine + 0.5); n > 1 {
				lines = n
			}
		}
		row := []string{labelStyle.Height(lines).Render(iv.Label)}
		for col := range lanes {
			text := truncate(strings.Join(cells[r][col], ", "), width-3)
			if conflicted[[2]int{r, col}] {
				text = conflictStyle.Render("!") + " " + text
			}
			row = append(row, laneStyles[col].Height(lines).Render(text))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}
	last := l.Grid.Intervals[len(l.Grid.Intervals)-1]
	b.WriteString(labelStyle.Render(timecode.FormatMinutes(last.EndMinutes)))
	b.WriteString("\n")
	return b.String()
}

// RenderConflicts lists conflict occurrences in navigation order, one per
// line, followed by a per-lane summary.
func RenderConflicts(l layout.Layout) string {
	var b strings.Builder
	occ := l.Grid.ConflictOccurrences
	if len(occ) == 0 {
		b.WriteString("no conflicts\n")
		return b.String()
	}
	for i, o := range occ {
		at := ""
		if o.FirstIntervalIndex >= 0 && o.FirstIntervalIndex < len(l.Grid.Intervals) {
			at = l.Grid.Intervals[o.FirstIntervalIndex].Label
		}
		fmt.Fprintf(&b, "%s %s %s: %s ↔ %s\n",
			conflictStyle.Render(fmt.Sprintf("%2d.", i+1)), at, o.LaneID, o.Key.A, o.Key.B)
	}
	lanes := make([]string, 0, len(l.Grid.ConflictPairCountByLane))
	for id := range l.Grid.ConflictPairCountByLane {
		lanes = append(lanes, id)
	}
	sort.Strings(lanes)
	parts := make([]string, 0, len(lanes))
	for _, id := range lanes {
		parts = append(parts, fmt.Sprintf("%s=%d", id, l.Grid.ConflictPairCountByLane[id]))
	}
	b.WriteString(headerStyle.Render("pairs by lane: " + strings.Join(parts, " ")))
	b.WriteString("\n")
	return b.String()
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
