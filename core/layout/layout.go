// Package layout combines the grid, row metrics, placements and column
// packing into the single value a renderer needs.
package layout

import (
	"github.com/kilianp07/timegrid/core/grid"
	"github.com/kilianp07/timegrid/core/model"
	"github.com/kilianp07/timegrid/core/overlap"
)

// Layout is the fully computed timeline for one schedule.
type Layout struct {
	Grid        grid.Grid                                     `json:"grid"`
	Config      Config                                        `json:"config"`
	RowHeights  []float64                                     `json:"row_heights"`
	RowOffsets  []float64                                     `json:"row_offsets"`
	TotalHeight float64                                       `json:"total_height"`
	Placements  []model.RenderPlacement                       `json:"placements"`
	Columns     map[string]map[string]model.ColumnAssignment `json:"columns"`
	Diagnostics []model.Diagnostic                            `json:"diagnostics,omitempty"`
}

// Compute lays out entries over lanes with the zoom in cfg. cfg is used as
// given; call SetDefaults first to resolve presets.
func Compute(entries []model.Entry, lanes []model.Lane, cfg Config) Layout {
	g := grid.BuildGrid(entries, lanes)
	heights := grid.ComputeRowHeights(g.Intervals, cfg.PxPerMinute, cfg.MinRowHeight)
	placements, diags := grid.PlaceEntries(g, entries)

	l := Layout{
		Grid:        g,
		Config:      cfg,
		RowHeights:  heights,
		RowOffsets:  grid.RowOffsets(heights),
		TotalHeight: grid.TotalHeight(heights),
		Placements:  placements,
		Columns:     overlap.PackByLane(entries, g.Lanes),
	}
	l.Diagnostics = append(l.Diagnostics, g.Diagnostics...)
	for _, d := range diags {
		// unknown lanes are already reported by the grid
		if d.Kind == model.UnknownLaneReference {
			continue
		}
		l.Diagnostics = append(l.Diagnostics, d)
	}
	return l
}

// Placement returns the placement for id.
func (l Layout) Placement(id string) (model.RenderPlacement, bool) {
	for _, p := range l.Placements {
		if p.EntryID == id {
			return p, true
		}
	}
	return model.RenderPlacement{}, false
}

// EntryHeight returns the rendered height of the entry with the given id.
func (l Layout) EntryHeight(id string) float64 {
	p, ok := l.Placement(id)
	if !ok {
		return 0
	}
	return grid.SpanHeight(l.RowHeights, p.StartRow, p.RowSpan)
}

// EntryTop returns the top offset of the entry with the given id.
func (l Layout) EntryTop(id string) float64 {
	p, ok := l.Placement(id)
	if !ok || p.StartRow < 1 || p.StartRow > len(l.RowOffsets) {
		return 0
	}
	return l.RowOffsets[p.StartRow-1]
}
