package grid

import (
	"github.com/kilianp07/timegrid/core/conflict"
	"github.com/kilianp07/timegrid/core/model"
)

// Grid is the row partition of a schedule together with its conflicts.
type Grid struct {
	Intervals               []model.Interval           `json:"intervals"`
	Conflicts               []model.ConflictCell       `json:"conflicts"`
	ConflictOccurrences     []model.ConflictOccurrence `json:"conflict_occurrences"`
	ConflictPairCountByLane map[string]int             `json:"conflict_pair_count_by_lane"`
	Lanes                   []model.Lane               `json:"lanes"`
	Diagnostics             []model.Diagnostic         `json:"diagnostics,omitempty"`
}

func emptyGrid() Grid {
	return Grid{
		Intervals:               []model.Interval{},
		Conflicts:               []model.ConflictCell{},
		ConflictOccurrences:     []model.ConflictOccurrence{},
		ConflictPairCountByLane: map[string]int{},
		Lanes:                   []model.Lane{},
	}
}

// BuildGrid derives intervals and conflicts from entries and lanes. It is a
// pure function: inputs are not modified and nothing is retained between
// calls. Without entries the grid is empty; with entries but no lanes the grid
// is empty and carries a NoLanes diagnostic.
func BuildGrid(entries []model.Entry, lanes []model.Lane) Grid {
	g := emptyGrid()
	if len(entries) == 0 {
		return g
	}
	if len(lanes) == 0 {
		g.Diagnostics = []model.Diagnostic{{
			Kind:    model.NoLanes,
			Message: "entries supplied without lanes",
		}}
		return g
	}

	g.Lanes = model.SortLanes(lanes)
	g.Intervals = BuildIntervals(entries)

	known := model.LaneIndex(g.Lanes)
	for _, e := range entries {
		if _, ok := known[e.LaneID]; !ok {
			g.Diagnostics = append(g.Diagnostics, unknownLane(e))
		}
	}

	g.Conflicts = conflict.Detect(g.Intervals, entries, g.Lanes)
	if g.Conflicts == nil {
		g.Conflicts = []model.ConflictCell{}
	}
	g.ConflictOccurrences = conflict.Aggregate(g.Conflicts, g.Lanes)
	g.ConflictPairCountByLane = conflict.CountByLane(g.ConflictOccurrences, g.Lanes)
	return g
}
