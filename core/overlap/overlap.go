// Package overlap assigns side-by-side columns to overlapping entries of one
// lane. Columns are allocated greedily per cluster of transitively
// overlapping entries, so a deep overlap in one stretch of the lane does not
// narrow unrelated entries elsewhere.
package overlap

import (
	"sort"

	"github.com/kilianp07/timegrid/core/model"
)

// Pack assigns a column to every entry of a single lane. Entries are taken in
// (start, end, id) order; each goes into the first column whose last entry has
// ended, or a new column. A cluster closes when no open column is still
// active at the next entry's start; every member then receives the number of
// columns the cluster opened as ColCount. Assignments are keyed by ID, so
// when an ID repeats only its first entry in that order is packed and the
// duplicates are ignored.
func Pack(laneEntries []model.Entry) map[string]model.ColumnAssignment {
	out := make(map[string]model.ColumnAssignment, len(laneEntries))
	if len(laneEntries) == 0 {
		return out
	}
	sorted := make([]model.Entry, len(laneEntries))
	copy(sorted, laneEntries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.StartMinutes != b.StartMinutes {
			return a.StartMinutes < b.StartMinutes
		}
		if a.EndMinutes() != b.EndMinutes() {
			return a.EndMinutes() < b.EndMinutes()
		}
		return a.ID < b.ID
	})

	var (
		colEnd  []int
		members []string
	)
	closeCluster := func() {
		for _, id := range members {
			a := out[id]
			a.ColCount = len(colEnd)
			out[id] = a
		}
		members = members[:0]
		colEnd = colEnd[:0]
	}

	for _, e := range sorted {
		if _, dup := out[e.ID]; dup {
			continue
		}
		if len(colEnd) > 0 && allEnded(colEnd, e.StartMinutes) {
			closeCluster()
		}
		col := -1
		for i, end := range colEnd {
			if end <= e.StartMinutes {
				col = i
				break
			}
		}
		if col < 0 {
			col = len(colEnd)
			colEnd = append(colEnd, e.EndMinutes())
		} else {
			colEnd[col] = e.EndMinutes()
		}
		out[e.ID] = model.ColumnAssignment{EntryID: e.ID, ColIndex: col}
		members = append(members, e.ID)
	}
	closeCluster()
	return out
}

func allEnded(colEnd []int, at int) bool {
	for _, end := range colEnd {
		if end > at {
			return false
		}
	}
	return true
}

// PackByLane runs Pack for every lane in lanes. Entries on unknown lanes are
// ignored.
func PackByLane(entries []model.Entry, lanes []model.Lane) map[string]map[string]model.ColumnAssignment {
	byLane := make(map[string][]model.Entry, len(lanes))
	for _, l := range lanes {
		byLane[l.ID] = nil
	}
	for _, e := range entries {
		if _, ok := byLane[e.LaneID]; ok {
			byLane[e.LaneID] = append(byLane[e.LaneID], e)
		}
	}
	out := make(map[string]map[string]model.ColumnAssignment, len(byLane))
	for id, es := range byLane {
		out[id] = Pack(es)
	}
	return out
}
