package conflict

import (
	"sort"

	"github.com/kilianp07/timegrid/core/model"
)

type cellKey struct {
	interval int
	lane     string
}

// Detect returns the conflict cells for entries laid over intervals. Entries
// referencing a lane absent from lanes are skipped. Cells are ordered by
// interval index then lane display order.
func Detect(intervals []model.Interval, entries []model.Entry, lanes []model.Lane) []model.ConflictCell {
	if len(intervals) == 0 || len(entries) == 0 || len(lanes) == 0 {
		return nil
	}
	order := model.LaneIndex(model.SortLanes(lanes))

	active := make(map[cellKey][]string)
	for _, e := range entries {
		if _, ok := order[e.LaneID]; !ok {
			continue
		}
		first, count, _ := model.Locate(intervals, e.StartMinutes, e.EndMinutes())
		for i := first; i < first+count; i++ {
			iv := intervals[i]
			if e.StartMinutes >= iv.EndMinutes || iv.StartMinutes >= e.EndMinutes() {
				continue
			}
			k := cellKey{interval: iv.Index, lane: e.LaneID}
			active[k] = append(active[k], e.ID)
		}
	}

	cells := make([]model.ConflictCell, 0)
	for k, ids := range active {
		if len(ids) < 2 {
			continue
		}
		sorted := append([]string(nil), ids...)
		sort.Strings(sorted)
		cells = append(cells, model.ConflictCell{IntervalIndex: k.interval, LaneID: k.lane, EntryIDs: sorted})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].IntervalIndex != cells[j].IntervalIndex {
			return cells[i].IntervalIndex < cells[j].IntervalIndex
		}
		oi, oj := order[cells[i].LaneID], order[cells[j].LaneID]
		if oi != oj {
			return oi < oj
		}
		return cells[i].LaneID < cells[j].LaneID
	})
	return cells
}
