package conflict

import (
	"sort"

	"github.com/kilianp07/timegrid/core/model"
)

// Aggregate folds conflict cells into one occurrence per (lane, entry pair),
// keeping the earliest interval the pair was seen in. The result is ordered
// by first interval, lane display order, then pair key, which is the order
// next/previous navigation walks.
func Aggregate(cells []model.ConflictCell, lanes []model.Lane) []model.ConflictOccurrence {
	firstSeen := make(map[model.PairKey]int)
	for _, c := range cells {
		for i := 0; i < len(c.EntryIDs); i++ {
			for j := i + 1; j < len(c.EntryIDs); j++ {
				if c.EntryIDs[i] == c.EntryIDs[j] {
					continue
				}
				k := model.NewPairKey(c.LaneID, c.EntryIDs[i], c.EntryIDs[j])
				if idx, ok := firstSeen[k]; !ok || c.IntervalIndex < idx {
					firstSeen[k] = c.IntervalIndex
				}
			}
		}
	}

	order := model.LaneIndex(model.SortLanes(lanes))
	out := make([]model.ConflictOccurrence, 0, len(firstSeen))
	for k, idx := range firstSeen {
		out = append(out, model.ConflictOccurrence{LaneID: k.LaneID, Key: k, FirstIntervalIndex: idx})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.FirstIntervalIndex != b.FirstIntervalIndex {
			return a.FirstIntervalIndex < b.FirstIntervalIndex
		}
		oa, oka := order[a.LaneID]
		ob, okb := order[b.LaneID]
		if oka != okb {
			return oka
		}
		if oa != ob {
			return oa < ob
		}
		return a.Key.Less(b.Key)
	})
	return out
}

// CountByLane returns the number of distinct conflicting pairs per lane.
// Every lane in lanes is present, with zero when it has no conflicts.
func CountByLane(occurrences []model.ConflictOccurrence, lanes []model.Lane) map[string]int {
	counts := make(map[string]int, len(lanes))
	for _, l := range lanes {
		counts[l.ID] = 0
	}
	for _, o := range occurrences {
		counts[o.LaneID]++
	}
	return counts
}
