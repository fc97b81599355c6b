package grid

import (
	"sort"

	"github.com/kilianp07/timegrid/core/model"
	"github.com/kilianp07/timegrid/core/timecode"
)

// BuildIntervals returns the sorted, gap-free partition of
// [min(start), max(end)) induced by every entry boundary.
func BuildIntervals(entries []model.Entry) []model.Interval {
	if len(entries) == 0 {
		return []model.Interval{}
	}
	seen := make(map[int]struct{}, 2*len(entries))
	points := make([]int, 0, 2*len(entries))
	for _, e := range entries {
		for _, p := range [2]int{e.StartMinutes, e.EndMinutes()} {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			points = append(points, p)
		}
	}
	sort.Ints(points)

	intervals := make([]model.Interval, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		intervals = append(intervals, model.Interval{
			Index:        i,
			StartMinutes: points[i],
			EndMinutes:   points[i+1],
			Label:        timecode.FormatMinutes(points[i]),
		})
	}
	return intervals
}
