package model

import "sort"

// Lane is a parallel track of entries such as "Photo" or "Video".
type Lane struct {
	ID          string `json:"id" yaml:"id"`
	Order       int    `json:"order" yaml:"order"`
	DisplayName string `json:"name" yaml:"name"`
	Color       string `json:"color" yaml:"color"`
}

// SortLanes returns a copy of lanes in display order. Lanes sharing an Order
// are ordered by ID so the result is deterministic.
func SortLanes(lanes []Lane) []Lane {
	out := make([]Lane, len(lanes))
	copy(out, lanes)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// LaneIndex maps lane IDs to their 0-based display position. When an ID is
// repeated the first position wins.
func LaneIndex(sorted []Lane) map[string]int {
	idx := make(map[string]int, len(sorted))
	for i, l := range sorted {
		if _, ok := idx[l.ID]; !ok {
			idx[l.ID] = i
		}
	}
	return idx
}
