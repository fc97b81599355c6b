package model

import "strings"

// Interval is a half-open time range used as one row of the grid.
type Interval struct {
	Index        int    `json:"index"`
	StartMinutes int    `json:"start_minutes"`
	EndMinutes   int    `json:"end_minutes"`
	Label        string `json:"label"`
}

// Minutes returns the length of the interval.
func (iv Interval) Minutes() int { return iv.EndMinutes - iv.StartMinutes }

// ConflictCell lists the entries simultaneously active in one lane during one
// interval. EntryIDs is sorted and holds at least two ids.
type ConflictCell struct {
	IntervalIndex int      `json:"interval_index"`
	LaneID        string   `json:"lane_id"`
	EntryIDs      []string `json:"entry_ids"`
}

// PairKey identifies an unordered pair of entries within a lane. A is always
// lexically smaller than B.
type PairKey struct {
	LaneID string `json:"lane_id"`
	A      string `json:"a"`
	B      string `json:"b"`
}

// NewPairKey builds the canonical key for the pair regardless of argument order.
func NewPairKey(laneID, x, y string) PairKey {
	if y < x {
		x, y = y, x
	}
	return PairKey{LaneID: laneID, A: x, B: y}
}

// Less orders keys by lane, then A, then B.
func (k PairKey) Less(o PairKey) bool {
	if k.LaneID != o.LaneID {
		return k.LaneID < o.LaneID
	}
	if k.A != o.A {
		return k.A < o.A
	}
	return k.B < o.B
}

// String renders the key for display as "lane|a::b".
func (k PairKey) String() string { return k.LaneID + "|" + k.A + "::" + k.B }

// ParsePairKey reads a key in the String form. The pair is canonicalised so
// "lane|b::a" and "lane|a::b" yield the same key.
func ParsePairKey(s string) (PairKey, bool) {
	lane, pair, ok := strings.Cut(s, "|")
	if !ok || lane == "" {
		return PairKey{}, false
	}
	a, b, ok := strings.Cut(pair, "::")
	if !ok || a == "" || b == "" {
		return PairKey{}, false
	}
	return NewPairKey(lane, a, b), true
}

// ConflictOccurrence is one de-duplicated overlap between two entries of a lane.
type ConflictOccurrence struct {
	LaneID             string  `json:"lane_id"`
	Key                PairKey `json:"pair"`
	FirstIntervalIndex int     `json:"first_interval_index"`
}

// RenderPlacement positions an entry on the row grid. Rows and lane columns
// are 1-based; LaneColumn is 0 when the lane is unknown.
type RenderPlacement struct {
	EntryID    string `json:"entry_id"`
	StartRow   int    `json:"start_row"`
	RowSpan    int    `json:"row_span"`
	LaneColumn int    `json:"lane_column"`
}

// ColumnAssignment places an entry side by side with the entries it overlaps.
// ColCount is shared by every member of the entry's cluster.
type ColumnAssignment struct {
	EntryID  string `json:"entry_id"`
	ColIndex int    `json:"col_index"`
	ColCount int    `json:"col_count"`
}
