package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/timegrid/core/model"
	"github.com/kilianp07/timegrid/core/timecode"
)

func entry(id, lane, start string, dur int) model.Entry {
	return model.Entry{ID: id, LaneID: lane, StartMinutes: timecode.ParseTimeToMinutes(start), DurationMinutes: dur}
}

var lanes = []model.Lane{
	{ID: "video", Order: 2, DisplayName: "Video"},
	{ID: "photo", Order: 1, DisplayName: "Photo"},
}

func placementByID(ps []model.RenderPlacement) map[string]model.RenderPlacement {
	out := make(map[string]model.RenderPlacement, len(ps))
	for _, p := range ps {
		out[p.EntryID] = p
	}
	return out
}

func TestScenarioHeightSync(t *testing.T) {
	entries := []model.Entry{
		entry("photo-1", "photo", "07:00", 60),
		entry("video-a", "video", "07:00", 30),
		entry("video-b", "video", "07:30", 30),
	}
	g := BuildGrid(entries, lanes)
	require.Len(t, g.Intervals, 2)
	assert.Equal(t, "07:00", g.Intervals[0].Label)
	assert.Equal(t, "07:30", g.Intervals[1].Label)

	placements, diags := PlaceEntries(g, entries)
	assert.Empty(t, diags)
	byID := placementByID(placements)
	assert.Equal(t, model.RenderPlacement{EntryID: "photo-1", StartRow: 1, RowSpan: 2, LaneColumn: 1}, byID["photo-1"])
	assert.Equal(t, model.RenderPlacement{EntryID: "video-a", StartRow: 1, RowSpan: 1, LaneColumn: 2}, byID["video-a"])
	assert.Equal(t, model.RenderPlacement{EntryID: "video-b", StartRow: 2, RowSpan: 1, LaneColumn: 2}, byID["video-b"])

	for _, zoom := range []struct{ px, min float64 }{{1, 18}, {2, 24}, {4, 32}, {0.1, 40}} {
		h := ComputeRowHeights(g.Intervals, zoom.px, zoom.min)
		photo := SpanHeight(h, byID["photo-1"].StartRow, byID["photo-1"].RowSpan)
		video := SpanHeight(h, byID["video-a"].StartRow, byID["video-a"].RowSpan) +
			SpanHeight(h, byID["video-b"].StartRow, byID["video-b"].RowSpan)
		assert.InDelta(t, photo, video, 1e-9, "zoom %+v", zoom)
	}
}

func TestScenarioSingleConflict(t *testing.T) {
	entries := []model.Entry{
		entry("a", "video", "07:00", 30),
		entry("b", "video", "07:15", 30),
	}
	g := BuildGrid(entries, lanes)
	require.Len(t, g.ConflictOccurrences, 1)
	occ := g.ConflictOccurrences[0]
	iv := g.Intervals[occ.FirstIntervalIndex]
	assert.Equal(t, "07:15", timecode.FormatMinutes(iv.StartMinutes))
	assert.Equal(t, "07:30", timecode.FormatMinutes(iv.EndMinutes))
	assert.Equal(t, model.NewPairKey("video", "a", "b"), occ.Key)
	assert.Equal(t, map[string]int{"video": 1, "photo": 0}, g.ConflictPairCountByLane)
}

func TestScenarioIndependentConflicts(t *testing.T) {
	entries := []model.Entry{
		entry("p1", "photo", "08:10", 20),
		entry("p2", "photo", "08:20", 20),
		entry("v1", "video", "07:00", 30),
		entry("v2", "video", "07:15", 30),
	}
	g := BuildGrid(entries, lanes)
	require.Len(t, g.ConflictOccurrences, 2)
	assert.Equal(t, "video", g.ConflictOccurrences[0].LaneID)
	assert.Equal(t, "photo", g.ConflictOccurrences[1].LaneID)
	assert.Less(t, g.ConflictOccurrences[0].FirstIntervalIndex, g.ConflictOccurrences[1].FirstIntervalIndex)
}

func TestScenarioEmpty(t *testing.T) {
	g := BuildGrid(nil, lanes)
	assert.NotNil(t, g.Intervals)
	assert.Empty(t, g.Intervals)
	assert.NotNil(t, g.Lanes)
	assert.Empty(t, g.Lanes)
	assert.Empty(t, g.ConflictOccurrences)
	assert.Empty(t, g.Diagnostics)

	ps, diags := PlaceEntries(g, nil)
	assert.Empty(t, ps)
	assert.Empty(t, diags)
}

func TestBuildGrid_NoLanes(t *testing.T) {
	g := BuildGrid([]model.Entry{entry("a", "video", "07:00", 30)}, nil)
	assert.Empty(t, g.Intervals)
	assert.Empty(t, g.Lanes)
	require.Len(t, g.Diagnostics, 1)
	assert.Equal(t, model.NoLanes, g.Diagnostics[0].Kind)
}

func TestBuildGrid_UnknownLane(t *testing.T) {
	entries := []model.Entry{
		entry("a", "video", "07:00", 30),
		entry("b", "audio", "07:10", 30),
		entry("c", "audio", "07:15", 30),
	}
	g := BuildGrid(entries, lanes)
	assert.Empty(t, g.ConflictOccurrences)
	assert.NotContains(t, g.ConflictPairCountByLane, "audio")
	require.Len(t, g.Diagnostics, 2)
	assert.Equal(t, model.UnknownLaneReference, g.Diagnostics[0].Kind)
	// unroutable entries still contribute breakpoints
	assert.Len(t, g.Intervals, 5)

	ps, diags := PlaceEntries(g, entries)
	require.Len(t, ps, 3)
	assert.Equal(t, 0, placementByID(ps)["b"].LaneColumn)
	assert.Len(t, diags, 2)
}

func TestBuildGrid_DoesNotMutateInputs(t *testing.T) {
	ls := []model.Lane{{ID: "b", Order: 2}, {ID: "a", Order: 1}}
	entries := []model.Entry{entry("x", "a", "09:00", 30), entry("y", "b", "08:00", 30)}
	_ = BuildGrid(entries, ls)
	assert.Equal(t, "b", ls[0].ID)
	assert.Equal(t, "x", entries[0].ID)
}

func TestPlaceEntries_Misaligned(t *testing.T) {
	g := BuildGrid([]model.Entry{entry("a", "video", "07:00", 30), entry("b", "video", "07:30", 30)}, lanes)
	stray := entry("stray", "photo", "07:10", 30)
	ps, diags := PlaceEntries(g, []model.Entry{stray})
	require.Len(t, ps, 1)
	assert.Equal(t, model.RenderPlacement{EntryID: "stray", StartRow: 1, RowSpan: 2, LaneColumn: 1}, ps[0])
	require.Len(t, diags, 1)
	assert.Equal(t, model.MisalignedBoundary, diags[0].Kind)
}

func TestPlaceEntries_NonPositiveDuration(t *testing.T) {
	g := BuildGrid([]model.Entry{entry("a", "video", "07:00", 20), entry("b", "video", "07:20", 20)}, lanes)
	zero := entry("z", "video", "07:20", 0)
	neg := entry("n", "photo", "07:40", -20)
	ps, diags := PlaceEntries(g, []model.Entry{zero, neg})
	require.Len(t, ps, 2, "entries are still placed")

	malformed := map[string]bool{}
	for _, d := range diags {
		if d.Kind == model.MalformedEntry {
			malformed[d.EntryID] = true
		}
	}
	assert.True(t, malformed["z"], "zero duration reported")
	assert.True(t, malformed["n"], "negative duration reported")

	ps, diags = PlaceEntries(g, []model.Entry{entry("a", "video", "07:00", 20)})
	require.Len(t, ps, 1)
	assert.Empty(t, diags)
}

func TestRowMetrics(t *testing.T) {
	ivs := []model.Interval{
		{StartMinutes: 0, EndMinutes: 5},
		{StartMinutes: 5, EndMinutes: 35},
		{StartMinutes: 35, EndMinutes: 95},
	}
	h := ComputeRowHeights(ivs, 2, 24)
	assert.Equal(t, []float64{24, 60, 120}, h)
	assert.Equal(t, []float64{0, 24, 84}, RowOffsets(h))
	assert.Equal(t, 204.0, TotalHeight(h))
	assert.Equal(t, 180.0, SpanHeight(h, 2, 2))
	assert.Equal(t, 0.0, SpanHeight(h, 4, 1))
	assert.Equal(t, []float64{0}, RowOffsets([]float64{10}))
	assert.Empty(t, RowOffsets(nil))
	assert.Equal(t, 0.0, TotalHeight(nil))
}

func randomEntries(r *rand.Rand, n int, laneIDs []string) []model.Entry {
	out := make([]model.Entry, n)
	for i := range out {
		out[i] = model.Entry{
			ID:              string(rune('a'+i%26)) + string(rune('0'+i/26)),
			LaneID:          laneIDs[r.Intn(len(laneIDs))],
			StartMinutes:    r.Intn(48) * 15,
			DurationMinutes: (1 + r.Intn(8)) * 15,
		}
	}
	return out
}

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		entries := randomEntries(r, 1+r.Intn(20), []string{"video", "photo"})
		g := BuildGrid(entries, lanes)

		// coverage: contiguous and spanning [min start, max end)
		lo, hi := entries[0].StartMinutes, entries[0].EndMinutes()
		for _, e := range entries {
			lo = min(lo, e.StartMinutes)
			hi = max(hi, e.EndMinutes())
		}
		require.NotEmpty(t, g.Intervals)
		require.Equal(t, lo, g.Intervals[0].StartMinutes)
		require.Equal(t, hi, g.Intervals[len(g.Intervals)-1].EndMinutes)
		for i := 1; i < len(g.Intervals); i++ {
			require.Equal(t, g.Intervals[i-1].EndMinutes, g.Intervals[i].StartMinutes)
			require.Less(t, g.Intervals[i].StartMinutes, g.Intervals[i].EndMinutes)
			require.Equal(t, i, g.Intervals[i].Index)
		}

		// alignment and height sync
		ps, diags := PlaceEntries(g, entries)
		require.Empty(t, diags)
		h := ComputeRowHeights(g.Intervals, 1.5, 20)
		spans := make(map[[2]int]float64)
		for i, p := range ps {
			e := entries[i]
			require.Equal(t, e.StartMinutes, g.Intervals[p.StartRow-1].StartMinutes)
			require.Equal(t, e.EndMinutes(), g.Intervals[p.StartRow+p.RowSpan-2].EndMinutes)
			key := [2]int{e.StartMinutes, e.EndMinutes()}
			got := SpanHeight(h, p.StartRow, p.RowSpan)
			if want, ok := spans[key]; ok {
				require.InDelta(t, want, got, 1e-9)
			}
			spans[key] = got
		}

		// conflict occurrences equal the number of overlapping same-lane pairs
		pairs := 0
		for i := range entries {
			for j := i + 1; j < len(entries); j++ {
				if entries[i].LaneID == entries[j].LaneID && entries[i].Overlaps(entries[j]) {
					pairs++
				}
			}
		}
		require.Len(t, g.ConflictOccurrences, pairs)
		seen := make(map[model.PairKey]bool)
		for _, o := range g.ConflictOccurrences {
			require.False(t, seen[o.Key], "duplicate %s", o.Key)
			seen[o.Key] = true
		}

		// idempotence
		require.Equal(t, g, BuildGrid(entries, lanes))
	}
}

func TestConflictCountIndependentOfPartition(t *testing.T) {
	base := []model.Entry{
		entry("a", "video", "07:00", 60),
		entry("b", "video", "07:10", 60),
	}
	// extra entries on another lane split the overlap into many intervals
	finer := append([]model.Entry{}, base...)
	for i, s := range []string{"07:15", "07:20", "07:35", "07:45", "07:50"} {
		finer = append(finer, entry(string(rune('p'+i)), "photo", s, 5))
	}
	coarse := BuildGrid(base, lanes)
	fine := BuildGrid(finer, lanes)
	require.Greater(t, len(fine.Intervals), len(coarse.Intervals))
	assert.Len(t, coarse.ConflictOccurrences, 1)
	assert.Len(t, fine.ConflictOccurrences, 1)
	assert.Greater(t, len(fine.Conflicts), len(coarse.Conflicts))
}
