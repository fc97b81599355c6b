package grid

import (
	"fmt"

	"github.com/kilianp07/timegrid/core/model"
)

// PlaceEntries maps every entry to a contiguous run of grid rows. Bounds that
// miss a breakpoint are clamped to the enclosing rows and reported as
// MisalignedBoundary; entries on unknown lanes are placed with LaneColumn 0
// and reported as UnknownLaneReference. Entries with a non-positive duration
// are reported as MalformedEntry and still get one row. No entry is dropped while the grid
// has rows.
func PlaceEntries(g Grid, entries []model.Entry) ([]model.RenderPlacement, []model.Diagnostic) {
	placements := make([]model.RenderPlacement, 0, len(entries))
	if len(g.Intervals) == 0 {
		return placements, nil
	}
	columns := model.LaneIndex(g.Lanes)

	var diags []model.Diagnostic
	for _, e := range entries {
		if e.EndMinutes() <= e.StartMinutes {
			diags = append(diags, model.Diagnostic{
				Kind:    model.MalformedEntry,
				EntryID: e.ID,
				LaneID:  e.LaneID,
				Message: fmt.Sprintf("non-positive duration %d", e.DurationMinutes),
			})
		}
		first, count, aligned := model.Locate(g.Intervals, e.StartMinutes, e.EndMinutes())
		if !aligned {
			diags = append(diags, model.Diagnostic{
				Kind:    model.MisalignedBoundary,
				EntryID: e.ID,
				LaneID:  e.LaneID,
				Message: fmt.Sprintf("span %d-%d clamped to rows %d-%d", e.StartMinutes, e.EndMinutes(), first+1, first+count),
			})
		}
		col := 0
		if idx, ok := columns[e.LaneID]; ok {
			col = idx + 1
		} else {
			diags = append(diags, unknownLane(e))
		}
		placements = append(placements, model.RenderPlacement{
			EntryID:    e.ID,
			StartRow:   first + 1,
			RowSpan:    count,
			LaneColumn: col,
		})
	}
	return placements, diags
}

func unknownLane(e model.Entry) model.Diagnostic {
	return model.Diagnostic{
		Kind:    model.UnknownLaneReference,
		EntryID: e.ID,
		LaneID:  e.LaneID,
		Message: fmt.Sprintf("lane %q not found", e.LaneID),
	}
}
