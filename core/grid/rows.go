package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/timegrid/core/model"
)

// ComputeRowHeights returns one pixel height per interval:
// max(minRowHeight, minutes × pxPerMinute).
func ComputeRowHeights(intervals []model.Interval, pxPerMinute, minRowHeight float64) []float64 {
	heights := make([]float64, len(intervals))
	for i, iv := range intervals {
		heights[i] = math.Max(minRowHeight, float64(iv.Minutes())*pxPerMinute)
	}
	return heights
}

// RowOffsets returns the top offset of every row, offsets[0] being 0.
func RowOffsets(heights []float64) []float64 {
	offsets := make([]float64, len(heights))
	if len(heights) < 2 {
		return offsets
	}
	cum := make([]float64, len(heights))
	floats.CumSum(cum, heights)
	copy(offsets[1:], cum[:len(cum)-1])
	return offsets
}

// TotalHeight sums every row height.
func TotalHeight(heights []float64) float64 {
	if len(heights) == 0 {
		return 0
	}
	return floats.Sum(heights)
}

// SpanHeight sums the heights of rowSpan rows starting at the 1-based
// startRow. Out of range rows are ignored.
func SpanHeight(heights []float64, startRow, rowSpan int) float64 {
	lo := startRow - 1
	hi := lo + rowSpan
	if lo < 0 {
		lo = 0
	}
	if hi > len(heights) {
		hi = len(heights)
	}
	if lo >= hi {
		return 0
	}
	return floats.Sum(heights[lo:hi])
}
