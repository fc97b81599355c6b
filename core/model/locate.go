package model

import "sort"

// Locate finds the run of intervals covering [start, end). first is the
// 0-based index of the first interval and count the run length. When a bound
// does not land on a breakpoint the run is clamped to the nearest enclosing
// intervals and aligned is false. An empty interval list yields count 0.
func Locate(intervals []Interval, start, end int) (first, count int, aligned bool) {
	n := len(intervals)
	if n == 0 {
		return 0, 0, false
	}
	aligned = true

	first = sort.Search(n, func(i int) bool { return intervals[i].StartMinutes >= start })
	if first == n || intervals[first].StartMinutes != start {
		aligned = false
		// last interval starting before start encloses it
		first--
		if first < 0 {
			first = 0
		}
	}

	last := sort.Search(n, func(i int) bool { return intervals[i].EndMinutes >= end })
	if last == n {
		aligned = false
		last = n - 1
	} else if intervals[last].EndMinutes != end {
		aligned = false
	}
	if last < first {
		last = first
	}
	return first, last - first + 1, aligned
}
