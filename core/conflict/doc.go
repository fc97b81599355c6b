// Package conflict finds entries of the same lane that are active at the same
// time. Detect reports every (lane, interval) cell with two or more active
// entries; Aggregate folds those cells into one occurrence per entry pair so
// counts do not depend on how finely the time range is partitioned.
package conflict
