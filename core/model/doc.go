// Package model holds the value types shared by the grid engine: entries,
// lanes, intervals, conflicts and placements. Entries are validated once by
// Ingest; downstream packages rely on them being well formed.
package model
