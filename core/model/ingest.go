package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kilianp07/timegrid/core/timecode"
)

// RawEntry is the loosely typed shape entries arrive in from schedule files
// or callers. Ingest turns it into a validated Entry.
type RawEntry struct {
	ID          string `json:"id" yaml:"id"`
	LaneID      string `json:"lane" yaml:"lane"`
	Kind        string `json:"kind" yaml:"kind"`
	Start       string `json:"start" yaml:"start"`
	Duration    any    `json:"duration" yaml:"duration"`
	Number      string `json:"number" yaml:"number"`
	Description string `json:"description" yaml:"description"`
	Title       string `json:"title" yaml:"title"`
}

// newID is swapped in tests to get stable identifiers.
var newID = func() string { return uuid.NewString() }

// Ingest validates raw entries once, replacing missing or malformed fields
// with defaults. It never fails; every substitution is reported as a
// MalformedEntry diagnostic.
func Ingest(raws []RawEntry) ([]Entry, []Diagnostic) {
	entries := make([]Entry, 0, len(raws))
	var diags []Diagnostic
	for _, r := range raws {
		e, ds := ingestOne(r)
		entries = append(entries, e)
		diags = append(diags, ds...)
	}
	return entries, diags
}

func ingestOne(r RawEntry) (Entry, []Diagnostic) {
	var diags []Diagnostic
	id := strings.TrimSpace(r.ID)
	if id == "" {
		id = newID()
		diags = append(diags, Diagnostic{Kind: MalformedEntry, EntryID: id, LaneID: r.LaneID, Message: "missing id, generated one"})
	}

	start := 0
	switch s := strings.TrimSpace(r.Start); {
	case s == "":
		diags = append(diags, Diagnostic{Kind: MalformedEntry, EntryID: id, LaneID: r.LaneID, Message: "missing start, using 00:00"})
	case !timecode.Valid(s):
		diags = append(diags, Diagnostic{Kind: MalformedEntry, EntryID: id, LaneID: r.LaneID, Message: fmt.Sprintf("invalid start %q, using 00:00", s)})
	default:
		start = timecode.ParseTimeToMinutes(s)
	}

	dur, ok := durationMinutes(r.Duration)
	if !ok {
		dur = DefaultDurationMinutes
		diags = append(diags, Diagnostic{
			Kind:    MalformedEntry,
			EntryID: id,
			LaneID:  r.LaneID,
			Message: fmt.Sprintf("invalid duration %v, using %d minutes", r.Duration, DefaultDurationMinutes),
		})
	}

	e := Entry{
		ID:              id,
		LaneID:          strings.TrimSpace(r.LaneID),
		StartMinutes:    start,
		DurationMinutes: dur,
	}
	switch strings.ToLower(strings.TrimSpace(r.Kind)) {
	case KindShot:
		e.Detail = Shot{Number: r.Number, Description: r.Description}
	default:
		e.Detail = Custom{Title: r.Title}
	}
	return e, diags
}

// durationMinutes accepts the scalar types YAML and JSON decoders produce.
// Non-positive and non-integral values are rejected.
func durationMinutes(v any) (int, bool) {
	var f float64
	switch d := v.(type) {
	case int:
		f = float64(d)
	case int64:
		f = float64(d)
	case uint64:
		f = float64(d)
	case float64:
		f = d
	case json.Number:
		n, err := d.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(d), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
