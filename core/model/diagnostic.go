package model

import "fmt"

// DiagnosticKind classifies a recovered data problem.
type DiagnosticKind int

const (
	// MalformedEntry marks an entry whose fields were replaced by defaults.
	MalformedEntry DiagnosticKind = iota
	// UnknownLaneReference marks an entry whose lane is absent from the lane list.
	UnknownLaneReference
	// MisalignedBoundary marks an entry whose bounds did not match a breakpoint
	// and were clamped.
	MisalignedBoundary
	// NoLanes marks a build that had entries but no lanes to route them to.
	NoLanes
)

func (k DiagnosticKind) String() string {
	switch k {
	case MalformedEntry:
		return "malformed_entry"
	case UnknownLaneReference:
		return "unknown_lane"
	case MisalignedBoundary:
		return "misaligned_boundary"
	case NoLanes:
		return "no_lanes"
	default:
		return "unknown"
	}
}

// MarshalText lets diagnostics serialise with readable kinds.
func (k DiagnosticKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Diagnostic is a non-fatal report about the input data.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	EntryID string         `json:"entry_id,omitempty"`
	LaneID  string         `json:"lane_id,omitempty"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	if d.EntryID != "" {
		return fmt.Sprintf("%s: entry %s: %s", d.Kind, d.EntryID, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}
