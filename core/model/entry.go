package model

// DefaultDurationMinutes is applied to entries whose duration is missing or
// unusable.
const DefaultDurationMinutes = 15

// Detail is the closed set of entry payloads. Only Shot and Custom implement it.
type Detail interface {
	isDetail()
}

// Shot is a scheduled camera setup on the call sheet.
type Shot struct {
	Number      string `json:"number,omitempty"`
	Description string `json:"description,omitempty"`
}

// Custom is a free-form block such as a meal break or company move.
type Custom struct {
	Title string `json:"title,omitempty"`
}

func (Shot) isDetail()   {}
func (Custom) isDetail() {}

// Entry is a validated schedule block placed on one lane.
type Entry struct {
	ID              string
	LaneID          string
	StartMinutes    int
	DurationMinutes int
	Detail          Detail
}

// EndMinutes returns the exclusive end of the entry.
func (e Entry) EndMinutes() int { return e.StartMinutes + e.DurationMinutes }

// Overlaps reports whether the half-open spans of e and o intersect.
func (e Entry) Overlaps(o Entry) bool {
	return e.StartMinutes < o.EndMinutes() && o.StartMinutes < e.EndMinutes()
}

// Kind returns the variant name of the entry detail.
func (e Entry) Kind() string {
	switch e.Detail.(type) {
	case Shot:
		return KindShot
	case Custom:
		return KindCustom
	default:
		return KindCustom
	}
}

// Title returns a human label for the entry.
func (e Entry) Title() string {
	switch d := e.Detail.(type) {
	case Shot:
		switch {
		case d.Number != "" && d.Description != "":
			return d.Number + " " + d.Description
		case d.Number != "":
			return d.Number
		default:
			return d.Description
		}
	case Custom:
		return d.Title
	default:
		return e.ID
	}
}

// Entry kinds as they appear in schedule files.
const (
	KindShot   = "shot"
	KindCustom = "custom"
)
