package conflict

import "github.com/kilianp07/timegrid/core/model"

// Cursor steps through ordered conflict occurrences, wrapping at both ends.
// The zero position is "before the first occurrence".
type Cursor struct {
	occurrences []model.ConflictOccurrence
	pos         int
}

// NewCursor creates a cursor over occurrences as returned by Aggregate.
func NewCursor(occurrences []model.ConflictOccurrence) *Cursor {
	return &Cursor{occurrences: occurrences, pos: -1}
}

// Len returns the number of occurrences.
func (c *Cursor) Len() int { return len(c.occurrences) }

// Position returns the 0-based index of the current occurrence or -1.
func (c *Cursor) Position() int { return c.pos }

// Next advances to the following occurrence. It returns false when there is
// nothing to navigate.
func (c *Cursor) Next() (model.ConflictOccurrence, bool) {
	n := len(c.occurrences)
	if n == 0 {
		return model.ConflictOccurrence{}, false
	}
	c.pos = (c.pos + 1) % n
	return c.occurrences[c.pos], true
}

// Prev moves to the preceding occurrence.
func (c *Cursor) Prev() (model.ConflictOccurrence, bool) {
	n := len(c.occurrences)
	if n == 0 {
		return model.ConflictOccurrence{}, false
	}
	if c.pos <= 0 {
		c.pos = n - 1
	} else {
		c.pos--
	}
	return c.occurrences[c.pos], true
}

// Seek positions the cursor on the first occurrence of key. It returns false
// and leaves the cursor unchanged when key is not present.
func (c *Cursor) Seek(key model.PairKey) bool {
	for i, o := range c.occurrences {
		if o.Key == key {
			c.pos = i
			return true
		}
	}
	return false
}
