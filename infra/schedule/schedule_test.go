package schedule

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/timegrid/core/model"
)

const sampleYAML = `lanes:
  - id: photo
    order: 1
    name: Photo
    color: "#ff8800"
  - id: video
    order: 2
    name: Video
entries:
  - id: a
    lane: photo
    kind: shot
    start: "09:00"
    duration: 30
    number: "1"
    description: Arrival
  - id: b
    lane: video
    kind: custom
    start: "09:15"
    duration: "45"
    title: Interview
`

const sampleJSON = `{
  "lanes": [{"id": "photo", "order": 1, "name": "Photo"}],
  "entries": [
    {"id": "a", "lane": "photo", "kind": "shot", "start": "09:00", "duration": 30, "number": "1"},
    {"id": "b", "lane": "photo", "kind": "custom", "start": "09:10", "title": "Break"}
  ]
}`

func TestDecodeYAML(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleYAML), FormatYAML)
	require.NoError(t, err)
	require.Len(t, s.Lanes, 2)
	assert.Equal(t, "Photo", s.Lanes[0].DisplayName)
	assert.Equal(t, "#ff8800", s.Lanes[0].Color)

	entries, diags := s.Ingest()
	require.Empty(t, diags)
	require.Len(t, entries, 2)
	assert.Equal(t, 540, entries[0].StartMinutes)
	assert.Equal(t, 30, entries[0].DurationMinutes)
	assert.Equal(t, model.Shot{Number: "1", Description: "Arrival"}, entries[0].Detail)
	assert.Equal(t, 45, entries[1].DurationMinutes)
	assert.Equal(t, model.Custom{Title: "Interview"}, entries[1].Detail)
}

func TestDecodeJSON(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleJSON), FormatJSON)
	require.NoError(t, err)
	entries, diags := s.Ingest()
	require.Len(t, entries, 2)
	assert.Equal(t, 30, entries[0].DurationMinutes)
	assert.Equal(t, model.DefaultDurationMinutes, entries[1].DurationMinutes)
	require.Len(t, diags, 1)
	assert.Equal(t, model.MalformedEntry, diags[0].Kind)
	assert.Equal(t, "b", diags[0].EntryID)
}

func TestDecodeEmpty(t *testing.T) {
	s, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, s.Entries)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("{"), FormatJSON)
	assert.Error(t, err)
	_, err = Decode(strings.NewReader("lanes: ["), FormatYAML)
	assert.Error(t, err)
	_, err = Decode(strings.NewReader(""), Format("toml"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))
	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Entries, 2)

	_, err = LoadFile(filepath.Join(dir, "day.txt"))
	assert.Error(t, err)

	txt := filepath.Join(dir, "day.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o644))
	_, err = LoadFile(txt)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
