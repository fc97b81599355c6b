// Package schedule reads lanes and raw entries from YAML or JSON files and
// watches them for changes.
package schedule

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/timegrid/core/model"
)

// ErrUnsupportedFormat is returned for file extensions or format names that
// have no decoder.
var ErrUnsupportedFormat = errors.New("unsupported schedule format")

// Format names a schedule encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Schedule is the on-disk shape of a day plan.
type Schedule struct {
	Lanes   []model.Lane     `json:"lanes" yaml:"lanes"`
	Entries []model.RawEntry `json:"entries" yaml:"entries"`
}

// Ingest validates the raw entries of the schedule.
func (s Schedule) Ingest() ([]model.Entry, []model.Diagnostic) {
	return model.Ingest(s.Entries)
}

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads a schedule in the given format from r.
func Decode(r io.Reader, format Format) (*Schedule, error) {
	var s Schedule
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml schedule: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode json schedule: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &s, nil
}

// LoadFile reads and decodes the schedule at path.
func LoadFile(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Schedule, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data), format)
}
