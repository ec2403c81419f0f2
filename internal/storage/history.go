package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ferndev/fern/internal/viewer"
)

// HistoryFile persists the ordered list of visited locations, oldest first.
// The on-disk form is a JSON array of location strings; a URL scheme prefix
// distinguishes remote locations from paths.
type HistoryFile struct {
	path string
}

// NewHistoryFile creates a history file handle in the given data directory.
func NewHistoryFile(dataDir string) (*HistoryFile, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &HistoryFile{path: filepath.Join(dataDir, "history.json")}, nil
}

// Load reads the persisted locations. A missing file is an empty history.
func (hf *HistoryFile) Load() ([]viewer.Location, error) {
	data, err := os.ReadFile(hf.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}

	locations := make([]viewer.Location, 0, len(raw))
	for _, s := range raw {
		if s == "" {
			continue
		}
		locations = append(locations, viewer.ParseLocation(s))
	}
	return locations, nil
}

// Save writes the locations in order.
func (hf *HistoryFile) Save(locations []viewer.Location) error {
	raw := make([]string, len(locations))
	for i, l := range locations {
		raw[i] = l.String()
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}
	return os.WriteFile(hf.path, data, 0o644)
}
