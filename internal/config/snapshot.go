package config

import (
	"fmt"
	"os"

	"github.com/agora-protocol/dashboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// SnapshotParser handles reading and writing dashboard snapshot files
type SnapshotParser struct{}

// NewSnapshotParser creates a new snapshot parser
func NewSnapshotParser() *SnapshotParser {
	return &SnapshotParser{}
}

// LoadFromFile loads a dashboard snapshot from a YAML (or JSON) file.
// Contents are decoded as-is; figures are not range checked and references between sections are not resolved.
func (sp *SnapshotParser) LoadFromFile(filename string) (*domain.Dashboard, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return sp.Parse(data)
}

// Parse decodes a snapshot document.
func (sp *SnapshotParser) Parse(data []byte) (*domain.Dashboard, error) {
	var snapshot domain.Dashboard
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &snapshot, nil
}

// SaveToFile writes a snapshot as YAML.
func (sp *SnapshotParser) SaveToFile(snapshot *domain.Dashboard, filename string) error {
	b, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// Load returns the snapshot at path, or the built-in example when path is empty.
func (sp *SnapshotParser) Load(path string) (*domain.Dashboard, error) {
	if path == "" {
		return sp.CreateExampleSnapshot(nowFunc()), nil
	}
	return sp.LoadFromFile(path)
}
