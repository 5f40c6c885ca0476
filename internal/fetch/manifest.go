// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/taxatable/pkg/types"
)

// Manifest is the on-disk record of a fetch run: which identifiers
// were requested, where each entry landed, and the batch outcome. A
// later table build can be audited against it without re-querying
// UniProt.
// Implements: prd002-fetch R4.1, R4.2.
type Manifest struct {
	Requested []string            `yaml:"requested"`
	Records   []types.FetchRecord `yaml:"records"`
	Summary   ManifestSummary     `yaml:"summary"`
}

// ManifestSummary stores batch counts and a timestamp.
type ManifestSummary struct {
	Downloaded int       `yaml:"downloaded"`
	Skipped    int       `yaml:"skipped"`
	Failed     int       `yaml:"failed"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// WriteManifest saves the identifiers and outcome of a fetch run to a
// YAML file.
func WriteManifest(path string, requested []string, result BatchResult) error {
	m := Manifest{
		Requested: requested,
		Records:   result.Records,
		Summary: ManifestSummary{
			Downloaded: result.Downloaded,
			Skipped:    result.Skipped,
			Failed:     result.Failed,
			Timestamp:  time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadManifest loads a previously saved fetch manifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
