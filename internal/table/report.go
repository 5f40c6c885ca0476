// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk summary of one table build. It is written next
// to the table when requested so a run leaves an auditable record
// without re-scanning the inputs.
// Implements: prd001-table R5.
type Report struct {
	// Files is the number of FASTA inputs scanned.
	Files int `yaml:"files"`

	// HeaderLines is the number of description lines seen across all files.
	HeaderLines int `yaml:"header_lines"`

	// OrganismsFound is the number of header lines with a parseable OS= field.
	OrganismsFound int `yaml:"organisms_found"`

	// Proteins is the number of distinct proteins in the table.
	Proteins int `yaml:"proteins"`

	// Pairs is the number of distinct (protein, organism) pairs.
	Pairs int `yaml:"pairs"`

	// Output is the path of the TSV table the run produced.
	Output string `yaml:"output"`

	// Timestamp records when the table was written.
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteReport saves the run summary to a YAML file.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReport loads a previously written run summary.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
