// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table accumulates protein-to-organism pairs and writes the
// protein_taxa.tsv summary.
// Implements: prd001-table (R3, R4);
//
//	docs/ARCHITECTURE § Aggregation.
package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// DefaultOutputName is the table filename written into the working
// directory when no explicit output path is configured (R4.1).
const DefaultOutputName = "protein_taxa.tsv"

// Column headers of the output table (R4.2).
const (
	proteinColumn = "protein"
	taxaColumn    = "taxa"
)

// taxaSeparator joins the organism set inside one row (R4.4).
const taxaSeparator = ", "

// Table maps protein identifiers to the set of organisms observed in
// their FASTA headers. Insertion order is irrelevant; duplicate pairs
// collapse (R3.1, R3.2). The zero value is not usable; call New.
type Table struct {
	taxa map[string]map[string]struct{}
}

// New returns an empty table.
func New() *Table {
	return &Table{taxa: make(map[string]map[string]struct{})}
}

// Add records one organism sighting for protein.
func (t *Table) Add(protein, organism string) {
	set, ok := t.taxa[protein]
	if !ok {
		set = make(map[string]struct{})
		t.taxa[protein] = set
	}
	set[organism] = struct{}{}
}

// Len returns the number of distinct proteins.
func (t *Table) Len() int {
	return len(t.taxa)
}

// Pairs returns the number of distinct (protein, organism) pairs.
func (t *Table) Pairs() int {
	n := 0
	for _, set := range t.taxa {
		n += len(set)
	}
	return n
}

// Proteins returns all protein identifiers in lexicographic order (R4.3).
func (t *Table) Proteins() []string {
	ids := make([]string, 0, len(t.taxa))
	for id := range t.taxa {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TaxaFor returns the organisms recorded for protein, sorted (R4.4).
// Nil when the protein is unknown.
func (t *Table) TaxaFor(protein string) []string {
	set, ok := t.taxa[protein]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteTSV writes the table as tab-separated rows: a header line, then
// one line per protein with its organism set sorted and joined. The
// header line is written even when the table is empty (R4.2). Output
// is byte-for-byte deterministic for a given table (R4.5).
func (t *Table) WriteTSV(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\t%s\n", proteinColumn, taxaColumn); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}
	for _, id := range t.Proteins() {
		row := id + "\t" + strings.Join(t.TaxaFor(id), taxaSeparator) + "\n"
		if _, err := io.WriteString(w, row); err != nil {
			return fmt.Errorf("writing row for %s: %w", id, err)
		}
	}
	return nil
}

// WriteFile writes the table to path, replacing any previous run's
// output (R4.6).
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	if err := t.WriteTSV(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
