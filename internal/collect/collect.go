// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect walks a directory of per-protein UniProt FASTA files
// and feeds header organisms into a table.
// Implements: prd001-table (R1, R2, R6);
//
//	docs/ARCHITECTURE § Collection.
package collect

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/taxatable/internal/header"
	"github.com/pdiddy/taxatable/internal/table"
)

// FilePrefix and FileSuffix define the fixed naming convention for
// input files: uniprot_<PROTEIN>.fasta (R1.2). The fetch stage writes
// files under the same convention.
const (
	FilePrefix = "uniprot_"
	FileSuffix = ".fasta"
)

// Scanner buffer sizing. Headers are one line each, but downloaded
// FASTA occasionally carries very long description lines.
const (
	scanBufSize = 64 * 1024
	maxLineSize = 64 * 1024 * 1024
)

// Stats holds counts from one collection run (R6.3).
type Stats struct {
	Files       int
	HeaderLines int
	Matched     int
}

// FileStats holds counts from scanning a single file.
type FileStats struct {
	HeaderLines int
	Matched     int
}

// Discover returns the names of FASTA inputs in dir following the
// uniprot_<PROTEIN>.fasta convention, sorted lexicographically (R1.1,
// R1.3). Zero matches is not an error; other directory contents are
// ignored.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, FilePrefix) && strings.HasSuffix(name, FileSuffix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ProteinID derives the protein identifier for an input filename: the
// stem with the uniprot_ prefix removed, or the whole stem when the
// prefix is absent (R1.4, R1.5).
func ProteinID(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimPrefix(stem, FilePrefix)
}

// ScanFile reads one FASTA file and records every organism found in its
// description lines under the protein derived from the filename. Lines
// are decoded best-effort; headers without a parseable OS= field are
// counted but skipped (R2.4). Read errors abort the scan (R6.2).
func ScanFile(path string, tbl *table.Table) (FileStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileStats{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	protein := ProteinID(path)

	var stats FileStats
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, scanBufSize), maxLineSize)
	for sc.Scan() {
		line := header.Sanitize(sc.Text())
		if !header.IsHeader(line) {
			continue
		}
		stats.HeaderLines++

		organism, ok := header.ParseOrganism(line)
		if !ok {
			continue
		}
		tbl.Add(protein, organism)
		stats.Matched++
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("reading %s: %w", path, err)
	}
	return stats, nil
}

// Run discovers input files under dir and scans each into tbl, writing
// per-file progress to w. Files are processed in discovery order; the
// first unreadable file aborts the run (R6.1, R6.2).
func Run(dir string, tbl *table.Table, w io.Writer) (Stats, error) {
	names, err := Discover(dir)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, name := range names {
		fs, err := ScanFile(filepath.Join(dir, name), tbl)
		if err != nil {
			return stats, err
		}
		fmt.Fprintf(w, "scanned %s (%d headers, %d organisms)\n", name, fs.HeaderLines, fs.Matched)
		stats.Files++
		stats.HeaderLines += fs.HeaderLines
		stats.Matched += fs.Matched
	}
	return stats, nil
}
