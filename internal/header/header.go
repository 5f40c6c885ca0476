// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package header parses UniProt FASTA description lines.
// Implements: prd001-table (R2);
//
//	docs/ARCHITECTURE § Header Parsing.
package header

import (
	"regexp"
	"strings"
)

// organismRe captures the OS= field of a UniProt header. The field
// starts after a whitespace-delimited "OS=" and runs to the next
// metadata key (OX=, GN=, PE=, SV=) or the end of the line (R2.2,
// R2.3). The capture excludes '=' so a stray KEY=VALUE embedded in
// the name never produces a match (R2.5).
var organismRe = regexp.MustCompile(`\sOS=([^=]+?)(?:\s(?:OX=|GN=|PE=|SV=)|\s*$)`)

// IsHeader reports whether line is a FASTA description line (R2.1).
func IsHeader(line string) bool {
	return strings.HasPrefix(line, ">")
}

// Sanitize drops invalid UTF-8 byte sequences from line. Downloaded
// FASTA occasionally carries stray bytes from transfer damage;
// decoding is best-effort rather than fatal (R2.6).
func Sanitize(line string) string {
	return strings.ToValidUTF8(line, "")
}

// ParseOrganism extracts the organism name from a header line. The
// boolean is false when the line carries no parseable OS= field; a
// missing or malformed field is not an error (R2.4, R2.5).
func ParseOrganism(line string) (string, bool) {
	m := organismRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return "", false
	}
	return name, true
}
