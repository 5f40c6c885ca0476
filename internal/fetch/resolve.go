// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"regexp"
	"strings"

	"github.com/pdiddy/taxatable/internal/collect"
)

// IdentifierType classifies a fetch input.
type IdentifierType int

const (
	TypeUnknown IdentifierType = iota
	TypeAccession
	TypeIsoform
)

func (t IdentifierType) String() string {
	switch t {
	case TypeAccession:
		return "accession"
	case TypeIsoform:
		return "isoform"
	default:
		return "unknown"
	}
}

// Base URL for UniProtKB REST downloads. Declared as a var so tests can
// substitute httptest servers.
var uniprotAPIBase = "https://rest.uniprot.org/uniprotkb/"

// accessionPattern matches primary UniProtKB accessions: "P69905",
// "Q9NQ94", "A0A024R161". Six or ten characters per the UniProt
// accession format (R1.2).
var accessionPattern = regexp.MustCompile(`^(?:[OPQ][0-9][A-Z0-9]{3}[0-9]|[A-NR-Z][0-9](?:[A-Z][A-Z0-9]{2}[0-9]){1,2})$`)

// isoformPattern matches accessions carrying an isoform suffix:
// "P69905-2" (R1.3).
var isoformPattern = regexp.MustCompile(`^(?:[OPQ][0-9][A-Z0-9]{3}[0-9]|[A-NR-Z][0-9](?:[A-Z][A-Z0-9]{2}[0-9]){1,2})-\d+$`)

// Classify determines the identifier type and returns the normalized
// (trimmed, uppercased) form (R1.1).
func Classify(id string) (IdentifierType, string) {
	id = strings.ToUpper(strings.TrimSpace(id))

	if accessionPattern.MatchString(id) {
		return TypeAccession, id
	}
	if isoformPattern.MatchString(id) {
		return TypeIsoform, id
	}
	return TypeUnknown, id
}

// FastaURL returns the UniProtKB REST download URL for an accession (R2.1).
func FastaURL(accession string) string {
	return uniprotAPIBase + accession + ".fasta"
}

// Filename returns the working-directory filename the table pipeline
// expects for an accession: uniprot_<ACCESSION>.fasta (R2.2). The
// convention is shared with the collect stage so fetched entries are
// discovered on the next build.
func Filename(accession string) string {
	return collect.FilePrefix + accession + collect.FileSuffix
}
