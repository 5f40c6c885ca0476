// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FetchRecord describes one FASTA entry retrieved from UniProtKB.
// Per prd002-fetch R4.2: accession, destination file, source URL,
// size, and retrieval time.
type FetchRecord struct {
	// Accession is the normalized UniProtKB accession (e.g. "P69905").
	Accession string `json:"accession" yaml:"accession"`

	// File is the filename written into the working directory
	// (e.g. "uniprot_P69905.fasta").
	File string `json:"file" yaml:"file"`

	// URL is the REST endpoint the entry was downloaded from.
	URL string `json:"url" yaml:"url"`

	// Bytes is the size of the downloaded file.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// Retrieved is when the download completed; zero for skipped files.
	Retrieved time.Time `json:"retrieved,omitempty" yaml:"retrieved,omitempty"`
}
