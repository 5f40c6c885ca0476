package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "taxatable/0.1"). Per prd002-fetch R3.2.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the fetch stage.
// Per prd002-fetch R2.4, R3.1-R3.3.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// DownloadDelay is the delay between consecutive downloads (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`

	// MaxRetries is the number of retries after an HTTP 429 response
	// (0 = library default).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// Dir is the directory FASTA files are downloaded into.
	Dir string `json:"dir" yaml:"dir"`
}

// TableConfig holds settings for the table build stage.
// Per prd001-table R1.1, R4.1, R5.1.
type TableConfig struct {
	// Dir is the directory scanned for uniprot_*.fasta inputs.
	Dir string `json:"dir" yaml:"dir"`

	// Output is the path of the TSV table. Empty means
	// <dir>/protein_taxa.tsv.
	Output string `json:"output" yaml:"output"`

	// Report is an optional path for a YAML run summary; empty disables it.
	Report string `json:"report,omitempty" yaml:"report,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch FetchConfig `json:"fetch" yaml:"fetch"`
	Table TableConfig `json:"table" yaml:"table"`
}
