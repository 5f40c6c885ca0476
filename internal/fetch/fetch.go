// Package fetch downloads per-protein FASTA entries from UniProtKB so
// the table pipeline has inputs to scan.
// Implements: prd002-fetch (R1-R4);
//
//	docs/ARCHITECTURE § Fetch.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/taxatable/internal/httputil"
	"github.com/pdiddy/taxatable/pkg/types"
)

// BatchResult holds the outcome of a batch fetch run.
type BatchResult struct {
	Downloaded int
	Skipped    int
	Failed     int
	Records    []types.FetchRecord
}

// Total returns the total number of identifiers processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any identifiers failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// FetchOne downloads the FASTA entry for a single identifier into
// cfg.Dir under the uniprot_<ACCESSION>.fasta convention. If the
// destination file already exists the download is skipped (R2.4). The
// skipped return value indicates whether the download was skipped.
func FetchOne(ctx context.Context, client *http.Client, id string, cfg types.FetchConfig, w io.Writer) (rec types.FetchRecord, skipped bool, err error) {
	idType, accession := Classify(id)
	if idType == TypeUnknown {
		return types.FetchRecord{}, false, fmt.Errorf("unrecognized UniProtKB accession: %q", id)
	}

	name := Filename(accession)
	rec = types.FetchRecord{
		Accession: accession,
		File:      name,
		URL:       FastaURL(accession),
	}

	destPath := filepath.Join(cfg.Dir, name)
	if _, err := os.Stat(destPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", accession)
		return rec, true, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return types.FetchRecord{}, false, fmt.Errorf("creating directory %s: %w", cfg.Dir, err)
	}

	fmt.Fprintf(w, "downloading: %s (%s)\n", accession, idType)

	n, err := downloadFile(ctx, client, rec.URL, destPath, cfg)
	if err != nil {
		return types.FetchRecord{}, false, fmt.Errorf("downloading %s: %w", accession, err)
	}
	rec.Bytes = n
	rec.Retrieved = time.Now().UTC()
	return rec, false, nil
}

// FetchBatch processes multiple identifiers, printing per-item status
// and returning a summary. It continues after individual failures
// (R3.4) and applies a delay between consecutive downloads to stay
// polite to the API (R3.1).
func FetchBatch(ctx context.Context, client *http.Client, ids []string, cfg types.FetchConfig, w io.Writer) BatchResult {
	var result BatchResult
	for i, id := range ids {
		if i > 0 && cfg.DownloadDelay > 0 {
			time.Sleep(cfg.DownloadDelay)
		}
		rec, wasSkipped, err := FetchOne(ctx, client, id, cfg, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", id, err)
			result.Failed++
			continue
		}
		if wasSkipped {
			result.Skipped++
		} else {
			result.Downloaded++
		}
		result.Records = append(result.Records, rec)
	}
	fmt.Fprintf(w, "\nBatch summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}

// downloadFile fetches url to destPath using a temporary file so a
// failed download never leaves a partial FASTA behind (R2.3). It sets
// User-Agent (R3.2) and retries rate-limited responses (R3.3).
func downloadFile(ctx context.Context, client *http.Client, url, destPath string, cfg types.FetchConfig) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "text/plain")

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return 0, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("renaming temp file: %w", err)
	}
	return n, nil
}
