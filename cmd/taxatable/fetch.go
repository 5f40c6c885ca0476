package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/taxatable/internal/fetch"
	"github.com/pdiddy/taxatable/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultDelay     = 1 * time.Second
	defaultUserAgent = "taxatable/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [accessions...]",
	Short: "Download FASTA entries from UniProtKB",
	Long: `Fetch downloads one FASTA file per UniProtKB accession into the target
directory, named uniprot_<ACCESSION>.fasta so a subsequent build picks
them up. Existing files are skipped and rate-limited requests retried.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	fetchCmd.Flags().Duration("delay", 0, "delay between consecutive downloads (default 1s)")
	fetchCmd.Flags().String("dir", "", `directory to download into (default ".")`)
	fetchCmd.Flags().String("manifest", "", "write a YAML fetch manifest to this path")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more UniProtKB accessions (e.g. P69905)")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("fetch.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = viper.GetDuration("fetch.delay")
	}
	if delay == 0 {
		delay = defaultDelay
	}
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = viper.GetString("fetch.dir")
	}
	if dir == "" {
		dir = "."
	}
	manifest, _ := cmd.Flags().GetString("manifest")

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		DownloadDelay: delay,
		MaxRetries:    viper.GetInt("fetch.max_retries"),
		Dir:           dir,
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	logger.Debug("fetching", "accessions", len(args), "dir", cfg.Dir, "timeout", timeout, "delay", delay)

	result := fetch.FetchBatch(cmd.Context(), client, args, cfg, os.Stdout)

	if manifest != "" {
		if err := fetch.WriteManifest(manifest, args, result); err != nil {
			return err
		}
		logger.Debug("wrote manifest", "path", manifest)
	}

	if result.HasFailures() {
		return fmt.Errorf("%d accession(s) failed to download", result.Failed)
	}
	return nil
}
