// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the taxatable CLI.
// Implements: prd001-table, prd002-fetch (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger carries leveled diagnostics to stderr. Stage progress and the
// table itself stay on stdout; the logger never competes with them.
var logger = log.New(os.Stderr)

// rootCmd is the base command for the taxatable CLI. Running it with no
// subcommand builds the table from the current directory, so the common
// case needs no arguments at all.
var rootCmd = &cobra.Command{
	Use:   "taxatable",
	Short: "Build a protein-to-organism table from UniProt FASTA files",
	Long: `taxatable scans a directory of per-protein UniProt FASTA files
(uniprot_<PROTEIN>.fasta), extracts the organism (OS=) field from every
header line, and writes protein_taxa.tsv mapping each protein to the
sorted set of organisms it was observed in.

Run without arguments to build the table from the current directory.
Use the fetch subcommand to download FASTA entries from UniProtKB
first, and build for explicit directory and output control.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return buildTable(defaultTableConfig())
	},
}

func init() {
	cobra.OnInitialize(initLogger, initConfig)

	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./taxatable.yaml or ~/.config/taxatable/config.yaml)")
}

func initLogger() {
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("taxatable")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "taxatable"))
		}
	}

	viper.SetEnvPrefix("TAXATABLE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
