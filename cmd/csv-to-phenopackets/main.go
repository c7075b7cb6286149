// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the csv-to-phenopackets CLI.
// The root command converts; families and version are subcommands.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/csv-to-phenopackets/internal/convert"
	"github.com/pdiddy/csv-to-phenopackets/internal/logging"
	"github.com/pdiddy/csv-to-phenopackets/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit codes beyond the generic failure.
const (
	exitFailure        = 1
	exitMalformedInput = 2
	exitIO             = 3
)

// logger is built from --log-level before any command runs.
var logger *slog.Logger

// rootCmd converts a CSV file into Phenopacket Family documents.
var rootCmd = &cobra.Command{
	Use:   "csv-to-phenopackets <input.csv> <output-dir>",
	Short: "Convert a pedigree/variant CSV into Phenopacket Family files",
	Long: `csv-to-phenopackets reads a CSV file of family members, one row per
individual, and writes one GA4GH Phenopacket v2 Family document per family
into the output directory (created if absent). Each row contributes a
phenopacket with HPO phenotypic features, age of onset and variant
interpretations; each family gets a pedigree.

Validate the output separately, e.g. with:
  phenopacket-tools validate --format json <output-dir>/*.json

Exit status is 0 on success, 2 for malformed input and 3 for I/O failures.
No files are written unless every family converts.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(os.Stderr, viper.GetString("log_level"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./"+configName+".yaml or ~/.config/"+configName+"/"+configName+".yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, or error")
	pf.String("delimiter", ",", `input field delimiter (use "tab" for TSV)`)
	pf.Bool("skip-invalid", false, "skip malformed rows with a warning instead of failing")

	mustBind("log_level", pf.Lookup("log-level"))
	mustBind("input.delimiter", pf.Lookup("delimiter"))
	mustBind("skip_invalid", pf.Lookup("skip-invalid"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		for _, dir := range configSearchPaths() {
			viper.AddConfigPath(dir)
		}
	}

	viper.SetEnvPrefix("CSV_TO_PHENOPACKETS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: config file %s not loaded: %v\n", cfgFile, err)
	}
}

// configName is the base name of the config file looked up in every
// search path, with a .yaml extension.
const configName = "csv-to-phenopackets"

// configSearchPaths lists the directories searched for configName.yaml when
// --config is not given, in lookup order.
func configSearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", configName))
	}
	return paths
}

// loadConfig layers config file, environment and flags over the defaults.
func loadConfig() (types.ConversionConfig, error) {
	cfg := types.DefaultConversionConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

// mustBind ties a viper key to a flag. BindPFlag only fails for a nil flag,
// which is a wiring mistake.
func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps conversion failures to distinct exit statuses.
func exitCode(err error) int {
	switch {
	case errors.Is(err, convert.ErrMalformedInput):
		return exitMalformedInput
	case errors.Is(err, convert.ErrIO):
		return exitIO
	default:
		return exitFailure
	}
}
