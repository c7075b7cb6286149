// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/csv-to-phenopackets/pkg/phenopacket"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of csv-to-phenopackets",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "csv-to-phenopackets %s (phenopacket schema %s)\n", version, phenopacket.SchemaVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
