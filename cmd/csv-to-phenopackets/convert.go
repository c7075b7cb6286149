// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/csv-to-phenopackets/internal/convert"
)

func init() {
	f := rootCmd.Flags()
	f.String("format", "json", "output format: json or yaml")
	f.String("suffix", "_PROBAND", "file name suffix appended to the family id")
	f.String("created", "", "RFC 3339 creation timestamp for metadata (default: input file modification time)")
	f.Bool("dry-run", false, "build every document and list the files without writing them")

	mustBind("output.format", f.Lookup("format"))
	mustBind("output.suffix", f.Lookup("suffix"))
	mustBind("metadata.created", f.Lookup("created"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, outputDir := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := convert.New(cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		b, docs, err := c.Plan(cmd.Context(), inputPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Parsed %d family members, %d families\n", b.Members, len(b.Families))
		for _, d := range docs {
			fmt.Fprintf(out, "  would create %s (%d individuals)\n", d.FileName, d.Individuals)
		}
		return nil
	}

	result, err := c.Run(cmd.Context(), inputPath, outputDir, out)
	if err != nil {
		return err
	}
	if result.HasSkipped() {
		logger.Warn("rows skipped", "count", result.Skipped)
	}
	return nil
}
