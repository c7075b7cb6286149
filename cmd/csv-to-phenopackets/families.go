// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/csv-to-phenopackets/internal/convert"
)

var familiesCmd = &cobra.Command{
	Use:   "families <input.csv>",
	Short: "List the families and members found in a CSV file",
	Long: `Families reads and maps the CSV file exactly as a conversion would,
then lists each family with its members, roles and affected status.
Nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runFamilies,
}

func init() {
	familiesCmd.Flags().Bool("json", false, "output families as JSON")

	rootCmd.AddCommand(familiesCmd)
}

func runFamilies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := convert.New(cfg, logger)
	if err != nil {
		return err
	}

	b, err := c.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatFamilies(cmd.OutOrStdout(), b.Summaries(), jsonOutput)
}

func formatFamilies(w io.Writer, families []convert.FamilySummary, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(families)
	}

	if len(families) == 0 {
		fmt.Fprintln(w, "No families found.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-24s  %-8s  %-12s  %-10s  %s\n",
		"Family", "Individual", "Role", "Sex", "Status", "Line")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	members := 0
	for _, f := range families {
		for _, m := range f.Members {
			role := m.Role
			if role == "" {
				role = "-"
			}
			fmt.Fprintf(w, "%-20s  %-24s  %-8s  %-12s  %-10s  %d\n",
				truncate(f.ID, 20), truncate(m.IndividualID, 24), role, m.Sex, m.AffectedStatus, m.Line)
			members++
		}
	}

	fmt.Fprintf(w, "\n%d families, %d members\n", len(families), members)
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
