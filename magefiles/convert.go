// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build mage

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/csv-to-phenopackets/internal/convert"
	"github.com/pdiddy/csv-to-phenopackets/internal/logging"
	"github.com/pdiddy/csv-to-phenopackets/pkg/types"
)

const (
	exampleInput  = "internal/convert/testdata/families.csv"
	exampleOutDir = "out/example"
)

// Example converts the bundled sample sheet into out/example, for checking
// the output with phenopacket-tools.
func Example() error {
	log, err := logging.New(os.Stderr, "info")
	if err != nil {
		return err
	}
	c, err := convert.New(types.DefaultConversionConfig(), log)
	if err != nil {
		return err
	}
	if _, err := c.Run(context.Background(), exampleInput, exampleOutDir, os.Stdout); err != nil {
		return err
	}
	fmt.Printf("Validate with: phenopacket-tools validate --format json %s\n", filepath.Join(exampleOutDir, "*.json"))
	return nil
}

// Clean removes build and example output.
func Clean() error {
	for _, dir := range []string{binDir, "out"} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}
	return nil
}
