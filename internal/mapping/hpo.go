// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapping

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/csv-to-phenopackets/pkg/phenopacket"
)

// hpoTermPattern matches one term: "HP:0001250 (Seizure)".
var hpoTermPattern = regexp.MustCompile(`^(HP:\d+)\s*\(([^)]+)\)$`)

// hpoSeparators splits a cell into terms.
var hpoSeparators = regexp.MustCompile(`[;|]`)

// ParseHPOTerms parses a cell such as
// "HP:0001250 (Seizure); HP:0001263 (Global developmental delay)" into
// phenotypic features, in cell order. Terms may be separated by ";" or "|".
// An empty cell yields no features.
func ParseHPOTerms(cell string) ([]phenopacket.PhenotypicFeature, error) {
	var features []phenopacket.PhenotypicFeature
	for _, raw := range hpoSeparators.Split(cell, -1) {
		term := strings.TrimSpace(raw)
		if term == "" {
			continue
		}
		m := hpoTermPattern.FindStringSubmatch(term)
		if m == nil {
			return nil, fmt.Errorf("invalid HPO term %q: want \"HP:nnnnnnn (Label)\"", term)
		}
		label := strings.TrimSpace(m[2])
		if label == "" {
			return nil, fmt.Errorf("invalid HPO term %q: empty label", term)
		}
		features = append(features, phenopacket.PhenotypicFeature{
			Type: phenopacket.OntologyClass{ID: m[1], Label: label},
		})
	}
	return features, nil
}
