// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/csv-to-phenopackets/internal/csvinput"
	"github.com/pdiddy/csv-to-phenopackets/pkg/phenopacket"
)

// parseVariants builds one descriptor per variant slot whose chromosome cell
// is filled. A filled slot must also carry position, reference and
// alternate alleles.
func (m *Mapper) parseVariants(row csvinput.Row) ([]*phenopacket.VariationDescriptor, error) {
	cols := m.cfg.Columns
	gene := row.Get(cols.Gene)
	transcript := row.Get(cols.Transcript)
	state := allelicState(row.Get(cols.Zygosity))

	var variants []*phenopacket.VariationDescriptor
	for _, slot := range cols.VariantSlots {
		chrom := row.Get(cols.Chrom + slot)
		if chrom == "" {
			continue
		}

		posCol, refCol, altCol := cols.Pos+slot, cols.Ref+slot, cols.Alt+slot
		for _, c := range []string{posCol, refCol, altCol} {
			if row.Get(c) == "" {
				return nil, fmt.Errorf("variant %s: %q is set but %q is empty", slot, cols.Chrom+slot, c)
			}
		}
		pos, err := strconv.ParseUint(row.Get(posCol), 10, 64)
		if err != nil || pos == 0 {
			return nil, fmt.Errorf("variant %s: invalid position %q", slot, row.Get(posCol))
		}
		ref, alt := row.Get(refCol), row.Get(altCol)
		state := state

		vd := &phenopacket.VariationDescriptor{
			ID: fmt.Sprintf("%s-%d-%s-%s", chrom, pos, ref, alt),
			VcfRecord: &phenopacket.VcfRecord{
				GenomeAssembly: m.cfg.Interpretation.GenomeAssembly,
				Chrom:          chrom,
				Pos:            pos,
				Ref:            ref,
				Alt:            alt,
			},
			AllelicState: &state,
		}
		if gene != "" {
			vd.GeneContext = &phenopacket.GeneDescriptor{Symbol: gene}
		}
		if hgvsc := row.Get(cols.HGVSc + slot); hgvsc != "" {
			value := hgvsc
			if transcript != "" {
				value = transcript + ":" + hgvsc
			}
			vd.Expressions = append(vd.Expressions, phenopacket.Expression{Syntax: phenopacket.HGVSSyntax, Value: value})
		}
		if hgvsp := row.Get(cols.HGVSp + slot); hgvsp != "" {
			vd.Expressions = append(vd.Expressions, phenopacket.Expression{Syntax: phenopacket.HGVSSyntax, Value: hgvsp})
		}
		variants = append(variants, vd)
	}
	return variants, nil
}

// allelicState maps a zygosity cell to a GENO term. Anything that is not
// homozygous or hemizygous is recorded as heterozygous.
func allelicState(zygosity string) phenopacket.OntologyClass {
	switch strings.ToLower(zygosity) {
	case "homozygous", "hom":
		return phenopacket.Homozygous
	case "hemizygous", "hemi":
		return phenopacket.Hemizygous
	default:
		return phenopacket.Heterozygous
	}
}

// interpretationStatus grades each variant of a row: in an affected
// individual a pair of variants (compound heterozygous) is contributory and
// a single variant causative; otherwise variants are candidates.
func interpretationStatus(affected phenopacket.AffectedStatus, variants int) phenopacket.InterpretationStatus {
	if affected != phenopacket.AffectedAffected {
		return phenopacket.InterpretationCandidate
	}
	if variants == 2 {
		return phenopacket.InterpretationContributory
	}
	return phenopacket.InterpretationCausative
}

func (m *Mapper) interpretations(individualID string, affected phenopacket.AffectedStatus, variants []*phenopacket.VariationDescriptor) []phenopacket.Interpretation {
	if len(variants) == 0 {
		return nil
	}

	status := interpretationStatus(affected, len(variants))
	genomic := make([]phenopacket.GenomicInterpretation, len(variants))
	for i, vd := range variants {
		genomic[i] = phenopacket.GenomicInterpretation{
			SubjectOrBiosampleID:  individualID,
			InterpretationStatus:  status,
			VariantInterpretation: &phenopacket.VariantInterpretation{VariationDescriptor: vd},
		}
	}

	progress := phenopacket.ProgressCompleted
	if affected == phenopacket.AffectedAffected {
		progress = phenopacket.ProgressSolved
	}

	disease := m.disease
	return []phenopacket.Interpretation{{
		ID:             individualID,
		ProgressStatus: progress,
		Diagnosis: &phenopacket.Diagnosis{
			Disease:                &disease,
			GenomicInterpretations: genomic,
		},
	}}
}
