// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapping

import (
	"strings"

	"github.com/pdiddy/csv-to-phenopackets/pkg/phenopacket"
)

// metaData builds document metadata. With a nil prefix set every configured
// resource is listed; otherwise only those whose namespace prefix is in used.
func (m *Mapper) metaData(used map[string]bool) *phenopacket.MetaData {
	md := &phenopacket.MetaData{
		Created:                  m.created,
		CreatedBy:                m.cfg.Metadata.CreatedBy,
		PhenopacketSchemaVersion: phenopacket.SchemaVersion,
	}
	for _, r := range m.resources {
		if used == nil || used[r.NamespacePrefix] {
			md.Resources = append(md.Resources, r)
		}
	}
	return md
}

// memberMetaData lists the resources for the ontology terms pp refers to.
func (m *Mapper) memberMetaData(pp *phenopacket.Phenopacket) *phenopacket.MetaData {
	used := make(map[string]bool)
	for _, f := range pp.PhenotypicFeatures {
		used[prefixOf(f.Type.ID)] = true
	}
	for _, in := range pp.Interpretations {
		if in.Diagnosis == nil {
			continue
		}
		if in.Diagnosis.Disease != nil {
			used[prefixOf(in.Diagnosis.Disease.ID)] = true
		}
		for _, gi := range in.Diagnosis.GenomicInterpretations {
			if gi.VariantInterpretation == nil || gi.VariantInterpretation.VariationDescriptor == nil {
				continue
			}
			if s := gi.VariantInterpretation.VariationDescriptor.AllelicState; s != nil {
				used[prefixOf(s.ID)] = true
			}
		}
	}
	return m.metaData(used)
}

func prefixOf(curie string) string {
	prefix, _, _ := strings.Cut(curie, ":")
	return prefix
}
