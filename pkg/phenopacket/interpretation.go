// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package phenopacket

// Allelic states from the Genotype Ontology.
var (
	Homozygous   = OntologyClass{ID: "GENO:0000136", Label: "homozygous"}
	Heterozygous = OntologyClass{ID: "GENO:0000135", Label: "heterozygous"}
	Hemizygous   = OntologyClass{ID: "GENO:0000134", Label: "hemizygous"}
)

// HGVSSyntax is the expression syntax used for c. and p. notations.
const HGVSSyntax = "hgvs"

// GeneDescriptor names the gene a variant falls in.
type GeneDescriptor struct {
	ValueID string `json:"valueId,omitempty" yaml:"valueId,omitempty"`
	Symbol  string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
}

// Expression is a variant written in a named syntax.
type Expression struct {
	Syntax string `json:"syntax,omitempty" yaml:"syntax,omitempty"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
}

// VcfRecord locates a variant the way a VCF line does.
type VcfRecord struct {
	GenomeAssembly string `json:"genomeAssembly,omitempty" yaml:"genomeAssembly,omitempty"`
	Chrom          string `json:"chrom,omitempty" yaml:"chrom,omitempty"`
	// Pos is a uint64 in the schema; the canonical JSON form is a string.
	Pos uint64 `json:"pos,string,omitempty" yaml:"pos,omitempty"`
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty"`
	Alt string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// VariationDescriptor describes a single variant.
type VariationDescriptor struct {
	ID           string          `json:"id" yaml:"id"`
	GeneContext  *GeneDescriptor `json:"geneContext,omitempty" yaml:"geneContext,omitempty"`
	Expressions  []Expression    `json:"expressions,omitempty" yaml:"expressions,omitempty"`
	VcfRecord    *VcfRecord      `json:"vcfRecord,omitempty" yaml:"vcfRecord,omitempty"`
	AllelicState *OntologyClass  `json:"allelicState,omitempty" yaml:"allelicState,omitempty"`
}

// VariantInterpretation wraps a variant in a genomic interpretation.
type VariantInterpretation struct {
	VariationDescriptor *VariationDescriptor `json:"variationDescriptor,omitempty" yaml:"variationDescriptor,omitempty"`
}

// GenomicInterpretation ties a variant to the subject it was observed in.
type GenomicInterpretation struct {
	SubjectOrBiosampleID  string                 `json:"subjectOrBiosampleId,omitempty" yaml:"subjectOrBiosampleId,omitempty"`
	InterpretationStatus  InterpretationStatus   `json:"interpretationStatus,omitzero" yaml:"interpretationStatus,omitempty"`
	VariantInterpretation *VariantInterpretation `json:"variantInterpretation,omitempty" yaml:"variantInterpretation,omitempty"`
}

// Diagnosis is a disease with the genomic findings that support it.
type Diagnosis struct {
	Disease                *OntologyClass          `json:"disease,omitempty" yaml:"disease,omitempty"`
	GenomicInterpretations []GenomicInterpretation `json:"genomicInterpretations,omitempty" yaml:"genomicInterpretations,omitempty"`
}

// Interpretation is the diagnostic conclusion for a phenopacket.
type Interpretation struct {
	ID             string         `json:"id" yaml:"id"`
	ProgressStatus ProgressStatus `json:"progressStatus,omitzero" yaml:"progressStatus,omitempty"`
	Diagnosis      *Diagnosis     `json:"diagnosis,omitempty" yaml:"diagnosis,omitempty"`
}
