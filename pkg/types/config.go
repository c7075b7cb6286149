// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration shared by the converter stages and
// the CLI. Every field carries mapstructure tags for viper, plus yaml and
// json tags so a resolved configuration can be printed or saved.
package types

// InputConfig holds settings for reading the CSV file.
type InputConfig struct {
	// Delimiter is the field separator. A single character; "\t" and "tab"
	// select tab-separated input.
	Delimiter string `mapstructure:"delimiter" json:"delimiter" yaml:"delimiter"`
}

// ColumnConfig names the CSV header columns the converter reads.
// Only Individual is required to be present in the header.
type ColumnConfig struct {
	// Individual holds the individual identifier, e.g. "FAM1_PROBAND".
	Individual string `mapstructure:"individual" json:"individual" yaml:"individual"`

	// Family holds an explicit family identifier. When the header has no such
	// column the family id is parsed from the individual id.
	Family string `mapstructure:"family" json:"family" yaml:"family"`

	// Role holds an explicit PROBAND/MOTHER/FATHER/SIBLING role.
	Role string `mapstructure:"role" json:"role" yaml:"role"`

	Sex        string `mapstructure:"sex" json:"sex" yaml:"sex"`
	Affected   string `mapstructure:"affected" json:"affected" yaml:"affected"`
	HPO        string `mapstructure:"hpo" json:"hpo" yaml:"hpo"`
	AgeOfOnset string `mapstructure:"age_of_onset" json:"age_of_onset" yaml:"age_of_onset"`
	Gene       string `mapstructure:"gene" json:"gene" yaml:"gene"`
	Transcript string `mapstructure:"transcript" json:"transcript" yaml:"transcript"`
	Zygosity   string `mapstructure:"zygosity" json:"zygosity" yaml:"zygosity"`

	// VariantSlots are the suffixes of the per-variant column groups; slot "1"
	// reads Chrom-1, Pos-1, Ref-1, Alt-1, HGVSc-1 and HGVSp-1.
	VariantSlots []string `mapstructure:"variant_slots" json:"variant_slots" yaml:"variant_slots"`

	// Per-variant column prefixes, joined with a slot to form a header name.
	Chrom string `mapstructure:"chrom" json:"chrom" yaml:"chrom"`
	Pos   string `mapstructure:"pos" json:"pos" yaml:"pos"`
	Ref   string `mapstructure:"ref" json:"ref" yaml:"ref"`
	Alt   string `mapstructure:"alt" json:"alt" yaml:"alt"`
	HGVSc string `mapstructure:"hgvsc" json:"hgvsc" yaml:"hgvsc"`
	HGVSp string `mapstructure:"hgvsp" json:"hgvsp" yaml:"hgvsp"`
}

// OutputConfig holds settings for the written documents.
type OutputConfig struct {
	// Format is json or yaml.
	Format string `mapstructure:"format" json:"format" yaml:"format"`

	// Suffix is appended to the family id to form the file name, before the
	// extension (default "_PROBAND", giving FAM1_PROBAND.json).
	Suffix string `mapstructure:"suffix" json:"suffix" yaml:"suffix"`
}

// OntologyResource describes an ontology listed in MetaData.resources.
type OntologyResource struct {
	ID              string `mapstructure:"id" json:"id" yaml:"id"`
	Name            string `mapstructure:"name" json:"name" yaml:"name"`
	URL             string `mapstructure:"url" json:"url" yaml:"url"`
	Version         string `mapstructure:"version" json:"version" yaml:"version"`
	NamespacePrefix string `mapstructure:"namespace_prefix" json:"namespace_prefix" yaml:"namespace_prefix"`
	IRIPrefix       string `mapstructure:"iri_prefix" json:"iri_prefix" yaml:"iri_prefix"`
}

// MetadataConfig holds the provenance written into every document.
type MetadataConfig struct {
	// Created is an RFC 3339 timestamp. When empty the input file's
	// modification time is used so repeated runs produce identical output.
	Created string `mapstructure:"created" json:"created,omitempty" yaml:"created,omitempty"`

	CreatedBy string             `mapstructure:"created_by" json:"created_by" yaml:"created_by"`
	Resources []OntologyResource `mapstructure:"resources" json:"resources" yaml:"resources"`
}

// InterpretationConfig holds the constants used when building variant
// interpretations.
type InterpretationConfig struct {
	GenomeAssembly string `mapstructure:"genome_assembly" json:"genome_assembly" yaml:"genome_assembly"`

	// The input carries no disease, but a diagnosis requires one, so this
	// term is used for every diagnosis.
	DiseaseID    string `mapstructure:"disease_id" json:"disease_id" yaml:"disease_id"`
	DiseaseLabel string `mapstructure:"disease_label" json:"disease_label" yaml:"disease_label"`
}

// ConversionConfig groups every setting of a conversion run.
type ConversionConfig struct {
	Input          InputConfig          `mapstructure:"input" json:"input" yaml:"input"`
	Columns        ColumnConfig         `mapstructure:"columns" json:"columns" yaml:"columns"`
	Output         OutputConfig         `mapstructure:"output" json:"output" yaml:"output"`
	Metadata       MetadataConfig       `mapstructure:"metadata" json:"metadata" yaml:"metadata"`
	Interpretation InterpretationConfig `mapstructure:"interpretation" json:"interpretation" yaml:"interpretation"`

	// SkipInvalid logs malformed rows and carries on instead of failing the run.
	SkipInvalid bool `mapstructure:"skip_invalid" json:"skip_invalid" yaml:"skip_invalid"`
}

// DefaultCreatedBy is written to MetaData.createdBy unless configured.
const DefaultCreatedBy = "csv-to-phenopackets"

// DefaultConversionConfig returns the configuration matching the column
// layout of the variant example sheets.
func DefaultConversionConfig() ConversionConfig {
	return ConversionConfig{
		Input: InputConfig{Delimiter: ","},
		Columns: ColumnConfig{
			Individual:   "ID",
			Family:       "FAMILY ID",
			Role:         "ROLE",
			Sex:          "SEX",
			Affected:     "AFFECTED STATUS",
			HPO:          "HPO PRESENT",
			AgeOfOnset:   "AGE OF ONSET (yrs)",
			Gene:         "Gene",
			Transcript:   "Transcript",
			Zygosity:     "Zygosity",
			VariantSlots: []string{"1", "2"},
			Chrom:        "Chrom-",
			Pos:          "Pos-",
			Ref:          "Ref-",
			Alt:          "Alt-",
			HGVSc:        "HGVSc-",
			HGVSp:        "HGVSp-",
		},
		Output: OutputConfig{
			Format: "json",
			Suffix: "_PROBAND",
		},
		Metadata: MetadataConfig{
			CreatedBy: DefaultCreatedBy,
			Resources: DefaultResources(),
		},
		Interpretation: InterpretationConfig{
			GenomeAssembly: "GRCh38",
			DiseaseID:      "MONDO:0003847",
			DiseaseLabel:   "hereditary disease",
		},
	}
}

// DefaultResources lists the HPO, Mondo and GENO releases the documents
// reference.
func DefaultResources() []OntologyResource {
	return []OntologyResource{
		{
			ID:              "hp",
			Name:            "Human Phenotype Ontology",
			URL:             "http://purl.obolibrary.org/obo/hp.owl",
			Version:         "2026-01-08",
			NamespacePrefix: "HP",
			IRIPrefix:       "http://purl.obolibrary.org/obo/HP_",
		},
		{
			ID:              "mondo",
			Name:            "Mondo Disease Ontology",
			URL:             "http://purl.obolibrary.org/obo/mondo/mondo-international.owl",
			Version:         "2026-02-03",
			NamespacePrefix: "MONDO",
			IRIPrefix:       "http://purl.obolibrary.org/obo/MONDO_",
		},
		{
			ID:              "geno",
			Name:            "Genotype Ontology",
			URL:             "http://purl.obolibrary.org/obo/geno.owl",
			Version:         "2025-07-25",
			NamespacePrefix: "GENO",
			IRIPrefix:       "http://purl.obolibrary.org/obo/GENO_",
		},
	}
}
