// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package phenopacket models the subset of the GA4GH Phenopacket v2 schema
// that the converter emits: Family, Phenopacket, Pedigree, Interpretation and
// MetaData. Field order and JSON names follow the schema's protobuf
// definitions so that encoding a value yields the canonical protobuf JSON
// form accepted by phenopacket-tools.
package phenopacket

// SchemaVersion is the phenopacket schema version written into MetaData.
const SchemaVersion = "2.0"

// OntologyClass is a term from an ontology, e.g. HP:0001250 "Seizure".
type OntologyClass struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Age is an ISO 8601 duration such as "P3Y".
type Age struct {
	ISO8601Duration string `json:"iso8601duration,omitempty" yaml:"iso8601duration,omitempty"`
}

// TimeElement is a point in an individual's life. Only the age form is used.
type TimeElement struct {
	Age *Age `json:"age,omitempty" yaml:"age,omitempty"`
}

// Individual is the subject of a phenopacket.
type Individual struct {
	ID                  string       `json:"id" yaml:"id"`
	TimeAtLastEncounter *TimeElement `json:"timeAtLastEncounter,omitempty" yaml:"timeAtLastEncounter,omitempty"`
	Sex                 Sex          `json:"sex,omitzero" yaml:"sex,omitempty"`
}

// PhenotypicFeature is an observed phenotype of the subject.
type PhenotypicFeature struct {
	Type OntologyClass `json:"type" yaml:"type"`
}

// Phenopacket describes one individual.
type Phenopacket struct {
	ID                 string              `json:"id" yaml:"id"`
	Subject            *Individual         `json:"subject,omitempty" yaml:"subject,omitempty"`
	PhenotypicFeatures []PhenotypicFeature `json:"phenotypicFeatures,omitempty" yaml:"phenotypicFeatures,omitempty"`
	Interpretations    []Interpretation    `json:"interpretations,omitempty" yaml:"interpretations,omitempty"`
	MetaData           *MetaData           `json:"metaData,omitempty" yaml:"metaData,omitempty"`
}

// PedigreePerson is one line of a PED-style pedigree.
type PedigreePerson struct {
	FamilyID       string         `json:"familyId" yaml:"familyId"`
	IndividualID   string         `json:"individualId" yaml:"individualId"`
	PaternalID     string         `json:"paternalId,omitempty" yaml:"paternalId,omitempty"`
	MaternalID     string         `json:"maternalId,omitempty" yaml:"maternalId,omitempty"`
	Sex            Sex            `json:"sex,omitzero" yaml:"sex,omitempty"`
	AffectedStatus AffectedStatus `json:"affectedStatus,omitzero" yaml:"affectedStatus,omitempty"`
}

// Pedigree lists the members of a family and their parents.
type Pedigree struct {
	Persons []PedigreePerson `json:"persons,omitempty" yaml:"persons,omitempty"`
}

// Family groups the phenopackets of a proband and relatives with a pedigree.
type Family struct {
	ID        string        `json:"id" yaml:"id"`
	Proband   *Phenopacket  `json:"proband,omitempty" yaml:"proband,omitempty"`
	Relatives []Phenopacket `json:"relatives,omitempty" yaml:"relatives,omitempty"`
	Pedigree  *Pedigree     `json:"pedigree,omitempty" yaml:"pedigree,omitempty"`
	MetaData  *MetaData     `json:"metaData,omitempty" yaml:"metaData,omitempty"`
}

// Individuals returns the number of phenopackets in the family.
func (f *Family) Individuals() int {
	n := len(f.Relatives)
	if f.Proband != nil {
		n++
	}
	return n
}
