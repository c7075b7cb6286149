// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mapping turns CSV rows into phenopacket documents. Each row becomes
// a Member carrying its own Phenopacket; members are grouped into families in
// first-seen order and each family is assembled into a phenopacket.Family
// with a pedigree.
package mapping

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/csv-to-phenopackets/internal/csvinput"
	"github.com/pdiddy/csv-to-phenopackets/pkg/phenopacket"
	"github.com/pdiddy/csv-to-phenopackets/pkg/types"
)

// Role is a member's position in the family.
type Role string

const (
	RoleNone    Role = ""
	RoleProband Role = "PROBAND"
	RoleMother  Role = "MOTHER"
	RoleFather  Role = "FATHER"
	RoleSibling Role = "SIBLING"
)

// IsParent reports whether r is MOTHER or FATHER.
func (r Role) IsParent() bool {
	return r == RoleMother || r == RoleFather
}

// individualIDPattern splits "FAM1_PROBAND" into family "FAM1" and role
// "PROBAND". Anything after the role is allowed, e.g. "FAM1_SIBLING_2".
var individualIDPattern = regexp.MustCompile(`^(.+)_(MOTHER|FATHER|PROBAND|SIBLING)`)

// Member is one mapped row.
type Member struct {
	FamilyID     string
	IndividualID string
	Role         Role
	Sex          phenopacket.Sex
	Affected     phenopacket.AffectedStatus

	// Line is the CSV line the member was read from.
	Line int

	Phenopacket phenopacket.Phenopacket
}

// Mapper maps rows using a fixed configuration and creation time.
type Mapper struct {
	cfg       types.ConversionConfig
	created   phenopacket.Timestamp
	disease   phenopacket.OntologyClass
	resources []phenopacket.Resource
}

// New validates cfg and returns a Mapper stamping documents with created.
func New(cfg types.ConversionConfig, created time.Time) (*Mapper, error) {
	if cfg.Columns.Individual == "" {
		return nil, errors.New("columns.individual must name the individual id column")
	}
	if cfg.Interpretation.DiseaseID == "" || cfg.Interpretation.DiseaseLabel == "" {
		return nil, errors.New("interpretation.disease_id and interpretation.disease_label are required")
	}

	resources := make([]phenopacket.Resource, len(cfg.Metadata.Resources))
	for i, r := range cfg.Metadata.Resources {
		if r.ID == "" || r.NamespacePrefix == "" {
			return nil, fmt.Errorf("metadata.resources[%d]: id and namespace_prefix are required", i)
		}
		resources[i] = phenopacket.Resource{
			ID:              r.ID,
			Name:            r.Name,
			URL:             r.URL,
			Version:         r.Version,
			NamespacePrefix: r.NamespacePrefix,
			IRIPrefix:       r.IRIPrefix,
		}
	}

	return &Mapper{
		cfg:     cfg,
		created: phenopacket.NewTimestamp(created.UTC()),
		disease: phenopacket.OntologyClass{
			ID:    cfg.Interpretation.DiseaseID,
			Label: cfg.Interpretation.DiseaseLabel,
		},
		resources: resources,
	}, nil
}

// RequiredColumns lists the header columns every input must have.
func (m *Mapper) RequiredColumns() []string {
	return []string{m.cfg.Columns.Individual}
}

// Member maps a single row. Cells that are empty or whose column is absent
// are left out of the phenopacket.
func (m *Mapper) Member(row csvinput.Row) (*Member, error) {
	cols := m.cfg.Columns

	id := row.Get(cols.Individual)
	if id == "" {
		return nil, fmt.Errorf("empty individual id in column %q", cols.Individual)
	}

	familyID, role, err := m.familyAndRole(row, id)
	if err != nil {
		return nil, err
	}

	sex, err := ParseSex(row.Get(cols.Sex))
	if err != nil {
		return nil, fmt.Errorf("individual %s: %w", id, err)
	}
	affected, err := ParseAffectedStatus(row.Get(cols.Affected))
	if err != nil {
		return nil, fmt.Errorf("individual %s: %w", id, err)
	}
	features, err := ParseHPOTerms(row.Get(cols.HPO))
	if err != nil {
		return nil, fmt.Errorf("individual %s: %w", id, err)
	}
	onset, err := parseAgeOfOnset(row.Get(cols.AgeOfOnset))
	if err != nil {
		return nil, fmt.Errorf("individual %s: %w", id, err)
	}
	variants, err := m.parseVariants(row)
	if err != nil {
		return nil, fmt.Errorf("individual %s: %w", id, err)
	}

	subject := &phenopacket.Individual{ID: id, Sex: sex}
	if onset != "" {
		subject.TimeAtLastEncounter = &phenopacket.TimeElement{
			Age: &phenopacket.Age{ISO8601Duration: onset},
		}
	}

	pp := phenopacket.Phenopacket{
		ID:                 phenopacketID(familyID, role, id),
		Subject:            subject,
		PhenotypicFeatures: features,
		Interpretations:    m.interpretations(id, affected, variants),
	}
	pp.MetaData = m.memberMetaData(&pp)

	return &Member{
		FamilyID:     familyID,
		IndividualID: id,
		Role:         role,
		Sex:          sex,
		Affected:     affected,
		Line:         row.Line,
		Phenopacket:  pp,
	}, nil
}

// familyAndRole takes the family id and role from their own columns when
// the header has them, and from the individual id otherwise.
func (m *Mapper) familyAndRole(row csvinput.Row, id string) (string, Role, error) {
	cols := m.cfg.Columns
	match := individualIDPattern.FindStringSubmatch(id)

	var familyID string
	switch {
	case cols.Family != "" && row.Has(cols.Family):
		familyID = row.Get(cols.Family)
		if familyID == "" {
			return "", RoleNone, fmt.Errorf("individual %s: empty family id in column %q", id, cols.Family)
		}
	case match != nil:
		familyID = match[1]
	default:
		return "", RoleNone, fmt.Errorf("invalid ID format %q: want <family>_<MOTHER|FATHER|PROBAND|SIBLING>", id)
	}

	if cols.Role != "" && row.Has(cols.Role) {
		role, err := ParseRole(row.Get(cols.Role))
		if err != nil {
			return "", RoleNone, fmt.Errorf("individual %s: %w", id, err)
		}
		return familyID, role, nil
	}
	if match != nil {
		return familyID, Role(match[2]), nil
	}
	return familyID, RoleNone, nil
}

// phenopacketID is "<family>_<role>", or the individual id for members
// without a role.
func phenopacketID(familyID string, role Role, individualID string) string {
	if role == RoleNone {
		return individualID
	}
	return familyID + "_" + string(role)
}

// ParseRole accepts PROBAND, MOTHER, FATHER, SIBLING or an empty cell,
// case-insensitively.
func ParseRole(v string) (Role, error) {
	switch r := Role(strings.ToUpper(v)); r {
	case RoleNone, RoleProband, RoleMother, RoleFather, RoleSibling:
		return r, nil
	}
	return RoleNone, fmt.Errorf("invalid role %q: want PROBAND, MOTHER, FATHER or SIBLING", v)
}

// ParseSex accepts the schema names and the short forms M, F, OTHER and
// UNKNOWN, case-insensitively. An empty cell is UNKNOWN_SEX.
func ParseSex(v string) (phenopacket.Sex, error) {
	switch strings.ToUpper(v) {
	case "", "UNKNOWN", "UNKNOWN_SEX":
		return phenopacket.SexUnknown, nil
	case "F", "FEMALE":
		return phenopacket.SexFemale, nil
	case "M", "MALE":
		return phenopacket.SexMale, nil
	case "OTHER", "OTHER_SEX":
		return phenopacket.SexOther, nil
	}
	return phenopacket.SexUnknown, fmt.Errorf("invalid sex %q: want MALE, FEMALE, OTHER_SEX or UNKNOWN_SEX", v)
}

// ParseAffectedStatus accepts AFFECTED, UNAFFECTED, MISSING and UNKNOWN,
// case-insensitively. Empty and UNKNOWN are MISSING.
func ParseAffectedStatus(v string) (phenopacket.AffectedStatus, error) {
	switch strings.ToUpper(v) {
	case "", "MISSING", "UNKNOWN":
		return phenopacket.AffectedMissing, nil
	case "UNAFFECTED":
		return phenopacket.AffectedUnaffected, nil
	case "AFFECTED":
		return phenopacket.AffectedAffected, nil
	}
	return phenopacket.AffectedMissing, fmt.Errorf("invalid affected status %q: want AFFECTED, UNAFFECTED or MISSING", v)
}

var agePattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// parseAgeOfOnset converts an age in years to an ISO 8601 duration.
func parseAgeOfOnset(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	if !agePattern.MatchString(v) {
		return "", fmt.Errorf("invalid age of onset %q: want years, e.g. 3 or 2.5", v)
	}
	return "P" + v + "Y", nil
}
