// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapping

import (
	"fmt"

	"github.com/pdiddy/csv-to-phenopackets/pkg/phenopacket"
)

// unknownParent is the PED convention for a parent not in the pedigree.
const unknownParent = "0"

// Family is the members sharing a family id, in row order.
type Family struct {
	ID      string
	Members []*Member
}

// Proband returns the PROBAND member, or nil if the family has none.
func (f *Family) Proband() *Member {
	for _, m := range f.Members {
		if m.Role == RoleProband {
			return m
		}
	}
	return nil
}

// FamilyError reports a member that cannot be placed in its family.
type FamilyError struct {
	Family string
	Line   int
	Reason string
}

func (e *FamilyError) Error() string {
	return fmt.Sprintf("family %s, line %d: %s", e.Family, e.Line, e.Reason)
}

// Group collects members into families ordered by first appearance. An
// individual id may appear only once per family and a family may have at
// most one proband. When two members would share a phenopacket id (two
// siblings, say) the later one falls back to its individual id, and then to
// its individual id suffixed with its line number.
func Group(members []*Member) ([]*Family, error) {
	var first error
	families := group(members, func(err *FamilyError) bool {
		first = err
		return false
	})
	if first != nil {
		return nil, first
	}
	return families, nil
}

// GroupSkipping groups like Group but leaves out every member that cannot be
// placed in its family, reporting each one to skipped.
func GroupSkipping(members []*Member, skipped func(*FamilyError)) []*Family {
	return group(members, func(err *FamilyError) bool {
		if skipped != nil {
			skipped(err)
		}
		return true
	})
}

// group places members in families. onConflict is called for each member
// that cannot be placed; grouping stops when it returns false.
func group(members []*Member, onConflict func(*FamilyError) bool) []*Family {
	var families []*Family
	byID := make(map[string]*Family)
	individuals := make(map[string]map[string]int)
	phenopacketIDs := make(map[string]map[string]bool)

	for _, m := range members {
		f, ok := byID[m.FamilyID]
		if !ok {
			f = &Family{ID: m.FamilyID}
			individuals[m.FamilyID] = make(map[string]int)
			phenopacketIDs[m.FamilyID] = make(map[string]bool)
		}

		if err := placeable(f, individuals[f.ID], m); err != nil {
			if !onConflict(err) {
				return nil
			}
			continue
		}
		id, err := uniquePhenopacketID(f.ID, phenopacketIDs[f.ID], m)
		if err != nil {
			if !onConflict(err) {
				return nil
			}
			continue
		}

		if !ok {
			byID[f.ID] = f
			families = append(families, f)
		}
		individuals[f.ID][m.IndividualID] = m.Line
		phenopacketIDs[f.ID][id] = true
		m.Phenopacket.ID = id
		f.Members = append(f.Members, m)
	}
	return families
}

// placeable rejects a repeated individual and a second proband.
func placeable(f *Family, seen map[string]int, m *Member) *FamilyError {
	if line, dup := seen[m.IndividualID]; dup {
		return &FamilyError{
			Family: f.ID,
			Line:   m.Line,
			Reason: fmt.Sprintf("duplicate individual %s (first seen on line %d)", m.IndividualID, line),
		}
	}
	if m.Role == RoleProband {
		if p := f.Proband(); p != nil {
			return &FamilyError{
				Family: f.ID,
				Line:   m.Line,
				Reason: fmt.Sprintf("second proband %s (proband %s on line %d)", m.IndividualID, p.IndividualID, p.Line),
			}
		}
	}
	return nil
}

// uniquePhenopacketID picks the first of the member's phenopacket id, its
// individual id and <individual>_<line> that the family has not used yet.
func uniquePhenopacketID(familyID string, used map[string]bool, m *Member) (string, *FamilyError) {
	candidates := []string{
		m.Phenopacket.ID,
		m.IndividualID,
		fmt.Sprintf("%s_%d", m.IndividualID, m.Line),
	}
	for _, id := range candidates {
		if !used[id] {
			return id, nil
		}
	}
	return "", &FamilyError{
		Family: familyID,
		Line:   m.Line,
		Reason: fmt.Sprintf("phenopacket id %s is already used in the family", m.Phenopacket.ID),
	}
}

// Family assembles the document for f: the proband, every other member as a
// relative, the pedigree, and metadata listing all configured ontologies.
func (m *Mapper) Family(f *Family) *phenopacket.Family {
	doc := &phenopacket.Family{
		ID:       f.ID,
		Pedigree: pedigree(f),
		MetaData: m.metaData(nil),
	}
	for _, mem := range f.Members {
		pp := mem.Phenopacket
		if mem.Role == RoleProband {
			doc.Proband = &pp
			continue
		}
		doc.Relatives = append(doc.Relatives, pp)
	}
	return doc
}

// pedigree lists every member. Parents have unknown parents; everyone else
// is linked to the family's first FATHER and MOTHER, when present.
func pedigree(f *Family) *phenopacket.Pedigree {
	fatherID, motherID := unknownParent, unknownParent
	for _, m := range f.Members {
		if m.Role == RoleFather && fatherID == unknownParent {
			fatherID = m.IndividualID
		}
		if m.Role == RoleMother && motherID == unknownParent {
			motherID = m.IndividualID
		}
	}

	persons := make([]phenopacket.PedigreePerson, len(f.Members))
	for i, m := range f.Members {
		paternal, maternal := fatherID, motherID
		if m.Role.IsParent() {
			paternal, maternal = unknownParent, unknownParent
		}
		persons[i] = phenopacket.PedigreePerson{
			FamilyID:       f.ID,
			IndividualID:   m.IndividualID,
			PaternalID:     paternal,
			MaternalID:     maternal,
			Sex:            m.Sex,
			AffectedStatus: m.Affected,
		}
	}
	return &phenopacket.Pedigree{Persons: persons}
}
