// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

// MemberSummary describes one family member for listing.
type MemberSummary struct {
	IndividualID   string `json:"individual_id" yaml:"individual_id"`
	Role           string `json:"role,omitempty" yaml:"role,omitempty"`
	Sex            string `json:"sex" yaml:"sex"`
	AffectedStatus string `json:"affected_status" yaml:"affected_status"`
	Line           int    `json:"line" yaml:"line"`
}

// FamilySummary describes one family for listing.
type FamilySummary struct {
	ID      string          `json:"id" yaml:"id"`
	Proband string          `json:"proband,omitempty" yaml:"proband,omitempty"`
	Members []MemberSummary `json:"members" yaml:"members"`
}

// Summaries lists the families of b in order.
func (b *Batch) Summaries() []FamilySummary {
	out := make([]FamilySummary, len(b.Families))
	for i, f := range b.Families {
		fs := FamilySummary{ID: f.ID, Members: make([]MemberSummary, len(f.Members))}
		if p := f.Proband(); p != nil {
			fs.Proband = p.IndividualID
		}
		for j, m := range f.Members {
			fs.Members[j] = MemberSummary{
				IndividualID:   m.IndividualID,
				Role:           string(m.Role),
				Sex:            m.Sex.String(),
				AffectedStatus: m.Affected.String(),
				Line:           m.Line,
			}
		}
		out[i] = fs
	}
	return out
}
