// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package phenopacket

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Enumerations carry their protobuf numbers. The zero value of each is the
// schema default, which the canonical encoding omits, so every enum
// implements IsZero for the omitzero/omitempty tags.

// Sex is the phenotypic sex of an individual.
type Sex int32

const (
	SexUnknown Sex = iota
	SexFemale
	SexMale
	SexOther
)

var sexNames = []string{"UNKNOWN_SEX", "FEMALE", "MALE", "OTHER_SEX"}

func (s Sex) String() string                { return enumName(sexNames, int32(s)) }
func (s Sex) IsZero() bool                  { return s == SexUnknown }
func (s Sex) MarshalJSON() ([]byte, error)  { return json.Marshal(s.String()) }
func (s Sex) MarshalYAML() (any, error)     { return s.String(), nil }
func (s *Sex) UnmarshalJSON(b []byte) error { return unmarshalEnum(b, sexNames, (*int32)(s)) }

// AffectedStatus is the disease status of a pedigree member.
type AffectedStatus int32

const (
	AffectedMissing AffectedStatus = iota
	AffectedUnaffected
	AffectedAffected
)

var affectedNames = []string{"MISSING", "UNAFFECTED", "AFFECTED"}

func (a AffectedStatus) String() string               { return enumName(affectedNames, int32(a)) }
func (a AffectedStatus) IsZero() bool                 { return a == AffectedMissing }
func (a AffectedStatus) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }
func (a AffectedStatus) MarshalYAML() (any, error)    { return a.String(), nil }
func (a *AffectedStatus) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, affectedNames, (*int32)(a))
}

// ProgressStatus records how far the interpretation of a case has come.
type ProgressStatus int32

const (
	ProgressUnknown ProgressStatus = iota
	ProgressInProgress
	ProgressCompleted
	ProgressSolved
	ProgressUnsolved
)

var progressNames = []string{"UNKNOWN_PROGRESS", "IN_PROGRESS", "COMPLETED", "SOLVED", "UNSOLVED"}

func (p ProgressStatus) String() string               { return enumName(progressNames, int32(p)) }
func (p ProgressStatus) IsZero() bool                 { return p == ProgressUnknown }
func (p ProgressStatus) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }
func (p ProgressStatus) MarshalYAML() (any, error)    { return p.String(), nil }
func (p *ProgressStatus) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, progressNames, (*int32)(p))
}

// InterpretationStatus is the role a variant plays in the diagnosis.
type InterpretationStatus int32

const (
	InterpretationUnknown InterpretationStatus = iota
	InterpretationRejected
	InterpretationCandidate
	InterpretationContributory
	InterpretationCausative
)

var interpretationNames = []string{"UNKNOWN_STATUS", "REJECTED", "CANDIDATE", "CONTRIBUTORY", "CAUSATIVE"}

func (s InterpretationStatus) String() string {
	return enumName(interpretationNames, int32(s))
}
func (s InterpretationStatus) IsZero() bool                 { return s == InterpretationUnknown }
func (s InterpretationStatus) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }
func (s InterpretationStatus) MarshalYAML() (any, error)    { return s.String(), nil }
func (s *InterpretationStatus) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, interpretationNames, (*int32)(s))
}

func enumName(names []string, v int32) string {
	if v >= 0 && int(v) < len(names) {
		return names[v]
	}
	return strconv.Itoa(int(v))
}

// unmarshalEnum accepts either the value name or its number, as the
// canonical JSON mapping does.
func unmarshalEnum(b []byte, names []string, dst *int32) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		var n int32
		if nerr := json.Unmarshal(b, &n); nerr != nil {
			return fmt.Errorf("enum value %s: %w", b, err)
		}
		*dst = n
		return nil
	}
	for i, candidate := range names {
		if candidate == name {
			*dst = int32(i)
			return nil
		}
	}
	return fmt.Errorf("unknown enum value %q", name)
}
