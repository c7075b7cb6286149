// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package phenopacket

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resource is an ontology referenced by the terms of a document.
type Resource struct {
	ID              string `json:"id,omitempty" yaml:"id,omitempty"`
	Name            string `json:"name,omitempty" yaml:"name,omitempty"`
	URL             string `json:"url,omitempty" yaml:"url,omitempty"`
	Version         string `json:"version,omitempty" yaml:"version,omitempty"`
	NamespacePrefix string `json:"namespacePrefix,omitempty" yaml:"namespacePrefix,omitempty"`
	IRIPrefix       string `json:"iriPrefix,omitempty" yaml:"iriPrefix,omitempty"`
}

// MetaData records provenance and the ontologies a document uses.
type MetaData struct {
	Created                  Timestamp  `json:"created,omitzero" yaml:"created,omitempty"`
	CreatedBy                string     `json:"createdBy,omitempty" yaml:"createdBy,omitempty"`
	Resources                []Resource `json:"resources,omitempty" yaml:"resources,omitempty"`
	PhenopacketSchemaVersion string     `json:"phenopacketSchemaVersion,omitempty" yaml:"phenopacketSchemaVersion,omitempty"`
}

// Timestamp is a google.protobuf.Timestamp. It encodes as RFC 3339 in UTC
// with 0, 3, 6 or 9 fractional digits.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) String() string {
	u := t.UTC()
	layout := "2006-01-02T15:04:05"
	switch ns := u.Nanosecond(); {
	case ns == 0:
	case ns%1_000_000 == 0:
		layout += ".000"
	case ns%1_000 == 0:
		layout += ".000000"
	default:
		layout += ".000000000"
	}
	return u.Format(layout + "Z")
}

func (t Timestamp) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }
func (t Timestamp) MarshalYAML() (any, error)    { return t.String(), nil }

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
