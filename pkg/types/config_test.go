// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestDefaultConversionConfig(t *testing.T) {
	cfg := DefaultConversionConfig()

	assert.Equal(t, "ID", cfg.Columns.Individual)
	assert.Equal(t, []string{"1", "2"}, cfg.Columns.VariantSlots)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "_PROBAND", cfg.Output.Suffix)
	assert.Empty(t, cfg.Metadata.Created)
	assert.False(t, cfg.SkipInvalid)

	prefixes := make([]string, len(cfg.Metadata.Resources))
	for i, r := range cfg.Metadata.Resources {
		prefixes[i] = r.NamespacePrefix
	}
	assert.Equal(t, []string{"HP", "MONDO", "GENO"}, prefixes)
}

func TestDefaultConversionConfig_Independent(t *testing.T) {
	a := DefaultConversionConfig()
	a.Columns.VariantSlots[0] = "X"
	a.Metadata.Resources[0].Version = "changed"

	b := DefaultConversionConfig()
	assert.Equal(t, "1", b.Columns.VariantSlots[0])
	assert.NotEqual(t, "changed", b.Metadata.Resources[0].Version)
}

func TestConversionConfig_YAMLRoundTrip(t *testing.T) {
	cfg := DefaultConversionConfig()
	cfg.Metadata.Created = "2026-03-01T12:00:00Z"
	cfg.SkipInvalid = true

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "age_of_onset: AGE OF ONSET (yrs)")
	assert.Contains(t, string(data), "skip_invalid: true")

	var got ConversionConfig
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, cfg, got)
}
