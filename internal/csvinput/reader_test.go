// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package csvinput

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_HeaderAndRows(t *testing.T) {
	input := "\ufeffID , SEX\n" +
		"F1_PROBAND, MALE \n" +
		"\n" +
		"\"F1_MOTHER\",\"FEMALE\"\n"

	table, err := Read(strings.NewReader(input), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "SEX"}, table.Header)
	assert.True(t, table.HasColumn("ID"))
	assert.False(t, table.HasColumn("ROLE"))
	require.Len(t, table.Rows, 2)

	assert.Equal(t, 2, table.Rows[0].Line)
	assert.Equal(t, "F1_PROBAND", table.Rows[0].Get("ID"))
	assert.Equal(t, "MALE", table.Rows[0].Get("SEX"))

	assert.Equal(t, 4, table.Rows[1].Line, "blank lines still count")
	assert.Equal(t, "FEMALE", table.Rows[1].Get("SEX"))
	assert.Empty(t, table.Rows[1].Get("ROLE"))
	assert.False(t, table.Rows[1].Has("ROLE"))
}

func TestRead_QuotedFieldsSpanLines(t *testing.T) {
	input := "ID,NOTE\nA_PROBAND,\"one\ntwo\"\nA_MOTHER,x\n"

	table, err := Read(strings.NewReader(input), Options{})
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "one\ntwo", table.Rows[0].Get("NOTE"))
	assert.Equal(t, 4, table.Rows[1].Line)
}

func TestRead_Delimiters(t *testing.T) {
	tests := []struct {
		delimiter string
		input     string
	}{
		{"tab", "ID\tSEX\nF1_PROBAND\tMALE\n"},
		{`\t`, "ID\tSEX\nF1_PROBAND\tMALE\n"},
		{";", "ID;SEX\nF1_PROBAND;MALE\n"},
		{"", "ID,SEX\nF1_PROBAND,MALE\n"},
	}

	for _, tt := range tests {
		t.Run(tt.delimiter, func(t *testing.T) {
			table, err := Read(strings.NewReader(tt.input), Options{Delimiter: tt.delimiter})
			require.NoError(t, err)
			require.Len(t, table.Rows, 1)
			assert.Equal(t, "MALE", table.Rows[0].Get("SEX"))
		})
	}
}

func TestRead_HeaderOnly(t *testing.T) {
	table, err := Read(strings.NewReader("ID,SEX\n"), Options{})
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
	assert.Len(t, table.Header, 2)
}

func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{"empty input", "", "missing header row"},
		{"empty header column", "ID,,SEX\n", "header column 2 is empty"},
		{"duplicate header", "ID,SEX,ID\n", `duplicate header column "ID"`},
		{"short row", "ID,SEX\nF1_PROBAND\n", "wrong number of fields"},
		{"unterminated quote", "ID,SEX\nF1_PROBAND,\"MALE\n", "extraneous or missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestTable_Require(t *testing.T) {
	table, err := Read(strings.NewReader("ID,SEX\n"), Options{})
	require.NoError(t, err)

	assert.NoError(t, table.Require("ID"))

	err = table.Require("ID", "FAMILY", "ROLE")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), `"FAMILY", "ROLE"`)
}

func TestOptions_Comma(t *testing.T) {
	tests := []struct {
		delimiter string
		want      rune
		wantErr   bool
	}{
		{"", ',', false},
		{",", ',', false},
		{"tab", '\t', false},
		{"\t", '\t', false},
		{"|", '|', false},
		{"§", '§', false},
		{`"`, 0, true},
		{"\n", 0, true},
		{";;", 0, true},
	}

	for _, tt := range tests {
		got, err := Options{Delimiter: tt.delimiter}.Comma()
		if tt.wantErr {
			assert.Error(t, err, "%q", tt.delimiter)
			continue
		}
		require.NoError(t, err, "%q", tt.delimiter)
		assert.Equal(t, tt.want, got)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("ID\nF1_PROBAND\n"), 0o644))

	table, err := ReadFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, path, table.Path)
	assert.Len(t, table.Rows, 1)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
