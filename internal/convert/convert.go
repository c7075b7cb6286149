// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the CSV-to-Phenopacket conversion run: read the
// CSV, map rows to members, group members into families, encode one Family
// document per family and write the documents into the output directory.
//
// A run is all-or-nothing. Every document is built and encoded before the
// first file is written, and a failed write removes the files the run
// already wrote.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pdiddy/csv-to-phenopackets/internal/csvinput"
	"github.com/pdiddy/csv-to-phenopackets/internal/mapping"
	"github.com/pdiddy/csv-to-phenopackets/pkg/phenopacket"
	"github.com/pdiddy/csv-to-phenopackets/pkg/types"
)

// Converter runs conversions with one validated configuration.
type Converter struct {
	cfg    types.ConversionConfig
	format phenopacket.Format
	log    *slog.Logger
}

// New validates cfg. A nil logger discards log output.
func New(cfg types.ConversionConfig, log *slog.Logger) (*Converter, error) {
	format, err := phenopacket.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	if strings.ContainsAny(cfg.Output.Suffix, `/\`) {
		return nil, fmt.Errorf("output.suffix %q must not contain path separators", cfg.Output.Suffix)
	}
	if _, err := (csvinput.Options{Delimiter: cfg.Input.Delimiter}).Comma(); err != nil {
		return nil, err
	}
	if cfg.Metadata.Created != "" {
		if _, err := time.Parse(time.RFC3339, cfg.Metadata.Created); err != nil {
			return nil, fmt.Errorf("metadata.created %q is not an RFC 3339 timestamp: %w", cfg.Metadata.Created, err)
		}
	}
	if _, err := mapping.New(cfg, time.Time{}); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Converter{cfg: cfg, format: format, log: log}, nil
}

// Batch is the mapped content of one input file.
type Batch struct {
	Input    string
	Created  time.Time
	Families []*mapping.Family

	// Members counts mapped rows; Skipped counts rows dropped with
	// SkipInvalid.
	Members int
	Skipped int

	mapper *mapping.Mapper
}

// Document is one encoded family, ready to write.
type Document struct {
	FamilyID    string
	FileName    string
	Individuals int
	HasProband  bool
	Data        []byte
}

// Result summarizes a run.
type Result struct {
	Families int
	Members  int
	Skipped  int
	Files    []string
}

// HasSkipped reports whether any rows were dropped.
func (r Result) HasSkipped() bool {
	return r.Skipped > 0
}

// Load reads and maps inputPath. Malformed rows fail the load unless the
// configuration sets SkipInvalid, in which case they are logged and counted,
// as are members repeated within a family and second probands.
// Structural problems (unparsable CSV, missing required columns) always fail.
func (c *Converter) Load(ctx context.Context, inputPath string) (*Batch, error) {
	created, err := c.created(inputPath)
	if err != nil {
		return nil, err
	}
	mapper, err := mapping.New(c.cfg, created)
	if err != nil {
		return nil, err
	}

	table, err := csvinput.ReadFile(inputPath, csvinput.Options{Delimiter: c.cfg.Input.Delimiter})
	if err != nil {
		if errors.Is(err, csvinput.ErrMalformed) {
			return nil, malformed("reading input", inputPath, err)
		}
		return nil, ioFailure("reading input", inputPath, err)
	}
	if err := table.Require(mapper.RequiredColumns()...); err != nil {
		return nil, malformed("checking columns", inputPath, err)
	}
	c.log.Debug("input parsed", "path", inputPath, "columns", len(table.Header), "rows", len(table.Rows))

	b := &Batch{Input: inputPath, Created: created, mapper: mapper}
	members := make([]*mapping.Member, 0, len(table.Rows))
	for _, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, err := mapper.Member(row)
		if err != nil {
			if c.cfg.SkipInvalid {
				c.log.Warn("skipping row", "path", inputPath, "line", row.Line, "error", err)
				b.Skipped++
				continue
			}
			return nil, &Error{Op: "mapping row", Kind: KindMalformedInput, Path: inputPath, Line: row.Line, Err: err}
		}
		members = append(members, m)
	}
	if c.cfg.SkipInvalid {
		placed := len(members)
		b.Families = mapping.GroupSkipping(members, func(fe *mapping.FamilyError) {
			c.log.Warn("skipping row", "path", inputPath, "line", fe.Line, "family", fe.Family, "error", fe)
			b.Skipped++
			placed--
		})
		b.Members = placed
		return b, nil
	}

	families, err := mapping.Group(members)
	if err != nil {
		ce := &Error{Op: "grouping families", Kind: KindMalformedInput, Path: inputPath, Err: err}
		var fe *mapping.FamilyError
		if errors.As(err, &fe) {
			ce.Line, ce.Family = fe.Line, fe.Family
		}
		return nil, ce
	}
	b.Members = len(members)
	b.Families = families
	return b, nil
}

// Build assembles and encodes one document per family, in family order.
func (c *Converter) Build(ctx context.Context, b *Batch) ([]Document, error) {
	docs := make([]Document, 0, len(b.Families))
	for _, f := range b.Families {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name, err := FileName(f.ID, c.cfg.Output.Suffix, c.format)
		if err != nil {
			return nil, &Error{Op: "naming output", Kind: KindMalformedInput, Path: b.Input, Line: f.Members[0].Line, Family: f.ID, Err: err}
		}

		doc := b.mapper.Family(f)
		if doc.Proband == nil {
			c.log.Warn("family has no proband", "family", f.ID, "members", len(f.Members))
		}
		data, err := phenopacket.Marshal(c.format, doc)
		if err != nil {
			return nil, fmt.Errorf("encoding family %s: %w", f.ID, err)
		}
		docs = append(docs, Document{
			FamilyID:    f.ID,
			FileName:    name,
			Individuals: doc.Individuals(),
			HasProband:  doc.Proband != nil,
			Data:        data,
		})
	}
	return docs, nil
}

// Plan loads and builds without touching the output directory.
func (c *Converter) Plan(ctx context.Context, inputPath string) (*Batch, []Document, error) {
	b, err := c.Load(ctx, inputPath)
	if err != nil {
		return nil, nil, err
	}
	docs, err := c.Build(ctx, b)
	if err != nil {
		return nil, nil, err
	}
	return b, docs, nil
}

// Run converts inputPath into one file per family under outputDir, creating
// the directory if needed, and prints progress to w. An input with no data
// rows produces no files and no error.
func (c *Converter) Run(ctx context.Context, inputPath, outputDir string, w io.Writer) (Result, error) {
	fmt.Fprintf(w, "Reading samples from %s...\n", inputPath)
	b, docs, err := c.Plan(ctx, inputPath)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "Parsed %d family members\n", b.Members)
	if b.Skipped > 0 {
		fmt.Fprintf(w, "Skipped %d invalid rows\n", b.Skipped)
	}
	fmt.Fprintf(w, "Found %d families\n", len(b.Families))

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Result{}, ioFailure("creating output directory", outputDir, err)
	}

	files, err := writeDocuments(outputDir, docs, w)
	if err != nil {
		return Result{}, err
	}
	c.log.Info("conversion complete", "input", inputPath, "output", outputDir, "families", len(docs), "skipped", b.Skipped)

	fmt.Fprintf(w, "\nCompleted! %d files created in %s/\n", len(files), strings.TrimSuffix(outputDir, "/"))
	return Result{
		Families: len(b.Families),
		Members:  b.Members,
		Skipped:  b.Skipped,
		Files:    files,
	}, nil
}

// created is the configured creation time, or the input's modification time
// truncated to the second.
func (c *Converter) created(inputPath string) (time.Time, error) {
	if c.cfg.Metadata.Created != "" {
		t, err := time.Parse(time.RFC3339, c.cfg.Metadata.Created)
		if err != nil {
			return time.Time{}, fmt.Errorf("metadata.created: %w", err)
		}
		return t.UTC(), nil
	}
	info, err := os.Stat(inputPath)
	if err != nil {
		return time.Time{}, ioFailure("reading input", inputPath, err)
	}
	if info.IsDir() {
		return time.Time{}, ioFailure("reading input", inputPath, errors.New("is a directory"))
	}
	return info.ModTime().UTC().Truncate(time.Second), nil
}

// FileName returns "<familyID><suffix>.<ext>". Family ids that cannot be a
// single file name are rejected.
func FileName(familyID, suffix string, format phenopacket.Format) (string, error) {
	switch {
	case familyID == "", familyID == ".", familyID == "..":
		return "", fmt.Errorf("family id %q cannot be used as a file name", familyID)
	case strings.ContainsAny(familyID, "/\\\x00"):
		return "", fmt.Errorf("family id %q contains a path separator", familyID)
	}
	return familyID + suffix + format.Extension(), nil
}
