// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// staged is a document written to a temporary file beside its target.
type staged struct {
	doc    Document
	path   string
	tmp    string
	backup string // previous target moved aside, empty when there was none
	placed bool
}

// writeDocuments writes docs into dir in two phases. Every document is first
// written to a temporary file; only when all of them are on disk are they
// renamed into place. A target that already holds a file is moved aside
// first, so a failed rename restores the previous output. On failure the
// directory is left as it was before the call.
func writeDocuments(dir string, docs []Document, w io.Writer) ([]string, error) {
	files := make([]*staged, 0, len(docs))
	for _, d := range docs {
		path := filepath.Join(dir, d.FileName)
		tmp, err := writeTemp(path, d.Data)
		if err != nil {
			rollback(files)
			return nil, &Error{Op: "writing document", Kind: KindIO, Path: path, Family: d.FamilyID, Err: err}
		}
		files = append(files, &staged{doc: d, path: path, tmp: tmp})
	}

	for _, f := range files {
		if err := f.place(); err != nil {
			rollback(files)
			return nil, &Error{Op: "writing document", Kind: KindIO, Path: f.path, Family: f.doc.FamilyID, Err: err}
		}
	}

	written := make([]string, len(files))
	for i, f := range files {
		if f.backup != "" {
			os.Remove(f.backup)
		}
		written[i] = f.path
		fmt.Fprintf(w, "  Created %s (%d individuals)\n", f.doc.FileName, f.doc.Individuals)
	}
	return written, nil
}

// place moves any existing regular file at the target aside and renames the
// temporary file into place.
func (f *staged) place() error {
	info, err := os.Lstat(f.path)
	switch {
	case err == nil && info.Mode().IsRegular():
		f.backup = f.tmp + ".bak"
		if err := os.Rename(f.path, f.backup); err != nil {
			f.backup = ""
			return fmt.Errorf("moving previous %s aside: %w", filepath.Base(f.path), err)
		}
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("checking %s: %w", f.path, err)
	}

	if err := os.Rename(f.tmp, f.path); err != nil {
		return fmt.Errorf("renaming into place: %w", err)
	}
	f.placed = true
	return nil
}

// rollback undoes every placed file, restores the files they replaced and
// removes the temporary files.
func rollback(files []*staged) {
	for _, f := range files {
		if f.placed {
			os.Remove(f.path)
		} else {
			os.Remove(f.tmp)
		}
		if f.backup != "" {
			os.Rename(f.backup, f.path)
		}
	}
}

// writeTemp writes data to a new temporary file beside path and returns its
// name. The file is complete and closed on success.
func writeTemp(path string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	return tmpName, nil
}
