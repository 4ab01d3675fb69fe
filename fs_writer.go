// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var _ Writer = (*FSWriter)(nil)

// FSWriter implements [Writer] for a real directory tree.
type FSWriter struct {
	targetDir string
}

// NewFSWriter creates a new [FSWriter] that writes into the given target
// directory. The directory and missing parents are created as needed.
func NewFSWriter(targetDir string) *FSWriter {
	return &FSWriter{targetDir: targetDir}
}

// WriteDirectory creates the directory along with all necessary parents.
// It does nothing if the directory exists already.
func (w *FSWriter) WriteDirectory(path string) error {
	err := os.MkdirAll(filepath.Join(w.targetDir, path), fileMode)
	if err != nil {
		return fmt.Errorf("create dir %s: %w", path, err)
	}

	return nil
}

// WriteRegular creates or truncates the file and copies the source into it
// verbatim. Missing parent directories are created.
func (w *FSWriter) WriteRegular(path string, source io.Reader) error {
	targetPath := filepath.Join(w.targetDir, path)

	if err := os.MkdirAll(filepath.Dir(targetPath), fileMode); err != nil {
		return fmt.Errorf("create parent for %s: %w", path, err)
	}

	target, err := os.Create(targetPath)
	if err != nil {
		return fmt.Errorf("create file %s: %w", path, err)
	}
	defer target.Close()

	if _, err := io.Copy(target, source); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	if err := target.Close(); err != nil {
		return fmt.Errorf("close file %s: %w", path, err)
	}

	return nil
}
