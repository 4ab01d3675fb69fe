// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
)

var _ Writer = (*ZipWriter)(nil)

// ZipWriter implements [Writer] for ZIP archives. Files are deflate
// compressed.
type ZipWriter struct {
	zipWriter *zip.Writer
}

// NewZipWriter creates a new [ZipWriter] writing into the given writer.
func NewZipWriter(w io.Writer) *ZipWriter {
	return &ZipWriter{zipWriter: zip.NewWriter(w)}
}

// Close writes the central directory and finalizes the archive. It does
// not close the underlying writer.
func (w *ZipWriter) Close() error {
	if err := w.zipWriter.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// WriteDirectory adds a directory record for the given path.
//
// The record matters for empty directories only. Regular file entries
// create their parent directories implicitly in archive readers. The
// synthetic root directory is skipped.
func (w *ZipWriter) WriteDirectory(path string) error {
	if path == "" {
		return nil
	}

	header := &zip.FileHeader{
		Name:   filepath.ToSlash(path) + "/",
		Method: zip.Deflate,
	}
	header.SetMode(fs.ModeDir | fileMode)

	if _, err := w.zipWriter.CreateHeader(header); err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	return nil
}

// WriteRegular adds a regular file entry with the full content of source.
func (w *ZipWriter) WriteRegular(path string, source io.Reader) error {
	header := &zip.FileHeader{
		Name:   filepath.ToSlash(path),
		Method: zip.Deflate,
	}
	header.SetMode(fileMode)

	target, err := w.zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	if _, err := io.Copy(target, source); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}
