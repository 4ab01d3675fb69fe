// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
)

var _ Writer = (*TarGzWriter)(nil)

// TarGzWriter implements [Writer] for gzip compressed tar archives, using
// the default gzip compression level.
type TarGzWriter struct {
	gzipWriter *gzip.Writer
	tarWriter  *tar.Writer
}

// NewTarGzWriter creates a new [TarGzWriter] writing into the given
// writer.
func NewTarGzWriter(w io.Writer) *TarGzWriter {
	gzipWriter := gzip.NewWriter(w)

	return &TarGzWriter{
		gzipWriter: gzipWriter,
		tarWriter:  tar.NewWriter(gzipWriter),
	}
}

// Close finalizes the tar stream and flushes the gzip writer. It does not
// close the underlying writer.
func (w *TarGzWriter) Close() error {
	if err := w.tarWriter.Close(); err != nil {
		return fmt.Errorf("close tar: %w", err)
	}

	if err := w.gzipWriter.Close(); err != nil {
		return fmt.Errorf("close gzip: %w", err)
	}

	return nil
}

// WriteDirectory appends a zero-length directory header for the given
// path. The synthetic root directory is skipped.
func (w *TarGzWriter) WriteDirectory(path string) error {
	if path == "" {
		return nil
	}

	header := &tar.Header{
		Typeflag: tar.TypeDir,
		Name:     filepath.ToSlash(path) + "/",
		Mode:     fileMode,
	}

	if err := w.tarWriter.WriteHeader(header); err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	return nil
}

// WriteRegular appends a regular file entry with the full content of
// source. The content is buffered since the tar header carries the exact
// size.
func (w *TarGzWriter) WriteRegular(path string, source io.Reader) error {
	var buffer bytes.Buffer
	if _, err := io.Copy(&buffer, source); err != nil {
		return fmt.Errorf("read body for %s: %w", path, err)
	}

	header := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     filepath.ToSlash(path),
		Mode:     fileMode,
		Size:     int64(buffer.Len()),
	}

	if err := w.tarWriter.WriteHeader(header); err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	if _, err := io.Copy(w.tarWriter, &buffer); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}
