// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/cavaliergopher/cpio"
)

const numLinks = 2

var _ Writer = (*CPIOWriter)(nil)

// CPIOWriter implements [Writer] for CPIO archives in newc format.
type CPIOWriter struct {
	cpioWriter *cpio.Writer
}

// NewCPIOWriter creates a new [CPIOWriter] writing into the given writer.
func NewCPIOWriter(w io.Writer) *CPIOWriter {
	return &CPIOWriter{cpioWriter: cpio.NewWriter(w)}
}

// Close finalizes the archive. Flush is called by the underlying closer.
// It does not close the underlying writer.
func (w *CPIOWriter) Close() error {
	if err := w.cpioWriter.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// writeHeader writes the cpio header.
func (w *CPIOWriter) writeHeader(hdr *cpio.Header) error {
	if err := w.cpioWriter.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	return nil
}

// WriteDirectory adds a directory entry for the given path to the archive.
// The synthetic root directory is skipped.
func (w *CPIOWriter) WriteDirectory(path string) error {
	if path == "" {
		return nil
	}

	header := &cpio.Header{
		Name:  filepath.ToSlash(path),
		Mode:  cpio.TypeDir | cpio.FileMode(fileMode),
		Links: numLinks,
	}

	return w.writeHeader(header)
}

// WriteRegular adds a regular file entry with the full content of source.
// The content is buffered since the cpio header carries the exact size.
func (w *CPIOWriter) WriteRegular(path string, source io.Reader) error {
	var buffer bytes.Buffer
	if _, err := io.Copy(&buffer, source); err != nil {
		return fmt.Errorf("read body for %s: %w", path, err)
	}

	header := &cpio.Header{
		Name: filepath.ToSlash(path),
		Mode: cpio.TypeReg | cpio.FileMode(fileMode),
		Size: int64(buffer.Len()),
	}

	if err := w.writeHeader(header); err != nil {
		return err
	}

	if _, err := w.cpioWriter.Write(buffer.Bytes()); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}
