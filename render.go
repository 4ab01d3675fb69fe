// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

import (
	"fmt"
	"io"
	"os"
)

// WriteToDir creates the directory structure on the file system in the
// given target directory.
//
// Existing directories are tolerated and existing files are overwritten,
// so rendering the same source twice into the same target is idempotent.
// Any I/O error aborts the render immediately. No already written entries
// are rolled back and the target must not be trusted after a failure.
func (s MountSource) WriteToDir(targetDir string) error {
	return s.writeTo(NewFSWriter(targetDir))
}

// WriteZipInto writes the directory structure as ZIP archive to the given
// writer.
func (s MountSource) WriteZipInto(w io.Writer) error {
	writer := NewZipWriter(w)

	if err := s.writeTo(writer); err != nil {
		_ = writer.Close()

		return err
	}

	return writer.Close()
}

// WriteToZipFile creates the directory structure as ZIP archive at the
// given path.
func (s MountSource) WriteToZipFile(path string) error {
	return writeToFile(path, s.WriteZipInto)
}

// WriteTarGzInto writes the directory structure as gzipped tar archive to
// the given writer.
func (s MountSource) WriteTarGzInto(w io.Writer) error {
	writer := NewTarGzWriter(w)

	if err := s.writeTo(writer); err != nil {
		_ = writer.Close()

		return err
	}

	return writer.Close()
}

// WriteToTarGzFile creates the directory structure as gzipped tar archive
// at the given path.
func (s MountSource) WriteToTarGzFile(path string) error {
	return writeToFile(path, s.WriteTarGzInto)
}

// WriteCPIOInto writes the directory structure as CPIO archive to the
// given writer.
func (s MountSource) WriteCPIOInto(w io.Writer) error {
	writer := NewCPIOWriter(w)

	if err := s.writeTo(writer); err != nil {
		_ = writer.Close()

		return err
	}

	return writer.Close()
}

// WriteToCPIOFile creates the directory structure as CPIO archive at the
// given path.
func (s MountSource) WriteToCPIOFile(path string) error {
	return writeToFile(path, s.WriteCPIOInto)
}

// writeToFile creates the file at the given path and runs the given write
// function on it. A failed render leaves the incomplete file behind. It
// must not be trusted by the caller.
func writeToFile(path string, writeInto func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer file.Close()

	if err := writeInto(file); err != nil {
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	return nil
}
