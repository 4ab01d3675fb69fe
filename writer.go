// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

import "io"

// fileMode is the fixed mode used for all rendered files and directories.
const fileMode = 0o755

// Writer defines the render target interface.
//
// Writers are fed the flattened [VirtualFile] sequence in traversal order.
// The synthetic root directory arrives with the empty path; writers that
// cannot represent it skip it. A regular file may arrive without its
// parent directory having been announced and must not be treated as an
// error.
type Writer interface {
	WriteRegular(path string, source io.Reader) error
	WriteDirectory(path string) error
}

// writeTo writes all virtual files implied by the MountSource into the
// given writer. Content is opened right before the entry is written and
// closed before the next entry is processed, so at most one content source
// is ever open.
func (s MountSource) writeTo(writer Writer) error {
	return s.walkVirtualFiles(func(file VirtualFile) error {
		if file.IsDir {
			return writer.WriteDirectory(file.Path)
		}

		source, err := file.Open()
		if err != nil {
			return err
		}
		defer source.Close()

		return writer.WriteRegular(file.Path, source)
	})
}
