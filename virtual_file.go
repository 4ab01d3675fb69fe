// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileOpenFunc returns an open [io.ReadCloser] or an error if opening
// fails.
type FileOpenFunc func() (io.ReadCloser, error)

// VirtualFile describes a single target file or directory with its path
// relative to the render root and its content.
//
// Content is acquired lazily with [VirtualFile.Open] once the entry is
// actually consumed and must be read at most once.
type VirtualFile struct {
	// Path relative to the render root. The synthetic root directory has
	// the empty path.
	Path string

	// IsDir is true for directories. Directories have no content.
	IsDir bool

	openFn FileOpenFunc
}

// Open returns the content of the VirtualFile. The caller is responsible
// for closing it before the next entry is consumed.
func (v VirtualFile) Open() (io.ReadCloser, error) {
	if v.openFn == nil {
		return io.NopCloser(strings.NewReader("")), nil
	}

	return v.openFn()
}

func virtualDir(path string) VirtualFile {
	return VirtualFile{
		Path:  path,
		IsDir: true,
	}
}

func virtualRegular(path string, openFn FileOpenFunc) VirtualFile {
	return VirtualFile{
		Path:   path,
		openFn: openFn,
	}
}

// openPathFunc returns a [FileOpenFunc] that opens the file at the given
// real path. The path is not touched before the returned function is
// called.
func openPathFunc(path string) FileOpenFunc {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

// walkVirtualFiles expands the MountSource, mounted at the root, into the
// flat depth-first sequence of [VirtualFile]s it implies and calls fn for
// each one in order. Any error terminates the walk immediately.
func (s MountSource) walkVirtualFiles(fn func(VirtualFile) error) error {
	return s.walkMounts("", func(m mount) error {
		return m.source.resolveVirtualFiles(m.point, fn)
	})
}

// resolveVirtualFiles expands just this mount source, depending on its
// type, with the mount point as path prefix.
//
// Custom directories emit only themselves here. Their entries were already
// expanded into mounts of their own with deeper mount points.
func (s MountSource) resolveVirtualFiles(point string, fn func(VirtualFile) error) error {
	switch s.sourceType {
	case SourceTypeCopyPath:
		info, err := os.Stat(s.path)
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return fn(virtualRegular(point, openPathFunc(s.path)))
		}

		return walkRealTree(s.path, point, nil, fn)
	case SourceTypeCustomDir:
		return fn(virtualDir(point))
	case SourceTypeText:
		return fn(virtualRegular(point, func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(s.text)), nil
		}))
	case SourceTypeFileSet:
		if s.fileSet.err != nil {
			return s.fileSet.err
		}

		return walkRealTree(s.fileSet.baseDir, point, s.fileSet.Matches, fn)
	default:
		return fmt.Errorf("%w: %d", ErrSourceInvalid, s.sourceType)
	}
}

// walkRealTree enumerates the real directory tree below baseDir and emits
// a [VirtualFile] for every entry whose path relative to baseDir is
// accepted by the match predicate. A nil predicate accepts everything.
// Output paths are the relative paths joined onto the mount point.
//
// Directories that are filtered out are still descended into, so a filter
// may select a deep file without any of its parent directories. Render
// targets tolerate such orphaned files.
func walkRealTree(
	baseDir string,
	point string,
	matches func(string) bool,
	fn func(VirtualFile) error,
) error {
	return filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}

		if matches != nil {
			// The base directory itself is never a candidate.
			if relPath == "." || !matches(relPath) {
				return nil
			}
		}

		// The base directory itself maps to the mount point. Joining "."
		// onto an empty root mount point would turn it into "." and the
		// render targets would no longer recognize the synthetic root.
		fullPath := point
		if relPath != "." {
			fullPath = filepath.Join(point, relPath)
		}

		if d.IsDir() {
			return fn(virtualDir(fullPath))
		}

		return fn(virtualRegular(fullPath, openPathFunc(path)))
	})
}
