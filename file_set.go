// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// FileSet is a group of files below a base directory, selected by include
// patterns.
//
// A path is part of the set if it matches at least one pattern. A FileSet
// without any patterns matches nothing. FileSets are immutable. Create one
// with [Files] and [FileSetBuilder.Build].
type FileSet struct {
	baseDir  string
	patterns []string

	// First pattern error seen by the builder. Checked before the set is
	// expanded so a broken set never produces output.
	err error
}

// BaseDir returns the directory the FileSet is anchored at.
func (s FileSet) BaseDir() string {
	return s.baseDir
}

// Matches returns true if the given path, relative to [FileSet.BaseDir],
// matches at least one include pattern. It is a pure predicate without any
// file system access.
func (s FileSet) Matches(path string) bool {
	path = filepath.ToSlash(path)

	for _, pattern := range s.patterns {
		// Patterns are validated by [FileSetBuilder.Include].
		match, _ := doublestar.Match(pattern, path)
		if match {
			return true
		}
	}

	return false
}

func (s FileSet) mountSource() MountSource {
	return MountSource{
		sourceType: SourceTypeFileSet,
		fileSet:    s,
	}
}

// FileSetBuilder collects include patterns for a [FileSet].
type FileSetBuilder struct {
	baseDir  string
	patterns []string
	err      error
}

// Files returns a [FileSetBuilder] anchored at the given base directory.
func Files(baseDir string) *FileSetBuilder {
	return &FileSetBuilder{
		baseDir: baseDir,
	}
}

// Include adds an include pattern and returns the builder for chaining.
//
// Patterns use the syntax of [doublestar.Match] and are matched against
// paths relative to the base directory. An invalid pattern is detected
// immediately and reported by [FileSetBuilder.Build] as
// [ErrPatternInvalid]. Patterns after the first invalid one are ignored.
func (b *FileSetBuilder) Include(pattern string) *FileSetBuilder {
	if b.err != nil {
		return b
	}

	if !doublestar.ValidatePattern(pattern) {
		b.err = fmt.Errorf("include %q: %w", pattern, ErrPatternInvalid)

		return b
	}

	b.patterns = append(b.patterns, pattern)

	return b
}

// Build finalizes the builder into an immutable [FileSet].
//
// It returns [ErrPatternInvalid] if any included pattern was invalid. The
// builder stays usable, so one builder can back multiple sets.
func (b *FileSetBuilder) Build() (FileSet, error) {
	fileSet := FileSet{
		baseDir:  b.baseDir,
		patterns: append([]string(nil), b.patterns...),
		err:      b.err,
	}

	return fileSet, b.err
}

// mountSource finalizes the builder implicitly. A pattern error travels
// inside the FileSet and aborts the render before any entry is produced.
func (b *FileSetBuilder) mountSource() MountSource {
	fileSet, _ := b.Build()

	return fileSet.mountSource()
}
