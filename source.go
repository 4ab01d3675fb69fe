// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

// MountSource describes a single file, a single directory or a complete
// directory tree that is mounted into a user-defined directory structure.
//
// A MountSource is an immutable value. Constructing one performs no I/O.
// The same value may be used as entry of multiple parent directories and
// rendered any number of times concurrently.
type MountSource struct {
	sourceType SourceType

	// Related fields depending on the source type. Only the field matching
	// sourceType is ever set.
	path    string
	entries []DirEntry
	text    string
	fileSet FileSet
}

// DirEntry is a single named entry of a custom directory.
type DirEntry struct {
	Name   string
	Source MountSource
}

// Mountable is anything that converts to a [MountSource]: a [MountSource]
// itself, a [FileSet] or a [*FileSetBuilder], which is finalized implicitly.
//
// The set of implementations is closed.
type Mountable interface {
	mountSource() MountSource
}

// Path returns a [MountSource] that copies the file or directory tree at
// the given path one to one.
func Path(path string) MountSource {
	return MountSource{
		sourceType: SourceTypeCopyPath,
		path:       path,
	}
}

// Text returns a [MountSource] that generates a single file with the given
// text as content.
func Text(text string) MountSource {
	return MountSource{
		sourceType: SourceTypeText,
		text:       text,
	}
}

// Dir returns a [MountSource] for a directory with the given entries.
//
// Entries are rendered in the given order. Duplicate names are not
// rejected. All entries are emitted and the render target determines how
// colliding paths behave.
func Dir(entries ...DirEntry) MountSource {
	return MountSource{
		sourceType: SourceTypeCustomDir,
		entries:    entries,
	}
}

// Entry returns a named directory entry for use with [Dir].
func Entry(name string, source Mountable) DirEntry {
	return DirEntry{
		Name:   name,
		Source: source.mountSource(),
	}
}

// Type returns the [SourceType] of the MountSource.
func (s MountSource) Type() SourceType {
	return s.sourceType
}

func (s MountSource) mountSource() MountSource {
	return s
}
