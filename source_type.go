// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

// SourceType defines the kind of a [MountSource].
type SourceType int

const (
	// SourceTypeCopyPath mirrors the file or complete directory tree at a
	// real path.
	SourceTypeCopyPath SourceType = iota

	// SourceTypeCustomDir is a synthetic directory with user-defined named
	// entries. Entry order is rendering order.
	SourceTypeCustomDir

	// SourceTypeText is a single generated file with literal text content.
	SourceTypeText

	// SourceTypeFileSet is a partial directory tree selected by include
	// patterns.
	SourceTypeFileSet
)
