// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

import (
	"errors"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrPatternInvalid is returned if an include pattern has invalid
	// syntax. It is detected when [FileSetBuilder.Include] is called and
	// returned by [FileSetBuilder.Build].
	ErrPatternInvalid = doublestar.ErrBadPattern

	// ErrSourceInvalid is returned if a [MountSource] has an unknown
	// source type.
	ErrSourceInvalid = errors.New("invalid mount source type")
)
