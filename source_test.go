// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree_test

import (
	"testing"

	"github.com/aibor/wishtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountSourceType(t *testing.T) {
	fileSet, err := wishtree.Files("base").Include("*.txt").Build()
	require.NoError(t, err)

	tests := []struct {
		name     string
		source   wishtree.MountSource
		expected wishtree.SourceType
	}{
		{
			name:     "copy path",
			source:   wishtree.Path("some/path"),
			expected: wishtree.SourceTypeCopyPath,
		},
		{
			name:     "custom dir",
			source:   wishtree.Dir(),
			expected: wishtree.SourceTypeCustomDir,
		},
		{
			name:     "text",
			source:   wishtree.Text("hi"),
			expected: wishtree.SourceTypeText,
		},
		{
			name:     "file set",
			source:   wishtree.Entry("doc", fileSet).Source,
			expected: wishtree.SourceTypeFileSet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.source.Type())
		})
	}
}
