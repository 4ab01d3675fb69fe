// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

import (
	"io"
	"strings"
)

// MockWriter implements [Writer] and records all written entries in order.
type MockWriter struct {
	// Entries are recorded as the path for directories and "path=content"
	// for regular files.
	Entries []string

	// Err is returned by all write calls if set.
	Err error
}

func (m *MockWriter) WriteRegular(path string, source io.Reader) error {
	if m.Err != nil {
		return m.Err
	}

	var content strings.Builder
	if _, err := io.Copy(&content, source); err != nil {
		return err
	}

	m.Entries = append(m.Entries, path+"="+content.String())

	return nil
}

func (m *MockWriter) WriteDirectory(path string) error {
	if m.Err != nil {
		return m.Err
	}

	m.Entries = append(m.Entries, path)

	return nil
}
