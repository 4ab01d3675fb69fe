// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree

import "path/filepath"

// mount is an ephemeral pairing of a mount point with the source mounted
// there. Mount points are computed top-down during the walk and exist only
// for the duration of a single resolution pass.
type mount struct {
	point  string
	source MountSource
}

// walkMounts walks the MountSource tree depth-first in pre-order, calling
// fn for the current node first. Only custom directories recurse; the
// mount point of a child is the entry name joined onto the current mount
// point. Emitting parents before children matches directory tree
// semantics.
func (s MountSource) walkMounts(point string, fn func(mount) error) error {
	if err := fn(mount{point: point, source: s}); err != nil {
		return err
	}

	if s.sourceType != SourceTypeCustomDir {
		return nil
	}

	for _, entry := range s.entries {
		childPoint := filepath.Join(point, entry.Name)
		if err := entry.Source.walkMounts(childPoint, fn); err != nil {
			return err
		}
	}

	return nil
}
