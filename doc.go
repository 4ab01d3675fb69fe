// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package wishtree builds directory trees from declarative descriptions.
//
// A tree is described as a [MountSource]: a path copied from the file
// system, a generated text file, a custom directory with named entries, or
// a glob-filtered [FileSet]. Building a [MountSource] is pure data
// composition and performs no I/O. Once built, the same source can be
// rendered any number of times into a real directory with
// [MountSource.WriteToDir] or into a ZIP, gzipped tar or CPIO archive with
// the respective write methods. Each render walks the source tree from
// scratch, so file content is read fresh on every call.
package wishtree
