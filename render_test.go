// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wishtree_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/wishtree"
	"github.com/cavaliergopher/cpio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// archiveEntry is a format independent view of an archive entry used to
// compare the three archive renderers against the same expectations.
type archiveEntry struct {
	name    string
	isDir   bool
	content string
}

func testTree() wishtree.MountSource {
	return wishtree.Dir(
		wishtree.Entry("notes.txt", wishtree.Text("hi")),
		wishtree.Entry("docs", wishtree.Dir(
			wishtree.Entry("a.txt", wishtree.Text("A")),
		)),
		wishtree.Entry("empty", wishtree.Dir()),
	)
}

func expectedArchiveEntries(dirSuffix string) []archiveEntry {
	return []archiveEntry{
		{name: "notes.txt", content: "hi"},
		{name: "docs" + dirSuffix, isDir: true},
		{name: "docs/a.txt", content: "A"},
		{name: "empty" + dirSuffix, isDir: true},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

func TestWriteToDir(t *testing.T) {
	targetDir := t.TempDir()

	require.NoError(t, testTree().WriteToDir(targetDir))

	assert.Equal(t, "hi", readFile(t, filepath.Join(targetDir, "notes.txt")))
	assert.Equal(t, "A", readFile(t, filepath.Join(targetDir, "docs", "a.txt")))

	info, err := os.Stat(filepath.Join(targetDir, "empty"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteToDirIdempotent(t *testing.T) {
	targetDir := t.TempDir()

	require.NoError(t, testTree().WriteToDir(targetDir))
	require.NoError(t, testTree().WriteToDir(targetDir))

	assert.Equal(t, "hi", readFile(t, filepath.Join(targetDir, "notes.txt")))
	assert.Equal(t, "A", readFile(t, filepath.Join(targetDir, "docs", "a.txt")))
}

func TestWriteToDirContentFidelity(t *testing.T) {
	targetDir := t.TempDir()
	source := wishtree.Dir(
		wishtree.Entry("out", wishtree.Text("hello")),
	)

	require.NoError(t, source.WriteToDir(targetDir))

	content, err := os.ReadFile(filepath.Join(targetDir, "out"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), content)
}

func TestWriteToDirMissingSource(t *testing.T) {
	source := wishtree.Dir(
		wishtree.Entry("gone", wishtree.Path(filepath.Join(t.TempDir(), "missing"))),
	)

	err := source.WriteToDir(t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteToDirFileSet(t *testing.T) {
	baseDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "a.txt"), []byte("A"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "b.log"), []byte("B"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "sub", "c.txt"), []byte("C"), 0o600))

	source := wishtree.Dir(
		wishtree.Entry("doc", wishtree.Files(baseDir).Include("**/*.txt")),
	)

	targetDir := t.TempDir()
	require.NoError(t, source.WriteToDir(targetDir))

	assert.Equal(t, "A", readFile(t, filepath.Join(targetDir, "doc", "a.txt")))
	assert.Equal(t, "C", readFile(t, filepath.Join(targetDir, "doc", "sub", "c.txt")))
	assert.NoFileExists(t, filepath.Join(targetDir, "doc", "b.log"))
}

func TestWriteToZipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")

	require.NoError(t, testTree().WriteToZipFile(path))

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)

	defer reader.Close()

	actual := []archiveEntry{}

	for _, file := range reader.File {
		require.NotEmpty(t, file.Name)

		entry := archiveEntry{
			name:  file.Name,
			isDir: file.FileInfo().IsDir(),
		}

		if !entry.isDir {
			source, err := file.Open()
			require.NoError(t, err)

			content, err := io.ReadAll(source)
			require.NoError(t, err)
			require.NoError(t, source.Close())

			entry.content = string(content)
		}

		actual = append(actual, entry)
	}

	assert.Equal(t, expectedArchiveEntries("/"), actual)
}

func TestWriteToTarGzFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tar.gz")

	require.NoError(t, testTree().WriteToTarGzFile(path))

	archive, err := os.Open(path)
	require.NoError(t, err)

	defer archive.Close()

	gzipReader, err := gzip.NewReader(archive)
	require.NoError(t, err)

	tarReader := tar.NewReader(gzipReader)
	actual := []archiveEntry{}

	for {
		header, err := tarReader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)
		require.NotEmpty(t, header.Name)

		entry := archiveEntry{
			name:  header.Name,
			isDir: header.Typeflag == tar.TypeDir,
		}

		if !entry.isDir {
			content, err := io.ReadAll(tarReader)
			require.NoError(t, err)

			entry.content = string(content)
		}

		actual = append(actual, entry)
	}

	assert.Equal(t, expectedArchiveEntries("/"), actual)
}

func TestWriteToCPIOFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.cpio")

	require.NoError(t, testTree().WriteToCPIOFile(path))

	archive, err := os.Open(path)
	require.NoError(t, err)

	defer archive.Close()

	cpioReader := cpio.NewReader(archive)
	actual := []archiveEntry{}

	for {
		header, err := cpioReader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)
		require.NotEmpty(t, header.Name)

		entry := archiveEntry{
			name:  header.Name,
			isDir: header.FileInfo().IsDir(),
		}

		if !entry.isDir {
			content, err := io.ReadAll(cpioReader)
			require.NoError(t, err)

			entry.content = string(content)
		}

		actual = append(actual, entry)
	}

	assert.Equal(t, expectedArchiveEntries(""), actual)
}

func TestWriteZipIntoCopyPathRoot(t *testing.T) {
	baseDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "a.txt"), []byte("A"), 0o600))

	var buffer bytes.Buffer
	require.NoError(t, wishtree.Path(baseDir).WriteZipInto(&buffer))

	reader, err := zip.NewReader(bytes.NewReader(buffer.Bytes()), int64(buffer.Len()))
	require.NoError(t, err)

	names := []string{}
	for _, file := range reader.File {
		names = append(names, file.Name)
	}

	// The copied base directory is the synthetic root and never becomes a
	// named entry of its own.
	assert.Equal(t, []string{"a.txt"}, names)
}

func TestWriteZipIntoPatternError(t *testing.T) {
	source := wishtree.Dir(
		wishtree.Entry("doc", wishtree.Files(t.TempDir()).Include("[")),
	)

	err := source.WriteZipInto(&bytes.Buffer{})
	require.ErrorIs(t, err, wishtree.ErrPatternInvalid)
}

func TestConcurrentRenders(t *testing.T) {
	source := testTree()

	buffers := make([]bytes.Buffer, 3)

	var group errgroup.Group

	for idx := range buffers {
		idx := idx

		group.Go(func() error {
			return source.WriteZipInto(&buffers[idx])
		})
	}

	require.NoError(t, group.Wait())

	for _, buffer := range buffers[1:] {
		assert.Equal(t, buffers[0].Bytes(), buffer.Bytes())
	}
}
