// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package bsa_test

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suprsokr/go-tes3/bsa"
	"github.com/suprsokr/go-tes3/internal/testutil"
)

func newTreeArchive(t *testing.T) *bsa.Archive {
	t.Helper()
	archive, err := bsa.New(testutil.BuildArchive(
		testutil.ArchiveFile{Path: "Meshes/Architecture/wall.nif", Data: []byte("wall")},
		testutil.ArchiveFile{Path: "meshes/architecture/door.nif", Data: []byte("door")},
		testutil.ArchiveFile{Path: "textures/sky.dds", Data: []byte("sky!")},
		testutil.ArchiveFile{Path: "readme.txt", Data: []byte("hi")},
	))
	require.NoError(t, err)
	return archive
}

func TestTree(t *testing.T) {
	root := newTreeArchive(t).Root()
	require.True(t, root.IsDir())

	var names []string
	for _, n := range root.Children() {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"Meshes", "readme.txt", "textures"}, names)

	arch, ok := root.Lookup("MESHES\\architecture")
	require.True(t, ok)
	assert.True(t, arch.IsDir())
	assert.Len(t, arch.Children(), 2)

	door, ok := arch.Child("Door.nif")
	require.True(t, ok)
	assert.False(t, door.IsDir())
	assert.Equal(t, uint32(4), door.Entry.Size)

	_, ok = root.Lookup("meshes/missing")
	assert.False(t, ok)

	self, ok := root.Lookup(".")
	require.True(t, ok)
	assert.Same(t, root, self)
}

func TestFS(t *testing.T) {
	fsys := newTreeArchive(t).FS()

	data, err := fs.ReadFile(fsys, "textures/sky.dds")
	require.NoError(t, err)
	assert.Equal(t, []byte("sky!"), data)

	entries, err := fs.ReadDir(fsys, "meshes/architecture")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "door.nif", entries[0].Name())
	assert.Equal(t, "wall.nif", entries[1].Name())
	assert.False(t, entries[0].IsDir())

	info, err := fs.Stat(fsys, "readme.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.Size())
	assert.Equal(t, fs.FileMode(0o444), info.Mode())

	info, err = fs.Stat(fsys, "meshes")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = fsys.Open("nope.txt")
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = fsys.Open("/abs")
	require.ErrorIs(t, err, fs.ErrInvalid)

	_, err = fs.ReadFile(fsys, "meshes")
	require.Error(t, err)
}

func TestFSWalk(t *testing.T) {
	fsys := newTreeArchive(t).FS()

	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Meshes/Architecture/door.nif",
		"Meshes/Architecture/wall.nif",
		"readme.txt",
		"textures/sky.dds",
	}, files)
}

func TestFSDirectoryPaging(t *testing.T) {
	fsys := newTreeArchive(t).FS()

	f, err := fsys.Open(".")
	require.NoError(t, err)
	defer f.Close()

	dir, ok := f.(fs.ReadDirFile)
	require.True(t, ok)

	first, err := dir.ReadDir(2)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	rest, err := dir.ReadDir(2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	_, err = dir.ReadDir(1)
	assert.ErrorIs(t, err, io.EOF)
}

func TestTreeKeepsHighBytes(t *testing.T) {
	archive, err := bsa.New(testutil.BuildArchive(
		testutil.ArchiveFile{Path: "tx/\xe9.dds", Data: []byte("e acute")},
		testutil.ArchiveFile{Path: "tx/\xe8.dds", Data: []byte("e grave")},
		testutil.ArchiveFile{Path: "tx/\xc9.dds", Data: []byte("E acute")},
	))
	require.NoError(t, err)

	dir, ok := archive.Root().Lookup("TX")
	require.True(t, ok)
	assert.Len(t, dir.Children(), 3)

	for _, path := range []string{"tx/\xe9.dds", "tx/\xe8.dds", "tx/\xc9.dds"} {
		n, ok := archive.Root().Lookup(path)
		require.True(t, ok, "%q", path)
		assert.Equal(t, path, n.Entry.Path)
	}
}

func TestFileThatIsAlsoADirectory(t *testing.T) {
	var logs bytes.Buffer
	archive, err := bsa.New(testutil.BuildArchive(
		testutil.ArchiveFile{Path: "a", Data: []byte("FILE")},
		testutil.ArchiveFile{Path: "a/b", Data: []byte("nested")},
	), bsa.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "file path is also a directory")
	assert.Contains(t, logs.String(), "path=a")

	got, err := archive.Extract("a")
	require.NoError(t, err)
	assert.Equal(t, []byte("FILE"), got)

	_, err = fs.ReadFile(archive.FS(), "a")
	require.Error(t, err)

	nested, err := fs.ReadFile(archive.FS(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, []byte("nested"), nested)
}
