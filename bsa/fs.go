// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package bsa

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"time"
)

// FS returns a read-only io/fs view of the archive tree.
// File contents are extracted when opened. A file whose path is also the
// directory of another entry opens as a directory; use Extract to read it.
func (a *Archive) FS() fs.FS {
	return archiveFS{a: a}
}

type archiveFS struct {
	a *Archive
}

var (
	_ fs.ReadDirFS  = archiveFS{}
	_ fs.ReadFileFS = archiveFS{}
	_ fs.StatFS     = archiveFS{}
)

func (f archiveFS) node(op, name string) (*Node, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	n, ok := f.a.root.Lookup(name)
	if !ok {
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return n, nil
}

func (f archiveFS) Open(name string) (fs.File, error) {
	n, err := f.node("open", name)
	if err != nil {
		return nil, err
	}
	if n.IsDir() {
		return &openDir{node: n}, nil
	}
	data, err := f.a.ExtractEntry(*n.Entry)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return &openFile{Reader: bytes.NewReader(data), node: n}, nil
}

func (f archiveFS) ReadFile(name string) ([]byte, error) {
	n, err := f.node("read", name)
	if err != nil {
		return nil, err
	}
	if n.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}
	data, err := f.a.ExtractEntry(*n.Entry)
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return data, nil
}

func (f archiveFS) ReadDir(name string) ([]fs.DirEntry, error) {
	n, err := f.node("readdir", name)
	if err != nil {
		return nil, err
	}
	if !n.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}
	return dirEntries(n.Children()), nil
}

func (f archiveFS) Stat(name string) (fs.FileInfo, error) {
	n, err := f.node("stat", name)
	if err != nil {
		return nil, err
	}
	return nodeInfo{n}, nil
}

func dirEntries(nodes []*Node) []fs.DirEntry {
	out := make([]fs.DirEntry, len(nodes))
	for i, n := range nodes {
		out[i] = fs.FileInfoToDirEntry(nodeInfo{n})
	}
	return out
}

// nodeInfo implements fs.FileInfo for a tree node.
type nodeInfo struct {
	n *Node
}

func (i nodeInfo) Name() string { return i.n.Name }

func (i nodeInfo) Size() int64 {
	if i.n.IsDir() {
		return 0
	}
	return int64(i.n.Entry.Size)
}

func (i nodeInfo) Mode() fs.FileMode {
	if i.n.IsDir() {
		return fs.ModeDir | 0o555
	}
	return 0o444
}

func (i nodeInfo) ModTime() time.Time { return time.Time{} }
func (i nodeInfo) IsDir() bool        { return i.n.IsDir() }
func (i nodeInfo) Sys() any           { return nil }

type openFile struct {
	*bytes.Reader
	node *Node
}

func (f *openFile) Stat() (fs.FileInfo, error) { return nodeInfo{f.node}, nil }
func (f *openFile) Close() error               { return nil }

type openDir struct {
	node     *Node
	children []*Node
	offset   int
	listed   bool
}

func (d *openDir) Stat() (fs.FileInfo, error) { return nodeInfo{d.node}, nil }
func (d *openDir) Close() error               { return nil }

func (d *openDir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.node.Name, Err: errors.New("is a directory")}
}

func (d *openDir) ReadDir(count int) ([]fs.DirEntry, error) {
	if !d.listed {
		d.children = d.node.Children()
		d.listed = true
	}
	remaining := len(d.children) - d.offset
	if count > 0 && remaining == 0 {
		return nil, io.EOF
	}
	if count <= 0 || count > remaining {
		count = remaining
	}
	out := dirEntries(d.children[d.offset : d.offset+count])
	d.offset += count
	return out, nil
}
