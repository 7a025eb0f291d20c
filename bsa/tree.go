// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package bsa

import (
	"slices"
	"strings"
)

// Node is an element of the virtual directory tree. Files and directories
// share one namespace per level; names compare ASCII case-insensitively
// and byte-exact above 0x7F.
type Node struct {
	Name     string
	Entry    *Entry // Set for files
	children map[string]*Node
}

// IsDir reports whether the node has, or can have, children. A file whose
// path is also a directory prefix of another entry counts as a directory.
func (n *Node) IsDir() bool {
	return n.Entry == nil || len(n.children) > 0
}

// Child returns the child called name.
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[asciiLower(name)]
	return child, ok
}

// Children returns the node's children sorted by name.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		out = append(out, child)
	}
	slices.SortFunc(out, func(a, b *Node) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Lookup walks the tree from n along a slash-separated path.
// An empty path or "." returns n itself.
func (n *Node) Lookup(path string) (*Node, bool) {
	cur := n
	for _, part := range splitPath(path) {
		next, ok := cur.Child(part)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// splitPath splits a path on either slash style, dropping empty and "." parts.
func splitPath(path string) []string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	return slices.DeleteFunc(parts, func(p string) bool {
		return p == "."
	})
}

// buildTree inserts every entry path into a fresh tree. Later entries
// replace earlier ones with the same path.
func buildTree(entries []Entry) *Node {
	root := &Node{Name: "."}
	for i := range entries {
		parts := splitPath(entries[i].Path)
		if len(parts) == 0 {
			continue
		}
		cur := root
		for _, part := range parts {
			key := asciiLower(part)
			next, ok := cur.children[key]
			if !ok {
				next = &Node{Name: part}
				if cur.children == nil {
					cur.children = make(map[string]*Node)
				}
				cur.children[key] = next
			}
			cur = next
		}
		cur.Entry = &entries[i]
	}
	return root
}

// fileDirs returns the nodes below n that hold a file and also have children.
func fileDirs(n *Node) []*Node {
	var out []*Node
	for _, child := range n.Children() {
		if child.Entry != nil && len(child.children) > 0 {
			out = append(out, child)
		}
		out = append(out, fileDirs(child)...)
	}
	return out
}
