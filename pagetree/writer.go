// circuitassistant.org/go/pdf - schedule layout and PDF export
// Copyright (C) 2026  The circuitassistant.org authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pagetree arranges pages into a balanced PDF page tree.
package pagetree

import (
	"errors"
	"fmt"

	"circuitassistant.org/go/pdf"
)

// maxDegree is the maximal number of children of a /Pages node.
const maxDegree = 16

// Writer collects page dictionaries and installs them, together with the
// intermediate /Pages nodes, in an object graph.
//
// Pages are added in document order using [Writer.AppendPageDict].  The
// /Parent entries of the page dictionaries are filled in by the writer.
type Writer struct {
	g *pdf.Graph

	// Tail contains the completed subtrees, in page order.  The depth of
	// the subtrees is weakly decreasing, and for every depth there are at
	// most maxDegree-1 subtrees of this depth.
	tail []*node

	isClosed bool
	err      error
}

type node struct {
	ref       pdf.Reference
	dict      pdf.Dict
	pageCount int
	depth     int
}

// NewWriter creates a page tree which installs its nodes in g.
func NewWriter(g *pdf.Graph) *Writer {
	return &Writer{g: g}
}

var errClosed = errors.New("page tree is closed")

// AppendPageDict adds a page to the tree.  The reference must have been
// allocated in the graph, but its body must not be set yet: the page
// dictionary is installed once its parent node is known.
func (w *Writer) AppendPageDict(ref pdf.Reference, dict pdf.Dict) error {
	if w.isClosed {
		return errClosed
	}
	if w.err != nil {
		return w.err
	}

	w.tail = append(w.tail, &node{
		ref:       ref,
		dict:      dict,
		pageCount: 1,
	})

	for {
		n := len(w.tail)
		if n < maxDegree || w.tail[n-1].depth != w.tail[n-maxDegree].depth {
			break
		}
		w.tail = w.mergeNodes(w.tail, n-maxDegree, n)
	}
	return w.err
}

// Close completes the tree and returns the reference of the root node.
func (w *Writer) Close() (pdf.Reference, error) {
	if w.isClosed {
		return 0, errClosed
	}
	w.isClosed = true
	if w.err != nil {
		return 0, w.err
	}
	if len(w.tail) == 0 {
		return 0, errors.New("no pages in document")
	}

	w.collapse()
	root := w.tail[0]
	if root.depth == 0 {
		// the root of the tree must be a /Pages node
		w.tail = w.mergeNodes(w.tail, 0, 1)
		root = w.tail[0]
	}
	w.tail = nil
	if w.err != nil {
		return 0, w.err
	}

	err := w.g.Set(root.ref, root.dict)
	if err != nil {
		return 0, err
	}
	return root.ref, nil
}

// collapse reduces the tail to a single node.
func (w *Writer) collapse() {
	for len(w.tail) > 1 && w.err == nil {
		start := max(len(w.tail)-maxDegree, 0)
		for start > 0 && w.tail[start-1].depth == w.tail[start].depth {
			start++
		}
		w.tail = w.mergeNodes(w.tail, start, len(w.tail))
	}
}

// mergeNodes replaces nodes[a:b] by a new /Pages node which has these
// nodes as children.  The children are installed in the graph.
func (w *Writer) mergeNodes(nodes []*node, a, b int) []*node {
	if a < 0 || b > len(nodes) || b <= a || b-a > maxDegree {
		panic(fmt.Sprintf("invalid page tree node range [%d, %d)", a, b))
	}

	children := nodes[a:b]
	parentRef := w.g.Alloc()
	kids := make(pdf.Array, len(children))
	pageCount := 0
	maxDepth := 0
	for i, child := range children {
		child.dict["Parent"] = parentRef
		kids[i] = child.ref
		if w.err == nil {
			w.err = w.g.Set(child.ref, child.dict)
		}
		pageCount += child.pageCount
		maxDepth = max(maxDepth, child.depth)
	}

	nodes[a] = &node{
		ref: parentRef,
		dict: pdf.Dict{
			"Type":  pdf.Name("Pages"),
			"Kids":  kids,
			"Count": pdf.Integer(pageCount),
		},
		pageCount: pageCount,
		depth:     maxDepth + 1,
	}
	return append(nodes[:a+1], nodes[b:]...)
}
