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

package pdf

import (
	"errors"
	"fmt"
)

// Graph is an in-memory PDF object graph.
//
// Building a graph happens in two passes.  First, object numbers are
// allocated using [Graph.Alloc] for every object which will be referred to.
// Then the object bodies are installed using [Graph.Set]; bodies can refer
// to any allocated number, including numbers of objects which have not been
// set yet.  [Graph.Check] verifies that no reference is left dangling.
type Graph struct {
	// Version is the PDF version written to the file header.
	Version Version

	// Trailer holds additional entries of the trailer dictionary, for
	// example /ID.  The entries /Size, /Root and /Info are managed by the
	// graph.
	Trailer Dict

	objects map[Reference]Object
	next    Reference
	root    Reference
	info    Reference
}

// NewGraph allocates an empty object graph.
func NewGraph(v Version) *Graph {
	return &Graph{
		Version: v,
		Trailer: Dict{},
		objects: make(map[Reference]Object),
		next:    1,
	}
}

// Alloc allocates an object number for an indirect object.
func (g *Graph) Alloc() Reference {
	ref := g.next
	g.next++
	return ref
}

// Set installs the body of a previously allocated object.
func (g *Graph) Set(ref Reference, obj Object) error {
	if ref == 0 || ref >= g.next {
		return fmt.Errorf("object %d was not allocated", ref)
	}
	if obj == nil {
		return fmt.Errorf("object %d: nil body", ref)
	}
	if _, seen := g.objects[ref]; seen {
		return fmt.Errorf("object %d already set", ref)
	}
	g.objects[ref] = obj
	return nil
}

// Add allocates a new object number and installs obj as its body.
func (g *Graph) Add(obj Object) (Reference, error) {
	ref := g.Alloc()
	err := g.Set(ref, obj)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// Get returns the body of the given object, or nil if it has not been set.
func (g *Graph) Get(ref Reference) Object {
	return g.objects[ref]
}

// Len returns the number of allocated object numbers.
func (g *Graph) Len() int {
	return int(g.next) - 1
}

// SetRoot installs the document catalog as the /Root of the trailer.
func (g *Graph) SetRoot(ref Reference) {
	g.root = ref
}

// SetInfo installs the document information dictionary.
func (g *Graph) SetInfo(ref Reference) {
	g.info = ref
}

var errNoRoot = errors.New("missing /Root")

// Check verifies that the graph can be written: a root is installed, every
// allocated object has a body, and every reference points to an allocated
// object.
func (g *Graph) Check() error {
	if g.root == 0 {
		return errNoRoot
	}
	for ref := Reference(1); ref < g.next; ref++ {
		obj, ok := g.objects[ref]
		if !ok {
			return fmt.Errorf("object %d allocated but never set", ref)
		}
		err := g.checkRefs(obj)
		if err != nil {
			return fmt.Errorf("object %d: %w", ref, err)
		}
	}
	for _, ref := range []Reference{g.root, g.info} {
		if ref != 0 && g.objects[ref] == nil {
			return fmt.Errorf("trailer: dangling reference %s", ref)
		}
	}
	return g.checkRefs(g.Trailer)
}

func (g *Graph) checkRefs(obj Object) error {
	switch obj := obj.(type) {
	case Reference:
		if obj == 0 || obj >= g.next {
			return fmt.Errorf("dangling reference %s", obj)
		}
	case Array:
		for _, elem := range obj {
			err := g.checkRefs(elem)
			if err != nil {
				return err
			}
		}
	case Dict:
		for _, val := range obj {
			err := g.checkRefs(val)
			if err != nil {
				return err
			}
		}
	case *Stream:
		return g.checkRefs(obj.Dict)
	}
	return nil
}
