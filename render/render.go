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

// Package render serializes documents to PDF.
//
// Three backends are available.  [HighLevel] draws the document through
// the fpdf library, [ObjectGraph] builds the PDF object graph directly, and
// [PassThrough] ignores the document and returns a PDF file which was
// rendered elsewhere.  Use [New] to select a backend.
package render

import (
	"fmt"
	"strings"
	"time"

	"circuitassistant.org/go/pdf"
	"circuitassistant.org/go/pdf/document"
)

// Renderer turns a document into the bytes of a PDF file.
//
// Rendering freezes the document.  The returned buffer is complete; no
// renderer writes partial output.
type Renderer interface {
	Render(doc *document.Document) ([]byte, error)
}

// Kind selects a backend.
type Kind int

// The available backends.
const (
	KindHighLevel Kind = iota
	KindObjectGraph
	KindPassThrough
)

var kindNames = map[Kind]string{
	KindHighLevel:   "table",
	KindObjectGraph: "graph",
	KindPassThrough: "passthrough",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a backend name, as returned by Kind.String, to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown backend %q", name)
}

// DefaultProducer is written to the /Producer entry of generated files.
const DefaultProducer = "circuitassistant.org/go/pdf"

// Options configure a renderer.  A nil *Options is valid and selects the
// defaults.
type Options struct {
	// Compress enables Flate compression of content streams.
	Compress bool

	// Producer overrides DefaultProducer.
	Producer string

	// Now returns the creation time recorded in the file.
	// If nil, time.Now is used.
	Now func() time.Time

	// Data is the PDF file returned by the pass-through backend.
	Data []byte

	// Strict makes the pass-through backend check the structure of Data,
	// instead of only checking that it is non-empty.
	Strict bool
}

// New returns a renderer of the given kind.
func New(kind Kind, opt *Options) (Renderer, error) {
	if opt == nil {
		opt = &Options{}
	}
	switch kind {
	case KindHighLevel:
		return &HighLevel{Options: *opt}, nil
	case KindObjectGraph:
		return &ObjectGraph{Options: *opt}, nil
	case KindPassThrough:
		return &PassThrough{Data: opt.Data, Strict: opt.Strict}, nil
	default:
		return nil, fmt.Errorf("unknown backend %s", kind)
	}
}

func (opt *Options) metadata(doc *document.Document) *pdf.Metadata {
	producer := opt.Producer
	if producer == "" {
		producer = DefaultProducer
	}
	now := time.Now
	if opt.Now != nil {
		now = opt.Now
	}
	return &pdf.Metadata{
		Title:    doc.Title,
		Producer: producer,
		Created:  now(),
	}
}
