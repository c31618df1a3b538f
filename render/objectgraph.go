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

package render

import (
	"fmt"

	"circuitassistant.org/go/pdf"
	"circuitassistant.org/go/pdf/content"
	"circuitassistant.org/go/pdf/document"
	"circuitassistant.org/go/pdf/logging"
	"circuitassistant.org/go/pdf/pagetree"
)

// ObjectGraph renders documents by building the PDF object graph directly.
//
// Object numbers for all pages, the catalog and the fonts are allocated
// first.  The object bodies are filled in afterwards, so that every
// reference points to an already allocated number.  The pages are arranged
// in a balanced page tree.
type ObjectGraph struct {
	Options
}

var graphFonts = []document.Font{document.Regular, document.Bold}

// Render implements the Renderer interface.
func (r *ObjectGraph) Render(doc *document.Document) ([]byte, error) {
	g, err := r.Graph(doc)
	if err != nil {
		return nil, err
	}
	data, err := g.Bytes()
	if err != nil {
		return nil, pdf.Wrap(pdf.StageEncoding, "write PDF", err)
	}
	logging.Logger().Debug("rendered document",
		"backend", KindObjectGraph,
		"pages", doc.NumPages(),
		"objects", g.Len(),
		"bytes", len(data))
	return data, nil
}

// Graph builds the object graph for doc, without serializing it.
func (r *ObjectGraph) Graph(doc *document.Document) (*pdf.Graph, error) {
	doc.Freeze()
	pages := doc.Pages()

	// first pass: allocate object numbers
	g := pdf.NewGraph(pdf.V1_4)
	catalogRef := g.Alloc()
	resourcesRef := g.Alloc()
	fontRefs := make(map[document.Font]pdf.Reference, len(graphFonts))
	for _, font := range graphFonts {
		fontRefs[font] = g.Alloc()
	}
	pageRefs := make([]pdf.Reference, len(pages))
	contentRefs := make([]pdf.Reference, len(pages))
	for i := range pages {
		pageRefs[i] = g.Alloc()
		contentRefs[i] = g.Alloc()
	}

	// second pass: install the object bodies
	fontDict := pdf.Dict{}
	for _, font := range graphFonts {
		err := g.Set(fontRefs[font], pdf.Dict{
			"Type":     pdf.Name("Font"),
			"Subtype":  pdf.Name("Type1"),
			"BaseFont": pdf.Name(font.BaseFont()),
			"Encoding": pdf.Name("WinAnsiEncoding"),
		})
		if err != nil {
			return nil, pdf.Wrap(pdf.StageResource, "font "+font.BaseFont(), err)
		}
		fontDict[font.ResourceName()] = fontRefs[font]
	}
	err := g.Set(resourcesRef, pdf.Dict{
		"Font":    fontDict,
		"ProcSet": pdf.Array{pdf.Name("PDF"), pdf.Name("Text")},
	})
	if err != nil {
		return nil, pdf.Wrap(pdf.StageResource, "resources", err)
	}

	tree := pagetree.NewWriter(g)
	for i, p := range pages {
		stm, err := contentStream(p)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		err = g.Set(contentRefs[i], stm)
		if err != nil {
			return nil, pdf.Wrap(pdf.StageEncoding, fmt.Sprintf("page %d contents", i+1), err)
		}

		box := p.MediaBox()
		err = tree.AppendPageDict(pageRefs[i], pdf.Dict{
			"Type": pdf.Name("Page"),
			"MediaBox": pdf.Array{
				pdf.Number(box.LLx), pdf.Number(box.LLy),
				pdf.Number(box.URx), pdf.Number(box.URy),
			},
			"Resources": resourcesRef,
			"Contents":  contentRefs[i],
		})
		if err != nil {
			return nil, pdf.Wrap(pdf.StageResource, fmt.Sprintf("page %d", i+1), err)
		}
	}
	pagesRef, err := tree.Close()
	if err != nil {
		return nil, pdf.Wrap(pdf.StageResource, "page tree", err)
	}

	meta := r.metadata(doc)
	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": pagesRef,
	}
	stm, err := meta.MetadataStream()
	if err != nil {
		return nil, pdf.Wrap(pdf.StageResource, "XMP metadata", err)
	}
	metaRef, err := g.Add(stm)
	if err != nil {
		return nil, pdf.Wrap(pdf.StageResource, "XMP metadata", err)
	}
	catalog["Metadata"] = metaRef
	err = g.Set(catalogRef, catalog)
	if err != nil {
		return nil, pdf.Wrap(pdf.StageResource, "catalog", err)
	}
	g.SetRoot(catalogRef)

	infoRef, err := g.Add(meta.InfoDict())
	if err != nil {
		return nil, pdf.Wrap(pdf.StageResource, "document information", err)
	}
	g.SetInfo(infoRef)
	g.Trailer["ID"] = pdf.NewFileID()

	if r.Compress {
		err = g.Compress(0)
		if err != nil {
			return nil, pdf.Wrap(pdf.StageEncoding, "compress", err)
		}
	}

	err = g.Check()
	if err != nil {
		return nil, pdf.Wrap(pdf.StageResource, "object graph", err)
	}
	return g, nil
}

// contentStream converts the operations of a page into a content stream.
// Colour and line width are only set when they change.
func contentStream(p *document.Page) (*pdf.Stream, error) {
	b := content.NewBuilder()

	var fill, stroke document.Color
	lineWidth := 1.0
	setFill := func(c document.Color) {
		if c != fill {
			b.SetFillRGB(c.R, c.G, c.B)
			fill = c
		}
	}

	for _, op := range p.Ops() {
		switch op := op.(type) {
		case *document.TextRun:
			s, err := encodeText(op.Text)
			if err != nil {
				return nil, err
			}
			setFill(op.Color)
			b.TextBegin()
			b.TextSetFont(op.Font.ResourceName(), op.Size)
			b.TextFirstLine(op.X, op.Y)
			b.TextShowRaw(pdf.String(s))
			b.TextEnd()

		case *document.Line:
			if op.Color != stroke {
				b.SetStrokeRGB(op.Color.R, op.Color.G, op.Color.B)
				stroke = op.Color
			}
			if op.Width != lineWidth {
				b.SetLineWidth(op.Width)
				lineWidth = op.Width
			}
			b.MoveTo(op.From.X, op.From.Y)
			b.LineTo(op.To.X, op.To.Y)
			b.Stroke()

		case *document.FillRect:
			setFill(op.Color)
			b.Rectangle(op.Rect.LLx, op.Rect.LLy, op.Rect.Dx(), op.Rect.Dy())
			b.Fill()
		}
	}

	ops, err := b.Close()
	if err != nil {
		return nil, pdf.Wrap(pdf.StageEncoding, "content stream", err)
	}
	data, err := ops.Bytes()
	if err != nil {
		return nil, pdf.Wrap(pdf.StageEncoding, "content stream", err)
	}
	return &pdf.Stream{Dict: pdf.Dict{}, Data: data}, nil
}
