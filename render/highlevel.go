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
	"bytes"
	"math"

	"github.com/go-pdf/fpdf"

	"circuitassistant.org/go/pdf"
	"circuitassistant.org/go/pdf/document"
	"circuitassistant.org/go/pdf/logging"
)

// HighLevel renders documents using the drawing API of the fpdf library.
// The library manages the PDF objects and the standard fonts; this backend
// never writes PDF syntax itself.
type HighLevel struct {
	Options
}

// Render implements the Renderer interface.
func (r *HighLevel) Render(doc *document.Document) ([]byte, error) {
	doc.Freeze()
	pages := doc.Pages()

	first := pages[0]
	f := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: first.Width, Ht: first.Height},
	})
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(0, 0, 0)
	f.SetCompression(r.Compress)

	meta := r.metadata(doc)
	f.SetTitle(meta.Title, true)
	f.SetProducer(meta.Producer, true)
	f.SetCreationDate(meta.Created)
	f.SetModificationDate(meta.Created)
	xmp, err := meta.XMP()
	if err != nil {
		return nil, pdf.Wrap(pdf.StageResource, "XMP metadata", err)
	}
	f.SetXmpMetadata(xmp)

	for _, p := range pages {
		f.AddPageFormat("P", fpdf.SizeType{Wd: p.Width, Ht: p.Height})
		for _, op := range p.Ops() {
			err := r.draw(f, p.Height, op)
			if err != nil {
				return nil, err
			}
		}
		if err := f.Error(); err != nil {
			return nil, pdf.Wrap(pdf.StageResource, "draw page", err)
		}
	}

	buf := &bytes.Buffer{}
	err = f.Output(buf)
	if err != nil {
		return nil, pdf.Wrap(pdf.StageEncoding, "write PDF", err)
	}

	logging.Logger().Debug("rendered document",
		"backend", KindHighLevel,
		"pages", len(pages),
		"bytes", buf.Len())
	return buf.Bytes(), nil
}

// draw translates a single operation.  The fpdf library places the origin
// at the top-left corner of the page, so y coordinates are flipped.
func (r *HighLevel) draw(f *fpdf.Fpdf, pageHeight float64, op document.Op) error {
	switch op := op.(type) {
	case *document.TextRun:
		s, err := encodeText(op.Text)
		if err != nil {
			return err
		}
		style := ""
		if op.Font == document.Bold {
			style = "B"
		}
		f.SetFont("Helvetica", style, op.Size)
		f.SetTextColor(colorBytes(op.Color))
		f.Text(op.X, pageHeight-op.Y, s)

	case *document.Line:
		f.SetLineWidth(op.Width)
		f.SetDrawColor(colorBytes(op.Color))
		f.Line(op.From.X, pageHeight-op.From.Y, op.To.X, pageHeight-op.To.Y)

	case *document.FillRect:
		f.SetFillColor(colorBytes(op.Color))
		f.Rect(op.Rect.LLx, pageHeight-op.Rect.URy, op.Rect.Dx(), op.Rect.Dy(), "F")
	}
	return nil
}

func colorBytes(c document.Color) (int, int, int) {
	b := func(x float64) int {
		return int(math.Round(x * 255))
	}
	return b(c.R), b(c.G), b(c.B)
}
