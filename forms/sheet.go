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

package forms

import (
	"seehuhn.de/go/geom/vec"

	"circuitassistant.org/go/pdf/document"
)

// sheet draws onto the active page of a document.  All coordinates are
// multiplied by unit, so that forms can be laid out in millimetres.
//
// The first error encountered is stored in Err, and all later drawing
// calls are ignored.
type sheet struct {
	doc  *document.Document
	unit float64
	Err  error
}

func mmSheet(doc *document.Document) *sheet {
	return &sheet{doc: doc, unit: document.MMToPt}
}

func ptSheet(doc *document.Document) *sheet {
	return &sheet{doc: doc, unit: 1}
}

func (s *sheet) text(txt string, font document.Font, size, x, y float64) {
	if s.Err != nil {
		return
	}
	s.Err = s.doc.Append(&document.TextRun{
		Text: txt,
		Font: font,
		Size: size,
		X:    x * s.unit,
		Y:    y * s.unit,
	})
}

func (s *sheet) line(x0, y0, x1, y1, width float64) {
	if s.Err != nil {
		return
	}
	s.Err = s.doc.Append(&document.Line{
		From:  vec.Vec2{X: x0 * s.unit, Y: y0 * s.unit},
		To:    vec.Vec2{X: x1 * s.unit, Y: y1 * s.unit},
		Width: width,
	})
}

// field draws a label with an underline to write on.
func (s *sheet) field(label string, y, fieldWidth float64) {
	const (
		labelX = 20
		fieldX = 80
	)
	s.text(label, document.Regular, 11, labelX, y)
	s.line(fieldX, y-2, fieldX+fieldWidth, y-2, 0.5)
}

// checkbox draws a 5×5 box with its lower-left corner at (x, y), followed
// by a label.
func (s *sheet) checkbox(label string, x, y float64) {
	const size = 5
	s.line(x, y, x+size, y, 0.5)
	s.line(x+size, y, x+size, y+size, 0.5)
	s.line(x+size, y+size, x, y+size, 0.5)
	s.line(x, y+size, x, y, 0.5)
	s.text(label, document.Regular, 11, x+8, y+1)
}
