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

package content

import (
	"errors"
	"fmt"

	"circuitassistant.org/go/pdf"
)

// Builder provides methods to build a PDF content stream.
//
// Errors are sticky: once an operator is used in the wrong context, Err is
// set and all further calls are ignored.
type Builder struct {
	operators []Operator

	currentObject objectType
	nesting       []pairType

	Err error
}

type objectType byte

// The graphics objects a content stream can be in.
// See figure 9 in ISO 32000-2:2020.
const (
	objPage objectType = 1 << iota
	objPath
	objText
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	default:
		return fmt.Sprintf("objectType(%d)", byte(s))
	}
}

type pairType byte

const (
	pairTypeQ  pairType = iota + 1 // q ... Q
	pairTypeBT                     // BT ... ET
)

// NewBuilder creates a new builder for constructing content streams.
func NewBuilder() *Builder {
	return &Builder{
		currentObject: objPage,
	}
}

// Close returns the accumulated operators.
// An error is returned if a text object or a saved graphics state is still
// open, or if a path has not been painted.
func (b *Builder) Close() (Stream, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	if len(b.nesting) > 0 {
		return nil, errUnclosed
	}
	if b.currentObject != objPage {
		return nil, fmt.Errorf("content stream ends in %s object", b.currentObject)
	}
	return Stream(b.operators), nil
}

var errUnclosed = errors.New("unclosed text object or graphics state")

func (b *Builder) addOp(name OpName, args ...pdf.Object) {
	b.operators = append(b.operators, Operator{
		Name: name,
		Args: args,
	})
}

// isValid returns true if the current graphics object is one of the given types
// and if b.Err is nil. Otherwise it sets b.Err and returns false.
func (b *Builder) isValid(cmd string, ss objectType) bool {
	if b.Err != nil {
		return false
	}

	if b.currentObject&ss != 0 {
		return true
	}

	b.Err = fmt.Errorf("unexpected state %q for %q", b.currentObject, cmd)
	return false
}

// PushGraphicsState saves the current graphics state.
// This implements the PDF graphics operator "q".
func (b *Builder) PushGraphicsState() {
	if !b.isValid("PushGraphicsState", objPage) {
		return
	}
	b.nesting = append(b.nesting, pairTypeQ)
	b.addOp(OpPushGraphicsState)
}

// PopGraphicsState restores the previous graphics state.
// This implements the PDF graphics operator "Q".
func (b *Builder) PopGraphicsState() {
	if !b.isValid("PopGraphicsState", objPage) {
		return
	}
	if len(b.nesting) == 0 || b.nesting[len(b.nesting)-1] != pairTypeQ {
		b.Err = errors.New("PopGraphicsState: no matching PushGraphicsState")
		return
	}
	b.nesting = b.nesting[:len(b.nesting)-1]
	b.addOp(OpPopGraphicsState)
}

// SetLineWidth sets the line width.
// This implements the PDF graphics operator "w".
func (b *Builder) SetLineWidth(width float64) {
	if !b.isValid("SetLineWidth", objPage|objText) {
		return
	}
	if width < 0 {
		b.Err = fmt.Errorf("SetLineWidth: negative width %g", width)
		return
	}
	b.addOp(OpSetLineWidth, pdf.Real(width))
}

// SetStrokeRGB sets the stroke colour in the DeviceRGB colour space.
// This implements the PDF graphics operator "RG".
func (b *Builder) SetStrokeRGB(red, green, blue float64) {
	if !b.isValid("SetStrokeRGB", objPage|objText) {
		return
	}
	if !b.checkColor("SetStrokeRGB", red, green, blue) {
		return
	}
	b.addOp(OpSetStrokeRGB, pdf.Real(red), pdf.Real(green), pdf.Real(blue))
}

// SetFillRGB sets the fill colour in the DeviceRGB colour space.
// This implements the PDF graphics operator "rg".
func (b *Builder) SetFillRGB(red, green, blue float64) {
	if !b.isValid("SetFillRGB", objPage|objText) {
		return
	}
	if !b.checkColor("SetFillRGB", red, green, blue) {
		return
	}
	b.addOp(OpSetFillRGB, pdf.Real(red), pdf.Real(green), pdf.Real(blue))
}

func (b *Builder) checkColor(cmd string, values ...float64) bool {
	for _, v := range values {
		if v < 0 || v > 1 {
			b.Err = fmt.Errorf("%s: colour component %g out of range", cmd, v)
			return false
		}
	}
	return true
}

// MoveTo starts a new path at the given coordinates.
// This implements the PDF graphics operator "m".
func (b *Builder) MoveTo(x, y float64) {
	if !b.isValid("MoveTo", objPage|objPath) {
		return
	}
	b.currentObject = objPath
	b.addOp(OpMoveTo, pdf.Real(x), pdf.Real(y))
}

// LineTo appends a straight line segment to the current path.
// This implements the PDF graphics operator "l".
func (b *Builder) LineTo(x, y float64) {
	if !b.isValid("LineTo", objPath) {
		return
	}
	b.addOp(OpLineTo, pdf.Real(x), pdf.Real(y))
}

// Rectangle appends a rectangle to the current path as a closed subpath.
// This implements the PDF graphics operator "re".
func (b *Builder) Rectangle(x, y, width, height float64) {
	if !b.isValid("Rectangle", objPage|objPath) {
		return
	}
	b.currentObject = objPath
	b.addOp(OpRectangle, pdf.Real(x), pdf.Real(y), pdf.Real(width), pdf.Real(height))
}

// Stroke strokes the current path.
// This implements the PDF graphics operator "S".
func (b *Builder) Stroke() {
	if !b.isValid("Stroke", objPath) {
		return
	}
	b.currentObject = objPage
	b.addOp(OpStroke)
}

// Fill fills the current path, using the nonzero winding number rule.
// This implements the PDF graphics operator "f".
func (b *Builder) Fill() {
	if !b.isValid("Fill", objPath) {
		return
	}
	b.currentObject = objPage
	b.addOp(OpFill)
}

// TextBegin starts a new text object.
// This implements the PDF graphics operator "BT".
func (b *Builder) TextBegin() {
	if !b.isValid("TextBegin", objPage) {
		return
	}
	b.currentObject = objText
	b.nesting = append(b.nesting, pairTypeBT)
	b.addOp(OpTextBegin)
}

// TextEnd ends the current text object.
// This implements the PDF graphics operator "ET".
func (b *Builder) TextEnd() {
	if !b.isValid("TextEnd", objText) {
		return
	}
	if len(b.nesting) == 0 || b.nesting[len(b.nesting)-1] != pairTypeBT {
		b.Err = errors.New("TextEnd: no matching TextBegin")
		return
	}
	b.nesting = b.nesting[:len(b.nesting)-1]
	b.currentObject = objPage
	b.addOp(OpTextEnd)
}

// TextSetFont sets the font and font size.
// The font is referred to by its name in the page resource dictionary.
// This implements the PDF graphics operator "Tf".
func (b *Builder) TextSetFont(font pdf.Name, size float64) {
	if !b.isValid("TextSetFont", objPage|objText) {
		return
	}
	if font == "" || size <= 0 {
		b.Err = fmt.Errorf("TextSetFont: invalid font %q at size %g", font, size)
		return
	}
	b.addOp(OpTextSetFont, font, pdf.Real(size))
}

// TextFirstLine moves to the start of the next line, offset by (x, y).
// Inside a fresh text object this positions the text at (x, y).
// This implements the PDF graphics operator "Td".
func (b *Builder) TextFirstLine(x, y float64) {
	if !b.isValid("TextFirstLine", objText) {
		return
	}
	b.addOp(OpTextMoveOffset, pdf.Real(x), pdf.Real(y))
}

// TextShowRaw shows an already encoded string.
// This implements the PDF graphics operator "Tj".
func (b *Builder) TextShowRaw(s pdf.String) {
	if !b.isValid("TextShowRaw", objText) {
		return
	}
	b.addOp(OpTextShow, s)
}
