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

package document

import (
	"fmt"
	"unicode/utf8"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"circuitassistant.org/go/pdf"
)

// Font selects one of the two fonts available for text runs.
type Font int

// The available fonts.
const (
	Regular Font = iota
	Bold
)

// BaseFont returns the PostScript name of the standard font.
func (f Font) BaseFont() string {
	if f == Bold {
		return "Helvetica-Bold"
	}
	return "Helvetica"
}

// ResourceName returns the name under which the font is listed in the
// page resources.
func (f Font) ResourceName() pdf.Name {
	if f == Bold {
		return "F2"
	}
	return "F1"
}

func (f Font) String() string {
	return f.BaseFont()
}

// Color is an RGB colour with components in the range [0, 1].
type Color struct {
	R, G, B float64
}

// Gray returns the grey colour with the given intensity.
func Gray(v float64) Color {
	return Color{v, v, v}
}

// Black is the default colour for text.
var Black = Color{}

func (c Color) valid() bool {
	for _, v := range []float64{c.R, c.G, c.B} {
		if !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}

// Op is a single drawing operation on a page.
// The coordinate system has its origin in the bottom-left corner of the
// page, with y increasing upward.
//
// The implementations are [TextRun], [Line] and [FillRect].
type Op interface {
	// Bounds returns the approximate area covered by the operation.
	Bounds() rect.Rect

	validate() error
}

// TextRun draws a single line of text with its baseline starting at (X, Y).
type TextRun struct {
	Text  string
	Font  Font
	Size  float64
	Color Color
	X, Y  float64
}

// Bounds implements the Op interface.
// The extent is estimated from the font size, without font metrics.
func (t *TextRun) Bounds() rect.Rect {
	n := utf8.RuneCountInString(t.Text)
	return rect.Rect{
		LLx: t.X,
		LLy: t.Y - 0.25*t.Size,
		URx: t.X + float64(n)*0.6*t.Size,
		URy: t.Y + 0.75*t.Size,
	}
}

func (t *TextRun) validate() error {
	if !(t.Size > 0) {
		return fmt.Errorf("text run %q: invalid font size %g", t.Text, t.Size)
	}
	if t.Font != Regular && t.Font != Bold {
		return fmt.Errorf("text run %q: invalid font %d", t.Text, int(t.Font))
	}
	if !t.Color.valid() {
		return fmt.Errorf("text run %q: invalid colour %v", t.Text, t.Color)
	}
	return nil
}

// Line draws a straight line segment.
type Line struct {
	From, To vec.Vec2
	Width    float64
	Color    Color
}

// Bounds implements the Op interface.
func (l *Line) Bounds() rect.Rect {
	return rect.Rect{
		LLx: min(l.From.X, l.To.X),
		LLy: min(l.From.Y, l.To.Y) - l.Width/2,
		URx: max(l.From.X, l.To.X),
		URy: max(l.From.Y, l.To.Y) + l.Width/2,
	}
}

func (l *Line) validate() error {
	if l.Width < 0 {
		return fmt.Errorf("line: negative width %g", l.Width)
	}
	if !l.Color.valid() {
		return fmt.Errorf("line: invalid colour %v", l.Color)
	}
	return nil
}

// FillRect fills a rectangle.
type FillRect struct {
	Rect  rect.Rect
	Color Color
}

// Bounds implements the Op interface.
func (r *FillRect) Bounds() rect.Rect {
	return r.Rect
}

func (r *FillRect) validate() error {
	if r.Rect.URx < r.Rect.LLx || r.Rect.URy < r.Rect.LLy {
		return fmt.Errorf("rectangle %v: negative size", r.Rect)
	}
	if !r.Color.valid() {
		return fmt.Errorf("rectangle: invalid colour %v", r.Color)
	}
	return nil
}
