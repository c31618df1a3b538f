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

// Package document holds the page model between layout and rendering.
//
// A [Document] is a list of pages, each of which is a list of drawing
// operations.  The layout code decides where page breaks go and calls
// [Document.AddPage]; the document itself never paginates.  Before a
// document is rendered it is frozen, and all further changes fail.
package document

import (
	"errors"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"
)

// Document is an ordered list of pages with a title.
type Document struct {
	Title string

	pages  []*Page
	frozen bool
}

// Page is a single page of a document.
type Page struct {
	Width, Height float64

	ops   []Op
	fonts map[Font]bool
}

var (
	// ErrFrozen is returned when a frozen document is modified.
	ErrFrozen = errors.New("document is frozen")

	// ErrNoPage is returned by Append before the first page was added.
	ErrNoPage = errors.New("no active page")
)

// New returns an empty document.
func New(title string) *Document {
	return &Document{Title: title}
}

// AddPage appends a new empty page, sized according to the settings, and
// makes it the active page.
func (d *Document) AddPage(settings *PrintSettings) (*Page, error) {
	if d.frozen {
		return nil, ErrFrozen
	}
	w, h := settings.PageDimensions()
	p := &Page{
		Width:  w,
		Height: h,
		fonts:  make(map[Font]bool),
	}
	d.pages = append(d.pages, p)
	return p, nil
}

// Append records an operation on the active page.
func (d *Document) Append(op Op) error {
	if d.frozen {
		return ErrFrozen
	}
	if len(d.pages) == 0 {
		return ErrNoPage
	}
	if err := op.validate(); err != nil {
		return err
	}
	p := d.pages[len(d.pages)-1]
	p.ops = append(p.ops, op)
	if t, ok := op.(*TextRun); ok {
		p.fonts[t.Font] = true
	}
	return nil
}

// Freeze marks the document as complete.  A document without pages gets a
// single empty page with the default settings.  Freezing an already frozen
// document has no effect.
func (d *Document) Freeze() {
	if d.frozen {
		return
	}
	if len(d.pages) == 0 {
		s := DefaultSettings()
		d.AddPage(&s)
	}
	d.frozen = true
}

// Frozen reports whether Freeze has been called.
func (d *Document) Frozen() bool {
	return d.frozen
}

// Pages returns the pages of the document.
func (d *Document) Pages() []*Page {
	return d.pages
}

// NumPages returns the number of pages.
func (d *Document) NumPages() int {
	return len(d.pages)
}

// Active returns the page which Append draws on, or nil if no page has
// been added yet.
func (d *Document) Active() *Page {
	if len(d.pages) == 0 {
		return nil
	}
	return d.pages[len(d.pages)-1]
}

// Ops returns the drawing operations of the page, in order.
func (p *Page) Ops() []Op {
	return p.ops
}

// Fonts returns the fonts used by text runs on the page, in resource name
// order.
func (p *Page) Fonts() []Font {
	var res []Font
	for f := range p.fonts {
		res = append(res, f)
	}
	slices.Sort(res)
	return res
}

// MediaBox returns the page rectangle.
func (p *Page) MediaBox() rect.Rect {
	return rect.Rect{URx: p.Width, URy: p.Height}
}
