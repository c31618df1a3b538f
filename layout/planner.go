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

// Package layout places schedule records on pages.
//
// The planner walks through the content from top to bottom: a title, a
// "Generated" line, an introductory paragraph, the table header and one
// row per record.  Before each of these units is drawn, the planner checks
// whether it fits above the bottom margin and starts a new page if it does
// not.  Lines of text are never split; a row is only split if it is taller
// than a whole page, in which case it continues line by line.
package layout

import (
	"fmt"
	"strings"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"circuitassistant.org/go/pdf/document"
	"circuitassistant.org/go/pdf/logging"
	"circuitassistant.org/go/pdf/text"
)

// Default texts for the title block.
const (
	DefaultTitle = "Program Schedule"
	DefaultIntro = "This document contains the program schedule with detailed information for each item."
)

// Colours used for the table decoration.
var (
	headerBackground = document.Gray(0.96)
	headerRule       = document.Gray(0.2)
	rowRule          = document.Gray(0.9)
)

// Rule widths.
const (
	headerRuleWidth = 2
	rowRuleWidth    = 0.5
)

// Options control the content around the table.
// The zero value gives the standard layout.
type Options struct {
	// Title is shown at the top of the first page, and used as the
	// document title.  If empty, DefaultTitle is used.
	Title string

	// Intro is the paragraph below the title.  If empty, DefaultIntro is
	// used.
	Intro string

	// OmitIntro suppresses the introductory paragraph.
	OmitIntro bool

	// Now returns the time shown in the "Generated" line.
	// If nil, time.Now is used.
	Now func() time.Time

	// RepeatHeader repeats the table header at the top of every page the
	// table continues on.
	RepeatHeader bool

	// FitCells makes each row tall enough for the wrapped text of every
	// visible column.  By default only the instructions column is taken
	// into account, and long text in other cells may extend below the row.
	FitCells bool
}

func (opt *Options) title() string {
	if opt == nil || opt.Title == "" {
		return DefaultTitle
	}
	return opt.Title
}

func (opt *Options) intro() string {
	if opt == nil || opt.Intro == "" {
		return DefaultIntro
	}
	return opt.Intro
}

func (opt *Options) now() time.Time {
	if opt == nil || opt.Now == nil {
		return time.Now()
	}
	return opt.Now()
}

// Plan lays out the records as a table and returns the resulting document.
// The document is not frozen, so callers may append further content.
func Plan(records []Record, settings *document.PrintSettings, opt *Options) (*document.Document, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("print settings: %w", err)
	}
	if opt == nil {
		opt = &Options{}
	}

	box := settings.ContentBox()
	p := &planner{
		doc:      document.New(opt.title()),
		settings: settings,
		opt:      opt,
		m:        NewMetrics(settings.FontSize),
		cols:     NewColumns(box.LLx, box.Dx()),
		visible:  VisibleColumns(settings.ViewMode),
		left:     box.LLx,
		right:    box.URx,
	}
	p.state = NewState(box.URy, box.LLy, p.newPage)

	if err := p.state.Break(); err != nil {
		return nil, err
	}
	if err := p.titleBlock(); err != nil {
		return nil, err
	}

	if _, err := p.state.Ensure(p.m.RowHeight); err != nil {
		return nil, err
	}
	if err := p.header(); err != nil {
		return nil, err
	}
	p.inTable = true
	for i := range records {
		if err := p.row(&records[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	logging.Logger().Debug("layout complete",
		"records", len(records),
		"pages", p.doc.NumPages(),
		"viewMode", settings.ViewMode)
	return p.doc, nil
}

type planner struct {
	doc      *document.Document
	settings *document.PrintSettings
	opt      *Options
	m        Metrics
	cols     Columns
	visible  []Column
	state    *State

	left, right float64

	inTable bool
}

func (p *planner) newPage() error {
	_, err := p.doc.AddPage(p.settings)
	if err != nil {
		return err
	}
	if n := p.doc.NumPages(); n > 1 {
		logging.Logger().Debug("page break", "page", n, "y", p.state.Y)
	}
	return nil
}

// ensure makes room for content of height h, repeating the table header
// after a page break if requested.
func (p *planner) ensure(h float64) (bool, error) {
	broke, err := p.state.Ensure(h)
	if err != nil || !broke {
		return broke, err
	}
	if p.inTable && p.opt.RepeatHeader && p.doc.NumPages() > 1 {
		if err := p.header(); err != nil {
			return true, err
		}
	}
	return true, nil
}

// available returns the height a row may have without being split.
func (p *planner) available() float64 {
	h := p.state.ContentHeight()
	if p.opt.RepeatHeader {
		h -= p.m.RowHeight
	}
	return h
}

func (p *planner) titleBlock() error {
	m := &p.m
	s := p.state

	if _, err := p.ensure(m.LineHeight * 2); err != nil {
		return err
	}
	if err := p.text(p.opt.title(), document.Bold, m.TitleSize, p.left, s.Y); err != nil {
		return err
	}
	s.Advance(m.LineHeight * 2)

	if _, err := p.ensure(m.LineHeight * 2.5); err != nil {
		return err
	}
	generated := "Generated: " + p.opt.now().Format("01/02/2006")
	if err := p.text(generated, document.Regular, m.MetaSize, p.left, s.Y); err != nil {
		return err
	}
	s.Advance(m.LineHeight * 2.5)

	if p.opt.OmitIntro {
		return nil
	}
	for _, line := range text.Wrap(p.opt.intro(), p.right-p.left, m.FontSize) {
		if _, err := p.ensure(m.LineHeight); err != nil {
			return err
		}
		if err := p.text(line, document.Regular, m.FontSize, p.left, s.Y); err != nil {
			return err
		}
		s.Advance(m.LineHeight)
	}
	s.Advance(m.LineHeight)
	return nil
}

// header draws the table header at the cursor.
// The caller must ensure that there is room for it.
func (p *planner) header() error {
	m := &p.m
	top := p.state.Y
	bottom := top - m.RowHeight

	err := p.doc.Append(&document.FillRect{
		Rect:  rect.Rect{LLx: p.left, LLy: bottom, URx: p.right, URy: top},
		Color: headerBackground,
	})
	if err != nil {
		return err
	}
	for _, col := range p.visible {
		err := p.text(col.Label(), document.Bold, m.HeaderSize,
			p.cols.TextX(col), top-m.baselineOffset())
		if err != nil {
			return err
		}
	}
	err = p.rule(bottom, headerRuleWidth, headerRule)
	if err != nil {
		return err
	}
	p.state.Advance(m.RowHeight)
	return nil
}

// rowHeight returns the height of the table row for r.
func (p *planner) rowHeight(r *Record) float64 {
	m := &p.m
	lines := 0
	if p.settings.ViewMode == document.Detailed && r.HasInstructions() {
		lines = len(p.wrap(ColInstructions, r.Instructions))
	}
	if p.opt.FitCells {
		for _, col := range p.visible {
			if s := r.cell(col); strings.TrimSpace(s) != "" {
				lines = max(lines, len(p.wrap(col, s)))
			}
		}
	}
	return max(m.RowHeight, float64(lines)*m.LineHeight)
}

func (p *planner) row(r *Record) error {
	h := p.rowHeight(r)
	if h > p.available() {
		return p.tallRow(r)
	}

	if _, err := p.ensure(h); err != nil {
		return err
	}
	top := p.state.Y
	if err := p.rule(top-h, rowRuleWidth, rowRule); err != nil {
		return err
	}
	for _, col := range p.visible {
		lines := p.wrap(col, r.cell(col))
		y := top - p.m.baselineOffset()
		for _, line := range lines {
			if err := p.text(line, document.Regular, p.cellSize(col), p.cols.TextX(col), y); err != nil {
				return err
			}
			y -= p.m.LineHeight
		}
	}
	p.state.Advance(h)
	return nil
}

// tallRow draws a row which does not fit on a single page.  The cells are
// drawn line by line, and a new page is started whenever the next line
// would cross the bottom margin.
func (p *planner) tallRow(r *Record) error {
	m := &p.m
	s := p.state

	if _, err := p.ensure(m.RowHeight); err != nil {
		return err
	}

	cells := make(map[Column][]string)
	n := 0
	for _, col := range p.visible {
		lines := p.wrap(col, r.cell(col))
		cells[col] = lines
		n = max(n, len(lines))
	}
	logging.Logger().Debug("splitting row", "theme", r.Theme, "lines", n)

	for i := 0; i < n; i++ {
		if _, err := p.ensure(m.LineHeight); err != nil {
			return err
		}
		y := s.Y - m.baselineOffset()
		for _, col := range p.visible {
			if i >= len(cells[col]) {
				continue
			}
			err := p.text(cells[col][i], document.Regular, p.cellSize(col), p.cols.TextX(col), y)
			if err != nil {
				return err
			}
		}
		s.Advance(m.LineHeight)
	}

	return p.rule(s.Y, rowRuleWidth, rowRule)
}

func (p *planner) cellSize(col Column) float64 {
	if col == ColInstructions {
		return p.m.InstructionSize
	}
	return p.m.FontSize
}

// wrap breaks the text of a cell into lines.  Blank cells have no lines.
func (p *planner) wrap(col Column, s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return text.Wrap(s, p.cols.WrapWidth(col), p.m.FontSize)
}

func (p *planner) text(s string, font document.Font, size, x, y float64) error {
	return p.doc.Append(&document.TextRun{
		Text:  s,
		Font:  font,
		Size:  size,
		Color: document.Black,
		X:     x,
		Y:     y,
	})
}

func (p *planner) rule(y, width float64, color document.Color) error {
	return p.doc.Append(&document.Line{
		From:  vec.Vec2{X: p.left, Y: y},
		To:    vec.Vec2{X: p.right, Y: y},
		Width: width,
		Color: color,
	})
}
