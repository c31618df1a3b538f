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

package layout

// State tracks the vertical position on the current page.
//
// The cursor Y starts at Top on each new page and moves down as content
// is placed.  Before a unit of content is drawn, Ensure checks that it fits
// above Bottom and starts a new page if it does not.
type State struct {
	// Top is the cursor position at the start of a page.
	Top float64

	// Bottom is the lowest position content may reach.
	Bottom float64

	// Y is the current cursor position.
	Y float64

	// Page is the zero-based index of the active page, or -1 before the
	// first page was started.
	Page int

	newPage func() error
}

// NewState returns a State for pages where content runs from top down to
// bottom.  The function newPage is called every time a page is started.
func NewState(top, bottom float64, newPage func() error) *State {
	return &State{
		Top:     top,
		Bottom:  bottom,
		Y:       top,
		Page:    -1,
		newPage: newPage,
	}
}

// ContentHeight returns the vertical space available on a page.
func (s *State) ContentHeight() float64 {
	return s.Top - s.Bottom
}

// Fits reports whether content of height h fits on the current page.
func (s *State) Fits(h float64) bool {
	return s.Y-h >= s.Bottom
}

// AtTop reports whether nothing has been placed on the current page yet.
func (s *State) AtTop() bool {
	return s.Y == s.Top
}

// Break starts a new page and resets the cursor.
func (s *State) Break() error {
	if s.newPage != nil {
		if err := s.newPage(); err != nil {
			return err
		}
	}
	s.Page++
	s.Y = s.Top
	return nil
}

// Ensure makes room for content of height h.  If the content does not fit
// on the current page, a new page is started.  A page which is still empty
// is never abandoned: content taller than the page is left for the caller
// to split.  The return value reports whether a page break occurred.
func (s *State) Ensure(h float64) (bool, error) {
	if s.Page >= 0 && (s.Fits(h) || s.AtTop()) {
		return false, nil
	}
	if err := s.Break(); err != nil {
		return false, err
	}
	return true, nil
}

// Advance moves the cursor down by h.
func (s *State) Advance(h float64) {
	s.Y -= h
}
