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
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/rect"
)

// MMToPt converts millimeters to PDF units.
const MMToPt = 2.83465

// ViewMode selects which table columns are shown.
type ViewMode int

// The supported view modes.
const (
	// Summary omits the instructions column.
	Summary ViewMode = iota

	// Detailed shows the instructions column.
	Detailed
)

func (m ViewMode) String() string {
	if m == Detailed {
		return "detailed"
	}
	return "summary"
}

// UnmarshalYAML implements yaml.Unmarshaler.
// "basic" is accepted as another name for "summary".
func (m *ViewMode) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	switch strings.ToLower(name) {
	case "detailed":
		*m = Detailed
	case "summary", "basic", "":
		*m = Summary
	default:
		return fmt.Errorf("invalid view mode %q", name)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m ViewMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// Margins gives the four page margins.  In PrintSettings the values are in
// millimeters.
type Margins struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// PrintSettings describes page geometry and typography of a printed table.
type PrintSettings struct {
	PageSize    PageSize    `yaml:"pageSize"`
	Orientation Orientation `yaml:"orientation"`
	Margins     Margins     `yaml:"margins"`
	FontSize    float64     `yaml:"fontSize"`
	ViewMode    ViewMode    `yaml:"viewMode"`
}

// DefaultSettings returns the settings used when the caller does not
// provide any: Letter paper in portrait orientation, 20mm margins and a
// 12pt font.
func DefaultSettings() PrintSettings {
	return PrintSettings{
		PageSize:    Letter,
		Orientation: Portrait,
		Margins: Margins{
			Top:    20,
			Bottom: 20,
			Left:   20,
			Right:  20,
		},
		FontSize: 12,
		ViewMode: Summary,
	}
}

// PageDimensions returns the page width and height in PDF units.
func (s *PrintSettings) PageDimensions() (width, height float64) {
	return s.PageSize.Dimensions(s.Orientation)
}

// MediaBox returns the page rectangle in PDF units.
func (s *PrintSettings) MediaBox() rect.Rect {
	return s.PageSize.MediaBox(s.Orientation)
}

// MarginsPt returns the margins converted to PDF units.
func (s *PrintSettings) MarginsPt() Margins {
	return Margins{
		Top:    s.Margins.Top * MMToPt,
		Bottom: s.Margins.Bottom * MMToPt,
		Left:   s.Margins.Left * MMToPt,
		Right:  s.Margins.Right * MMToPt,
	}
}

// ContentBox returns the area inside the margins, in PDF units.
func (s *PrintSettings) ContentBox() rect.Rect {
	w, h := s.PageDimensions()
	m := s.MarginsPt()
	return rect.Rect{
		LLx: m.Left,
		LLy: m.Bottom,
		URx: w - m.Right,
		URy: h - m.Top,
	}
}

// ContentWidth returns the page width minus the left and right margins.
func (s *PrintSettings) ContentWidth() float64 {
	return s.ContentBox().Dx()
}

// ContentHeight returns the page height minus the top and bottom margins.
func (s *PrintSettings) ContentHeight() float64 {
	return s.ContentBox().Dy()
}

// Validate checks that the settings describe a usable page.
func (s *PrintSettings) Validate() error {
	if _, ok := paperSizes[s.PageSize]; !ok {
		return fmt.Errorf("invalid page size %s", s.PageSize)
	}
	if s.Orientation != Portrait && s.Orientation != Landscape {
		return fmt.Errorf("invalid orientation %d", int(s.Orientation))
	}
	if s.ViewMode != Summary && s.ViewMode != Detailed {
		return fmt.Errorf("invalid view mode %d", int(s.ViewMode))
	}
	if !(s.FontSize > 0) {
		return fmt.Errorf("invalid font size %g", s.FontSize)
	}
	m := s.Margins
	if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
		return errNegativeMargin
	}
	box := s.ContentBox()
	if box.Dx() <= 0 || box.Dy() <= 0 {
		return fmt.Errorf("margins leave no room on %s %s paper",
			s.PageSize, s.Orientation)
	}
	return nil
}

var errNegativeMargin = errors.New("negative margin")
