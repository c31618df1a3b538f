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
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/rect"

	"circuitassistant.org/go/pdf/logging"
)

// PageSize identifies one of the supported paper formats.
type PageSize int

// The supported paper formats.
const (
	Letter PageSize = iota
	A4
	Legal
)

// paperSizes gives the portrait dimensions of each paper format, in PDF
// units.
var paperSizes = map[PageSize]struct{ width, height float64 }{
	Letter: {612, 792},
	A4:     {595, 842},
	Legal:  {612, 1008},
}

var pageSizeNames = map[PageSize]string{
	Letter: "Letter",
	A4:     "A4",
	Legal:  "Legal",
}

func (s PageSize) String() string {
	if name, ok := pageSizeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PageSize(%d)", int(s))
}

// ParsePageSize converts a paper format name to a PageSize.
// Case is ignored.
func ParsePageSize(name string) (PageSize, bool) {
	for size, n := range pageSizeNames {
		if strings.EqualFold(n, name) {
			return size, true
		}
	}
	return Letter, false
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Unknown paper formats fall back to Letter.
func (s *PageSize) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	size, ok := ParsePageSize(name)
	if !ok {
		logging.Logger().Warn("unknown page size, using Letter", "pageSize", name)
	}
	*s = size
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s PageSize) MarshalYAML() (any, error) {
	return s.String(), nil
}

// Orientation selects portrait or landscape pages.
type Orientation int

// The supported page orientations.
const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Anything other than "landscape" selects portrait pages.
func (o *Orientation) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	if strings.EqualFold(name, "landscape") {
		*o = Landscape
	} else {
		*o = Portrait
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o Orientation) MarshalYAML() (any, error) {
	return o.String(), nil
}

// Dimensions returns the width and height of a page, in PDF units.
// Landscape orientation swaps the two values.  Unknown page sizes are
// treated as Letter.
func (s PageSize) Dimensions(o Orientation) (width, height float64) {
	dim, ok := paperSizes[s]
	if !ok {
		dim = paperSizes[Letter]
	}
	if o == Landscape {
		return dim.height, dim.width
	}
	return dim.width, dim.height
}

// MediaBox returns the page rectangle for the given size and orientation.
func (s PageSize) MediaBox(o Orientation) rect.Rect {
	w, h := s.Dimensions(o)
	return rect.Rect{URx: w, URy: h}
}
