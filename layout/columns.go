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

import (
	"fmt"

	"circuitassistant.org/go/pdf/document"
)

// Column identifies a column of the schedule table.
type Column int

// The table columns, from left to right.
const (
	ColTime Column = iota
	ColTheme
	ColSpeaker
	ColType
	ColInstructions

	numColumns
)

// Fractions gives the width of each column as a fraction of the content
// width.
var Fractions = [numColumns]float64{
	ColTime:         0.10,
	ColTheme:        0.25,
	ColSpeaker:      0.15,
	ColType:         0.15,
	ColInstructions: 0.35,
}

var columnLabels = [numColumns]string{
	ColTime:         "Time",
	ColTheme:        "Theme",
	ColSpeaker:      "Speaker",
	ColType:         "Type",
	ColInstructions: "Instructions",
}

// Label returns the header text of the column.
func (c Column) Label() string {
	if c < 0 || c >= numColumns {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return columnLabels[c]
}

func (c Column) String() string {
	return c.Label()
}

// VisibleColumns returns the columns shown in the given view mode.
// The instructions column is only shown in detailed mode.
func VisibleColumns(mode document.ViewMode) []Column {
	cols := []Column{ColTime, ColTheme, ColSpeaker, ColType}
	if mode == document.Detailed {
		cols = append(cols, ColInstructions)
	}
	return cols
}

// CellPadding is the horizontal space between a column edge and its text.
const CellPadding = 5

// Columns holds the horizontal geometry of the table.
type Columns struct {
	X     [numColumns]float64 // left edge of each column
	Width [numColumns]float64
}

// NewColumns divides the content width, starting at left, into columns.
// The instructions column is allocated even when it is not shown.
func NewColumns(left, contentWidth float64) Columns {
	var c Columns
	x := left
	for i, f := range Fractions {
		c.X[i] = x
		c.Width[i] = contentWidth * f
		x += c.Width[i]
	}
	return c
}

// TextX returns the x coordinate of text in the given column.
func (c *Columns) TextX(col Column) float64 {
	return c.X[col] + CellPadding
}

// WrapWidth returns the width available to text in the given column.
func (c *Columns) WrapWidth(col Column) float64 {
	return c.Width[col] - 2*CellPadding
}

// Metrics holds the font sizes and vertical distances derived from the
// base font size.
type Metrics struct {
	FontSize        float64
	TitleSize       float64
	MetaSize        float64
	HeaderSize      float64
	InstructionSize float64

	// LineHeight is the distance between the baselines of consecutive
	// lines of text.
	LineHeight float64

	// RowHeight is the minimum height of a table row, and the height of
	// the header row.
	RowHeight float64
}

// NewMetrics returns the metrics for the given base font size.
func NewMetrics(fontSize float64) Metrics {
	return Metrics{
		FontSize:        fontSize,
		TitleSize:       fontSize * 2,
		MetaSize:        fontSize * 0.83,
		HeaderSize:      fontSize * 0.92,
		InstructionSize: fontSize * 0.92,
		LineHeight:      fontSize * 1.5,
		RowHeight:       fontSize * 1.8,
	}
}

// baselineOffset is the distance from the top of a row to the baseline
// of its first line of text.
func (m *Metrics) baselineOffset() float64 {
	return m.RowHeight * 0.3
}
