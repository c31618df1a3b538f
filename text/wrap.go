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

// Package text breaks strings into lines for table cells.
//
// Widths are estimated from the font size alone: every character is taken
// to be 0.6 em wide.  No font metrics are consulted, so the result is the
// same for every font.
package text

import (
	"math"
	"strings"
	"unicode/utf8"
)

// WidthFactor is the estimated advance width of one character, as a
// fraction of the font size.
const WidthFactor = 0.6

// MinChars is the smallest line length Wrap will use, however narrow the
// available width is.
const MinChars = 10

// CharWidth returns the estimated width of one character at the given font
// size, in PDF units.
func CharWidth(fontSize float64) float64 {
	return fontSize * WidthFactor
}

// MaxChars returns the number of characters which fit into maxWidth at the
// given font size.  The result is never less than MinChars.
func MaxChars(maxWidth, fontSize float64) int {
	n := math.Floor(maxWidth / CharWidth(fontSize))
	if math.IsNaN(n) || n < MinChars {
		return MinChars
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// Wrap splits s at white space into lines of at most MaxChars(maxWidth,
// fontSize) characters.  Words are never split: a word longer than the
// limit is placed on a line of its own.
//
// The result always has at least one element.  If s contains no words,
// the result is []string{s}.
func Wrap(s string, maxWidth, fontSize float64) []string {
	maxChars := MaxChars(maxWidth, fontSize)

	var lines []string
	var current strings.Builder
	currentLen := 0
	for _, word := range strings.Fields(s) {
		wordLen := utf8.RuneCountInString(word)
		switch {
		case currentLen == 0:
			current.WriteString(word)
			currentLen = wordLen
		case currentLen+wordLen+1 <= maxChars:
			current.WriteByte(' ')
			current.WriteString(word)
			currentLen += wordLen + 1
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentLen = wordLen
		}
	}
	if currentLen > 0 {
		lines = append(lines, current.String())
	}

	if len(lines) == 0 {
		lines = append(lines, s)
	}
	return lines
}

// Width returns the estimated width of s at the given font size.
func Width(s string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(s)) * CharWidth(fontSize)
}
