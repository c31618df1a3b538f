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

import "strings"

// Record is one row of a schedule table.
// Only Theme is required; all other fields may be empty.
type Record struct {
	Time         string `yaml:"time,omitempty"`
	ItemNumber   string `yaml:"item_number,omitempty"`
	Theme        string `yaml:"theme"`
	Speaker      string `yaml:"speaker,omitempty"`
	Type         string `yaml:"type,omitempty"`
	Duration     string `yaml:"duration,omitempty"`
	Instructions string `yaml:"instructions,omitempty"`
}

// ThemeText returns the text of the theme cell.  If the record has an item
// number, the theme is prefixed with "N: ".
func (r *Record) ThemeText() string {
	if r.ItemNumber != "" {
		return r.ItemNumber + ": " + r.Theme
	}
	return r.Theme
}

// TypeText returns the text of the type cell, "type (duration)".
// A duration without a type is not shown.
func (r *Record) TypeText() string {
	switch {
	case r.Type == "":
		return ""
	case r.Duration != "":
		return r.Type + " (" + r.Duration + ")"
	default:
		return r.Type
	}
}

// HasInstructions reports whether the record carries non-blank
// instructions.
func (r *Record) HasInstructions() bool {
	return strings.TrimSpace(r.Instructions) != ""
}

// cell returns the text shown in the given column.
func (r *Record) cell(col Column) string {
	switch col {
	case ColTime:
		return r.Time
	case ColTheme:
		return r.ThemeText()
	case ColSpeaker:
		return r.Speaker
	case ColType:
		return r.TypeText()
	case ColInstructions:
		return r.Instructions
	default:
		return ""
	}
}
