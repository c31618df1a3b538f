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

// OpName is the name of a content stream operator.
type OpName string

// The operators used by this library.  The operators are defined in
// sections 8 and 9 of ISO 32000-2:2020.
const (
	// General graphics state
	OpPushGraphicsState OpName = "q"
	OpPopGraphicsState  OpName = "Q"
	OpSetLineWidth      OpName = "w"

	// Path construction
	OpMoveTo    OpName = "m"
	OpLineTo    OpName = "l"
	OpRectangle OpName = "re"

	// Path painting
	OpStroke OpName = "S"
	OpFill   OpName = "f"

	// Text objects
	OpTextBegin OpName = "BT"
	OpTextEnd   OpName = "ET"

	// Text state and positioning
	OpTextSetFont    OpName = "Tf"
	OpTextMoveOffset OpName = "Td"

	// Text showing
	OpTextShow OpName = "Tj"

	// Colour
	OpSetStrokeGray OpName = "G"
	OpSetFillGray   OpName = "g"
	OpSetStrokeRGB  OpName = "RG"
	OpSetFillRGB    OpName = "rg"
)

// argCount gives the number of operands expected by each operator.
var argCount = map[OpName]int{
	OpPushGraphicsState: 0,
	OpPopGraphicsState:  0,
	OpSetLineWidth:      1,
	OpMoveTo:            2,
	OpLineTo:            2,
	OpRectangle:         4,
	OpStroke:            0,
	OpFill:              0,
	OpTextBegin:         0,
	OpTextEnd:           0,
	OpTextSetFont:       2,
	OpTextMoveOffset:    2,
	OpTextShow:          1,
	OpSetStrokeGray:     1,
	OpSetFillGray:       1,
	OpSetStrokeRGB:      3,
	OpSetFillRGB:        3,
}
