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

package render

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"circuitassistant.org/go/pdf"
)

// encodeText converts s to WinAnsiEncoding, the encoding of the standard
// fonts.  Characters which cannot be represented give an encoding error.
func encodeText(s string) (string, error) {
	res, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return "", pdf.Wrap(pdf.StageEncoding, fmt.Sprintf("text run %q", s), err)
	}
	return res, nil
}
