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

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"circuitassistant.org/go/pdf"
)

// ErrUnknown is returned when an operator is not recognized.
var ErrUnknown = errors.New("unknown operator")

// Operator represents a content stream operator with its arguments.
type Operator struct {
	Name OpName
	Args []pdf.Object
}

// Stream represents a PDF content stream as a linear sequence of operators.
type Stream []Operator

// Validate checks that every operator is known and has the expected number
// of operands, and that text objects and graphics state saves are balanced.
func (s Stream) Validate() error {
	var nesting []OpName
	for i, op := range s {
		n, ok := argCount[op.Name]
		if !ok {
			return fmt.Errorf("operator %d (%s): %w", i, op.Name, ErrUnknown)
		}
		if len(op.Args) != n {
			return fmt.Errorf("operator %d (%s): expected %d operands, got %d",
				i, op.Name, n, len(op.Args))
		}

		switch op.Name {
		case OpTextBegin, OpPushGraphicsState:
			nesting = append(nesting, op.Name)
		case OpTextEnd, OpPopGraphicsState:
			open := OpTextBegin
			if op.Name == OpPopGraphicsState {
				open = OpPushGraphicsState
			}
			if len(nesting) == 0 || nesting[len(nesting)-1] != open {
				return fmt.Errorf("operator %d (%s): no matching %s", i, op.Name, open)
			}
			nesting = nesting[:len(nesting)-1]
		}
	}
	if len(nesting) > 0 {
		return fmt.Errorf("unclosed %s", nesting[len(nesting)-1])
	}
	return nil
}

// Write writes the content stream to w in PDF content stream format.
func (s Stream) Write(w io.Writer) error {
	for _, op := range s {
		for _, arg := range op.Args {
			if err := arg.PDF(w); err != nil {
				return err
			}
			if _, err := w.Write([]byte(" ")); err != nil {
				return err
			}
		}

		if _, err := w.Write([]byte(op.Name)); err != nil {
			return err
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}

// Bytes returns the encoded content stream.
func (s Stream) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := s.Write(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
