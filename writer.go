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

package pdf

import (
	"bytes"
	"fmt"
	"io"
)

// Bytes serializes the graph into a complete PDF file.
// The graph is checked before anything is written.
func (g *Graph) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	_, err := g.WriteTo(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the graph as a PDF file to w.  Objects are written in
// order of their object numbers, followed by a cross-reference table and
// the trailer.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	err := g.Check()
	if err != nil {
		return 0, err
	}
	ver, err := g.Version.ToString()
	if err != nil {
		return 0, err
	}

	pw := &posWriter{w: w}
	_, err = fmt.Fprintf(pw, "%%PDF-%s\n%%\x80\x80\x80\x80\n", ver)
	if err != nil {
		return pw.pos, err
	}

	xref := make([]int64, g.next)
	for ref := Reference(1); ref < g.next; ref++ {
		xref[ref] = pw.pos
		_, err = fmt.Fprintf(pw, "%d 0 obj\n", uint32(ref))
		if err != nil {
			return pw.pos, err
		}
		err = g.objects[ref].PDF(pw)
		if err != nil {
			return pw.pos, err
		}
		_, err = pw.Write([]byte("\nendobj\n"))
		if err != nil {
			return pw.pos, err
		}
	}

	xRefPos := pw.pos
	err = g.writeXRefTable(pw, xref)
	if err != nil {
		return pw.pos, err
	}

	_, err = fmt.Fprintf(pw, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	return pw.pos, err
}

func (g *Graph) writeXRefTable(w io.Writer, xref []int64) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n", len(xref))
	if err != nil {
		return err
	}
	// the first entry is the head of the (empty) list of free objects
	_, err = w.Write([]byte("0000000000 65535 f\r\n"))
	if err != nil {
		return err
	}
	for _, pos := range xref[1:] {
		_, err = fmt.Fprintf(w, "%010d 00000 n\r\n", pos)
		if err != nil {
			return err
		}
	}

	trailer := Dict{}
	for key, val := range g.Trailer {
		trailer[key] = val
	}
	trailer["Size"] = Integer(len(xref))
	trailer["Root"] = g.root
	if g.info != 0 {
		trailer["Info"] = g.info
	}

	_, err = w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(w)
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
