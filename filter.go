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
	"compress/zlib"
	"fmt"
	"io"
)

// FlateEncode compresses data using the zlib/deflate format expected by
// the /FlateDecode filter.
func FlateEncode(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FlateDecode reverses [FlateEncode].
func FlateDecode(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// Compress applies the /FlateDecode filter to every stream in the graph
// which does not already have a filter.  Streams shorter than minLength
// bytes are left alone.
func (g *Graph) Compress(minLength int) error {
	for ref := Reference(1); ref < g.next; ref++ {
		stm, ok := g.objects[ref].(*Stream)
		if !ok || len(stm.Data) < minLength {
			continue
		}
		if _, hasFilter := stm.Dict["Filter"]; hasFilter {
			continue
		}
		if tp, _ := stm.Dict["Type"].(Name); tp == "Metadata" {
			// metadata streams stay uncompressed
			continue
		}
		data, err := FlateEncode(stm.Data)
		if err != nil {
			return fmt.Errorf("object %d: %w", ref, err)
		}
		if stm.Dict == nil {
			stm.Dict = Dict{}
		}
		stm.Dict["Filter"] = Name("FlateDecode")
		stm.Data = data
	}
	return nil
}
