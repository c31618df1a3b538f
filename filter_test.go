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
	"testing"
)

func TestFlate(t *testing.T) {
	for _, in := range [][]byte{nil, []byte("BT /F1 12 Tf (hello) Tj ET\n"), bytes.Repeat([]byte("0.9 0.9 0.9 RG\n"), 200)} {
		enc, err := FlateEncode(in)
		if err != nil {
			t.Fatal(err)
		}
		out, err := FlateDecode(enc)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(in, out) {
			t.Errorf("round trip changed %q to %q", in, out)
		}
	}

	if _, err := FlateDecode([]byte("not zlib")); err == nil {
		t.Error("expected an error")
	}
}

func TestCompress(t *testing.T) {
	long := bytes.Repeat([]byte("q Q\n"), 100)
	g := NewGraph(V1_4)
	plain, _ := g.Add(&Stream{Data: append([]byte(nil), long...)})
	short, _ := g.Add(&Stream{Data: []byte("q Q")})
	meta, _ := g.Add(&Stream{Dict: Dict{"Type": Name("Metadata")}, Data: long})
	filtered, _ := g.Add(&Stream{Dict: Dict{"Filter": Name("ASCIIHexDecode")}, Data: []byte("00>")})
	root, _ := g.Add(Dict{"Type": Name("Catalog")})
	g.SetRoot(root)

	if err := g.Compress(16); err != nil {
		t.Fatal(err)
	}

	stm := g.Get(plain).(*Stream)
	if stm.Dict["Filter"] != Name("FlateDecode") {
		t.Error("stream not compressed")
	}
	data, err := FlateDecode(stm.Data)
	if err != nil || !bytes.Equal(data, long) {
		t.Errorf("compressed data does not round trip: %v", err)
	}

	for _, ref := range []Reference{short, meta} {
		if _, ok := g.Get(ref).(*Stream).Dict["Filter"]; ok {
			t.Errorf("object %d should not be compressed", ref)
		}
	}
	if g.Get(filtered).(*Stream).Dict["Filter"] != Name("ASCIIHexDecode") {
		t.Error("existing filter replaced")
	}
}
