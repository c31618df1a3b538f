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
	"testing"
	"time"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Integer(-7), "-7"},
		{Real(0.5), "0.5"},
		{Real(2), "2"},
		{Real(56.69299999), "56.693"},
		{Real(-0.00001), "0"},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String("back\\slash"), "(back\\\\slash)"},
		{String(""), "()"},
		{String("\000"), "<00>"},
		{Name("F1"), "/F1"},
		{Name("A B#"), "/A#20B#23"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Dict{"Type": Name("Page"), "Count": Integer(2), "Skip": nil}, "<<\n/Count 2\n/Type /Page\n>>"},
		{Reference(12), "12 0 R"},
		{&Stream{Data: []byte("BT ET")}, "<<\n/Length 5\n>>\nstream\nBT ET\nendstream"},
	}
	for _, test := range cases {
		out := Format(test.in)
		if out != test.out {
			t.Errorf("wrongly formatted, expected %q but got %q", test.out, out)
		}
	}
}

func TestNumber(t *testing.T) {
	if d := cmp.Diff(Object(Integer(612)), Number(612)); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(Object(Real(841.89)), Number(841.89)); d != "" {
		t.Error(d)
	}
}

func TestTextString(t *testing.T) {
	if s := TextString("Program Schedule"); string(s) != "Program Schedule" {
		t.Errorf("ASCII text changed to %q", s)
	}

	for _, in := range []string{"ein Bär", "o țesătură", "中文"} {
		enc := TextString(in)
		if enc[0] != 0xFE || enc[1] != 0xFF || len(enc)%2 != 0 {
			t.Errorf("%q: missing byte order mark", in)
			continue
		}
		var units []uint16
		for i := 2; i < len(enc); i += 2 {
			units = append(units, uint16(enc[i])<<8|uint16(enc[i+1]))
		}
		if out := string(utf16.Decode(units)); out != in {
			t.Errorf("wrong text: %q != %q", out, in)
		}
	}
}

func TestDate(t *testing.T) {
	PST := time.FixedZone("PST", -8*60*60)
	cases := []struct {
		in  time.Time
		out string
	}{
		{time.Date(1998, 12, 23, 19, 52, 0, 0, PST), "D:19981223195200-08'00"},
		{time.Date(2020, 12, 24, 16, 30, 12, 0, time.FixedZone("", 90*60)), "D:20201224163012+01'30"},
	}
	for _, test := range cases {
		if out := string(Date(test.in)); out != test.out {
			t.Errorf("wrong date: %q != %q", out, test.out)
		}
	}
}

func TestStreamLength(t *testing.T) {
	stm := &Stream{
		Dict: Dict{"Length": Integer(999), "Filter": Name("FlateDecode")},
		Data: []byte("1234"),
	}
	want := "<<\n/Filter /FlateDecode\n/Length 4\n>>\nstream\n1234\nendstream"
	if out := Format(stm); out != want {
		t.Errorf("got %q", out)
	}
	if stm.Dict["Length"] != Integer(999) {
		t.Error("stream dictionary was modified")
	}
}

func TestDictString(t *testing.T) {
	d := Dict{"Type": Name("Catalog"), "Pages": Reference(2)}
	if s := d.String(); s != "<Catalog Dict, 2 entries>" {
		t.Errorf("got %q", s)
	}
	stm := &Stream{Dict: Dict{"Type": Name("Metadata")}, Data: make([]byte, 10)}
	if s := stm.String(); s != "<Metadata Stream, 10 bytes>" {
		t.Errorf("got %q", s)
	}
}
