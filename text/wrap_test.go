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

package text

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestMaxChars(t *testing.T) {
	cases := []struct {
		width, size float64
		want        int
	}{
		{100, 10, 16},
		{60, 10, 10},
		{10, 10, 10}, // clamped
		{0, 12, 10},
		{200, 12, 27},
		{-5, 12, 10},
	}
	for _, c := range cases {
		got := MaxChars(c.width, c.size)
		if got != c.want {
			t.Errorf("MaxChars(%g, %g) = %d, want %d", c.width, c.size, got, c.want)
		}
	}
}

func TestWrapExample(t *testing.T) {
	lines := Wrap("This is a long line of instructions", 100, 10)
	want := []string{
		"This is a long",
		"line of",
		"instructions",
	}
	if d := cmp.Diff(want, lines); d != "" {
		t.Errorf("unexpected lines (-want +got):\n%s", d)
	}
	for _, l := range lines {
		if utf8.RuneCountInString(l) > 16 {
			t.Errorf("line %q is longer than 16 characters", l)
		}
	}
}

func TestWrapEmpty(t *testing.T) {
	for _, in := range []string{"", " ", "\t\n  "} {
		got := Wrap(in, 100, 10)
		if d := cmp.Diff([]string{in}, got); d != "" {
			t.Errorf("Wrap(%q) (-want +got):\n%s", in, d)
		}
	}
}

func TestWrapLongWord(t *testing.T) {
	long := strings.Repeat("x", 40)
	got := Wrap("a "+long+" b", 100, 10)
	want := []string{"a", long, "b"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected lines (-want +got):\n%s", d)
	}
}

func TestWrapRunes(t *testing.T) {
	// 16 runes, but 32 bytes
	in := "äöüäöüäöü äöüäöü"
	got := Wrap(in, 100, 10)
	if d := cmp.Diff([]string{in}, got); d != "" {
		t.Errorf("unexpected lines (-want +got):\n%s", d)
	}
}

func TestWrapProperties(t *testing.T) {
	inputs := []string{
		"Opening song and prayer",
		"  leading and   trailing   spaces  ",
		"Discuss the main points of the article with the audience and invite comments from several publishers",
		"one",
		strings.Repeat("word ", 50),
		"supercalifragilisticexpialidocious is long",
	}
	widths := []float64{0, 50, 100, 175.5, 400}
	sizes := []float64{8, 10, 12, 14}

	for _, in := range inputs {
		for _, w := range widths {
			for _, s := range sizes {
				lines := Wrap(in, w, s)
				if len(lines) == 0 {
					t.Fatalf("Wrap(%q, %g, %g) returned no lines", in, w, s)
				}

				joined := strings.Join(lines, " ")
				if d := cmp.Diff(strings.Fields(in), strings.Fields(joined)); d != "" {
					t.Errorf("Wrap(%q, %g, %g) changed the words:\n%s", in, w, s, d)
				}

				maxChars := MaxChars(w, s)
				for _, l := range lines {
					n := utf8.RuneCountInString(l)
					if n > maxChars && strings.Contains(l, " ") {
						t.Errorf("Wrap(%q, %g, %g): line %q exceeds %d characters",
							in, w, s, l, maxChars)
					}
				}
			}
		}
	}
}
