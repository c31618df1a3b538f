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

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"circuitassistant.org/go/pdf/document"
)

var fixedTime = func() time.Time {
	return time.Date(2025, 3, 5, 19, 30, 0, 0, time.UTC)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func texts(p *document.Page) []string {
	var res []string
	for _, op := range p.Ops() {
		if t, ok := op.(*document.TextRun); ok {
			res = append(res, t.Text)
		}
	}
	return res
}

func makeRecords(n int) []Record {
	res := make([]Record, n)
	for i := range res {
		res[i] = Record{
			Time:  fmt.Sprintf("7:%02d", i%60),
			Theme: fmt.Sprintf("Part %d", i+1),
		}
	}
	return res
}

func TestPlanEmpty(t *testing.T) {
	s := document.DefaultSettings()
	doc, err := Plan(nil, &s, &Options{Now: fixedTime})
	if err != nil {
		t.Fatal(err)
	}
	if doc.NumPages() != 1 {
		t.Fatalf("got %d pages", doc.NumPages())
	}
	if doc.Title != DefaultTitle {
		t.Errorf("title %q", doc.Title)
	}

	want := []string{
		"Program Schedule",
		"Generated: 03/05/2025",
		"This document contains the program schedule with detailed information",
		"for each item.",
		"Time", "Theme", "Speaker", "Type",
	}
	if d := cmp.Diff(want, texts(doc.Pages()[0])); d != "" {
		t.Errorf("unexpected text (-want +got):\n%s", d)
	}
}

func TestPlanHeaderDecoration(t *testing.T) {
	s := document.DefaultSettings()
	doc, err := Plan(nil, &s, &Options{Now: fixedTime, OmitIntro: true})
	if err != nil {
		t.Fatal(err)
	}

	var fills, lines int
	for _, op := range doc.Pages()[0].Ops() {
		switch op := op.(type) {
		case *document.FillRect:
			fills++
			if op.Color != document.Gray(0.96) {
				t.Errorf("header background %v", op.Color)
			}
			if h := op.Rect.Dy(); !near(h, 21.6) {
				t.Errorf("header height %g", h)
			}
		case *document.Line:
			lines++
			if op.Width != 2 || op.Color != document.Gray(0.2) {
				t.Errorf("header rule %+v", op)
			}
		case *document.TextRun:
			if op.Text == "Theme" && (op.Font != document.Bold || !near(op.Size, 11.04)) {
				t.Errorf("header label %+v", op)
			}
		}
	}
	if fills != 1 || lines != 1 {
		t.Errorf("got %d fills and %d lines", fills, lines)
	}
}

func TestPlanCells(t *testing.T) {
	s := document.DefaultSettings()
	s.ViewMode = document.Detailed
	records := []Record{
		{Time: "7:00", ItemNumber: "3", Theme: "Bible", Speaker: "J. Doe",
			Type: "Talk", Duration: "10 min", Instructions: "Use the video"},
		{Theme: "Song", Duration: "5 min"},
	}
	doc, err := Plan(records, &s, &Options{Now: fixedTime, OmitIntro: true})
	if err != nil {
		t.Fatal(err)
	}
	got := texts(doc.Pages()[0])
	want := []string{
		"Program Schedule",
		"Generated: 03/05/2025",
		"Time", "Theme", "Speaker", "Type", "Instructions",
		"7:00", "3: Bible", "J. Doe", "Talk (10", "min)", "Use the video",
		"Song",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected text (-want +got):\n%s", d)
	}
}

func TestPlanSummaryHidesInstructions(t *testing.T) {
	s := document.DefaultSettings()
	records := []Record{{Theme: "Talk", Instructions: "secret"}}
	doc, err := Plan(records, &s, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, txt := range texts(doc.Pages()[0]) {
		if txt == "Instructions" || txt == "secret" {
			t.Errorf("summary mode shows %q", txt)
		}
	}
}

func TestPlanPageCount(t *testing.T) {
	// Letter, 20mm margins, 12pt: 24 rows fit below the title block on the
	// first page, 31 rows on each following page.
	cases := []struct {
		rows, pages int
	}{
		{0, 1},
		{24, 1},
		{25, 2},
		{55, 2},
		{56, 3},
	}
	for _, c := range cases {
		s := document.DefaultSettings()
		doc, err := Plan(makeRecords(c.rows), &s, &Options{Now: fixedTime})
		if err != nil {
			t.Fatal(err)
		}
		if doc.NumPages() != c.pages {
			t.Errorf("%d rows: got %d pages, want %d", c.rows, doc.NumPages(), c.pages)
		}
	}
}

func TestPlanRowsStayOnPage(t *testing.T) {
	for _, size := range []document.PageSize{document.Letter, document.A4, document.Legal} {
		for _, o := range []document.Orientation{document.Portrait, document.Landscape} {
			s := document.DefaultSettings()
			s.PageSize = size
			s.Orientation = o
			doc, err := Plan(makeRecords(100), &s, &Options{Now: fixedTime})
			if err != nil {
				t.Fatal(err)
			}

			bottom := s.ContentBox().LLy
			seen := make(map[string]int)
			for i, p := range doc.Pages() {
				for _, op := range p.Ops() {
					switch op := op.(type) {
					case *document.TextRun:
						if op.Y < bottom {
							t.Errorf("%s %s page %d: text %q below margin", size, o, i, op.Text)
						}
						if strings.HasPrefix(op.Text, "Part ") {
							seen[op.Text]++
						}
					case *document.Line:
						if op.From.Y < bottom-1e-9 {
							t.Errorf("%s %s page %d: rule below margin", size, o, i)
						}
					}
				}
			}
			if len(seen) != 100 {
				t.Errorf("%s %s: %d of 100 rows drawn", size, o, len(seen))
			}
		}
	}
}

func headerCount(p *document.Page) int {
	n := 0
	for _, txt := range texts(p) {
		if txt == "Speaker" {
			n++
		}
	}
	return n
}

func TestPlanRepeatHeader(t *testing.T) {
	s := document.DefaultSettings()
	doc, err := Plan(makeRecords(80), &s, &Options{Now: fixedTime, RepeatHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	if doc.NumPages() < 3 {
		t.Fatalf("expected at least 3 pages, got %d", doc.NumPages())
	}
	for i, p := range doc.Pages() {
		if n := headerCount(p); n != 1 {
			t.Errorf("page %d has %d headers", i+1, n)
		}
	}
}

// An introduction which fills the first page pushes the first header onto
// the second page.  It must still be drawn only once there.
func TestPlanHeaderAfterLongIntro(t *testing.T) {
	s := document.DefaultSettings()
	for _, repeat := range []bool{false, true} {
		pushed := false
		for n := 300; n <= 600; n += 5 {
			opt := &Options{
				Now:          fixedTime,
				Intro:        strings.Repeat("word ", n),
				RepeatHeader: repeat,
			}
			doc, err := Plan(makeRecords(2), &s, opt)
			if err != nil {
				t.Fatal(err)
			}
			total := 0
			for i, p := range doc.Pages() {
				k := headerCount(p)
				if k > 1 {
					t.Errorf("repeat=%t, %d words: page %d has %d headers", repeat, n, i+1, k)
				}
				if k == 1 && i > 0 {
					pushed = true
				}
				total += k
			}
			if !repeat && total != 1 {
				t.Errorf("repeat=%t, %d words: %d headers", repeat, n, total)
			}
		}
		if !pushed {
			t.Errorf("repeat=%t: header never moved past the first page", repeat)
		}
	}
}

func TestPlanDetailedRowsStayOnPage(t *testing.T) {
	s := document.DefaultSettings()
	s.ViewMode = document.Detailed
	records := make([]Record, 60)
	for i := range records {
		records[i] = Record{
			Time:         fmt.Sprintf("7:%02d", i),
			Theme:        fmt.Sprintf("Part %d", i+1),
			Speaker:      "Ann Lee",
			Instructions: strings.TrimSpace(strings.Repeat(fmt.Sprintf("r%d-item ", i+1), 12+i%25)),
		}
	}
	doc, err := Plan(records, &s, &Options{Now: fixedTime})
	if err != nil {
		t.Fatal(err)
	}
	if doc.NumPages() < 2 {
		t.Fatalf("expected several pages, got %d", doc.NumPages())
	}

	bottom := s.ContentBox().LLy
	pages := make(map[string]map[int]bool)
	lines := make(map[string]int)
	mark := func(key string, page int) {
		if pages[key] == nil {
			pages[key] = make(map[int]bool)
		}
		pages[key][page] = true
	}
	for i, p := range doc.Pages() {
		for _, op := range p.Ops() {
			run, ok := op.(*document.TextRun)
			if !ok {
				continue
			}
			if run.Y < bottom {
				t.Errorf("page %d: text %q below margin", i+1, run.Text)
			}
			if key, ok := strings.CutPrefix(run.Text, "Part "); ok {
				mark(key, i)
			} else if f := strings.Fields(run.Text); len(f) > 0 && strings.HasSuffix(f[0], "-item") {
				key := strings.TrimSuffix(f[0][1:], "-item")
				mark(key, i)
				lines[key]++
			}
		}
	}
	for i := range records {
		key := fmt.Sprint(i + 1)
		if len(pages[key]) != 1 {
			t.Errorf("row %s spread over %d pages", key, len(pages[key]))
		}
		if lines[key] < 2 {
			t.Errorf("row %s: instructions on %d lines, expected wrapping", key, lines[key])
		}
	}
}

func TestPlanTallRow(t *testing.T) {
	s := document.DefaultSettings()
	s.ViewMode = document.Detailed
	words := strings.TrimSpace(strings.Repeat("word ", 600))
	records := []Record{
		{Theme: "Before"},
		{Theme: "Reading", Instructions: words},
		{Theme: "After"},
	}
	doc, err := Plan(records, &s, &Options{Now: fixedTime, OmitIntro: true})
	if err != nil {
		t.Fatal(err)
	}
	if doc.NumPages() < 4 {
		t.Errorf("expected the row to span at least 4 pages, got %d", doc.NumPages())
	}

	bottom := s.ContentBox().LLy
	var instr []string
	for _, p := range doc.Pages() {
		for _, op := range p.Ops() {
			if t0, ok := op.(*document.TextRun); ok {
				if t0.Y < bottom {
					t.Errorf("text %q below the margin", t0.Text)
				}
				if strings.HasPrefix(t0.Text, "word") {
					instr = append(instr, t0.Text)
				}
			}
		}
	}
	if got := strings.Join(instr, " "); got != words {
		t.Error("instruction text was not preserved")
	}
}

func TestPlanFitCells(t *testing.T) {
	s := document.DefaultSettings()
	long := Record{Theme: "A theme which is much too long for a single line of its column"}

	var heights []float64
	for _, fit := range []bool{false, true} {
		doc, err := Plan([]Record{long}, &s, &Options{Now: fixedTime, FitCells: fit, OmitIntro: true})
		if err != nil {
			t.Fatal(err)
		}
		var ys []float64
		for _, op := range doc.Pages()[0].Ops() {
			if l, ok := op.(*document.Line); ok {
				ys = append(ys, l.From.Y)
			}
		}
		heights = append(heights, ys[0]-ys[1])
	}
	if !near(heights[0], 21.6) {
		t.Errorf("default row height %g", heights[0])
	}
	if heights[1] <= heights[0] {
		t.Errorf("FitCells row height %g not larger than %g", heights[1], heights[0])
	}
}

func TestPlanInvalidSettings(t *testing.T) {
	s := document.DefaultSettings()
	s.FontSize = -1
	if _, err := Plan(nil, &s, nil); err == nil {
		t.Error("expected an error")
	}
}
