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
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	lpdf "github.com/ledongthuc/pdf"

	"circuitassistant.org/go/pdf"
	"circuitassistant.org/go/pdf/document"
	"circuitassistant.org/go/pdf/layout"
)

var fixedTime = func() time.Time {
	return time.Date(2025, 3, 5, 19, 30, 0, 0, time.UTC)
}

func schedule(t *testing.T, n int, mode document.ViewMode) *document.Document {
	t.Helper()
	records := make([]layout.Record, n)
	for i := range records {
		records[i] = layout.Record{
			Time:         fmt.Sprintf("7:%02d", i%60),
			ItemNumber:   fmt.Sprint(i + 1),
			Theme:        "Treasures from God's Word",
			Speaker:      "René Dupont",
			Type:         "Talk",
			Duration:     "10 min",
			Instructions: "Ask the audience two questions (see paragraph 3).",
		}
	}
	s := document.DefaultSettings()
	s.ViewMode = mode
	doc, err := layout.Plan(records, &s, &layout.Options{Now: fixedTime})
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

// readPages opens a PDF file with an independent reader and returns the
// number of pages.
func readPages(t *testing.T, data []byte) (int, *lpdf.Reader) {
	t.Helper()
	r, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	return r.NumPage(), r
}

func TestBackendsAgree(t *testing.T) {
	for _, n := range []int{0, 3, 70} {
		for _, mode := range []document.ViewMode{document.Summary, document.Detailed} {
			for _, compress := range []bool{false, true} {
				name := fmt.Sprintf("%d-%s-%t", n, mode, compress)
				t.Run(name, func(t *testing.T) {
					opt := &Options{Compress: compress, Now: fixedTime}
					var counts []int
					for _, kind := range []Kind{KindHighLevel, KindObjectGraph} {
						doc := schedule(t, n, mode)
						r, err := New(kind, opt)
						if err != nil {
							t.Fatal(err)
						}
						data, err := r.Render(doc)
						if err != nil {
							t.Fatalf("%s: %v", kind, err)
						}
						if !bytes.HasPrefix(data, []byte("%PDF-1.")) {
							t.Fatalf("%s: missing PDF header", kind)
						}
						if err := Validate(data); err != nil {
							t.Fatalf("%s: %v", kind, err)
						}
						pages, err := PageCount(data)
						if err != nil {
							t.Fatal(err)
						}
						if pages != doc.NumPages() {
							t.Errorf("%s: pdfcpu counts %d pages, document has %d",
								kind, pages, doc.NumPages())
						}
						numPage, _ := readPages(t, data)
						if numPage != pages {
							t.Errorf("%s: readers disagree: %d vs %d pages", kind, numPage, pages)
						}
						counts = append(counts, pages)
					}
					if counts[0] != counts[1] {
						t.Errorf("page counts differ: %v", counts)
					}
				})
			}
		}
	}
}

func TestLargePageTree(t *testing.T) {
	doc := schedule(t, 700, document.Summary)
	if doc.NumPages() <= 16 {
		t.Fatalf("only %d pages", doc.NumPages())
	}
	data, err := (&ObjectGraph{Options{Compress: true}}).Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(data); err != nil {
		t.Fatal(err)
	}
	numPage, r := readPages(t, data)
	if numPage != doc.NumPages() {
		t.Errorf("got %d pages, want %d", numPage, doc.NumPages())
	}
	last := r.Page(numPage)
	if last.V.IsNull() {
		t.Error("last page not reachable through the page tree")
	}
}

func TestObjectGraphText(t *testing.T) {
	doc := schedule(t, 2, document.Summary)
	data, err := (&ObjectGraph{Options: Options{Now: fixedTime}}).Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	_, r := readPages(t, data)

	var text strings.Builder
	for _, txt := range r.Page(1).Content().Text {
		text.WriteString(txt.S)
	}
	for _, want := range []string{"Schedule", "Dupont", "Treasures"} {
		if !strings.Contains(text.String(), want) {
			t.Errorf("page text does not contain %q", want)
		}
	}
}

func TestObjectGraphStructure(t *testing.T) {
	doc := schedule(t, 40, document.Detailed)
	g, err := (&ObjectGraph{}).Graph(doc)
	if err != nil {
		t.Fatal(err)
	}

	data, err := g.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	trailer := data[bytes.LastIndex(data, []byte("trailer")):]
	if !bytes.Contains(trailer, []byte("/ID [")) {
		t.Errorf("trailer without /ID: %q", trailer)
	}

	// find the page tree through the catalog
	var catalog pdf.Dict
	for ref := pdf.Reference(1); int(ref) <= g.Len(); ref++ {
		if d, ok := g.Get(ref).(pdf.Dict); ok && d["Type"] == pdf.Name("Catalog") {
			catalog = d
		}
	}
	if catalog == nil {
		t.Fatal("no catalog")
	}
	if _, ok := catalog["Metadata"].(pdf.Reference); !ok {
		t.Error("catalog without metadata")
	}
	var kids []pdf.Reference
	var collect func(ref, parent pdf.Reference)
	collect = func(ref, parent pdf.Reference) {
		node := g.Get(ref).(pdf.Dict)
		if parent != 0 && node["Parent"] != parent {
			t.Errorf("object %d: wrong parent", ref)
		}
		if node["Type"] == pdf.Name("Page") {
			kids = append(kids, ref)
			return
		}
		for _, kid := range node["Kids"].(pdf.Array) {
			collect(kid.(pdf.Reference), ref)
		}
	}
	root := catalog["Pages"].(pdf.Reference)
	collect(root, 0)
	tree := g.Get(root).(pdf.Dict)
	if tree["Count"] != pdf.Integer(doc.NumPages()) || len(kids) != doc.NumPages() {
		t.Fatalf("page tree has %v pages, want %d", tree["Count"], doc.NumPages())
	}

	for _, kid := range kids {
		page := g.Get(kid).(pdf.Dict)
		res := g.Get(page["Resources"].(pdf.Reference)).(pdf.Dict)
		fonts := res["Font"].(pdf.Dict)
		for _, name := range []pdf.Name{"F1", "F2"} {
			font := g.Get(fonts[name].(pdf.Reference)).(pdf.Dict)
			if font["Encoding"] != pdf.Name("WinAnsiEncoding") {
				t.Errorf("font %s: encoding %v", name, font["Encoding"])
			}
		}
	}

	// content streams, read back from the compressed file
	r, err := New(KindObjectGraph, &Options{Compress: true})
	if err != nil {
		t.Fatal(err)
	}
	data, err = r.Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	numPage, rd := readPages(t, data)
	if numPage != doc.NumPages() {
		t.Fatalf("reader found %d pages, want %d", numPage, doc.NumPages())
	}
	operands := map[string]int{
		"q": 0, "Q": 0, "w": 1, "m": 2, "l": 2, "re": 4, "S": 0, "f": 0,
		"BT": 0, "ET": 0, "Tf": 2, "Td": 2, "Tj": 1,
		"G": 1, "g": 1, "RG": 3, "rg": 3,
	}
	closing := map[string]string{"ET": "BT", "Q": "q"}
	for i := 1; i <= numPage; i++ {
		page := rd.Page(i)
		fonts := page.Resources().Key("Font")
		var nesting []string
		counts := map[string]int{}
		lpdf.Interpret(page.V.Key("Contents"), func(stk *lpdf.Stack, op string) {
			counts[op]++
			if n, ok := operands[op]; !ok {
				t.Errorf("page %d: unexpected operator %q", i, op)
			} else if stk.Len() != n {
				t.Errorf("page %d: %s with %d operands, want %d", i, op, stk.Len(), n)
			}
			switch op {
			case "BT", "q":
				nesting = append(nesting, op)
			case "ET", "Q":
				open := closing[op]
				if len(nesting) == 0 || nesting[len(nesting)-1] != open {
					t.Errorf("page %d: %s without matching %s", i, op, open)
				} else {
					nesting = nesting[:len(nesting)-1]
				}
			case "Tf":
				stk.Pop()
				name := stk.Pop().Name()
				if fonts.Key(name).IsNull() {
					t.Errorf("page %d: font %s not in resources", i, name)
				}
			}
			for stk.Len() > 0 {
				stk.Pop()
			}
		})
		if len(nesting) > 0 {
			t.Errorf("page %d: unclosed %v", i, nesting)
		}
		if counts["BT"] == 0 || counts["BT"] != counts["Tj"] {
			t.Errorf("page %d: %d text objects for %d strings", i, counts["BT"], counts["Tj"])
		}
	}
}

func TestCompression(t *testing.T) {
	plain, err := (&ObjectGraph{}).Graph(schedule(t, 5, document.Summary))
	if err != nil {
		t.Fatal(err)
	}
	packed, err := (&ObjectGraph{Options: Options{Compress: true}}).Graph(schedule(t, 5, document.Summary))
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for ref := pdf.Reference(1); int(ref) <= plain.Len(); ref++ {
		a, ok := plain.Get(ref).(*pdf.Stream)
		if !ok || a.Dict["Type"] == pdf.Name("Metadata") {
			continue
		}
		b := packed.Get(ref).(*pdf.Stream)
		if b.Dict["Filter"] != pdf.Name("FlateDecode") {
			t.Errorf("object %d not compressed", ref)
			continue
		}
		data, err := pdf.FlateDecode(b.Data)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, a.Data) {
			t.Errorf("object %d changed by compression", ref)
		}
		found = true
	}
	if !found {
		t.Error("no content streams found")
	}
}

func TestEncodingError(t *testing.T) {
	for _, kind := range []Kind{KindHighLevel, KindObjectGraph} {
		doc := document.New("Check ✓")
		s := document.DefaultSettings()
		if _, err := doc.AddPage(&s); err != nil {
			t.Fatal(err)
		}
		err := doc.Append(&document.TextRun{Text: "Done ✓", Size: 12, X: 50, Y: 700})
		if err != nil {
			t.Fatal(err)
		}

		r, _ := New(kind, nil)
		_, err = r.Render(doc)
		if stage, ok := pdf.StageOf(err); !ok || stage != pdf.StageEncoding {
			t.Errorf("%s: expected an encoding error, got %v", kind, err)
		}
		if err != nil && !strings.Contains(err.Error(), "encoding: text run") {
			t.Errorf("%s: unexpected message %q", kind, err)
		}
	}
}

func TestLatin1Text(t *testing.T) {
	s, err := encodeText("Grüße – €5")
	if err != nil {
		t.Fatal(err)
	}
	want := "Gr\xfc\xdfe \x96 \x805"
	if s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}

func TestFrozenAfterRender(t *testing.T) {
	doc := schedule(t, 1, document.Summary)
	if _, err := (&HighLevel{}).Render(doc); err != nil {
		t.Fatal(err)
	}
	err := doc.Append(&document.TextRun{Text: "late", Size: 12})
	if !errors.Is(err, document.ErrFrozen) {
		t.Errorf("expected ErrFrozen, got %v", err)
	}
}

func TestKind(t *testing.T) {
	for _, k := range []Kind{KindHighLevel, KindObjectGraph, KindPassThrough} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k, got, err)
		}
	}
	if _, err := ParseKind("postscript"); err == nil {
		t.Error("expected an error")
	}
	if _, err := New(Kind(9), nil); err == nil {
		t.Error("expected an error")
	}
}
