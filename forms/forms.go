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

// Package forms builds the fixed single-page forms: the meeting
// schedule, the territory assignment record and the field service report.
//
// All forms are A4 pages in portrait orientation.  The meeting schedule
// and the service report are laid out in millimetres and rendered through
// the high-level backend; the territory assignment is laid out in PDF
// units and rendered as a compressed object graph.
package forms

import (
	"fmt"
	"strings"

	"circuitassistant.org/go/pdf/document"
	"circuitassistant.org/go/pdf/render"
)

// Form identifies one of the fixed forms.
type Form int

// The available forms.
const (
	MeetingSchedule Form = iota
	TerritoryAssignment
	ServiceReport
)

// All lists the available forms.
var All = []Form{MeetingSchedule, TerritoryAssignment, ServiceReport}

type formInfo struct {
	name     string
	title    string
	fileName string
	kind     render.Kind
	compress bool
	build    func(d *document.Document) error
}

var formTable = map[Form]*formInfo{
	MeetingSchedule: {
		name:     "meeting-schedule",
		title:    "Meeting Schedule",
		fileName: "MeetingSchedule.pdf",
		kind:     render.KindHighLevel,
		build:    buildMeetingSchedule,
	},
	TerritoryAssignment: {
		name:     "territory-assignment",
		title:    "Territory Assignment",
		fileName: "TerritoryAssignment.pdf",
		kind:     render.KindObjectGraph,
		compress: true,
		build:    buildTerritoryAssignment,
	},
	ServiceReport: {
		name:     "service-report",
		title:    "Field Service Report",
		fileName: "ServiceReport.pdf",
		kind:     render.KindHighLevel,
		build:    buildServiceReport,
	},
}

func (f Form) info() *formInfo {
	info, ok := formTable[f]
	if !ok {
		panic(fmt.Sprintf("invalid form %d", int(f)))
	}
	return info
}

func (f Form) String() string {
	if info, ok := formTable[f]; ok {
		return info.name
	}
	return fmt.Sprintf("forms.Form(%d)", int(f))
}

// ParseForm converts a form name, as returned by Form.String, to a Form.
func ParseForm(name string) (Form, error) {
	for _, f := range All {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown form %q", name)
}

// Title returns the document title of the form.
func (f Form) Title() string {
	return f.info().title
}

// FileName returns the name of the file the form is exported to.
func (f Form) FileName() string {
	return f.info().fileName
}

// Backend returns the renderer kind used for the form.
func (f Form) Backend() render.Kind {
	return f.info().kind
}

// Compress reports whether the content streams of the form are compressed.
func (f Form) Compress() bool {
	return f.info().compress
}

// Build lays out the form.  The returned document has exactly one page.
func (f Form) Build() (*document.Document, error) {
	info, ok := formTable[f]
	if !ok {
		return nil, fmt.Errorf("invalid form %d", int(f))
	}

	doc := document.New(info.title)
	settings := pageSettings()
	_, err := doc.AddPage(&settings)
	if err != nil {
		return nil, err
	}
	err = info.build(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", info.name, err)
	}
	doc.Freeze()
	return doc, nil
}

func pageSettings() document.PrintSettings {
	settings := document.DefaultSettings()
	settings.PageSize = document.A4
	settings.Orientation = document.Portrait
	return settings
}

const footerText = "Circuit Assistant Mobile Companion"
