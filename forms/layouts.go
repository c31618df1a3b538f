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

package forms

import (
	"strings"

	"circuitassistant.org/go/pdf/document"
)

func buildMeetingSchedule(doc *document.Document) error {
	s := mmSheet(doc)
	const fieldWidth = 100

	s.text("MEETING SCHEDULE", document.Bold, 20, 105, 270)
	s.text("Congregation Meeting Information", document.Regular, 12, 70, 260)

	y := 240.0
	s.field("Congregation:", y, fieldWidth)
	y -= 15
	s.field("Week of:", y, fieldWidth)
	y -= 25

	s.text("MIDWEEK MEETING", document.Bold, 13, 20, y)
	y -= 15
	for i, label := range []string{"Date:", "Time:", "Location:", "Chairman:"} {
		if i > 0 {
			y -= 12
		}
		s.field(label, y, fieldWidth)
	}

	y -= 20
	s.text("WEEKEND MEETING", document.Bold, 13, 20, y)
	y -= 15
	for i, label := range []string{"Date:", "Time:", "Speaker:", "Talk Title:"} {
		if i > 0 {
			y -= 12
		}
		s.field(label, y, fieldWidth)
	}

	s.text(footerText, document.Regular, 8, 60, 20)
	return s.Err
}

func buildServiceReport(doc *document.Document) error {
	s := mmSheet(doc)
	const fieldWidth = 110

	s.text("FIELD SERVICE REPORT", document.Bold, 20, 60, 270)
	s.text("Monthly Activity Summary", document.Regular, 12, 70, 260)

	y := 240.0
	for i, label := range []string{"Name:", "Month:", "Congregation:"} {
		if i > 0 {
			y -= 12
		}
		s.field(label, y, fieldWidth)
	}

	y -= 20
	s.text("MINISTRY ACTIVITY", document.Bold, 13, 20, y)
	y -= 15
	activity := []string{"Hours:", "Publications:", "Videos Shown:", "Return Visits:", "Bible Studies:"}
	for i, label := range activity {
		if i > 0 {
			y -= 12
		}
		s.field(label, y, fieldWidth)
	}

	y -= 20
	s.text("MEETING ATTENDANCE", document.Bold, 13, 20, y)
	y -= 15
	s.checkbox("Attended Midweek Meeting", 20, y)
	y -= 10
	s.checkbox("Attended Weekend Meeting", 20, y)

	s.text(footerText, document.Regular, 8, 60, 20)
	return s.Err
}

// territoryFields lists the body of the territory assignment form.
// Empty entries are vertical gaps.
var territoryFields = []string{
	"Territory Number: ________________",
	"Publisher Name: __________________",
	"Date Assigned: ___________________",
	"Date Completed: __________________",
	"",
	"ASSIGNMENT DETAILS",
	"",
	"Description: _____________________",
	"_____________________________________",
	"",
	"Boundaries: ______________________",
	"_____________________________________",
	"",
	"Special Notes: ___________________",
	"_____________________________________",
	"_____________________________________",
}

func buildTerritoryAssignment(doc *document.Document) error {
	s := ptSheet(doc)

	s.text("TERRITORY ASSIGNMENT", document.Bold, 20, 100, 750)
	s.text("Territory Record", document.Regular, 12, 150, 730)

	y := 680.0
	for _, field := range territoryFields {
		switch {
		case field == "":
			y -= 10
		case strings.ToUpper(field) == field && !strings.HasPrefix(field, "_"):
			// section heading
			s.text(field, document.Bold, 13, 50, y)
			y -= 20
		default:
			s.text(field, document.Regular, 11, 50, y)
			y -= 15
		}
	}

	s.text(footerText, document.Regular, 8, 200, 50)
	return s.Err
}
