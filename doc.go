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

// Package pdf builds PDF files as in-memory object graphs.
//
// A [Graph] holds the indirect objects of a file, keyed by object number.
// Files are built in two passes: numbers for all objects which will be
// referred to are allocated first, and the object bodies are filled in
// afterwards:
//
//	g := pdf.NewGraph(pdf.V1_4)
//	catalog := g.Alloc()
//	pages := g.Alloc()
//	err := g.Set(catalog, pdf.Dict{
//		"Type":  pdf.Name("Catalog"),
//		"Pages": pages,
//	})
//	... install the page tree as object pages ...
//	g.SetRoot(catalog)
//	data, err := g.Bytes()
//
// [Graph.Bytes] checks that no reference is left dangling before writing
// the objects, the cross-reference table and the trailer.
//
// The following types implement the native PDF object types.
// All of these implement the [Object] interface:
//
//	Array
//	Bool
//	Dict
//	Integer
//	Name
//	Real
//	Reference
//	Stream
//	String
//
// Errors from the renderers and the exporter are reported as [*Error]
// values, which record the stage of the pipeline which failed.
package pdf
