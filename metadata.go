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
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"
)

// Metadata is the document level meta information written by all
// renderers.
type Metadata struct {
	Title    string
	Producer string
	Created  time.Time
}

// InfoDict returns the document information dictionary for m.
func (m *Metadata) InfoDict() Dict {
	info := Dict{}
	if m.Title != "" {
		info["Title"] = TextString(m.Title)
	}
	if m.Producer != "" {
		info["Producer"] = TextString(m.Producer)
	}
	if !m.Created.IsZero() {
		info["CreationDate"] = Date(m.Created)
	}
	return info
}

// XMP returns the serialized XMP metadata packet for m.
func (m *Metadata) XMP() ([]byte, error) {
	dc := &xmp.DublinCore{}
	dc.Title.Set(language.MustParse("x-default"), m.Title)

	basic := &xmp.Basic{}
	if !m.Created.IsZero() {
		basic.CreateDate = xmp.NewDate(m.Created)
		basic.ModifyDate = xmp.NewDate(m.Created)
	}

	pdfInfo := &xmpPDF{}
	if m.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(m.Producer)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfInfo)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	err = packet.Write(buf, nil)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MetadataStream returns the /Metadata stream for the document catalog.
func (m *Metadata) MetadataStream() (*Stream, error) {
	data, err := m.XMP()
	if err != nil {
		return nil, err
	}
	stm := &Stream{
		Dict: Dict{
			"Type":    Name("Metadata"),
			"Subtype": Name("XML"),
		},
		Data: data,
	}
	return stm, nil
}

// xmpPDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type xmpPDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}
