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
	"encoding/base64"
	"strings"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"circuitassistant.org/go/pdf"
	"circuitassistant.org/go/pdf/document"
	"circuitassistant.org/go/pdf/logging"
)

// PassThrough returns a PDF file which was rendered elsewhere.
// No layout takes place; the document passed to Render is ignored.
type PassThrough struct {
	Data []byte

	// Strict enables a structural check of Data.  Otherwise Data is only
	// checked to be non-empty.
	Strict bool
}

// Render implements the Renderer interface.
// The returned slice is Data itself.
func (r *PassThrough) Render(_ *document.Document) ([]byte, error) {
	if len(r.Data) == 0 {
		return nil, pdf.Wrap(pdf.StageInput, "pass-through", pdf.ErrEmptyInput)
	}
	if r.Strict {
		if err := Validate(r.Data); err != nil {
			return nil, err
		}
	}
	logging.Logger().Debug("pass-through",
		"bytes", len(r.Data),
		"strict", r.Strict)
	return r.Data, nil
}

// DecodeBase64 decodes a base64 encoded PDF file, optionally given as a
// "data:" URL.
func DecodeBase64(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, pdf.Wrap(pdf.StageInput, "decode base64", pdf.ErrEmptyInput)
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, pdf.Wrap(pdf.StageInput, "decode base64", err)
	}
	if len(data) == 0 {
		return nil, pdf.Wrap(pdf.StageInput, "decode base64", pdf.ErrEmptyInput)
	}
	return data, nil
}

var disableConfigDir sync.Once

// validationConfig returns a pdfcpu configuration which does not touch the
// user's configuration directory.
func validationConfig() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	return model.NewDefaultConfiguration()
}

// Validate checks the structure of a PDF file using pdfcpu.
func Validate(data []byte) error {
	err := api.Validate(bytes.NewReader(data), validationConfig())
	if err != nil {
		return pdf.Wrap(pdf.StageInput, "validate PDF", err)
	}
	return nil
}

// PageCount returns the number of pages of a PDF file.
func PageCount(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), validationConfig())
	if err != nil {
		return 0, pdf.Wrap(pdf.StageInput, "count pages", err)
	}
	return n, nil
}
