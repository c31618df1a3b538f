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

// Package export renders documents and stores them as files.
//
// Every file is first written to a temporary file in the target directory,
// which is renamed into place after it has been closed successfully.  If
// anything fails, the temporary file is removed and an existing file of
// the same name is left untouched.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"circuitassistant.org/go/pdf"
	"circuitassistant.org/go/pdf/document"
	"circuitassistant.org/go/pdf/forms"
	"circuitassistant.org/go/pdf/layout"
	"circuitassistant.org/go/pdf/logging"
	"circuitassistant.org/go/pdf/render"
)

// File names used for the exported documents.
const (
	PrintListFile      = "PrintList.pdf"
	PrintListTableFile = "PrintList_Table.pdf"
	PrintListGraphFile = "PrintList_Graph.pdf"
)

// Exporter writes PDF files into a directory.
type Exporter struct {
	// Dir is the directory the files are written to.  It is created if
	// necessary.  The empty string denotes the current directory.
	Dir string

	// Layout configures the title block of printed tables.
	Layout *layout.Options

	// Render is passed to the renderers.  The Data field is ignored.
	Render render.Options

	// Strict enables structural validation of pass-through data.
	Strict bool
}

// TableFileName returns the name of the file a table rendered by the given
// backend is written to.
func TableFileName(kind render.Kind) (string, error) {
	switch kind {
	case render.KindHighLevel:
		return PrintListTableFile, nil
	case render.KindObjectGraph:
		return PrintListGraphFile, nil
	default:
		return "", fmt.Errorf("backend %s cannot render tables", kind)
	}
}

// RenderTable lays out the records and renders them, without writing a
// file.
func (e *Exporter) RenderTable(records []layout.Record, settings *document.PrintSettings, kind render.Kind) ([]byte, error) {
	if _, err := TableFileName(kind); err != nil {
		return nil, err
	}

	doc, err := layout.Plan(records, settings, e.Layout)
	if err != nil {
		return nil, err
	}

	opt := e.Render
	opt.Data = nil
	r, err := render.New(kind, &opt)
	if err != nil {
		return nil, err
	}
	return r.Render(doc)
}

// Table writes the records as a table and returns the absolute path of
// the new file.
func (e *Exporter) Table(records []layout.Record, settings *document.PrintSettings, kind render.Kind) (string, error) {
	name, err := TableFileName(kind)
	if err != nil {
		return "", err
	}
	data, err := e.RenderTable(records, settings, kind)
	if err != nil {
		return "", err
	}
	return e.write(name, data)
}

// Form writes one of the fixed forms and returns the absolute path of the
// new file.
func (e *Exporter) Form(f forms.Form) (string, error) {
	doc, err := f.Build()
	if err != nil {
		return "", err
	}

	opt := e.Render
	opt.Data = nil
	opt.Compress = f.Compress()
	r, err := render.New(f.Backend(), &opt)
	if err != nil {
		return "", err
	}
	data, err := r.Render(doc)
	if err != nil {
		return "", err
	}
	return e.write(f.FileName(), data)
}

// PassThrough writes a PDF file which was rendered elsewhere, byte for
// byte.  Empty data is rejected and no file is written.
func (e *Exporter) PassThrough(data []byte) (string, error) {
	r, err := render.New(render.KindPassThrough, &render.Options{
		Data:   data,
		Strict: e.Strict,
	})
	if err != nil {
		return "", err
	}
	out, err := r.Render(nil)
	if err != nil {
		return "", err
	}
	return e.write(PrintListFile, out)
}

// PassThroughBase64 is like PassThrough, but takes a base64 encoded PDF
// file, optionally as a "data:" URL.
func (e *Exporter) PassThroughBase64(s string) (string, error) {
	data, err := render.DecodeBase64(s)
	if err != nil {
		return "", err
	}
	return e.PassThrough(data)
}

func (e *Exporter) dir() (string, error) {
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", pdf.Wrap(pdf.StageIO, "resolve directory", err)
	}
	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return "", pdf.Wrap(pdf.StageIO, "create directory", err)
	}
	return dir, nil
}

// write stores data in the file name inside the export directory.
func (e *Exporter) write(name string, data []byte) (string, error) {
	dir, err := e.dir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)

	err = writeFileAtomic(path, data)
	if err != nil {
		return "", pdf.Wrap(pdf.StageIO, "write "+name, err)
	}

	logging.Logger().Info("exported PDF",
		"path", path,
		"bytes", len(data))
	return path, nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	fd, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmpName := fd.Name()
	defer func() {
		if err != nil {
			fd.Close()
			os.Remove(tmpName)
		}
	}()

	_, err = fd.Write(data)
	if err != nil {
		return err
	}
	err = fd.Sync()
	if err != nil {
		return err
	}
	err = fd.Close()
	if err != nil {
		return err
	}
	err = os.Chmod(tmpName, 0o644)
	if err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
