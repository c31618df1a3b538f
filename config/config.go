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

// Package config reads print settings and schedule records from files.
//
// Both YAML and JSON files are accepted, since every JSON document is also
// a valid YAML document.  Settings which are missing from a file keep
// their default values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"circuitassistant.org/go/pdf"
	"circuitassistant.org/go/pdf/document"
	"circuitassistant.org/go/pdf/layout"
)

// ReadSettings decodes print settings from r.  Fields which are not
// present keep the values from document.DefaultSettings.  An empty input
// gives the default settings.
func ReadSettings(r io.Reader) (*document.PrintSettings, error) {
	settings := document.DefaultSettings()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&settings)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, pdf.Wrap(pdf.StageInput, "read settings", err)
	}

	err = settings.Validate()
	if err != nil {
		return nil, pdf.Wrap(pdf.StageInput, "read settings", err)
	}
	return &settings, nil
}

// LoadSettings reads print settings from the named file.
func LoadSettings(fname string) (*document.PrintSettings, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, pdf.Wrap(pdf.StageIO, "load settings", err)
	}
	settings, err := ReadSettings(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return settings, nil
}

// recordFile is the alternative layout of a records file, where the list
// is stored under a "records" key.
type recordFile struct {
	Records []layout.Record `yaml:"records"`
}

// ReadRecords decodes a list of schedule records from r.  The input is
// either a sequence of records, or a mapping with the sequence stored
// under the key "records".
func ReadRecords(r io.Reader) ([]layout.Record, error) {
	var node yaml.Node
	err := yaml.NewDecoder(r).Decode(&node)
	if errors.Is(err, io.EOF) {
		return nil, nil
	} else if err != nil {
		return nil, pdf.Wrap(pdf.StageInput, "read records", err)
	}

	var records []layout.Record
	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	switch root.Kind {
	case yaml.SequenceNode:
		err = root.Decode(&records)
	case yaml.MappingNode:
		var file recordFile
		err = root.Decode(&file)
		records = file.Records
	default:
		err = fmt.Errorf("line %d: expected a list of records", root.Line)
	}
	if err != nil {
		return nil, pdf.Wrap(pdf.StageInput, "read records", err)
	}
	return records, nil
}

// LoadRecords reads schedule records from the named file.
func LoadRecords(fname string) ([]layout.Record, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, pdf.Wrap(pdf.StageIO, "load records", err)
	}
	records, err := ReadRecords(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return records, nil
}
