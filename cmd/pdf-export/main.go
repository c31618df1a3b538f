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

// Pdf-export writes schedule tables and the fixed forms as PDF files.
//
// Usage:
//
//	pdf-export [flags] table records.yaml
//	pdf-export [flags] form meeting-schedule|territory-assignment|service-report
//	pdf-export [flags] passthrough file.pdf
//	pdf-export [flags] base64 file.txt
//
// The path of the written file is printed on standard output.  With
// -stdout, the table is written to standard output instead of a file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"circuitassistant.org/go/pdf/config"
	"circuitassistant.org/go/pdf/document"
	"circuitassistant.org/go/pdf/export"
	"circuitassistant.org/go/pdf/forms"
	"circuitassistant.org/go/pdf/layout"
	"circuitassistant.org/go/pdf/logging"
	"circuitassistant.org/go/pdf/render"
)

type options struct {
	dir          string
	settingsFile string
	backend      string
	title        string
	repeatHeader bool
	fitCells     bool
	compress     bool
	strict       bool
	stdout       bool
	verbose      bool
}

func main() {
	opt := &options{}
	flag.StringVar(&opt.dir, "dir", ".", "output directory")
	flag.StringVar(&opt.settingsFile, "settings", "", "print settings file (YAML or JSON)")
	flag.StringVar(&opt.backend, "backend", "table", "table renderer: table or graph")
	flag.StringVar(&opt.title, "title", "", "title of the schedule")
	flag.BoolVar(&opt.repeatHeader, "repeat-header", false, "repeat the table header on every page")
	flag.BoolVar(&opt.fitCells, "fit", false, "make rows tall enough for every cell")
	flag.BoolVar(&opt.compress, "z", false, "compress content streams")
	flag.BoolVar(&opt.strict, "strict", false, "validate pass-through files")
	flag.BoolVar(&opt.stdout, "stdout", false, "write the table to standard output")
	flag.BoolVar(&opt.verbose, "v", false, "log progress to standard error")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] table|form|passthrough|base64 arg\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if opt.verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	err := run(opt, flag.Arg(0), flag.Arg(1), os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pdf-export:", err)
		os.Exit(1)
	}
}

var errTerminal = errors.New("refusing to write PDF data to a terminal")

func run(opt *options, cmd, arg string, stdout io.Writer) error {
	e := &export.Exporter{
		Dir: opt.dir,
		Layout: &layout.Options{
			Title:        opt.title,
			RepeatHeader: opt.repeatHeader,
			FitCells:     opt.fitCells,
		},
		Render: render.Options{Compress: opt.compress},
		Strict: opt.strict,
	}

	var path string
	switch cmd {
	case "table":
		kind, err := render.ParseKind(opt.backend)
		if err != nil {
			return err
		}
		settings, err := loadSettings(opt.settingsFile)
		if err != nil {
			return err
		}
		records, err := config.LoadRecords(arg)
		if err != nil {
			return err
		}
		if opt.stdout {
			if isTerminal(stdout) {
				return errTerminal
			}
			data, err := e.RenderTable(records, settings, kind)
			if err != nil {
				return err
			}
			_, err = stdout.Write(data)
			return err
		}
		path, err = e.Table(records, settings, kind)
		if err != nil {
			return err
		}
	case "form":
		f, err := forms.ParseForm(arg)
		if err != nil {
			return err
		}
		path, err = e.Form(f)
		if err != nil {
			return err
		}
	case "passthrough":
		data, err := os.ReadFile(arg)
		if err != nil {
			return err
		}
		path, err = e.PassThrough(data)
		if err != nil {
			return err
		}
	case "base64":
		data, err := os.ReadFile(arg)
		if err != nil {
			return err
		}
		path, err = e.PassThroughBase64(string(data))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	_, err := fmt.Fprintln(stdout, path)
	return err
}

func loadSettings(fname string) (*document.PrintSettings, error) {
	if fname == "" {
		settings := document.DefaultSettings()
		return &settings, nil
	}
	return config.LoadSettings(fname)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
