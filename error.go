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
	"errors"
)

// ErrEmptyInput is reported when a pre-rendered PDF buffer is empty.
var ErrEmptyInput = errors.New("empty input")

// Stage identifies the part of the export pipeline in which an error
// occurred.
type Stage int

// These are the stages reported in an [Error].
const (
	// StageResource covers fonts and other resources which could not be
	// created or found.
	StageResource Stage = iota + 1

	// StageEncoding covers text runs and content streams which could not be
	// serialized.
	StageEncoding

	// StageIO covers failures to create or write the destination file.
	StageIO

	// StageInput covers empty or malformed input data.
	StageInput
)

func (s Stage) String() string {
	switch s {
	case StageResource:
		return "resource"
	case StageEncoding:
		return "encoding"
	case StageIO:
		return "I/O"
	case StageInput:
		return "invalid input"
	default:
		return "unknown stage"
	}
}

// Error is the error type returned by the renderers and the exporter.
type Error struct {
	Stage Stage
	Op    string
	Err   error
}

func (err *Error) Error() string {
	msg := err.Stage.String()
	if err.Op != "" {
		msg += ": " + err.Op
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Wrap returns an *Error for the given stage, or nil if err is nil.
// If err already carries a stage, it is returned unchanged.
func Wrap(stage Stage, op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Stage: stage, Op: op, Err: err}
}

// StageOf returns the stage recorded in err.
// The second return value is false, if err does not contain an *Error.
func StageOf(err error) (Stage, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Stage, true
	}
	return 0, false
}
