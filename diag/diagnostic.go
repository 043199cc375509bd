// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

// Package diag defines the user-facing diagnostic shape shared by every
// subsystem in the data plane (spec.md §6 "Diagnostics" and §7 "Error
// handling design"). A Diagnostic is not a Go error channel by itself — it
// is the stable, serializable payload other packages attach to their own
// error types or accumulate on an evaluation Context.
package diag

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Fragment identifies the source text a diagnostic refers to. The data
// plane never parses source text itself (out of scope, spec.md §1), but it
// receives resolved expression/program nodes that already carry their
// originating fragment, and must thread it through into diagnostics.
type Fragment struct {
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Code is a stable diagnostic identifier, namespaced per subsystem
// (TAKE_*, AGGREGATE_*, ARITH_*, CAST_*, ...).
type Code string

const (
	CodeArithOverflow      Code = "ARITH_OVERFLOW"
	CodeArithDivByZero     Code = "ARITH_DIVISION_BY_ZERO"
	CodeArithDomainError   Code = "ARITH_DOMAIN_ERROR"
	CodeCastOverflow       Code = "CAST_OVERFLOW"
	CodeCastTruncation     Code = "CAST_TRUNCATION"
	CodeCastNonFinite      Code = "CAST_NON_FINITE"
	CodeParseInteger       Code = "PARSE_INTEGER"
	CodeParseFloat         Code = "PARSE_FLOAT"
	CodeParseBool          Code = "PARSE_BOOL"
	CodeParseTemporal      Code = "PARSE_TEMPORAL"
	CodeTakeInvalidLimit   Code = "TAKE_INVALID_LIMIT"
	CodeAggregateUnknownFn Code = "AGGREGATE_UNKNOWN_FUNCTION"
	CodeWindowInvalidFrame Code = "WINDOW_INVALID_FRAME"
	CodeUpdateTypeMismatch Code = "UPDATE_TYPE_MISMATCH"

	CodeTypeMismatch        Code = "TYPE_MISMATCH"
	CodeColumnNotFound       Code = "COLUMN_NOT_FOUND"
	CodeVariableNotFound     Code = "VARIABLE_NOT_FOUND"
	CodeRowCountMismatch     Code = "ROW_COUNT_MISMATCH"
	CodeUnsupportedOperation Code = "UNSUPPORTED_OPERATION"
)

// Diagnostic is the complete user-facing error payload: a stable code, a
// human message, the offending source fragment, and optional label/help/
// notes (spec.md §6).
type Diagnostic struct {
	Code     Code      `json:"code"`
	Message  string    `json:"message"`
	Fragment *Fragment `json:"fragment,omitempty"`
	Label    string    `json:"label,omitempty"`
	Help     string    `json:"help,omitempty"`
	Notes    []string  `json:"notes,omitempty"`
}

func (d *Diagnostic) Error() string {
	if d.Fragment != nil && d.Fragment.Text != "" {
		return fmt.Sprintf("%s: %s (at %q, line %d col %d)", d.Code, d.Message, d.Fragment.Text, d.Fragment.Line, d.Fragment.Column)
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// JSON renders the diagnostic using goccy/go-json, the fast encoder this
// module carries for diagnostics destined for a consumer outside its scope
// (the CLI / network surface, out of scope here, is where they'd be read).
func (d *Diagnostic) JSON() ([]byte, error) {
	return json.Marshal(d)
}

// New constructs a Diagnostic with no fragment or extras.
func New(code Code, message string) *Diagnostic {
	return &Diagnostic{Code: code, Message: message}
}

// WithFragment returns a copy of d carrying the given fragment.
func (d *Diagnostic) WithFragment(f Fragment) *Diagnostic {
	cp := *d
	cp.Fragment = &f
	return &cp
}

// WithHelp returns a copy of d carrying the given help text.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	cp := *d
	cp.Help = help
	return &cp
}

// WithNotes returns a copy of d carrying the given notes.
func (d *Diagnostic) WithNotes(notes ...string) *Diagnostic {
	cp := *d
	cp.Notes = notes
	return &cp
}
