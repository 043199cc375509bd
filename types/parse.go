// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package types

import (
	"strconv"
	"strings"

	"github.com/reifydb/reifydb/diag"
)

// ParseBool parses a boolean literal, accepting the case-insensitive forms
// "true"/"false", "t"/"f", "1"/"0". Failure identifies the offending
// fragment via a diagnostic rather than a bare error, per spec.md §4.1.
func ParseBool(s string) (bool, *diag.Diagnostic) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1":
		return true, nil
	case "false", "f", "0":
		return false, nil
	default:
		return false, diag.New(diag.CodeParseBool, "invalid boolean literal").
			WithFragment(diag.Fragment{Text: s})
	}
}

// ParseInt parses a signed integer literal into the widest native width
// (int64); callers narrow with SafeDemote/SafeConvert as needed.
func ParseInt(s string) (int64, *diag.Diagnostic) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, diag.New(diag.CodeParseInteger, "invalid integer literal: "+err.Error()).
			WithFragment(diag.Fragment{Text: s})
	}
	return v, nil
}

// ParseUint parses an unsigned integer literal into the widest native width
// (uint64).
func ParseUint(s string) (uint64, *diag.Diagnostic) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, diag.New(diag.CodeParseInteger, "invalid unsigned integer literal: "+err.Error()).
			WithFragment(diag.Fragment{Text: s})
	}
	return v, nil
}

// ParseFloat parses a floating-point literal into float64, canonicalizing
// NaN per spec.md §4.1.
func ParseFloat(s string) (float64, *diag.Diagnostic) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, diag.New(diag.CodeParseFloat, "invalid float literal: "+err.Error()).
			WithFragment(diag.Fragment{Text: s})
	}
	return CanonicalizeFloat64(v), nil
}
