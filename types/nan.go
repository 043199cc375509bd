// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package types

import "math"

// CanonicalNaN32 and CanonicalNaN64 are the single bit patterns every NaN
// float is rewritten to at column ingest (spec.md §4.1: "NaN is coerced to a
// single canonical bit pattern at column ingest"). Index encoding (C4) then
// treats this exact pattern as the maximum value of its type, giving
// deterministic total ordering; relational kernels (C5) never see it
// specially and fall back to IEEE 754 comparison semantics (NaN is
// unordered, so relational comparisons against it are always false), per
// the resolved Open Question in spec.md §9.
var (
	CanonicalNaN32 = math.Float32frombits(0x7fc00000)
	CanonicalNaN64 = math.Float64frombits(0x7ff8000000000000)
)

// CanonicalizeFloat32 rewrites any NaN payload to CanonicalNaN32, leaving
// every other value (including +/-Inf) untouched.
func CanonicalizeFloat32(f float32) float32 {
	if f != f {
		return CanonicalNaN32
	}
	return f
}

// CanonicalizeFloat64 rewrites any NaN payload to CanonicalNaN64, leaving
// every other value (including +/-Inf) untouched.
func CanonicalizeFloat64(f float64) float64 {
	if f != f {
		return CanonicalNaN64
	}
	return f
}
