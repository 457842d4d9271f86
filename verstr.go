// Copyright 2026 The Verstr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package verstr compares strings in version-string order. Maximal runs
// of ASCII digits are treated as numbers and compared by value, while
// everything else is compared byte by byte. For example:
//
//	"abc-2.3" < "abc-2.20" < "def-2.3"
//	"3" < "20" < "100"
//
// Besides the three-way comparator, the package can derive a sort key
// for a string: an opaque string whose plain lexicographic order
// reproduces the comparator's order. Sort keys let version-string order
// be used with sort routines, indexes and databases that only understand
// lexicographic comparison.
//
// Only the ASCII digits '0'-'9' are treated as numeric. All other bytes,
// including multi-byte UTF-8 sequences, compare by their byte values.
package verstr

// A Result is the outcome of a three-way comparison. The numeric values
// are fixed: Left is +1, Equal is 0, Right is -1. Callers may rely on
// them when treating a Result as a conventional signed comparator value.
type Result int

const (
	// Right means the second argument is the larger one.
	Right Result = -1
	// Equal means neither argument is larger.
	Equal Result = 0
	// Left means the first argument is the larger one.
	Left Result = 1

	// LessThan and GreaterThan alias Right and Left for callers that
	// read the result relative to the first argument.
	LessThan    = Right
	GreaterThan = Left
)

func (r Result) String() string {
	switch {
	case r < 0:
		return "Right"
	case r > 0:
		return "Left"
	}
	return "Equal"
}

// Symbol returns "<", "=" or ">" describing how the first argument of
// the comparison relates to the second.
func (r Result) Symbol() string {
	switch {
	case r < 0:
		return "<"
	case r > 0:
		return ">"
	}
	return "="
}

// A Mode selects one of the orderings implemented by Compare.
type Mode int

const (
	// Default treats strings that differ only in the zero-padding of
	// their digit runs as equal: "2.007" == "2.7".
	Default Mode = iota

	// Total orders every pair of distinct strings. Content is compared
	// as in Default; when that leaves the strings equal, the first digit
	// run (in scan order) whose zero-padding differs breaks the tie,
	// with more padding zeros sorting lower: "A00" < "A0".
	Total

	// LeftmostTotal resolves a zero-padding difference immediately at
	// the digit run where it is first found instead of deferring it to
	// the end of the scan. The resulting order is total but inconsistent
	// with Total; results and keys from the two must not be mixed.
	LeftmostTotal
)

func (m Mode) String() string {
	switch m {
	case Total:
		return "Total"
	case LeftmostTotal:
		return "LeftmostTotal"
	}
	return "Default"
}

// Compare makes a Mode usable directly as the comparison function of
// [slices.SortFunc] and friends.
func (m Mode) Compare(a, b string) int {
	return int(CompareTrace(a, b, m, nil))
}

// A Tracer receives progress events from CompareTrace, printf-style.
// A nil Tracer disables tracing. Tracing is always passed explicitly;
// the package keeps no global debug state.
type Tracer func(format string, args ...any)
