// Copyright 2026 The Verstr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verstr

// Compare compares a and b in version-string order under mode m and
// reports which one is larger.
//
// Maximal digit runs facing each other at the same scan position are
// compared numerically; all other bytes, digits included, are compared
// by byte value. A string that is a strict prefix of the other is the
// smaller one. Some orderings that hold in every mode:
//
//	"0A" < "A0" < "AA" < "AB" < "ABC"
//	"3" < "20" < "100"
//	"A3D" < "A20C" < "A100B"
//	"2.7" < "2.7.90" < "2.15.8" < "2.20.1"
//
// Zero-padding of a digit run never changes its value, so under Default
// "2.015.8" == "2.15.08". Total and LeftmostTotal additionally order
// such pairs; see [Mode].
func Compare(a, b string, m Mode) Result {
	return CompareTrace(a, b, m, nil)
}

// Less reports whether a sorts strictly before b under the Default mode.
func Less(a, b string) bool {
	return Compare(a, b, Default) == Right
}

// CompareTrace is like [Compare] but reports cursor-level progress to
// trace when trace is non-nil.
func CompareTrace(l, r string, m Mode, trace Tracer) Result {
	lp, rp := 0, 0

	// Latched result of the first zero-padding difference seen anywhere
	// in the scan. Consulted only by Total, and only when everything
	// else compares equal.
	tieBreak := Equal

	for {
		if trace != nil {
			trace("main: %d %d", lp, rp)
		}
		switch {
		case lp == len(l) && rp == len(r):
			if m == Total {
				return tieBreak
			}
			return Equal
		case lp == len(l):
			// l is a strict prefix of r.
			return Right
		case rp == len(r):
			return Left
		}

		if isDigit(l[lp]) && isDigit(r[rp]) {
			// Leading zeros present on both sides carry no information
			// at all; skip them in lockstep.
			for lp < len(l) && l[lp] == '0' && rp < len(r) && r[rp] == '0' {
				lp++
				rp++
			}

			// One-sided leading zeros: the more padded side is locally
			// the smaller one. The two loops are mutually exclusive.
			zeros := Equal
			for lp < len(l) && l[lp] == '0' {
				zeros = Right
				lp++
			}
			for rp < len(r) && r[rp] == '0' {
				zeros = Left
				rp++
			}
			if trace != nil && zeros != Equal {
				trace("zeros: %d %d bias=%v", lp, rp, zeros)
			}

			// Walk the significant digits of both runs in lockstep,
			// remembering only the first differing pair. The walk
			// continues past a difference to find the true run lengths.
			digits := Equal
			for lp < len(l) && isDigit(l[lp]) && rp < len(r) && isDigit(r[rp]) {
				if digits == Equal && l[lp] != r[rp] {
					if l[lp] > r[rp] {
						digits = Left
					} else {
						digits = Right
					}
				}
				lp++
				rp++
			}

			// A longer run of significant digits is a larger number.
			if lp < len(l) && isDigit(l[lp]) {
				if trace != nil {
					trace("digits: left run longer")
				}
				return Left
			}
			if rp < len(r) && isDigit(r[rp]) {
				if trace != nil {
					trace("digits: right run longer")
				}
				return Right
			}

			if digits != Equal {
				if trace != nil {
					trace("digits: same length, first differing digit %v", digits)
				}
				return digits
			}
			if zeros != Equal {
				if m == LeftmostTotal {
					return zeros
				}
				// Only the first padding difference of the whole scan
				// is latched; later runs cannot override it.
				if tieBreak == Equal {
					tieBreak = zeros
				}
			}
			continue
		}

		// Plain byte comparison. A digit facing a non-digit lands here
		// too: the digit byte is ordered by its value, with no numeric
		// interpretation.
		if l[lp] != r[rp] {
			if l[lp] > r[rp] {
				return Left
			}
			return Right
		}
		lp++
		rp++
	}
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
