// Copyright 2026 The Verstr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verstr

import (
	"strconv"

	"github.com/yoiwa/verstr/internal/derrors"
)

// minimalSymbol encodes the empty string in non-integer mode. It sorts
// below "0", so below every non-empty encoding, and never appears as a
// prefix of one.
const minimalSymbol = "%"

// EncodeInt encodes a decimal integer, given as a digit string with an
// optional leading '-', into a self-delimiting string whose lexicographic
// order equals the numeric order of the inputs:
//
//	EncodeInt("3") < EncodeInt("20") < EncodeInt("100")
//
// Leading zeros are ignored; the empty string encodes as zero. The digit
// count may be arbitrarily large: lengths of ten or more digits are
// handled by recursively encoding the length itself, so the scheme never
// runs out of room. For negative numbers the output is '-' followed by
// the 9's complement of the magnitude's encoding, which keeps more
// negative numbers sorting lower.
//
// If digits contains any byte other than decimal digits and the optional
// leading sign, EncodeInt reports an error wrapping
// [derrors.InvalidInput].
func EncodeInt(digits string) (_ string, err error) {
	defer derrors.Wrap(&err, "EncodeInt(%q)", digits)

	s := digits
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return "", derrors.InvalidInput
		}
	}
	return sortableInt(digits, true, ""), nil
}

// sortableInt implements the order-preserving self-delimiting encoding
// behind [EncodeInt] and [SortKey]. Callers must have validated s; a
// non-digit byte in integer mode silently corrupts the output.
//
// In integer mode the scheme is:
//
//	(1) zero and single digits gain a '0' prefix: 0 -> "00", 7 -> "07"
//	(2) up to nine digits gain a (count-1) prefix: 10 -> "110", 100 -> "2100"
//	(3) ten or more digits start with '9' followed by the recursive
//	    encoding of (count-10), then the digits: 1000000000 -> "9001000000000"
//	(4) negative numbers encode the magnitude, complement every decimal
//	    digit (d -> 9-d) and take a '-' prefix: -42 -> "-857"
//
// With integer false, s is treated as an opaque string: no sign, no zero
// stripping, only the length prefix of rules (1)-(3). Shorter strings
// then sort below longer ones and byte order is kept within a length;
// the empty string becomes minimalSymbol.
//
// sep, when non-empty, is interleaved between the structural parts to
// make debug output readable. The result is still self-delimiting for a
// known sep, but sorts correctly only against encodings using the same
// sep.
func sortableInt(s string, integer bool, sep string) string {
	if s == "" {
		if integer {
			return "00"
		}
		return minimalSymbol
	}
	neg := false
	if integer && s[0] == '-' {
		neg = true
		s = s[1:]
		if s == "" {
			return "00"
		}
	}
	if integer {
		p := 0
		for p < len(s) && s[p] == '0' {
			p++
		}
		if p == len(s) {
			return "00"
		}
		s = s[p:]
	}

	var enc string
	if len(s) <= 9 {
		enc = string('0'+byte(len(s)-1)) + sep + s
	} else {
		lparen, rparen := "", ""
		if sep != "" {
			lparen, rparen = "(", ")"
		}
		enc = "9" + sep + lparen + sortableInt(strconv.Itoa(len(s)-10), true, sep) + rparen + s
	}
	if neg {
		return "-" + complement9(enc)
	}
	return enc
}

// complement9 replaces every decimal digit d in s with 9-d, leaving all
// other bytes untouched.
func complement9(s string) string {
	b := []byte(s)
	for i, c := range b {
		if isDigit(c) {
			b[i] = '0' + ('9' - c)
		}
	}
	return string(b)
}
