// Copyright 2026 The Verstr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verstr

import (
	"strconv"
	"strings"
)

// keySep separates the character channel of a total-order sort key from
// the trailing zero-count channel. Literal NUL bytes in the input are
// escaped as keySep + '~' so that a key that continues past the point
// where another key ends always sorts after it.
const keySep = "\x00"

// SortKey returns a key for s such that comparing two keys with plain
// lexicographic string comparison gives the same result as [Compare] on
// the original strings: Default mode when total is false, Total mode
// when total is true.
//
// With total false, strings that differ only in digit-run zero-padding
// map to the same key. With total true the key additionally records the
// leading-zero count of every digit run, separated from the main key by
// a NUL byte, so that distinct strings always get distinct keys.
//
// Keys produced with different values of total, or by different releases
// of this package, are not mutually comparable and must not be mixed in
// one sorted collection. There is no key form for LeftmostTotal.
func SortKey(s string, total bool) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	var zeroCounts []int

	i := 0
	for i < len(s) {
		p := i
		for i < len(s) && !isDigit(s[i]) {
			i++
		}
		if total {
			b.WriteString(strings.ReplaceAll(s[p:i], keySep, keySep+"~"))
		} else {
			b.WriteString(s[p:i])
		}
		if i == len(s) {
			break
		}

		// Digit run. Leading zeros only feed the tie-break channel;
		// the significant digits are encoded as a number. The count is
		// stored negated so that heavier padding sorts lower, matching
		// Compare's Total mode.
		p = i
		for i < len(s) && s[i] == '0' {
			i++
		}
		zeroCounts = append(zeroCounts, -(i - p + 1))
		p = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		b.WriteString(sortableInt(s[p:i], true, ""))
	}

	if !total {
		return b.String()
	}
	b.WriteString(keySep)
	for _, zc := range zeroCounts {
		b.WriteString(sortableInt(strconv.Itoa(zc), true, ""))
	}
	return b.String()
}
