// Copyright 2026 The Verstr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Verstr compares two strings in version-string order and prints the
// comparison symbol ("<", "=" or ">").
//
// Usage:
//
//	verstr [flags] STRING1 STRING2
//
// The flags are:
//
//	-t
//	    use the total order, breaking zero-padding ties
//	-leftmost
//	    use the leftmost total order (incompatible with -t and -k)
//	-k
//	    print the sort keys of both strings instead of comparing
//	-v
//	    trace comparison steps to stderr
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/yoiwa/verstr"
)

var (
	total    = flag.Bool("t", false, "use the total order, breaking zero-padding ties")
	leftmost = flag.Bool("leftmost", false, "use the leftmost total order")
	keys     = flag.Bool("k", false, "print the sort keys of both strings instead of comparing")
	verbose  = flag.Bool("v", false, "trace comparison steps to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] STRING1 STRING2\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 || (*leftmost && (*total || *keys)) {
		flag.Usage()
		os.Exit(2)
	}
	a, b := flag.Arg(0), flag.Arg(1)

	if *keys {
		fmt.Printf("%q\n%q\n", verstr.SortKey(a, *total), verstr.SortKey(b, *total))
		return
	}

	mode := verstr.Default
	switch {
	case *total:
		mode = verstr.Total
	case *leftmost:
		mode = verstr.LeftmostTotal
	}
	var trace verstr.Tracer
	if *verbose {
		trace = log.New(os.Stderr, "verstr: ", 0).Printf
	}
	fmt.Println(verstr.CompareTrace(a, b, mode, trace).Symbol())
}
