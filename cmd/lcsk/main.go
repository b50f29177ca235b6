// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Command lcsk finds the longest byte sequence present as a contiguous
// substring in at least K of the given files and prints its length together
// with one occurrence offset per containing file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dsnet/golib/strconv"
	"github.com/nekitakamenev/lcsk"
)

const kDefault = 2

func main() {
	var k int
	flag.IntVar(&k, "k", kDefault, "minimum number of files the substring must be present in")
	flag.IntVar(&k, "min-files", kDefault, "minimum number of files the substring must be present in")
	verbose := flag.Bool("v", false, "report input sizes before searching")
	flag.Usage = usage
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		usage()
		os.Exit(2)
	}

	labels := make([]string, 0, len(paths))
	data := make([][]uint16, 0, len(paths))
	total := 0
	for _, p := range paths {
		stream, err := lcsk.ReadFileAndPreprocess(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading file %s: %v\n", p, err)
			continue
		}
		labels = append(labels, p)
		data = append(data, stream)
		total += len(stream) - 1
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "searching %d files, %sB\n",
			len(data), strconv.FormatPrefix(float64(total), strconv.Base1024, 2))
	}

	res, err := lcsk.Compute(labels, data, k)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("LCS found with length %d\n", res.Length)
	for _, o := range res.Offsets {
		fmt.Printf("-> in %s at %d\n", o.Label, o.Offset)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-k N] [-v] file...\n", os.Args[0])
	flag.PrintDefaults()
}
