// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package lcsk finds the longest byte sequence occurring as a contiguous
// substring in at least K of N input streams. It builds a generalised suffix
// array over the sentinel-separated concatenation of the streams with SA-IS,
// derives a sentinel-aware LCP array, and sweeps a window that always covers
// suffixes from at least K distinct streams, maximising the window's minimum
// LCP.
package lcsk

import (
	"fmt"
	"math"
)

// Offset reports one occurrence of the winning substring inside a stream.
type Offset struct {
	Label  string
	Offset int
}

// Result holds the length of the longest substring common to at least K
// streams, and one occurrence per containing stream in input order. A zero
// length carries no offsets.
type Result struct {
	Length  int
	Offsets []Offset
}

// Compute finds the longest substring present in at least k of the given
// streams. Each stream must be in the form produced by Preprocess: every
// byte incremented by one, with a single trailing terminator.
func Compute(labels []string, data [][]uint16, k int) (Result, error) {
	if len(labels) != len(data) {
		return Result{}, fmt.Errorf("lcsk: %d labels for %d streams", len(labels), len(data))
	}
	if k < 1 {
		return Result{}, fmt.Errorf("lcsk: min-files must be positive, got %d", k)
	}
	if len(data) < k {
		return Result{}, fmt.Errorf("lcsk: need at least %d streams, got %d", k, len(data))
	}

	numStreams := len(data)
	total := 0
	for i, s := range data {
		if len(s) == 0 || s[len(s)-1] != terminator {
			return Result{}, fmt.Errorf("lcsk: stream %q is not preprocessed", labels[i])
		}
		total += len(s)
	}
	if total > math.MaxInt32 {
		return Result{}, fmt.Errorf("lcsk: combined input of %d symbols exceeds the index range", total)
	}

	combined := make([]uint16, 0, total)
	sentinelPos := make([]int32, 0, numStreams)
	fileStarts := make([]int32, 0, numStreams)
	for _, s := range data {
		fileStarts = append(fileStarts, int32(len(combined)))
		combined = append(combined, s...)
		sentinelPos = append(sentinelPos, int32(len(combined)-1))
	}

	sa := buildGSA(combined, numStreams)
	lcp := lcpSentinelAware(combined, sa)

	l0 := computeL0(sa, sentinelPos, k)
	if l0 <= numStreams {
		// Fewer than k streams carry any content at all.
		return Result{}, nil
	}

	deltaL, deltaR := computeDeltas(numStreams, l0, k, sa, sentinelPos)
	maxi, maxv := maxMinLCP(deltaL, deltaR, lcp)
	if maxv == 0 {
		return Result{}, nil
	}

	return Result{
		Length:  int(maxv),
		Offsets: offsetsInDelta(labels, fileStarts, sentinelPos, sa, deltaL[maxi], deltaR[maxi]),
	}, nil
}

// offsetsInDelta translates the winning window into one occurrence offset per
// stream present in it, in input order. When a stream occurs several times in
// the window, later hits overwrite earlier ones; any occurrence is valid.
func offsetsInDelta(labels []string, fileStarts, sentinelPos, sa []int32, l, r int32) []Offset {
	hit := make([]bool, len(labels))
	offs := make([]int32, len(labels))
	for i := l; i < r; i++ {
		if si, ok := streamIndex(sa[i], sentinelPos); ok {
			hit[si] = true
			offs[si] = sa[i] - fileStarts[si]
		}
	}
	var out []Offset
	for i, ok := range hit {
		if ok {
			out = append(out, Offset{labels[i], int(offs[i])})
		}
	}
	return out
}
