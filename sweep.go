// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package lcsk

import "math"

// streamIndex returns the stream owning text position pos, or ok=false when
// pos is a sentinel position. Sentinel positions are sorted, so a linear scan
// stays cheap at the call sites, which all walk the suffix array once.
func streamIndex(pos int32, sentinelPos []int32) (int, bool) {
	i := 0
	for pos > sentinelPos[i] {
		i++
	}
	if sentinelPos[i] == pos {
		return 0, false
	}
	return i, true
}

// computeL0 returns one past the largest suffix array index whose tail still
// covers suffixes from at least k distinct streams. No K-good window can
// start at or beyond the returned bound.
func computeL0(sa, sentinelPos []int32, k int) int {
	n := len(sa)
	present := make([]bool, len(sentinelPos))
	nStrings := make([]int, n)
	distinct := 0
	for i := n - 1; i >= 0; i-- {
		if si, ok := streamIndex(sa[i], sentinelPos); ok {
			if !present[si] {
				present[si] = true
				distinct++
			}
			nStrings[i] = distinct
		} else {
			// Sentinel rows never bound the sweep.
			nStrings[i] = k + 1
		}
	}
	for i, c := range nStrings {
		if c < k {
			return i
		}
	}
	return n
}

// computeDeltas slides the K-good window across left edges [numStreams, l0)
// and records its bounds for each. The first numStreams suffix array entries
// are the sentinels themselves and are skipped. Requires l0 > numStreams.
func computeDeltas(numStreams, l0, k int, sa, sentinelPos []int32) (deltaL, deltaR []int32) {
	m := l0 - numStreams
	deltaL = make([]int32, m)
	deltaR = make([]int32, m)
	counters := make([]int32, numStreams)
	nonzero := 0

	add := func(saIdx int) {
		if si, ok := streamIndex(sa[saIdx], sentinelPos); ok {
			if counters[si] == 0 {
				nonzero++
			}
			counters[si]++
		}
	}
	remove := func(saIdx int) {
		if si, ok := streamIndex(sa[saIdx], sentinelPos); ok {
			counters[si]--
			if counters[si] == 0 {
				nonzero--
			}
		}
	}

	deltaL[0] = int32(numStreams)
	add(numStreams)
	r := numStreams + 1
	for nonzero < k {
		add(r)
		r++
	}
	deltaR[0] = int32(r)

	for j := 1; j < m; j++ {
		i := numStreams + j
		deltaL[j] = int32(i)
		remove(i - 1)
		for nonzero < k {
			add(r)
			r++
		}
		deltaR[j] = int32(r)
	}
	return deltaL, deltaR
}

// maxMinLCP returns the index of the window whose minimum LCP over
// lcp[L+1..R) is maximal, together with that minimum. Ties keep the earliest
// window. Windows of size one have no interior LCP entry and are skipped;
// they cannot occur for k >= 2.
func maxMinLCP(deltaL, deltaR, lcp []int32) (maxi int, maxv int32) {
	for i := range deltaL {
		min := int32(math.MaxInt32)
		for j := deltaL[i] + 1; j < deltaR[i]; j++ {
			if lcp[j] < min {
				min = lcp[j]
			}
		}
		if min == math.MaxInt32 {
			continue
		}
		if min > maxv {
			maxv = min
			maxi = i
		}
	}
	return maxi, maxv
}
