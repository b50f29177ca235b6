// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package lcsk

import "math"

// symbol constrains the integer widths suffix array construction can run
// over. The adapter in gsa.go picks the narrowest width that fits the
// combined alphabet, and the recursion below does the same for reduced texts.
type symbol interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// sais constructs the suffix array of text using the SA-IS algorithm.
// The last symbol of text must be the unique smallest symbol in it, and every
// symbol must be below alphaSize. Returns suffix start positions in
// lexicographical order.
func sais[T symbol](text []T, alphaSize int) []int32 {
	n := len(text)
	sa := make([]int32, n)
	if n == 0 {
		return sa
	}
	if n == 1 {
		sa[0] = 0
		return sa
	}

	types := classify(text)
	lms := lmsPositions(types)
	freq := frequency(text, alphaSize)
	bucket := make([]int32, alphaSize)

	// First pass sorts the LMS substrings: place them unsorted at their
	// bucket ends and induce.
	clearSA(sa)
	induceSort(text, sa, freq, bucket, types, lms)

	// The induced order lists LMS substrings sorted; read them off.
	sortedLMS := make([]int32, 0, len(lms))
	for _, p := range sa {
		if isLMS(types, p) {
			sortedLMS = append(sortedLMS, p)
		}
	}

	names, numNames := summarise(text, types, lms, sortedLMS)

	// Sort the LMS suffixes: recurse on the named text when names repeat,
	// otherwise the names already give the order directly.
	ordered := make([]int32, len(lms))
	if numNames < len(lms) {
		reducedSA := saisReduced(names, numNames)
		for i, r := range reducedSA {
			ordered[i] = lms[r]
		}
	} else {
		for i, name := range names {
			ordered[name] = lms[i]
		}
	}

	clearSA(sa)
	induceSort(text, sa, freq, bucket, types, ordered)
	return sa
}

// saisReduced recurses on the reduced text of LMS names, converted to the
// narrowest symbol width holding numNames. Name counts are bounded by the
// int32 position space, so a 64-bit alphabet can never be required.
func saisReduced(names []int32, numNames int) []int32 {
	switch {
	case numNames <= math.MaxUint8:
		return sais(convert[uint8](names), numNames)
	case numNames <= math.MaxUint16:
		return sais(convert[uint16](names), numNames)
	default:
		return sais(convert[uint32](names), numNames)
	}
}

func convert[T symbol](names []int32) []T {
	out := make([]T, len(names))
	for i, v := range names {
		out[i] = T(v)
	}
	return out
}

// classify marks each position S-type (true) or L-type (false). The last
// position is S-type; equal symbols inherit the type of their right neighbour.
func classify[T symbol](text []T) []bool {
	n := len(text)
	types := make([]bool, n)
	types[n-1] = true
	for i := n - 2; i >= 0; i-- {
		if text[i] < text[i+1] {
			types[i] = true
		} else if text[i] == text[i+1] {
			types[i] = types[i+1]
		}
	}
	return types
}

// lmsPositions collects S-type positions with an L-type left neighbour, in
// text order.
func lmsPositions(types []bool) []int32 {
	var lms []int32
	for i := 1; i < len(types); i++ {
		if types[i] && !types[i-1] {
			lms = append(lms, int32(i))
		}
	}
	return lms
}

func isLMS(types []bool, p int32) bool {
	return p > 0 && types[p] && !types[p-1]
}

// frequency counts occurrences per symbol.
func frequency[T symbol](text []T, alphaSize int) []int32 {
	freq := make([]int32, alphaSize)
	for _, c := range text {
		freq[c]++
	}
	return freq
}

// bucketStart fills bucket with the first index of each symbol's bucket.
func bucketStart(freq, bucket []int32) {
	var offset int32
	for i, n := range freq {
		bucket[i] = offset
		offset += n
	}
}

// bucketEnd fills bucket with the last index of each symbol's bucket.
func bucketEnd(freq, bucket []int32) {
	var offset int32
	for i, n := range freq {
		offset += n
		bucket[i] = offset - 1
	}
}

func clearSA(sa []int32) {
	for i := range sa {
		sa[i] = -1
	}
}

// induceSort runs one full induced-sorting pass over sa, which must be
// cleared beforehand: LMS positions are placed at their bucket ends in
// reverse order, then L-types are induced left to right from bucket starts
// and S-types right to left from bucket ends.
func induceSort[T symbol](text []T, sa, freq, bucket []int32, types []bool, lms []int32) {
	bucketEnd(freq, bucket)
	for i := len(lms) - 1; i >= 0; i-- {
		p := lms[i]
		c := int(text[p])
		sa[bucket[c]] = p
		// The lowest bucket's end pointer drops to -1 once the bucket is
		// exhausted; nothing is placed there afterwards.
		bucket[c]--
	}

	bucketStart(freq, bucket)
	for r := 0; r < len(sa); r++ {
		p := sa[r]
		if p <= 0 {
			continue // undefined entry, or position 0 with no predecessor
		}
		if !types[p-1] {
			c := int(text[p-1])
			sa[bucket[c]] = p - 1
			bucket[c]++
		}
	}

	bucketEnd(freq, bucket)
	for r := len(sa) - 1; r >= 0; r-- {
		p := sa[r]
		if p <= 0 {
			continue
		}
		if types[p-1] {
			c := int(text[p-1])
			sa[bucket[c]] = p - 1
			bucket[c]--
		}
	}
}

// summarise assigns names to the LMS substrings in their sorted order, equal
// substrings sharing a name, and returns the names in text order together
// with the name count.
func summarise[T symbol](text []T, types []bool, lms, sortedLMS []int32) ([]int32, int) {
	ord := make([]int32, len(types))
	for i, p := range lms {
		ord[p] = int32(i)
	}

	names := make([]int32, len(lms))
	var name int32
	prev := int32(-1)
	for _, p := range sortedLMS {
		if prev >= 0 && !equalLMS(text, types, prev, p) {
			name++
		}
		names[ord[p]] = name
		prev = p
	}
	return names, int(name) + 1
}

// equalLMS reports whether the LMS substrings starting at i and j match
// symbol for symbol up to and including their next LMS boundary.
func equalLMS[T symbol](text []T, types []bool, i, j int32) bool {
	for k := int32(0); ; k++ {
		if text[i+k] != text[j+k] {
			return false
		}
		lmsI := isLMS(types, i+k)
		lmsJ := isLMS(types, j+k)
		if lmsI != lmsJ {
			return false // boundaries fall at different offsets
		}
		if k > 0 && lmsI {
			return true
		}
	}
}
