// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package lcsk

import "math"

// terminator is the shared end-of-stream token in preprocessed streams. The
// transform below turns each of its occurrences into a distinct sentinel.
const terminator uint16 = 0

// buildGSA constructs the suffix array of the sentinel-separated
// concatenation of numStreams preprocessed streams. The i-th terminator
// occurrence becomes sentinel numStreams-1-i, so every sentinel is distinct
// and smaller than every real symbol. The symbol width is the narrowest that
// holds the alphabet plus the sentinels.
func buildGSA(combined []uint16, numStreams int) []int32 {
	rt := newRankTransform(combined)
	switch alphaSize := rt.size() + numStreams; {
	case alphaSize <= math.MaxUint8:
		return sais(transformText[uint8](combined, rt, numStreams), alphaSize)
	case alphaSize <= math.MaxUint16:
		return sais(transformText[uint16](combined, rt, numStreams), alphaSize)
	default:
		return sais(transformText[uint32](combined, rt, numStreams), alphaSize)
	}
}

// transformText maps the concatenation to its dense rank text. Terminator
// occurrences count down from numSentinels-1; real symbols move to
// rank+numSentinels-1, which keeps them above every sentinel because the
// terminator is the smallest observed symbol and holds rank 0.
func transformText[T symbol](text []uint16, rt *rankTransform, numSentinels int) []T {
	offset := int32(numSentinels - 1)
	out := make([]T, len(text))
	s := int32(numSentinels)
	for i, c := range text {
		if c == terminator {
			s--
			out[i] = T(s)
		} else {
			out[i] = T(rt.rank(c) + offset)
		}
	}
	return out
}
