package lcsk

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// naiveLCP recomputes each adjacent-suffix LCP directly, halting at either
// side's terminator.
func naiveLCP(text []uint16, sa []int32) []int32 {
	lcp := make([]int32, len(sa))
	if len(sa) == 0 {
		return lcp
	}
	lcp[0] = -1
	for r := 1; r < len(sa); r++ {
		p, q := int(sa[r-1]), int(sa[r])
		var l int32
		for p+int(l) < len(text) && q+int(l) < len(text) &&
			text[p+int(l)] == text[q+int(l)] &&
			text[p+int(l)] != terminator && text[q+int(l)] != terminator {
			l++
		}
		lcp[r] = l
	}
	return lcp
}

func TestLCPSentinelAware(t *testing.T) {
	tests := map[string]struct {
		inputs []string
	}{
		"single stream": {
			inputs: []string{"banana"},
		},
		"two streams": {
			inputs: []string{"banana", "anan"},
		},
		"identical streams": {
			inputs: []string{"abab", "abab", "abab"},
		},
		"repetitive": {
			inputs: []string{"aaaa", "aa"},
		},
		"empty stream in the middle": {
			inputs: []string{"ab", "", "ab"},
		},
		"mixed alphanumeric": {
			inputs: []string{"093AB", "0AB435AB", "0C093CABB"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			combined, _ := concat(preprocessAll(tc.inputs))
			sa := buildGSA(combined, len(tc.inputs))
			assert.Equal(t, naiveLCP(combined, sa), lcpSentinelAware(combined, sa))
		})
	}
}

func TestLCPSentinelAwareRandom(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			streams := [][]uint16{
				genRandText(200, 3, seed),
				genRandText(150, 3, seed+100),
				genRandText(100, 3, seed+200),
			}
			combined, _ := concat(streams)
			sa := buildGSA(combined, len(streams))
			assert.Equal(t, naiveLCP(combined, sa), lcpSentinelAware(combined, sa))
		})
	}
}

// Matches may never extend across a sentinel: suffixes of different streams
// sharing a full stream tail must stop at the stream boundary.
func TestLCPStopsAtSentinel(t *testing.T) {
	combined, sentinelPos := concat(preprocessAll([]string{"xab", "ab"}))
	sa := buildGSA(combined, 2)
	lcp := lcpSentinelAware(combined, sa)

	for r := 1; r < len(sa); r++ {
		for _, side := range []int32{sa[r-1], sa[r]} {
			for l := int32(0); l < lcp[r]; l++ {
				_, ok := streamIndex(side+l, sentinelPos)
				assert.True(t, ok, "lcp[%d] crosses a sentinel", r)
			}
		}
	}
}
