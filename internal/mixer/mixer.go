// Package mixer sums per-partial PCM sample buffers into a single mixed
// buffer, with optional auto-attenuation.
package mixer

import "math"

// Mix sums buffers of possibly different lengths into a buffer of
// length max(|b_i|), stored in 32-bit signed range. If autoNormalize is
// set and more than one buffer is given, every buffer is right-shifted
// by ceil(log2(N)) bits before summation, where N is the buffer count.
//
// Mix never fails: an empty input yields an empty output, and a buffer
// shorter than the longest contributes nothing past its own end.
func Mix(buffers [][]int32, autoNormalize bool) []int32 {
	maxLen := 0
	for _, b := range buffers {
		if len(b) > maxLen {
			maxLen = len(b)
		}
	}
	out := make([]int32, maxLen)

	shift := 0
	if autoNormalize && len(buffers) > 1 {
		shift = ceilLog2(len(buffers))
	}

	for _, b := range buffers {
		for i, v := range b {
			if shift > 0 {
				v >>= shift
			}
			out[i] += v
		}
	}
	return out
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(n))))
}
