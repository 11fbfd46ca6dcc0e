package huffman

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// fixedWidthSize returns the number of bits a fixed-width code needs to give
// each of n symbols a distinct codeword.
func fixedWidthSize(n int) byte {
	if n <= 2 {
		return 1
	}
	return byte(log2uint32(uint32(n - 1)))
}

// saturatingAdd returns a+b, or math.MaxUint32 if the sum overflows.
func saturatingAdd(a, b uint32) uint32 {
	sum, carry := mathbits.Add32(a, b, 0)
	if carry != 0 {
		return ^uint32(0)
	}
	return sum
}
