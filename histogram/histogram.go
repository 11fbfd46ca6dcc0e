// Package histogram counts symbol occurrences and measures how compressible
// a text is, for feeding huffman.Build and reporting on its output.
package histogram

import (
	"math"
	mathbits "math/bits"

	"github.com/chronos-tachyon/huffman/v2"
	"golang.org/x/exp/slices"
)

// FromSymbols returns one entry per distinct Symbol of text, in ascending
// Symbol order, with Freq equal to its number of occurrences.  Counts saturate
// at math.MaxUint32.
func FromSymbols(text []huffman.Symbol) []huffman.FrequencyEntry {
	counts := make(map[huffman.Symbol]uint32)
	for _, symbol := range text {
		if counts[symbol] != math.MaxUint32 {
			counts[symbol]++
		}
	}

	out := make([]huffman.FrequencyEntry, 0, len(counts))
	for symbol, freq := range counts {
		out = append(out, huffman.FrequencyEntry{Symbol: symbol, Freq: freq})
	}
	slices.SortFunc(out, func(a, b huffman.FrequencyEntry) int {
		switch {
		case a.Symbol < b.Symbol:
			return -1
		case a.Symbol > b.Symbol:
			return 1
		default:
			return 0
		}
	})
	return out
}

// FromString is FromSymbols over the runes of str.
func FromString(str string) []huffman.FrequencyEntry {
	return FromSymbols(huffman.SymbolsFromString(str))
}

// Total returns the sum of all frequencies.
func Total(frequencies []huffman.FrequencyEntry) uint64 {
	var total uint64
	for _, entry := range frequencies {
		total += uint64(entry.Freq)
	}
	return total
}

// Entropy returns the Shannon entropy of the distribution, in bits per
// symbol.  Entries with a frequency of 0 contribute nothing.
func Entropy(frequencies []huffman.FrequencyEntry) float64 {
	total := Total(frequencies)
	if total == 0 {
		return 0
	}

	var h float64
	for _, entry := range frequencies {
		if entry.Freq == 0 {
			continue
		}
		p := float64(entry.Freq) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// FixedWidthCost returns the number of bits a fixed-width code would spend on
// a text with this histogram: every symbol gets ceil(log2(n)) bits, minimum 1,
// for n distinct symbols.
func FixedWidthCost(frequencies []huffman.FrequencyEntry) uint64 {
	width := uint64(1)
	if n := len(frequencies); n > 2 {
		width = uint64(mathbits.Len64(uint64(n - 1)))
	}
	return width * Total(frequencies)
}
