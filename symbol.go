package huffman

import (
	"math"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// FrequencyEntry pairs a Symbol with the number of times it was observed.
type FrequencyEntry struct {
	Symbol Symbol
	Freq   uint32
}

// SymbolsFromString converts each rune of str into a Symbol.
func SymbolsFromString(str string) []Symbol {
	out := make([]Symbol, 0, len(str))
	for _, ch := range str {
		out = append(out, Symbol(ch))
	}
	return out
}

// StringFromSymbols is the inverse of SymbolsFromString.
func StringFromSymbols(text []Symbol) string {
	runes := make([]rune, len(text))
	for index, symbol := range text {
		runes[index] = rune(symbol)
	}
	return string(runes)
}

// SymbolsFromBytes converts each byte of data into a Symbol.
func SymbolsFromBytes(data []byte) []Symbol {
	out := make([]Symbol, len(data))
	for index, b := range data {
		out[index] = Symbol(b)
	}
	return out
}
