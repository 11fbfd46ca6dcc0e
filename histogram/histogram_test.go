package histogram

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/huffman/v2"
)

func TestFromString(t *testing.T) {
	freqs := FromString("DCBACDBDCD")
	require.Equal(t, []huffman.FrequencyEntry{
		{Symbol: 'A', Freq: 1},
		{Symbol: 'B', Freq: 2},
		{Symbol: 'C', Freq: 3},
		{Symbol: 'D', Freq: 4},
	}, freqs)
	require.Equal(t, uint64(10), Total(freqs))

	require.Empty(t, FromString(""))
}

func TestEntropy(t *testing.T) {
	type testRow struct {
		name   string
		text   string
		expect float64
	}

	testData := [...]testRow{
		{"empty", "", 0},
		{"constant", "aaaa", 0},
		{"fair coin", "abab", 1},
		{"uniform 8", "abcdefgh", 3},
		{"skewed", "ABBCCCDDDD", 1.8464393446710154},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			require.InDelta(t, row.expect, Entropy(FromString(row.text)), 1e-9)
		})
	}
}

func TestHuffmanBeatsFixedWidth(t *testing.T) {
	freqs := FromString("ABBCCCDDDD")
	require.Equal(t, uint64(20), FixedWidthCost(freqs))

	_, table, err := huffman.Build(freqs)
	require.NoError(t, err)

	coded, err := table.WeightedSize(freqs)
	require.NoError(t, err)
	require.Equal(t, uint64(19), coded)
	require.LessOrEqual(t, coded, FixedWidthCost(freqs))

	// Shannon's bound: average length is at least the entropy.
	require.GreaterOrEqual(t, float64(coded)/float64(Total(freqs)), Entropy(freqs))
}

func TestFixedWidthCost(t *testing.T) {
	require.Equal(t, uint64(3), FixedWidthCost(FromString("aaa")))
	require.Equal(t, uint64(4), FixedWidthCost(FromString("abab")))
	require.Equal(t, uint64(6), FixedWidthCost(FromString("abc")))
	require.Equal(t, uint64(36), FixedWidthCost(FromString("abcdefghi")))
}
