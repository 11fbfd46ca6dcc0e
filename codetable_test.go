package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func classicFrequencies() []FrequencyEntry {
	return []FrequencyEntry{
		{Symbol: 0, Freq: 5},
		{Symbol: 1, Freq: 9},
		{Symbol: 2, Freq: 12},
		{Symbol: 3, Freq: 13},
		{Symbol: 4, Freq: 16},
		{Symbol: 5, Freq: 45},
	}
}

func TestCodeTable_Dump(t *testing.T) {
	_, table, err := Build(abcFrequencies())
	require.NoError(t, err)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 2\n",
		"\tEncode(97) = \"1\"\n",
		"\tEncode(98) = \"00\"\n",
		"\tEncode(99) = \"01\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodeTable_Sizes(t *testing.T) {
	_, table, err := Build(classicFrequencies())
	require.NoError(t, err)

	require.Equal(t, map[Symbol]byte{0: 4, 1: 4, 2: 3, 3: 3, 4: 3, 5: 1}, table.SizeBySymbol())
	require.Equal(t, []Symbol{0, 1, 2, 3, 4, 5}, table.Symbols())
	require.Equal(t, byte(1), table.MinSize())
	require.Equal(t, byte(4), table.MaxSize())
	require.Equal(t, byte(3), table.FixedWidthSize())
	require.Equal(t, "(Huffman code with 6 symbols, with coded lengths of 1 .. 4 bits)", table.String())

	// 5×4 + 9×4 + 12×3 + 13×3 + 16×3 + 45×1
	total, err := table.WeightedSize(classicFrequencies())
	require.NoError(t, err)
	require.Equal(t, uint64(224), total)
	require.Less(t, total, uint64(100*3))
}

func TestCodeTable_PrefixFree(t *testing.T) {
	for name, freqs := range map[string][]FrequencyEntry{
		"abc":     abcFrequencies(),
		"classic": classicFrequencies(),
		"uniform": {{'w', 1}, {'x', 1}, {'y', 1}, {'z', 1}, {'!', 1}},
		"zeroes":  {{'p', 0}, {'q', 0}, {'r', 3}},
	} {
		t.Run(name, func(t *testing.T) {
			_, table, err := Build(freqs)
			require.NoError(t, err)

			symbols := table.Symbols()
			require.Len(t, symbols, len(freqs))
			for _, i := range symbols {
				a, err := table.Lookup(i)
				require.NoError(t, err)
				require.NotZero(t, a.Size)
				for _, j := range symbols {
					if i == j {
						continue
					}
					b, err := table.Lookup(j)
					require.NoError(t, err)
					require.False(t, b.HasPrefix(a), "code %s for %d is a prefix of code %s for %d", a, i, b, j)
				}
			}
		})
	}
}

func TestCodeTable_UnknownSymbol(t *testing.T) {
	_, table, err := Build(abcFrequencies())
	require.NoError(t, err)

	_, err = table.Lookup('z')
	require.ErrorIs(t, err, ErrUnknownSymbol)

	_, err = table.WeightedSize([]FrequencyEntry{{'a', 1}, {'z', 1}})
	require.ErrorIs(t, err, ErrUnknownSymbol)

	var empty *CodeTable
	_, err = empty.Lookup('a')
	require.ErrorIs(t, err, ErrUnknownSymbol)
	require.Equal(t, 0, empty.Len())
}

// caterpillarTree returns a tree whose every internal node has a leaf as its
// right child, so that symbols 0 and 1 sit at depth numSymbols-1.
func caterpillarTree(numSymbols int) *Tree {
	nodes := make([]node, 0, 2*numSymbols-1)
	for symbol := 0; symbol < numSymbols; symbol++ {
		nodes = append(nodes, node{freq: 1, symbol: Symbol(symbol), left: noChild, right: noChild})
	}
	nodes = append(nodes, node{freq: 2, symbol: InvalidSymbol, left: 0, right: 1})
	for leaf := 2; leaf < numSymbols; leaf++ {
		prev := int32(len(nodes) - 1)
		nodes = append(nodes, node{freq: nodes[prev].freq + 1, symbol: InvalidSymbol, left: prev, right: int32(leaf)})
	}
	return &Tree{nodes: nodes, root: int32(len(nodes) - 1)}
}

func TestCodeTable_MaxCodeSize(t *testing.T) {
	tree := caterpillarTree(MaxCodeSize + 1)
	table, err := newCodeTable(tree)
	require.NoError(t, err)
	require.Equal(t, byte(1), table.MinSize())
	require.Equal(t, byte(MaxCodeSize), table.MaxSize())

	hc, err := table.Lookup(1)
	require.NoError(t, err)
	require.Equal(t, MakeCode(MaxCodeSize, 1), hc)

	text := []Symbol{0, 1, MaxCodeSize, 7}
	stream, err := Encode(table, text)
	require.NoError(t, err)
	decoded, err := Decode(tree, stream)
	require.NoError(t, err)
	require.Equal(t, text, decoded)
}

func TestCodeTable_CodeTooLong(t *testing.T) {
	table, err := newCodeTable(caterpillarTree(MaxCodeSize + 2))
	require.ErrorIs(t, err, ErrCodeTooLong)
	require.Nil(t, table)
}
