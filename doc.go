// Package huffman builds Huffman codes from observed symbol frequencies and
// uses them to encode and decode symbol streams.
//
// Build merges the two least frequent nodes until one root remains, assigns
// every leaf its root-to-leaf path as a codeword, and returns the Tree (used
// for decoding) together with the CodeTable (used for encoding).
// BuildCanonical does the same but reassigns the codewords canonically.
//
// The receiver is assumed to hold the same Tree as the sender; only the bit
// stream is ever serialized.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	<https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
package huffman
