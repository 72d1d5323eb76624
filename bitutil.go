/*
bitutil.go implements the bit utilities the move generator is built on.
*/

package fission

import (
	"math/bits"
	"strings"
)

// squareBB maps a square index to its singleton bitboard.  NoSquare maps to
// the empty bitboard, so masking an absent square is a no-op.
var squareBB = initSquareBB()

func initSquareBB() (t [65]uint64) {
	for s := range 64 {
		t[s] = 1 << s
	}
	return t
}

// countBits returns the number of bits set within the bitboard.
func countBits(bitboard uint64) int {
	return bits.OnesCount64(bitboard)
}

// bitScan returns the index of the LSB within the bitboard.
// The result is undefined for the empty bitboard.
func bitScan(bitboard uint64) Square {
	return bits.TrailingZeros64(bitboard)
}

// popLSB removes the LSB from the bitboard and returns its index.
func popLSB(bitboard *uint64) Square {
	lsb := bits.TrailingZeros64(*bitboard)
	*bitboard &= *bitboard - 1
	return lsb
}

// BitboardString renders a bitboard as an 8x8 diagram.  Debugging helper.
func BitboardString(bitboard uint64) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte('1' + byte(rank))
		for file := range 8 {
			if bitboard&squareBB[rank*8+file] != 0 {
				b.WriteString(" #")
			} else {
				b.WriteString(" .")
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("  a b c d e f g h\n")

	return b.String()
}
