/*
fen.go implements conversions between Forsyth-Edwards Notation strings and
positions.  The halfmove clock and fullmove counter are consumed but not
recorded: the core does not track them.
*/

package fission

import (
	"fmt"
	"strings"
)

// InitialPos is the FEN of the standard starting position.
const InitialPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

/*
SetFromFEN resets the position and fills it from the given FEN string,
returning the number of bytes consumed.  It is the caller's responsibility
to validate the string: a malformed FEN leaves the position partially
filled and must be treated as a fatal input error.
*/
func SetFromFEN(p *Position, fen string) int {
	for c := range 2 {
		for t := range 6 {
			p.pieces[c][t] = 0
		}
	}
	for s := range p.board {
		p.board[s] = NoPiece
	}
	for i := range p.history {
		p.history[i].entry = allCastlingMask
		p.history[i].epSquare = NoSquare
		p.history[i].captured = noCapture
	}

	p.sideToMove = ColorWhite
	p.ply = 0
	p.hash = 0

	i := 0

	// Piece placement, ranks 8 down to 1.
	square := SA8
	for i < len(fen) && fen[i] != ' ' {
		c := fen[i]
		i++
		switch {
		case c >= '1' && c <= '8':
			square += Square(c - '0')
		case c == '/':
			square -= 16
		default:
			piece := charToPiece(c)
			if piece == NoPiece || square < SA1 || square > SH8 {
				return i
			}
			p.putPiece(pieceToType[piece], pieceToColor[piece], square)
			square++
		}
	}
	i++

	// Active color.
	if i < len(fen) && fen[i] == 'b' {
		p.sideToMove = ColorBlack
	}
	i += 2

	// Castling rights.  history[0].entry starts with every home square
	// marked as departed; each right clears its mask again.
	for i < len(fen) && fen[i] != ' ' {
		switch fen[i] {
		case 'K':
			p.history[0].entry &^= ooMask[ColorWhite]
		case 'Q':
			p.history[0].entry &^= oooMask[ColorWhite]
		case 'k':
			p.history[0].entry &^= ooMask[ColorBlack]
		case 'q':
			p.history[0].entry &^= oooMask[ColorBlack]
		}
		i++
	}
	i++

	// En passant target square.
	if i+1 < len(fen) && fen[i] >= 'a' && fen[i] <= 'h' &&
		fen[i+1] >= '1' && fen[i+1] <= '8' {
		p.history[0].epSquare = stringToSquare(fen[i], fen[i+1])
	}
	for i < len(fen) && fen[i] != ' ' {
		i++
	}
	i++

	// Halfmove clock, consumed and ignored.
	for i < len(fen) && fen[i] != ' ' {
		i++
	}
	i++

	// Fullmove counter, consumed and ignored.
	for i < len(fen) && fen[i] != ' ' {
		i++
	}

	return min(i, len(fen))
}

// FEN serializes the position.  The clock fields the core does not track
// are emitted as "0 1".
func (p *Position) FEN() string {
	var b strings.Builder
	b.Grow(64)

	emptySquares := 0
	for rank := 7; rank >= 0; rank-- {
		emptySquares = 0
		for file := range 8 {
			piece := p.board[rank*8+file]
			if piece == NoPiece {
				emptySquares++
				continue
			}
			if emptySquares > 0 {
				b.WriteByte('0' + byte(emptySquares))
				emptySquares = 0
			}
			b.WriteByte(pieceToChar[piece])
		}
		if emptySquares > 0 {
			b.WriteByte('0' + byte(emptySquares))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	if p.sideToMove == ColorWhite {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}

	entry := p.history[p.ply].entry
	rights := 0
	if entry&ooMask[ColorWhite] == 0 {
		b.WriteByte('K')
		rights++
	}
	if entry&oooMask[ColorWhite] == 0 {
		b.WriteByte('Q')
		rights++
	}
	if entry&ooMask[ColorBlack] == 0 {
		b.WriteByte('k')
		rights++
	}
	if entry&oooMask[ColorBlack] == 0 {
		b.WriteByte('q')
		rights++
	}
	if rights == 0 {
		b.WriteByte('-')
	}

	b.WriteByte(' ')
	b.WriteString(squareToString[p.history[p.ply].epSquare])
	b.WriteString(" 0 1")

	return b.String()
}

// String renders the position as a board diagram with the bookkeeping
// state attached.  Debugging helper.
func (p *Position) String() string {
	var b strings.Builder

	b.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&b, " %d ", rank+1)
		for file := range 8 {
			fmt.Fprintf(&b, " %c", pieceToChar[p.board[rank*8+file]])
		}
		b.WriteByte('\n')
	}
	b.WriteString("\n     a b c d e f g h\n\n")

	side := "white"
	if p.sideToMove == ColorBlack {
		side = "black"
	}
	fmt.Fprintf(&b, "Side to move:       %s\n", side)
	fmt.Fprintf(&b, "Ply:                %d\n", p.ply)
	fmt.Fprintf(&b, "En passant square:  %s\n", squareToString[p.history[p.ply].epSquare])
	fmt.Fprintf(&b, "Zobrist hash:       %d\n", p.hash)
	fmt.Fprintf(&b, "FEN:                %s\n", p.FEN())

	return b.String()
}
