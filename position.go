/*
position.go defines the Position structure and the make/unmake primitives
shared by both rule sets.  The capture handling that differs between them
lives in position_standard.go and position_atomic.go.
*/

package fission

// MaxPly bounds the history stack: no game driven through MakeMove/UndoMove
// may exceed it.
const MaxPly = 256

// Castling masks.  A set bit in undoInfo.entry means the square has been
// departed from (or landed on), so `entry & mask == 0` is exactly "neither
// the king nor the relevant rook has ever moved or been captured at home".
var (
	ooMask  = [2]uint64{0x90, 0x9000000000000000}
	oooMask = [2]uint64{0x11, 0x1100000000000000}

	// Squares between the king and the castling rook.
	ooBlockersMask  = [2]uint64{0x60, 0x6000000000000000}
	oooBlockersMask = [2]uint64{0xE, 0xE00000000000000}

	// The b-file square must be empty for O-O-O but may be attacked:
	// the king never crosses it.
	oooIgnoreDanger = [2]uint64{0xFFFFFFFFFFFFFFFD, 0xFDFFFFFFFFFFFFFF}
)

// Home squares of both kings and all four rooks.
const allCastlingMask uint64 = 0x9100000000000091

// Rank masks indexed by the moving color.  doublePushRank doubles as the
// pre-promotion rank of the opponent.
var (
	epRank         = [2]uint64{0xFF00000000, 0xFF000000}
	doublePushRank = [2]uint64{0xFF00, 0xFF000000000000}
)

/*
undoInfo records everything MakeMove destroys, per ply.  entry accumulates
the origin and destination squares of every move played, which idempotently
revokes castling rights whenever a king or rook leaves, or is captured on,
its home square.  The type of captured depends on the rule set: a single
Piece in standard mode, a 4-bit packed piece list in atomic mode.
*/
type undoInfo struct {
	entry    uint64
	epSquare Square
	captured capturedInfo
}

// Position represents a chessboard state.  Mutate it only through MakeMove
// and UndoMove; a Position belongs to a single goroutine.
type Position struct {
	pieces     [2][6]uint64
	board      [64]Piece
	sideToMove Color
	ply        int
	hash       uint64
	history    [MaxPly]undoInfo
}

// SideToMove returns the color to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Ply returns the number of moves played since the position was set up.
func (p *Position) Ply() int { return p.ply }

// Hash returns the Zobrist hash of the piece placement.  Side to move,
// castling rights, and the en passant square are not folded in.
func (p *Position) Hash() uint64 { return p.hash }

// PieceAt returns the piece standing on the given square, or NoPiece.
func (p *Position) PieceAt(s Square) Piece { return p.board[s] }

// EnPassantSquare returns the current en passant target, or NoSquare.
func (p *Position) EnPassantSquare() Square { return p.history[p.ply].epSquare }

// occupancy returns the union of all piece bitboards of one color.
func (p *Position) occupancy(c Color) uint64 {
	b := &p.pieces[c]
	return b[Pawn] | b[Knight] | b[Bishop] | b[Rook] | b[Queen] | b[King]
}

// putPiece adds the piece to the specified square.
func (p *Position) putPiece(pt PieceType, c Color, s Square) {
	piece := typeToPiece[c][pt]
	p.board[s] = piece
	p.pieces[c][pt] |= squareBB[s]
	p.hash ^= zobristTable[piece][s]
}

// removePiece removes whatever piece is on the specified square.
// The square must be occupied.
func (p *Position) removePiece(s Square) {
	piece := p.board[s]
	p.hash ^= zobristTable[piece][s]
	p.pieces[pieceToColor[piece]][pieceToType[piece]] &^= squareBB[s]
	p.board[s] = NoPiece
}

// movePiece moves the piece on from to to, capturing whatever stands there.
// The destination square must be occupied.
func (p *Position) movePiece(from, to Square) {
	moved, captured := p.board[from], p.board[to]
	p.hash ^= zobristTable[moved][from] ^ zobristTable[moved][to] ^
		zobristTable[captured][to]

	mask := squareBB[from] | squareBB[to]
	p.pieces[pieceToColor[moved]][pieceToType[moved]] ^= mask
	p.pieces[pieceToColor[captured]][pieceToType[captured]] &^= mask
	p.board[to] = moved
	p.board[from] = NoPiece
}

// movePieceQuiet moves the piece on from to to.  The destination square
// must be empty.
func (p *Position) movePieceQuiet(from, to Square) {
	moved := p.board[from]
	p.hash ^= zobristTable[moved][from] ^ zobristTable[moved][to]

	p.pieces[pieceToColor[moved]][pieceToType[moved]] ^= squareBB[from] | squareBB[to]
	p.board[to] = moved
	p.board[from] = NoPiece
}

// epVictimSquare returns the square of the pawn captured en passant when a
// pawn of color c lands on the en passant target square.
func epVictimSquare(to Square, c Color) Square {
	if c == ColorWhite {
		return to - 8
	}
	return to + 8
}

/*
MakeMove applies the move to the position.  The move must come from
GenLegalMoves for the current position; applying anything else has
undefined behavior.
*/
func (p *Position) MakeMove(m Move) {
	c := p.sideToMove

	p.sideToMove ^= ColorBlack
	p.ply++

	h := &p.history[p.ply]
	h.entry = p.history[p.ply-1].entry | squareBB[m.From] | squareBB[m.To]
	h.epSquare = NoSquare
	h.captured = noCapture

	switch m.Flag {
	case MoveQuiet:
		p.movePieceQuiet(m.From, m.To)

	case MoveDoublePush:
		p.movePieceQuiet(m.From, m.To)
		// The skipped square becomes the en passant target for one ply.
		if c == ColorWhite {
			h.epSquare = m.From + 8
		} else {
			h.epSquare = m.From - 8
		}

	case MoveCastleKing:
		if c == ColorWhite {
			p.movePieceQuiet(SE1, SG1)
			p.movePieceQuiet(SH1, SF1)
		} else {
			p.movePieceQuiet(SE8, SG8)
			p.movePieceQuiet(SH8, SF8)
		}

	case MoveCastleQueen:
		if c == ColorWhite {
			p.movePieceQuiet(SE1, SC1)
			p.movePieceQuiet(SA1, SD1)
		} else {
			p.movePieceQuiet(SE8, SC8)
			p.movePieceQuiet(SA8, SD8)
		}

	case MoveEnPassant:
		p.playEnPassant(m, c)

	case MovePromoKnight, MovePromoBishop, MovePromoRook, MovePromoQueen:
		p.removePiece(m.From)
		p.putPiece(m.promoType(), c, m.To)

	case MovePromoCaptureKnight, MovePromoCaptureBishop,
		MovePromoCaptureRook, MovePromoCaptureQueen:
		p.playPromoCapture(m, c)

	case MoveCapture:
		p.playCapture(m, c)
	}
}

// UndoMove exactly inverts MakeMove: the position, its hash included, is
// restored bit for bit.
func (p *Position) UndoMove(m Move) {
	p.sideToMove ^= ColorBlack
	c := p.sideToMove

	switch m.Flag {
	case MoveQuiet, MoveDoublePush:
		p.movePieceQuiet(m.To, m.From)

	case MoveCastleKing:
		if c == ColorWhite {
			p.movePieceQuiet(SG1, SE1)
			p.movePieceQuiet(SF1, SH1)
		} else {
			p.movePieceQuiet(SG8, SE8)
			p.movePieceQuiet(SF8, SH8)
		}

	case MoveCastleQueen:
		if c == ColorWhite {
			p.movePieceQuiet(SC1, SE1)
			p.movePieceQuiet(SD1, SA1)
		} else {
			p.movePieceQuiet(SC8, SE8)
			p.movePieceQuiet(SD8, SA8)
		}

	case MoveEnPassant:
		p.undoEnPassant(m, c)

	case MovePromoKnight, MovePromoBishop, MovePromoRook, MovePromoQueen:
		p.removePiece(m.To)
		p.putPiece(Pawn, c, m.From)

	case MovePromoCaptureKnight, MovePromoCaptureBishop,
		MovePromoCaptureRook, MovePromoCaptureQueen:
		p.undoPromoCapture(m, c)

	case MoveCapture:
		p.undoCapture(m)
	}

	p.ply--
}
