//go:build atomic

/*
position_atomic.go holds the capture handling of the atomic rule set.  A
capture removes the capturing piece, the captured piece, and every non-pawn
in the eight squares around the target.  All removed pieces are packed into
one uint64 of 4-bit slots so a single undo record still suffices:

	slot 0: capturing piece
	slot 1: piece on the target square (empty for en passant)
	slot 2+: exploded ring pieces, in LSB-first order over the ring

Undo walks the ring in the identical order to unpack them.
*/

package fission

type capturedInfo = uint64

const noCapture capturedInfo = 0

// atomicCapture removes the attacker, the piece on center, and every
// non-pawn in the explosion ring around center, recording them all in the
// current undo slot.
func (p *Position) atomicCapture(center, attacker Square) {
	taken := uint64(p.board[attacker]) | uint64(p.board[center])<<4

	p.removePiece(attacker)
	if p.board[center] != NoPiece {
		p.removePiece(center)
	}

	explosion := kingAttacks[center]

	// Slots 0 and 1 are taken by the attacker and the captured piece.
	i := 2
	for explosion != 0 {
		s := popLSB(&explosion)
		piece := p.board[s]

		// Pawns survive the blast unless they are the attacker or the
		// piece being captured.
		if pieceToType[piece] != Pawn && pieceToType[piece] != NoType {
			p.removePiece(s)
			taken |= uint64(piece) << (i * 4)
		}
		i++
	}

	p.history[p.ply].captured = taken
}

// atomicUndoCapture unpacks the capture info recorded by atomicCapture and
// puts every removed piece back.
func (p *Position) atomicUndoCapture(center, attacker Square) {
	taken := p.history[p.ply].captured
	explosion := kingAttacks[center]

	attackerPiece := Piece(taken & 0xF)
	p.putPiece(pieceToType[attackerPiece], pieceToColor[attackerPiece], attacker)
	taken >>= 4

	// The captured slot is empty for en passant: the victim pawn never
	// stood on the center square.
	captured := Piece(taken & 0xF)
	if captured != NoPiece {
		p.putPiece(pieceToType[captured], pieceToColor[captured], center)
	}
	taken >>= 4

	for explosion != 0 {
		s := popLSB(&explosion)
		piece := Piece(taken & 0xF)
		taken >>= 4
		if piece == NoPiece {
			continue
		}
		p.putPiece(pieceToType[piece], pieceToColor[piece], s)
	}
}

func (p *Position) playCapture(m Move, c Color) {
	p.atomicCapture(m.To, m.From)
}

func (p *Position) undoCapture(m Move) {
	p.atomicUndoCapture(m.To, m.From)
}

func (p *Position) playEnPassant(m Move, c Color) {
	// Both pawns are destroyed.  The victim is removed first so the
	// captured slot of the packed info stays empty.
	p.removePiece(epVictimSquare(m.To, c))
	p.atomicCapture(m.To, m.From)
}

func (p *Position) undoEnPassant(m Move, c Color) {
	p.atomicUndoCapture(m.To, m.From)
	p.putPiece(Pawn, c^ColorBlack, epVictimSquare(m.To, c))
}

func (p *Position) playPromoCapture(m Move, c Color) {
	// The capturing pawn explodes with its target: no promoted piece
	// ever appears on the board.
	p.atomicCapture(m.To, m.From)
}

func (p *Position) undoPromoCapture(m Move, c Color) {
	p.atomicUndoCapture(m.To, m.From)
}
