/*
movegen.go holds the move generation machinery shared by both rule sets.
The generators themselves live in movegen_standard.go and movegen_atomic.go,
selected at build time.
*/

package fission

// genCastlingMoves appends the legal castling moves.  Castling is identical
// under both rule sets: the path between king and rook must be empty, the
// king's path unattacked, the king not in check, and neither the king nor
// the relevant rook may ever have left its home square.  For O-O-O the
// b-file square must be empty but may be attacked.
func genCastlingMoves(p *Position, me Color, myKing, attacked, allPieces uint64,
	l *MoveList) {

	entry := p.history[p.ply].entry

	if entry&ooMask[me]|((allPieces|attacked)&ooBlockersMask[me])|(myKing&attacked) == 0 {
		if me == ColorWhite {
			l.Push(Move{From: SE1, To: SG1, Flag: MoveCastleKing})
		} else {
			l.Push(Move{From: SE8, To: SG8, Flag: MoveCastleKing})
		}
	}

	if entry&oooMask[me]|
		((allPieces|(attacked&oooIgnoreDanger[me]))&oooBlockersMask[me])|
		(myKing&attacked) == 0 {
		if me == ColorWhite {
			l.Push(Move{From: SE1, To: SC1, Flag: MoveCastleQueen})
		} else {
			l.Push(Move{From: SE8, To: SC8, Flag: MoveCastleQueen})
		}
	}
}

// isAttacked reports whether any piece of color by attacks the given square
// under the current occupancy.  Slow path used outside the generator.
func (p *Position) isAttacked(s Square, by Color) bool {
	occupancy := p.occupancy(ColorWhite) | p.occupancy(ColorBlack)

	return pawnAttacks[by^ColorBlack][s]&p.pieces[by][Pawn] != 0 ||
		knightAttacks[s]&p.pieces[by][Knight] != 0 ||
		kingAttacks[s]&p.pieces[by][King] != 0 ||
		lookupBishopAttacks(s, occupancy)&(p.pieces[by][Bishop]|p.pieces[by][Queen]) != 0 ||
		lookupRookAttacks(s, occupancy)&(p.pieces[by][Rook]|p.pieces[by][Queen]) != 0
}

// InCheck reports whether the king of color c is currently attacked.
func (p *Position) InCheck(c Color) bool {
	king := p.pieces[c][King]
	if king == 0 {
		return false
	}
	return p.isAttacked(bitScan(king), c^ColorBlack)
}
