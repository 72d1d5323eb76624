//go:build atomic

/*
movegen_atomic.go implements legal move generation for atomic chess.  The
standard pin and check masks do not survive explosions — one capture can
resolve a check, open a pin, and remove a pinner all at once — so captures
are validated by simulating the occupancy after the blast, and quiet moves
by a per-move pin probe.
*/

package fission

// atomicGen carries the bitboards the legality simulations read.
type atomicGen struct {
	me, you Color

	allPieces     uint64
	allPawns      uint64
	allYourPieces uint64

	yourOrthSliders uint64
	yourDiagSliders uint64
	yourKnights     uint64
	yourPawns       uint64

	myKing       uint64
	myKingSquare Square
}

/*
addCapture checks whether the capture from→to is legal under explosion
rules and, when it is, appends the move.  Captures from the pre-promotion
rank expand into the four promotion variants; en passant captures are
flagged as such.

The capture is illegal when the blast would catch the own king, or when
the occupancy left after the explosion gives any surviving enemy piece an
attack on the king square.
*/
func (g *atomicGen) addCapture(l *MoveList, from, to Square,
	includePromotions, includeEnPassant bool) {

	fromBB := squareBB[from]
	toBB := squareBB[to]
	explosion := toBB | kingAttacks[to]

	// Blowing up the own king is never allowed.
	if g.myKing&explosion != 0 {
		return
	}

	// Occupancy after the capture: the attacker, the target, and every
	// non-pawn inside the blast radius are gone.
	relevant := g.allPieces ^ (fromBB | toBB | ((g.allPieces ^ g.allPawns) & explosion))

	if lookupRookAttacks(g.myKingSquare, relevant)&(g.yourOrthSliders&relevant) != 0 {
		return
	}

	if lookupBishopAttacks(g.myKingSquare, relevant)&(g.yourDiagSliders&relevant) != 0 {
		return
	}

	if knightAttacks[g.myKingSquare]&(g.yourKnights&relevant) != 0 {
		return
	}

	if pawnAttacks[g.you][g.myKingSquare]&(g.yourPawns&relevant) != 0 {
		return
	}

	if includePromotions && fromBB&doublePushRank[g.you] != 0 {
		for flag := MovePromoCaptureKnight; flag <= MovePromoCaptureQueen; flag++ {
			l.Push(Move{From: from, To: to, Flag: flag})
		}
		return
	}

	if includeEnPassant {
		l.Push(Move{From: from, To: to, Flag: MoveEnPassant})
		return
	}

	l.Push(Move{From: from, To: to, Flag: MoveCapture})
}

// quietLegal reports whether the non-capturing move from→to leaves the own
// king free of slider attacks: either the piece is not pinned at all, or
// the destination keeps the freed ray blocked.
func (g *atomicGen) quietLegal(from, to Square) bool {
	fromBB := squareBB[from]

	if lookupBishopAttacks(g.myKingSquare, g.allPieces^fromBB)&g.yourDiagSliders == 0 &&
		lookupRookAttacks(g.myKingSquare, g.allPieces^fromBB)&g.yourOrthSliders == 0 {
		return true
	}

	moved := g.allPieces ^ (fromBB | squareBB[to])
	return lookupBishopAttacks(g.myKingSquare, moved)&g.yourDiagSliders == 0 &&
		lookupRookAttacks(g.myKingSquare, moved)&g.yourOrthSliders == 0
}

// GenLegalMoves fills l with every legal move for the side to move.
// InitBetweenTable must have been called first.
func GenLegalMoves(p *Position, l *MoveList) {
	l.Count = 0

	me := p.sideToMove
	you := me ^ ColorBlack

	myKing := p.pieces[me][King]
	myPawns := p.pieces[me][Pawn]
	yourPawns := p.pieces[you][Pawn]
	myKnights := p.pieces[me][Knight]
	yourKnights := p.pieces[you][Knight]
	myBishops := p.pieces[me][Bishop]
	myRooks := p.pieces[me][Rook]
	myQueens := p.pieces[me][Queen]

	allMyPieces := myPawns | myKnights | myBishops | myRooks | myQueens | myKing
	allYourPieces := p.occupancy(you)
	yourOrthSliders := p.pieces[you][Rook] | p.pieces[you][Queen]
	yourDiagSliders := p.pieces[you][Bishop] | p.pieces[you][Queen]

	allPieces := allMyPieces | allYourPieces

	myKingSquare := bitScan(myKing)

	g := atomicGen{
		me:  me,
		you: you,

		allPieces:     allPieces,
		allPawns:      myPawns | yourPawns,
		allYourPieces: allYourPieces,

		yourOrthSliders: yourOrthSliders,
		yourDiagSliders: yourDiagSliders,
		yourKnights:     yourKnights,
		yourPawns:       yourPawns,

		myKing:       myKing,
		myKingSquare: myKingSquare,
	}

	var b1, b2, b3 uint64

	// Danger squares for the king.  The opponent king contributes none:
	// kings may stand next to each other, since a king can never capture
	// without exploding itself.
	attacked := genPawnAttacks(yourPawns, you)
	b1 = yourKnights
	for b1 != 0 {
		attacked |= knightAttacks[popLSB(&b1)]
	}

	b1 = allPieces ^ myKing
	b2 = yourDiagSliders
	for b2 != 0 {
		attacked |= lookupBishopAttacks(popLSB(&b2), b1)
	}
	b2 = yourOrthSliders
	for b2 != 0 {
		attacked |= lookupRookAttacks(popLSB(&b2), b1)
	}

	// King moves are quiet only: the king never captures.
	l.pushAll(myKingSquare,
		kingAttacks[myKingSquare] & ^attacked & ^allMyPieces & ^allYourPieces,
		MoveQuiet)

	genCastlingMoves(p, me, myKing, attacked, allPieces, l)

	// Pawn pushes.
	up := 8
	if me == ColorBlack {
		up = -8
	}

	if me == ColorWhite {
		b1 = myPawns & (^allPieces >> 8)
		b2 = b1 & doublePushRank[me] & (^allPieces >> 16)
	} else {
		b1 = myPawns & (^allPieces << 8)
		b2 = b1 & doublePushRank[me] & (^allPieces << 16)
	}

	for b2 != 0 {
		from := popLSB(&b2)
		to := from + 2*up
		if g.quietLegal(from, to) {
			l.Push(Move{From: from, To: to, Flag: MoveDoublePush})
		}
	}

	for b1 != 0 {
		from := popLSB(&b1)
		to := from + up
		if !g.quietLegal(from, to) {
			continue
		}
		// Pushing to the last rank promotes; no explosion is involved.
		if squareBB[from]&doublePushRank[you] != 0 {
			for flag := MovePromoKnight; flag <= MovePromoQueen; flag++ {
				l.Push(Move{From: from, To: to, Flag: flag})
			}
		} else {
			l.Push(Move{From: from, To: to, Flag: MoveQuiet})
		}
	}

	// Pawn captures.
	if me == ColorWhite {
		b2 = myPawns & (allYourPieces >> 7) & notAFile
	} else {
		b2 = myPawns & (allYourPieces << 9) & notAFile
	}
	for b2 != 0 {
		from := popLSB(&b2)
		var to Square
		if me == ColorWhite {
			to = from + 7
		} else {
			to = from - 9
		}
		g.addCapture(l, from, to, true, false)
	}

	if me == ColorWhite {
		b2 = myPawns & (allYourPieces >> 9) & notHFile
	} else {
		b2 = myPawns & (allYourPieces << 7) & notHFile
	}
	for b2 != 0 {
		from := popLSB(&b2)
		var to Square
		if me == ColorWhite {
			to = from + 9
		} else {
			to = from - 7
		}
		g.addCapture(l, from, to, true, false)
	}

	epTarget := squareBB[p.history[p.ply].epSquare]

	if epTarget != 0 {
		if me == ColorWhite {
			b1 = epTarget >> 8
		} else {
			b1 = epTarget << 8
		}
		// The victim pawn's square together with the square it jumped
		// over.  Toggling both makes the occupancy look as if the pawn
		// had only advanced a single square, which is the state the
		// explosion simulation has to run against.
		b2 = epTarget | b1

		epGen := g
		epGen.allPieces ^= b2
		epGen.allYourPieces ^= b2
		epGen.yourPawns ^= b2
		epGen.allPawns = myPawns | epGen.yourPawns

		epSquare := p.history[p.ply].epSquare

		b3 = myPawns & notHFile & (b1 >> 1)
		if b3 != 0 {
			epGen.addCapture(l, bitScan(b3), epSquare, false, true)
		}

		b3 = myPawns & notAFile & (b1 << 1)
		if b3 != 0 {
			epGen.addCapture(l, bitScan(b3), epSquare, false, true)
		}
	}

	// Knight moves.
	b1 = myKnights
	for b1 != 0 {
		from := popLSB(&b1)
		b2 = knightAttacks[from] & ^allMyPieces
		for b2 != 0 {
			to := popLSB(&b2)
			if squareBB[to]&allYourPieces != 0 {
				g.addCapture(l, from, to, false, false)
			} else if g.quietLegal(from, to) {
				l.Push(Move{From: from, To: to, Flag: MoveQuiet})
			}
		}
	}

	// Bishop and diagonal queen moves.
	b1 = myBishops | myQueens
	for b1 != 0 {
		from := popLSB(&b1)
		b2 = lookupBishopAttacks(from, allPieces) & ^allMyPieces
		for b2 != 0 {
			to := popLSB(&b2)
			if squareBB[to]&allYourPieces != 0 {
				g.addCapture(l, from, to, false, false)
			} else if g.quietLegal(from, to) {
				l.Push(Move{From: from, To: to, Flag: MoveQuiet})
			}
		}
	}

	// Rook and orthogonal queen moves.
	b1 = myRooks | myQueens
	for b1 != 0 {
		from := popLSB(&b1)
		b2 = lookupRookAttacks(from, allPieces) & ^allMyPieces
		for b2 != 0 {
			to := popLSB(&b2)
			if squareBB[to]&allYourPieces != 0 {
				g.addCapture(l, from, to, false, false)
			} else if g.quietLegal(from, to) {
				l.Push(Move{From: from, To: to, Flag: MoveQuiet})
			}
		}
	}
}
