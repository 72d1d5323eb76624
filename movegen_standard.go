//go:build !atomic

/*
movegen_standard.go implements legal move generation for standard chess in a
single pass: check masks and pin masks are computed up front, so no move
ever has to be made and retracted to prove its legality.  The lone
exception is the en passant discovered check, which is resolved by a two
pawn occupancy simulation.
*/

package fission

// GenLegalMoves fills l with every legal move for the side to move.
// InitBetweenTable must have been called first.
func GenLegalMoves(p *Position, l *MoveList) {
	l.Count = 0

	me := p.sideToMove
	you := me ^ ColorBlack

	myKing := p.pieces[me][King]
	yourKing := p.pieces[you][King]
	myPawns := p.pieces[me][Pawn]
	yourPawns := p.pieces[you][Pawn]
	myKnights := p.pieces[me][Knight]
	yourKnights := p.pieces[you][Knight]
	myBishops := p.pieces[me][Bishop]
	yourBishops := p.pieces[you][Bishop]
	myRooks := p.pieces[me][Rook]
	yourRooks := p.pieces[you][Rook]
	myQueens := p.pieces[me][Queen]
	yourQueens := p.pieces[you][Queen]

	allMyPieces := myPawns | myKnights | myBishops | myRooks | myQueens | myKing
	allYourPieces := yourPawns | yourKnights | yourBishops | yourRooks |
		yourQueens | yourKing
	yourOrthSliders := yourRooks | yourQueens
	yourDiagSliders := yourBishops | yourQueens

	allPieces := allMyPieces | allYourPieces

	myKingSquare := bitScan(myKing)

	var orthPin, diagPin uint64

	// For every checking slider, checkmask accumulates the path from the
	// king to the checker, checker included; knight and pawn checkers
	// contribute their own square.
	var checkmask uint64
	checkingPieces := 0

	var b1, b2, b3 uint64

	// Orthogonal check and pin masks.  The empty board mask is a cheap
	// gate before the slider lookups.
	if rookMask[myKingSquare]&yourOrthSliders != 0 {
		attackHV := lookupRookAttacks(myKingSquare, allPieces) & yourOrthSliders
		pinsHV := xrayRookAttacks(myKingSquare, allPieces) & yourOrthSliders
		for attackHV != 0 {
			checkmask |= pinBetween[myKingSquare][popLSB(&attackHV)]
			checkingPieces++
		}
		for pinsHV != 0 {
			orthPin |= pinBetween[myKingSquare][popLSB(&pinsHV)]
		}
	}

	// Diagonal check and pin masks.
	if bishopMask[myKingSquare]&yourDiagSliders != 0 {
		attackD := lookupBishopAttacks(myKingSquare, allPieces) & yourDiagSliders
		pinsD := xrayBishopAttacks(myKingSquare, allPieces) & yourDiagSliders
		for attackD != 0 {
			checkmask |= pinBetween[myKingSquare][popLSB(&attackD)]
			checkingPieces++
		}
		for pinsD != 0 {
			diagPin |= pinBetween[myKingSquare][popLSB(&pinsD)]
		}
	}

	// At most one knight can check at a time, so this is a single bit.
	b1 = knightAttacks[myKingSquare] & yourKnights
	checkmask |= b1
	if b1 != 0 {
		checkingPieces++
	}

	checkmask |= pawnAttacks[me][myKingSquare] & yourPawns

	// Not in check: every square resolves the (absent) check.
	if checkmask == 0 {
		checkmask = ^uint64(0)
	}

	moveable := ^allMyPieces & checkmask

	// Danger squares for the king.  The king itself is removed from the
	// slider occupancy so that stepping straight back along a checker's
	// ray still counts as attacked.
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

	attacked |= kingAttacks[bitScan(yourKing)]

	// King moves.
	b1 = kingAttacks[myKingSquare] & ^attacked & ^allMyPieces
	l.pushAll(myKingSquare, b1 & ^allYourPieces, MoveQuiet)
	l.pushAll(myKingSquare, b1&allYourPieces, MoveCapture)

	// A double check cannot be blocked and both checkers cannot be
	// captured at once: only the king may move.
	if checkingPieces > 1 {
		return
	}

	genCastlingMoves(p, me, myKing, attacked, allPieces, l)

	// Orthogonally pinned pawns cannot capture; diagonally pinned pawns
	// cannot push.
	pawnsTake := myPawns & ^orthPin
	pawnsPush := myPawns & ^diagPin

	up, upLeft, upRight := 8, 7, 9
	if me == ColorBlack {
		up, upLeft, upRight = -8, -9, -7
	}

	b1 = allYourPieces & notHFile & checkmask
	var pawnsTakeLeft uint64
	if me == ColorWhite {
		pawnsTakeLeft = pawnsTake & (b1 >> 7)
	} else {
		pawnsTakeLeft = pawnsTake & (b1 << 9)
	}

	b1 = allYourPieces & notAFile & checkmask
	var pawnsTakeRight uint64
	if me == ColorWhite {
		pawnsTakeRight = pawnsTake & (b1 >> 9)
	} else {
		pawnsTakeRight = pawnsTake & (b1 << 7)
	}

	var pawnsPushSingle uint64
	if me == ColorWhite {
		pawnsPushSingle = pawnsPush & (^allPieces >> 8)
	} else {
		pawnsPushSingle = pawnsPush & (^allPieces << 8)
	}

	// Double pushes are derived before the single pushes are pruned by
	// the check mask: a pawn may jump over the square that would block a
	// check one rank earlier.
	b1 = ^allPieces & checkmask
	var pawnsPushDouble uint64
	if me == ColorWhite {
		pawnsPushDouble = pawnsPushSingle & doublePushRank[me] & (b1 >> 16)
		pawnsPushSingle &= checkmask >> 8
	} else {
		pawnsPushDouble = pawnsPushSingle & doublePushRank[me] & (b1 << 16)
		pawnsPushSingle &= checkmask << 8
	}

	// A pinned pawn may still move if its destination stays on the pin
	// ray.  Captures were already filtered by the orthogonal pins and
	// pushes by the diagonal ones, so each set is pruned by the other
	// pin type here.
	b1 = pawnsTakeLeft & ^diagPin
	if me == ColorWhite {
		b2 = pawnsTakeLeft & ((diagPin & notHFile) >> 7)
	} else {
		b2 = pawnsTakeLeft & ((diagPin & notHFile) << 9)
	}
	pawnsTakeLeft = b1 | b2

	b1 = pawnsTakeRight & ^diagPin
	if me == ColorWhite {
		b2 = pawnsTakeRight & ((diagPin & notAFile) >> 9)
	} else {
		b2 = pawnsTakeRight & ((diagPin & notAFile) << 7)
	}
	pawnsTakeRight = b1 | b2

	b1 = pawnsPushSingle & ^orthPin
	if me == ColorWhite {
		b2 = pawnsPushSingle & (orthPin >> 8)
	} else {
		b2 = pawnsPushSingle & (orthPin << 8)
	}
	pawnsPushSingle = b1 | b2

	b1 = pawnsPushDouble & ^orthPin
	if me == ColorWhite {
		b2 = pawnsPushDouble & (orthPin >> 16)
	} else {
		b2 = pawnsPushDouble & (orthPin << 16)
	}
	pawnsPushDouble = b1 | b2

	epTarget := squareBB[p.history[p.ply].epSquare]

	if epTarget != 0 {
		// The pawn that just double pushed.  If it is diagonally pinned
		// it cannot be captured en passant at all: the capturer lands on
		// the victim's file, which is off the pin diagonal.
		if me == ColorWhite {
			b1 = epTarget >> 8
		} else {
			b1 = epTarget << 8
		}
		b1 &= checkmask & ^diagPin

		epLeft := pawnsTake & notAFile & (b1 << 1)
		epRight := pawnsTake & notHFile & (b1 >> 1)

		// A diagonally pinned capturer may take en passant only when the
		// en passant square itself lies on the pin ray.
		b2 = 0
		if epTarget&diagPin != 0 {
			b2 = ^uint64(0)
		}
		epLeft &= b2 | ^diagPin
		epRight &= b2 | ^diagPin

		// The classic discovered check: removing both pawns from the
		// rank may expose the king to a rook or queen.
		if myKing&epRank[me] != 0 {
			b3 = lookupRookAttacks(myKingSquare, allPieces^(b1|epLeft))
			if (b3&yourOrthSliders)|b2 != 0 {
				epLeft = 0
			}

			b3 = lookupRookAttacks(myKingSquare, allPieces^(b1|epRight))
			if (b3&yourOrthSliders)|b2 != 0 {
				epRight = 0
			}
		}

		epSquare := bitScan(epTarget)
		if epLeft != 0 {
			l.Push(Move{From: bitScan(epLeft), To: epSquare, Flag: MoveEnPassant})
		}
		if epRight != 0 {
			l.Push(Move{From: bitScan(epRight), To: epSquare, Flag: MoveEnPassant})
		}
	}

	for pawnsPushDouble != 0 {
		s := popLSB(&pawnsPushDouble)
		l.Push(Move{From: s, To: s + 2*up, Flag: MoveDoublePush})
	}

	// Any pawn on the opponent's double push rank promotes this move.
	promotionRank := doublePushRank[you]

	b1 = pawnsPushSingle & promotionRank
	b2 = pawnsPushSingle & ^promotionRank

	for b1 != 0 {
		s := popLSB(&b1)
		for flag := MovePromoKnight; flag <= MovePromoQueen; flag++ {
			l.Push(Move{From: s, To: s + up, Flag: flag})
		}
	}

	for b2 != 0 {
		s := popLSB(&b2)
		l.Push(Move{From: s, To: s + up, Flag: MoveQuiet})
	}

	b1 = pawnsTakeLeft & promotionRank
	b2 = pawnsTakeLeft & ^promotionRank

	for b1 != 0 {
		s := popLSB(&b1)
		for flag := MovePromoCaptureKnight; flag <= MovePromoCaptureQueen; flag++ {
			l.Push(Move{From: s, To: s + upLeft, Flag: flag})
		}
	}

	for b2 != 0 {
		s := popLSB(&b2)
		l.Push(Move{From: s, To: s + upLeft, Flag: MoveCapture})
	}

	b1 = pawnsTakeRight & promotionRank
	b2 = pawnsTakeRight & ^promotionRank

	for b1 != 0 {
		s := popLSB(&b1)
		for flag := MovePromoCaptureKnight; flag <= MovePromoCaptureQueen; flag++ {
			l.Push(Move{From: s, To: s + upRight, Flag: flag})
		}
	}

	for b2 != 0 {
		s := popLSB(&b2)
		l.Push(Move{From: s, To: s + upRight, Flag: MoveCapture})
	}

	// Pinned knights can never move.
	b1 = myKnights & ^(orthPin | diagPin)
	for b1 != 0 {
		s := popLSB(&b1)
		b2 = knightAttacks[s] & moveable
		l.pushAll(s, b2 & ^allYourPieces, MoveQuiet)
		l.pushAll(s, b2&allYourPieces, MoveCapture)
	}

	// Pinned queens move with the bishops or rooks: the lookups agree.
	// Orthogonally pinned bishops can never move.
	b1 = myBishops & ^orthPin
	b2 = (myQueens | b1) & diagPin
	for b2 != 0 {
		s := popLSB(&b2)
		b3 = lookupBishopAttacks(s, allPieces) & moveable & diagPin
		l.pushAll(s, b3 & ^allYourPieces, MoveQuiet)
		l.pushAll(s, b3&allYourPieces, MoveCapture)
	}

	b2 = b1 & ^diagPin
	for b2 != 0 {
		s := popLSB(&b2)
		b3 = lookupBishopAttacks(s, allPieces) & moveable
		l.pushAll(s, b3 & ^allYourPieces, MoveQuiet)
		l.pushAll(s, b3&allYourPieces, MoveCapture)
	}

	// Diagonally pinned rooks can never move.
	b1 = myRooks & ^diagPin
	b2 = (myQueens | b1) & orthPin
	for b2 != 0 {
		s := popLSB(&b2)
		b3 = lookupRookAttacks(s, allPieces) & moveable & orthPin
		l.pushAll(s, b3 & ^allYourPieces, MoveQuiet)
		l.pushAll(s, b3&allYourPieces, MoveCapture)
	}

	b2 = b1 & ^orthPin
	for b2 != 0 {
		s := popLSB(&b2)
		b3 = lookupRookAttacks(s, allPieces) & moveable
		l.pushAll(s, b3 & ^allYourPieces, MoveQuiet)
		l.pushAll(s, b3&allYourPieces, MoveCapture)
	}

	// Pinned queens were generated above; only the free ones remain.
	b1 = myQueens & ^(orthPin | diagPin)
	for b1 != 0 {
		s := popLSB(&b1)
		b2 = lookupQueenAttacks(s, allPieces) & moveable
		l.pushAll(s, b2 & ^allYourPieces, MoveQuiet)
		l.pushAll(s, b2&allYourPieces, MoveCapture)
	}
}
