package fission

import (
	"strings"
	"testing"
)

// walkFENs is a small set of midgame positions the make/unmake tests walk
// through.  They are valid start points under both rule sets.
var walkFENs = []string{
	InitialPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbqkbnr/ppp1pppp/8/8/1Pp5/5N2/P1PP1PPP/RNBQK2R b KQkq b3 0 1",
}

// positionsEqual compares everything MakeMove touches: the bitboards, the
// dense board, the side to move, the ply, the hash, and the undo record of
// the current ply.  Deeper history slots are scratch space.
func positionsEqual(a, b *Position) bool {
	return a.pieces == b.pieces &&
		a.board == b.board &&
		a.sideToMove == b.sideToMove &&
		a.ply == b.ply &&
		a.hash == b.hash &&
		a.history[a.ply] == b.history[b.ply]
}

// computeHash folds the Zobrist keys of every occupied square from scratch.
func computeHash(p *Position) (hash uint64) {
	for s, piece := range p.board {
		if piece != NoPiece {
			hash ^= zobristTable[piece][s]
		}
	}
	return hash
}

// TestMakeUndoRoundtrip plays every legal move of every visited position
// and takes it back, asserting bit exact restoration, then walks one move
// deeper along a deterministic path.
func TestMakeUndoRoundtrip(t *testing.T) {
	for _, fen := range walkFENs {
		var p Position
		SetFromFEN(&p, fen)

		for step := range 24 {
			var l MoveList
			GenLegalMoves(&p, &l)
			if l.Count == 0 {
				break
			}

			before := p
			for i := range l.Count {
				m := l.Moves[i]

				p.MakeMove(m)
				if got := computeHash(&p); got != p.hash {
					t.Fatalf("%s: after %s incremental hash 0x%x, recomputed 0x%x",
						fen, m, p.hash, got)
				}
				p.UndoMove(m)

				if !positionsEqual(&p, &before) {
					t.Fatalf("%s: make/undo of %s did not restore the position",
						fen, m)
				}
			}

			p.MakeMove(l.Moves[step*7%l.Count])

			// A side losing its king ends the game under atomic rules;
			// the generator must not be called past that point.
			if p.pieces[p.sideToMove][King] == 0 {
				break
			}
		}
	}
}

// TestMakeUndoSequence unwinds a whole line at once.
func TestMakeUndoSequence(t *testing.T) {
	var p Position
	SetFromFEN(&p, walkFENs[1])
	start := p

	var line []Move
	for range 12 {
		var l MoveList
		GenLegalMoves(&p, &l)
		if l.Count == 0 {
			break
		}

		m := l.Moves[(len(line)*13)%l.Count]
		p.MakeMove(m)
		line = append(line, m)

		if p.pieces[p.sideToMove][King] == 0 {
			break
		}
	}

	for i := len(line) - 1; i >= 0; i-- {
		p.UndoMove(line[i])
	}

	if !positionsEqual(&p, &start) {
		t.Fatal("unwinding the full line did not restore the start position")
	}
}

// TestCastlingRightsTracking drives the entry bitboard through quiet rook
// and king moves and checks the surviving rights via the FEN field.
func TestCastlingRightsTracking(t *testing.T) {
	testcases := []struct {
		name     string
		moves    []string
		expected string
	}{
		{"initial rights", nil, "KQkq"},
		{"queenside rook leaves home", []string{"a1a2"}, "Kkq"},
		{"rook returns home", []string{"a1a2", "a8a7", "a2a1", "a7a8"}, "Kk"},
		{"king moves", []string{"e1e2"}, "kq"},
		{"black kingside rook leaves", []string{"a1a2", "h8h7"}, "Kq"},
	}

	for _, tc := range testcases {
		var p Position
		SetFromFEN(&p, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

		for _, str := range tc.moves {
			m := ParseMove(&p, str)
			if m.From == NoSquare {
				t.Fatalf("%s: move %s is not legal", tc.name, str)
			}
			p.MakeMove(m)
		}

		fields := strings.Fields(p.FEN())
		if fields[2] != tc.expected {
			t.Fatalf("%s: expected castling rights %q, got %q",
				tc.name, tc.expected, fields[2])
		}
	}
}

// TestEnPassantSquareLifetime checks that a double push publishes the
// skipped square for exactly one ply.
func TestEnPassantSquareLifetime(t *testing.T) {
	var p Position
	SetFromFEN(&p, InitialPos)

	m := ParseMove(&p, "e2e4")
	if m.Flag != MoveDoublePush {
		t.Fatalf("expected a double push, got flag %d", m.Flag)
	}
	p.MakeMove(m)

	if p.EnPassantSquare() != SE3 {
		t.Fatalf("expected en passant square e3, got %s",
			squareToString[p.EnPassantSquare()])
	}

	reply := ParseMove(&p, "g8f6")
	p.MakeMove(reply)

	if p.EnPassantSquare() != NoSquare {
		t.Fatal("en passant square survived an unrelated reply")
	}

	p.UndoMove(reply)
	if p.EnPassantSquare() != SE3 {
		t.Fatal("undo did not restore the en passant square")
	}
}
