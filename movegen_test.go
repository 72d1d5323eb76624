//go:build !atomic

package fission

import "testing"

// perft walks the move tree to the given depth and counts the leaf nodes.
func perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var l MoveList
	GenLegalMoves(p, &l)

	if depth == 1 {
		return uint64(l.Count)
	}

	var nodes uint64
	for i := range l.Count {
		p.MakeMove(l.Moves[i])
		nodes += perft(p, depth-1)
		p.UndoMove(l.Moves[i])
	}
	return nodes
}

// Known good node counts.
// See https://www.chessprogramming.org/Perft_Results
func TestPerft(t *testing.T) {
	testcases := []struct {
		name     string
		fen      string
		expected []uint64
	}{
		{
			"initial position",
			InitialPos,
			[]uint64{20, 400, 8902, 197281, 4865609},
		},
		{
			"kiwipete",
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			[]uint64{48, 2039, 97862, 4085603},
		},
		{
			"position 3",
			"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			[]uint64{14, 191, 2812, 43238, 674624},
		},
		{
			"position 4",
			"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
			[]uint64{6, 264, 9467, 422333},
		},
	}

	for _, tc := range testcases {
		var p Position
		SetFromFEN(&p, tc.fen)

		for depth, expected := range tc.expected {
			if got := perft(&p, depth+1); got != expected {
				t.Fatalf("%s: depth %d expected %d nodes, got %d",
					tc.name, depth+1, expected, got)
			}
		}
	}
}

// moveListStrings returns the generated moves in notation form.
func moveListStrings(p *Position) map[string]bool {
	var l MoveList
	GenLegalMoves(p, &l)

	moves := make(map[string]bool, l.Count)
	for i := range l.Count {
		moves[l.Moves[i].String()] = true
	}
	return moves
}

// The pseudo legal capture b5xc6 en passant would remove both pawns from
// the fifth rank and expose the king to the h5 rook.
func TestEnPassantDiscoveredCheck(t *testing.T) {
	var p Position
	SetFromFEN(&p, "8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1")

	if moveListStrings(&p)["b5c6"] {
		t.Fatal("generator emitted the discovered check en passant b5c6")
	}
}

func TestEnPassantPins(t *testing.T) {
	testcases := []struct {
		name  string
		fen   string
		move  string
		legal bool
	}{
		{
			"capture along the pin ray",
			"4k3/2b5/8/3pP3/8/6K1/8/8 w - d6 0 1",
			"e5d6", true,
		},
		{
			"diagonally pinned victim",
			"4k3/1b6/8/3pP3/8/5K2/8/8 w - d6 0 1",
			"e5d6", false,
		},
		{
			"plain en passant",
			"rnbqkbnr/ppp1pppp/8/8/1Pp5/5N2/P1PP1PPP/RNBQK2R b KQkq b3 0 1",
			"c4b3", true,
		},
	}

	for _, tc := range testcases {
		var p Position
		SetFromFEN(&p, tc.fen)

		if moveListStrings(&p)[tc.move] != tc.legal {
			t.Fatalf("%s: expected %s legal=%v", tc.name, tc.move, tc.legal)
		}
	}
}

func TestCastlingCornerCases(t *testing.T) {
	testcases := []struct {
		name  string
		fen   string
		move  string
		legal bool
	}{
		{
			"castling while in check",
			"4k3/8/8/8/4r3/8/8/R3K2R w KQ - 0 1",
			"e1g1", false,
		},
		{
			"queenside while in check",
			"4k3/8/8/8/4r3/8/8/R3K2R w KQ - 0 1",
			"e1c1", false,
		},
		{
			"king path attacked",
			"4k3/8/8/8/5r2/8/8/R3K2R w KQ - 0 1",
			"e1g1", false,
		},
		{
			"queenside with d1 attacked",
			"4k3/8/8/8/3r4/8/8/R3K2R w KQ - 0 1",
			"e1c1", false,
		},
		{
			"queenside with only b1 attacked",
			"4k3/8/8/8/1r6/8/8/R3K2R w KQ - 0 1",
			"e1c1", true,
		},
		{
			"queenside with b1 occupied",
			"4k3/8/8/8/8/8/8/RN2K3 w Q - 0 1",
			"e1c1", false,
		},
		{
			"both sides open",
			"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			"e1g1", true,
		},
		{
			"no rights",
			"4k3/8/8/8/8/8/8/R3K2R w - - 0 1",
			"e1g1", false,
		},
		{
			"black kingside through attacked f8",
			"r3k2r/8/8/8/5R2/8/8/4K3 b kq - 0 1",
			"e8g8", false,
		},
		{
			"black queenside with only b8 attacked",
			"r3k2r/8/8/8/1R6/8/8/4K3 b kq - 0 1",
			"e8c8", true,
		},
	}

	for _, tc := range testcases {
		var p Position
		SetFromFEN(&p, tc.fen)

		if moveListStrings(&p)[tc.move] != tc.legal {
			t.Fatalf("%s: expected %s legal=%v", tc.name, tc.move, tc.legal)
		}
	}
}

// TestCastlingRevokedByCapture: capturing the rook on its home square kills
// the right even though the rook never moved.  The capturing rook then checks
// the king along the eighth rank, so the surviving kingside right is read
// from the entry bitboard rather than from the move list.
func TestCastlingRevokedByCapture(t *testing.T) {
	var p Position
	SetFromFEN(&p, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	m := ParseMove(&p, "a1a8")
	if m.Flag != MoveCapture {
		t.Fatalf("a1a8 parsed with flag %d", m.Flag)
	}
	p.MakeMove(m)

	moves := moveListStrings(&p)
	if moves["e8c8"] {
		t.Fatal("black may still castle queenside after the a8 rook was captured")
	}
	if p.history[p.ply].entry&ooMask[ColorBlack] != 0 {
		t.Fatal("black lost the kingside right without cause")
	}
}

// Every emitted move must leave the mover's king safe, and the list must be
// duplicate free.
func TestGeneratedMovesAreLegal(t *testing.T) {
	for _, fen := range walkFENs {
		var p Position
		SetFromFEN(&p, fen)

		var l MoveList
		GenLegalMoves(&p, &l)

		seen := make(map[Move]bool, l.Count)
		for i := range l.Count {
			m := l.Moves[i]
			if seen[m] {
				t.Fatalf("%s: duplicate move %s", fen, m)
			}
			seen[m] = true

			mover := p.sideToMove
			p.MakeMove(m)
			if p.InCheck(mover) {
				t.Fatalf("%s: emitted move %s leaves the king in check", fen, m)
			}
			p.UndoMove(m)
		}
	}
}

// A stalemated and a checkmated side must both get an empty move list.
func TestNoMoves(t *testing.T) {
	testcases := []struct {
		name string
		fen  string
	}{
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/4K3 b - - 0 1"},
		{"smothered mate", "6rk/5Npp/8/8/8/8/8/7K b - - 0 1"},
	}

	for _, tc := range testcases {
		var p Position
		SetFromFEN(&p, tc.fen)

		var l MoveList
		GenLegalMoves(&p, &l)
		if l.Count != 0 {
			t.Fatalf("%s: expected no legal moves, got %d (%s ...)",
				tc.name, l.Count, l.Moves[0])
		}
	}
}

func BenchmarkGenLegalMoves(b *testing.B) {
	var p Position
	SetFromFEN(&p, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	for b.Loop() {
		var l MoveList
		GenLegalMoves(&p, &l)
	}
}

func BenchmarkPerft(b *testing.B) {
	var p Position
	SetFromFEN(&p, InitialPos)

	for b.Loop() {
		perft(&p, 4)
	}
}
