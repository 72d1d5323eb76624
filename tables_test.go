package fission

import "testing"

func TestPinBetween(t *testing.T) {
	testcases := []struct {
		name     string
		from, to Square
		expected uint64
	}{
		{"same rank", SA1, SH1, 0xFE},
		{"same file", SE1, SE8, 0x1010101010101000},
		{"diagonal", SA1, SH8, 0x8040201008040200},
		{"anti diagonal", SH1, SA8, 0x102040810204000},
		{"adjacent", SE4, SE5, squareBB[SE5]},
		{"no shared line", SA1, SB3, 0},
		{"knight distance", SE4, SF6, 0},
	}

	for _, tc := range testcases {
		if got := pinBetween[tc.from][tc.to]; got != tc.expected {
			t.Fatalf("%s: expected 0x%x\ngot 0x%x", tc.name, tc.expected, got)
		}
	}
}

// pinBetween[a][b] must contain b and exclude a, for every pair that shares
// a line.
func TestPinBetweenEndpoints(t *testing.T) {
	for a := range 64 {
		for b := range 64 {
			mask := pinBetween[a][b]
			if mask == 0 {
				continue
			}
			if mask&squareBB[b] == 0 {
				t.Fatalf("pinBetween[%d][%d] does not include the far endpoint", a, b)
			}
			if mask&squareBB[a] != 0 {
				t.Fatalf("pinBetween[%d][%d] includes the origin", a, b)
			}
		}
	}
}

func TestXrayAttacks(t *testing.T) {
	// Rook a1, blockers on a4 and a6: the xray must reveal a5 and a6
	// behind the first blocker and nothing past the second.
	occupancy := squareBB[SA4] | squareBB[SA6]
	got := xrayRookAttacks(SA1, occupancy) & 0x0101010101010100

	expected := squareBB[SA5] | squareBB[SA6]
	if got != expected {
		t.Fatalf("expected 0x%x\ngot 0x%x", expected, got)
	}

	// Bishop c1, blocker d2: xray continues along the diagonal.
	occupancy = squareBB[SD2] | squareBB[SF4]
	gotD := xrayBishopAttacks(SC1, occupancy)
	if gotD&squareBB[SE3] == 0 || gotD&squareBB[SF4] == 0 {
		t.Fatalf("xray bishop attacks miss the revealed squares: 0x%x", gotD)
	}
	if gotD&squareBB[SD2] != 0 {
		t.Fatalf("xray bishop attacks include the blocker: 0x%x", gotD)
	}
}

func TestSliderLookups(t *testing.T) {
	testcases := []struct {
		name      string
		square    Square
		occupancy uint64
		expected  uint64
	}{
		{"rook on empty board", SD4, 0, rookMask[SD4]},
		{"bishop on empty board", SD4, 0, bishopMask[SD4]},
		{
			"rook blocked on d6",
			SD4,
			squareBB[SD6],
			genRookAttacks(squareBB[SD4], squareBB[SD6]),
		},
		{
			"bishop blocked on f6",
			SD4,
			squareBB[SF6],
			genBishopAttacks(squareBB[SD4], squareBB[SF6]),
		},
	}

	for _, tc := range testcases {
		var got uint64
		if tc.name[0] == 'r' {
			got = lookupRookAttacks(tc.square, tc.occupancy)
		} else {
			got = lookupBishopAttacks(tc.square, tc.occupancy)
		}
		if got != tc.expected {
			t.Fatalf("%s: expected 0x%x\ngot 0x%x", tc.name, tc.expected, got)
		}
	}
}

func TestZobristTableDeterminism(t *testing.T) {
	first := zobristTable

	InitZobristTable()
	if zobristTable != first {
		t.Fatal("InitZobristTable is not reproducible")
	}

	// Spot check that distinct piece/square pairs get distinct keys.
	seen := make(map[uint64]bool)
	for piece := WPawn; piece <= BKing; piece++ {
		for square := range 64 {
			key := zobristTable[piece][square]
			if seen[key] {
				t.Fatalf("duplicate zobrist key for piece %d square %d", piece, square)
			}
			seen[key] = true
		}
	}
}
