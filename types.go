/*
types.go contains declarations of custom types, predefined constants, and
conversion tables shared by both rule sets.
*/

package fission

// Color is an alias type to avoid bothersome conversion between int and Color.
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
	ColorNone
)

// PieceType is an alias type to avoid bothersome conversion between int and
// PieceType.
type PieceType = int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoType
)

/*
Piece enumerates the colored pieces.  NoPiece is zero so that an empty board
entry, and an empty 4-bit slot in the packed capture info, are both zero.
*/
type Piece = int

const (
	NoPiece Piece = iota
	WPawn
	WKnight
	WBishop
	WRook
	WQueen
	WKing
	BPawn
	BKnight
	BBishop
	BRook
	BQueen
	BKing
)

// Square is an alias type for a board square index: 0 is a1, 63 is h8.
type Square = int

// NoSquare marks an absent square.  squareBB maps it to an empty bitboard so
// callers can mask it uniformly.
const NoSquare Square = 64

const (
	SA1 Square = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)

/*
MoveFlag describes what kind of move is being played.  The promotion flags are
laid out so that the promoted piece type is recoverable as Knight + flag&0x3
for both the plain and the capturing variants.
*/
type MoveFlag = int

const (
	MoveQuiet              MoveFlag = 0x0
	MoveDoublePush         MoveFlag = 0x1
	MoveCastleKing         MoveFlag = 0x2
	MoveCastleQueen        MoveFlag = 0x3
	MovePromoKnight        MoveFlag = 0x4
	MovePromoBishop        MoveFlag = 0x5
	MovePromoRook          MoveFlag = 0x6
	MovePromoQueen         MoveFlag = 0x7
	MoveCapture            MoveFlag = 0x8
	MoveEnPassant          MoveFlag = 0xA
	MovePromoCaptureKnight MoveFlag = 0xC
	MovePromoCaptureBishop MoveFlag = 0xD
	MovePromoCaptureRook   MoveFlag = 0xE
	MovePromoCaptureQueen  MoveFlag = 0xF
)

// Move represents a single chess move.
type Move struct {
	From Square
	To   Square
	Flag MoveFlag
}

// IsPromotion reports whether the move promotes a pawn, with or without a
// capture.
func (m Move) IsPromotion() bool {
	return (m.Flag >= MovePromoKnight && m.Flag <= MovePromoQueen) ||
		m.Flag >= MovePromoCaptureKnight
}

// promoType returns the piece type a promotion move promotes to.
func (m Move) promoType() PieceType {
	return Knight + (m.Flag & 0x3)
}

/*
MoveList is used to store generated moves.  The array is preallocated with
enough capacity for every reachable position under both rule sets, which
avoids dynamic memory allocations in the generator.
*/
type MoveList struct {
	Moves [256]Move
	Count int
}

// Push adds the move to the end of the move list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// pushAll appends one move per set bit of to, all sharing from and flag.
func (l *MoveList) pushAll(from Square, to uint64, flag MoveFlag) {
	for to != 0 {
		l.Push(Move{From: from, To: popLSB(&to), Flag: flag})
	}
}

// Conversion tables between pieces, types, and colors.
var (
	pieceToColor = [13]Color{
		NoPiece: ColorNone,
		WPawn:   ColorWhite, WKnight: ColorWhite, WBishop: ColorWhite,
		WRook: ColorWhite, WQueen: ColorWhite, WKing: ColorWhite,
		BPawn: ColorBlack, BKnight: ColorBlack, BBishop: ColorBlack,
		BRook: ColorBlack, BQueen: ColorBlack, BKing: ColorBlack,
	}
	pieceToType = [13]PieceType{
		NoPiece: NoType,
		WPawn:   Pawn, WKnight: Knight, WBishop: Bishop,
		WRook: Rook, WQueen: Queen, WKing: King,
		BPawn: Pawn, BKnight: Knight, BBishop: Bishop,
		BRook: Rook, BQueen: Queen, BKing: King,
	}
	typeToPiece = [2][6]Piece{
		{WPawn, WKnight, WBishop, WRook, WQueen, WKing},
		{BPawn, BKnight, BBishop, BRook, BQueen, BKing},
	}
	pieceToChar = [13]byte{
		NoPiece: '.',
		WPawn:   'P', WKnight: 'N', WBishop: 'B',
		WRook: 'R', WQueen: 'Q', WKing: 'K',
		BPawn: 'p', BKnight: 'n', BBishop: 'b',
		BRook: 'r', BQueen: 'q', BKing: 'k',
	}
)

// charToPiece converts a FEN piece letter to a Piece.  A manual switch is
// faster than a map lookup.
func charToPiece(c byte) Piece {
	switch c {
	case 'P':
		return WPawn
	case 'N':
		return WKnight
	case 'B':
		return WBishop
	case 'R':
		return WRook
	case 'Q':
		return WQueen
	case 'K':
		return WKing
	case 'p':
		return BPawn
	case 'n':
		return BKnight
	case 'b':
		return BBishop
	case 'r':
		return BRook
	case 'q':
		return BQueen
	case 'k':
		return BKing
	}
	return NoPiece
}

// squareToString maps each board square to its string representation.
var squareToString = [65]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
	"-",
}

// stringToSquare parses a two character algebraic square like "e4".
func stringToSquare(file, rank byte) Square {
	return Square(rank-'1')*8 + Square(file-'a')
}
