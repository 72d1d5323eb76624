//go:build !atomic

/*
position_standard.go holds the capture handling of the standard rule set:
at most one piece leaves the board per move, so the undo record stores a
single Piece.
*/

package fission

type capturedInfo = Piece

const noCapture capturedInfo = NoPiece

func (p *Position) playCapture(m Move, c Color) {
	p.history[p.ply].captured = p.board[m.To]
	p.movePiece(m.From, m.To)
}

func (p *Position) undoCapture(m Move) {
	p.movePieceQuiet(m.To, m.From)

	captured := p.history[p.ply].captured
	p.putPiece(pieceToType[captured], pieceToColor[captured], m.To)
}

func (p *Position) playEnPassant(m Move, c Color) {
	p.movePieceQuiet(m.From, m.To)
	p.removePiece(epVictimSquare(m.To, c))
}

func (p *Position) undoEnPassant(m Move, c Color) {
	p.movePieceQuiet(m.To, m.From)
	p.putPiece(Pawn, c^ColorBlack, epVictimSquare(m.To, c))
}

func (p *Position) playPromoCapture(m Move, c Color) {
	p.removePiece(m.From)
	p.history[p.ply].captured = p.board[m.To]
	p.removePiece(m.To)
	p.putPiece(m.promoType(), c, m.To)
}

func (p *Position) undoPromoCapture(m Move, c Color) {
	p.removePiece(m.To)
	p.putPiece(Pawn, c, m.From)

	captured := p.history[p.ply].captured
	p.putPiece(pieceToType[captured], pieceToColor[captured], m.To)
}
