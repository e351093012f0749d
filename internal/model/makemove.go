package model

import "fmt"

// Undo holds everything UnmakeMove needs to put the position back exactly as
// it was before the matching MakeMove.
type Undo struct {
	Move       Move
	captured   Piece
	capturedAt Square
	rookFrom   Square
	rookTo     Square
	castled    bool
	castling   CastlingRights
	enPassant  Square
	turn       Color
	halfMove   int
	fullMove   int
}

// MakeMove applies m to the position. The moved and captured pieces are read
// from the board, so m only needs From, To and Promotion. Pawns reaching the
// last rank promote to m.Promotion, or to a queen if none was given.
func (p *Position) MakeMove(m Move) (Undo, error) {
	if !m.inBounds() {
		return Undo{}, fmt.Errorf("%w: %s -> %s", ErrOutOfBounds, m.From, m.To)
	}
	piece := p.Board.at(m.From)
	if piece.Empty() {
		return Undo{}, fmt.Errorf("%w: %s", ErrIllegalOrigin, m.From)
	}

	u := Undo{
		captured:   p.Board.at(m.To),
		capturedAt: m.To,
		castling:   p.Castling,
		enPassant:  p.EnPassant,
		turn:       p.Turn,
		halfMove:   p.HalfMove,
		fullMove:   p.FullMove,
	}

	// en passant: the captured pawn sits beside the destination
	if piece.Type == Pawn && u.captured.Empty() && m.From.File != m.To.File && m.To == p.EnPassant {
		u.capturedAt = Square{File: m.To.File, Rank: m.From.Rank}
		u.captured = p.Board.at(u.capturedAt)
		p.Board.set(u.capturedAt, Piece{})
	}

	p.Board.set(m.From, Piece{})
	placed := piece
	if piece.Type == Pawn && m.To.Rank == piece.Color.lastRank() {
		placed.Type = Queen
		if m.Promotion != "" {
			placed.Type = m.Promotion
		}
	}
	p.Board.set(m.To, placed)

	if piece.Type == King && abs(m.To.File-m.From.File) == 2 {
		u.castled = true
		u.rookFrom = Square{File: 7, Rank: m.From.Rank}
		u.rookTo = Square{File: 5, Rank: m.From.Rank}
		if m.To.File < m.From.File {
			u.rookFrom.File, u.rookTo.File = 0, 3
		}
		p.Board.set(u.rookTo, p.Board.at(u.rookFrom))
		p.Board.set(u.rookFrom, Piece{})
	}

	if piece.Type == King {
		p.Castling.revoke(piece.Color)
	}
	p.Castling.revokeCorner(m.From)
	p.Castling.revokeCorner(m.To)

	p.EnPassant = NoSquare
	if piece.Type == Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		p.EnPassant = Square{File: m.From.File, Rank: (m.From.Rank + m.To.Rank) / 2}
	}

	if piece.Type == Pawn || !u.captured.Empty() {
		p.HalfMove = 0
	} else {
		p.HalfMove++
	}
	if piece.Color == Black {
		p.FullMove++
	}
	p.Turn = piece.Color.Opposite()

	m.Piece = piece
	m.Captured = u.captured
	if placed.Type != piece.Type {
		m.Promotion = placed.Type
	}
	u.Move = m
	return u, nil
}

// UnmakeMove reverts the MakeMove that produced u. It cannot fail.
func (p *Position) UnmakeMove(u Undo) {
	m := u.Move
	if u.castled {
		p.Board.set(u.rookFrom, p.Board.at(u.rookTo))
		p.Board.set(u.rookTo, Piece{})
	}
	p.Board.set(m.From, m.Piece)
	p.Board.set(m.To, Piece{})
	p.Board.set(u.capturedAt, u.captured)

	p.Castling = u.castling
	p.EnPassant = u.enPassant
	p.Turn = u.turn
	p.HalfMove = u.halfMove
	p.FullMove = u.fullMove
}

// causesCheck reports whether playing m would leave color's king attacked.
func (p *Position) causesCheck(m Move, color Color) bool {
	u, err := p.MakeMove(m)
	if err != nil {
		return true
	}
	defer p.UnmakeMove(u)
	return p.InCheck(color)
}
