package model

import "strings"

type CastlingRights struct {
	WhiteKingSide  bool `json:"whiteKingSide"`
	WhiteQueenSide bool `json:"whiteQueenSide"`
	BlackKingSide  bool `json:"blackKingSide"`
	BlackQueenSide bool `json:"blackQueenSide"`
}

func (c CastlingRights) kingSide(color Color) bool {
	if color == White {
		return c.WhiteKingSide
	}
	return c.BlackKingSide
}

func (c CastlingRights) queenSide(color Color) bool {
	if color == White {
		return c.WhiteQueenSide
	}
	return c.BlackQueenSide
}

func (c *CastlingRights) revoke(color Color) {
	if color == White {
		c.WhiteKingSide, c.WhiteQueenSide = false, false
	} else {
		c.BlackKingSide, c.BlackQueenSide = false, false
	}
}

// revokeCorner drops the right tied to the rook starting on s, if any.
func (c *CastlingRights) revokeCorner(s Square) {
	switch s {
	case Square{File: 0, Rank: 0}:
		c.WhiteQueenSide = false
	case Square{File: 7, Rank: 0}:
		c.WhiteKingSide = false
	case Square{File: 0, Rank: 7}:
		c.BlackQueenSide = false
	case Square{File: 7, Rank: 7}:
		c.BlackKingSide = false
	}
}

// Position is a mutable chess position. It is mutated in place by MakeMove and
// restored by UnmakeMove; it is never copied during search.
type Position struct {
	Board     Board
	Castling  CastlingRights
	EnPassant Square
	Turn      Color
	HalfMove  int
	FullMove  int
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func NewPosition() *Position {
	p := &Position{}
	p.Reset()
	return p
}

// Reset restores the standard starting setup and all castling rights.
func (p *Position) Reset() {
	p.Board = Board{}
	for f := 0; f < 8; f++ {
		p.Board[0][f] = Piece{Type: backRank[f], Color: White}
		p.Board[1][f] = Piece{Type: Pawn, Color: White}
		p.Board[6][f] = Piece{Type: Pawn, Color: Black}
		p.Board[7][f] = Piece{Type: backRank[f], Color: Black}
	}
	p.Castling = CastlingRights{true, true, true, true}
	p.EnPassant = NoSquare
	p.Turn = White
	p.HalfMove = 0
	p.FullMove = 1
}

func (p *Position) PieceAt(s Square) (Piece, bool) {
	if !s.OnBoard() {
		return Piece{}, false
	}
	piece := p.Board.at(s)
	return piece, !piece.Empty()
}

// KingSquare locates the king of color. ok is false only for positions that
// were built by hand without one.
func (p *Position) KingSquare(color Color) (Square, bool) {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if p.Board[r][f] == (Piece{Type: King, Color: color}) {
				return Square{File: f, Rank: r}, true
			}
		}
	}
	return NoSquare, false
}

// Material sums piece values of color.
func (p *Position) Material(color Color) int {
	sum := 0
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if piece := p.Board[r][f]; !piece.Empty() && piece.Color == color {
				sum += piece.Type.Value()
			}
		}
	}
	return sum
}

// Mirror returns the color-flipped equivalent: ranks reversed, colors swapped,
// castling rights and side to move exchanged.
func (p *Position) Mirror() *Position {
	m := &Position{
		Turn:     p.Turn.Opposite(),
		HalfMove: p.HalfMove,
		FullMove: p.FullMove,
		Castling: CastlingRights{
			WhiteKingSide:  p.Castling.BlackKingSide,
			WhiteQueenSide: p.Castling.BlackQueenSide,
			BlackKingSide:  p.Castling.WhiteKingSide,
			BlackQueenSide: p.Castling.WhiteQueenSide,
		},
		EnPassant: NoSquare,
	}
	if p.EnPassant.OnBoard() {
		m.EnPassant = Square{File: p.EnPassant.File, Rank: 7 - p.EnPassant.Rank}
	}
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if piece := p.Board[r][f]; !piece.Empty() {
				m.Board[7-r][f] = Piece{Type: piece.Type, Color: piece.Color.Opposite()}
			}
		}
	}
	return m
}

func (p *Position) String() string {
	var sb strings.Builder
	line := "   +---+---+---+---+---+---+---+---+\n"
	sb.WriteString(line)
	for r := 7; r >= 0; r-- {
		sb.WriteString(" ")
		sb.WriteByte(byte('1' + r))
		sb.WriteString(" ")
		for f := 0; f < 8; f++ {
			sb.WriteString("| ")
			sb.WriteString(p.Board[r][f].String())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
		sb.WriteString(line)
	}
	sb.WriteString("     a   b   c   d   e   f   g   h\n")
	return sb.String()
}
