package model

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Value is the classical material value. The king's 200 is a sentinel so that
// material sums always dominate on king captures.
func (p PieceType) Value() int {
	switch p {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return 200
	}
	return 0
}

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

func pieceTypeFromLetter(r rune) (PieceType, bool) {
	switch r {
	case 'k', 'K':
		return King, true
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	case 'p', 'P':
		return Pawn, true
	}
	return "", false
}

// Piece occupies a cell of the board. The zero Piece is an empty cell.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

func (p Piece) Empty() bool {
	return p.Type == ""
}

// Letter returns the FEN letter: upper case for white, lower case for black.
func (p Piece) Letter() string {
	if p.Empty() {
		return ""
	}
	l := p.Type.getPieceNotation()
	if p.Color == Black {
		return strings.ToLower(l)
	}
	return l
}

func (p Piece) String() string {
	if p.Empty() {
		return " "
	}
	return p.Letter()
}

// Square is a coordinate on the board. File 0 is "a", rank 0 is rank "1".
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// NoSquare marks an absent en passant target.
var NoSquare = Square{File: -1, Rank: -1}

func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 0 && s.Rank < 8
}

func (s Square) offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrInvalidNotation, s)
	}
	sq := Square{File: int(s[0]) - 'a', Rank: int(s[1]) - '1'}
	if !sq.OnBoard() {
		return NoSquare, fmt.Errorf("%w: square %q", ErrOutOfBounds, s)
	}
	return sq, nil
}

// Board is indexed [rank][file].
type Board [8][8]Piece

func (b *Board) at(s Square) Piece {
	return b[s.Rank][s.File]
}

func (b *Board) set(s Square, p Piece) {
	b[s.Rank][s.File] = p
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
