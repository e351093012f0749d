package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Move is identified by its origin, destination and promotion. Piece and
// Captured are informational and filled in by the generator or ParseMove.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
	Piece     Piece
	Captured  Piece
}

func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) inBounds() bool {
	return m.From.OnBoard() && m.To.OnBoard()
}

func (m Move) IsCapture() bool {
	return !m.Captured.Empty()
}

// String returns long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	promo := ""
	if m.Promotion != "" {
		promo = strings.ToLower(m.Promotion.getPieceNotation())
	}
	return m.From.String() + m.To.String() + promo
}

// ParseNotation reads <file><rank><file><rank>[promo] without looking at a position.
func ParseNotation(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	for _, i := range []int{0, 2} {
		if s[i] < 'a' || s[i] > 'z' || s[i+1] < '0' || s[i+1] > '9' {
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		promo, ok := pieceTypeFromLetter(rune(s[4]))
		if !ok || promo == King || promo == Pawn {
			return Move{}, fmt.Errorf("%w: promotion %q", ErrInvalidNotation, s[4:])
		}
		m.Promotion = promo
	}
	return m, nil
}

// ParseMove parses long algebraic notation and resolves the moved and captured
// pieces against pos.
func ParseMove(s string, pos *Position) (Move, error) {
	m, err := ParseNotation(s)
	if err != nil {
		return Move{}, err
	}
	m.Piece = pos.Board.at(m.From)
	if m.Piece.Empty() {
		return Move{}, fmt.Errorf("%w: %s", ErrIllegalOrigin, m.From)
	}
	m.Captured = pos.Board.at(m.To)
	if m.Piece.Type == Pawn && m.Captured.Empty() && m.To == pos.EnPassant && m.From.File != m.To.File {
		m.Captured = Piece{Type: Pawn, Color: m.Piece.Color.Opposite()}
	}
	return m, nil
}

func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Move) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	parsed, err := ParseNotation(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Notations renders a move list in long algebraic notation.
func Notations(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}
