package model

import (
	"fmt"
	"strconv"
	"strings"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a position from Forsyth-Edwards notation. The move counters
// are optional; a position must hold exactly one king of each color.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}
	p := &Position{EnPassant: NoSquare, FullMove: 1}

	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(rows))
	}
	kings := map[Color]int{}
	for i, row := range rows {
		rank := 7 - i
		file := 0
		for _, r := range row {
			if r >= '1' && r <= '8' {
				file += int(r - '0')
				continue
			}
			t, ok := pieceTypeFromLetter(r)
			if !ok || file > 7 {
				return nil, fmt.Errorf("%w: rank %d %q", ErrInvalidFEN, rank+1, row)
			}
			color := White
			if r >= 'a' {
				color = Black
			}
			if t == King {
				kings[color]++
			}
			p.Board[rank][file] = Piece{Type: t, Color: color}
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d %q", ErrInvalidFEN, rank+1, row)
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return nil, fmt.Errorf("%w: need one king per side", ErrInvalidFEN)
	}

	turn, ok := ParseColor(fields[1])
	if !ok {
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}
	p.Turn = turn

	if fields[2] != "-" {
		for _, r := range fields[2] {
			switch r {
			case 'K':
				p.Castling.WhiteKingSide = true
			case 'Q':
				p.Castling.WhiteQueenSide = true
			case 'k':
				p.Castling.BlackKingSide = true
			case 'q':
				p.Castling.BlackQueenSide = true
			default:
				return nil, fmt.Errorf("%w: castling %q", ErrInvalidFEN, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil || !p.validEnPassant(sq) {
			return nil, fmt.Errorf("%w: en passant %q", ErrInvalidFEN, fields[3])
		}
		p.EnPassant = sq
	}

	if len(fields) >= 6 {
		half, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		full, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
		p.HalfMove, p.FullMove = half, full
	}
	return p, nil
}

// validEnPassant reports whether target could follow a double push by the
// side not to move: it sits on the skipped square, the skipped and start
// squares are empty, and the pawn that moved stands in front of them.
func (p *Position) validEnPassant(target Square) bool {
	pusher := p.Turn.Opposite()
	if target.Rank != pusher.pawnRank()+pusher.forward() {
		return false
	}
	start := target.offset(0, -pusher.forward())
	pawn := target.offset(0, pusher.forward())
	return p.Board.at(target).Empty() &&
		p.Board.at(start).Empty() &&
		p.Board.at(pawn) == Piece{Type: Pawn, Color: pusher}
}

func (p *Position) FEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			piece := p.Board[r][f]
			if piece.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	turn := "w"
	if p.Turn == Black {
		turn = "b"
	}

	castling := ""
	if p.Castling.WhiteKingSide {
		castling += "K"
	}
	if p.Castling.WhiteQueenSide {
		castling += "Q"
	}
	if p.Castling.BlackKingSide {
		castling += "k"
	}
	if p.Castling.BlackQueenSide {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}

	return fmt.Sprintf("%s %s %s %s %d %d", sb.String(), turn, castling, p.EnPassant, p.HalfMove, p.FullMove)
}
