package model

type direction struct {
	df, dr int
}

var (
	up        = direction{0, 1}
	down      = direction{0, -1}
	left      = direction{-1, 0}
	right     = direction{1, 0}
	upRight   = direction{1, 1}
	upLeft    = direction{-1, 1}
	downRight = direction{1, -1}
	downLeft  = direction{-1, -1}

	rookDirs   = []direction{right, left, up, down}
	bishopDirs = []direction{upRight, upLeft, downRight, downLeft}
	kingDirs   = []direction{right, downRight, down, downLeft, left, upLeft, up, upRight}
)

var knightOffsets = [8]direction{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
}

// Ray is the result of scanning outward from a square in one direction.
// Squares holds the empty squares strictly between the start and the first
// occupied square. Blocked is false when the ray ran off the board.
type Ray struct {
	Squares   []Square
	Blocker   Piece
	BlockerAt Square
	Blocked   bool
}

// walk steps from `from` in direction d, calling visit for every empty square,
// and returns the first occupied square it meets.
func (p *Position) walk(from Square, d direction, visit func(Square)) (Square, bool) {
	s := from.offset(d.df, d.dr)
	for s.OnBoard() {
		if !p.Board.at(s).Empty() {
			return s, true
		}
		if visit != nil {
			visit(s)
		}
		s = s.offset(d.df, d.dr)
	}
	return NoSquare, false
}

func (p *Position) look(from Square, d direction) Ray {
	var ray Ray
	ray.BlockerAt, ray.Blocked = p.walk(from, d, func(s Square) {
		ray.Squares = append(ray.Squares, s)
	})
	if ray.Blocked {
		ray.Blocker = p.Board.at(ray.BlockerAt)
	}
	return ray
}

func (p *Position) LookUp(from Square) Ray        { return p.look(from, up) }
func (p *Position) LookDown(from Square) Ray      { return p.look(from, down) }
func (p *Position) LookLeft(from Square) Ray      { return p.look(from, left) }
func (p *Position) LookRight(from Square) Ray     { return p.look(from, right) }
func (p *Position) LookUpRight(from Square) Ray   { return p.look(from, upRight) }
func (p *Position) LookUpLeft(from Square) Ray    { return p.look(from, upLeft) }
func (p *Position) LookDownRight(from Square) Ray { return p.look(from, downRight) }
func (p *Position) LookDownLeft(from Square) Ray  { return p.look(from, downLeft) }

// KnightCandidates returns the eight L-shaped offsets from s before any
// on-board or occupancy filtering; some may lie off the board.
func KnightCandidates(s Square) [8]Square {
	var out [8]Square
	for i, o := range knightOffsets {
		out[i] = s.offset(o.df, o.dr)
	}
	return out
}

// SquareAttackedBy reports whether any piece of color attacks s.
func (p *Position) SquareAttackedBy(s Square, color Color) bool {
	for _, d := range rookDirs {
		if at, ok := p.walk(s, d, nil); ok {
			piece := p.Board.at(at)
			if piece.Color == color && (piece.Type == Rook || piece.Type == Queen) {
				return true
			}
		}
	}
	for _, d := range bishopDirs {
		if at, ok := p.walk(s, d, nil); ok {
			piece := p.Board.at(at)
			if piece.Color == color && (piece.Type == Bishop || piece.Type == Queen) {
				return true
			}
		}
	}
	for _, o := range knightOffsets {
		if piece, ok := p.PieceAt(s.offset(o.df, o.dr)); ok && piece.Color == color && piece.Type == Knight {
			return true
		}
	}
	for _, d := range kingDirs {
		if piece, ok := p.PieceAt(s.offset(d.df, d.dr)); ok && piece.Color == color && piece.Type == King {
			return true
		}
	}
	// a pawn of color attacks s from one rank behind s, seen from its own side
	back := -color.forward()
	for _, df := range []int{-1, 1} {
		if piece, ok := p.PieceAt(s.offset(df, back)); ok && piece.Color == color && piece.Type == Pawn {
			return true
		}
	}
	return false
}

func (p *Position) InCheck(color Color) bool {
	king, ok := p.KingSquare(color)
	if !ok {
		return false
	}
	return p.SquareAttackedBy(king, color.Opposite())
}
