package model

var promotionTypes = []PieceType{Queen, Rook, Bishop, Knight}

// GenerateMoves returns every legal move for color: pseudo-legal moves for each
// of its pieces, minus those that would leave its own king attacked.
func (p *Position) GenerateMoves(color Color) []Move {
	pseudo := make([]Move, 0, 48)
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if piece := p.Board[r][f]; !piece.Empty() && piece.Color == color {
				pseudo = p.movesForPiece(pseudo, Square{File: f, Rank: r}, piece)
			}
		}
	}
	return p.filterLegalMoves(pseudo, color)
}

// MovesFrom returns the legal moves of the piece standing on s.
func (p *Position) MovesFrom(s Square) []Move {
	piece, ok := p.PieceAt(s)
	if !ok {
		return nil
	}
	return p.filterLegalMoves(p.movesForPiece(nil, s, piece), piece.Color)
}

func (p *Position) filterLegalMoves(pseudo []Move, color Color) []Move {
	legal := pseudo[:0]
	for _, m := range pseudo {
		if !p.causesCheck(m, color) {
			legal = append(legal, m)
		}
	}
	return legal
}

func (p *Position) movesForPiece(moves []Move, from Square, piece Piece) []Move {
	switch piece.Type {
	case Pawn:
		return p.pawnMoves(moves, from, piece)
	case Knight:
		return p.knightMoves(moves, from, piece)
	case Bishop:
		return p.slidingMoves(moves, from, piece, bishopDirs)
	case Rook:
		return p.slidingMoves(moves, from, piece, rookDirs)
	case Queen:
		moves = p.slidingMoves(moves, from, piece, rookDirs)
		return p.slidingMoves(moves, from, piece, bishopDirs)
	case King:
		return p.kingMoves(moves, from, piece)
	}
	return moves
}

func (p *Position) newMove(from, to Square, piece Piece) Move {
	return Move{From: from, To: to, Piece: piece, Captured: p.Board.at(to)}
}

// pawnMove adds from->to, expanding into the four promotions on the last rank.
func (p *Position) pawnMove(moves []Move, from, to Square, piece Piece, captured Piece) []Move {
	if to.Rank != piece.Color.lastRank() {
		return append(moves, Move{From: from, To: to, Piece: piece, Captured: captured})
	}
	for _, promo := range promotionTypes {
		moves = append(moves, Move{From: from, To: to, Promotion: promo, Piece: piece, Captured: captured})
	}
	return moves
}

func (p *Position) pawnMoves(moves []Move, from Square, piece Piece) []Move {
	dir := piece.Color.forward()
	one := from.offset(0, dir)
	if !one.OnBoard() {
		return moves
	}
	if p.Board.at(one).Empty() {
		moves = p.pawnMove(moves, from, one, piece, Piece{})
		two := from.offset(0, 2*dir)
		if from.Rank == piece.Color.pawnRank() && p.Board.at(two).Empty() {
			moves = append(moves, Move{From: from, To: two, Piece: piece})
		}
	}
	for _, df := range []int{-1, 1} {
		to := from.offset(df, dir)
		if !to.OnBoard() {
			continue
		}
		target := p.Board.at(to)
		if !target.Empty() && target.Color != piece.Color {
			moves = p.pawnMove(moves, from, to, piece, target)
		} else if target.Empty() && to == p.EnPassant {
			moves = append(moves, Move{From: from, To: to, Piece: piece, Captured: Piece{Type: Pawn, Color: piece.Color.Opposite()}})
		}
	}
	return moves
}

func (p *Position) slidingMoves(moves []Move, from Square, piece Piece, dirs []direction) []Move {
	for _, d := range dirs {
		ray := p.look(from, d)
		for _, s := range ray.Squares {
			moves = append(moves, Move{From: from, To: s, Piece: piece})
		}
		if ray.Blocked && ray.Blocker.Color != piece.Color {
			moves = append(moves, Move{From: from, To: ray.BlockerAt, Piece: piece, Captured: ray.Blocker})
		}
	}
	return moves
}

// canMoveToSquare reports whether s is on the board and not held by color.
func (p *Position) canMoveToSquare(s Square, color Color) bool {
	if !s.OnBoard() {
		return false
	}
	target := p.Board.at(s)
	return target.Empty() || target.Color != color
}

func (p *Position) knightMoves(moves []Move, from Square, piece Piece) []Move {
	for _, to := range KnightCandidates(from) {
		if p.canMoveToSquare(to, piece.Color) {
			moves = append(moves, p.newMove(from, to, piece))
		}
	}
	return moves
}

func (p *Position) kingMoves(moves []Move, from Square, piece Piece) []Move {
	for _, d := range kingDirs {
		to := from.offset(d.df, d.dr)
		if p.canMoveToSquare(to, piece.Color) {
			moves = append(moves, p.newMove(from, to, piece))
		}
	}
	return p.castlingMoves(moves, from, piece)
}

// castlingMoves adds O-O and O-O-O when the rights are held, the squares between
// king and rook are empty, and neither the king's square nor the one it passes
// over is attacked. The landing square is checked by filterLegalMoves.
func (p *Position) castlingMoves(moves []Move, from Square, piece Piece) []Move {
	home := Square{File: 4, Rank: piece.Color.homeRank()}
	if from != home {
		return moves
	}
	opp := piece.Color.Opposite()
	rook := Piece{Type: Rook, Color: piece.Color}
	rank := home.Rank

	if p.Castling.kingSide(piece.Color) &&
		p.Board[rank][7] == rook &&
		p.Board[rank][5].Empty() && p.Board[rank][6].Empty() &&
		!p.SquareAttackedBy(home, opp) &&
		!p.SquareAttackedBy(Square{File: 5, Rank: rank}, opp) {
		moves = append(moves, Move{From: home, To: Square{File: 6, Rank: rank}, Piece: piece})
	}
	if p.Castling.queenSide(piece.Color) &&
		p.Board[rank][0] == rook &&
		p.Board[rank][1].Empty() && p.Board[rank][2].Empty() && p.Board[rank][3].Empty() &&
		!p.SquareAttackedBy(home, opp) &&
		!p.SquareAttackedBy(Square{File: 3, Rank: rank}, opp) {
		moves = append(moves, Move{From: home, To: Square{File: 2, Rank: rank}, Piece: piece})
	}
	return moves
}

// HasLegalMoves stops at the first legal move instead of building the list.
func (p *Position) HasLegalMoves(color Color) bool {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			piece := p.Board[r][f]
			if piece.Empty() || piece.Color != color {
				continue
			}
			for _, m := range p.movesForPiece(nil, Square{File: f, Rank: r}, piece) {
				if !p.causesCheck(m, color) {
					return true
				}
			}
		}
	}
	return false
}
