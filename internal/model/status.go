package model

type Status string

const (
	Ongoing   Status = "ongoing"
	Checkmate Status = "checkmate"
	Stalemate Status = "stalemate"
)

// Status reports whether color, to move, is mated, stalemated or can play on.
func (p *Position) Status(color Color) Status {
	if p.HasLegalMoves(color) {
		return Ongoing
	}
	if p.InCheck(color) {
		return Checkmate
	}
	return Stalemate
}
