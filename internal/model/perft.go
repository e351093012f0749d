package model

// Perft counts the leaf nodes of the legal move tree to the given depth, with
// color to move at the root.
func (p *Position) Perft(color Color, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := p.GenerateMoves(color)
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		u, err := p.MakeMove(m)
		if err != nil {
			continue
		}
		nodes += p.Perft(color.Opposite(), depth-1)
		p.UnmakeMove(u)
	}
	return nodes
}
