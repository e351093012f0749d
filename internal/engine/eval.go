package engine

import "github.com/benbeisheim/robchess/internal/model"

// MateScore is the score of a side that has been checkmated, before the ply
// adjustment that prefers shorter mates.
const MateScore = 1_000_000

const infinity = MateScore + 1

// Evaluate is the static score of pos from color's point of view: its
// material minus the opponent's.
func Evaluate(pos *model.Position, color model.Color) int {
	return pos.Material(color) - pos.Material(color.Opposite())
}

// IsMate reports whether score encodes a forced mate for either side.
func IsMate(score int) bool {
	return score >= MateScore-maxPly || score <= -MateScore+maxPly
}

const maxPly = 256
