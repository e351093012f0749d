package model

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) Valid() bool {
	return c == White || c == Black
}

// ParseColor accepts "white"/"black" as well as the single letters used by FEN and the terminal loop.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "w", "white", "W":
		return White, true
	case "b", "black", "B":
		return Black, true
	}
	return "", false
}

// forward is the rank direction pawns of this color move in.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) homeRank() int {
	if c == White {
		return 0
	}
	return 7
}

func (c Color) pawnRank() int {
	if c == White {
		return 1
	}
	return 6
}

func (c Color) lastRank() int {
	if c == White {
		return 7
	}
	return 0
}
