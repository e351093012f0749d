package model

import (
	"errors"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		kiwipete,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	}
	for _, fen := range fens {
		p, err := ParseFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestFENWithoutCounters(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 b - -")
	require.NoError(t, err)
	assert.Equal(t, Black, p.Turn)
	assert.Equal(t, 1, p.FullMove)
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNRR w KQkq -",
		"rnbqxbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"8/8/8/8/8/8/8/4K3 w - -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9",
		"4k3/8/8/8/3PR3/8/8/4K3 w - e5 0 1",
		"4k3/8/8/4p3/8/8/8/4K3 b - e6 0 1",
		"4k3/4p3/8/4p3/8/8/8/4K3 w - e6 0 1",
		"4k3/8/4n3/4p3/8/8/8/4K3 w - e6 0 1",
		"4k3/8/8/4P3/8/8/8/4K3 w - e6 0 1",
		"4k3/8/8/8/4P3/8/8/4K3 w - e3 0 1",
	}
	for _, fen := range bad {
		_, err := ParseFEN(fen)
		assert.True(t, errors.Is(err, ErrInvalidFEN), fen)
	}
}

func TestParseNotation(t *testing.T) {
	m, err := ParseNotation("e2e4")
	require.NoError(t, err)
	assert.Equal(t, Square{File: 4, Rank: 1}, m.From)
	assert.Equal(t, Square{File: 4, Rank: 3}, m.To)

	m, err = ParseNotation("a7a8n")
	require.NoError(t, err)
	assert.Equal(t, Knight, m.Promotion)
	assert.Equal(t, "a7a8n", m.String())

	for _, s := range []string{"", "e2", "e2e4e", "e2e4k", "22e4", "e9e4", "i2e4"} {
		_, err := ParseNotation(s)
		assert.Error(t, err, s)
	}
	_, err = ParseNotation("e9e4")
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestParseMoveResolvesPieces(t *testing.T) {
	p := NewPosition()
	_, err := ParseMove("e4e5", p)
	assert.True(t, errors.Is(err, ErrIllegalOrigin))

	p = mustFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	m, err := ParseMove("e5d6", p)
	require.NoError(t, err)
	assert.Equal(t, Piece{Type: Pawn, Color: White}, m.Piece)
	assert.True(t, m.IsCapture())
}

func TestMoveEqualIgnoresPieces(t *testing.T) {
	a := Move{From: Square{4, 1}, To: Square{4, 3}, Piece: Piece{Type: Pawn, Color: White}}
	b := Move{From: Square{4, 1}, To: Square{4, 3}}
	assert.True(t, a.Equal(b))
	b.Promotion = Queen
	assert.False(t, a.Equal(b))
}

func TestMoveJSON(t *testing.T) {
	m := Move{From: Square{6, 6}, To: Square{6, 7}, Promotion: Rook}
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"g7g8r"`, string(data))

	var back Move
	require.NoError(t, back.UnmarshalJSON(data))
	assert.True(t, m.Equal(back))
}

func TestPerft(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
		nodes int64
	}{
		{StartFEN, 1, 20},
		{StartFEN, 2, 400},
		{StartFEN, 3, 8902},
		{kiwipete, 1, 48},
		{kiwipete, 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}
	for _, tt := range tests {
		p := mustFEN(t, tt.fen)
		assert.Equal(t, tt.nodes, p.Perft(p.Turn, tt.depth), "%s depth %d", tt.fen, tt.depth)
	}
}

// walkAgainstOracle compares legal move lists with dragontoothmg at every node
// down to depth.
func walkAgainstOracle(t *testing.T, p *Position, depth int) {
	t.Helper()
	board := dragontoothmg.ParseFen(p.FEN())
	var want []string
	for _, m := range board.GenerateLegalMoves() {
		want = append(want, m.String())
	}
	got := Notations(p.GenerateMoves(p.Turn))
	sort.Strings(want)
	sort.Strings(got)
	require.Equal(t, want, got, p.FEN())

	if depth <= 1 {
		return
	}
	for _, m := range p.GenerateMoves(p.Turn) {
		u, err := p.MakeMove(m)
		require.NoError(t, err)
		walkAgainstOracle(t, p, depth-1)
		p.UnmakeMove(u)
	}
}

func TestMovesMatchReferenceGenerator(t *testing.T) {
	for _, fen := range []string{
		StartFEN,
		kiwipete,
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	} {
		walkAgainstOracle(t, mustFEN(t, fen), 2)
	}
}

func TestE2E4EndToEnd(t *testing.T) {
	p := NewPosition()
	m, err := ParseMove("e2e4", p)
	require.NoError(t, err)

	legal := false
	for _, lm := range p.GenerateMoves(White) {
		if lm.Equal(m) {
			legal = true
		}
	}
	require.True(t, legal)

	_, err = p.MakeMove(m)
	require.NoError(t, err)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", p.FEN())
}
