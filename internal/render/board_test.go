package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/benbeisheim/robchess/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardDrawsEveryPiece(t *testing.T) {
	var buf bytes.Buffer
	Board(&buf, model.NewPosition())
	out := buf.String()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, 64, strings.Count(out, "<rect"))
	assert.Equal(t, 8, strings.Count(out, "♙"))
	assert.Equal(t, 8, strings.Count(out, "♟"))
	assert.Equal(t, 1, strings.Count(out, "♔"))
	assert.Equal(t, 32, strings.Count(out, "<text"))
}

func TestBoardHighlightsLastMove(t *testing.T) {
	pos := model.NewPosition()
	m, err := model.ParseMove("e2e4", pos)
	require.NoError(t, err)
	_, err = pos.MakeMove(m)
	require.NoError(t, err)

	var buf bytes.Buffer
	Board(&buf, pos, Highlight(m), Coordinates)
	out := buf.String()
	// e2 is light, e4 is light
	assert.Equal(t, 2, strings.Count(out, lightHighlight))
	assert.Equal(t, 32+16, strings.Count(out, "<text"))
}

func TestOrientation(t *testing.T) {
	white := &Options{}
	black := &Options{fromBlack: true}
	a1 := model.Square{File: 0, Rank: 0}

	x, y := white.origin(a1)
	assert.Equal(t, 0, x)
	assert.Equal(t, 7*squareSize, y)

	x, y = black.origin(a1)
	assert.Equal(t, 7*squareSize, x)
	assert.Equal(t, 0, y)
}
