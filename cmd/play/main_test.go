package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/benbeisheim/robchess/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = &log.Logger{Handler: discard.Default, Level: log.InfoLevel}

func TestPlayAgainstEngine(t *testing.T) {
	session := engine.NewSession()
	eng := engine.New(engine.Config{MinDepth: 1, MaxDepth: 2, Pruning: true}, quiet)

	in := strings.NewReader("purple\nw\ne2e5\ne2e4\nmoves\nquit\n")
	var out bytes.Buffer
	require.NoError(t, play(session, eng, in, &out))

	text := out.String()
	assert.Contains(t, text, "Play as (w)hite or (b)lack? Play as")
	assert.Contains(t, text, "illegal move: e2e5")
	assert.Contains(t, text, "Engine plays")
	assert.Len(t, session.History, 2)
	assert.Equal(t, "e2e4", session.History[0].String())
}

func TestPlayReportsMate(t *testing.T) {
	session, err := engine.NewSessionFromFEN("6k1/5ppp/8/8/7n/8/8/R5K1 b - - 0 1")
	require.NoError(t, err)
	eng := engine.New(engine.DefaultConfig(), quiet)

	in := strings.NewReader("black\nh4f5\n")
	var out bytes.Buffer
	err = play(session, eng, in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Engine plays a1a8")
	assert.Contains(t, out.String(), "checkmate, black to move.")
}

func TestPlayStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	err := play(engine.NewSession(), engine.New(engine.DefaultConfig(), quiet), strings.NewReader("w\n"), &out)
	assert.Error(t, err)
}
