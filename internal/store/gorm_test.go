package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only against a real database, selected the same way as the server:
// ROBCHESS_TEST_DSN, e.g. "dbname=robchess_test".
func TestGormStore(t *testing.T) {
	dsn, ok := os.LookupEnv("ROBCHESS_TEST_DSN")
	if !ok {
		t.Skip("ROBCHESS_TEST_DSN not set")
	}
	s, err := OpenPostgres(dsn)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	r := Record{ID: "00000000-0000-0000-0000-000000000001", StartFEN: "fen", Status: "ongoing"}
	r.SetMoves([]string{"d2d4"})
	require.NoError(t, s.Save(ctx, r))

	r.SetMoves([]string{"d2d4", "d7d5"})
	require.NoError(t, s.Save(ctx, r))

	got, err := s.Load(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"d2d4", "d7d5"}, got.MoveList())

	_, err = s.Load(ctx, "00000000-0000-0000-0000-00000000ffff")
	assert.True(t, errors.Is(err, ErrNotFound))
}
