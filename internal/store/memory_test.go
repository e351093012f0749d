package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	r := Record{ID: "g1", StartFEN: "start", EngineColor: "black", Status: "ongoing"}
	r.SetMoves([]string{"e2e4", "e7e5"})
	require.NoError(t, s.Save(ctx, r))

	got, err := s.Load(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"e2e4", "e7e5"}, got.MoveList())
	assert.Equal(t, "black", got.EngineColor)
	assert.False(t, got.UpdatedAt.IsZero())

	r.SetMoves([]string{"e2e4", "e7e5", "g1f3"})
	require.NoError(t, s.Save(ctx, r))
	got, err = s.Load(ctx, "g1")
	require.NoError(t, err)
	assert.Len(t, got.MoveList(), 3)
}

func TestMemoryStoreMissing(t *testing.T) {
	_, err := NewMemoryStore().Load(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEmptyMoveList(t *testing.T) {
	assert.Empty(t, Record{}.MoveList())
}
