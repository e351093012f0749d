package store

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("game record not found")

// Record is the persisted form of a game: where it started and the moves
// played since, enough to rebuild the session by replay.
type Record struct {
	ID          string `gorm:"primaryKey;type:varchar;size:36"`
	StartFEN    string `gorm:"type:varchar;size:100"`
	Moves       string `gorm:"type:text"`
	EngineColor string `gorm:"type:varchar;size:5"`
	Status      string `gorm:"type:varchar;size:10;index"`
	UpdatedAt   time.Time
}

// MoveList splits Moves, which are stored space separated.
func (r Record) MoveList() []string {
	return strings.Fields(r.Moves)
}

func (r *Record) SetMoves(moves []string) {
	r.Moves = strings.Join(moves, " ")
}

type Store interface {
	Save(ctx context.Context, r Record) error
	Load(ctx context.Context, id string) (Record, error)
}
