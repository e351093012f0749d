package service

import (
	"errors"
	"fmt"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrGameFull     = errors.New("game is full")
	ErrNotInGame    = errors.New("player not in game")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrGameOver     = errors.New("game is over")

	// ErrFlagFell is returned by the move that finds the mover out of time.
	ErrFlagFell = fmt.Errorf("%w: out of time", ErrGameOver)
)
