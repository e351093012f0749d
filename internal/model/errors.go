package model

import "errors"

var (
	ErrOutOfBounds     = errors.New("move out of bounds")
	ErrIllegalOrigin   = errors.New("no piece at origin square")
	ErrIllegalMove     = errors.New("illegal move")
	ErrNoLegalMoves    = errors.New("no legal moves")
	ErrInvalidNotation = errors.New("invalid move notation")
	ErrInvalidFEN      = errors.New("invalid fen")
)
