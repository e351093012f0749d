package engine

import (
	"fmt"

	"github.com/benbeisheim/robchess/internal/model"
)

// Session is one game: the live position, the moves played so far and the
// search tree rooted at the current position.
type Session struct {
	Position *model.Position
	History  []model.Move
	Root     *Node

	startFEN string
}

func NewSession() *Session {
	return &Session{
		Position: model.NewPosition(),
		Root:     NewRoot(),
		startFEN: model.StartFEN,
	}
}

func NewSessionFromFEN(fen string) (*Session, error) {
	pos, err := model.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Session{Position: pos, Root: NewRoot(), startFEN: pos.FEN()}, nil
}

func (s *Session) StartFEN() string {
	return s.startFEN
}

func (s *Session) Turn() model.Color {
	return s.Position.Turn
}

// Status reports the state of the side to move.
func (s *Session) Status() model.Status {
	return s.Position.Status(s.Position.Turn)
}

func (s *Session) LegalMoves() []model.Move {
	return s.Position.GenerateMoves(s.Position.Turn)
}

// CommitMove plays m for the side to move, records it and makes the matching
// subtree the new search root. A pawn move to the last rank without a
// promotion piece promotes to a queen.
func (s *Session) CommitMove(m model.Move) error {
	if !m.From.OnBoard() || !m.To.OnBoard() {
		return fmt.Errorf("%w: %s", model.ErrOutOfBounds, m)
	}
	legal, ok := s.findLegal(m)
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrIllegalMove, m)
	}

	u, err := s.Position.MakeMove(legal)
	if err != nil {
		return err
	}
	s.History = append(s.History, u.Move)
	s.Root = s.Root.Advance(u.Move)
	return nil
}

func (s *Session) findLegal(m model.Move) (model.Move, bool) {
	moves := s.LegalMoves()
	for _, lm := range moves {
		if lm.Equal(m) {
			return lm, true
		}
	}
	if m.Promotion == "" {
		m.Promotion = model.Queen
		for _, lm := range moves {
			if lm.Equal(m) {
				return lm, true
			}
		}
	}
	return model.Move{}, false
}

// LastMove returns the most recent committed move.
func (s *Session) LastMove() (model.Move, bool) {
	if len(s.History) == 0 {
		return model.Move{}, false
	}
	return s.History[len(s.History)-1], true
}
