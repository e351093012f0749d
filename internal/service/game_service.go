package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/benbeisheim/robchess/internal/engine"
	"github.com/benbeisheim/robchess/internal/model"
	"github.com/benbeisheim/robchess/internal/store"
	"github.com/google/uuid"
)

var ErrInvalidColor = errors.New("invalid engine color")

type CreateOptions struct {
	EngineColor string `json:"engineColor"`
	FEN         string `json:"fen"`
}

// GameService is what the controllers talk to. Games not in memory are
// rebuilt from the store by replaying their moves.
type GameService struct {
	gameManager *GameManager
	store       store.Store
	search      engine.Config
	log         log.Interface
}

func NewGameService(gameManager *GameManager, st store.Store, search engine.Config, logger log.Interface) *GameService {
	if logger == nil {
		logger = log.Log
	}
	return &GameService{
		gameManager: gameManager,
		store:       st,
		search:      search,
		log:         logger,
	}
}

func (gs *GameService) newEngine(gameID string) *engine.Engine {
	return engine.New(gs.search, gs.log.WithField("game", gameID))
}

// CreateGame starts a game and seats playerID in the seat the engine does not
// hold. If the engine plays white it makes its first move right away.
func (gs *GameService) CreateGame(ctx context.Context, playerID string, opts CreateOptions) (string, error) {
	var engineColor model.Color
	if opts.EngineColor != "" {
		color, ok := model.ParseColor(opts.EngineColor)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, opts.EngineColor)
		}
		engineColor = color
	}

	session := engine.NewSession()
	if opts.FEN != "" {
		var err error
		if session, err = engine.NewSessionFromFEN(opts.FEN); err != nil {
			return "", err
		}
	}

	gameID := uuid.New().String()
	game := NewGame(gameID, session, gs.newEngine(gameID), engineColor)
	if err := gs.gameManager.AddGame(game); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	if _, err := game.AddPlayer(playerID); err != nil {
		return "", err
	}
	if err := game.PlayEngine(); err != nil {
		return "", err
	}
	gs.save(ctx, game)

	gs.log.WithFields(log.Fields{"game": gameID, "player": playerID, "engine": engineColor}).Info("game created")
	return gameID, nil
}

// game finds a live game or resumes it from the store.
func (gs *GameService) game(ctx context.Context, gameID string) (*Game, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err == nil {
		return game, nil
	}
	if _, parseErr := uuid.Parse(gameID); parseErr != nil {
		return nil, ErrGameNotFound
	}

	record, err := gs.store.Load(ctx, gameID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}

	session, err := Replay(record.StartFEN, record.MoveList())
	if err != nil {
		return nil, fmt.Errorf("resume game %s: %w", gameID, err)
	}
	engineColor, _ := model.ParseColor(record.EngineColor)
	game = NewGame(gameID, session, gs.newEngine(gameID), engineColor)
	if record.Status == string(StatusTimeout) {
		// only the side to move can lose on time
		game.flagged = session.Turn()
	}
	if err := gs.gameManager.AddGame(game); err != nil {
		// lost a race with another resume
		return gs.gameManager.GetGame(gameID)
	}
	gs.log.WithFields(log.Fields{"game": gameID, "moves": len(session.History)}).Info("game resumed")
	return game, nil
}

// Replay rebuilds a session from its start position and move list.
func Replay(startFEN string, moves []string) (*engine.Session, error) {
	session, err := engine.NewSessionFromFEN(startFEN)
	if err != nil {
		return nil, err
	}
	for i, notation := range moves {
		m, err := model.ParseNotation(notation)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		if err := session.CommitMove(m); err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return session, nil
}

func (gs *GameService) save(ctx context.Context, game *Game) {
	if err := gs.store.Save(ctx, game.Record()); err != nil {
		gs.log.WithError(err).WithField("game", game.ID).Error("failed to save game")
	}
}

func (gs *GameService) JoinGame(ctx context.Context, gameID string, playerID string) (model.Color, error) {
	game, err := gs.game(ctx, gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gs *GameService) GetGameState(ctx context.Context, gameID string) (GameState, error) {
	game, err := gs.game(ctx, gameID)
	if err != nil {
		return GameState{}, err
	}
	return game.GetState(), nil
}

func (gs *GameService) LegalMoves(ctx context.Context, gameID string) ([]string, error) {
	state, err := gs.GetGameState(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return state.LegalMoves, nil
}

// HandleMove plays a move for playerID, lets the engine answer and persists
// the result.
func (gs *GameService) HandleMove(ctx context.Context, gameID string, playerID string, notation string) (GameState, error) {
	game, err := gs.game(ctx, gameID)
	if err != nil {
		return GameState{}, err
	}
	if err := game.MakeMove(playerID, notation); err != nil {
		if errors.Is(err, ErrFlagFell) {
			gs.save(ctx, game)
		}
		return GameState{}, err
	}
	gs.save(ctx, game)
	return game.GetState(), nil
}

func (gs *GameService) Think(ctx context.Context, gameID string) (engine.Result, error) {
	game, err := gs.game(ctx, gameID)
	if err != nil {
		return engine.Result{}, err
	}
	return game.Think()
}

// Position returns a copy of the game's position and its last move, if any.
func (gs *GameService) Position(ctx context.Context, gameID string) (model.Position, *model.Move, error) {
	game, err := gs.game(ctx, gameID)
	if err != nil {
		return model.Position{}, nil, err
	}
	pos := game.Position()
	if last, ok := game.LastMove(); ok {
		return pos, &last, nil
	}
	return pos, nil, nil
}

func (gs *GameService) RegisterConnection(ctx context.Context, gameID string, playerID string, conn Observer) error {
	if _, err := gs.game(ctx, gameID); err != nil {
		return err
	}
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}
