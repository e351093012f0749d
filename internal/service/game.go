package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/benbeisheim/robchess/internal/engine"
	"github.com/benbeisheim/robchess/internal/model"
	"github.com/benbeisheim/robchess/internal/store"
	"github.com/benbeisheim/robchess/internal/ws"
)

// EnginePlayerID occupies the seat the engine plays.
const EnginePlayerID = "engine"

const defaultTimeControl = 10 * time.Minute

// StatusTimeout marks a game lost on time.
const StatusTimeout model.Status = "timeout"

// Observer receives game state pushes. *websocket.Conn satisfies it; the game
// serialises writes to each observer.
type Observer interface {
	WriteJSON(v interface{}) error
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]*ws.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*ws.Conn),
	}
}

type Seat struct {
	ID       string      `json:"name"`
	Color    model.Color `json:"color"`
	TimeLeft int         `json:"timeLeft"`
	Engine   bool        `json:"engine"`
}

type GameState struct {
	ID          string             `json:"id"`
	FEN         string             `json:"fen"`
	Board       [8][8]*model.Piece `json:"boardState"`
	ToMove      model.Color        `json:"toMove"`
	MoveHistory []string           `json:"moveHistory"`
	LastMove    *string            `json:"lastMove"`
	IsCheck     bool               `json:"isCheck"`
	Status      model.Status       `json:"status"`
	Resolve     *string            `json:"resolve"`
	LegalMoves  []string           `json:"legalMoves"`
	LastSearch  *engine.Result     `json:"lastSearch"`
	Players     struct {
		White Seat `json:"white"`
		Black Seat `json:"black"`
	} `json:"players"`
}

// Game is one session plus the people and engine playing it and the
// connections watching it.
type Game struct {
	ID          string
	mu          sync.Mutex
	session     *engine.Session
	engine      *engine.Engine
	engineColor model.Color
	players     map[model.Color]string
	clocks      map[model.Color]*Clock
	flagged     model.Color
	lastSearch  *engine.Result
	connections *GameConnections
	log         log.Interface
}

// NewGame wraps session. engineColor is the seat the engine plays, or empty
// for a game between two people.
func NewGame(id string, session *engine.Session, eng *engine.Engine, engineColor model.Color) *Game {
	g := &Game{
		ID:          id,
		session:     session,
		engine:      eng,
		engineColor: engineColor,
		players:     make(map[model.Color]string),
		clocks: map[model.Color]*Clock{
			model.White: NewClock(defaultTimeControl),
			model.Black: NewClock(defaultTimeControl),
		},
		connections: NewGameConnections(),
		log:         log.WithField("game", id),
	}
	if engineColor.Valid() {
		g.players[engineColor] = EnginePlayerID
	}
	return g
}

// AddPlayer seats playerID in the first free seat, white first. A player who
// is already seated gets their color back.
func (g *Game) AddPlayer(playerID string) (model.Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if color, ok := g.colorOf(playerID); ok {
		return color, nil
	}
	for _, color := range []model.Color{model.White, model.Black} {
		if g.players[color] == "" {
			g.players[color] = playerID
			g.log.WithFields(log.Fields{"player": playerID, "color": color}).Info("player joined")
			g.startClock()
			return color, nil
		}
	}
	return "", ErrGameFull
}

// startClock runs the clock of the side to move once both seats are taken.
func (g *Game) startClock() {
	if g.players[model.White] == "" || g.players[model.Black] == "" {
		return
	}
	if g.status() == model.Ongoing {
		g.clocks[g.session.Turn()].Start()
	}
}

func (g *Game) colorOf(playerID string) (model.Color, bool) {
	for color, id := range g.players {
		if id == playerID {
			return color, true
		}
	}
	return "", false
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.colorOf(playerID)
	return ok
}

func (g *Game) canSpectate() bool {
	return g.players[model.White] == "" || g.players[model.Black] == ""
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

func (g *Game) state() GameState {
	pos := g.session.Position
	s := GameState{
		ID:          g.ID,
		FEN:         pos.FEN(),
		ToMove:      pos.Turn,
		MoveHistory: model.Notations(g.session.History),
		IsCheck:     pos.InCheck(pos.Turn),
		Status:      g.status(),
		LegalMoves:  model.Notations(g.session.LegalMoves()),
		LastSearch:  g.lastSearch,
	}
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if piece := pos.Board[r][f]; !piece.Empty() {
				p := piece
				s.Board[r][f] = &p
			}
		}
	}
	if last, ok := g.session.LastMove(); ok {
		notation := last.String()
		s.LastMove = &notation
	}
	if resolve := g.resolve(); resolve != "" {
		s.Resolve = &resolve
	}
	s.Players.White = g.seat(model.White)
	s.Players.Black = g.seat(model.Black)
	return s
}

func (g *Game) seat(color model.Color) Seat {
	return Seat{
		ID:       g.players[color],
		Color:    color,
		TimeLeft: g.clocks[color].Tenths(),
		Engine:   color == g.engineColor,
	}
}

func (g *Game) status() model.Status {
	if g.flagged != "" {
		return StatusTimeout
	}
	return g.session.Status()
}

// resolve names the winner, "draw", or "" while the game is running.
func (g *Game) resolve() string {
	if g.flagged != "" {
		return string(g.flagged.Opposite())
	}
	switch g.session.Status() {
	case model.Checkmate:
		return string(g.session.Turn().Opposite())
	case model.Stalemate:
		return "draw"
	}
	return ""
}

// MakeMove plays notation for playerID and, when the engine holds the next
// seat, lets it reply before the new state is broadcast. A move attempted after
// the mover's flag fell ends the game with ErrFlagFell; that state is
// broadcast too.
func (g *Game) MakeMove(playerID, notation string) error {
	g.mu.Lock()
	err := g.makeMove(playerID, notation)
	if err == nil {
		err = g.playEngine()
	}
	state := g.state()
	g.mu.Unlock()

	if err != nil && !errors.Is(err, ErrFlagFell) {
		return err
	}
	g.broadcastState(state)
	return err
}

func (g *Game) makeMove(playerID, notation string) error {
	if g.status() != model.Ongoing {
		return ErrGameOver
	}
	color, ok := g.colorOf(playerID)
	if !ok || color == g.engineColor {
		return ErrNotInGame
	}
	if color != g.session.Turn() {
		return ErrNotYourTurn
	}
	if g.clocks[color].TimeLeft() <= 0 {
		g.clocks[color].Stop()
		g.flagged = color
		g.log.WithField("color", color).Info("flag fell")
		return ErrFlagFell
	}

	m, err := model.ParseMove(notation, g.session.Position)
	if err != nil {
		return err
	}
	return g.commit(m)
}

func (g *Game) commit(m model.Move) error {
	mover := g.session.Turn()
	if err := g.session.CommitMove(m); err != nil {
		return err
	}
	g.clocks[mover].Stop()
	if g.session.Status() == model.Ongoing {
		g.clocks[mover.Opposite()].Start()
	}
	g.log.WithFields(log.Fields{"color": mover, "move": m.String()}).Debug("move committed")
	return nil
}

// PlayEngine lets the engine move if it holds the seat to move.
func (g *Game) PlayEngine() error {
	g.mu.Lock()
	err := g.playEngine()
	state := g.state()
	g.mu.Unlock()

	if err != nil {
		return err
	}
	g.broadcastState(state)
	return nil
}

func (g *Game) playEngine() error {
	color := g.session.Turn()
	if color != g.engineColor || g.session.Status() != model.Ongoing {
		return nil
	}
	g.clocks[color].Start()
	result, err := g.engine.Think(g.session, color)
	if err != nil {
		return fmt.Errorf("engine search: %w", err)
	}
	g.lastSearch = &result
	return g.commit(result.Move)
}

// Think searches the position for the side to move without playing the move.
func (g *Game) Think() (engine.Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	result, err := g.engine.Think(g.session, g.session.Turn())
	if err != nil {
		return result, err
	}
	g.lastSearch = &result
	return result, nil
}

// Position returns a copy of the current position.
func (g *Game) Position() model.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return *g.session.Position
}

func (g *Game) LastMove() (model.Move, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.LastMove()
}

func (g *Game) Record() store.Record {
	g.mu.Lock()
	defer g.mu.Unlock()

	r := store.Record{
		ID:          g.ID,
		StartFEN:    g.session.StartFEN(),
		EngineColor: string(g.engineColor),
		Status:      string(g.status()),
	}
	r.SetMoves(model.Notations(g.session.History))
	return r
}

func (g *Game) RegisterConnection(playerID string, conn Observer) error {
	g.mu.Lock()
	_, seated := g.colorOf(playerID)
	isAuthorized := seated || g.canSpectate()
	state := g.state()
	g.mu.Unlock()

	if !isAuthorized {
		return ErrNotInGame
	}

	wrapped := ws.NewConn(conn)
	g.connections.mu.Lock()
	g.connections.connections[playerID] = wrapped
	g.connections.mu.Unlock()
	g.log.WithField("player", playerID).Debug("connection registered")

	if err := wrapped.Send(ws.MessageTypeGameState, state); err != nil {
		g.UnregisterConnection(playerID)
		return err
	}
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, playerID)
}

func (g *Game) broadcastState(state GameState) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		g.log.WithError(err).Error("marshal game state")
		return
	}

	g.connections.mu.RLock()
	active := make(map[string]*ws.Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		active[playerID] = conn
	}
	g.connections.mu.RUnlock()

	for playerID, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			g.log.WithError(err).WithField("player", playerID).Warn("dropping connection")
			g.UnregisterConnection(playerID)
		}
	}
}
