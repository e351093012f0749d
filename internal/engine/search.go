package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/benbeisheim/robchess/internal/model"
)

var ErrNotToMove = errors.New("side is not to move")

// Iteration is the outcome of one fixed-depth pass.
type Iteration struct {
	Depth   int           `json:"depth"`
	Move    model.Move    `json:"move"`
	Score   int           `json:"score"`
	Nodes   int           `json:"nodes"`
	Elapsed time.Duration `json:"elapsed"`
}

// Result is what Think reports: the move of the deepest completed pass plus
// the history of every pass. Status is only meaningful when no move exists.
type Result struct {
	Move       model.Move   `json:"move"`
	Score      int          `json:"score"`
	Depth      int          `json:"depth"`
	Nodes      int          `json:"nodes"`
	Status     model.Status `json:"status"`
	Iterations []Iteration  `json:"iterations"`
	Stats      Summary      `json:"stats"`
}

type Engine struct {
	cfg Config
	log log.Interface
}

// New returns an engine for cfg. A nil logger falls back to the package
// level apex logger.
func New(cfg Config, logger log.Interface) *Engine {
	if logger == nil {
		logger = log.Log
	}
	return &Engine{cfg: cfg, log: logger}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// searcher holds the state of one pass: the shared position that is mutated
// and restored at every node, and the node counter.
type searcher struct {
	pos     *model.Position
	pruning bool
	nodes   int
}

func (s *searcher) negamax(node *Node, depth int, color model.Color, alpha, beta, ply int) (int, *Node, error) {
	s.nodes++
	if depth == 0 {
		return Evaluate(s.pos, color), nil, nil
	}

	node.expand(s.pos, color)
	if len(node.Children) == 0 {
		if s.pos.InCheck(color) {
			return -MateScore + ply, nil, nil
		}
		return 0, nil, nil
	}

	best := -infinity
	var bestChild *Node
	for _, child := range node.Children {
		u, err := s.pos.MakeMove(*child.Move)
		if err != nil {
			return 0, nil, fmt.Errorf("searching %s: %w", child.Move, err)
		}
		score, _, err := s.negamax(child, depth-1, color.Opposite(), -beta, -alpha, ply+1)
		s.pos.UnmakeMove(u)
		if err != nil {
			return 0, nil, err
		}
		score = -score
		child.Eval, child.Evaluated = score, true

		if score > best {
			best, bestChild = score, child
		}
		if best > alpha {
			alpha = best
		}
		if s.pruning && alpha >= beta {
			break
		}
	}

	node.SortChildren()
	return best, bestChild, nil
}

// Search runs a single negamax pass of the given depth from root, which must
// describe pos with color to move. pos is left exactly as it was found.
func (e *Engine) Search(pos *model.Position, root *Node, color model.Color, depth int) (Iteration, error) {
	if depth < 1 {
		return Iteration{}, fmt.Errorf("search depth must be at least 1, got %d", depth)
	}
	root.expand(pos, color)
	if len(root.Children) == 0 {
		return Iteration{}, fmt.Errorf("%w: %s is %s", model.ErrNoLegalMoves, color, pos.Status(color))
	}

	start := time.Now()
	s := &searcher{pos: pos, pruning: e.cfg.Pruning}
	score, best, err := s.negamax(root, depth, color, -infinity, infinity, 0)
	if err != nil {
		return Iteration{}, err
	}
	root.Eval, root.Evaluated = score, true

	return Iteration{
		Depth:   depth,
		Move:    *best.Move,
		Score:   score,
		Nodes:   s.nodes,
		Elapsed: time.Since(start),
	}, nil
}

// Think picks a move for color in the session by iterative deepening from
// MinDepth to MaxDepth. Each pass reuses the tree and the child order left
// by the previous one. When color has no legal move the result carries the
// checkmate or stalemate status along with ErrNoLegalMoves.
func (e *Engine) Think(session *Session, color model.Color) (Result, error) {
	if err := e.cfg.Validate(); err != nil {
		return Result{}, err
	}
	if session.Position.Turn != color {
		return Result{}, fmt.Errorf("%w: %s", ErrNotToMove, color)
	}
	if status := session.Status(); status != model.Ongoing {
		return Result{Status: status}, fmt.Errorf("%w: %s is %s", model.ErrNoLegalMoves, color, status)
	}

	result := Result{Status: model.Ongoing}
	for depth := e.cfg.MinDepth; depth <= e.cfg.MaxDepth; depth++ {
		it, err := e.Search(session.Position, session.Root, color, depth)
		if err != nil {
			return result, err
		}
		result.Iterations = append(result.Iterations, it)
		result.Move, result.Score, result.Depth = it.Move, it.Score, it.Depth
		result.Nodes += it.Nodes

		e.log.WithFields(log.Fields{
			"depth": it.Depth,
			"move":  it.Move.String(),
			"score": it.Score,
			"nodes": it.Nodes,
			"took":  it.Elapsed,
		}).Debug("iteration complete")

		if IsMate(it.Score) {
			break
		}
	}

	result.Stats = Summarize(result.Iterations)
	e.log.WithFields(log.Fields{
		"color":     color,
		"move":      result.Move.String(),
		"score":     result.Score,
		"depth":     result.Depth,
		"nodes":     result.Nodes,
		"branching": result.Stats.BranchingFactor,
	}).Info("engine move")
	return result, nil
}
