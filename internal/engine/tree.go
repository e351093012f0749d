package engine

import (
	"github.com/benbeisheim/robchess/internal/model"
	"golang.org/x/exp/slices"
)

// Node is one position in the search tree. Move is the move that led here and
// is nil at the root. Eval is written by the parent after the node is
// searched and is from the point of view of the side that played Move, so
// the best child always has the highest Eval.
type Node struct {
	Children  []*Node
	Move      *model.Move
	Eval      int
	Evaluated bool
	Expanded  bool
}

func NewRoot() *Node {
	return &Node{}
}

// expand creates one unevaluated child per legal move of color. It only runs
// once per node; later visits reuse the children.
func (n *Node) expand(pos *model.Position, color model.Color) {
	if n.Expanded {
		return
	}
	moves := pos.GenerateMoves(color)
	n.Children = make([]*Node, 0, len(moves))
	for i := range moves {
		n.Children = append(n.Children, &Node{Move: &moves[i]})
	}
	n.Expanded = true
}

// SortChildren orders children by Eval, best first, with unevaluated children
// last. The sort is stable so equal scores keep their previous order.
func (n *Node) SortChildren() {
	slices.SortStableFunc(n.Children, func(a, b *Node) int {
		switch {
		case a.Evaluated && !b.Evaluated:
			return -1
		case !a.Evaluated && b.Evaluated:
			return 1
		case !a.Evaluated:
			return 0
		case a.Eval > b.Eval:
			return -1
		case a.Eval < b.Eval:
			return 1
		}
		return 0
	})
}

// Child returns the child reached by m, matched with Move.Equal.
func (n *Node) Child(m model.Move) (*Node, bool) {
	for _, c := range n.Children {
		if c.Move != nil && c.Move.Equal(m) {
			return c, true
		}
	}
	return nil, false
}

// Advance returns the subtree for m as a new root, dropping every sibling. If
// m was never expanded a fresh root is returned.
func (n *Node) Advance(m model.Move) *Node {
	child, ok := n.Child(m)
	if !ok {
		return NewRoot()
	}
	child.Move = nil
	n.Children = nil
	return child
}

// Size counts the nodes in the tree, the root included.
func (n *Node) Size() int {
	size := 1
	for _, c := range n.Children {
		size += c.Size()
	}
	return size
}
