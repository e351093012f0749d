// Package render draws positions as SVG.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/benbeisheim/robchess/internal/model"
)

const squareSize = 45

var (
	lightSquare     = "fill:#f0d9b5"
	darkSquare      = "fill:#b58863"
	lightHighlight  = "fill:#cdd26a"
	darkHighlight   = "fill:#aaa23a"
	coordinateStyle = "font-family:sans-serif;font-size:9px;fill:#555"
)

var glyphs = map[model.Piece]string{
	{Type: model.King, Color: model.White}:   "♔",
	{Type: model.Queen, Color: model.White}:  "♕",
	{Type: model.Rook, Color: model.White}:   "♖",
	{Type: model.Bishop, Color: model.White}: "♗",
	{Type: model.Knight, Color: model.White}: "♘",
	{Type: model.Pawn, Color: model.White}:   "♙",
	{Type: model.King, Color: model.Black}:   "♚",
	{Type: model.Queen, Color: model.Black}:  "♛",
	{Type: model.Rook, Color: model.Black}:   "♜",
	{Type: model.Bishop, Color: model.Black}: "♝",
	{Type: model.Knight, Color: model.Black}: "♞",
	{Type: model.Pawn, Color: model.Black}:   "♟",
}

// Options collects the settings applied by the option funcs passed to Board.
type Options struct {
	highlight map[model.Square]bool
	fromBlack bool
	coords    bool
}

// Highlight marks the origin and destination of m.
func Highlight(m model.Move) func(*Options) {
	return func(o *Options) {
		o.highlight[m.From] = true
		o.highlight[m.To] = true
	}
}

// FromBlack draws the board with rank 8 at the bottom.
func FromBlack(o *Options) {
	o.fromBlack = true
}

// Coordinates adds file and rank labels along the edges.
func Coordinates(o *Options) {
	o.coords = true
}

// Board writes an SVG image of pos to w.
func Board(w io.Writer, pos *model.Position, opts ...func(*Options)) {
	o := &Options{highlight: make(map[model.Square]bool)}
	for _, opt := range opts {
		opt(o)
	}

	canvas := svg.New(w)
	canvas.Start(8*squareSize, 8*squareSize)
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := model.Square{File: f, Rank: r}
			x, y := o.origin(sq)
			canvas.Rect(x, y, squareSize, squareSize, o.squareStyle(sq))

			if piece, ok := pos.PieceAt(sq); ok {
				canvas.Text(x+squareSize/2, y+squareSize*3/4, glyphs[piece],
					"text-anchor:middle;font-size:36px")
			}
		}
	}
	if o.coords {
		o.drawCoordinates(canvas)
	}
	canvas.End()
}

// origin is the top left corner of sq on the canvas.
func (o *Options) origin(sq model.Square) (int, int) {
	col, row := sq.File, 7-sq.Rank
	if o.fromBlack {
		col, row = 7-sq.File, sq.Rank
	}
	return col * squareSize, row * squareSize
}

func (o *Options) squareStyle(sq model.Square) string {
	light := (sq.File+sq.Rank)%2 == 1
	switch {
	case o.highlight[sq] && light:
		return lightHighlight
	case o.highlight[sq]:
		return darkHighlight
	case light:
		return lightSquare
	}
	return darkSquare
}

func (o *Options) drawCoordinates(canvas *svg.SVG) {
	for i := 0; i < 8; i++ {
		file := model.Square{File: i, Rank: 0}
		if o.fromBlack {
			file.Rank = 7
		}
		x, y := o.origin(file)
		canvas.Text(x+squareSize-7, y+squareSize-3, string(rune('a'+i)), coordinateStyle)

		rank := model.Square{File: 0, Rank: i}
		if o.fromBlack {
			rank.File = 7
		}
		x, y = o.origin(rank)
		canvas.Text(x+2, y+10, fmt.Sprint(i+1), coordinateStyle)
	}
}
