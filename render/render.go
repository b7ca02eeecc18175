// Package render formats shogi positions for human inspection: a plain
// text board (grounded on the teacher's format.Position, generalized from
// an 8x8 rune board to 9x9 with hands) and an SVG board for richer
// viewing, used mainly to visualize test cases and perft failures.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajstarks/svgo"
	"github.com/shogo-dev/shogo"
)

var pieceSymbols = map[shogo.PieceType]string{
	shogo.Pawn: "P", shogo.Lance: "L", shogo.Knight: "N", shogo.Silver: "S",
	shogo.Gold: "G", shogo.Bishop: "B", shogo.Rook: "R", shogo.King: "K",
	shogo.ProPawn: "+P", shogo.ProLance: "+L", shogo.ProKnight: "+N",
	shogo.ProSilver: "+S", shogo.ProBishop: "+B", shogo.ProRook: "+R",
}

// Text renders p as a 9x9 grid of piece symbols, files 9..1 left to right
// (matching SFEN rank order) and ranks a..i top to bottom, followed by the
// side to move, the ply and both hands. No file or rank labels are
// printed.
func Text(p *shogo.Position) string {
	var sb strings.Builder

	for rank := 1; rank <= 9; rank++ {
		for file := 9; file >= 1; file-- {
			sq, _ := shogo.NewSquare(file, rank)
			piece := p.PieceAt(sq)
			sb.WriteString(" ")
			if piece == shogo.PieceNone {
				sb.WriteString(" . ")
				continue
			}
			sym := pieceSymbols[piece.Type()]
			if piece.Color() == shogo.White {
				sym = strings.ToLower(sym)
			}
			sb.WriteString(fmt.Sprintf("%-2s", sym))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(fmt.Sprintf("side to move: %s  ply: %d\n", p.SideToMove(), p.PlyCount()))
	sb.WriteString(formatHand("Black", p.Hand(shogo.Black)))
	sb.WriteString(formatHand("White", p.Hand(shogo.White)))

	return sb.String()
}

func formatHand(label string, h shogo.Hand) string {
	var sb strings.Builder
	sb.WriteString(label + " hand:")
	any := false
	for _, pt := range []shogo.PieceType{
		shogo.Rook, shogo.Bishop, shogo.Gold, shogo.Silver,
		shogo.Knight, shogo.Lance, shogo.Pawn,
	} {
		if n := h.Count(pt); n > 0 {
			sb.WriteString(fmt.Sprintf(" %s x%d", pieceSymbols[pt], n))
			any = true
		}
	}
	if !any {
		sb.WriteString(" (empty)")
	}
	sb.WriteByte('\n')
	return sb.String()
}

const cellSize = 48

// RenderSFEN parses sfenStr and writes an SVG board diagram to w.
func RenderSFEN(w io.Writer, sfenStr string) error {
	p := shogo.NewPosition()
	if err := p.SetSFEN(sfenStr); err != nil {
		return fmt.Errorf("shogo/render: %w", err)
	}
	RenderPosition(w, p)
	return nil
}

// RenderPosition writes an SVG board diagram of p to w.
func RenderPosition(w io.Writer, p *shogo.Position) {
	boardPx := cellSize * 9
	canvas := svg.New(w)
	canvas.Start(boardPx+cellSize, boardPx+cellSize*2)
	canvas.Rect(0, 0, boardPx, boardPx, "fill:none;stroke:black")

	for i := 0; i <= 9; i++ {
		canvas.Line(0, i*cellSize, boardPx, i*cellSize, "stroke:black")
		canvas.Line(i*cellSize, 0, i*cellSize, boardPx, "stroke:black")
	}

	for rank := 1; rank <= 9; rank++ {
		for file := 9; file >= 1; file-- {
			sq, _ := shogo.NewSquare(file, rank)
			piece := p.PieceAt(sq)
			if piece == shogo.PieceNone {
				continue
			}
			x := (9-file)*cellSize + cellSize/2
			y := (rank-1)*cellSize + cellSize/2 + cellSize/3
			sym := pieceSymbols[piece.Type()]
			style := "text-anchor:middle;font-size:16px;fill:black"
			if piece.Color() == shogo.White {
				style = "text-anchor:middle;font-size:16px;fill:black;text-decoration:underline"
			}
			canvas.Text(x, y, sym, style)
		}
	}

	canvas.Text(10, boardPx+24, fmt.Sprintf("side to move: %s  ply: %d", p.SideToMove(), p.PlyCount()), "font-size:14px")
	canvas.End()
}
