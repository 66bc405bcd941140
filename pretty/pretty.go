// Package pretty renders boards and moves for people reading a terminal.
// The output is for diagnostics only and its layout may change.
package pretty

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"chess-movegen/movegen"
)

// Options control Board rendering.
type Options struct {
	// Highlight marks squares, e.g. the destinations of one piece.
	Highlight []movegen.Square
	// NoColor disables escape sequences regardless of the terminal.
	NoColor bool
}

var (
	lightSquare = color.New(color.BgWhite, color.FgBlack)
	darkSquare  = color.New(color.BgHiBlack, color.FgHiWhite)
	markSquare  = color.New(color.BgYellow, color.FgBlack)
	blackPiece  = color.New(color.Bold)
	captureMark = color.New(color.FgRed)
	promoteMark = color.New(color.FgGreen)
)

func paint(c *color.Color, noColor bool, s string) string {
	if noColor {
		return s
	}
	return c.Sprint(s)
}

// Board writes an eight-line grid, rank 8 first, followed by file letters and
// a status line with side to move, castling rights and the FEN.
func Board(w io.Writer, b *movegen.Board, opts Options) error {
	noColor := opts.NoColor || color.NoColor
	marked := make(map[movegen.Square]bool, len(opts.Highlight))
	for _, sq := range opts.Highlight {
		marked[sq] = true
	}
	for r := movegen.BoardDim - 1; r >= 0; r-- {
		if _, err := fmt.Fprintf(w, "%d ", r+1); err != nil {
			return err
		}
		for c := 0; c < movegen.BoardDim; c++ {
			sq := movegen.MustSquare(r, c)
			p := b.Get(sq)
			cell := " " + cellText(p, noColor) + " "
			switch {
			case marked[sq]:
				cell = paint(markSquare, noColor, cell)
			case (r+c)%2 == 0:
				cell = paint(darkSquare, noColor, cell)
			default:
				cell = paint(lightSquare, noColor, cell)
			}
			if _, err := io.WriteString(w, cell); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "   a  b  c  d  e  f  g  h\n%s to move  %s\n", b.SideToMove(), b.ToFEN())
	return err
}

func cellText(p movegen.PieceCode, noColor bool) string {
	if p == movegen.NoPiece {
		return " "
	}
	s := p.String()
	if p.Color() == movegen.Black {
		return paint(blackPiece, noColor, s)
	}
	return s
}

// Moves writes one move per line with its piece and capture/promotion notes.
func Moves(w io.Writer, moves []movegen.PieceMove, noColor bool) error {
	noColor = noColor || color.NoColor
	for _, m := range moves {
		line := fmt.Sprintf("%-6s %s %s", m.String(), m.Piece().Color(), m.Piece().Kind())
		if m.IsCapture() {
			note := fmt.Sprintf(" x%s@%s", m.Captured().Kind(), m.CaptureSquare())
			if m.IsEnPassant() {
				note += " e.p."
			}
			line += paint(captureMark, noColor, note)
		}
		if m.IsPromotion() {
			line += paint(promoteMark, noColor, " ="+m.Promoted().Kind().String())
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Square describes a square and its content, e.g. "e4 (white PAWN)".
func Square(b *movegen.Board, sq movegen.Square) string {
	p := b.Get(sq)
	if p == movegen.NoPiece {
		return sq.String() + " (empty)"
	}
	return fmt.Sprintf("%s (%s %s)", sq, p.Color(), p.Kind())
}
