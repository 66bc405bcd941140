package movegen

import (
	"fmt"
	"strings"
)

// MoveFlag marks moves whose effect cannot be read from the squares alone.
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	// FlagEnPassant: the captured pawn stands behind the destination.
	FlagEnPassant
)

// PieceMove describes one move. Captured is NoPiece for a quiet move and
// Promoted is NoPiece unless a pawn reaches the back rank.
type PieceMove struct {
	from, to Square
	piece    PieceCode
	captured PieceCode
	promoted PieceCode
	flag     MoveFlag
}

// NewMove builds a plain move or capture.
func NewMove(from, to Square, piece, captured PieceCode) PieceMove {
	return PieceMove{from: from, to: to, piece: piece, captured: captured}
}

// NewPromotion builds a pawn move onto the back rank that turns into promoted.
func NewPromotion(from, to Square, piece, captured, promoted PieceCode) PieceMove {
	return PieceMove{from: from, to: to, piece: piece, captured: captured, promoted: promoted}
}

// NewEnPassant builds an en-passant capture; captured is the pawn behind to.
func NewEnPassant(from, to Square, piece, captured PieceCode) PieceMove {
	return PieceMove{from: from, to: to, piece: piece, captured: captured, flag: FlagEnPassant}
}

// From returns the source square.
func (m PieceMove) From() Square { return m.from }

// To returns the destination square.
func (m PieceMove) To() Square { return m.to }

// Piece returns the moving piece.
func (m PieceMove) Piece() PieceCode { return m.piece }

// Captured returns the captured piece or NoPiece.
func (m PieceMove) Captured() PieceCode { return m.captured }

// Promoted returns the piece the pawn becomes or NoPiece.
func (m PieceMove) Promoted() PieceCode { return m.promoted }

// Flag returns the special-move flag.
func (m PieceMove) Flag() MoveFlag { return m.flag }

func (m PieceMove) IsCapture() bool   { return m.captured != NoPiece }
func (m PieceMove) IsPromotion() bool { return m.promoted != NoPiece }
func (m PieceMove) IsEnPassant() bool { return m.flag == FlagEnPassant }

// Placed returns the piece that ends up on the destination.
func (m PieceMove) Placed() PieceCode {
	if m.promoted != NoPiece {
		return m.promoted
	}
	return m.piece
}

// CaptureSquare is where the captured piece stands: the destination, or the
// square behind it for en passant.
func (m PieceMove) CaptureSquare() Square {
	if m.flag != FlagEnPassant {
		return m.to
	}
	sq, _ := m.to.Offset(-m.piece.Color().forward(), 0)
	return sq
}

// IsDoublePawnPush reports a two-square pawn advance from the start rank.
func (m PieceMove) IsDoublePawnPush() bool {
	if m.piece.Kind() != Pawn || m.from.column != m.to.column {
		return false
	}
	d := m.to.Row() - m.from.Row()
	return d == 2*m.piece.Color().forward() && m.from.Row() == pawnStartRow(m.piece.Color())
}

// String renders the move in UCI long algebraic form (e2e4, e7e8q).
func (m PieceMove) String() string {
	s := m.from.String() + m.to.String()
	if m.promoted != NoPiece {
		s += strings.ToLower(m.promoted.String())
	}
	return s
}

// PieceMoves groups every move generated for the piece on one square.
type PieceMoves struct {
	Square Square
	Piece  PieceCode
	Moves  []PieceMove
}

func (pm PieceMoves) Len() int     { return len(pm.Moves) }
func (pm PieceMoves) Empty() bool  { return len(pm.Moves) == 0 }
func (pm PieceMoves) Color() Color { return pm.Piece.Color() }

// Destinations returns the distinct destination squares in generation order.
func (pm PieceMoves) Destinations() []Square {
	out := make([]Square, 0, len(pm.Moves))
	seen := make(map[Square]bool, len(pm.Moves))
	for _, m := range pm.Moves {
		if !seen[m.to] {
			seen[m.to] = true
			out = append(out, m.to)
		}
	}
	return out
}

func (pm PieceMoves) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s:", pm.Piece.Color(), pm.Piece.Kind(), pm.Square)
	for _, m := range pm.Moves {
		sb.WriteByte(' ')
		sb.WriteString(m.String())
	}
	return sb.String()
}

// ParseMove resolves UCI text (e2e4, e7e8q) against the moves available to
// the side to move.
func (b *Board) ParseMove(s string) (PieceMove, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 4 || len(s) > 5 {
		return PieceMove{}, fmt.Errorf("%w: %q: invalid move length", ErrIllegalMove, s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return PieceMove{}, fmt.Errorf("%w: %q: %v", ErrIllegalMove, s, err)
	}
	if _, err := SquareFromString(s[2:4]); err != nil {
		return PieceMove{}, fmt.Errorf("%w: %q: %v", ErrIllegalMove, s, err)
	}
	pc := b.Get(from)
	if pc.IsEmpty() || pc.Color() != b.sideToMove {
		return PieceMove{}, fmt.Errorf("%w: %q: no %s piece on %s", ErrIllegalMove, s, b.sideToMove, from)
	}
	for _, m := range GeneratorFor(pc.Kind()).Generate(from, b) {
		if m.String() == s {
			return m, nil
		}
	}
	return PieceMove{}, fmt.Errorf("%w: %q: not available in this position", ErrIllegalMove, s)
}
