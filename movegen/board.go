package movegen

import "strings"

// CastlingRights is a bitmask of the castling flags recorded in a position.
// Castling moves themselves are not generated; the rights are tracked so that
// positions round-trip through FEN.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	NoCastling CastlingRights = 0
)

// PieceCount holds the number of pieces of each kind for one side.
type PieceCount struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings int
	Total                                         int
}

// Each row holds eight squares of 4 bits each; column c lives in bits 4c..4c+3.
type packedRow uint32

const cellBits = 4

// Board is a chess position: piece placement, side to move and the last move
// played (needed for en passant). A Board is a plain value; copy it (or use
// Clone) to hand a private snapshot to another goroutine.
type Board struct {
	rows [BoardDim]packedRow

	sideToMove Color

	// Last move applied, or the synthetic double advance implied by a FEN
	// en-passant field.
	lastMove    PieceMove
	hasLastMove bool

	castlingRights CastlingRights

	// Halfmove clock (half-moves since the last capture or pawn advance)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	// Single-level undo record written by Apply.
	undo    MoveState
	hasUndo bool
}

// NewBoard returns an empty board with White to move.
func NewBoard() *Board {
	return &Board{sideToMove: White, fullmoveNumber: 1}
}

// StartingBoard returns the standard initial position.
func StartingBoard() *Board {
	b := NewBoard()
	back := [BoardDim]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardDim; col++ {
		b.set(0, col, MakePiece(back[col], White))
		b.set(1, col, WhitePawn)
		b.set(6, col, BlackPawn)
		b.set(7, col, MakePiece(back[col], Black))
	}
	b.castlingRights = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
	return b
}

func (b *Board) get(r, c int) PieceCode {
	return PieceCode((b.rows[r] >> (cellBits * uint(c))) & 0xF)
}

func (b *Board) set(r, c int, p PieceCode) {
	shift := cellBits * uint(c)
	b.rows[r] = b.rows[r]&^(0xF<<shift) | packedRow(p&0xF)<<shift
}

// Get returns the piece on sq.
func (b *Board) Get(sq Square) PieceCode { return b.get(int(sq.row), int(sq.column)) }

// At returns the piece at row and column. Out-of-range coordinates panic;
// validate them through NewSquare first.
func (b *Board) At(r, c int) PieceCode {
	if !inBounds(r, c) {
		panic(preconditionf("Board.At(%d, %d) out of range", r, c))
	}
	return b.get(r, c)
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool { return b.Get(sq) == NoPiece }

// Put places p on sq, replacing whatever was there.
func (b *Board) Put(sq Square, p PieceCode) {
	if !p.Valid() {
		panic(preconditionf("Board.Put(%s): invalid piece code %d", sq, uint8(p)))
	}
	b.set(int(sq.row), int(sq.column), p)
}

// Clear empties sq.
func (b *Board) Clear(sq Square) { b.set(int(sq.row), int(sq.column), NoPiece) }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// SetSideToMove updates the side to play. Normal move making toggles automatically.
func (b *Board) SetSideToMove(c Color) {
	if c != White && c != Black {
		panic(preconditionf("SetSideToMove(%v)", c))
	}
	b.sideToMove = c
}

// LastMove returns the last move and whether there is one.
func (b *Board) LastMove() (PieceMove, bool) { return b.lastMove, b.hasLastMove }

// SetLastMove records m as the previous move, e.g. when loading a position.
func (b *Board) SetLastMove(m PieceMove) {
	b.lastMove = m
	b.hasLastMove = true
}

// ClearLastMove forgets the previous move.
func (b *Board) ClearLastMove() {
	b.lastMove = PieceMove{}
	b.hasLastMove = false
}

// CastlingRights returns the castling flags.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// SetCastlingRights replaces the castling flags.
func (b *Board) SetCastlingRights(cr CastlingRights) { b.castlingRights = cr }

// HalfmoveClock accessor for consumers that want read-only access.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Equal compares two positions by value. The undo record is not part of the
// position and is ignored.
func (b *Board) Equal(o *Board) bool {
	return b.rows == o.rows &&
		b.sideToMove == o.sideToMove &&
		b.hasLastMove == o.hasLastMove &&
		b.lastMove == o.lastMove &&
		b.castlingRights == o.castlingRights &&
		b.halfmoveClock == o.halfmoveClock &&
		b.fullmoveNumber == o.fullmoveNumber
}

// Count returns the number of pieces of each kind owned by color.
func (b *Board) Count(color Color) PieceCount {
	var pc PieceCount
	b.Each(func(_ Square, p PieceCode) bool {
		if p.Color() != color {
			return true
		}
		switch p.Kind() {
		case Pawn:
			pc.Pawns++
		case Knight:
			pc.Knights++
		case Bishop:
			pc.Bishops++
		case Rook:
			pc.Rooks++
		case Queen:
			pc.Queens++
		case King:
			pc.Kings++
		}
		pc.Total++
		return true
	})
	return pc
}

// enPassantTarget returns the square a pawn skipped over on the last move.
func (b *Board) enPassantTarget() (Square, bool) {
	if !b.hasLastMove || !b.lastMove.IsDoublePawnPush() {
		return Square{}, false
	}
	return b.lastMove.from.Offset(b.lastMove.piece.Color().forward(), 0)
}

// String renders the board rank 8 first, one line per rank, followed by the
// side to move.
func (b *Board) String() string {
	var sb strings.Builder
	for r := BoardDim - 1; r >= 0; r-- {
		sb.WriteByte('1' + byte(r))
		sb.WriteByte(' ')
		for c := 0; c < BoardDim; c++ {
			sb.WriteByte(b.get(r, c).Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	sb.WriteString(b.sideToMove.String())
	sb.WriteString(" to move")
	return sb.String()
}
