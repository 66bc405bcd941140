package movegen

import "fmt"

// BoardDim is the number of rows and columns of the board.
const BoardDim = 8

// Square identifies a location on the board. Row 0 is rank 1 and column 0 is
// file a. A Square can only be built through the constructors below, so every
// value is on the board.
type Square struct {
	row, column uint8
}

func inBounds(row, column int) bool {
	return row >= 0 && row < BoardDim && column >= 0 && column < BoardDim
}

// NewSquare returns the square at row and column.
func NewSquare(row, column int) (Square, error) {
	if !inBounds(row, column) {
		return Square{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, column)
	}
	return Square{row: uint8(row), column: uint8(column)}, nil
}

// MustSquare is like NewSquare but panics on out-of-range coordinates.
func MustSquare(row, column int) Square {
	sq, err := NewSquare(row, column)
	if err != nil {
		panic(preconditionf("%v", err))
	}
	return sq
}

// SquareFromIndex maps 0..63 (a1, b1, ..., h8) to a square.
func SquareFromIndex(idx int) Square {
	if idx < 0 || idx >= BoardDim*BoardDim {
		panic(preconditionf("square index %d out of range", idx))
	}
	return Square{row: uint8(idx / BoardDim), column: uint8(idx % BoardDim)}
}

// SquareFromString parses a square in algebraic notation, e.g. "e4".
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	f, r := s[0], s[1]
	if 'A' <= f && f <= 'H' {
		f += 'a' - 'A'
	}
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	return Square{row: r - '1', column: f - 'a'}, nil
}

// Row returns the row (rank index) from 0 to 7.
func (sq Square) Row() int { return int(sq.row) }

// Column returns the column (file index) from 0 to 7.
func (sq Square) Column() int { return int(sq.column) }

// Index returns row*8 + column. It is a stable hash of the square.
func (sq Square) Index() int { return int(sq.row)*BoardDim + int(sq.column) }

// Offset returns the square shifted by the deltas and whether it is on the board.
func (sq Square) Offset(dRow, dCol int) (Square, bool) {
	r, c := int(sq.row)+dRow, int(sq.column)+dCol
	if !inBounds(r, c) {
		return Square{}, false
	}
	return Square{row: uint8(r), column: uint8(c)}, true
}

func (sq Square) String() string {
	return string([]byte{'a' + sq.column, '1' + sq.row})
}
