package movegen

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is wrapped by the values this package panics with when a
	// caller breaks a contract (out-of-range coordinates, wrong generator for a
	// square, iterator misuse, undo without a move).
	ErrPrecondition = errors.New("movegen: precondition violated")

	// ErrOutOfBounds is returned when coordinates fall outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidFEN is wrapped by every position-record parsing failure.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrIllegalMove is returned when a move does not fit the board it is applied to.
	ErrIllegalMove = errors.New("illegal move")
)

func preconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}

func fenErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

func illegalf(m PieceMove, format string, args ...any) error {
	return fmt.Errorf("%w %s: %s", ErrIllegalMove, m, fmt.Sprintf(format, args...))
}
