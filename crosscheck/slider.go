package crosscheck

import (
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"chess-movegen/movegen"
)

// Occupancy returns the bitboards (bit i = square index i) of all pieces and
// of the pieces owned by color.
func Occupancy(b *movegen.Board, color movegen.Color) (all, own uint64) {
	b.Each(func(sq movegen.Square, p movegen.PieceCode) bool {
		if p == movegen.NoPiece {
			return true
		}
		bit := uint64(1) << uint(sq.Index())
		all |= bit
		if p.Color() == color {
			own |= bit
		}
		return true
	})
	return all, own
}

// SliderTargets returns the destinations dragontoothmg's attack tables give a
// slider of the given kind on sq, minus squares held by its own side. The
// result is sorted by square index.
func SliderTargets(b *movegen.Board, kind movegen.Kind, sq movegen.Square, color movegen.Color) []movegen.Square {
	all, own := Occupancy(b, color)
	from := uint8(sq.Index())
	var attacks uint64
	switch kind {
	case movegen.Rook:
		attacks = dragontoothmg.CalculateRookMoveBitboard(from, all)
	case movegen.Bishop:
		attacks = dragontoothmg.CalculateBishopMoveBitboard(from, all)
	case movegen.Queen:
		attacks = dragontoothmg.CalculateRookMoveBitboard(from, all) |
			dragontoothmg.CalculateBishopMoveBitboard(from, all)
	default:
		return nil
	}
	attacks &^= own
	var out []movegen.Square
	for i := 0; i < 64; i++ {
		if attacks&(uint64(1)<<uint(i)) != 0 {
			out = append(out, movegen.SquareFromIndex(i))
		}
	}
	return out
}

// SortSquares orders squares by index in place.
func SortSquares(sqs []movegen.Square) {
	slices.SortFunc(sqs, func(a, b movegen.Square) bool { return a.Index() < b.Index() })
}
