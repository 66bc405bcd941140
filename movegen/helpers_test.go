package movegen_test

import (
	"errors"
	"testing"

	"chess-movegen/movegen"
)

const (
	emptyFEN    = "8/8/8/8/8/8/8/8 w - - 0 1"
	kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

// sq parses algebraic notation and fails the test on bad input.
func sq(t *testing.T, s string) movegen.Square {
	t.Helper()
	s2, err := movegen.SquareFromString(s)
	if err != nil {
		t.Fatalf("SquareFromString(%q): %v", s, err)
	}
	return s2
}

func parse(t *testing.T, fen string) *movegen.Board {
	t.Helper()
	b, err := movegen.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

// withPieces returns an otherwise empty board holding the given pieces.
func withPieces(t *testing.T, pieces map[string]movegen.PieceCode) *movegen.Board {
	t.Helper()
	b := movegen.NewBoard()
	for s, p := range pieces {
		b.Put(sq(t, s), p)
	}
	return b
}

func moveStrings(moves []movegen.PieceMove) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// expectPrecondition runs fn and fails unless it panics with ErrPrecondition.
func expectPrecondition(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic", name)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, movegen.ErrPrecondition) {
			t.Fatalf("%s: panic %v does not wrap ErrPrecondition", name, r)
		}
	}()
	fn()
}

// checkCanMove verifies that CanMove agrees with Generate for every square.
func checkCanMove(t *testing.T, b *movegen.Board, from movegen.Square) {
	t.Helper()
	p := b.Get(from)
	g := movegen.GeneratorFor(p.Kind())
	reach := make(map[movegen.Square]bool)
	for _, m := range g.Generate(from, b) {
		reach[m.To()] = true
	}
	for i := 0; i < 64; i++ {
		dst := movegen.SquareFromIndex(i)
		if got := g.CanMove(from, b, dst); got != reach[dst] {
			t.Fatalf("%s on %s: CanMove(%s) = %v, generated = %v\n%s", p.Kind(), from, dst, got, reach[dst], b)
		}
	}
}
