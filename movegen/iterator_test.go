package movegen_test

import (
	"testing"

	"chess-movegen/movegen"
)

func TestSquareIterOrder(t *testing.T) {
	b := movegen.StartingBoard()
	it := b.Squares()
	n := 0
	for it.Next() {
		s := it.Square()
		if s.Index() != n {
			t.Fatalf("step %d visited %s (index %d)", n, s, s.Index())
		}
		if it.Piece() != b.Get(s) {
			t.Fatalf("iterator piece on %s = %v, board has %v", s, it.Piece(), b.Get(s))
		}
		n++
	}
	if n != 64 {
		t.Fatalf("visited %d squares, want 64", n)
	}
	if it.Next() {
		t.Fatalf("exhausted iterator advanced again")
	}
}

func TestSquareIterPreconditions(t *testing.T) {
	it := movegen.StartingBoard().Squares()
	expectPrecondition(t, "Square before Next", func() { it.Square() })
	expectPrecondition(t, "Piece before Next", func() { it.Piece() })
	for it.Next() {
	}
	expectPrecondition(t, "Square after end", func() { it.Square() })
	expectPrecondition(t, "Piece after end", func() { it.Piece() })

	it.Reset()
	if !it.Next() || it.Square().String() != "a1" || it.Piece() != movegen.WhiteRook {
		t.Fatalf("Reset should restart at a1")
	}
}

func TestSquareIterSnapshot(t *testing.T) {
	b := movegen.StartingBoard()
	first := b.Squares()
	second := b.Squares()
	first.Next()
	b.Clear(sq(t, "a1"))
	if first.Piece() != movegen.WhiteRook {
		t.Fatalf("iterator observed a change made after it was created")
	}
	// second iterator is unaffected by the first one's progress
	second.Next()
	if second.Square().String() != "a1" {
		t.Fatalf("second iterator at %s, want a1", second.Square())
	}
	if fresh := b.Squares(); fresh.Next() && fresh.Piece() != movegen.NoPiece {
		t.Fatalf("new iterator should see the cleared a1")
	}
}

func TestEachStopsEarly(t *testing.T) {
	visited := 0
	movegen.StartingBoard().Each(func(s movegen.Square, _ movegen.PieceCode) bool {
		visited++
		return s.String() != "h1"
	})
	if visited != 8 {
		t.Fatalf("Each visited %d squares, want 8", visited)
	}
}
