package movegen_test

import (
	"testing"

	"golang.org/x/exp/slices"

	"chess-movegen/movegen"
)

func TestSliderEmptyBoardCounts(t *testing.T) {
	cases := []struct {
		piece movegen.PieceCode
		from  string
		want  int
	}{
		{movegen.WhiteRook, "d4", 14},
		{movegen.WhiteBishop, "d4", 13},
		{movegen.WhiteQueen, "d4", 27},
		{movegen.BlackRook, "a1", 14},
		{movegen.BlackBishop, "a1", 7},
		{movegen.BlackQueen, "a1", 21},
		{movegen.WhiteBishop, "h5", 7},
	}
	for _, c := range cases {
		b := withPieces(t, map[string]movegen.PieceCode{c.from: c.piece})
		moves := movegen.GeneratorFor(c.piece.Kind()).Generate(sq(t, c.from), b)
		if len(moves) != c.want {
			t.Errorf("%v on %s: %d moves, want %d", c.piece.Kind(), c.from, len(moves), c.want)
		}
		checkCanMove(t, b, sq(t, c.from))
	}
}

func TestRookRayOrder(t *testing.T) {
	b := withPieces(t, map[string]movegen.PieceCode{"d4": movegen.WhiteRook})
	got := moveStrings(movegen.GeneratorFor(movegen.Rook).Generate(sq(t, "d4"), b))
	want := []string{
		"d4d5", "d4d6", "d4d7", "d4d8",
		"d4d3", "d4d2", "d4d1",
		"d4e4", "d4f4", "d4g4", "d4h4",
		"d4c4", "d4b4", "d4a4",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("rook d4 = %v, want %v", got, want)
	}
}

func TestQueenRookRaysFirst(t *testing.T) {
	b := withPieces(t, map[string]movegen.PieceCode{"d4": movegen.WhiteQueen})
	moves := movegen.GeneratorFor(movegen.Queen).Generate(sq(t, "d4"), b)
	for i, m := range moves {
		straight := m.From().Row() == m.To().Row() || m.From().Column() == m.To().Column()
		if straight != (i < 14) {
			t.Fatalf("move %d (%s) out of order: rook rays must come first", i, m)
		}
	}
}

func TestSliderBlockers(t *testing.T) {
	b := withPieces(t, map[string]movegen.PieceCode{
		"d4": movegen.WhiteRook, "d6": movegen.WhitePawn, "f4": movegen.BlackPawn,
	})
	rook := movegen.GeneratorFor(movegen.Rook)
	got := moveStrings(rook.Generate(sq(t, "d4"), b))
	want := []string{"d4d5", "d4d3", "d4d2", "d4d1", "d4e4", "d4f4", "d4c4", "d4b4", "d4a4"}
	if !slices.Equal(got, want) {
		t.Fatalf("rook d4 = %v, want %v", got, want)
	}
	if rook.CanMove(sq(t, "d4"), b, sq(t, "d6")) {
		t.Fatalf("rook must not capture its own pawn")
	}
	if rook.CanMove(sq(t, "d4"), b, sq(t, "d7")) || rook.CanMove(sq(t, "d4"), b, sq(t, "g4")) {
		t.Fatalf("rook must not pass through pieces")
	}
	if !rook.CanMove(sq(t, "d4"), b, sq(t, "f4")) {
		t.Fatalf("rook should capture on f4")
	}
	if rook.CanMove(sq(t, "d4"), b, sq(t, "d4")) || rook.CanMove(sq(t, "d4"), b, sq(t, "e5")) {
		t.Fatalf("rook CanMove accepted a square off its rays")
	}
}

func TestSlidersStuckAtStart(t *testing.T) {
	b := movegen.StartingBoard()
	for _, from := range []string{"a1", "c1", "d1", "f1", "h1", "a8", "c8", "d8", "f8", "h8"} {
		if pm := movegen.GeneratePieceMoves(b, sq(t, from)); !pm.Empty() {
			t.Fatalf("%s has moves at the start: %v", from, pm)
		}
	}
}

func TestSliderCanMoveAgreesWithGenerate(t *testing.T) {
	b := parse(t, kiwipeteFEN)
	b.Each(func(s movegen.Square, p movegen.PieceCode) bool {
		switch p.Kind() {
		case movegen.Bishop, movegen.Rook, movegen.Queen:
			checkCanMove(t, b, s)
		}
		return true
	})
}
