package movegen_test

import (
	"testing"

	"chess-movegen/movegen"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := movegen.NewBoard()
	if b.SideToMove() != movegen.White {
		t.Fatalf("new board should have White to move")
	}
	if _, ok := b.LastMove(); ok {
		t.Fatalf("new board should have no last move")
	}
	b.Each(func(s movegen.Square, p movegen.PieceCode) bool {
		if p != movegen.NoPiece {
			t.Fatalf("square %s not empty: %v", s, p)
		}
		return true
	})
}

// Every cell shares a word with seven others; writing one must not disturb them.
func TestBoardPackingIsolation(t *testing.T) {
	b := movegen.NewBoard()
	pieces := []movegen.PieceCode{
		movegen.WhitePawn, movegen.BlackKing, movegen.WhiteQueen, movegen.BlackKnight,
		movegen.NoPiece, movegen.WhiteRook, movegen.BlackBishop, movegen.BlackPawn,
	}
	want := func(i int) movegen.PieceCode { return pieces[(i*3+i/8)%len(pieces)] }
	for i := 0; i < 64; i++ {
		b.Put(movegen.SquareFromIndex(i), want(i))
	}
	for i := 0; i < 64; i++ {
		s := movegen.SquareFromIndex(i)
		if got := b.Get(s); got != want(i) {
			t.Fatalf("Get(%s) = %v, want %v", s, got, want(i))
		}
		if got := b.At(s.Row(), s.Column()); got != want(i) {
			t.Fatalf("At(%d, %d) = %v, want %v", s.Row(), s.Column(), got, want(i))
		}
	}
	b.Clear(sq(t, "d4"))
	if !b.IsEmpty(sq(t, "d4")) {
		t.Fatalf("d4 should be empty after Clear")
	}
	for _, s := range []string{"c4", "e4", "d3", "d5"} {
		i := sq(t, s).Index()
		if b.Get(sq(t, s)) != want(i) {
			t.Fatalf("clearing d4 disturbed %s", s)
		}
	}
}

func TestBoardPreconditions(t *testing.T) {
	b := movegen.NewBoard()
	expectPrecondition(t, "At(8, 0)", func() { b.At(8, 0) })
	expectPrecondition(t, "At(0, -1)", func() { b.At(0, -1) })
	expectPrecondition(t, "Put(invalid)", func() { b.Put(sq(t, "a1"), movegen.PieceCode(7)) })
	expectPrecondition(t, "SetSideToMove(NoColor)", func() { b.SetSideToMove(movegen.NoColor) })
}

func TestStartingBoardString(t *testing.T) {
	want := "8 rnbqkbnr\n" +
		"7 pppppppp\n" +
		"6 ........\n" +
		"5 ........\n" +
		"4 ........\n" +
		"3 ........\n" +
		"2 PPPPPPPP\n" +
		"1 RNBQKBNR\n" +
		"  abcdefgh\n" +
		"white to move"
	if got := movegen.StartingBoard().String(); got != want {
		t.Fatalf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestStartingBoardMatchesFEN(t *testing.T) {
	if !movegen.StartingBoard().Equal(parse(t, movegen.FENStartPos)) {
		t.Fatalf("StartingBoard differs from FENStartPos")
	}
}

func TestBoardCount(t *testing.T) {
	b := movegen.StartingBoard()
	for _, c := range []movegen.Color{movegen.White, movegen.Black} {
		pc := b.Count(c)
		if pc.Pawns != 8 || pc.Knights != 2 || pc.Bishops != 2 || pc.Rooks != 2 || pc.Queens != 1 || pc.Kings != 1 || pc.Total != 16 {
			t.Fatalf("%v count = %+v", c, pc)
		}
	}
	if n := movegen.NewBoard().Count(movegen.White).Total; n != 0 {
		t.Fatalf("empty board count = %d", n)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := movegen.StartingBoard()
	c := b.Clone()
	if !c.Equal(b) {
		t.Fatalf("clone differs from original")
	}
	c.Clear(sq(t, "e2"))
	c.SetSideToMove(movegen.Black)
	if b.IsEmpty(sq(t, "e2")) || b.SideToMove() != movegen.White {
		t.Fatalf("modifying the clone changed the original")
	}
	if c.Equal(b) {
		t.Fatalf("boards should differ after modifying the clone")
	}
}

func TestHashTracksPosition(t *testing.T) {
	a := movegen.StartingBoard()
	b := movegen.StartingBoard()
	if a.Hash() != b.Hash() {
		t.Fatalf("equal boards hash differently")
	}
	play := func(b *movegen.Board, moves ...string) {
		for _, s := range moves {
			m, err := b.ParseMove(s)
			if err != nil {
				t.Fatalf("ParseMove(%q): %v", s, err)
			}
			if _, err := b.MakeMove(m); err != nil {
				t.Fatalf("MakeMove(%s): %v", s, err)
			}
		}
	}
	play(a, "g1f3", "g8f6", "b1c3")
	play(b, "b1c3", "g8f6", "g1f3")
	if a.Hash() != b.Hash() {
		t.Fatalf("transposed positions hash differently")
	}
	start := movegen.StartingBoard().Hash()
	if a.Hash() == start {
		t.Fatalf("hash did not change after moves")
	}

	// e4 with no black pawn beside it cannot be answered en passant.
	c := movegen.StartingBoard()
	play(c, "e2e4")
	d := parse(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	if c.Hash() != d.Hash() {
		t.Fatalf("unanswerable en-passant target should not change the hash")
	}

	// with a capturer in place the file is keyed
	ep := parse(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	noEP := parse(t, "k7/8/8/3pP3/8/8/8/7K w - - 0 2")
	if ep.Hash() == noEP.Hash() {
		t.Fatalf("capturable en-passant target should be part of the hash")
	}
}
