package movegen

// Generator produces the pseudo-legal moves of one piece kind. Moves respect
// geometry, occupancy and capture rules; whether the mover's king is left in
// check is not examined. Generators never modify the board.
type Generator interface {
	// Kind reports which piece kind the generator serves.
	Kind() Kind
	// Generate returns every move of the piece on sq, in the generator's probe order.
	Generate(sq Square, b *Board) []PieceMove
	// CanMove reports whether the piece on sq may move to dst.
	CanMove(sq Square, b *Board, dst Square) bool
}

// generators is indexed by Kind. The array length is tied to KindCount below,
// so adding a kind without extending the table fails to compile.
var generators = [...]Generator{
	NoKind: nil,
	Pawn:   pawnGenerator{},
	Knight: knightGenerator,
	Bishop: bishopGenerator,
	Rook:   rookGenerator,
	Queen:  queenGenerator,
	King:   kingGenerator,
}

var _ = [1]struct{}{}[len(generators)-KindCount]

func init() {
	for k := Pawn; int(k) < KindCount; k++ {
		if generators[k] == nil || generators[k].Kind() != k {
			panic("movegen: generator table incomplete for " + k.String())
		}
	}
}

// GeneratorFor returns the generator for kind. NoKind has none and panics.
func GeneratorFor(kind Kind) Generator {
	if kind == NoKind || int(kind) >= KindCount {
		panic(preconditionf("no generator for kind %v", kind))
	}
	return generators[kind]
}

// mover returns the piece on sq and panics unless it is of the given kind.
func mover(kind Kind, sq Square, b *Board) PieceCode {
	p := b.Get(sq)
	if p.Kind() != kind {
		panic(preconditionf("%s generator called on %s holding %q", kind, sq, p.String()))
	}
	return p
}

// GeneratePieceMoves returns the moves of whatever piece stands on sq.
// An empty square yields an empty group.
func GeneratePieceMoves(b *Board, sq Square) PieceMoves {
	p := b.Get(sq)
	pm := PieceMoves{Square: sq, Piece: p}
	if p != NoPiece {
		pm.Moves = GeneratorFor(p.Kind()).Generate(sq, b)
	}
	return pm
}

// CanMove reports whether the piece on from may move to to. Empty squares
// cannot move.
func CanMove(b *Board, from, to Square) bool {
	p := b.Get(from)
	if p == NoPiece {
		return false
	}
	return GeneratorFor(p.Kind()).CanMove(from, b, to)
}

// GenerateMoves returns all pseudo-legal moves for the side to move.
//
// Order is stable: squares are visited in SquareIter order (a1, b1, ..., h8)
// and each square contributes its moves in generator probe order.
func GenerateMoves(b *Board) []PieceMove {
	return GenerateMovesInto(b, make([]PieceMove, 0, 64))
}

// GenerateMovesInto appends the moves of GenerateMoves to dst[:0] and returns it.
func GenerateMovesInto(b *Board, dst []PieceMove) []PieceMove {
	moves := dst[:0]
	side := b.sideToMove
	it := b.Squares()
	for it.Next() {
		p := it.Piece()
		if p == NoPiece || p.Color() != side {
			continue
		}
		moves = append(moves, GeneratorFor(p.Kind()).Generate(it.Square(), b)...)
	}
	return moves
}

// GenerateAllPieceMoves returns one group per piece of the side to move, in
// iterator order, including pieces that have no moves.
func GenerateAllPieceMoves(b *Board) []PieceMoves {
	var out []PieceMoves
	side := b.sideToMove
	b.Each(func(sq Square, p PieceCode) bool {
		if p != NoPiece && p.Color() == side {
			out = append(out, GeneratePieceMoves(b, sq))
		}
		return true
	})
	return out
}
