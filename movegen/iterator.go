package movegen

const squareCount = BoardDim * BoardDim

// SquareIter walks a snapshot of a board in row-major order: a1..h1, a2..h2,
// and so on up to h8. The snapshot is taken when the iterator is created, so
// later changes to the board are not observed and iterators never interfere
// with each other.
//
//	it := b.Squares()
//	for it.Next() {
//		sq, p := it.Square(), it.Piece()
//	}
type SquareIter struct {
	rows [BoardDim]packedRow
	idx  int // -1 before the first Next, squareCount once exhausted
}

// Squares returns a fresh iterator positioned before a1.
func (b *Board) Squares() *SquareIter {
	return &SquareIter{rows: b.rows, idx: -1}
}

// Next advances to the following square and reports whether there is one.
func (it *SquareIter) Next() bool {
	if it.idx < squareCount {
		it.idx++
	}
	return it.idx < squareCount
}

// Reset rewinds the iterator to before a1.
func (it *SquareIter) Reset() { it.idx = -1 }

func (it *SquareIter) current() int {
	if it.idx < 0 || it.idx >= squareCount {
		panic(preconditionf("SquareIter: no current square (index %d)", it.idx))
	}
	return it.idx
}

// Square returns the current square.
func (it *SquareIter) Square() Square { return SquareFromIndex(it.current()) }

// Piece returns the piece on the current square.
func (it *SquareIter) Piece() PieceCode {
	i := it.current()
	return PieceCode((it.rows[i/BoardDim] >> (cellBits * uint(i%BoardDim))) & 0xF)
}

// Each calls fn for every square in iterator order until fn returns false.
func (b *Board) Each(fn func(Square, PieceCode) bool) {
	it := b.Squares()
	for it.Next() {
		if !fn(it.Square(), it.Piece()) {
			return
		}
	}
}
