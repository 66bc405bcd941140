package movegen

// Perft counts leaf nodes of the pseudo-legal move tree to the given depth.
// Moves that leave the mover's king attacked are counted like any other, so
// the numbers only match published perft results while no side can be in
// check or pinned (e.g. the first three plies from the start position).
// Per-depth buffers are reused to avoid allocations.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]PieceMove, depth+1)}
	return perftRec(b, depth, &pc)
}

type perftCtx struct {
	bufs [][]PieceMove
}

func (pc *perftCtx) bufFor(depth int) []PieceMove {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]PieceMove, 0, 128)
	}
	return buf[:0]
}

func perftRec(b *Board, depth int, pc *perftCtx) uint64 {
	moves := GenerateMovesInto(b, pc.bufFor(depth))
	pc.bufs[depth] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st, err := b.MakeMove(m)
		if err != nil {
			panic(preconditionf("perft: generated move rejected: %v", err))
		}
		nodes += perftRec(b, depth-1, pc)
		b.UnmakeMove(st)
	}
	return nodes
}

// PerftDivide returns, for each root move, the number of leaf nodes reachable
// from it at the given depth. Useful for debugging.
func PerftDivide(b *Board, depth int) map[PieceMove]uint64 {
	result := make(map[PieceMove]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range GenerateMoves(b) {
		st, err := b.MakeMove(m)
		if err != nil {
			panic(preconditionf("perft: generated move rejected: %v", err))
		}
		result[m] = Perft(b, depth-1)
		b.UnmakeMove(st)
	}
	return result
}
