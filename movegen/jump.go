package movegen

// jumpGenerator moves a piece by a fixed set of offsets, without sliding.
type jumpGenerator struct {
	kind    Kind
	offsets [8][2]int
}

var knightGenerator = jumpGenerator{
	kind: Knight,
	offsets: [8][2]int{
		{2, 1}, {2, -1}, {1, 2}, {1, -2},
		{-1, 2}, {-1, -2}, {-2, 1}, {-2, -1},
	},
}

var kingGenerator = jumpGenerator{
	kind: King,
	offsets: [8][2]int{
		{1, -1}, {1, 0}, {1, 1},
		{0, -1}, {0, 1},
		{-1, -1}, {-1, 0}, {-1, 1},
	},
}

func (g jumpGenerator) Kind() Kind { return g.kind }

func (g jumpGenerator) Generate(sq Square, b *Board) []PieceMove {
	p := mover(g.kind, sq, b)
	moves := make([]PieceMove, 0, len(g.offsets))
	for _, d := range g.offsets {
		dst, ok := sq.Offset(d[0], d[1])
		if !ok {
			continue
		}
		target := b.Get(dst)
		if target.Color() == p.Color() {
			continue
		}
		moves = append(moves, NewMove(sq, dst, p, target))
	}
	return moves
}

func (g jumpGenerator) CanMove(sq Square, b *Board, dst Square) bool {
	p := mover(g.kind, sq, b)
	dRow, dCol := dst.Row()-sq.Row(), dst.Column()-sq.Column()
	for _, d := range g.offsets {
		if d[0] == dRow && d[1] == dCol {
			return b.Get(dst).Color() != p.Color()
		}
	}
	return false
}
