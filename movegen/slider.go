package movegen

var (
	rookDirections   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = append(append([][2]int{}, rookDirections...), bishopDirections...)
)

// sliderGenerator casts rays from the source square. A ray continues across
// empty squares, ends on the first occupied square and includes it only when
// it holds an opposing piece.
type sliderGenerator struct {
	kind       Kind
	directions [][2]int
}

var (
	bishopGenerator = sliderGenerator{kind: Bishop, directions: bishopDirections}
	rookGenerator   = sliderGenerator{kind: Rook, directions: rookDirections}
	queenGenerator  = sliderGenerator{kind: Queen, directions: queenDirections}
)

func (g sliderGenerator) Kind() Kind { return g.kind }

func (g sliderGenerator) Generate(sq Square, b *Board) []PieceMove {
	p := mover(g.kind, sq, b)
	var moves []PieceMove
	for _, d := range g.directions {
		for dst, ok := sq.Offset(d[0], d[1]); ok; dst, ok = dst.Offset(d[0], d[1]) {
			target := b.Get(dst)
			if target == NoPiece {
				moves = append(moves, NewMove(sq, dst, p, NoPiece))
				continue
			}
			if target.Color() != p.Color() {
				moves = append(moves, NewMove(sq, dst, p, target))
			}
			break
		}
	}
	return moves
}

func (g sliderGenerator) CanMove(sq Square, b *Board, dst Square) bool {
	p := mover(g.kind, sq, b)
	dRow, dCol := sign(dst.Row()-sq.Row()), sign(dst.Column()-sq.Column())
	if dRow == 0 && dCol == 0 {
		return false
	}
	// dst must lie on a ray: same row, column or diagonal.
	if dRow != 0 && dCol != 0 && abs(dst.Row()-sq.Row()) != abs(dst.Column()-sq.Column()) {
		return false
	}
	if !g.hasDirection(dRow, dCol) {
		return false
	}
	for cur, _ := sq.Offset(dRow, dCol); cur != dst; cur, _ = cur.Offset(dRow, dCol) {
		if !b.IsEmpty(cur) {
			return false
		}
	}
	return b.Get(dst).Color() != p.Color()
}

func (g sliderGenerator) hasDirection(dRow, dCol int) bool {
	for _, d := range g.directions {
		if d[0] == dRow && d[1] == dCol {
			return true
		}
	}
	return false
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
