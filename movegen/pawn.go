package movegen

// pawnStartRow is the row pawns of the color start on.
func pawnStartRow(c Color) int {
	if c == Black {
		return 6
	}
	return 1
}

// backRow is the row a pawn of the color promotes on.
func backRow(c Color) int {
	if c == Black {
		return 0
	}
	return 7
}

// enPassantRow is the row a pawn of the color lands on when capturing en passant.
func enPassantRow(c Color) int {
	if c == Black {
		return 2
	}
	return 5
}

type pawnGenerator struct{}

func (pawnGenerator) Kind() Kind { return Pawn }

// pawnProbes lists candidate (row, column) deltas for White in probe order:
// forward, forward-right, forward-left, then the double advance. Rows are
// negated for Black.
var pawnProbes = [4][2]int{{1, 0}, {1, 1}, {1, -1}, {2, 0}}

// Generate returns the pawn moves from sq. A promotion expands into four moves
// (knight, bishop, rook, queen) in place of the single advance or capture.
func (g pawnGenerator) Generate(sq Square, b *Board) []PieceMove {
	p := mover(Pawn, sq, b)
	fwd := p.Color().forward()
	var moves []PieceMove
	for _, d := range pawnProbes {
		dst, ok := sq.Offset(d[0]*fwd, d[1])
		if !ok {
			continue
		}
		moves = g.appendTo(moves, sq, p, b, dst)
	}
	return moves
}

func (g pawnGenerator) CanMove(sq Square, b *Board, dst Square) bool {
	p := mover(Pawn, sq, b)
	return len(g.appendTo(nil, sq, p, b, dst)) > 0
}

// appendTo classifies a single destination and appends the resulting moves.
// Destinations that are not pawn probes from sq yield nothing.
func (pawnGenerator) appendTo(moves []PieceMove, sq Square, p PieceCode, b *Board, dst Square) []PieceMove {
	color := p.Color()
	fwd := color.forward()
	dRow := dst.Row() - sq.Row()
	dCol := dst.Column() - sq.Column()
	target := b.Get(dst)

	switch {
	case dCol == 0 && dRow == fwd:
		if target != NoPiece {
			return moves
		}
		return appendPawnMove(moves, sq, dst, p, NoPiece)

	case dCol == 0 && dRow == 2*fwd:
		if sq.Row() != pawnStartRow(color) || target != NoPiece {
			return moves
		}
		mid, _ := sq.Offset(fwd, 0)
		if !b.IsEmpty(mid) {
			return moves
		}
		return append(moves, NewMove(sq, dst, p, NoPiece))

	case (dCol == 1 || dCol == -1) && dRow == fwd:
		if target != NoPiece {
			if target.Color() == color {
				return moves
			}
			return appendPawnMove(moves, sq, dst, p, target)
		}
		if captured, ok := enPassantCapture(b, color, dst); ok {
			return append(moves, NewEnPassant(sq, dst, p, captured))
		}
	}
	return moves
}

// appendPawnMove appends an advance or capture, expanded into promotions when
// dst is on the back rank.
func appendPawnMove(moves []PieceMove, from, to Square, p, captured PieceCode) []PieceMove {
	color := p.Color()
	if to.Row() != backRow(color) {
		return append(moves, NewMove(from, to, p, captured))
	}
	for _, k := range PromotionKinds {
		moves = append(moves, NewPromotion(from, to, p, captured, MakePiece(k, color)))
	}
	return moves
}

// enPassantCapture reports whether a pawn of color landing on the empty square
// dst captures en passant, and which piece it takes. The last move must be the
// opponent's double advance through dst's column, ending on the square behind dst.
func enPassantCapture(b *Board, color Color, dst Square) (PieceCode, bool) {
	if dst.Row() != enPassantRow(color) {
		return NoPiece, false
	}
	last, ok := b.LastMove()
	if !ok {
		return NoPiece, false
	}
	them := color.Opposite()
	if last.Piece() != MakePiece(Pawn, them) || !last.IsDoublePawnPush() {
		return NoPiece, false
	}
	behind, _ := dst.Offset(-color.forward(), 0)
	if last.To() != behind {
		return NoPiece, false
	}
	captured := b.Get(behind)
	if captured != last.Piece() {
		return NoPiece, false
	}
	return captured, true
}
