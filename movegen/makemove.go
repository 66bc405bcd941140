package movegen

// MoveState holds the minimal state needed to undo a move.
type MoveState struct {
	move           PieceMove
	prevLastMove   PieceMove
	prevHasLast    bool
	prevCastling   CastlingRights
	prevHalfmove   int
	prevFullmove   int
	prevSideToMove Color
}

// Move returns the move this state undoes.
func (st MoveState) Move() PieceMove { return st.move }

// corner squares and the castling right each one carries
var rookHomes = [...]struct {
	sq    Square
	right CastlingRights
}{
	{Square{0, 0}, CastlingWhiteQ},
	{Square{0, 7}, CastlingWhiteK},
	{Square{7, 0}, CastlingBlackQ},
	{Square{7, 7}, CastlingBlackK},
}

// validate checks m against the board without changing anything.
func (b *Board) validate(m PieceMove) error {
	p := m.piece
	switch {
	case p == NoPiece || !p.Valid():
		return illegalf(m, "no moving piece")
	case p.Color() != b.sideToMove:
		return illegalf(m, "%s is not to move", p.Color())
	case b.Get(m.from) != p:
		return illegalf(m, "%s does not hold %q", m.from, p.String())
	case m.from == m.to:
		return illegalf(m, "source and destination are the same")
	}

	if m.flag == FlagEnPassant {
		if p.Kind() != Pawn || !b.IsEmpty(m.to) {
			return illegalf(m, "not an en-passant capture")
		}
		if b.Get(m.CaptureSquare()) != m.captured || m.captured != MakePiece(Pawn, p.Color().Opposite()) {
			return illegalf(m, "no pawn to capture en passant on %s", m.CaptureSquare())
		}
	} else {
		target := b.Get(m.to)
		if target != m.captured {
			return illegalf(m, "%s holds %q, move captures %q", m.to, target.String(), m.captured.String())
		}
		if target.Color() == p.Color() {
			return illegalf(m, "destination occupied by own piece")
		}
	}

	if p.Kind() == Pawn && m.to.Row() == backRow(p.Color()) {
		if m.promoted == NoPiece {
			return illegalf(m, "pawn reaching the back rank must promote")
		}
	}
	if m.promoted != NoPiece {
		if p.Kind() != Pawn || m.to.Row() != backRow(p.Color()) {
			return illegalf(m, "only a pawn reaching the back rank promotes")
		}
		if m.promoted.Color() != p.Color() || !isPromotionKind(m.promoted.Kind()) {
			return illegalf(m, "cannot promote to %q", m.promoted.String())
		}
	}

	if !GeneratorFor(p.Kind()).CanMove(m.from, b, m.to) {
		return illegalf(m, "%s cannot reach %s", p.Kind(), m.to)
	}
	return nil
}

func isPromotionKind(k Kind) bool {
	for _, pk := range PromotionKinds {
		if pk == k {
			return true
		}
	}
	return false
}

// MakeMove applies m and returns the state needed by UnmakeMove. The move is
// checked first; on error the board is unchanged.
//
// Cells, castling rights, clocks, side to move and the last move are all
// updated before MakeMove returns, so en-passant reasoning on the next ply
// always sees a consistent position.
func (b *Board) MakeMove(m PieceMove) (MoveState, error) {
	if err := b.validate(m); err != nil {
		return MoveState{}, err
	}

	st := MoveState{
		move:           m,
		prevLastMove:   b.lastMove,
		prevHasLast:    b.hasLastMove,
		prevCastling:   b.castlingRights,
		prevHalfmove:   b.halfmoveClock,
		prevFullmove:   b.fullmoveNumber,
		prevSideToMove: b.sideToMove,
	}

	// Captured piece leaves its actual square (behind the destination for en passant).
	if m.captured != NoPiece {
		b.Clear(m.CaptureSquare())
	}
	b.Clear(m.from)
	b.set(m.to.Row(), m.to.Column(), m.Placed())

	if m.piece.Kind() == King {
		if m.piece.Color() == White {
			b.castlingRights &^= CastlingWhiteK | CastlingWhiteQ
		} else {
			b.castlingRights &^= CastlingBlackK | CastlingBlackQ
		}
	}
	if m.captured.Kind() == King {
		if m.captured.Color() == White {
			b.castlingRights &^= CastlingWhiteK | CastlingWhiteQ
		} else {
			b.castlingRights &^= CastlingBlackK | CastlingBlackQ
		}
	}
	for _, h := range rookHomes {
		if m.from == h.sq || m.to == h.sq {
			b.castlingRights &^= h.right
		}
	}

	if m.piece.Kind() == Pawn || m.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if b.sideToMove == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = b.sideToMove.Opposite()
	b.lastMove = m
	b.hasLastMove = true
	b.hasUndo = false
	return st, nil
}

// UnmakeMove reverts the move recorded in st. st must come from the most
// recent MakeMove on this board.
func (b *Board) UnmakeMove(st MoveState) {
	m := st.move
	b.Clear(m.to)
	if m.captured != NoPiece {
		b.set(m.CaptureSquare().Row(), m.CaptureSquare().Column(), m.captured)
	}
	b.set(m.from.Row(), m.from.Column(), m.piece)

	b.lastMove = st.prevLastMove
	b.hasLastMove = st.prevHasLast
	b.castlingRights = st.prevCastling
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
	b.sideToMove = st.prevSideToMove
	b.hasUndo = false
}

// Apply plays m in place and keeps a single-level undo record for Undo.
func (b *Board) Apply(m PieceMove) error {
	st, err := b.MakeMove(m)
	if err != nil {
		return err
	}
	b.undo = st
	b.hasUndo = true
	return nil
}

// CanUndo reports whether Undo has a move to revert.
func (b *Board) CanUndo() bool { return b.hasUndo }

// Undo reverts the move played by the last Apply. Only one level is kept;
// calling Undo without a pending Apply panics.
func (b *Board) Undo() {
	if !b.hasUndo {
		panic(preconditionf("Undo: no move to undo"))
	}
	b.UnmakeMove(b.undo)
}

// Successor returns a new board with m applied, leaving b untouched. The
// returned board can Undo back to b.
func (b *Board) Successor(m PieceMove) (*Board, error) {
	next := b.Clone()
	if err := next.Apply(m); err != nil {
		return nil, err
	}
	return next, nil
}
