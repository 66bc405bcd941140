package movegen

import "math/rand"

// Zobrist keys indexed by piece code and square index, castling state,
// en-passant file and side to move.
var (
	zobristPiece     [16][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64 // XORed in when Black is to move
)

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so that hashes are reproducible between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the Zobrist key of the position. Two boards that are Equal
// hash the same; the clocks are not part of the key. The en-passant file is
// keyed only while a pawn can actually capture there, so repetitions are not
// split by a double advance nobody can answer.
func (b *Board) Hash() uint64 {
	var key uint64
	for r := 0; r < BoardDim; r++ {
		for c := 0; c < BoardDim; c++ {
			if p := b.get(r, c); p != NoPiece {
				key ^= zobristPiece[p][r*BoardDim+c]
			}
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[int(b.castlingRights&0xF)]
	if ep, ok := b.enPassantTarget(); ok && b.canCaptureEnPassant(ep) {
		key ^= zobristEnPassant[ep.Column()]
	}
	return key
}

// canCaptureEnPassant reports whether a pawn of the side to move stands next
// to the pawn that just skipped over ep.
func (b *Board) canCaptureEnPassant(ep Square) bool {
	us := b.sideToMove
	for _, dCol := range [2]int{-1, 1} {
		from, ok := ep.Offset(-us.forward(), dCol)
		if ok && b.Get(from) == MakePiece(Pawn, us) {
			return true
		}
	}
	return false
}
